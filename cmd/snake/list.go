package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List front ends, modes and difficulties",
	Long:  `Shows the registered front ends and the available modes and difficulties.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	frontends := registry.List()

	if len(frontends) == 0 {
		fmt.Println("No front ends available.")
		return
	}

	fmt.Println("Front ends:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, f := range frontends {
		if len(f.ID) > maxIDLen {
			maxIDLen = len(f.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, f := range frontends {
		fmt.Printf("  %-*s  %s\n", maxIDLen, f.ID, f.Title)
	}

	fmt.Println()
	fmt.Println("Modes:")
	for _, m := range config.Modes {
		fmt.Printf("  %-10s %s\n", m, m.Description())
	}

	fmt.Println()
	fmt.Println("Difficulties:")
	for _, d := range config.Difficulties {
		p := d.Params()
		fmt.Printf("  %-10s %dx%d, %d ms\n", d, p.GridWidth, p.GridHeight, p.BaseSpeed)
	}

	fmt.Println()
	fmt.Println("Run 'snake play --frontend <id>' to play.")
}
