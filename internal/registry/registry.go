// Package registry provides a global registry of front ends.
// Front ends register themselves in init() functions, so the CLI can list
// and start them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-arcade/internal/engine"
	"github.com/vovakirdan/snake-arcade/internal/record"
)

// Request describes one match to play.
type Request struct {
	Options  engine.Options
	Name     string // ledger name for P1
	Recorder *record.Recorder
	Logger   *log.Logger
}

// Frontend presents a match in some terminal technology.
type Frontend interface {
	// ID returns a unique identifier used on the command line ("tui").
	ID() string

	// Title returns a human-readable description.
	Title() string

	// Run plays matches until the player leaves or ctx is cancelled.
	Run(ctx context.Context, req Request) error
}

// Info contains metadata about a registered front end.
type Info struct {
	ID    string
	Title string
}

// Factory creates a new front end instance.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a front end factory to the registry.
// Panics if a front end with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered front ends, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a front end by its ID.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", id)
	}

	return f(), nil
}

// Exists checks if a front end with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
