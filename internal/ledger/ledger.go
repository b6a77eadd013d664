// Package ledger keeps the top-ten score table in a plain text file.
//
// Each line holds one entry as "<score> <name> <unix-seconds>". Loading
// stops at the first malformed line and keeps what was read before it.
package ledger

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

const (
	// MaxEntries is the table capacity.
	MaxEntries = 10
	// MaxNameLength is the longest name kept.
	MaxNameLength = 19
	// DefaultName replaces empty names.
	DefaultName = "Player"
)

// Entry is one row of the table. Level is kept in memory only.
type Entry struct {
	Score int
	Level int
	Name  string
	Date  time.Time
}

// SanitizeName strips whitespace and caps the length so the name stays a
// single field on disk.
func SanitizeName(name string) string {
	name = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return -1
		}
		return r
	}, name)
	if r := []rune(name); len(r) > MaxNameLength {
		name = string(r[:MaxNameLength])
	}
	if name == "" {
		return DefaultName
	}
	return name
}

// Insert places e in a descending table and returns the new table and e's
// 1-based rank, or 0 when the score does not qualify. entries is not
// modified.
func Insert(entries []Entry, e Entry) ([]Entry, int) {
	if !qualifies(entries, e.Score) {
		return entries, 0
	}

	pos := len(entries)
	for i, cur := range entries {
		if cur.Score < e.Score {
			pos = i
			break
		}
	}

	out := make([]Entry, 0, len(entries)+1)
	out = append(out, entries[:pos]...)
	out = append(out, e)
	out = append(out, entries[pos:]...)
	if len(out) > MaxEntries {
		out = out[:MaxEntries]
	}
	return out, pos + 1
}

func qualifies(entries []Entry, score int) bool {
	return len(entries) < MaxEntries || score > entries[len(entries)-1].Score
}

// Parse reads entries from r, stopping at the first malformed line.
func Parse(r io.Reader) []Entry {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() && len(entries) < MaxEntries {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 || utf8.RuneCountInString(fields[1]) > MaxNameLength {
			break
		}
		score, err := strconv.Atoi(fields[0])
		if err != nil {
			break
		}
		unix, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			break
		}

		entries = append(entries, Entry{
			Score: score,
			Name:  SanitizeName(fields[1]),
			Date:  time.Unix(unix, 0),
		})
	}
	return entries
}

// Write formats entries to w, one per line.
func Write(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%d %s %d\n", e.Score, SanitizeName(e.Name), e.Date.Unix()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Load reads the table at path. A missing file is an empty table.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("ledger: cannot open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f), nil
}

// Save replaces the file at path with entries.
func Save(path string, entries []Entry) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ledger: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".top_scores-*")
	if err != nil {
		return fmt.Errorf("ledger: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Write(tmp, entries); err != nil {
		tmp.Close()
		return fmt.Errorf("ledger: cannot write entries: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("ledger: cannot close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("ledger: cannot replace %s: %w", path, err)
	}
	return nil
}

// Ledger is a file-backed score table safe for concurrent use.
type Ledger struct {
	mu      sync.Mutex
	path    string
	entries []Entry
	logger  *log.Logger
}

// Open loads the table at path. Read failures are logged and leave the
// table empty so play can continue.
func Open(path string, logger *log.Logger) *Ledger {
	if logger == nil {
		logger = log.Default()
	}
	l := &Ledger{path: path, logger: logger}
	if err := l.Load(); err != nil {
		logger.Warn("cannot load score table", "path", path, "err", err)
	}
	return l
}

// Path returns the backing file.
func (l *Ledger) Path() string {
	return l.path
}

// Load replaces the in-memory table with the file contents.
func (l *Ledger) Load() error {
	entries, err := Load(l.path)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = entries
	return err
}

// Save writes the in-memory table to disk.
func (l *Ledger) Save() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Save(l.path, l.entries)
}

// Entries returns a copy of the table, best first.
func (l *Ledger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Qualifies reports whether score would enter the table.
func (l *Ledger) Qualifies(score int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return qualifies(l.entries, score)
}

// Add inserts e and persists the table. The returned rank is 1-based, or
// 0 if the score did not qualify. The in-memory table is updated even when
// the save fails.
func (l *Ledger) Add(e Entry) (int, error) {
	e.Name = SanitizeName(e.Name)
	if e.Date.IsZero() {
		e.Date = time.Now()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entries, rank := Insert(l.entries, e)
	if rank == 0 {
		return 0, nil
	}
	l.entries = entries
	l.logger.Debug("score recorded", "name", e.Name, "score", e.Score, "rank", rank)

	if err := Save(l.path, l.entries); err != nil {
		l.logger.Warn("cannot save score table", "path", l.path, "err", err)
		return rank, err
	}
	return rank, nil
}
