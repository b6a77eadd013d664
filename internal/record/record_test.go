package record

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/engine"
	"github.com/vovakirdan/snake-arcade/internal/ledger"
	"github.com/vovakirdan/snake-arcade/internal/storage"
)

func finishedSnapshot(t *testing.T, players int) engine.Snapshot {
	t.Helper()
	s, err := engine.NewSession(engine.Options{
		Mode:       config.ModeClassic,
		Difficulty: config.DifficultyEasy,
		Players:    players,
		Seed:       5,
	})
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	s.Quit()
	return s.Snapshot()
}

func TestRecord(t *testing.T) {
	dir := t.TempDir()
	logger := log.New(io.Discard)

	store, err := storage.Open(filepath.Join(dir, "history.db"))
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	defer store.Close()

	r := &Recorder{
		Ledger: ledger.Open(filepath.Join(dir, "top_scores"), logger),
		Store:  store,
		Logger: logger,
	}

	res := r.Record(finishedSnapshot(t, 1), "ann lee")

	if res.Rank != 1 {
		t.Errorf("Rank = %d, expected 1", res.Rank)
	}
	if res.MatchID == 0 {
		t.Error("MatchID = 0, expected a stored match")
	}

	entries := r.Ledger.Entries()
	if len(entries) != 1 || entries[0].Name != "annlee" {
		t.Errorf("ledger = %+v, expected one entry for annlee", entries)
	}

	m, err := store.MatchByID(res.MatchID)
	if err != nil || m == nil {
		t.Fatalf("MatchByID() = %v, %v", m, err)
	}
	if m.Mode != "classic" || m.Difficulty != "easy" || m.EndReason != "quit" || m.Length != 3 {
		t.Errorf("stored match = %+v", m)
	}
}

func TestRecordWithoutStore(t *testing.T) {
	r := &Recorder{
		Ledger: ledger.Open(filepath.Join(t.TempDir(), "top_scores"), log.New(io.Discard)),
		Logger: log.New(io.Discard),
	}

	res := r.Record(finishedSnapshot(t, 1), "")

	if res.MatchID != 0 {
		t.Errorf("MatchID = %d, expected 0", res.MatchID)
	}
	if got := r.Ledger.Entries()[0].Name; got != ledger.DefaultName {
		t.Errorf("Name = %q, expected %q", got, ledger.DefaultName)
	}
}

func TestMatchTwoPlayers(t *testing.T) {
	snap := finishedSnapshot(t, 2)
	snap.Winner = engine.Player2
	snap.Elapsed = 42*time.Second + 600*time.Millisecond

	m := Match(snap, "duo", time.Unix(1700000000, 0))

	if m.Players != 2 || m.Winner != "P2" {
		t.Errorf("players/winner = %d/%q, expected 2/P2", m.Players, m.Winner)
	}
	if m.Duration != 42 {
		t.Errorf("Duration = %d, expected 42", m.Duration)
	}
}
