// Package record files finished matches: the top-ten ledger and, when a
// database is available, the match history.
package record

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-arcade/internal/engine"
	"github.com/vovakirdan/snake-arcade/internal/ledger"
	"github.com/vovakirdan/snake-arcade/internal/storage"
)

// Recorder is shared by every match of a process, including concurrent
// SSH sessions. Store may be nil.
type Recorder struct {
	Ledger *ledger.Ledger
	Store  *storage.Store
	Logger *log.Logger
}

// Result is what recording a match produced.
type Result struct {
	Rank    int   // 1-based ledger rank, 0 when the score did not place
	MatchID int64 // history row, 0 when not stored
}

// Qualifies reports whether score would enter the ledger.
func (r *Recorder) Qualifies(score int) bool {
	return r.Ledger != nil && r.Ledger.Qualifies(score)
}

// Record files a finished match under name. Failures are logged and never
// reach the player.
func (r *Recorder) Record(snap engine.Snapshot, name string) Result {
	var res Result
	logger := r.logger()
	name = ledger.SanitizeName(name)

	if r.Store != nil {
		id, err := r.Store.SaveMatch(Match(snap, name, time.Now()))
		if err != nil {
			logger.Warn("cannot save match history", "err", err)
		} else {
			res.MatchID = id
		}
	}

	if r.Ledger != nil {
		rank, err := r.Ledger.Add(ledger.Entry{
			Score: snap.Score,
			Level: snap.Level,
			Name:  name,
			Date:  time.Now(),
		})
		if err != nil {
			logger.Warn("cannot persist score table", "err", err)
		}
		res.Rank = rank
	}

	logger.Info("match finished",
		"mode", snap.Mode, "difficulty", snap.Difficulty, "players", snap.Players,
		"score", snap.Score, "level", snap.Level, "cause", snap.Cause,
		"winner", snap.Winner, "rank", res.Rank)
	return res
}

func (r *Recorder) logger() *log.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return log.Default()
}

// Match converts a finished snapshot into a history row.
func Match(snap engine.Snapshot, name string, playedAt time.Time) storage.MatchRecord {
	m := storage.MatchRecord{
		Mode:       string(snap.Mode),
		Difficulty: string(snap.Difficulty),
		Players:    snap.Players,
		Name:       name,
		Score:      snap.Score,
		Level:      snap.Level,
		FoodEaten:  snap.FoodEaten,
		EndReason:  snap.Cause.String(),
		Duration:   int(snap.Elapsed / time.Second),
		PlayedAt:   playedAt,
	}
	if snap.Winner != engine.PlayerNone {
		m.Winner = snap.Winner.String()
	}
	if p1, ok := snap.Snake(engine.Player1); ok {
		m.Score1 = p1.Score
		m.Length = len(p1.Body)
	}
	if p2, ok := snap.Snake(engine.Player2); ok {
		m.Score2 = p2.Score
	}
	return m
}
