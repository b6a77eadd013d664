package engine

import (
	"context"
	"time"
)

// LoopInterval is the polling period of the real-time loop.
const LoopInterval = 10 * time.Millisecond

// CommandKind identifies an input command.
type CommandKind int

const (
	CmdTurn CommandKind = iota
	CmdPause
	CmdQuit
)

// Command is one player input. Dir and Player apply to CmdTurn only.
type Command struct {
	Kind   CommandKind
	Player PlayerID
	Dir    Direction
}

// Turn builds a turn command.
func Turn(p PlayerID, d Direction) Command {
	return Command{Kind: CmdTurn, Player: p, Dir: d}
}

// Renderer draws a snapshot.
type Renderer interface {
	Draw(Snapshot)
}

// InputSource returns the commands pending since the last poll. It must not
// block.
type InputSource interface {
	Poll() []Command
}

// Pacer decides when the next simulation step is due.
type Pacer struct {
	last time.Time
}

// Due reports whether at least speedMs milliseconds have passed since the
// last step. A true result marks now as the last step time. While paused the
// interval is dropped, so the first step after resuming waits a full speedMs.
func (p *Pacer) Due(now time.Time, speedMs int, paused bool) bool {
	if paused {
		p.last = time.Time{}
		return false
	}
	if p.last.IsZero() {
		p.last = now
		return false
	}
	if now.Sub(p.last) < time.Duration(speedMs)*time.Millisecond {
		return false
	}
	p.last = now
	return true
}

// Reset restarts the pacing interval at now.
func (p *Pacer) Reset(now time.Time) {
	p.last = now
}

// Loop drives a session in real time: poll input, step when due, draw,
// sleep. It is used by front ends that own their terminal directly.
type Loop struct {
	Session  *Session
	Input    InputSource
	Renderer Renderer
	Clock    func() time.Time // defaults to time.Now
	Interval time.Duration    // defaults to LoopInterval
	OnEvents func([]Event)    // optional
}

// Run blocks until the match ends or ctx is cancelled. The final state is
// drawn before returning.
func (l *Loop) Run(ctx context.Context) error {
	clock := l.Clock
	if clock == nil {
		clock = time.Now
	}
	interval := l.Interval
	if interval <= 0 {
		interval = LoopInterval
	}

	var pacer Pacer
	pacer.Reset(clock())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		for _, cmd := range l.Input.Poll() {
			l.Session.Apply(cmd)
		}

		if pacer.Due(clock(), l.Session.Speed(), l.Session.Paused()) {
			res := l.Session.Step()
			if l.OnEvents != nil && len(res.Events) > 0 {
				l.OnEvents(res.Events)
			}
		}

		l.Renderer.Draw(l.Session.Snapshot())
		if l.Session.Over() {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
