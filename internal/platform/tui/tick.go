// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

// FrameMsg is delivered when a scheduled frame is due.
type FrameMsg struct {
	Sched uint64     // Scheduler that issued the token
	Token core.Token // Callback to run
	Time  time.Time
}

var schedulerIDs atomic.Uint64

// frameScheduler implements core.Scheduler on top of tea.Tick. Callbacks
// are kept by token; a FrameMsg runs the matching callback once. Cancelled
// tokens and messages from other schedulers are dropped, so a late tick
// cannot reach a game that has been torn down.
type frameScheduler struct {
	id       uint64
	interval time.Duration
	next     core.Token
	pending  map[core.Token]func(time.Time)
	queued   []core.Token
}

func newFrameScheduler(interval time.Duration) *frameScheduler {
	if interval <= 0 {
		interval = core.NominalFrame
	}
	return &frameScheduler{
		id:       schedulerIDs.Add(1),
		interval: interval,
		pending:  make(map[core.Token]func(time.Time)),
	}
}

// Schedule implements core.Scheduler. The tick command for the token is
// handed out by the next call to Cmd.
func (s *frameScheduler) Schedule(fn func(now time.Time)) core.Token {
	s.next++
	tok := s.next
	s.pending[tok] = fn
	s.queued = append(s.queued, tok)
	return tok
}

// Cancel implements core.Scheduler.
func (s *frameScheduler) Cancel(tok core.Token) {
	delete(s.pending, tok)
}

// CancelAll drops every pending callback.
func (s *frameScheduler) CancelAll() {
	clear(s.pending)
	s.queued = nil
}

// Pending returns the number of callbacks waiting for a frame.
func (s *frameScheduler) Pending() int {
	return len(s.pending)
}

// Cmd returns the tick commands for tokens scheduled since the last call,
// or nil if there are none.
func (s *frameScheduler) Cmd() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(s.queued))
	for _, tok := range s.queued {
		cmds = append(cmds, s.tick(tok))
	}
	s.queued = nil
	return tea.Batch(cmds...)
}

func (s *frameScheduler) tick(tok core.Token) tea.Cmd {
	id := s.id
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return FrameMsg{Sched: id, Token: tok, Time: t}
	})
}

// Fire runs the callback for msg and reports whether one ran.
func (s *frameScheduler) Fire(msg FrameMsg) bool {
	if msg.Sched != s.id {
		return false
	}
	fn, ok := s.pending[msg.Token]
	if !ok {
		return false
	}
	delete(s.pending, msg.Token)
	fn(msg.Time)
	return true
}
