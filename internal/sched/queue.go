// Package sched provides the cooperative deferral used by the tab bar: work
// deferred during an update pass runs only after that pass has rendered.
package sched

import tea "github.com/charmbracelet/bubbletea"

type Scheduler interface {
	Defer(fn func())
}

// FlushMsg tells the host to run deferred work.
type FlushMsg struct{}

// Queue is a FIFO of deferred work. It is not safe for concurrent use; it
// belongs to the UI goroutine.
type Queue struct {
	pending []func()
}

func (q *Queue) Defer(fn func()) {
	if fn == nil {
		return
	}
	q.pending = append(q.pending, fn)
}

func (q *Queue) Len() int { return len(q.pending) }

// Flush runs the work queued before the call. Work deferred while flushing
// waits for the next flush.
func (q *Queue) Flush() int {
	batch := q.pending
	q.pending = nil
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Cmd schedules a FlushMsg for the next tick of the bubbletea loop, or
// returns nil when nothing is pending.
func (q *Queue) Cmd() tea.Cmd {
	if len(q.pending) == 0 {
		return nil
	}
	return func() tea.Msg { return FlushMsg{} }
}
