package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/career-dashboard/internal/session"
)

// events bridges callbacks fired outside the Bubble Tea loop into messages.
// Each channel keeps only the latest value so producers never block.
type events struct {
	session chan session.State
	pending chan int64
}

func newEvents() *events {
	return &events{
		session: make(chan session.State, 1),
		pending: make(chan int64, 1),
	}
}

func (e *events) pushSession(st session.State) { offer(e.session, st) }

func (e *events) pushPending(n int64) { offer(e.pending, n) }

func (e *events) waitSession() tea.Cmd {
	ch := e.session
	return func() tea.Msg { return sessionChangedMsg(<-ch) }
}

func (e *events) waitPending() tea.Cmd {
	ch := e.pending
	return func() tea.Msg { return pendingMsg(<-ch) }
}

// offer replaces any unread value in ch with v.
func offer[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
