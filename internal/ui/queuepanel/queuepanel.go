// Package queuepanel renders the playback queue with its cursor and modes.
package queuepanel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lhoarau/trackcrate/internal/queue"
	"github.com/lhoarau/trackcrate/internal/ui"
	"github.com/lhoarau/trackcrate/internal/ui/cursor"
)

// JumpToTrackMsg is sent when the user selects a track to jump to.
type JumpToTrackMsg struct {
	Index int
}

// Model represents the queue panel state.
type Model struct {
	ui.Base
	queue  *queue.Queue
	cursor cursor.Cursor
}

// New creates a new queue panel model.
func New(q *queue.Queue) Model {
	return Model{
		queue:  q,
		cursor: cursor.New(ui.ScrollMargin),
	}
}

// FollowCurrent moves the panel cursor to the queue's playback cursor.
func (m *Model) FollowCurrent() {
	if idx := m.queue.CurrentIndex(); idx >= 0 {
		m.cursor.Jump(idx, m.queue.Len(), m.listHeight())
	}
}

// Update handles messages for the queue panel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.IsFocused() {
		return m, nil
	}

	key := keyMsg.String()
	if m.cursor.HandleKey(key, m.queue.Len(), m.listHeight()) {
		return m, nil
	}

	if key == "enter" && m.queue.Len() > 0 {
		idx := m.cursor.Pos()
		return m, func() tea.Msg {
			return JumpToTrackMsg{Index: idx}
		}
	}

	return m, nil
}

func (m Model) listHeight() int {
	return m.ListHeight(ui.PanelOverhead)
}
