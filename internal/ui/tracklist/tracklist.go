// Package tracklist provides a paginated track list panel. It backs the
// library, search results, album and playlist detail views.
package tracklist

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lhoarau/trackcrate/internal/ui"
	"github.com/lhoarau/trackcrate/internal/ui/cursor"
)

// ChosenMsg is sent when the user selects an item with enter.
type ChosenMsg struct {
	Index int
}

// Item is a single list row.
type Item struct {
	Title  string
	Artist string
	Detail string // right-aligned column, usually the duration
}

// Model represents the track list state.
type Model struct {
	ui.Base
	title    string
	items    []Item
	cursor   cursor.Cursor
	pageSize int
}

// New creates a new track list with the given panel title.
func New(title string) Model {
	return Model{
		title:  title,
		cursor: cursor.New(ui.ScrollMargin),
	}
}

// SetTitle changes the panel title.
func (m *Model) SetTitle(title string) {
	m.title = title
}

// SetItems replaces the list contents, keeping the cursor in bounds.
func (m *Model) SetItems(items []Item) {
	m.items = items
	m.cursor.ClampToBounds(len(items))
	m.cursor.EnsureVisible(len(items), m.pageHeight())
}

// SetPageSize caps how many rows are shown per page. Zero means fill the
// available height.
func (m *Model) SetPageSize(n int) {
	m.pageSize = n
}

// Len returns the number of items.
func (m Model) Len() int {
	return len(m.items)
}

// Pos returns the cursor position.
func (m Model) Pos() int {
	return m.cursor.Pos()
}

// JumpTo moves the cursor to an absolute position.
func (m *Model) JumpTo(pos int) {
	m.cursor.Jump(pos, len(m.items), m.pageHeight())
}

// Reset moves the cursor back to the top.
func (m *Model) Reset() {
	m.cursor.Reset()
}

// pageHeight returns the number of visible rows.
func (m Model) pageHeight() int {
	h := m.ListHeight(ui.PanelOverhead)
	if m.pageSize > 0 && m.pageSize < h {
		h = m.pageSize
	}
	return h
}

// page returns the current page number and page count, 1-based.
func (m Model) page() (current, total int) {
	h := m.pageHeight()
	if h <= 0 || len(m.items) == 0 {
		return 1, 1
	}
	total = (len(m.items) + h - 1) / h
	current = m.cursor.Pos()/h + 1
	if current > total {
		current = total
	}
	return current, total
}

// Update handles navigation keys when the panel is focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.IsFocused() {
		return m, nil
	}

	key := keyMsg.String()
	if m.cursor.HandleKey(key, len(m.items), m.pageHeight()) {
		return m, nil
	}

	if key == "enter" && len(m.items) > 0 {
		idx := m.cursor.Pos()
		return m, func() tea.Msg {
			return ChosenMsg{Index: idx}
		}
	}

	return m, nil
}
