package tracklist

import (
	"fmt"
	"strings"

	"github.com/lhoarau/trackcrate/internal/ui"
	"github.com/lhoarau/trackcrate/internal/ui/render"
	"github.com/lhoarau/trackcrate/internal/ui/styles"
)

// View renders the track list panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := m.Width() - ui.BorderHeight
	listHeight := m.pageHeight()

	header := m.renderHeader(innerWidth)
	separator := render.Separator(innerWidth)
	rows := m.renderRows(innerWidth, listHeight)

	content := header + "\n" + separator + "\n" + rows

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

func (m Model) renderHeader(innerWidth int) string {
	left := m.title
	if len(m.items) > 0 {
		left = fmt.Sprintf("%s (%d/%d)", m.title, m.cursor.Pos()+1, len(m.items))
	}

	var right string
	if current, total := m.page(); total > 1 {
		right = fmt.Sprintf("page %d/%d", current, total)
	}

	line := render.Row(render.Truncate(left, innerWidth-len(right)-1), right, innerWidth)
	return styles.T().S().Title.Render(line)
}

func (m Model) renderRows(innerWidth, listHeight int) string {
	lines := make([]string, 0, max(listHeight, 1))

	if len(m.items) == 0 {
		empty := render.TruncateAndPad("  no tracks", innerWidth)
		lines = append(lines, styles.T().S().Muted.Render(empty))
	}

	start, end := m.cursor.VisibleRange(len(m.items), listHeight)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(m.items[i], i, innerWidth))
	}

	for len(lines) < listHeight {
		lines = append(lines, render.EmptyLine(innerWidth))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderRow(item Item, idx, width int) string {
	num := fmt.Sprintf("%3d ", idx+1)
	detail := item.Detail

	contentWidth := width - len(num) - len(detail) - 1
	if contentWidth < 0 {
		contentWidth = 0
	}

	var body string
	if item.Artist == "" {
		body = render.TruncateAndPad(item.Title, contentWidth)
	} else {
		titleWidth := contentWidth / 2
		artistWidth := contentWidth - titleWidth
		body = render.TruncateAndPad(item.Title, titleWidth) +
			render.TruncateAndPad(item.Artist, artistWidth)
	}

	line := num + body + " " + detail

	if idx == m.cursor.Pos() && m.IsFocused() {
		return styles.T().S().Cursor.Render(line)
	}
	return styles.T().S().Base.Render(line)
}
