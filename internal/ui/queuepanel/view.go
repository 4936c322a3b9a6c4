package queuepanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lhoarau/trackcrate/internal/track"
	"github.com/lhoarau/trackcrate/internal/ui"
	"github.com/lhoarau/trackcrate/internal/ui/render"
	"github.com/lhoarau/trackcrate/internal/ui/styles"
)

const playingSymbol = "▶"

// View renders the queue panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := m.Width() - ui.BorderHeight
	listHeight := m.listHeight()

	header := m.renderHeader(innerWidth)
	separator := render.Separator(innerWidth)
	trackList := m.renderTrackList(innerWidth, listHeight)

	content := header + "\n" + separator + "\n" + trackList

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

// renderHeader renders the queue header with track count and mode markers.
func (m Model) renderHeader(innerWidth int) string {
	currentIdx := m.queue.CurrentIndex() + 1
	if currentIdx < 1 {
		currentIdx = 0
	}
	left := fmt.Sprintf("Queue (%d/%d)", currentIdx, m.queue.Len())

	var parts []string
	if m.queue.IsShuffled() {
		parts = append(parts, "shuffle")
	}
	if m.queue.Repeat() {
		parts = append(parts, "repeat")
	}
	if m.queue.Len() > 0 {
		parts = append(parts, track.FormatRuntime(m.queue.TotalSeconds()))
	}
	right := strings.Join(parts, "  ")

	line := render.Row(render.Truncate(left, innerWidth-len(right)-1), right, innerWidth)
	return styles.T().S().Title.Render(line)
}

// renderTrackList renders the list of queued tracks.
func (m Model) renderTrackList(innerWidth, listHeight int) string {
	tracks := m.queue.Tracks()
	playingIdx := m.queue.CurrentIndex()

	lines := make([]string, 0, max(listHeight, 1))

	if len(tracks) == 0 {
		empty := render.TruncateAndPad("  queue is empty", innerWidth)
		lines = append(lines, styles.T().S().Muted.Render(empty))
	}

	start, end := m.cursor.VisibleRange(len(tracks), listHeight)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderTrackLine(tracks[i], i, playingIdx, innerWidth))
	}

	for len(lines) < listHeight {
		lines = append(lines, render.EmptyLine(innerWidth))
	}

	return strings.Join(lines, "\n")
}

// renderTrackLine renders a single track line with prefix, title, artist and duration.
func (m Model) renderTrackLine(tr track.Track, idx, playingIdx, width int) string {
	prefix := "  "
	if idx == playingIdx {
		prefix = playingSymbol + " "
	}

	duration := track.FormatDuration(tr.Seconds)

	contentWidth := width - len(prefix) - len(duration) - 1
	if contentWidth < 0 {
		contentWidth = 0
	}

	titleWidth := contentWidth / 2
	artistWidth := contentWidth - titleWidth

	line := prefix +
		render.TruncateAndPad(tr.Title, titleWidth) +
		render.TruncateAndPad(tr.Artist.String(), artistWidth) +
		" " + duration

	return m.trackStyle(idx, playingIdx).Render(line)
}

// trackStyle returns the appropriate style for a track based on its state.
func (m Model) trackStyle(idx, playingIdx int) lipgloss.Style {
	s := styles.T().S()
	isCursor := idx == m.cursor.Pos() && m.IsFocused()
	isPlaying := idx == playingIdx
	isPlayed := playingIdx >= 0 && idx < playingIdx

	switch {
	case isCursor && isPlaying:
		return s.Cursor.Inherit(s.Playing)
	case isCursor:
		return s.Cursor
	case isPlaying:
		return s.Playing
	case isPlayed:
		return s.Muted
	default:
		return s.Base
	}
}
