// Package playerbar renders the now-playing bar under the main panels.
package playerbar

import (
	"fmt"
	"strings"

	"github.com/lhoarau/trackcrate/internal/queue"
	"github.com/lhoarau/trackcrate/internal/track"
	"github.com/lhoarau/trackcrate/internal/ui/render"
	"github.com/lhoarau/trackcrate/internal/ui/styles"
)

// State holds everything needed to render the player bar.
type State struct {
	Playing  bool
	Track    *track.Track
	Index    int // 0-based queue position
	Total    int
	Shuffled bool
	Repeat   bool
}

// NewState builds a State from the queue. Returns an empty State when the
// queue has no current track.
func NewState(q *queue.Queue) State {
	cur := q.Current()
	if cur == nil {
		return State{}
	}
	return State{
		Playing:  q.IsPlaying(),
		Track:    cur,
		Index:    q.CurrentIndex(),
		Total:    q.Len(),
		Shuffled: q.IsShuffled(),
		Repeat:   q.Repeat(),
	}
}

// Render returns the player bar string for the given width.
// Returns an empty string when there is no current track.
func Render(s State, width int) string {
	if s.Track == nil {
		return ""
	}

	innerWidth := width - 2
	if innerWidth < 0 {
		innerWidth = 0
	}

	status := "⏸"
	if s.Playing {
		status = "▶"
	}

	var modes []string
	if s.Shuffled {
		modes = append(modes, "shuffle")
	}
	if s.Repeat {
		modes = append(modes, "repeat")
	}

	left := fmt.Sprintf(" %s  %s", status, s.Track.Display())

	right := fmt.Sprintf("%s  %d/%d ", track.FormatDuration(s.Track.Seconds), s.Index+1, s.Total)
	if len(modes) > 0 {
		right = strings.Join(modes, " ") + "  " + right
	}

	leftWidth := innerWidth - len(right)
	if leftWidth < 0 {
		leftWidth = 0
	}
	content := render.Row(render.Truncate(left, leftWidth), right, innerWidth)

	return styles.PanelStyle(false).Width(innerWidth).Render(content)
}
