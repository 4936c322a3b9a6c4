package queue

import "github.com/lhoarau/trackcrate/internal/track"

// Snapshot is the externally persistable form of the queue: the
// ordered track list, the cursor position and the mode flags. The
// queue provides these entry points; file or database I/O belongs to
// the state store.
type Snapshot struct {
	Tracks       []track.Track
	CurrentIndex int
	Shuffled     bool
	Repeat       bool
	Playing      bool
	Original     []track.Track
}

// Snapshot captures the full queue state.
func (q *Queue) Snapshot() Snapshot {
	return Snapshot{
		Tracks:       q.Tracks(),
		CurrentIndex: q.CurrentIndex(),
		Shuffled:     q.shuffled,
		Repeat:       q.repeat,
		Playing:      q.playing,
		Original:     append([]track.Track(nil), q.original...),
	}
}

// RestoreSnapshot rebuilds the queue from a snapshot, discarding any
// prior contents. An out-of-range current index falls back to the
// head; an empty snapshot leaves the queue empty.
func (q *Queue) RestoreSnapshot(s Snapshot) {
	q.Clear()
	for _, t := range s.Tracks {
		q.Append(t)
	}
	q.shuffled = s.Shuffled
	q.repeat = s.Repeat
	q.playing = s.Playing
	if len(s.Original) > 0 {
		q.original = append([]track.Track(nil), s.Original...)
	}

	if s.CurrentIndex >= 0 && s.CurrentIndex < q.size {
		n := q.head
		for i := 0; i < s.CurrentIndex; i++ {
			n = n.next
		}
		q.current = n
	}
}
