// Package queue implements the playback queue: a doubly-linked chain
// of tracks with a movable current cursor, repeat and shuffle modes,
// and snapshot/restore for state persistence.
package queue

import (
	"math/rand/v2"
	"time"

	"github.com/lhoarau/trackcrate/internal/track"
)

type node struct {
	track track.Track
	next  *node
	prev  *node
}

// Queue is the playback queue. The chain owns its nodes; the current
// cursor only points into it and is nil exactly when the queue is
// empty. Not safe for concurrent use.
type Queue struct {
	head    *node
	tail    *node
	current *node
	size    int

	shuffled bool
	repeat   bool
	playing  bool
	finished bool

	// order of tracks before the first shuffle, so shuffle-off can
	// restore it; tracks appended while shuffled are kept at the tail
	original []track.Track

	rng *rand.Rand
}

// New returns an empty queue with time-seeded randomness.
func New() *Queue {
	seed := uint64(time.Now().UnixNano())
	return NewWithRand(rand.New(rand.NewPCG(seed, seed)))
}

// NewWithRand returns an empty queue using the given random source,
// so shuffle permutations can be made deterministic in tests.
func NewWithRand(rng *rand.Rand) *Queue {
	return &Queue{rng: rng}
}

// Append adds a track at the tail in O(1). If the queue was empty the
// new node becomes current.
func (q *Queue) Append(t track.Track) {
	n := &node{track: t}
	if q.head == nil {
		q.head = n
		q.tail = n
		q.current = n
	} else {
		n.prev = q.tail
		q.tail.next = n
		q.tail = n
	}
	q.size++
	if !q.shuffled {
		q.original = append(q.original, t)
	}
}

// Replace clears the queue and loads the given tracks in order. The
// cursor lands on the first track, or nil for an empty load.
func (q *Queue) Replace(tracks []track.Track) {
	q.Clear()
	for _, t := range tracks {
		q.Append(t)
	}
}

// Current returns the track under the cursor, or nil if the queue is
// empty.
func (q *Queue) Current() *track.Track {
	if q.current == nil {
		return nil
	}
	return &q.current.track
}

// CurrentIndex returns the 0-based position of the cursor, or -1 if
// the queue is empty.
func (q *Queue) CurrentIndex() int {
	idx := 0
	for n := q.head; n != nil; n = n.next {
		if n == q.current {
			return idx
		}
		idx++
	}
	return -1
}

// JumpTo moves the cursor to the track at the given 0-based position.
// Out-of-range positions leave the cursor unchanged and return nil.
func (q *Queue) JumpTo(pos int) *track.Track {
	if pos < 0 || pos >= q.size {
		return nil
	}
	n := q.head
	for range pos {
		n = n.next
	}
	q.current = n
	q.finished = false
	return &n.track
}

// Next moves the cursor forward and returns the new current track.
// At the tail it wraps to the head when repeat is on; otherwise the
// cursor stays put, playback stops, and nil is returned.
func (q *Queue) Next() *track.Track {
	if q.current == nil {
		return nil
	}
	switch {
	case q.current.next != nil:
		q.current = q.current.next
	case q.repeat:
		q.current = q.head
	default:
		q.playing = false
		q.finished = true
		return nil
	}
	q.finished = false
	return &q.current.track
}

// Prev moves the cursor backward and returns the new current track.
// At the head it wraps to the tail when repeat is on; otherwise the
// cursor stays put and nil is returned.
func (q *Queue) Prev() *track.Track {
	if q.current == nil {
		return nil
	}
	switch {
	case q.current.prev != nil:
		q.current = q.current.prev
	case q.repeat:
		q.current = q.tail
	default:
		return nil
	}
	q.finished = false
	return &q.current.track
}

// Play marks playback active. On an empty queue it is a no-op. After
// the queue has finished (Next ran past the tail without repeat) it
// rewinds to the head, so play starts over instead of replaying the
// last track.
func (q *Queue) Play() {
	if q.current == nil {
		return
	}
	if q.finished {
		q.current = q.head
		q.finished = false
	}
	q.playing = true
}

// Pause marks playback inactive.
func (q *Queue) Pause() {
	q.playing = false
}

// IsPlaying reports whether playback is active.
func (q *Queue) IsPlaying() bool {
	return q.playing
}

// ToggleRepeat flips repeat mode and returns the new value.
func (q *Queue) ToggleRepeat() bool {
	q.repeat = !q.repeat
	return q.repeat
}

// Repeat reports whether repeat mode is on.
func (q *Queue) Repeat() bool {
	return q.repeat
}

// IsShuffled reports whether the queue is in shuffled order.
func (q *Queue) IsShuffled() bool {
	return q.shuffled
}

// Shuffle permutes the unplayed part of the queue: every node strictly
// after the current one. Nodes up to and including the current one
// keep their order and identity; the chain is rebuilt purely by
// relinking, so the cursor still references the same node afterwards.
// Shuffling an empty, single-element or already shuffled queue is a
// no-op.
func (q *Queue) Shuffle() {
	if q.shuffled || q.size <= 1 || q.current == nil {
		return
	}

	// Collect the unplayed segment.
	var unplayed []*node
	for n := q.current.next; n != nil; n = n.next {
		unplayed = append(unplayed, n)
	}
	if len(unplayed) == 0 {
		q.shuffled = true
		return
	}

	q.rng.Shuffle(len(unplayed), func(i, j int) {
		unplayed[i], unplayed[j] = unplayed[j], unplayed[i]
	})

	// Relink: played prefix and current are untouched, then the
	// permuted suffix.
	prev := q.current
	prev.next = nil
	for _, n := range unplayed {
		n.prev = prev
		n.next = nil
		prev.next = n
		prev = n
	}
	q.tail = prev
	q.shuffled = true
}

// Unshuffle restores the pre-shuffle order. Tracks appended while
// shuffled follow the original sequence at the tail. The cursor is
// re-seated on the first node holding the previously current track.
func (q *Queue) Unshuffle() {
	if !q.shuffled {
		return
	}

	var active *track.Track
	if q.current != nil {
		t := q.current.track
		active = &t
	}

	// Multiset diff against the pre-shuffle order: each chain node
	// consumes at most one matching original entry, so a track appended
	// while shuffled counts as added even when an equal track was
	// already queued.
	matched := make([]bool, len(q.original))
	var added []track.Track
	for n := q.head; n != nil; n = n.next {
		found := false
		for i, t := range q.original {
			if !matched[i] && t.Equal(n.track) {
				matched[i] = true
				found = true
				break
			}
		}
		if !found {
			added = append(added, n.track)
		}
	}
	tracks := append(q.original, added...)

	q.head = nil
	q.tail = nil
	q.current = nil
	q.size = 0
	q.shuffled = false
	q.finished = false
	q.original = nil
	for _, t := range tracks {
		q.Append(t)
	}

	if active != nil {
		for n := q.head; n != nil; n = n.next {
			if n.track.Equal(*active) {
				q.current = n
				break
			}
		}
	}
	if q.current == nil {
		q.current = q.head
	}
}

// Clear empties the queue and resets all modes.
func (q *Queue) Clear() {
	q.head = nil
	q.tail = nil
	q.current = nil
	q.size = 0
	q.shuffled = false
	q.repeat = false
	q.playing = false
	q.finished = false
	q.original = nil
}

// Len returns the number of tracks in the queue.
func (q *Queue) Len() int {
	return q.size
}

// IsEmpty reports whether the queue has no tracks.
func (q *Queue) IsEmpty() bool {
	return q.size == 0
}

// Tracks returns the queued tracks in chain order.
func (q *Queue) Tracks() []track.Track {
	out := make([]track.Track, 0, q.size)
	for n := q.head; n != nil; n = n.next {
		out = append(out, n.track)
	}
	return out
}

// TotalSeconds returns the summed duration of all queued tracks.
func (q *Queue) TotalSeconds() int {
	total := 0
	for n := q.head; n != nil; n = n.next {
		total += n.track.Seconds
	}
	return total
}

