// Package catalog holds the sorted track index: an unbalanced binary
// search tree keyed by the composite order title, primary artist,
// album, duration. The tree is the store of record for all tracks;
// albums and playlists only hold references into it.
package catalog

import (
	"cmp"
	"iter"
	"strings"

	"github.com/lhoarau/trackcrate/internal/track"
)

type node struct {
	track  track.Track
	lower  *node
	higher *node
}

// Index is the ordered track index. It is not safe for concurrent use;
// callers that share an Index must serialize access externally.
type Index struct {
	root      *node
	size      int
	listeners []func(track.Track)
}

// New returns an empty index.
func New() *Index {
	return &Index{}
}

// OnInsert registers a callback invoked after every successful insert,
// with the inserted track. Album aggregation hangs off this hook; the
// index itself does no grouping.
func (ix *Index) OnInsert(fn func(track.Track)) {
	ix.listeners = append(ix.listeners, fn)
}

// Compare orders two tracks under the composite key: title, then
// primary artist, then album (case-insensitive), then duration.
func Compare(a, b track.Track) int {
	if c := cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)); c != 0 {
		return c
	}
	if c := cmp.Compare(
		strings.ToLower(a.Artist.Primary()),
		strings.ToLower(b.Artist.Primary()),
	); c != 0 {
		return c
	}
	if c := cmp.Compare(strings.ToLower(a.Album), strings.ToLower(b.Album)); c != 0 {
		return c
	}
	return cmp.Compare(a.Seconds, b.Seconds)
}

// Insert adds a track to the index. Duplicate composite keys are kept;
// a tie always descends the higher branch, so repeated insertion of
// identical keys produces the same tree shape. Insert never fails and
// always returns true; callers handle side effects (album attribution
// runs through OnInsert).
//
// Mutating key fields of an inserted track breaks the ordering
// invariant; such a caller must rebuild or re-insert.
func (ix *Index) Insert(t track.Track) bool {
	leaf := &node{track: t}
	if ix.root == nil {
		ix.root = leaf
	} else {
		cur := ix.root
		for {
			if Compare(t, cur.track) < 0 {
				if cur.lower == nil {
					cur.lower = leaf
					break
				}
				cur = cur.lower
			} else {
				if cur.higher == nil {
					cur.higher = leaf
					break
				}
				cur = cur.higher
			}
		}
	}
	ix.size++
	for _, fn := range ix.listeners {
		fn(t)
	}
	return true
}

// Contains reports whether a structurally equal track is already indexed.
// Equal composite keys always descend the higher branch, so every
// candidate lies on the comparison path.
func (ix *Index) Contains(t track.Track) bool {
	cur := ix.root
	for cur != nil {
		c := Compare(t, cur.track)
		if c < 0 {
			cur = cur.lower
			continue
		}
		if c == 0 && t.Equal(cur.track) {
			return true
		}
		cur = cur.higher
	}
	return false
}

// Len returns the number of tracks in the index.
func (ix *Index) Len() int {
	return ix.size
}

// AllSorted returns a fresh in-order traversal of the index, yielding
// every track in ascending composite order. The traversal is lazy and
// restartable; it does not mutate the tree.
func (ix *Index) AllSorted() iter.Seq[track.Track] {
	return func(yield func(track.Track) bool) {
		inOrder(ix.root, yield)
	}
}

func inOrder(n *node, yield func(track.Track) bool) bool {
	if n == nil {
		return true
	}
	if !inOrder(n.lower, yield) {
		return false
	}
	if !yield(n.track) {
		return false
	}
	return inOrder(n.higher, yield)
}

// Tracks returns all tracks in ascending composite order as a slice.
func (ix *Index) Tracks() []track.Track {
	out := make([]track.Track, 0, ix.size)
	for t := range ix.AllSorted() {
		out = append(out, t)
	}
	return out
}

// TrackAt returns the i-th track of the sorted order, for list display
// and selection by number.
func (ix *Index) TrackAt(i int) (track.Track, bool) {
	if i < 0 || i >= ix.size {
		return track.Track{}, false
	}
	pos := 0
	for t := range ix.AllSorted() {
		if pos == i {
			return t, true
		}
		pos++
	}
	return track.Track{}, false
}

// SearchByTitle returns all tracks whose title contains the query,
// case-insensitively, in sorted order. Substring matching cannot use
// the tree ordering to prune, so this is a full scan. An empty result
// is not an error.
func (ix *Index) SearchByTitle(query string) []track.Track {
	q := strings.ToLower(query)
	var matches []track.Track
	for t := range ix.AllSorted() {
		if strings.Contains(strings.ToLower(t.Title), q) {
			matches = append(matches, t)
		}
	}
	return matches
}
