// Package sorting implements the deterministic multi-key ordering used
// by playlists and playback ordering. Every criterion resolves ties
// down to the added-at timestamp, so two sorts of the same entries
// always agree.
package sorting

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/lhoarau/trackcrate/internal/track"
)

// Criterion names an ordering over playlist entries.
type Criterion string

const (
	ByTitle     Criterion = "title"
	ByArtist    Criterion = "artist"
	ByAlbum     Criterion = "album"
	ByDuration  Criterion = "duration"
	ByDateAdded Criterion = "date_added"
)

// ErrUnknownCriterion is returned for a criterion name that is not one
// of the constants above.
var ErrUnknownCriterion = fmt.Errorf("unknown sort criterion")

// Entry pairs a track with the time it was added to its collection.
type Entry struct {
	Track   track.Track
	AddedAt time.Time
}

// Valid reports whether c names a known criterion.
func (c Criterion) Valid() bool {
	switch c {
	case ByTitle, ByArtist, ByAlbum, ByDuration, ByDateAdded:
		return true
	}
	return false
}

// Criteria lists all valid criterion names in menu order.
func Criteria() []Criterion {
	return []Criterion{ByTitle, ByArtist, ByAlbum, ByDuration, ByDateAdded}
}

// compare orders two entries under the given criterion. The requested
// field leads; the remaining track fields follow; the added-at
// timestamp is always the final tie-breaker (and leads for
// ByDateAdded, with track fields breaking timestamp ties).
func compare(c Criterion, a, b Entry) int {
	title := cmp.Compare(strings.ToLower(a.Track.Title), strings.ToLower(b.Track.Title))
	artist := cmp.Compare(
		strings.ToLower(a.Track.Artist.Primary()),
		strings.ToLower(b.Track.Artist.Primary()),
	)
	album := cmp.Compare(strings.ToLower(a.Track.Album), strings.ToLower(b.Track.Album))
	duration := cmp.Compare(a.Track.Seconds, b.Track.Seconds)
	added := a.AddedAt.Compare(b.AddedAt)

	var chain [5]int
	switch c {
	case ByTitle:
		chain = [5]int{title, artist, album, duration, added}
	case ByArtist:
		chain = [5]int{artist, title, album, duration, added}
	case ByAlbum:
		chain = [5]int{album, title, artist, duration, added}
	case ByDuration:
		chain = [5]int{duration, title, artist, album, added}
	case ByDateAdded:
		chain = [5]int{added, title, artist, album, duration}
	}
	for _, r := range chain {
		if r != 0 {
			return r
		}
	}
	return 0
}

// Sort returns a new slice with the entries ordered by the given
// criterion. The input slice is never mutated; an unknown criterion is
// an error.
func Sort(entries []Entry, c Criterion) ([]Entry, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCriterion, string(c))
	}
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b Entry) int {
		return compare(c, a, b)
	})
	return out, nil
}
