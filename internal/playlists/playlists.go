// Package playlists implements user playlists: named, timestamped,
// duplicate-rejecting track collections ordered by the sorting engine.
package playlists

import (
	"fmt"
	"strings"
	"time"

	"github.com/lhoarau/trackcrate/internal/sorting"
	"github.com/lhoarau/trackcrate/internal/track"
)

// ErrExists is returned when creating a playlist whose name is taken.
var ErrExists = fmt.Errorf("playlist already exists")

// Playlist is an ordered collection of (track, added-at) entries.
type Playlist struct {
	name      string
	createdAt time.Time
	entries   []sorting.Entry
	seen      map[string]struct{}
}

// NewPlaylist creates an empty playlist created now.
func NewPlaylist(name string) *Playlist {
	return newPlaylist(name, time.Now())
}

func newPlaylist(name string, createdAt time.Time) *Playlist {
	return &Playlist{
		name:      name,
		createdAt: createdAt,
		seen:      make(map[string]struct{}),
	}
}

// identity keys duplicate detection: lowercased title plus the artist
// in string form.
func identity(t track.Track) string {
	return strings.ToLower(t.Title) + "|" + strings.ToLower(t.Artist.String())
}

// Name returns the playlist name.
func (p *Playlist) Name() string {
	return p.name
}

// CreatedAt returns the creation time.
func (p *Playlist) CreatedAt() time.Time {
	return p.createdAt
}

// Len returns the number of entries.
func (p *Playlist) Len() int {
	return len(p.entries)
}

// Add appends a track stamped with the current time. A track with the
// same title and artist already present is rejected.
func (p *Playlist) Add(t track.Track) bool {
	return p.AddAt(t, time.Now())
}

// AddAt appends a track with an explicit added-at time, used when
// restoring persisted playlists.
func (p *Playlist) AddAt(t track.Track, addedAt time.Time) bool {
	id := identity(t)
	if _, dup := p.seen[id]; dup {
		return false
	}
	p.seen[id] = struct{}{}
	p.entries = append(p.entries, sorting.Entry{Track: t, AddedAt: addedAt})
	return true
}

// Entries returns the (track, added-at) pairs in playlist order.
func (p *Playlist) Entries() []sorting.Entry {
	return append([]sorting.Entry(nil), p.entries...)
}

// Tracks returns the playlist's tracks in order.
func (p *Playlist) Tracks() []track.Track {
	out := make([]track.Track, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.Track
	}
	return out
}

// TotalSeconds returns the summed track durations.
func (p *Playlist) TotalSeconds() int {
	total := 0
	for _, e := range p.entries {
		total += e.Track.Seconds
	}
	return total
}

// Sort reorders the playlist by the given criterion. On an unknown
// criterion the playlist is left untouched and the error surfaced.
func (p *Playlist) Sort(c sorting.Criterion) error {
	sorted, err := sorting.Sort(p.entries, c)
	if err != nil {
		return err
	}
	p.entries = sorted
	return nil
}
