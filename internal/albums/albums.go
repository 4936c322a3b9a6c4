// Package albums groups catalog tracks by album name. The manager
// consumes the catalog's insert notifications; it never scans the
// index itself.
package albums

import (
	"github.com/lhoarau/trackcrate/internal/track"
)

// Album is an ordered collection of tracks sharing an album name.
type Album struct {
	name   string
	tracks []track.Track
}

// Name returns the album name.
func (a *Album) Name() string {
	return a.name
}

// Tracks returns the album's tracks in the order they were filed.
func (a *Album) Tracks() []track.Track {
	return append([]track.Track(nil), a.tracks...)
}

// Len returns the number of tracks in the album.
func (a *Album) Len() int {
	return len(a.tracks)
}

// Add files a track in the album. A structurally equal track already
// present is rejected.
func (a *Album) Add(t track.Track) bool {
	for _, existing := range a.tracks {
		if existing.Equal(t) {
			return false
		}
	}
	a.tracks = append(a.tracks, t)
	return true
}

// TotalSeconds returns the summed duration of the album's tracks.
func (a *Album) TotalSeconds() int {
	total := 0
	for _, t := range a.tracks {
		total += t.Seconds
	}
	return total
}

// Manager maintains the album-name to album mapping. Wire its AddTrack
// to catalog.Index.OnInsert so inserted tracks are filed automatically.
type Manager struct {
	byName map[string]*Album
	names  []string // insertion order, for stable listing
}

// NewManager returns an empty album manager.
func NewManager() *Manager {
	return &Manager{byName: make(map[string]*Album)}
}

// AddTrack files a track under its album name, creating the album on
// first sight. Duplicate tracks within an album are ignored.
func (m *Manager) AddTrack(t track.Track) {
	album, ok := m.byName[t.Album]
	if !ok {
		album = &Album{name: t.Album}
		m.byName[t.Album] = album
		m.names = append(m.names, t.Album)
	}
	album.Add(t)
}

// Get returns the album with the given name, or nil.
func (m *Manager) Get(name string) *Album {
	return m.byName[name]
}

// Names returns all album names in first-seen order.
func (m *Manager) Names() []string {
	return append([]string(nil), m.names...)
}

// ByIndex returns the i-th album of the listing order, or nil.
func (m *Manager) ByIndex(i int) *Album {
	if i < 0 || i >= len(m.names) {
		return nil
	}
	return m.byName[m.names[i]]
}

// Len returns the number of albums.
func (m *Manager) Len() int {
	return len(m.names)
}

// All returns every album in listing order.
func (m *Manager) All() []*Album {
	out := make([]*Album, 0, len(m.names))
	for _, name := range m.names {
		out = append(out, m.byName[name])
	}
	return out
}
