package playlists

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// ListOrder names an ordering of the playlist list itself.
type ListOrder string

const (
	ByName        ListOrder = "name"
	ByDateCreated ListOrder = "date_created"
	ByTotalLength ListOrder = "duration"
)

// ErrUnknownOrder is returned for an unrecognized playlist list order.
var ErrUnknownOrder = fmt.Errorf("unknown playlist order")

// Manager maintains the name to playlist mapping.
type Manager struct {
	byName map[string]*Playlist
	order  []string // creation order, for stable listing
}

// NewManager returns an empty playlist manager.
func NewManager() *Manager {
	return &Manager{byName: make(map[string]*Playlist)}
}

// Create adds an empty playlist. A name conflict is an error.
func (m *Manager) Create(name string) (*Playlist, error) {
	return m.CreateAt(name, time.Now())
}

// CreateAt adds an empty playlist with an explicit creation time, used
// when restoring persisted playlists.
func (m *Manager) CreateAt(name string, createdAt time.Time) (*Playlist, error) {
	if _, taken := m.byName[name]; taken {
		return nil, fmt.Errorf("%w: %q", ErrExists, name)
	}
	p := newPlaylist(name, createdAt)
	m.byName[name] = p
	m.order = append(m.order, name)
	return p, nil
}

// Get returns the playlist with the given name, or nil.
func (m *Manager) Get(name string) *Playlist {
	return m.byName[name]
}

// Names returns all playlist names in creation order.
func (m *Manager) Names() []string {
	return append([]string(nil), m.order...)
}

// Len returns the number of playlists.
func (m *Manager) Len() int {
	return len(m.order)
}

// All returns every playlist in creation order.
func (m *Manager) All() []*Playlist {
	out := make([]*Playlist, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.byName[name])
	}
	return out
}

// ByIndex returns the i-th playlist of the given listing, or nil.
func (m *Manager) ByIndex(i int, listing []*Playlist) *Playlist {
	if listing == nil {
		listing = m.All()
	}
	if i < 0 || i >= len(listing) {
		return nil
	}
	return listing[i]
}

// Arrange returns the playlists ordered by name, creation date or
// total duration. The manager's own listing order is not changed.
func (m *Manager) Arrange(order ListOrder) ([]*Playlist, error) {
	list := m.All()
	switch order {
	case ByName:
		slices.SortStableFunc(list, func(a, b *Playlist) int {
			return strings.Compare(strings.ToLower(a.name), strings.ToLower(b.name))
		})
	case ByDateCreated:
		slices.SortStableFunc(list, func(a, b *Playlist) int {
			return a.createdAt.Compare(b.createdAt)
		})
	case ByTotalLength:
		slices.SortStableFunc(list, func(a, b *Playlist) int {
			return a.TotalSeconds() - b.TotalSeconds()
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOrder, string(order))
	}
	return list, nil
}
