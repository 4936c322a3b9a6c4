// Package app wires the catalog, queue, playlists and persistence into the
// top-level bubbletea model.
package app

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/lhoarau/trackcrate/internal/albums"
	"github.com/lhoarau/trackcrate/internal/catalog"
	"github.com/lhoarau/trackcrate/internal/config"
	"github.com/lhoarau/trackcrate/internal/playlists"
	"github.com/lhoarau/trackcrate/internal/queue"
	"github.com/lhoarau/trackcrate/internal/sorting"
	"github.com/lhoarau/trackcrate/internal/state"
	"github.com/lhoarau/trackcrate/internal/track"
	"github.com/lhoarau/trackcrate/internal/ui/queuepanel"
	"github.com/lhoarau/trackcrate/internal/ui/tracklist"
)

// view identifies which panel currently has focus.
type view int

const (
	viewLibrary view = iota
	viewAlbums
	viewAlbumDetail
	viewPlaylists
	viewPlaylistDetail
	viewQueue
)

// Model is the application root model. It is used as a pointer so the
// catalog insert listeners keep writing to the live model.
type Model struct {
	cfg      *config.Config
	stateMgr *state.Manager

	library   *catalog.Index
	albums    *albums.Manager
	playlists *playlists.Manager
	queue     *queue.Queue

	// libraryEntries mirrors the catalog with add timestamps so the sort
	// engine can order by date_added.
	libraryEntries []sorting.Entry
	sortCrit       sorting.Criterion
	listOrder      playlists.ListOrder

	// searchQuery is non-empty while the library shows filtered results.
	searchQuery string

	// libraryList holds the tracks behind the library panel rows, in
	// display order.
	libraryList []track.Track

	// arranged holds the playlists behind the playlist panel rows.
	arranged []*playlists.Playlist

	view         view
	openAlbum    *albums.Album
	openPlaylist *playlists.Playlist

	libraryPanel  tracklist.Model
	albumsPanel   tracklist.Model
	detailPanel   tracklist.Model
	playlistPanel tracklist.Model
	queuePanel    queuepanel.Model

	form    form
	input   textinput.Model
	draft   trackDraft
	pending track.Track

	status string
	width  int
	height int
}

// New builds the application model, restoring saved state from disk.
func New(cfg *config.Config) (*Model, error) {
	stateMgr, err := openState(cfg)
	if err != nil {
		return nil, err
	}

	m := &Model{
		cfg:           cfg,
		stateMgr:      stateMgr,
		library:       catalog.New(),
		albums:        albums.NewManager(),
		queue:         queue.New(),
		sortCrit:      cfg.GetDefaultSort(),
		listOrder:     cfg.GetPlaylistOrder(),
		libraryPanel:  tracklist.New("Library"),
		albumsPanel:   tracklist.New("Albums"),
		detailPanel:   tracklist.New("Album"),
		playlistPanel: tracklist.New("Playlists"),
		input:         newInput(),
	}

	m.library.OnInsert(m.albums.AddTrack)
	m.library.OnInsert(func(t track.Track) {
		m.libraryEntries = append(m.libraryEntries, sorting.Entry{
			Track:   t,
			AddedAt: time.Now(),
		})
	})

	if err := m.restore(); err != nil {
		stateMgr.Close()
		return nil, err
	}

	m.queuePanel = queuepanel.New(m.queue)
	m.libraryPanel.SetPageSize(cfg.GetPageSize())
	m.detailPanel.SetPageSize(cfg.GetPageSize())
	m.refreshLibrary()
	m.refreshAlbums()
	m.refreshPlaylists()
	m.setView(viewLibrary)

	return m, nil
}

func openState(cfg *config.Config) (*state.Manager, error) {
	if cfg.DataDir != "" {
		return state.OpenAt(filepath.Join(cfg.DataDir, "trackcrate.db"))
	}
	return state.Open()
}

func newInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50
	return ti
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Close releases the state database.
func (m *Model) Close() {
	m.stateMgr.Close()
}

func (m *Model) setView(v view) {
	m.view = v

	m.libraryPanel.SetFocused(v == viewLibrary)
	m.albumsPanel.SetFocused(v == viewAlbums)
	m.detailPanel.SetFocused(v == viewAlbumDetail || v == viewPlaylistDetail)
	m.playlistPanel.SetFocused(v == viewPlaylists)
	m.queuePanel.SetFocused(v == viewQueue)

	if v == viewQueue {
		m.queuePanel.FollowCurrent()
	}
}

// refreshLibrary rebuilds the library panel rows from the current sort
// criterion and search filter.
func (m *Model) refreshLibrary() {
	switch {
	case m.searchQuery != "":
		m.libraryList = m.library.SearchByTitle(m.searchQuery)
		m.libraryPanel.SetTitle("Library /" + m.searchQuery)
	case m.sortCrit == sorting.ByTitle:
		// Title order is the catalog's natural order.
		m.libraryList = m.library.Tracks()
		m.libraryPanel.SetTitle("Library")
	default:
		sorted, err := sorting.Sort(m.libraryEntries, m.sortCrit)
		if err != nil {
			m.status = errStatus(err)
			return
		}
		m.libraryList = make([]track.Track, len(sorted))
		for i, e := range sorted {
			m.libraryList[i] = e.Track
		}
		m.libraryPanel.SetTitle("Library by " + string(m.sortCrit))
	}

	m.libraryPanel.SetItems(trackItems(m.libraryList))
}

func (m *Model) refreshAlbums() {
	items := make([]tracklist.Item, 0, m.albums.Len())
	for _, a := range m.albums.All() {
		items = append(items, tracklist.Item{
			Title:  a.Name(),
			Artist: trackCountLabel(a.Len()),
			Detail: track.FormatDuration(a.TotalSeconds()),
		})
	}
	m.albumsPanel.SetItems(items)
}

func (m *Model) refreshPlaylists() {
	arranged, err := m.playlists.Arrange(m.listOrder)
	if err != nil {
		m.status = errStatus(err)
		return
	}
	m.arranged = arranged

	items := make([]tracklist.Item, 0, len(arranged))
	for _, p := range arranged {
		detail := track.FormatRuntime(p.TotalSeconds())
		if m.listOrder == playlists.ByDateCreated {
			detail = humanize.Time(p.CreatedAt())
		}
		items = append(items, tracklist.Item{
			Title:  p.Name(),
			Artist: trackCountLabel(p.Len()),
			Detail: detail,
		})
	}
	m.playlistPanel.SetTitle("Playlists by " + string(m.listOrder))
	m.playlistPanel.SetItems(items)
}

func (m *Model) refreshDetail() {
	switch m.view {
	case viewAlbumDetail:
		if m.openAlbum != nil {
			title := "Album: " + m.openAlbum.Name() + " (" + track.FormatRuntime(m.openAlbum.TotalSeconds()) + ")"
			m.detailPanel.SetTitle(title)
			m.detailPanel.SetItems(trackItems(m.openAlbum.Tracks()))
		}
	case viewPlaylistDetail:
		if m.openPlaylist != nil {
			title := "Playlist: " + m.openPlaylist.Name() + " (" + track.FormatRuntime(m.openPlaylist.TotalSeconds()) + ")"
			m.detailPanel.SetTitle(title)
			m.detailPanel.SetItems(playlistItems(m.openPlaylist.Entries()))
		}
	}
}

// detailTracks returns the tracks behind the detail panel rows.
func (m *Model) detailTracks() []track.Track {
	switch m.view {
	case viewAlbumDetail:
		if m.openAlbum != nil {
			return m.openAlbum.Tracks()
		}
	case viewPlaylistDetail:
		if m.openPlaylist != nil {
			return m.openPlaylist.Tracks()
		}
	}
	return nil
}

func trackItems(tracks []track.Track) []tracklist.Item {
	items := make([]tracklist.Item, len(tracks))
	for i, t := range tracks {
		items[i] = tracklist.Item{
			Title:  t.Title,
			Artist: t.Artist.String(),
			Detail: track.FormatDuration(t.Seconds),
		}
	}
	return items
}

func playlistItems(entries []sorting.Entry) []tracklist.Item {
	items := make([]tracklist.Item, len(entries))
	for i, e := range entries {
		items[i] = tracklist.Item{
			Title:  e.Track.Title,
			Artist: e.Track.Artist.String(),
			Detail: fmt.Sprintf("%s  %s", track.FormatDuration(e.Track.Seconds), humanize.Time(e.AddedAt)),
		}
	}
	return items
}

func trackCountLabel(n int) string {
	if n == 1 {
		return "1 track"
	}
	return fmt.Sprintf("%d tracks", n)
}
