package app

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lhoarau/trackcrate/internal/errmsg"
	"github.com/lhoarau/trackcrate/internal/interchange"
	"github.com/lhoarau/trackcrate/internal/playlists"
	"github.com/lhoarau/trackcrate/internal/track"
)

// trackDraft accumulates the add-track prompt answers.
type trackDraft struct {
	title  string
	artist string
	album  string
}

// form identifies the active text prompt, if any.
type form int

const (
	formNone form = iota
	formSearch
	formTrackTitle
	formTrackArtist
	formTrackAlbum
	formTrackDuration
	formPlaylistName
	formAddToPlaylist
	formImportTracks
	formExportTracks
	formImportPlaylists
	formExportPlaylists
)

func (f form) prompt() string {
	switch f {
	case formSearch:
		return "Search title"
	case formTrackTitle:
		return "Title"
	case formTrackArtist:
		return "Artist (comma-separated for several)"
	case formTrackAlbum:
		return "Album"
	case formTrackDuration:
		return "Duration (M:SS)"
	case formPlaylistName:
		return "Playlist name"
	case formAddToPlaylist:
		return "Add to playlist"
	case formImportTracks:
		return "Import tracks from (.json/.csv)"
	case formExportTracks:
		return "Export tracks to (.json)"
	case formImportPlaylists:
		return "Import playlists from (.json/.csv)"
	case formExportPlaylists:
		return "Export playlists to (.json)"
	}
	return ""
}

func (m *Model) startForm(f form) {
	m.form = f
	m.input.Reset()
	m.input.Placeholder = ""
	m.input.Focus()
	m.status = ""
}

func (m *Model) cancelForm() {
	m.form = formNone
	m.input.Blur()
	m.input.Reset()
}

// updateForm routes keys to the active prompt. Enter submits, escape
// cancels.
func (m *Model) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.cancelForm()
		return nil
	case "enter":
		text := strings.TrimSpace(m.input.Value())
		m.submitForm(text)
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) submitForm(text string) {
	f := m.form
	m.cancelForm()

	switch f {
	case formSearch:
		m.searchQuery = text
		m.libraryPanel.Reset()
		m.refreshLibrary()

	case formTrackTitle:
		m.draft = trackDraft{title: text}
		m.startForm(formTrackArtist)

	case formTrackArtist:
		m.draft.artist = text
		m.startForm(formTrackAlbum)

	case formTrackAlbum:
		m.draft.album = text
		m.startForm(formTrackDuration)

	case formTrackDuration:
		m.finishAddTrack(text)

	case formPlaylistName:
		m.createPlaylist(text)

	case formAddToPlaylist:
		m.addPendingToPlaylist(text)

	case formImportTracks:
		m.importTracks(text)

	case formExportTracks:
		m.exportTracks(text)

	case formImportPlaylists:
		m.importPlaylists(text)

	case formExportPlaylists:
		m.exportPlaylists(text)
	}
}

func (m *Model) finishAddTrack(duration string) {
	tr, err := track.New(m.draft.title, parseArtist(m.draft.artist), m.draft.album, duration)
	if err != nil {
		m.status = errmsg.Format(errmsg.OpLibraryAdd, err)
		return
	}

	m.library.Insert(tr)
	m.refreshLibrary()
	m.refreshAlbums()
	m.status = "Added " + tr.Display()
}

func parseArtist(cell string) track.Artist {
	if !strings.Contains(cell, ",") {
		return track.Single(strings.TrimSpace(cell))
	}
	parts := strings.Split(cell, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	return track.Multiple(names...)
}

func (m *Model) createPlaylist(name string) {
	if name == "" {
		return
	}
	if _, err := m.playlists.Create(name); err != nil {
		if errors.Is(err, playlists.ErrExists) {
			m.status = errmsg.FormatWith(errmsg.OpPlaylistCreate, name, err)
		} else {
			m.status = errmsg.Format(errmsg.OpPlaylistCreate, err)
		}
		return
	}
	m.refreshPlaylists()
	m.status = "Created playlist " + name
}

func (m *Model) addPendingToPlaylist(name string) {
	p := m.playlists.Get(name)
	if p == nil {
		m.status = errmsg.FormatWith(errmsg.OpPlaylistAddTrack, name, errors.New("no such playlist"))
		return
	}
	if !p.Add(m.pending) {
		m.status = fmt.Sprintf("%s is already in %s", m.pending.Title, name)
		return
	}
	m.refreshPlaylists()
	m.refreshDetail()
	m.status = fmt.Sprintf("Added %s to %s", m.pending.Title, name)
}

func (m *Model) importTracks(path string) {
	report, err := interchange.ImportTracks(path, func(t track.Track) bool {
		if m.library.Contains(t) {
			return false
		}
		return m.library.Insert(t)
	})
	if err != nil {
		m.status = errmsg.FormatWith(errmsg.OpImportTracks, path, err)
		return
	}
	m.refreshLibrary()
	m.refreshAlbums()
	m.status = report.Summary()
}

func (m *Model) exportTracks(path string) {
	if err := interchange.ExportTracks(path, m.library.Tracks()); err != nil {
		m.status = errmsg.FormatWith(errmsg.OpExportTracks, path, err)
		return
	}
	m.status = fmt.Sprintf("Exported %d tracks to %s", m.library.Len(), path)
}

func (m *Model) importPlaylists(path string) {
	report, err := interchange.ImportPlaylists(path, m.playlists, func(t track.Track) bool {
		if m.library.Contains(t) {
			return false
		}
		return m.library.Insert(t)
	})
	if err != nil {
		m.status = errmsg.FormatWith(errmsg.OpImportPlaylists, path, err)
		return
	}
	m.refreshLibrary()
	m.refreshAlbums()
	m.refreshPlaylists()
	m.status = report.Summary()
}

func (m *Model) exportPlaylists(path string) {
	if err := interchange.ExportPlaylists(path, m.playlists.All()); err != nil {
		m.status = errmsg.FormatWith(errmsg.OpExportPlaylists, path, err)
		return
	}
	m.status = fmt.Sprintf("Exported %d playlists to %s", m.playlists.Len(), path)
}
