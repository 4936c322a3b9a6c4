package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lhoarau/trackcrate/internal/playlists"
	"github.com/lhoarau/trackcrate/internal/sorting"
	"github.com/lhoarau/trackcrate/internal/track"
	"github.com/lhoarau/trackcrate/internal/ui"
	"github.com/lhoarau/trackcrate/internal/ui/queuepanel"
	"github.com/lhoarau/trackcrate/internal/ui/tracklist"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizePanels()
		return m, nil

	case tracklist.ChosenMsg:
		m.handleChosen(msg.Index)
		return m, nil

	case queuepanel.JumpToTrackMsg:
		if tr := m.queue.JumpTo(msg.Index); tr != nil {
			m.queue.Play()
			m.status = "Playing " + tr.Display()
		}
		return m, nil

	case tea.KeyMsg:
		if m.form != formNone {
			return m, m.updateForm(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) resizePanels() {
	panelHeight := m.height - ui.StatusBarHeight
	if m.queue.Current() != nil {
		panelHeight -= ui.PlayerBarHeight
	}

	m.libraryPanel.SetSize(m.width, panelHeight)
	m.albumsPanel.SetSize(m.width, panelHeight)
	m.detailPanel.SetSize(m.width, panelHeight)
	m.playlistPanel.SetSize(m.width, panelHeight)
	m.queuePanel.SetSize(m.width, panelHeight)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.save()
		m.Close()
		return m, tea.Quit

	case "1":
		m.setView(viewLibrary)
		return m, nil
	case "2":
		m.setView(viewAlbums)
		return m, nil
	case "3":
		m.setView(viewPlaylists)
		return m, nil
	case "4":
		m.setView(viewQueue)
		return m, nil

	case " ":
		m.togglePlayback()
		return m, nil
	case "]":
		m.nextTrack()
		return m, nil
	case "[":
		m.prevTrack()
		return m, nil
	case "r":
		if m.queue.ToggleRepeat() {
			m.status = "Repeat on"
		} else {
			m.status = "Repeat off"
		}
		return m, nil
	case "s":
		m.toggleShuffle()
		return m, nil
	}

	return m.handleViewKey(msg)
}

func (m *Model) handleViewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch m.view {
	case viewLibrary:
		switch key {
		case "/":
			m.startForm(formSearch)
			return m, nil
		case "a":
			m.startForm(formTrackTitle)
			return m, nil
		case "o":
			m.cycleSort()
			return m, nil
		case "p":
			if tr, ok := m.selectedLibraryTrack(); ok {
				m.pending = tr
				m.startForm(formAddToPlaylist)
			}
			return m, nil
		case "i":
			m.startForm(formImportTracks)
			return m, nil
		case "e":
			m.startForm(formExportTracks)
			return m, nil
		case "esc":
			if m.searchQuery != "" {
				m.searchQuery = ""
				m.libraryPanel.Reset()
				m.refreshLibrary()
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.libraryPanel, cmd = m.libraryPanel.Update(msg)
		return m, cmd

	case viewAlbums:
		var cmd tea.Cmd
		m.albumsPanel, cmd = m.albumsPanel.Update(msg)
		return m, cmd

	case viewAlbumDetail:
		if key == "esc" {
			m.openAlbum = nil
			m.setView(viewAlbums)
			return m, nil
		}
		var cmd tea.Cmd
		m.detailPanel, cmd = m.detailPanel.Update(msg)
		return m, cmd

	case viewPlaylists:
		switch key {
		case "c":
			m.startForm(formPlaylistName)
			return m, nil
		case "o":
			m.cycleListOrder()
			return m, nil
		case "i":
			m.startForm(formImportPlaylists)
			return m, nil
		case "e":
			m.startForm(formExportPlaylists)
			return m, nil
		}
		var cmd tea.Cmd
		m.playlistPanel, cmd = m.playlistPanel.Update(msg)
		return m, cmd

	case viewPlaylistDetail:
		switch key {
		case "esc":
			m.openPlaylist = nil
			m.setView(viewPlaylists)
			return m, nil
		case "o":
			m.cyclePlaylistSort()
			return m, nil
		}
		var cmd tea.Cmd
		m.detailPanel, cmd = m.detailPanel.Update(msg)
		return m, cmd

	case viewQueue:
		if key == "x" {
			m.queue.Clear()
			m.status = "Queue cleared"
			m.resizePanels()
			return m, nil
		}
		var cmd tea.Cmd
		m.queuePanel, cmd = m.queuePanel.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleChosen resolves an enter press on the focused list panel.
func (m *Model) handleChosen(idx int) {
	switch m.view {
	case viewLibrary:
		if idx < len(m.libraryList) {
			m.enqueue(m.libraryList[idx])
		}

	case viewAlbums:
		if a := m.albums.ByIndex(idx); a != nil {
			m.openAlbum = a
			m.setView(viewAlbumDetail)
			m.detailPanel.Reset()
			m.refreshDetail()
		}

	case viewAlbumDetail, viewPlaylistDetail:
		tracks := m.detailTracks()
		if idx < len(tracks) {
			m.enqueue(tracks[idx])
		}

	case viewPlaylists:
		if p := m.playlists.ByIndex(idx, m.arranged); p != nil {
			m.openPlaylist = p
			m.setView(viewPlaylistDetail)
			m.detailPanel.Reset()
			m.refreshDetail()
		}
	}
}

func (m *Model) selectedLibraryTrack() (track.Track, bool) {
	idx := m.libraryPanel.Pos()
	if idx < 0 || idx >= len(m.libraryList) {
		return track.Track{}, false
	}
	return m.libraryList[idx], true
}

func (m *Model) enqueue(t track.Track) {
	hadCurrent := m.queue.Current() != nil
	m.queue.Append(t)
	m.status = "Queued " + t.Display()
	if !hadCurrent {
		m.resizePanels()
	}
}

func (m *Model) togglePlayback() {
	if m.queue.Current() == nil {
		m.status = "Queue is empty"
		return
	}
	if m.queue.IsPlaying() {
		m.queue.Pause()
		m.status = "Paused"
	} else {
		m.queue.Play()
		if cur := m.queue.Current(); cur != nil {
			m.status = "Playing " + cur.Display()
		}
	}
}

func (m *Model) nextTrack() {
	if tr := m.queue.Next(); tr != nil {
		m.status = "Playing " + tr.Display()
	} else if !m.queue.IsEmpty() {
		m.status = "End of queue"
	}
}

func (m *Model) prevTrack() {
	if tr := m.queue.Prev(); tr != nil {
		m.status = "Playing " + tr.Display()
	}
}

func (m *Model) toggleShuffle() {
	if m.queue.IsEmpty() {
		return
	}
	if m.queue.IsShuffled() {
		m.queue.Unshuffle()
		m.status = "Shuffle off"
	} else {
		m.queue.Shuffle()
		m.status = "Shuffle on"
	}
}

// advanceSortCrit moves to the next sort criterion in rotation.
func (m *Model) advanceSortCrit() {
	crits := sorting.Criteria()
	for i, c := range crits {
		if c == m.sortCrit {
			m.sortCrit = crits[(i+1)%len(crits)]
			return
		}
	}
	m.sortCrit = crits[0]
}

// cycleSort advances the library sort criterion.
func (m *Model) cycleSort() {
	m.advanceSortCrit()
	m.libraryPanel.Reset()
	m.refreshLibrary()
}

// cycleListOrder advances the playlist listing order.
func (m *Model) cycleListOrder() {
	orders := []playlists.ListOrder{playlists.ByName, playlists.ByDateCreated, playlists.ByTotalLength}
	for i, o := range orders {
		if o == m.listOrder {
			m.listOrder = orders[(i+1)%len(orders)]
			break
		}
	}
	m.playlistPanel.Reset()
	m.refreshPlaylists()
}

// cyclePlaylistSort re-sorts the open playlist by the next criterion.
func (m *Model) cyclePlaylistSort() {
	if m.openPlaylist == nil {
		return
	}
	m.advanceSortCrit()
	if err := m.openPlaylist.Sort(m.sortCrit); err != nil {
		m.status = errStatus(err)
		return
	}
	m.refreshDetail()
	m.status = "Sorted by " + string(m.sortCrit)
}
