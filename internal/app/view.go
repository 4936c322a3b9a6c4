package app

import (
	"strings"

	"github.com/lhoarau/trackcrate/internal/ui/playerbar"
	"github.com/lhoarau/trackcrate/internal/ui/render"
	"github.com/lhoarau/trackcrate/internal/ui/styles"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.panelView())

	if bar := playerbar.Render(playerbar.NewState(m.queue), m.width); bar != "" {
		b.WriteString("\n")
		b.WriteString(bar)
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine())

	return b.String()
}

func (m *Model) panelView() string {
	switch m.view {
	case viewLibrary:
		return m.libraryPanel.View()
	case viewAlbums:
		return m.albumsPanel.View()
	case viewAlbumDetail, viewPlaylistDetail:
		return m.detailPanel.View()
	case viewPlaylists:
		return m.playlistPanel.View()
	case viewQueue:
		return m.queuePanel.View()
	}
	return ""
}

func (m *Model) statusLine() string {
	if m.form != formNone {
		prompt := styles.T().S().Title.Render(m.form.prompt() + ": ")
		return prompt + m.input.View()
	}

	if m.status != "" {
		return styles.T().S().Base.Render(render.Truncate(m.status, m.width))
	}

	return styles.T().S().Subtle.Render(render.Truncate(m.helpLine(), m.width))
}

func (m *Model) helpLine() string {
	common := "1 library  2 albums  3 playlists  4 queue  space play/pause  ] next  [ prev  r repeat  s shuffle  q quit"

	switch m.view {
	case viewLibrary:
		return "/ search  a add  o sort  p to playlist  i import  e export  enter queue  " + common
	case viewAlbums:
		return "enter open  " + common
	case viewAlbumDetail:
		return "enter queue  esc back  " + common
	case viewPlaylists:
		return "c create  o order  i import  e export  enter open  " + common
	case viewPlaylistDetail:
		return "enter queue  o sort  esc back  " + common
	case viewQueue:
		return "enter jump  x clear  " + common
	}
	return common
}
