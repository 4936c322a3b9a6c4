package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lhoarau/trackcrate/internal/config"
	"github.com/lhoarau/trackcrate/internal/sorting"
	"github.com/lhoarau/trackcrate/internal/ui/queuepanel"
)

func newTestApp(t *testing.T) *Model {
	t.Helper()
	cfg := &config.Config{DataDir: t.TempDir()}
	m, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(m.Close)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func addTrack(t *testing.T, m *Model, title, artist, album, duration string) {
	t.Helper()
	m.startForm(formTrackTitle)
	m.submitForm(title)
	m.submitForm(artist)
	m.submitForm(album)
	m.submitForm(duration)
	if strings.HasPrefix(m.status, "Failed") {
		t.Fatalf("addTrack %q: %s", title, m.status)
	}
}

func TestAddTrackFlow(t *testing.T) {
	m := newTestApp(t)

	addTrack(t, m, "Shake It Off", "Taylor Swift, Kendrick Lamar", "1989", "3:39")

	if m.library.Len() != 1 {
		t.Fatalf("library.Len() = %d, want 1", m.library.Len())
	}
	got := m.library.Tracks()[0]
	if !got.Artist.IsList() || got.Artist.Primary() != "Taylor Swift" {
		t.Errorf("artist = %v, want multi-artist list", got.Artist)
	}
	if m.albums.Get("1989") == nil {
		t.Error("album attribution did not run")
	}
	if len(m.libraryEntries) != 1 {
		t.Errorf("libraryEntries = %d, want 1", len(m.libraryEntries))
	}
}

func TestAddTrackInvalidDuration(t *testing.T) {
	m := newTestApp(t)

	m.startForm(formTrackTitle)
	m.submitForm("Broken")
	m.submitForm("Artist")
	m.submitForm("Album")
	m.submitForm("not a duration")

	if m.library.Len() != 0 {
		t.Error("invalid track should not be inserted")
	}
	if !strings.Contains(m.status, "Failed to add track to library") {
		t.Errorf("status = %q, want add failure", m.status)
	}
}

func TestSearchFilter(t *testing.T) {
	m := newTestApp(t)
	addTrack(t, m, "Shake It Off", "Taylor Swift", "1989", "3:39")
	addTrack(t, m, "Style", "Taylor Swift", "1989", "3:51")

	m.startForm(formSearch)
	m.submitForm("shake")

	if len(m.libraryList) != 1 || m.libraryList[0].Title != "Shake It Off" {
		t.Errorf("search results = %v", m.libraryList)
	}

	// esc clears the filter
	m.searchQuery = ""
	m.refreshLibrary()
	if len(m.libraryList) != 2 {
		t.Errorf("after clearing filter: %d tracks, want 2", len(m.libraryList))
	}
}

func TestEnqueueFromLibrary(t *testing.T) {
	m := newTestApp(t)
	addTrack(t, m, "Style", "Taylor Swift", "1989", "3:51")

	m.handleChosen(0)

	if m.queue.Len() != 1 {
		t.Fatalf("queue.Len() = %d, want 1", m.queue.Len())
	}
	if !strings.Contains(m.status, "Queued") {
		t.Errorf("status = %q, want queued message", m.status)
	}
}

func TestCycleSortChangesOrder(t *testing.T) {
	m := newTestApp(t)
	addTrack(t, m, "Zebra", "Artist", "Album", "1:00")
	addTrack(t, m, "Apple", "Artist", "Album", "9:00")

	if m.libraryList[0].Title != "Apple" {
		t.Fatalf("default order should be by title, got %v", m.libraryList)
	}

	// title -> artist -> album -> duration
	m.cycleSort()
	m.cycleSort()
	m.cycleSort()
	if m.sortCrit != sorting.ByDuration {
		t.Fatalf("sortCrit = %q, want duration", m.sortCrit)
	}
	if m.libraryList[0].Title != "Zebra" {
		t.Errorf("duration order = %v, want Zebra first", m.libraryList)
	}
}

func TestCreatePlaylistAndAddTrack(t *testing.T) {
	m := newTestApp(t)
	addTrack(t, m, "Style", "Taylor Swift", "1989", "3:51")

	m.startForm(formPlaylistName)
	m.submitForm("Road Trip")
	if m.playlists.Get("Road Trip") == nil {
		t.Fatal("playlist not created")
	}

	// duplicate name
	m.startForm(formPlaylistName)
	m.submitForm("Road Trip")
	if !strings.Contains(m.status, "Failed to create playlist") {
		t.Errorf("status = %q, want create failure", m.status)
	}

	m.pending = m.library.Tracks()[0]
	m.addPendingToPlaylist("Road Trip")
	if got := m.playlists.Get("Road Trip").Len(); got != 1 {
		t.Errorf("playlist len = %d, want 1", got)
	}

	// adding the same track again is rejected
	m.addPendingToPlaylist("Road Trip")
	if !strings.Contains(m.status, "already in") {
		t.Errorf("status = %q, want duplicate message", m.status)
	}
}

func TestQueueJumpMessage(t *testing.T) {
	m := newTestApp(t)
	addTrack(t, m, "One", "A", "X", "1:00")
	addTrack(t, m, "Two", "B", "Y", "2:00")
	m.handleChosen(0)
	m.handleChosen(1)

	m.Update(queuepanel.JumpToTrackMsg{Index: 1})

	if m.queue.CurrentIndex() != 1 {
		t.Errorf("CurrentIndex = %d, want 1", m.queue.CurrentIndex())
	}
	if !m.queue.IsPlaying() {
		t.Error("jump should start playback")
	}
}

func TestPlaybackToggle(t *testing.T) {
	m := newTestApp(t)

	m.togglePlayback()
	if m.status != "Queue is empty" {
		t.Errorf("status = %q, want empty-queue message", m.status)
	}

	addTrack(t, m, "One", "A", "X", "1:00")
	m.handleChosen(0)

	m.togglePlayback()
	if !m.queue.IsPlaying() {
		t.Error("toggle should start playback")
	}
	m.togglePlayback()
	if m.queue.IsPlaying() {
		t.Error("toggle should pause playback")
	}
}

func TestStatePersistsAcrossSessions(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{DataDir: dir}

	m, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	addTrack(t, m, "Style", "Taylor Swift", "1989", "3:51")
	addTrack(t, m, "One", "A", "X", "1:00")
	m.handleChosen(0)
	m.startForm(formPlaylistName)
	m.submitForm("Road Trip")
	m.save()
	m.Close()

	m2, err := New(cfg)
	if err != nil {
		t.Fatalf("New after save: %v", err)
	}
	defer m2.Close()

	if m2.library.Len() != 2 {
		t.Errorf("restored library = %d tracks, want 2", m2.library.Len())
	}
	if m2.queue.Len() != 1 {
		t.Errorf("restored queue = %d tracks, want 1", m2.queue.Len())
	}
	if m2.playlists.Get("Road Trip") == nil {
		t.Error("restored playlists missing Road Trip")
	}
	if m2.albums.Get("1989") == nil {
		t.Error("album attribution not replayed on restore")
	}
}

func TestViewRendersStatusAndPanel(t *testing.T) {
	m := newTestApp(t)
	addTrack(t, m, "Style", "Taylor Swift", "1989", "3:51")

	view := m.View()
	if !strings.Contains(view, "Library") {
		t.Errorf("view missing library panel:\n%s", view)
	}

	m.handleChosen(0)
	m.queue.Play()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	view = m.View()
	if !strings.Contains(view, "Style") {
		t.Errorf("view missing player bar track:\n%s", view)
	}
}

func TestShuffleToggle(t *testing.T) {
	m := newTestApp(t)
	for _, title := range []string{"One", "Two", "Three", "Four"} {
		addTrack(t, m, title, "A", "X", "1:00")
	}
	for i := range 4 {
		m.handleChosen(i)
	}

	m.toggleShuffle()
	if !m.queue.IsShuffled() {
		t.Error("queue should be shuffled")
	}
	m.toggleShuffle()
	if m.queue.IsShuffled() {
		t.Error("queue should be restored")
	}

	titles := make([]string, 0, 4)
	for _, tr := range m.queue.Tracks() {
		titles = append(titles, tr.Title)
	}
	want := []string{"One", "Two", "Three", "Four"}
	for i := range want {
		if titles[i] != want[i] {
			t.Fatalf("order after unshuffle = %v, want %v", titles, want)
		}
	}
}
