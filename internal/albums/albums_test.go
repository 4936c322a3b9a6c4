package albums

import (
	"testing"

	"github.com/lhoarau/trackcrate/internal/catalog"
	"github.com/lhoarau/trackcrate/internal/track"
)

func mustTrack(t *testing.T, title, album, duration string) track.Track {
	t.Helper()
	tr, err := track.New(title, track.Single("Artist"), album, duration)
	if err != nil {
		t.Fatalf("track.New(%q): %v", title, err)
	}
	return tr
}

func TestManager_AddTrackGroupsByAlbum(t *testing.T) {
	m := NewManager()
	m.AddTrack(mustTrack(t, "One", "Red", "3:00"))
	m.AddTrack(mustTrack(t, "Two", "Red", "4:00"))
	m.AddTrack(mustTrack(t, "Three", "1989", "2:30"))

	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	red := m.Get("Red")
	if red == nil || red.Len() != 2 {
		t.Fatalf("Red album = %v", red)
	}
	if got := red.TotalSeconds(); got != 420 {
		t.Errorf("Red TotalSeconds() = %d, want 420", got)
	}

	names := m.Names()
	if names[0] != "Red" || names[1] != "1989" {
		t.Errorf("Names() = %v, want first-seen order", names)
	}
}

func TestAlbum_RejectsDuplicates(t *testing.T) {
	m := NewManager()
	tr := mustTrack(t, "One", "Red", "3:00")
	m.AddTrack(tr)
	m.AddTrack(tr)

	if got := m.Get("Red").Len(); got != 1 {
		t.Errorf("album has %d tracks, want 1", got)
	}
}

func TestManager_ByIndex(t *testing.T) {
	m := NewManager()
	m.AddTrack(mustTrack(t, "One", "Red", "3:00"))

	if a := m.ByIndex(0); a == nil || a.Name() != "Red" {
		t.Errorf("ByIndex(0) = %v", a)
	}
	if a := m.ByIndex(1); a != nil {
		t.Errorf("ByIndex(1) = %v, want nil", a)
	}
}

func TestManager_AttributionFromCatalog(t *testing.T) {
	ix := catalog.New()
	m := NewManager()
	ix.OnInsert(m.AddTrack)

	ix.Insert(mustTrack(t, "Shake It Off", "1989", "3:39"))
	ix.Insert(mustTrack(t, "Bad Blood", "1989", "3:31"))

	album := m.Get("1989")
	if album == nil || album.Len() != 2 {
		t.Fatalf("attribution failed: %v", album)
	}
}
