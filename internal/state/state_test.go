package state

import (
	"testing"
	"time"

	"github.com/lhoarau/trackcrate/internal/playlists"
	"github.com/lhoarau/trackcrate/internal/queue"
	"github.com/lhoarau/trackcrate/internal/track"
)

// setupManager opens an in-memory state database.
func setupManager(t *testing.T) *Manager {
	t.Helper()
	m, err := OpenAt("")
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func mustTrack(t *testing.T, title, artist, album, duration string) track.Track {
	t.Helper()
	tr, err := track.New(title, track.Single(artist), album, duration)
	if err != nil {
		t.Fatalf("track.New(%q): %v", title, err)
	}
	return tr
}

func TestLibrary_SaveLoadRoundTrip(t *testing.T) {
	m := setupManager(t)

	tracks := []track.Track{
		mustTrack(t, "Apple", "A", "X", "3:00"),
		mustTrack(t, "Mango", "B", "Y", "4:10"),
	}
	multi, err := track.New("Shake It Off", track.Multiple("Taylor Swift", "Kendrick Lamar"), "1989", "3:39")
	if err != nil {
		t.Fatalf("track.New: %v", err)
	}
	tracks = append(tracks, multi)

	if err := m.SaveLibrary(tracks); err != nil {
		t.Fatalf("SaveLibrary: %v", err)
	}

	loaded, err := m.LoadLibrary()
	if err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}
	if len(loaded) != len(tracks) {
		t.Fatalf("loaded %d tracks, want %d", len(loaded), len(tracks))
	}
	for i := range tracks {
		if !loaded[i].Equal(tracks[i]) {
			t.Errorf("track %d = %+v, want %+v", i, loaded[i], tracks[i])
		}
	}
	// The multi-artist track keeps its sequence form.
	if !loaded[2].Artist.IsList() {
		t.Error("artist sequence form lost in round trip")
	}
}

func TestLibrary_SaveReplacesPrevious(t *testing.T) {
	m := setupManager(t)

	if err := m.SaveLibrary([]track.Track{mustTrack(t, "Old", "A", "X", "1:00")}); err != nil {
		t.Fatalf("SaveLibrary: %v", err)
	}
	if err := m.SaveLibrary([]track.Track{mustTrack(t, "New", "A", "X", "1:00")}); err != nil {
		t.Fatalf("SaveLibrary: %v", err)
	}

	loaded, err := m.LoadLibrary()
	if err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Title != "New" {
		t.Errorf("loaded = %+v, want only New", loaded)
	}
}

func TestQueue_LoadEmpty(t *testing.T) {
	m := setupManager(t)

	snap, err := m.LoadQueue()
	if err != nil {
		t.Fatalf("LoadQueue: %v", err)
	}
	if snap.CurrentIndex != -1 || len(snap.Tracks) != 0 {
		t.Errorf("empty snapshot = %+v", snap)
	}
}

func TestQueue_SaveLoadRoundTrip(t *testing.T) {
	m := setupManager(t)

	q := queue.New()
	for _, title := range []string{"A", "B", "C"} {
		q.Append(mustTrack(t, title, "Artist", "Album", "3:00"))
	}
	q.Next()
	q.ToggleRepeat()
	q.Play()

	if err := m.SaveQueue(q.Snapshot()); err != nil {
		t.Fatalf("SaveQueue: %v", err)
	}

	snap, err := m.LoadQueue()
	if err != nil {
		t.Fatalf("LoadQueue: %v", err)
	}

	restored := queue.New()
	restored.RestoreSnapshot(snap)
	if restored.Len() != 3 {
		t.Fatalf("restored Len() = %d, want 3", restored.Len())
	}
	if cur := restored.Current(); cur == nil || cur.Title != "B" {
		t.Errorf("restored current = %v, want B", cur)
	}
	if !restored.Repeat() || !restored.IsPlaying() {
		t.Error("mode flags lost in round trip")
	}
}

func TestPlaylists_SaveLoadRoundTrip(t *testing.T) {
	m := setupManager(t)

	mgr := playlists.NewManager()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	p, err := mgr.CreateAt("Road Trip", base)
	if err != nil {
		t.Fatalf("CreateAt: %v", err)
	}
	p.AddAt(mustTrack(t, "One", "A", "X", "3:00"), base.Add(time.Minute))
	p.AddAt(mustTrack(t, "Two", "B", "Y", "2:00"), base.Add(2*time.Minute))

	if _, err := mgr.CreateAt("Chill", base.Add(time.Hour)); err != nil {
		t.Fatalf("CreateAt: %v", err)
	}

	if err := m.SavePlaylists(mgr); err != nil {
		t.Fatalf("SavePlaylists: %v", err)
	}

	loaded, err := m.LoadPlaylists()
	if err != nil {
		t.Fatalf("LoadPlaylists: %v", err)
	}
	if loaded.Len() != 2 {
		t.Fatalf("loaded %d playlists, want 2", loaded.Len())
	}

	rt := loaded.Get("Road Trip")
	if rt == nil || rt.Len() != 2 {
		t.Fatalf("Road Trip = %v", rt)
	}
	if !rt.CreatedAt().Equal(base) {
		t.Errorf("CreatedAt = %v, want %v", rt.CreatedAt(), base)
	}
	entries := rt.Entries()
	if entries[0].Track.Title != "One" || !entries[0].AddedAt.Equal(base.Add(time.Minute)) {
		t.Errorf("entry 0 = %+v", entries[0])
	}

	// Creation order of the playlist listing survives.
	names := loaded.Names()
	if names[0] != "Road Trip" || names[1] != "Chill" {
		t.Errorf("Names() = %v", names)
	}
}
