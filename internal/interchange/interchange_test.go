package interchange

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lhoarau/trackcrate/internal/catalog"
	"github.com/lhoarau/trackcrate/internal/playlists"
	"github.com/lhoarau/trackcrate/internal/track"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func collect() (*[]track.Track, AddFunc) {
	var got []track.Track
	return &got, func(tr track.Track) bool {
		got = append(got, tr)
		return true
	}
}

func TestImportTracks_JSON(t *testing.T) {
	path := writeFile(t, "tracks.json", `[
		{"title":"Shake It Off","artist":["Taylor Swift","Kendrick Lamar"],"album":"1989","duration":"3:39"},
		{"title":"Style","artist":"Taylor Swift","album":"1989","duration":"3:51"},
		{"title":"Broken","artist":"X","album":"Y","duration":"not a duration"},
		{"artist":"X","album":"Y","duration":"1:00"}
	]`)

	got, add := collect()
	rep, err := ImportTracks(path, add)
	require.NoError(t, err)

	assert.Equal(t, 2, rep.Imported)
	assert.Equal(t, 2, rep.Skipped)
	assert.Len(t, rep.Errors, 2)

	require.Len(t, *got, 2)
	assert.Equal(t, "Shake It Off", (*got)[0].Title)
	assert.Equal(t, 219, (*got)[0].Seconds)
	assert.True(t, (*got)[0].Artist.IsList())
	assert.False(t, (*got)[1].Artist.IsList())
}

func TestImportTracks_CSV(t *testing.T) {
	path := writeFile(t, "tracks.csv",
		"title,artist,album,duration\n"+
			"Shake It Off,\"Taylor Swift, Kendrick Lamar\",1989,3:39\n"+
			" Style , Taylor Swift ,1989,3:51\n"+
			"Bad Row,Artist,Album,oops\n")

	got, add := collect()
	rep, err := ImportTracks(path, add)
	require.NoError(t, err)

	assert.Equal(t, 2, rep.Imported)
	assert.Equal(t, 1, rep.Skipped)

	require.Len(t, *got, 2)
	assert.Equal(t, []string{"Taylor Swift", "Kendrick Lamar"}, (*got)[0].Artist.Names())
	assert.True(t, (*got)[0].Artist.IsList())
	assert.Equal(t, "Style", (*got)[1].Title, "cells should be trimmed")
}

func TestImportTracks_UnsupportedFormat(t *testing.T) {
	_, err := ImportTracks("tracks.xml", func(track.Track) bool { return true })
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestImportTracks_InvalidJSON(t *testing.T) {
	path := writeFile(t, "bad.json", "{not json")
	_, err := ImportTracks(path, func(track.Track) bool { return true })
	assert.Error(t, err)
}

func TestImportTracks_DuplicatesCounted(t *testing.T) {
	path := writeFile(t, "tracks.json", `[
		{"title":"One","artist":"A","album":"X","duration":"1:00"},
		{"title":"One","artist":"A","album":"X","duration":"1:00"}
	]`)

	seen := map[string]bool{}
	rep, err := ImportTracks(path, func(tr track.Track) bool {
		if seen[tr.Title] {
			return false
		}
		seen[tr.Title] = true
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Imported)
	assert.Equal(t, 1, rep.Duplicates)
}

func TestExportTracks_RoundTrip(t *testing.T) {
	ix := catalog.New()
	for _, title := range []string{"Zebra", "Apple"} {
		tr, err := track.New(title, track.Single("Artist"), "Album", "2:00")
		require.NoError(t, err)
		ix.Insert(tr)
	}

	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, ExportTracks(path, ix.Tracks()))

	got, add := collect()
	rep, err := ImportTracks(path, add)
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Imported)
	assert.Equal(t, "Apple", (*got)[0].Title, "export preserves sorted order")
}

func TestImportPlaylists_JSON(t *testing.T) {
	path := writeFile(t, "lists.json", `[
		{"name":"Road Trip","tracks":[
			{"track":{"title":"One","artist":"A","album":"X","duration":"3:00"}},
			{"track":{"title":"Two","artist":"B","album":"Y","duration":"2:00"}}
		]},
		{"name":"Existing","tracks":[]}
	]`)

	mgr := playlists.NewManager()
	_, err := mgr.Create("Existing")
	require.NoError(t, err)

	libGot, addToLibrary := collect()
	rep, err := ImportPlaylists(path, mgr, addToLibrary)
	require.NoError(t, err)

	assert.Equal(t, 1, rep.Imported)
	assert.Equal(t, 1, rep.Duplicates)

	rt := mgr.Get("Road Trip")
	require.NotNil(t, rt)
	assert.Equal(t, 2, rt.Len())
	assert.Len(t, *libGot, 2, "playlist imports feed the library")
}

func TestImportPlaylists_CSV(t *testing.T) {
	path := writeFile(t, "lists.csv",
		"name,title,artist,album,duration\n"+
			"Mix,One,A,X,3:00\n"+
			"Chill,Calm,B,Y,4:00\n"+
			"Mix,Two,C,Z,2:00\n")

	mgr := playlists.NewManager()
	_, addToLibrary := collect()
	rep, err := ImportPlaylists(path, mgr, addToLibrary)
	require.NoError(t, err)

	assert.Equal(t, 2, rep.Imported)
	mix := mgr.Get("Mix")
	require.NotNil(t, mix)
	assert.Equal(t, 2, mix.Len(), "non-consecutive rows group by name")
	require.NotNil(t, mgr.Get("Chill"))
}

func TestExportPlaylists_RoundTrip(t *testing.T) {
	mgr := playlists.NewManager()
	p, err := mgr.Create("Mix")
	require.NoError(t, err)
	tr, err := track.New("One", track.Multiple("A", "B"), "X", "3:00")
	require.NoError(t, err)
	require.True(t, p.Add(tr))

	path := filepath.Join(t.TempDir(), "lists.json")
	require.NoError(t, ExportPlaylists(path, mgr.All()))

	fresh := playlists.NewManager()
	_, addToLibrary := collect()
	rep, err := ImportPlaylists(path, fresh, addToLibrary)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Imported)

	got := fresh.Get("Mix")
	require.NotNil(t, got)
	require.Equal(t, 1, got.Len())
	assert.True(t, got.Tracks()[0].Equal(tr), "track round-trips through playlist export")
}
