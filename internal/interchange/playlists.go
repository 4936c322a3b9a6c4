package interchange

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"os"
	"time"

	"github.com/lhoarau/trackcrate/internal/playlists"
	"github.com/lhoarau/trackcrate/internal/track"
)

// playlistJSON is the playlist interchange shape. On export every
// entry carries its added-at timestamp; on import the timestamp is
// optional and defaults to the import time.
type playlistJSON struct {
	Name      string              `json:"name"`
	CreatedAt string              `json:"created_at,omitempty"`
	Tracks    []playlistEntryJSON `json:"tracks"`
}

type playlistEntryJSON struct {
	Track   track.Record `json:"track"`
	AddedAt string       `json:"added_at,omitempty"`
}

// ImportPlaylists imports a .json or .csv playlist file into the
// manager. Every imported track is also handed to addToLibrary, so
// playlist imports feed the catalog as well. A playlist whose name is
// already taken counts as a duplicate and is skipped entirely.
func ImportPlaylists(path string, mgr *playlists.Manager, addToLibrary AddFunc) (Report, error) {
	kind, err := format(path)
	if err != nil {
		return Report{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return Report{}, err
	}
	defer f.Close()

	if kind == "json" {
		return importPlaylistsJSON(f, mgr, addToLibrary)
	}
	return importPlaylistsCSV(f, mgr, addToLibrary)
}

func importPlaylistsJSON(r io.Reader, mgr *playlists.Manager, addToLibrary AddFunc) (Report, error) {
	var lists []playlistJSON
	if err := json.NewDecoder(r).Decode(&lists); err != nil {
		return Report{}, err
	}

	var rep Report
	for _, pl := range lists {
		if pl.Name == "" {
			rep.addError("playlist with no name")
			rep.Skipped++
			continue
		}
		if mgr.Get(pl.Name) != nil {
			rep.Duplicates++
			continue
		}

		createdAt := time.Now()
		if pl.CreatedAt != "" {
			if parsed, err := time.Parse(time.RFC3339Nano, pl.CreatedAt); err == nil {
				createdAt = parsed
			}
		}
		p, err := mgr.CreateAt(pl.Name, createdAt)
		if err != nil {
			rep.addError("playlist %q: %v", pl.Name, err)
			rep.Skipped++
			continue
		}
		for i, entry := range pl.Tracks {
			t, err := track.FromRecord(entry.Track)
			if err != nil {
				rep.addError("playlist %q track %d: %v", pl.Name, i+1, err)
				continue
			}
			addedAt := time.Now()
			if entry.AddedAt != "" {
				if parsed, err := time.Parse(time.RFC3339Nano, entry.AddedAt); err == nil {
					addedAt = parsed
				}
			}
			p.AddAt(t, addedAt)
			addToLibrary(t)
		}
		rep.Imported++
	}
	return rep, nil
}

// importPlaylistsCSV reads rows of name,title,artist,album,duration,
// grouping consecutive and non-consecutive rows by playlist name.
func importPlaylistsCSV(r io.Reader, mgr *playlists.Manager, addToLibrary AddFunc) (Report, error) {
	rows := csv.NewReader(r)
	header, err := rows.Read()
	if err != nil {
		return Report{}, err
	}
	cols := columnIndex(header)

	var rep Report
	// Playlists seen in this file; nil marks a name that clashed with
	// an existing playlist so its remaining rows are swallowed.
	building := make(map[string]*playlists.Playlist)

	line := 1
	for {
		row, err := rows.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return rep, err
		}
		line++

		name, ok := cell(cols, row, "name")
		if !ok || name == "" {
			rep.addError("row %d: %v", line, track.ErrMissingField)
			rep.Skipped++
			continue
		}
		rec, err := trackRecordFromRow(cols, row)
		if err != nil {
			rep.addError("row %d: %v", line, err)
			rep.Skipped++
			continue
		}
		t, err := track.FromRecord(rec)
		if err != nil {
			rep.addError("row %d: %v", line, err)
			rep.Skipped++
			continue
		}

		p, seen := building[name]
		if !seen {
			if mgr.Get(name) != nil {
				building[name] = nil
				rep.Duplicates++
				continue
			}
			if p, err = mgr.Create(name); err != nil {
				rep.addError("row %d: %v", line, err)
				rep.Skipped++
				continue
			}
			building[name] = p
			rep.Imported++
		}
		if p == nil {
			continue // rows of a clashing playlist
		}
		p.Add(t)
		addToLibrary(t)
	}
	return rep, nil
}

// ExportPlaylists writes the playlists as JSON, keeping creation and
// added-at timestamps so a later import reproduces them.
func ExportPlaylists(path string, lists []*playlists.Playlist) error {
	out := make([]playlistJSON, len(lists))
	for i, p := range lists {
		pj := playlistJSON{
			Name:      p.Name(),
			CreatedAt: p.CreatedAt().Format(time.RFC3339Nano),
		}
		for _, e := range p.Entries() {
			pj.Tracks = append(pj.Tracks, playlistEntryJSON{
				Track:   e.Track.Record(),
				AddedAt: e.AddedAt.Format(time.RFC3339Nano),
			})
		}
		out[i] = pj
	}
	data, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
