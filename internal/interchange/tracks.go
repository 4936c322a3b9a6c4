package interchange

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/lhoarau/trackcrate/internal/track"
)

// AddFunc receives each successfully built track. It reports whether
// the target accepted the track; a rejection counts as a duplicate.
type AddFunc func(track.Track) bool

// ImportTracks imports a .json or .csv track file, handing each valid
// track to add.
func ImportTracks(path string, add AddFunc) (Report, error) {
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
		return importTracksJSON(f, add)
	}
	return importTracksCSV(f, add)
}

func importTracksJSON(r io.Reader, add AddFunc) (Report, error) {
	var records []track.Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return Report{}, err
	}

	var rep Report
	for i, rec := range records {
		t, err := track.FromRecord(rec)
		if err != nil {
			rep.addError("record %d: %v", i+1, err)
			rep.Skipped++
			continue
		}
		if add(t) {
			rep.Imported++
		} else {
			rep.Duplicates++
		}
	}
	return rep, nil
}

func importTracksCSV(r io.Reader, add AddFunc) (Report, error) {
	rows := csv.NewReader(r)
	header, err := rows.Read()
	if err != nil {
		return Report{}, err
	}
	cols := columnIndex(header)

	var rep Report
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
		if add(t) {
			rep.Imported++
		} else {
			rep.Duplicates++
		}
	}
	return rep, nil
}

// columnIndex maps lowercased header names to their positions.
func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

func cell(cols map[string]int, row []string, name string) (string, bool) {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return "", false
	}
	return strings.TrimSpace(row[i]), true
}

func trackRecordFromRow(cols map[string]int, row []string) (track.Record, error) {
	var rec track.Record
	for _, name := range []string{"title", "artist", "album", "duration"} {
		value, ok := cell(cols, row, name)
		if !ok || value == "" {
			return track.Record{}, track.ErrMissingField
		}
		switch name {
		case "title":
			rec.Title = value
		case "artist":
			if names := splitArtistCell(value); names != nil {
				rec.Artist = track.Multiple(names...)
			} else {
				rec.Artist = track.Single(value)
			}
		case "album":
			rec.Album = value
		case "duration":
			rec.Duration = value
		}
	}
	return rec, nil
}

// ExportTracks writes the tracks as a JSON array of interchange
// records.
func ExportTracks(path string, tracks []track.Track) error {
	records := make([]track.Record, len(tracks))
	for i, t := range tracks {
		records[i] = t.Record()
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
