package state

import (
	"database/sql"
	"encoding/json"

	"github.com/lhoarau/trackcrate/internal/track"
)

// encodeArtist stores the artist in its JSON interchange form, so a
// scalar name and a sequence of names survive the round trip.
func encodeArtist(a track.Artist) (string, error) {
	raw, err := json.Marshal(a)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func decodeArtist(raw string) (track.Artist, error) {
	var a track.Artist
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		return track.Artist{}, err
	}
	return a, nil
}

// insertTrackRows writes tracks into a position-ordered track table.
func insertTrackRows(tx *sql.Tx, table string, tracks []track.Track) error {
	stmt, err := tx.Prepare(`
		INSERT INTO ` + table + ` (position, title, artist, album, duration_seconds)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, t := range tracks {
		artist, err := encodeArtist(t.Artist)
		if err != nil {
			return err
		}
		if _, err := stmt.Exec(i, t.Title, artist, t.Album, t.Seconds); err != nil {
			return err
		}
	}
	return nil
}

// selectTrackRows reads tracks back from a position-ordered track table.
func selectTrackRows(db *sql.DB, table string) ([]track.Track, error) {
	rows, err := db.Query(`
		SELECT title, artist, album, duration_seconds
		FROM ` + table + `
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tracks []track.Track
	for rows.Next() {
		var t track.Track
		var artist string
		if err := rows.Scan(&t.Title, &artist, &t.Album, &t.Seconds); err != nil {
			return nil, err
		}
		if t.Artist, err = decodeArtist(artist); err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}
