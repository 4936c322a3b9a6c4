package state

import (
	"database/sql"
	"time"

	"github.com/lhoarau/trackcrate/internal/playlists"
	"github.com/lhoarau/trackcrate/internal/track"
)

// SavePlaylists replaces the persisted playlists with the manager's
// current contents, keeping per-entry added-at timestamps.
func (m *Manager) SavePlaylists(mgr *playlists.Manager) error {
	return m.withTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM playlist_tracks`); err != nil {
			return err
		}
		if _, err := tx.Exec(`DELETE FROM playlists`); err != nil {
			return err
		}

		stmt, err := tx.Prepare(`
			INSERT INTO playlist_tracks
				(playlist_id, position, title, artist, album, duration_seconds, added_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, p := range mgr.All() {
			res, err := tx.Exec(`
				INSERT INTO playlists (name, created_at) VALUES (?, ?)
			`, p.Name(), p.CreatedAt().UnixNano())
			if err != nil {
				return err
			}
			playlistID, err := res.LastInsertId()
			if err != nil {
				return err
			}

			for i, e := range p.Entries() {
				artist, err := encodeArtist(e.Track.Artist)
				if err != nil {
					return err
				}
				_, err = stmt.Exec(playlistID, i,
					e.Track.Title, artist, e.Track.Album, e.Track.Seconds,
					e.AddedAt.UnixNano())
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// LoadPlaylists rebuilds a playlist manager from the database.
func (m *Manager) LoadPlaylists() (*playlists.Manager, error) {
	mgr := playlists.NewManager()

	rows, err := m.db.Query(`SELECT id, name, created_at FROM playlists ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type meta struct {
		id   int64
		name string
	}
	var order []meta
	for rows.Next() {
		var pm meta
		var createdAt int64
		if err := rows.Scan(&pm.id, &pm.name, &createdAt); err != nil {
			return nil, err
		}
		if _, err := mgr.CreateAt(pm.name, time.Unix(0, createdAt)); err != nil {
			return nil, err
		}
		order = append(order, pm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	stmt, err := m.db.Prepare(`
		SELECT title, artist, album, duration_seconds, added_at
		FROM playlist_tracks
		WHERE playlist_id = ?
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	for _, pm := range order {
		p := mgr.Get(pm.name)
		trackRows, err := stmt.Query(pm.id)
		if err != nil {
			return nil, err
		}
		if err := scanPlaylistTracks(trackRows, p); err != nil {
			return nil, err
		}
	}
	return mgr, nil
}

func scanPlaylistTracks(rows *sql.Rows, p *playlists.Playlist) error {
	defer rows.Close()
	for rows.Next() {
		var title, artist, album string
		var seconds int
		var addedAt int64
		if err := rows.Scan(&title, &artist, &album, &seconds, &addedAt); err != nil {
			return err
		}
		a, err := decodeArtist(artist)
		if err != nil {
			return err
		}
		tr := track.Track{Title: title, Artist: a, Album: album, Seconds: seconds}
		p.AddAt(tr, time.Unix(0, addedAt))
	}
	return rows.Err()
}
