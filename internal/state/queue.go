package state

import (
	"database/sql"
	"errors"

	"github.com/lhoarau/trackcrate/internal/queue"
)

// SaveQueue persists the full queue snapshot: ordered tracks, cursor
// index, mode flags and the pre-shuffle ordering.
func (m *Manager) SaveQueue(snap queue.Snapshot) error {
	return m.withTx(func(tx *sql.Tx) error {
		for _, table := range []string{"queue_tracks", "queue_original"} {
			if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
				return err
			}
		}

		_, err := tx.Exec(`
			INSERT INTO queue_state (id, current_index, shuffle, repeat, playing)
			VALUES (1, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				current_index = excluded.current_index,
				shuffle = excluded.shuffle,
				repeat = excluded.repeat,
				playing = excluded.playing
		`, snap.CurrentIndex, snap.Shuffled, snap.Repeat, snap.Playing)
		if err != nil {
			return err
		}

		if err := insertTrackRows(tx, "queue_tracks", snap.Tracks); err != nil {
			return err
		}
		return insertTrackRows(tx, "queue_original", snap.Original)
	})
}

// LoadQueue returns the persisted queue snapshot. A database with no
// saved queue yields an empty snapshot with index -1.
func (m *Manager) LoadQueue() (queue.Snapshot, error) {
	snap := queue.Snapshot{CurrentIndex: -1}

	row := m.db.QueryRow(`SELECT current_index, shuffle, repeat, playing FROM queue_state WHERE id = 1`)
	err := row.Scan(&snap.CurrentIndex, &snap.Shuffled, &snap.Repeat, &snap.Playing)
	if errors.Is(err, sql.ErrNoRows) {
		return snap, nil
	}
	if err != nil {
		return queue.Snapshot{}, err
	}

	if snap.Tracks, err = selectTrackRows(m.db, "queue_tracks"); err != nil {
		return queue.Snapshot{}, err
	}
	if snap.Original, err = selectTrackRows(m.db, "queue_original"); err != nil {
		return queue.Snapshot{}, err
	}
	return snap, nil
}
