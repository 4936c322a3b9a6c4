package state

import (
	"database/sql"

	"github.com/lhoarau/trackcrate/internal/track"
)

// SaveLibrary replaces the persisted catalog with the given tracks in
// their sorted order. Re-inserting the saved order on the next start
// rebuilds the same tree shape, since ties always branch the same way.
func (m *Manager) SaveLibrary(tracks []track.Track) error {
	return m.withTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM library_tracks`); err != nil {
			return err
		}
		return insertTrackRows(tx, "library_tracks", tracks)
	})
}

// LoadLibrary returns the persisted catalog tracks in saved order.
func (m *Manager) LoadLibrary() ([]track.Track, error) {
	return selectTrackRows(m.db, "library_tracks")
}
