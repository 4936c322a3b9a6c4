package app

import (
	"github.com/lhoarau/trackcrate/internal/errmsg"
)

// restore loads the library, queue and playlists from the state database.
// Re-inserting the saved library order rebuilds the same tree shape and
// replays album attribution through the insert listeners.
func (m *Model) restore() error {
	tracks, err := m.stateMgr.LoadLibrary()
	if err != nil {
		return err
	}
	for _, t := range tracks {
		m.library.Insert(t)
	}

	snap, err := m.stateMgr.LoadQueue()
	if err != nil {
		return err
	}
	m.queue.RestoreSnapshot(snap)

	mgr, err := m.stateMgr.LoadPlaylists()
	if err != nil {
		return err
	}
	m.playlists = mgr

	return nil
}

// save writes the full application state back to disk. Failures are
// reported through the status line rather than aborting shutdown.
func (m *Model) save() {
	if err := m.stateMgr.SaveLibrary(m.library.Tracks()); err != nil {
		m.status = errmsg.Format(errmsg.OpLibrarySave, err)
	}
	if err := m.stateMgr.SaveQueue(m.queue.Snapshot()); err != nil {
		m.status = errmsg.Format(errmsg.OpQueueSave, err)
	}
	if err := m.stateMgr.SavePlaylists(m.playlists); err != nil {
		m.status = errmsg.Format(errmsg.OpPlaylistSave, err)
	}
}
