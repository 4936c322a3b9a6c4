// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Library operations
	OpLibraryAdd    Op = "add track to library"
	OpLibraryLoad   Op = "load library"
	OpLibrarySave   Op = "save library"
	OpLibrarySearch Op = "search library"
	OpLibrarySort   Op = "sort library"

	// Queue operations
	OpQueueLoad Op = "load queue"
	OpQueueSave Op = "save queue"
	OpQueueAdd  Op = "add to queue"

	// Playlist operations
	OpPlaylistCreate   Op = "create playlist"
	OpPlaylistLoad     Op = "load playlists"
	OpPlaylistSave     Op = "save playlists"
	OpPlaylistAddTrack Op = "add track to playlist"
	OpPlaylistSort     Op = "sort playlist"
	OpPlaylistArrange  Op = "arrange playlists"

	// Import/export operations
	OpImportTracks    Op = "import tracks"
	OpImportPlaylists Op = "import playlists"
	OpExportTracks    Op = "export tracks"
	OpExportPlaylists Op = "export playlists"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
