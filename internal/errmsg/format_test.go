//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpLibraryAdd,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpLibraryAdd,
			err:      errors.New("missing title"),
			expected: "Failed to add track to library: missing title",
		},
		{
			name:     "queue operation",
			op:       OpQueueSave,
			err:      errors.New("database is locked"),
			expected: "Failed to save queue: database is locked",
		},
		{
			name:     "playlist operation",
			op:       OpPlaylistCreate,
			err:      errors.New("already exists"),
			expected: "Failed to create playlist: already exists",
		},
		{
			name:     "import operation",
			op:       OpImportTracks,
			err:      errors.New("unsupported file format"),
			expected: "Failed to import tracks: unsupported file format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpImportTracks,
			context:  "tracks.json",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpImportTracks,
			context:  "tracks.json",
			err:      errors.New("permission denied"),
			expected: "Failed to import tracks 'tracks.json': permission denied",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpImportTracks,
			context:  "",
			err:      errors.New("permission denied"),
			expected: "Failed to import tracks: permission denied",
		},
		{
			name:     "playlist add track with context",
			op:       OpPlaylistAddTrack,
			context:  "Road Trip",
			err:      errors.New("duplicate track"),
			expected: "Failed to add track to playlist 'Road Trip': duplicate track",
		},
		{
			name:     "sort with criterion context",
			op:       OpLibrarySort,
			context:  "bitrate",
			err:      errors.New("unknown sort criterion"),
			expected: "Failed to sort library 'bitrate': unknown sort criterion",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	ops := []Op{
		OpLibraryAdd, OpLibraryLoad, OpLibrarySave, OpLibrarySearch, OpLibrarySort,
		OpQueueLoad, OpQueueSave, OpQueueAdd,
		OpPlaylistCreate, OpPlaylistLoad, OpPlaylistSave,
		OpPlaylistAddTrack, OpPlaylistSort, OpPlaylistArrange,
		OpImportTracks, OpImportPlaylists, OpExportTracks, OpExportPlaylists,
		OpInitialize,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}

			expected := "Failed to " + string(op) + ": test error"
			if result := Format(op, testErr); result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}
