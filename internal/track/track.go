// Package track defines the track metadata value used throughout the
// catalog, queue and playlists, along with its textual duration format
// and its interchange record.
package track

import (
	"fmt"
)

// ErrMissingField is returned when a record lacks a required field.
var ErrMissingField = fmt.Errorf("missing required field")

// Track is a single catalog entry. Fields may be mutated after
// construction, but callers that change title, artist, album or
// duration of an indexed track must re-insert it into the catalog,
// since those fields form the index key.
type Track struct {
	Title   string
	Artist  Artist
	Album   string
	Seconds int
}

// New builds a Track, parsing the duration text. It returns an error on
// malformed duration or any empty field; no partial Track is produced.
func New(title string, artist Artist, album, duration string) (Track, error) {
	if title == "" {
		return Track{}, fmt.Errorf("%w: title", ErrMissingField)
	}
	if artist.IsZero() {
		return Track{}, fmt.Errorf("%w: artist", ErrMissingField)
	}
	if album == "" {
		return Track{}, fmt.Errorf("%w: album", ErrMissingField)
	}
	secs, err := ParseDuration(duration)
	if err != nil {
		return Track{}, err
	}
	return Track{Title: title, Artist: artist, Album: album, Seconds: secs}, nil
}

// Equal reports structural equality: title, artist, album and duration
// all match exactly. Strings compare case-sensitively, and the artist
// compares by its joined string form, so a scalar artist equals a
// one-element sequence with the same name.
func (t Track) Equal(other Track) bool {
	return t.Title == other.Title &&
		t.Artist.String() == other.Artist.String() &&
		t.Album == other.Album &&
		t.Seconds == other.Seconds
}

// Display renders the track for listing: "Title - Artist (M:SS)".
func (t Track) Display() string {
	return fmt.Sprintf("%s - %s (%s)", t.Title, t.Artist, FormatDuration(t.Seconds))
}

// Record is the interchange form of a track, as read from and written
// to JSON files.
type Record struct {
	Title    string `json:"title"`
	Artist   Artist `json:"artist"`
	Album    string `json:"album"`
	Duration string `json:"duration"`
}

// FromRecord validates an interchange record and builds a Track.
func FromRecord(r Record) (Track, error) {
	return New(r.Title, r.Artist, r.Album, r.Duration)
}

// Record converts the track back to its interchange form. The artist
// keeps the scalar or sequence shape it was given, so a round trip
// through FromRecord reproduces the original record.
func (t Track) Record() Record {
	return Record{
		Title:    t.Title,
		Artist:   t.Artist,
		Album:    t.Album,
		Duration: FormatDuration(t.Seconds),
	}
}
