// Package interchange reads and writes the JSON and CSV interchange
// formats for tracks and playlists. Imports validate every record and
// report per-record failures instead of aborting the whole file.
package interchange

import (
	"fmt"
	"strings"
)

// ErrUnsupportedFormat is returned for files that are neither .json
// nor .csv.
var ErrUnsupportedFormat = fmt.Errorf("unsupported file format, use .json or .csv")

// Report summarizes an import run.
type Report struct {
	Imported   int
	Duplicates int
	Skipped    int
	Errors     []string
}

func (r *Report) addError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary renders the report for display.
func (r Report) Summary() string {
	s := fmt.Sprintf("%d imported, %d duplicates, %d skipped", r.Imported, r.Duplicates, r.Skipped)
	if len(r.Errors) > 0 {
		s += fmt.Sprintf(" (%d errors)", len(r.Errors))
	}
	return s
}

// format returns "json", "csv" or an error based on the file name.
func format(path string) (string, error) {
	switch {
	case strings.HasSuffix(strings.ToLower(path), ".json"):
		return "json", nil
	case strings.HasSuffix(strings.ToLower(path), ".csv"):
		return "csv", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// splitArtistCell turns a CSV artist cell into artist form: a cell
// containing commas is a sequence of names, otherwise a single name.
func splitArtistCell(cell string) []string {
	if !strings.Contains(cell, ",") {
		return nil
	}
	parts := strings.Split(cell, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
