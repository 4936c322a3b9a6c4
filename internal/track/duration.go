package track

import (
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidDuration is returned when duration text cannot be parsed.
var ErrInvalidDuration = fmt.Errorf("invalid duration")

// ParseDuration parses "M:SS" or "H:MM:SS" text into whole seconds.
// Minutes may exceed 59 in the two-part form; seconds are always 0-59.
func ParseDuration(text string) (int, error) {
	parts := strings.Split(text, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, text)
	}

	values := make([]int, len(parts))
	for i, part := range parts {
		if part == "" {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, text)
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, text)
		}
		values[i] = n
	}

	if len(values) == 2 {
		if values[1] > 59 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, text)
		}
		return values[0]*60 + values[1], nil
	}

	if values[1] > 59 || values[2] > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, text)
	}
	return values[0]*3600 + values[1]*60 + values[2], nil
}

// FormatDuration renders whole seconds as "M:SS", or "H:MM:SS" at an
// hour or more.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	if seconds >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FormatRuntime renders a total running time the way the queue and
// playlist views show it: "H hr M min S sec" or "M min S sec".
func FormatRuntime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hrs := seconds / 3600
	mins := (seconds % 3600) / 60
	secs := seconds % 60
	if hrs > 0 {
		return fmt.Sprintf("%d hr %d min %d sec", hrs, mins, secs)
	}
	return fmt.Sprintf("%d min %d sec", mins, secs)
}
