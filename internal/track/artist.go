package track

import (
	"encoding/json"
	"strings"
)

// Artist holds one or more artist names for a track. It remembers whether
// the value was given as a single name or as a sequence so that
// serialization reproduces the original shape.
type Artist struct {
	names []string
	list  bool
}

// Single returns an Artist with one name given in scalar form.
func Single(name string) Artist {
	return Artist{names: []string{name}}
}

// Multiple returns an Artist with the given names in sequence form.
func Multiple(names ...string) Artist {
	return Artist{names: append([]string(nil), names...), list: true}
}

// Primary returns the first artist name, used for sorting and ordering.
func (a Artist) Primary() string {
	if len(a.names) == 0 {
		return ""
	}
	return a.names[0]
}

// Names returns all artist names.
func (a Artist) Names() []string {
	return append([]string(nil), a.names...)
}

// IsList reports whether the artist was given as a sequence.
func (a Artist) IsList() bool {
	return a.list
}

// IsZero reports whether no artist name is set.
func (a Artist) IsZero() bool {
	return len(a.names) == 0
}

// String renders the artist for display, joining multiple names with ", ".
func (a Artist) String() string {
	return strings.Join(a.names, ", ")
}

// MarshalJSON writes the artist as a string or an array of strings,
// matching the form it was constructed with.
func (a Artist) MarshalJSON() ([]byte, error) {
	if a.list {
		return json.Marshal(a.names)
	}
	return json.Marshal(a.Primary())
}

// UnmarshalJSON accepts either a string or an array of strings.
func (a *Artist) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*a = Single(name)
		return nil
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	*a = Multiple(names...)
	return nil
}
