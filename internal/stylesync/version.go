package stylesync

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Version is the three-part version of an exported style set
type Version struct {
	Major int
	Minor int
	Patch int
}

// FirstVersion is assigned to the first export of a design document
var FirstVersion = Version{Major: 1}

// String returns "major.minor.patch"
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// ParseVersion parses "major.minor.patch"
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("version %q: want major.minor.patch", s)
	}

	var numbers [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("version %q: invalid component %q", s, part)
		}
		numbers[i] = n
	}

	return Version{Major: numbers[0], Minor: numbers[1], Patch: numbers[2]}, nil
}

// MarshalJSON encodes the version in its string form
func (v Version) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON decodes the string form of a version
func (v *Version) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("version: %w", err)
	}
	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Changes classifies the differences between two style snapshots
type Changes struct {
	Added    int // New identifiers, including revived deprecated styles
	Removed  int // Identifiers gone from the document
	Modified int // Same variable name, different value
	Renamed  int // Different variable name
}

// IsEmpty reports whether nothing changed
func (c Changes) IsEmpty() bool {
	return c == Changes{}
}

// Add sums two change sets
func (c Changes) Add(other Changes) Changes {
	return Changes{
		Added:    c.Added + other.Added,
		Removed:  c.Removed + other.Removed,
		Modified: c.Modified + other.Modified,
		Renamed:  c.Renamed + other.Renamed,
	}
}

// NextVersion derives the version of the latest export.
//
//	removed > 0            -> major bump, minor and patch reset
//	added > 0              -> minor bump, patch reset
//	modified or renamed    -> patch bump
//	otherwise              -> unchanged
//
// Renames never escalate past patch because every reference is rewritten.
// The first export is always FirstVersion.
func NextVersion(previous Previous, changes Changes) Version {
	if !previous.Found() {
		return FirstVersion
	}

	v := previous.Version()
	switch {
	case changes.Removed > 0:
		return Version{Major: v.Major + 1}
	case changes.Added > 0:
		return Version{Major: v.Major, Minor: v.Minor + 1}
	case changes.Modified > 0 || changes.Renamed > 0:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
	default:
		return v
	}
}
