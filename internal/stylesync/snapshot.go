package stylesync

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Snapshot file names inside the snapshot directory
const (
	ColorSnapshotFile = "color-styles.json"
	TextSnapshotFile  = "text-styles.json"
)

// SnapshotFileName returns the snapshot file of a kind
func SnapshotFileName(kind Kind) string {
	if kind == KindText {
		return TextSnapshotFile
	}
	return ColorSnapshotFile
}

// Snapshot is the persisted export of one kind of style
type Snapshot struct {
	Version Version `json:"version"`
	Styles  []Style `json:"styles"`
}

// Previous is the outcome of looking up the last export: either a snapshot
// or nothing (first run). It is never inferred from an empty style list.
type Previous struct {
	snapshot Snapshot
	found    bool
}

// NoPrevious is the first-run value
func NoPrevious() Previous {
	return Previous{}
}

// PreviousOf wraps a snapshot read from disk
func PreviousOf(s Snapshot) Previous {
	return Previous{snapshot: s, found: true}
}

// Found reports whether a previous export exists
func (p Previous) Found() bool {
	return p.found
}

// Version returns the previous version; only meaningful when Found
func (p Previous) Version() Version {
	return p.snapshot.Version
}

// Styles returns the previously exported styles; nil on the first run
func (p Previous) Styles() []Style {
	if !p.found {
		return nil
	}
	return p.snapshot.Styles
}

// ErrNoSnapshot is returned by LoadSnapshot when no snapshot file exists
var ErrNoSnapshot = errors.New("no previous snapshot")

// LoadSnapshot reads the snapshot of one kind. A missing or unparsable file
// yields NoPrevious together with the reason; callers log the reason and
// continue on the first-run path.
func LoadSnapshot(path string, kind Kind) (Previous, error) {
	// #nosec G304 - path comes from trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NoPrevious(), ErrNoSnapshot
		}
		return NoPrevious(), fmt.Errorf("read snapshot %s: %w", path, err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return NoPrevious(), fmt.Errorf("decode snapshot %s: %w", path, err)
	}

	styles := make([]Style, 0, len(snapshot.Styles))
	for _, style := range snapshot.Styles {
		if style.Identifier == "" {
			continue
		}
		if style.Kind == "" {
			style.Kind = kind
		}
		if style.Kind != kind {
			continue
		}
		styles = append(styles, style)
	}
	snapshot.Styles = styles

	return PreviousOf(snapshot), nil
}

// SaveSnapshot writes a snapshot atomically, creating its directory
func SaveSnapshot(path string, snapshot Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	if snapshot.Styles == nil {
		snapshot.Styles = []Style{}
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace snapshot: %w", err)
	}

	return nil
}
