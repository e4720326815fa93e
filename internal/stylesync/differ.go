package stylesync

// DiffResult classifies the latest styles of one kind against the previous export
type DiffResult struct {
	// Pairs holds one entry per identifier present in both snapshots, in
	// latest document order, unchanged styles included.
	Pairs []MigrationPair
	// Deprecated holds previous styles whose identifier is gone, flagged deprecated.
	Deprecated []Style
	// Removed is the subset of Deprecated that was still active in the previous export.
	Removed []Style
	// Added holds latest styles with a new identifier.
	Added []Style
}

// Diff matches latest against previous by identifier, never by name, so a
// renamed style is a migration pair rather than a removal plus an addition.
// Without a previous export every latest style is added.
func Diff(latest []Style, previous Previous) DiffResult {
	var result DiffResult

	if !previous.Found() {
		result.Added = append([]Style(nil), latest...)
		return result
	}

	old := make(map[StyleKey]Style, len(previous.Styles()))
	for _, style := range previous.Styles() {
		if _, exists := old[style.Key()]; !exists {
			old[style.Key()] = style
		}
	}

	kept := make(map[StyleKey]bool, len(latest))
	for _, style := range latest {
		if oldStyle, ok := old[style.Key()]; ok {
			if kept[style.Key()] {
				continue
			}
			result.Pairs = append(result.Pairs, MigrationPair{Old: oldStyle, New: style})
			kept[style.Key()] = true
			continue
		}
		result.Added = append(result.Added, style)
	}

	gone := make(map[StyleKey]bool)
	for _, style := range previous.Styles() {
		if kept[style.Key()] || gone[style.Key()] {
			continue
		}
		gone[style.Key()] = true

		if !style.Deprecated {
			result.Removed = append(result.Removed, style)
		}
		result.Deprecated = append(result.Deprecated, style.AsDeprecated())
	}

	return result
}

// Renamed returns the pairs whose variable name changed
func (d DiffResult) Renamed() []MigrationPair {
	var renamed []MigrationPair
	for _, pair := range d.Pairs {
		if !pair.IsRevived() && pair.IsRename() {
			renamed = append(renamed, pair)
		}
	}
	return renamed
}

// Modified returns the pairs that kept their variable name but changed value
func (d DiffResult) Modified() []MigrationPair {
	var modified []MigrationPair
	for _, pair := range d.Pairs {
		if !pair.IsRevived() && pair.IsValueChange() {
			modified = append(modified, pair)
		}
	}
	return modified
}

// Revived returns pairs whose previous snapshot was a deprecated style
func (d DiffResult) Revived() []MigrationPair {
	var revived []MigrationPair
	for _, pair := range d.Pairs {
		if pair.IsRevived() {
			revived = append(revived, pair)
		}
	}
	return revived
}

// Changes counts the classification used for versioning. A deprecated style
// that comes back counts as added; one that disappears again is not removed
// a second time.
func (d DiffResult) Changes() Changes {
	return Changes{
		Added:    len(d.Added) + len(d.Revived()),
		Removed:  len(d.Removed),
		Modified: len(d.Modified()),
		Renamed:  len(d.Renamed()),
	}
}
