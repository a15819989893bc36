package viewers

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
)

// IndexFile is the page every viewer folder serves.
const IndexFile = "index.html"

// Entry is one viewer folder discovered on disk.
type Entry struct {
	Name   string // Folder name.
	Prompt string // Name with the kind suffix stripped.
	Kind   Kind
	ID     int // Position in the sorted folder list.
}

// URL returns the viewer page path under base, with forward slashes.
func (e Entry) URL(base string) string {
	return path.Join(base, e.Name, IndexFile)
}

// ScanConfig controls the behaviour of Scan.
type ScanConfig struct {
	Dir     string   // Viewers directory.
	Exclude []string // Folder-name globs to skip (nil = DefaultExcludes).
}

// Scan lists the viewer folders directly under config.Dir, sorted by name,
// with IDs assigned by sorted position. Hidden and excluded names are skipped.
func Scan(config ScanConfig) ([]Entry, error) {
	dirEntries, err := os.ReadDir(config.Dir)
	if err != nil {
		return nil, fmt.Errorf("viewers: read %s: %w", config.Dir, err)
	}

	exclude := config.Exclude
	if exclude == nil {
		exclude = DefaultExcludes
	}

	var names []string
	for _, d := range dirEntries {
		name := d.Name()
		if isHidden(name) || MatchesExclude(name, exclude) {
			continue
		}
		if !d.IsDir() {
			// Follow symlinks so linked viewer folders still count.
			info, err := os.Stat(filepath.Join(config.Dir, name))
			if err != nil || !info.IsDir() {
				continue
			}
		}
		names = append(names, name)
	}

	sort.Strings(names)

	entries := make([]Entry, len(names))
	for i, name := range names {
		prompt, kind := Classify(name)
		entries[i] = Entry{Name: name, Prompt: prompt, Kind: kind, ID: i}
	}
	return entries, nil
}

// CaptionTable maps each entry's folder name to its ID.
func CaptionTable(entries []Entry) map[string]int {
	table := make(map[string]int, len(entries))
	for _, e := range entries {
		table[e.Name] = e.ID
	}
	return table
}

// FilterKind returns the entries whose kind is one of kinds, preserving order.
func FilterKind(entries []Entry, kinds ...Kind) []Entry {
	var out []Entry
	for _, e := range entries {
		for _, k := range kinds {
			if e.Kind == k {
				out = append(out, e)
				break
			}
		}
	}
	return out
}
