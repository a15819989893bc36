package viewers

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExcludes are folder-name patterns that never hold a viewer.
var DefaultExcludes = []string{
	"images",
	"*depthc",
	"*.DS*",
}

// isHidden reports whether name starts with the hidden-file marker.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// MatchesExclude returns true if name matches any of the exclude patterns.
// If patterns is empty, nothing is excluded.
func MatchesExclude(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, name); err == nil && matched {
			return true
		}
	}
	return false
}
