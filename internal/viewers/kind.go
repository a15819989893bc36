package viewers

import "strings"

// Kind tags a viewer folder by its naming suffix.
type Kind int

const (
	Unknown Kind = iota
	SpatialComparison
	TemporalComparison
	Ours
)

// suffixes is checked in order; the first match wins.
var suffixes = []struct {
	Suffix string
	Kind   Kind
}{
	{"_comparison_spatial", SpatialComparison},
	{"_comparison_temporal", TemporalComparison},
	{"_ours", Ours},
}

// String returns the tag used in logs and config files.
func (k Kind) String() string {
	switch k {
	case SpatialComparison:
		return "comparison_spatial"
	case TemporalComparison:
		return "comparison_temporal"
	case Ours:
		return "ours"
	default:
		return "unknown"
	}
}

// Suffix returns the folder-name suffix for k, or "" for Unknown.
func (k Kind) Suffix() string {
	for _, s := range suffixes {
		if s.Kind == k {
			return s.Suffix
		}
	}
	return ""
}

// ParseKind maps a tag back to its Kind. Unrecognized tags yield Unknown.
func ParseKind(tag string) Kind {
	for _, s := range suffixes {
		if s.Kind.String() == tag {
			return s.Kind
		}
	}
	return Unknown
}

// Classify splits a folder name into its prompt and kind. Names without a
// known suffix come back unchanged with kind Unknown.
func Classify(name string) (prompt string, kind Kind) {
	for _, s := range suffixes {
		if strings.HasSuffix(name, s.Suffix) {
			return strings.TrimSuffix(name, s.Suffix), s.Kind
		}
	}
	return name, Unknown
}
