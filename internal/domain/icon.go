package domain

// Resolution tells how an icon's old UI counterpart was found
type Resolution int

const (
	ResolvedDirect Resolution = iota
	ResolvedSubstituted
)

func (r Resolution) String() string {
	switch r {
	case ResolvedDirect:
		return "direct"
	case ResolvedSubstituted:
		return "substituted"
	default:
		return "unknown"
	}
}

// IconEntry maps a new UI icon to the old UI file that replaces it
type IconEntry struct {
	Key        string // e.g., "/fileTypes/java.svg"
	NewUIPath  string // Absolute path of the new UI icon
	SourcePath string // Absolute path of the old UI counterpart
	Resolution Resolution
}

// EncodedIcon is an icon with its old UI content in base64
type EncodedIcon struct {
	Key     string
	Content string
}

// DiscoveryStats holds counters from a discovery pass
type DiscoveryStats struct {
	Matched     int // SVG files found under the new UI root
	Whitelisted int // Files that passed the whitelist
	Direct      int
	Substituted int
	Unresolved  int // Whitelisted files with no old UI counterpart
}

// Resolved returns the number of icons that made it into the pack
func (s DiscoveryStats) Resolved() int {
	return s.Direct + s.Substituted
}

// SVGInfo describes the geometry of an SVG icon
type SVGInfo struct {
	Width  float64
	Height float64
}
