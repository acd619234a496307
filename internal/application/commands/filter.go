package commands

import (
	"path"
	"sort"
	"strings"
	"unicode"
)

// Weights of the places a query can hit, best first
const (
	nameWeight   = 4 // icon file name without extension
	keyWeight    = 2 // pack identifier
	sourceWeight = 1 // old UI file path
)

// ScoredIcon wraps a ListedIcon with a relevance score
type ScoredIcon struct {
	ListedIcon
	Score int
}

// FilterIcons keeps the icons matching query, best matches first.
// An empty query keeps every icon in its original order.
func FilterIcons(icons []ListedIcon, query string) []ScoredIcon {
	query = strings.TrimSpace(query)
	scored := make([]ScoredIcon, 0, len(icons))

	for _, icon := range icons {
		if query == "" {
			scored = append(scored, ScoredIcon{ListedIcon: icon})
			continue
		}
		if score := IconScore(icon, query); score > 0 {
			scored = append(scored, ScoredIcon{ListedIcon: icon, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// IconScore ranks an icon for query. A hit on the icon name beats a hit on its
// identifier, which beats a hit on the old UI path.
func IconScore(icon ListedIcon, query string) int {
	return max(
		nameWeight*MatchScore(iconName(icon.ShortKey), query),
		keyWeight*MatchScore(icon.ShortKey, query),
		sourceWeight*MatchScore(icon.SourcePath, query),
	)
}

func iconName(key string) string {
	base := path.Base(key)
	return strings.TrimSuffix(base, path.Ext(base))
}

// MatchScore scores query against target, ignoring case.
// Whole and prefix matches score highest, then substrings, then characters found in order,
// favouring those that start a path segment or a camelCase word. Zero means no match.
func MatchScore(target, query string) int {
	if query == "" {
		return 0
	}

	lower := strings.ToLower(target)
	q := strings.ToLower(query)
	if len(lower) != len(target) {
		// non-ASCII case folding changed offsets; word starts are read from the folded text
		target = lower
	}

	switch {
	case lower == q:
		return 200
	case strings.HasPrefix(lower, q):
		return 150
	}
	if i := strings.Index(lower, q); i >= 0 {
		if wordStart(target, i) {
			return 120
		}
		return 100
	}

	score, qi, prev := 0, 0, -2
	for i := 0; i < len(lower) && qi < len(q); i++ {
		if lower[i] != q[qi] {
			continue
		}
		score++
		if i == prev+1 {
			score += 5
		}
		if wordStart(target, i) {
			score += 10
		}
		prev = i
		qi++
	}
	if qi < len(q) {
		return 0
	}
	return min(score, 99)
}

// wordStart reports whether target[i] begins a path segment, a dotted part or a camelCase word
func wordStart(target string, i int) bool {
	if i == 0 {
		return true
	}
	switch target[i-1] {
	case '/', '.', '-', '_':
		return true
	}
	return unicode.IsUpper(rune(target[i])) && unicode.IsLower(rune(target[i-1]))
}
