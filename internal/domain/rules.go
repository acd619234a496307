package domain

import "strings"

// Substitution rewrites every occurrence of Pattern with Replacement
type Substitution struct {
	Pattern     string
	Replacement string
}

// Apply returns text with the substitution applied and whether Pattern occurred in it
func (s Substitution) Apply(text string) (string, bool) {
	if s.Pattern == "" || !strings.Contains(text, s.Pattern) {
		return text, false
	}
	return strings.ReplaceAll(text, s.Pattern, s.Replacement), true
}

// Rules holds the tables that drive icon discovery and naming.
// Commands only read it; variants are built by config.LoadRules.
type Rules struct {
	// Whitelist lists substrings; an icon path must contain at least one of them
	Whitelist []string
	// Substitutions map new UI paths to old UI paths when no direct counterpart exists
	Substitutions []Substitution
	// ShortNameFixes adjust the icon identifier written to the pack
	ShortNameFixes []Substitution
}

// DefaultRules returns the rules used when no rule file is given
func DefaultRules() Rules {
	return Rules{
		Whitelist: []string{"fileTypes", "nodes"},
		// no exact matching between the two layouts for these icons
		Substitutions: []Substitution{
			{Pattern: "class.svg", Replacement: "javaClass.svg"},
			{Pattern: "expui/nodes", Replacement: "modules"},
		},
		// the new UI sometimes registers icons by file name only, without the parent folder
		ShortNameFixes: []Substitution{
			{Pattern: "/nodes/", Replacement: ""},
		},
	}
}

// Whitelisted reports whether the path contains any whitelisted substring
func (r Rules) Whitelisted(p string) bool {
	for _, w := range r.Whitelist {
		if strings.Contains(p, w) {
			return true
		}
	}
	return false
}

// Substitute applies the first substitution whose pattern occurs in p.
// Rules are never combined.
func (r Rules) Substitute(p string) (string, bool) {
	return firstMatch(r.Substitutions, p)
}

// ShortKey derives the identifier written to the pack from an icon key
func (r Rules) ShortKey(layout Layout, key string) string {
	short := strings.ReplaceAll(key, layout.IconsRoot(), "")
	short, _ = firstMatch(r.ShortNameFixes, short)
	return short
}

func firstMatch(subs []Substitution, text string) (string, bool) {
	for _, s := range subs {
		if out, ok := s.Apply(text); ok {
			return out, true
		}
	}
	return text, false
}
