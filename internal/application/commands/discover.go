package commands

import (
	"context"
	"sort"

	"iconpack/internal/domain"
	"iconpack/internal/ports"
)

// svgPattern matches every SVG below the new UI root, at any depth
const svgPattern = "**/*.svg"

// DiscoverIconsResult contains the icons that have an old UI counterpart
type DiscoverIconsResult struct {
	Entries []domain.IconEntry // Sorted by key
	Stats   domain.DiscoveryStats
}

// DiscoverIconsCommand maps new UI icons to their old UI files
type DiscoverIconsCommand struct {
	repo   ports.IconRepository
	Layout domain.Layout
	Rules  domain.Rules
}

// NewDiscoverIconsCommand creates a new DiscoverIconsCommand
func NewDiscoverIconsCommand(repo ports.IconRepository, layout domain.Layout, rules domain.Rules) *DiscoverIconsCommand {
	return &DiscoverIconsCommand{
		repo:   repo,
		Layout: layout,
		Rules:  rules,
	}
}

// Execute scans the new UI icons and resolves each one, first directly and then through
// the first matching substitution. Icons without a counterpart are skipped.
func (c *DiscoverIconsCommand) Execute(ctx context.Context) (*DiscoverIconsResult, error) {
	files, err := c.repo.Glob(c.Layout.NewUIRoot(), svgPattern)
	if err != nil {
		return nil, err
	}

	stats := domain.DiscoveryStats{Matched: len(files)}
	byKey := make(map[string]domain.IconEntry)

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		file = domain.NormalizePath(file)
		if !c.Rules.Whitelisted(file) {
			continue
		}
		stats.Whitelisted++

		entry, ok := c.resolve(file)
		if !ok {
			stats.Unresolved++
			continue
		}

		switch entry.Resolution {
		case domain.ResolvedDirect:
			stats.Direct++
		case domain.ResolvedSubstituted:
			stats.Substituted++
		}
		byKey[entry.Key] = entry
	}

	entries := make([]domain.IconEntry, 0, len(byKey))
	for _, e := range byKey {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})

	return &DiscoverIconsResult{Entries: entries, Stats: stats}, nil
}

func (c *DiscoverIconsCommand) resolve(file string) (domain.IconEntry, bool) {
	entry := domain.IconEntry{
		Key:       c.Layout.IconKey(file),
		NewUIPath: file,
	}

	if direct := domain.OldUIPath(file); c.repo.Exists(direct) {
		entry.SourcePath = direct
		entry.Resolution = domain.ResolvedDirect
		return entry, true
	}

	if alt, ok := c.Rules.Substitute(file); ok {
		if alt = domain.OldUIPath(alt); c.repo.Exists(alt) {
			entry.SourcePath = alt
			entry.Resolution = domain.ResolvedSubstituted
			return entry, true
		}
	}

	return entry, false
}
