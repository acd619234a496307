package commands

import (
	"context"

	"iconpack/internal/application"
	"iconpack/internal/domain"
	"iconpack/internal/ports"
)

// ListedIcon is a discovered icon with its pack identifier
type ListedIcon struct {
	domain.IconEntry
	ShortKey string
	Size     *domain.SVGInfo // Nil when not inspected or unreadable
}

// ListIconsResult contains the icons that would go into the pack
type ListIconsResult struct {
	Icons []ListedIcon
	Stats domain.DiscoveryStats
}

// ListIconsCommand runs discovery without writing anything
type ListIconsCommand struct {
	repo        ports.IconRepository
	inspector   ports.SVGInspector
	SourcesPath string
	Rules       domain.Rules
}

// NewListIconsCommand creates a new ListIconsCommand.
// The inspector may be nil, in which case sizes are not read.
func NewListIconsCommand(repo ports.IconRepository, inspector ports.SVGInspector, sourcesPath string, rules domain.Rules) *ListIconsCommand {
	return &ListIconsCommand{
		repo:        repo,
		inspector:   inspector,
		SourcesPath: sourcesPath,
		Rules:       rules,
	}
}

// Execute lists the resolved icons in key order
func (c *ListIconsCommand) Execute(ctx context.Context) (*ListIconsResult, error) {
	if err := application.ValidateSourcesFolder(c.repo, c.SourcesPath); err != nil {
		return nil, err
	}

	layout := domain.NewLayout(c.SourcesPath)
	discovered, err := NewDiscoverIconsCommand(c.repo, layout, c.Rules).Execute(ctx)
	if err != nil {
		return nil, err
	}

	icons := make([]ListedIcon, 0, len(discovered.Entries))
	for _, e := range discovered.Entries {
		icon := ListedIcon{
			IconEntry: e,
			ShortKey:  c.Rules.ShortKey(layout, e.Key),
		}
		if c.inspector != nil {
			if info, err := c.inspector.Inspect(e.SourcePath); err == nil {
				icon.Size = info
			}
		}
		icons = append(icons, icon)
	}

	return &ListIconsResult{Icons: icons, Stats: discovered.Stats}, nil
}
