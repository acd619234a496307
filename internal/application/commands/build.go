package commands

import (
	"context"
	"fmt"

	"iconpack/internal/application"
	"iconpack/internal/domain"
	"iconpack/internal/ports"
)

// BuildIconPackResult contains the result of a full icon pack build
type BuildIconPackResult struct {
	Version string
	Stats   domain.DiscoveryStats
	Write   *WritePackResult
	Message string
}

// BuildIconPackCommand runs discovery, encoding, serialization and output in sequence
type BuildIconPackCommand struct {
	repo        ports.IconRepository
	store       ports.PackStore
	reporter    ports.Reporter
	SourcesPath string
	Version     string
	Rules       domain.Rules
}

// NewBuildIconPackCommand creates a new BuildIconPackCommand
func NewBuildIconPackCommand(
	repo ports.IconRepository,
	store ports.PackStore,
	reporter ports.Reporter,
	sourcesPath, version string,
	rules domain.Rules,
) *BuildIconPackCommand {
	return &BuildIconPackCommand{
		repo:        repo,
		store:       store,
		reporter:    reporter,
		SourcesPath: sourcesPath,
		Version:     version,
		Rules:       rules,
	}
}

// Validate checks the sources folder before any work begins
func (c *BuildIconPackCommand) Validate() error {
	return application.ValidateSourcesFolder(c.repo, c.SourcesPath)
}

// Execute builds and writes the icon pack
func (c *BuildIconPackCommand) Execute(ctx context.Context) (*BuildIconPackResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	version := application.NormalizeVersion(c.Version)
	layout := domain.NewLayout(c.SourcesPath)

	c.reporter.OK("Loading all IJ SVG icons (old and new UI) from %s/platform/icons/", layout.Root)
	discovered, err := NewDiscoverIconsCommand(c.repo, layout, c.Rules).Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to discover icons: %w", err)
	}
	c.reporter.OK("Found %d valid icons for Icon Pack", len(discovered.Entries))

	icons, err := NewEncodeIconsCommand(c.repo, c.reporter, discovered.Entries).Execute(ctx)
	if err != nil {
		return nil, err
	}

	content, err := NewSerializePackCommand(layout, c.Rules, version, icons).Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to render icon pack: %w", err)
	}

	written, err := NewWritePackCommand(c.store, c.reporter, domain.PackFileName, content).Execute(ctx)
	if err != nil {
		return nil, err
	}

	state := "unchanged"
	if written.Changed {
		state = "changed"
	}

	return &BuildIconPackResult{
		Version: version,
		Stats:   discovered.Stats,
		Write:   written,
		Message: fmt.Sprintf("Wrote %d icons to %s (%s, md5 %s)", len(icons), written.Path, state, written.Checksum),
	}, nil
}
