package commands

import (
	"context"
	"encoding/base64"

	"iconpack/internal/application"
	"iconpack/internal/domain"
	"iconpack/internal/ports"
)

// EncodeIconsCommand reads the old UI file of every icon and encodes it in base64
type EncodeIconsCommand struct {
	repo     ports.IconRepository
	reporter ports.Reporter
	Entries  []domain.IconEntry
}

// NewEncodeIconsCommand creates a new EncodeIconsCommand
func NewEncodeIconsCommand(repo ports.IconRepository, reporter ports.Reporter, entries []domain.IconEntry) *EncodeIconsCommand {
	return &EncodeIconsCommand{
		repo:     repo,
		reporter: reporter,
		Entries:  entries,
	}
}

// Execute encodes every icon, in entry order. A file that can no longer be read aborts the run.
func (c *EncodeIconsCommand) Execute(ctx context.Context) ([]domain.EncodedIcon, error) {
	icons := make([]domain.EncodedIcon, 0, len(c.Entries))

	for _, e := range c.Entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := c.repo.ReadFile(e.SourcePath)
		if err != nil {
			return nil, &application.FileReadError{Path: e.SourcePath, Err: err}
		}

		icons = append(icons, domain.EncodedIcon{
			Key:     e.Key,
			Content: base64.StdEncoding.EncodeToString(data),
		})
	}

	c.reporter.OK("Converted %d icons to Base64", len(icons))
	return icons, nil
}
