package commands

import (
	"context"

	"iconpack/internal/domain"
)

// SerializePackCommand renders encoded icons into the icon pack document
type SerializePackCommand struct {
	Layout  domain.Layout
	Rules   domain.Rules
	Version string
	Icons   []domain.EncodedIcon
}

// NewSerializePackCommand creates a new SerializePackCommand
func NewSerializePackCommand(layout domain.Layout, rules domain.Rules, version string, icons []domain.EncodedIcon) *SerializePackCommand {
	return &SerializePackCommand{
		Layout:  layout,
		Rules:   rules,
		Version: version,
		Icons:   icons,
	}
}

// Execute returns the icon pack text
func (c *SerializePackCommand) Execute(ctx context.Context) (string, error) {
	items := make([]domain.IconPackItem, 0, len(c.Icons))
	for _, icon := range c.Icons {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		items = append(items, domain.NewIconPackItem(c.Rules.ShortKey(c.Layout, icon.Key), icon.Content))
	}

	return domain.RenderPack(domain.NewIconPackDocument(c.Version, items))
}
