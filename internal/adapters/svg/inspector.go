package svg

import (
	"fmt"
	"os"

	"github.com/srwiley/oksvg"

	"iconpack/internal/domain"
)

// Inspector implements ports.SVGInspector with oksvg
type Inspector struct{}

// NewInspector creates a new SVG inspector
func NewInspector() *Inspector {
	return &Inspector{}
}

// Inspect parses the SVG at path and returns its view box size.
// Unsupported SVG features are ignored; only malformed documents fail.
func (i *Inspector) Inspect(path string) (*domain.SVGInfo, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close() //nolint:errcheck

	icon, err := oksvg.ReadIconStream(in, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG %s: %w", path, err)
	}

	return &domain.SVGInfo{
		Width:  icon.ViewBox.W,
		Height: icon.ViewBox.H,
	}, nil
}
