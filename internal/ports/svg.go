package ports

import "iconpack/internal/domain"

// SVGInspector reads the geometry of SVG icons
type SVGInspector interface {
	Inspect(path string) (*domain.SVGInfo, error)
}
