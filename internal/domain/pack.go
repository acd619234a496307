package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// PackName prefixes the versioned name of the icon pack
	PackName = "NewUIFilesToOldUITheme"
	// PackFileName is the file the icon pack is written to
	PackFileName = PackName + ".json"
	// DefaultVersion is used when no version is given
	DefaultVersion = "1"
)

// IconPackItem is one icon model of the pack. Field order is part of the format.
type IconPackItem struct {
	IdeIcon     string      `json:"ideIcon"`
	Icon        string      `json:"icon"`
	Description string      `json:"description"`
	IconPack    string      `json:"iconPack"`
	ModelType   string      `json:"modelType"`
	IconType    string      `json:"iconType"`
	Enabled     bool        `json:"enabled"`
	Conditions  []Condition `json:"conditions"`
}

// Condition is the (disabled) matching block the theming tool expects on each model
type Condition struct {
	Start          bool     `json:"start"`
	Eq             bool     `json:"eq"`
	MayEnd         bool     `json:"mayEnd"`
	End            bool     `json:"end"`
	NoDot          bool     `json:"noDot"`
	CheckParent    bool     `json:"checkParent"`
	HasRegex       bool     `json:"hasRegex"`
	Enabled        bool     `json:"enabled"`
	CheckFacets    bool     `json:"checkFacets"`
	HasIconEnabler bool     `json:"hasIconEnabler"`
	Names          []string `json:"names"`
	ParentNames    []string `json:"parentNames"`
	Extensions     []string `json:"extensions"`
	Facets         []string `json:"facets"`
}

// IconPackDocument is the top-level icon pack object
type IconPackDocument struct {
	Name   string         `json:"name"`
	Models []IconPackItem `json:"models"`
}

// NewIconPackItem builds the model for an icon identified by shortKey
func NewIconPackItem(shortKey, content string) IconPackItem {
	return IconPackItem{
		IdeIcon:     shortKey,
		Icon:        content,
		Description: shortKey,
		IconPack:    "",
		ModelType:   "ICON",
		IconType:    "SVG",
		Enabled:     true,
		Conditions: []Condition{{
			Enabled:     true,
			Names:       []string{},
			ParentNames: []string{},
			Extensions:  []string{},
			Facets:      []string{},
		}},
	}
}

// VersionedName returns the pack name for a version, defaulting an empty version to "1"
func VersionedName(version string) string {
	if version == "" {
		version = DefaultVersion
	}
	return PackName + "_v" + version
}

// NewIconPackDocument builds the pack for a version, defaulting an empty version to "1"
func NewIconPackDocument(version string, items []IconPackItem) IconPackDocument {
	return IconPackDocument{Name: VersionedName(version), Models: items}
}

// RenderPack renders the icon pack text: one model per line, LF newlines.
//
// The whole text is compacted afterwards (", " -> "," then ": " -> ":"), including string
// content, so existing packs stay byte-for-byte reproducible.
func RenderPack(doc IconPackDocument) (string, error) {
	lines := make([]string, 0, len(doc.Models))
	for _, item := range doc.Models {
		line, err := encodeCompact(item)
		if err != nil {
			return "", fmt.Errorf("failed to encode %s: %w", item.IdeIcon, err)
		}
		lines = append(lines, line)
	}

	name, err := encodeCompact(doc.Name)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(`{"name": ` + name + `,"models": [`)
	b.WriteString("\n")
	b.WriteString(strings.Join(lines, ",\n"))
	b.WriteString("\n]}\n")

	return Compact(b.String()), nil
}

// Compact removes the space after every comma and colon of the rendered text
func Compact(text string) string {
	text = strings.ReplaceAll(text, ", ", ",")
	return strings.ReplaceAll(text, ": ", ":")
}

func encodeCompact(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
