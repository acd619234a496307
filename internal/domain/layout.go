package domain

import (
	"path"
	"strings"
)

const (
	// IconsDir is the icon sources folder relative to an IntelliJ checkout
	IconsDir = "platform/icons/src"
	// NewUIDir is the folder holding new UI icons inside IconsDir
	NewUIDir = "expui"
)

// Layout locates the old and new UI icon folders of an IntelliJ source tree.
// All paths it produces use forward slashes and are cleaned, so they compare equal
// to the cleaned paths returned by IconRepository.Glob (e.g., root "." gives
// "platform/icons/src").
type Layout struct {
	Root string
}

// NewLayout creates a Layout rooted at the given source tree
func NewLayout(root string) Layout {
	root = NormalizePath(root)
	if root != "" {
		root = path.Clean(root)
	}
	return Layout{Root: root}
}

// IconsRoot returns <root>/platform/icons/src
func (l Layout) IconsRoot() string {
	return path.Join(l.Root, IconsDir)
}

// NewUIRoot returns <root>/platform/icons/src/expui
func (l Layout) NewUIRoot() string {
	return path.Join(l.IconsRoot(), NewUIDir)
}

// IconKey returns the path of a new UI icon relative to NewUIRoot, with a leading slash
// (e.g., "/fileTypes/java.svg").
func (l Layout) IconKey(newUIPath string) string {
	return strings.ReplaceAll(newUIPath, l.NewUIRoot()+"/", "/")
}

// OldUIPath drops every expui segment from a path
func OldUIPath(p string) string {
	return strings.ReplaceAll(p, "/"+NewUIDir+"/", "/")
}

// NormalizePath converts backslashes to forward slashes
func NormalizePath(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}
