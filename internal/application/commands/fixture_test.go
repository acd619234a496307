package commands

import (
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"iconpack/internal/adapters/filesystem"
	"iconpack/internal/domain"
)

// Icon contents of the fixture tree, keyed by path relative to platform/icons/src
var fixtureIcons = map[string]string{
	// direct counterpart
	"expui/fileTypes/java.svg": `<svg id="new-java"/>`,
	"fileTypes/java.svg":       `<svg id="old-java"/>`,
	// nested direct counterpart
	"expui/fileTypes/nested/deep.svg": `<svg id="new-deep"/>`,
	"fileTypes/nested/deep.svg":       `<svg id="old-deep"/>`,
	// class.svg -> javaClass.svg
	"expui/nodes/class.svg": `<svg id="new-class"/>`,
	"nodes/javaClass.svg":   `<svg id="old-javaClass"/>`,
	// expui/nodes -> modules
	"expui/nodes/module.svg": `<svg id="new-module"/>`,
	"modules/module.svg":     `<svg id="old-module"/>`,
	// no counterpart at all
	"expui/nodes/orphan.svg": `<svg id="new-orphan"/>`,
	// not whitelisted
	"expui/general/add.svg": `<svg id="new-add"/>`,
	"general/add.svg":       `<svg id="old-add"/>`,
}

// setupSourceTree creates an IntelliJ-like checkout and returns its root
func setupSourceTree(t *testing.T) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), "intellij")
	for rel, content := range fixtureIcons {
		writeIcon(t, root, rel, content)
	}
	return root
}

func writeIcon(t *testing.T, root, rel, content string) {
	t.Helper()

	path := filepath.Join(root, "platform", "icons", "src", filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func b64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// failingReads is an IconRepository whose reads of selected files fail
type failingReads struct {
	*filesystem.IconRepository
	fail map[string]bool
}

func (r *failingReads) ReadFile(path string) ([]byte, error) {
	if r.fail[domain.NormalizePath(path)] {
		return nil, errors.New("file vanished")
	}
	return r.IconRepository.ReadFile(path)
}

// brokenStore is a PackStore whose operations fail on demand
type brokenStore struct {
	*filesystem.PackStore
	removeErr error
	writeErr  error
}

func (s *brokenStore) Remove(name string) error {
	if s.removeErr != nil {
		return s.removeErr
	}
	return s.PackStore.Remove(name)
}

func (s *brokenStore) Write(name string, content []byte) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	return s.PackStore.Write(name, content)
}
