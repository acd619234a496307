package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"iconpack/internal/adapters/console"
	"iconpack/internal/adapters/filesystem"
	"iconpack/internal/application"
	"iconpack/internal/domain"
)

func runBuild(t *testing.T, root, outDir, version string) (*BuildIconPackResult, string) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewBuildIconPackCommand(
		filesystem.NewIconRepository(),
		filesystem.NewPackStore(outDir),
		console.NewReporter(&out, &out),
		root, version, domain.DefaultRules(),
	)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v\n%s", err, out.String())
	}
	return result, out.String()
}

func readPack(t *testing.T, outDir string) (string, *domain.IconPackDocument) {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(outDir, domain.PackFileName))
	if err != nil {
		t.Fatalf("failed to read pack: %v", err)
	}
	var doc domain.IconPackDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("pack is not valid JSON: %v", err)
	}
	return string(data), &doc
}

func TestBuildIconPackCommand_Execute(t *testing.T) {
	root := setupSourceTree(t)
	outDir := t.TempDir()

	result, log := runBuild(t, root, outDir, "7")

	if !result.Write.Changed || result.Write.Replaced {
		t.Errorf("expected a new pack, got %+v", result.Write)
	}
	if result.Version != "7" {
		t.Errorf("expected version 7, got %s", result.Version)
	}

	_, doc := readPack(t, outDir)
	if doc.Name != "NewUIFilesToOldUITheme_v7" {
		t.Errorf("unexpected pack name %s", doc.Name)
	}

	want := map[string]string{
		"/fileTypes/java.svg":        b64(fixtureIcons["fileTypes/java.svg"]),
		"/fileTypes/nested/deep.svg": b64(fixtureIcons["fileTypes/nested/deep.svg"]),
		"class.svg":                  b64(fixtureIcons["nodes/javaClass.svg"]),
		"module.svg":                 b64(fixtureIcons["modules/module.svg"]),
	}
	if len(doc.Models) != len(want) {
		t.Fatalf("expected %d models, got %d", len(want), len(doc.Models))
	}
	for _, m := range doc.Models {
		content, ok := want[m.IdeIcon]
		if !ok {
			t.Errorf("unexpected model %s", m.IdeIcon)
			continue
		}
		if m.Icon != content {
			t.Errorf("%s: expected icon %s, got %s", m.IdeIcon, content, m.Icon)
		}
		if m.Description != m.IdeIcon {
			t.Errorf("%s: description %s differs from ideIcon", m.IdeIcon, m.Description)
		}
		delete(want, m.IdeIcon)
	}

	for _, line := range []string{
		"Loading all IJ SVG icons (old and new UI) from " + domain.NewLayout(root).Root + "/platform/icons/",
		"Found 4 valid icons for Icon Pack",
		"Converted 4 icons to Base64",
		"Created NewUIFilesToOldUITheme.json Icon Pack",
		"NewUIFilesToOldUITheme.json is new!",
	} {
		if !strings.Contains(log, line) {
			t.Errorf("expected output to contain %q, got:\n%s", line, log)
		}
	}
	if strings.Contains(log, "Removed existing") {
		t.Errorf("nothing should have been removed:\n%s", log)
	}
}

func TestBuildIconPackCommand_RerunIsUnchanged(t *testing.T) {
	root := setupSourceTree(t)
	outDir := t.TempDir()

	first, _ := runBuild(t, root, outDir, "1")
	firstText, _ := readPack(t, outDir)

	second, log := runBuild(t, root, outDir, "1")
	secondText, _ := readPack(t, outDir)

	if firstText != secondText {
		t.Error("expected byte-identical output on rerun")
	}
	if second.Write.Changed || !second.Write.Replaced {
		t.Errorf("expected an unchanged replacement, got %+v", second.Write)
	}
	if second.Write.Checksum != first.Write.Checksum || second.Write.PreviousChecksum != first.Write.Checksum {
		t.Errorf("checksums differ: first %s, second %+v", first.Write.Checksum, second.Write)
	}
	if !strings.Contains(log, "Removed existing NewUIFilesToOldUITheme.json Icon Pack") {
		t.Errorf("expected removal to be reported:\n%s", log)
	}
	if !strings.Contains(log, "is unchanged") || strings.Contains(log, "is new!") {
		t.Errorf("expected unchanged report:\n%s", log)
	}
}

func TestBuildIconPackCommand_ChangedSourceIsReported(t *testing.T) {
	root := setupSourceTree(t)
	outDir := t.TempDir()

	runBuild(t, root, outDir, "1")
	_, before := readPack(t, outDir)

	writeIcon(t, root, "fileTypes/java.svg", `<svg id="old-java-v2"/>`)
	result, _ := runBuild(t, root, outDir, "1")
	_, after := readPack(t, outDir)

	if !result.Write.Changed {
		t.Error("expected the pack to be reported as changed")
	}
	for i := range before.Models {
		b, a := before.Models[i], after.Models[i]
		if b.IdeIcon != a.IdeIcon {
			t.Fatalf("model order changed at %d", i)
		}
		if a.IdeIcon == "/fileTypes/java.svg" {
			if a.Icon != b64(`<svg id="old-java-v2"/>`) {
				t.Errorf("java icon not updated: %s", a.Icon)
			}
		} else if a.Icon != b.Icon {
			t.Errorf("%s changed unexpectedly", a.IdeIcon)
		}
	}
}

func TestBuildIconPackCommand_EmptyTree(t *testing.T) {
	root := t.TempDir()
	outDir := t.TempDir()

	runBuild(t, root, outDir, "")
	text, doc := readPack(t, outDir)

	want := "{\"name\":\"NewUIFilesToOldUITheme_v1\",\"models\":[\n\n]}\n"
	if text != want {
		t.Errorf("expected %q, got %q", want, text)
	}
	if len(doc.Models) != 0 {
		t.Errorf("expected no models, got %d", len(doc.Models))
	}
}

func TestBuildIconPackCommand_Validate(t *testing.T) {
	notDir := filepath.Join(t.TempDir(), "sources.txt")
	if err := os.WriteFile(notDir, []byte("not a checkout"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	tests := []struct {
		name   string
		root   string
		errMsg string
	}{
		{"empty sources path", "", "IntelliJ sources folder is required"},
		{"missing sources path", filepath.Join(t.TempDir(), "missing"), "not found"},
		{"sources path is a file", notDir, "not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outDir := t.TempDir()
			cmd := NewBuildIconPackCommand(
				filesystem.NewIconRepository(),
				filesystem.NewPackStore(outDir),
				console.Discard,
				tt.root, "1", domain.DefaultRules(),
			)

			_, err := cmd.Execute(context.Background())
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.errMsg)
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
			}
			if !errors.Is(err, application.ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
			if _, err := os.Stat(filepath.Join(outDir, domain.PackFileName)); !os.IsNotExist(err) {
				t.Error("no pack should be written on invalid arguments")
			}
		})
	}
}

func TestBuildIconPackCommand_UnreadableIconAborts(t *testing.T) {
	root := setupSourceTree(t)
	outDir := t.TempDir()
	layout := domain.NewLayout(root)

	repo := &failingReads{
		IconRepository: filesystem.NewIconRepository(),
		fail:           map[string]bool{layout.IconsRoot() + "/modules/module.svg": true},
	}
	cmd := NewBuildIconPackCommand(repo, filesystem.NewPackStore(outDir), console.Discard, root, "1", domain.DefaultRules())

	_, err := cmd.Execute(context.Background())
	if !errors.Is(err, application.ErrFileRead) {
		t.Fatalf("expected FileReadError, got %v", err)
	}
	var readErr *application.FileReadError
	if !errors.As(err, &readErr) || !strings.HasSuffix(readErr.Path, "/modules/module.svg") {
		t.Errorf("expected the failing path in the error, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, domain.PackFileName)); !os.IsNotExist(err) {
		t.Error("no pack should be written when an icon cannot be read")
	}
}

func TestWritePackCommand_Failures(t *testing.T) {
	cause := errors.New("disk full")

	t.Run("write failure", func(t *testing.T) {
		store := &brokenStore{PackStore: filesystem.NewPackStore(t.TempDir()), writeErr: cause}
		_, err := NewWritePackCommand(store, console.Discard, "pack.json", "{}").Execute(context.Background())
		if !errors.Is(err, application.ErrFileWrite) || !errors.Is(err, cause) {
			t.Errorf("expected FileWriteError wrapping the cause, got %v", err)
		}
	})

	t.Run("delete failure", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "pack.json"), []byte("old"), 0644); err != nil {
			t.Fatalf("failed to seed pack: %v", err)
		}
		store := &brokenStore{PackStore: filesystem.NewPackStore(dir), removeErr: cause}
		_, err := NewWritePackCommand(store, console.Discard, "pack.json", "{}").Execute(context.Background())
		if !errors.Is(err, application.ErrFileDelete) {
			t.Errorf("expected FileDeleteError, got %v", err)
		}
		data, _ := os.ReadFile(filepath.Join(dir, "pack.json"))
		if string(data) != "old" {
			t.Errorf("previous pack should be untouched, got %q", data)
		}
	})
}

func TestEncodeIconsCommand_RawBytes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.svg")
	content := "<svg>\r\n</svg>\r\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write icon: %v", err)
	}

	entries := []domain.IconEntry{{Key: "/fileTypes/crlf.svg", SourcePath: path}}
	var out bytes.Buffer
	icons, err := NewEncodeIconsCommand(filesystem.NewIconRepository(), console.NewReporter(&out, &out), entries).
		Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(icons) != 1 || icons[0].Content != b64(content) {
		t.Errorf("expected raw bytes to be encoded, got %+v", icons)
	}
	if !strings.Contains(out.String(), "Converted 1 icons to Base64") {
		t.Errorf("expected summary line, got %q", out.String())
	}
}
