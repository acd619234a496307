package commands

import (
	"context"
	"errors"
	"testing"

	"iconpack/internal/adapters/filesystem"
	"iconpack/internal/adapters/svg"
	"iconpack/internal/application"
	"iconpack/internal/domain"
)

func TestListIconsCommand_Execute(t *testing.T) {
	root := setupSourceTree(t)
	writeIcon(t, root, "fileTypes/java.svg", `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 16 16"/>`)

	cmd := NewListIconsCommand(filesystem.NewIconRepository(), svg.NewInspector(), root, domain.DefaultRules())
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	wantShort := []string{"/fileTypes/java.svg", "/fileTypes/nested/deep.svg", "class.svg", "module.svg"}
	if len(result.Icons) != len(wantShort) {
		t.Fatalf("expected %d icons, got %d", len(wantShort), len(result.Icons))
	}
	for i, want := range wantShort {
		if result.Icons[i].ShortKey != want {
			t.Errorf("icon %d: expected short key %s, got %s", i, want, result.Icons[i].ShortKey)
		}
	}

	java := result.Icons[0]
	if java.Size == nil || java.Size.Width != 16 || java.Size.Height != 16 {
		t.Errorf("expected 16x16 size for java.svg, got %+v", java.Size)
	}
	if result.Stats.Unresolved != 1 {
		t.Errorf("expected 1 unresolved icon, got %d", result.Stats.Unresolved)
	}
}

func TestListIconsCommand_WithoutInspector(t *testing.T) {
	root := setupSourceTree(t)

	result, err := NewListIconsCommand(filesystem.NewIconRepository(), nil, root, domain.DefaultRules()).
		Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	for _, icon := range result.Icons {
		if icon.Size != nil {
			t.Errorf("%s: expected no size without an inspector", icon.Key)
		}
	}
}

func TestListIconsCommand_InvalidSources(t *testing.T) {
	_, err := NewListIconsCommand(filesystem.NewIconRepository(), nil, "", domain.DefaultRules()).
		Execute(context.Background())
	if !errors.Is(err, application.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}
