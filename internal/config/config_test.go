package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"iconpack/internal/domain"
)

func writeRules(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write rules: %v", err)
	}
	return path
}

func TestLoadRules_DefaultsWithoutFile(t *testing.T) {
	rules, err := LoadRules("")
	if err != nil {
		t.Fatalf("LoadRules failed: %v", err)
	}
	if !reflect.DeepEqual(rules, domain.DefaultRules()) {
		t.Errorf("expected default rules, got %+v", rules)
	}
}

func TestLoadRules_DumpRoundTrip(t *testing.T) {
	data, err := DumpRules(domain.DefaultRules())
	if err != nil {
		t.Fatalf("DumpRules failed: %v", err)
	}
	if !strings.Contains(string(data), "javaClass.svg") {
		t.Errorf("expected substitutions in dump, got:\n%s", data)
	}

	rules, err := LoadRules(writeRules(t, "rules.yaml", string(data)))
	if err != nil {
		t.Fatalf("LoadRules failed: %v", err)
	}
	if !reflect.DeepEqual(rules, domain.DefaultRules()) {
		t.Errorf("round trip changed rules:\n got %+v\nwant %+v", rules, domain.DefaultRules())
	}
}

func TestLoadRules_PartialOverride(t *testing.T) {
	path := writeRules(t, "rules.yaml", `whitelist:
  - fileTypes
  - actions
substitutions:
  - pattern: expui/actions
    replacement: actions/old
`)

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules failed: %v", err)
	}

	if !reflect.DeepEqual(rules.Whitelist, []string{"fileTypes", "actions"}) {
		t.Errorf("unexpected whitelist %v", rules.Whitelist)
	}
	wantSubs := []domain.Substitution{{Pattern: "expui/actions", Replacement: "actions/old"}}
	if !reflect.DeepEqual(rules.Substitutions, wantSubs) {
		t.Errorf("unexpected substitutions %+v", rules.Substitutions)
	}
	if !reflect.DeepEqual(rules.ShortNameFixes, domain.DefaultRules().ShortNameFixes) {
		t.Errorf("short name fixes should keep their defaults, got %+v", rules.ShortNameFixes)
	}
}

func TestLoadRules_JSON(t *testing.T) {
	path := writeRules(t, "rules.json", `{"short_name_fixes": []}`)

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules failed: %v", err)
	}
	if len(rules.ShortNameFixes) != 0 {
		t.Errorf("expected no short name fixes, got %+v", rules.ShortNameFixes)
	}
	if len(rules.Whitelist) != 2 {
		t.Errorf("whitelist should keep its defaults, got %v", rules.Whitelist)
	}
}

func TestLoadRules_MissingFile(t *testing.T) {
	if _, err := LoadRules(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for a missing rules file")
	}
}
