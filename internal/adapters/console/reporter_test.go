package console

import (
	"bytes"
	"strings"
	"testing"
)

func TestReporter_WritesMarkedLines(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewReporter(&out, &errOut)

	r.OK("Found %d valid icons for Icon Pack", 3)
	r.New("%s is new!", "pack.json")
	r.Err("IntelliJ sources folder required")

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines on out, got %q", out.String())
	}
	if lines[0] != MarkOK+"Found 3 valid icons for Icon Pack" {
		t.Errorf("unexpected OK line %q", lines[0])
	}
	if lines[1] != MarkNew+"pack.json is new!" {
		t.Errorf("unexpected New line %q", lines[1])
	}
	if errOut.String() != MarkErr+"IntelliJ sources folder required\n" {
		t.Errorf("unexpected Err output %q", errOut.String())
	}
}
