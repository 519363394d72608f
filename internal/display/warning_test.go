package display

import (
	"bytes"
	"strings"
	"testing"
)

func TestDisplayWarning_TitleOnly(t *testing.T) {
	var buf bytes.Buffer
	Warning{Title: "Configuration Missing"}.Display(&buf)

	if got := buf.String(); got != "Configuration Missing\n" {
		t.Errorf("Display() = %q, want title line only", got)
	}
}

func TestDisplayWarning_AllParts(t *testing.T) {
	var buf bytes.Buffer
	w := Warning{
		Title:      "Validation failed: 2 problem(s)",
		Message:    "The configuration was assembled but is inconsistent",
		Items:      []string{"max-merge must be 1 .. 5", "subme must be less than or equal to 7"},
		Suggestion: "Fix the options and run validate again",
	}
	w.Display(&buf)

	want := []string{
		"Validation failed: 2 problem(s)",
		"    The configuration was assembled but is inconsistent",
		"  - max-merge must be 1 .. 5",
		"  - subme must be less than or equal to 7",
		"    Suggestion: Fix the options and run validate again",
	}
	got := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(got) != len(want) {
		t.Fatalf("Display() wrote %d lines, want %d: %q", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDisplayWarning_NoColorOnBuffers(t *testing.T) {
	var buf bytes.Buffer
	Warning{Title: "t", Suggestion: "s"}.Display(&buf)

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("Display() emitted ANSI codes to a buffer: %q", buf.String())
	}
}
