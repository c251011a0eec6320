package rulesconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rulekit-labs/rulekit/internal/agents"
)

func writeRulesYAML(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMissingFileYieldsEmptyOverrides(t *testing.T) {
	ov, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if len(ov) != 0 {
		t.Errorf("expected empty overrides, got %v", ov)
	}
}

func TestLoadUnparseableFileReturnsEmptyOverridesAndError(t *testing.T) {
	dir := t.TempDir()
	writeRulesYAML(t, dir, "agents: [not: a: map")

	ov, err := Load(dir)
	if err == nil {
		t.Error("expected parse error to be reported")
	}
	if len(ov) != 0 {
		t.Errorf("expected empty overrides on parse failure, got %v", ov)
	}
}

func TestLoadParsesEnableFlagsAndPathOverrides(t *testing.T) {
	dir := t.TempDir()
	writeRulesYAML(t, dir, `
agents:
  cursor:
    paths:
      commands: tools/cursor
  claude:
    enabled: false
`)

	ov, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !ov.Disabled(agents.Claude) {
		t.Error("claude should be disabled")
	}
	if ov.Disabled(agents.Cursor) {
		t.Error("cursor should stay enabled")
	}
	if got := ov[agents.Cursor].Paths[agents.Commands]; got != "tools/cursor" {
		t.Errorf("cursor commands override = %q", got)
	}
}

func TestLoadIgnoresUnknownAgentsAndCategories(t *testing.T) {
	dir := t.TempDir()
	writeRulesYAML(t, dir, `
agents:
  copilot:
    enabled: false
  cursor:
    paths:
      widgets: somewhere
`)

	ov, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(ov) != 1 {
		t.Errorf("unknown agent must be dropped, got %v", ov)
	}
	if len(ov[agents.Cursor].Paths) != 0 {
		t.Errorf("unknown category must be dropped, got %v", ov[agents.Cursor].Paths)
	}
}
