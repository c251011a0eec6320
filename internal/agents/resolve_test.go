package agents

import (
	"path/filepath"
	"testing"
)

func boolPtr(b bool) *bool { return &b }

func TestResolveUsesDefaultsWithoutOverrides(t *testing.T) {
	dst, ok := Resolve(Cursor, Commands, Overrides{}, "/proj")
	if !ok {
		t.Fatal("expected resolution, got skip")
	}
	if want := filepath.Join("/proj", ".cursor/commands"); dst != want {
		t.Errorf("dst = %q, want %q", dst, want)
	}
}

func TestResolveSkipsDisabledAgent(t *testing.T) {
	ov := Overrides{Claude: {Enabled: boolPtr(false)}}
	if _, ok := Resolve(Claude, Commands, ov, "/proj"); ok {
		t.Error("expected skip for disabled agent")
	}
}

func TestResolveEnabledTrueIsNotASkip(t *testing.T) {
	ov := Overrides{Claude: {Enabled: boolPtr(true)}}
	if _, ok := Resolve(Claude, Skills, ov, "/proj"); !ok {
		t.Error("explicitly enabled agent must resolve")
	}
}

func TestResolvePrefersOverridePath(t *testing.T) {
	ov := Overrides{Cursor: {Paths: map[Category]string{Commands: "tools/cursor-cmds"}}}
	dst, ok := Resolve(Cursor, Commands, ov, "/proj")
	if !ok {
		t.Fatal("expected resolution, got skip")
	}
	if want := filepath.Join("/proj", "tools/cursor-cmds"); dst != want {
		t.Errorf("dst = %q, want %q", dst, want)
	}
}

func TestResolveOverrideForOtherCategoryFallsBack(t *testing.T) {
	ov := Overrides{Cursor: {Paths: map[Category]string{Commands: "tools/cursor-cmds"}}}
	dst, ok := Resolve(Cursor, Skills, ov, "/proj")
	if !ok {
		t.Fatal("expected resolution, got skip")
	}
	if want := filepath.Join("/proj", ".cursor/skills"); dst != want {
		t.Errorf("dst = %q, want %q", dst, want)
	}
}

func TestCodexSubagentsCollapseToCommandsPath(t *testing.T) {
	sub, ok := DefaultPath(Codex, Subagents)
	if !ok {
		t.Fatal("codex subagents path missing")
	}
	cmds, _ := DefaultPath(Codex, Commands)
	if sub != cmds {
		t.Errorf("codex subagents = %q, want commands path %q", sub, cmds)
	}
}

func TestParseNameRejectsUnknownAgents(t *testing.T) {
	if _, ok := ParseName("copilot"); ok {
		t.Error("copilot is not a supported agent")
	}
	for _, name := range []string{"cursor", "claude", "codex"} {
		if _, ok := ParseName(name); !ok {
			t.Errorf("ParseName(%q) should succeed", name)
		}
	}
}
