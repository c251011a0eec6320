package rulesconfig

import (
	"path/filepath"
	"testing"
)

func TestValidateAcceptsWellFormedConfig(t *testing.T) {
	result, err := Validate([]byte(`
agents:
  cursor:
    enabled: true
    paths:
      commands: .cursor/commands
  claude:
    enabled: false
`))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got issues: %v", result.Issues)
	}
}

func TestValidateFlagsWrongTypes(t *testing.T) {
	result, err := Validate([]byte(`
agents:
  cursor:
    enabled: "yes"
`))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if result.Valid {
		t.Fatal("expected validation issues for non-boolean enabled")
	}
	if len(result.Issues) == 0 {
		t.Error("expected at least one issue")
	}
}

func TestValidateFlagsUnknownPathKeys(t *testing.T) {
	result, err := Validate([]byte(`
agents:
  cursor:
    paths:
      widgets: somewhere
`))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if result.Valid {
		t.Error("expected issues for unknown path category")
	}
}

func TestValidateFileMissingIsValid(t *testing.T) {
	result, err := ValidateFile(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("ValidateFile: %v", err)
	}
	if !result.Valid {
		t.Error("a project without rules.yaml is valid")
	}
}
