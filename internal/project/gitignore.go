package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// gitignoreMarker heads the block rulekit appends to a project's .gitignore.
// Its presence makes the append idempotent.
const gitignoreMarker = "# rulekit"

// gitignoreEntries are the patterns appended below the marker.
var gitignoreEntries = []string{
	".rules/",
	"*.bak.*",
	"*.bak",
}

// AddGitignoreBlock appends the rulekit block to the project's .gitignore,
// creating the file if needed. If the marker line is already present, this
// is a no-op.
func AddGitignoreBlock(projectRoot string) error {
	gitignorePath := filepath.Join(projectRoot, ".gitignore")

	content, err := os.ReadFile(gitignorePath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading .gitignore: %w", err)
	}

	for _, l := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(l) == gitignoreMarker {
			return nil // already present
		}
	}

	var b strings.Builder
	if len(content) > 0 && !strings.HasSuffix(string(content), "\n") {
		b.WriteString("\n")
	}
	b.WriteString(gitignoreMarker + "\n")
	for _, entry := range gitignoreEntries {
		b.WriteString(entry + "\n")
	}

	f, err := os.OpenFile(gitignorePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening .gitignore for append: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("writing to .gitignore: %w", err)
	}

	return nil
}
