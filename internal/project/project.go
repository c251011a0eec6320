// Package project handles the files rulekit plants in a target project:
// the .gitignore block, the env example, and project-root discovery.
package project

import (
	"os"
	"path/filepath"

	"github.com/rulekit-labs/rulekit/internal/rulesconfig"
)

// FindRoot walks up from dir to the first directory containing a .git
// directory or a rules.yaml file. When neither is found it returns dir
// unchanged, so single-directory projects still work.
func FindRoot(dir string) string {
	cur := dir
	for {
		if _, err := os.Stat(filepath.Join(cur, ".git")); err == nil {
			return cur
		}
		if _, err := os.Stat(filepath.Join(cur, rulesconfig.FileName)); err == nil {
			return cur
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return dir
		}
		cur = parent
	}
}
