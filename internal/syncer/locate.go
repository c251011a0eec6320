package syncer

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// RulesDirName is the configuration-root marker directory that holds the
// distributable rule content for a project or sub-project.
const RulesDirName = ".rules"

// excludedDirs are always skipped during nested discovery regardless of
// their prefix.
var excludedDirs = map[string]bool{
	"node_modules": true,
	"dist":         true,
	".git":         true,
}

// FindNestedRoots returns every .rules directory found under root, excluding
// root's own first-level .rules (that one is the primary source and is
// handled separately by the caller).
//
// Dot-prefixed directories are not descended into unless they are the .rules
// directory itself, which is recorded as a match and also not descended into.
// Unreadable subtrees contribute nothing; the call never fails for local
// I/O errors. Symlinks are not followed. Order follows filepath.WalkDir's
// lexical traversal, so repeated runs against an unchanged tree return the
// same sequence.
func FindNestedRoots(root string) []string {
	var roots []string

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if !d.IsDir() || path == root {
			return nil
		}

		name := d.Name()
		if excludedDirs[name] {
			return filepath.SkipDir
		}

		if name == RulesDirName {
			if filepath.Dir(path) != root {
				roots = append(roots, path)
			}
			// Rules roots do not nest inside each other for discovery.
			return filepath.SkipDir
		}

		if strings.HasPrefix(name, ".") {
			return filepath.SkipDir
		}

		return nil
	})

	return roots
}
