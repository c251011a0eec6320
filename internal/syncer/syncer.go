// Package syncer copies rule trees into agent destinations, backing up any
// pre-existing destination file before it is overwritten, and discovers
// nested .rules roots for multi-project repositories.
package syncer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PlaceholderName is the conventional empty-directory placeholder. It exists
// only to make empty directories distributable and is never copied.
const PlaceholderName = ".gitkeep"

// backupMarker is the infix inserted before a filename's extension to derive
// the backup name for a displaced destination file.
const backupMarker = ".bak"

// Result reports what a single CopyTree call did.
type Result struct {
	Copied   []string // destination paths written
	Backups  []string // backup paths created
	Warnings []string // per-file failures that did not stop the run
}

// Syncer tracks backups across all CopyTree calls of one command invocation,
// so that two writes to the same destination within one run never silently
// overwrite each other's backup.
type Syncer struct {
	backups map[string]bool
}

// New returns a Syncer for a single command invocation.
func New() *Syncer {
	return &Syncer{backups: make(map[string]bool)}
}

// CopyTree copies every file under src into dst, creating destination
// directories as needed. Placeholder files are skipped. A pre-existing
// destination file is renamed to its backup name before the new content is
// written. Individual file failures are recorded as warnings and never abort
// sibling entries; only an unreadable src is an error, which the caller
// treats as fatal to this (agent, category) pair alone.
func (s *Syncer) CopyTree(src, dst string) (*Result, error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("reading source %s: %w", src, err)
	}
	if !srcInfo.IsDir() {
		return nil, fmt.Errorf("source %s is not a directory", src)
	}

	res := &Result{}
	s.copyDir(src, dst, res)
	return res, nil
}

// copyDir recursively copies one directory level. Read failures below the
// top level degrade to warnings so one bad subtree cannot sink its siblings.
func (s *Syncer) copyDir(src, dst string, res *Result) {
	if err := os.MkdirAll(dst, 0o755); err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("creating %s: %v", dst, err))
		return
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("reading %s: %v", src, err))
		return
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		switch {
		case entry.IsDir():
			s.copyDir(srcPath, dstPath, res)
		case entry.Type().IsRegular():
			if entry.Name() == PlaceholderName {
				continue
			}
			s.copyFile(srcPath, dstPath, res)
		}
		// Symlinks and other special files are not copied.
	}
}

// copyFile writes one source file to its destination, displacing any current
// occupant to its backup name first.
func (s *Syncer) copyFile(src, dst string, res *Result) {
	if _, err := os.Lstat(dst); err == nil {
		bak := BackupName(dst)
		if s.backups[bak] {
			// A write earlier in this run already claimed this backup name.
			// Overwriting it would silently drop that content, so report the
			// conflict and leave the destination as the earlier write left it.
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("skipping %s: backup %s was already created in this run", dst, bak))
			return
		}
		if err := os.Rename(dst, bak); err != nil {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("backing up %s: %v (file not copied)", dst, err))
			return
		}
		s.backups[bak] = true
		res.Backups = append(res.Backups, bak)
	}

	data, err := os.ReadFile(src)
	if err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("reading %s: %v", src, err))
		return
	}
	srcInfo, err := os.Stat(src)
	if err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("reading %s: %v", src, err))
		return
	}
	if err := os.WriteFile(dst, data, srcInfo.Mode().Perm()); err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("writing %s: %v", dst, err))
		return
	}
	res.Copied = append(res.Copied, dst)
}

// BackupName derives the backup path for a destination file by inserting the
// backup marker before the extension: report.md → report.bak.md. A file with
// no extension (including dotfiles like .env) gets the marker appended:
// README → README.bak.
func BackupName(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return path + backupMarker
	}
	return strings.TrimSuffix(path, ext) + backupMarker + ext
}
