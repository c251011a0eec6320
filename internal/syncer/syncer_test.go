package syncer

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func TestCopyTreeIntoEmptyDestination(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	dst := filepath.Join(tmp, "dst")

	writeFile(t, filepath.Join(src, "greet.md"), "# greet")
	writeFile(t, filepath.Join(src, "review", "deep.md"), "# deep")

	res, err := New().CopyTree(src, dst)
	if err != nil {
		t.Fatalf("CopyTree: %v", err)
	}

	if got := readFile(t, filepath.Join(dst, "greet.md")); got != "# greet" {
		t.Errorf("greet.md content = %q", got)
	}
	if got := readFile(t, filepath.Join(dst, "review", "deep.md")); got != "# deep" {
		t.Errorf("review/deep.md content = %q", got)
	}
	if len(res.Backups) != 0 {
		t.Errorf("expected no backups, got %v", res.Backups)
	}
	if len(res.Copied) != 2 {
		t.Errorf("expected 2 copied files, got %v", res.Copied)
	}
}

func TestCopyTreeBacksUpExistingDestinationFile(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	dst := filepath.Join(tmp, "dst")

	writeFile(t, filepath.Join(src, "greet.md"), "new content")
	writeFile(t, filepath.Join(dst, "greet.md"), "old content")

	res, err := New().CopyTree(src, dst)
	if err != nil {
		t.Fatalf("CopyTree: %v", err)
	}

	if got := readFile(t, filepath.Join(dst, "greet.md")); got != "new content" {
		t.Errorf("destination content = %q, want new content", got)
	}
	if got := readFile(t, filepath.Join(dst, "greet.bak.md")); got != "old content" {
		t.Errorf("backup content = %q, want old content", got)
	}
	if len(res.Backups) != 1 {
		t.Errorf("expected 1 backup, got %v", res.Backups)
	}
}

func TestCopyTreeSkipsPlaceholderFiles(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	dst := filepath.Join(tmp, "dst")

	writeFile(t, filepath.Join(src, PlaceholderName), "")

	res, err := New().CopyTree(src, dst)
	if err != nil {
		t.Fatalf("CopyTree: %v", err)
	}

	// Destination directory exists but holds nothing.
	entries, err := os.ReadDir(dst)
	if err != nil {
		t.Fatalf("destination not created: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty destination, got %d entries", len(entries))
	}
	if len(res.Copied) != 0 {
		t.Errorf("expected nothing copied, got %v", res.Copied)
	}
}

func TestCopyTreeMissingSourceIsError(t *testing.T) {
	tmp := t.TempDir()
	_, err := New().CopyTree(filepath.Join(tmp, "nope"), filepath.Join(tmp, "dst"))
	if err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestCopyTreeSecondRunBacksUpFirstRunOutput(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	dst := filepath.Join(tmp, "dst")

	writeFile(t, filepath.Join(src, "greet.md"), "content")

	if _, err := New().CopyTree(src, dst); err != nil {
		t.Fatalf("first CopyTree: %v", err)
	}
	res, err := New().CopyTree(src, dst)
	if err != nil {
		t.Fatalf("second CopyTree: %v", err)
	}

	// Re-application treats the first run's output as existing content.
	if len(res.Backups) != 1 {
		t.Fatalf("expected 1 backup on second run, got %v", res.Backups)
	}
	if got := readFile(t, filepath.Join(dst, "greet.bak.md")); got != "content" {
		t.Errorf("backup content = %q", got)
	}
}

func TestCopyTreeSameDestinationTwiceInOneRun(t *testing.T) {
	tmp := t.TempDir()
	srcA := filepath.Join(tmp, "a")
	srcB := filepath.Join(tmp, "b")
	dst := filepath.Join(tmp, "dst")

	writeFile(t, filepath.Join(srcA, "greet.md"), "from a")
	writeFile(t, filepath.Join(srcB, "greet.md"), "from b")
	writeFile(t, filepath.Join(dst, "greet.md"), "user content")

	s := New()
	if _, err := s.CopyTree(srcA, dst); err != nil {
		t.Fatalf("CopyTree a: %v", err)
	}
	res, err := s.CopyTree(srcB, dst)
	if err != nil {
		t.Fatalf("CopyTree b: %v", err)
	}

	// The user's original content stays in the backup; the second write is
	// reported instead of silently replacing that backup.
	if got := readFile(t, filepath.Join(dst, "greet.bak.md")); got != "user content" {
		t.Errorf("backup content = %q, want user content", got)
	}
	if got := readFile(t, filepath.Join(dst, "greet.md")); got != "from a" {
		t.Errorf("destination content = %q, want from a", got)
	}
	if len(res.Warnings) != 1 {
		t.Errorf("expected 1 warning for the same-run conflict, got %v", res.Warnings)
	}
}

func TestCopyTreeIgnoresSymlinks(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	dst := filepath.Join(tmp, "dst")

	writeFile(t, filepath.Join(src, "real.md"), "real")
	if err := os.Symlink(filepath.Join(src, "real.md"), filepath.Join(src, "link.md")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	res, err := New().CopyTree(src, dst)
	if err != nil {
		t.Fatalf("CopyTree: %v", err)
	}
	if len(res.Copied) != 1 {
		t.Errorf("expected only the regular file copied, got %v", res.Copied)
	}
	if _, err := os.Lstat(filepath.Join(dst, "link.md")); err == nil {
		t.Error("symlink should not be copied")
	}
}

func TestBackupName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"report.md", "report.bak.md"},
		{"README", "README.bak"},
		{".env", ".env.bak"},
		{"archive.tar.gz", "archive.tar.bak.gz"},
		{filepath.Join("a", "b", "note.txt"), filepath.Join("a", "b", "note.bak.txt")},
	}
	for _, tt := range tests {
		if got := BackupName(tt.in); got != tt.want {
			t.Errorf("BackupName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
