package fetch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// versionFileName records the installed ruleset version inside .rules.
const versionFileName = ".version"

// LocalVersion reads the version recorded in an unpacked ruleset directory.
// An absent version file returns the empty string.
func LocalVersion(rulesDir string) string {
	data, err := os.ReadFile(filepath.Join(rulesDir, versionFileName))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// WriteLocalVersion records the ruleset version inside the rules directory.
func WriteLocalVersion(rulesDir, version string) error {
	path := filepath.Join(rulesDir, versionFileName)
	if err := os.WriteFile(path, []byte(version+"\n"), 0o644); err != nil {
		return fmt.Errorf("recording ruleset version: %w", err)
	}
	return nil
}

// IsNewer reports whether latest is a strictly newer semver than current.
// Either side may carry a leading "v".
func IsNewer(current, latest string) (bool, error) {
	cv, err := parseSemver(current)
	if err != nil {
		return false, fmt.Errorf("parsing current version %q: %w", current, err)
	}
	lv, err := parseSemver(latest)
	if err != nil {
		return false, fmt.Errorf("parsing latest version %q: %w", latest, err)
	}
	return cv.Compare(lv) < 0, nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}
