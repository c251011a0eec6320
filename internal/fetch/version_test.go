package fetch

import "testing"

func TestIsNewer(t *testing.T) {
	tests := []struct {
		current string
		latest  string
		want    bool
	}{
		{"1.0.0", "1.1.0", true},
		{"v1.0.0", "v1.0.1", true},
		{"1.2.0", "1.2.0", false},
		{"2.0.0", "1.9.9", false},
		{"v1.0.0", "1.0.1", true}, // mixed v-prefix
	}
	for _, tt := range tests {
		got, err := IsNewer(tt.current, tt.latest)
		if err != nil {
			t.Errorf("IsNewer(%q, %q): %v", tt.current, tt.latest, err)
			continue
		}
		if got != tt.want {
			t.Errorf("IsNewer(%q, %q) = %v, want %v", tt.current, tt.latest, got, tt.want)
		}
	}
}

func TestIsNewerRejectsGarbage(t *testing.T) {
	if _, err := IsNewer("not-a-version", "1.0.0"); err == nil {
		t.Error("expected parse error")
	}
}

func TestLocalVersionRoundTrip(t *testing.T) {
	dir := t.TempDir()

	if got := LocalVersion(dir); got != "" {
		t.Errorf("unrecorded version should be empty, got %q", got)
	}

	if err := WriteLocalVersion(dir, "v1.2.3"); err != nil {
		t.Fatalf("WriteLocalVersion: %v", err)
	}
	if got := LocalVersion(dir); got != "v1.2.3" {
		t.Errorf("LocalVersion = %q", got)
	}
}
