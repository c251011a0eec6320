package agents

import "path/filepath"

// Override holds the per-agent settings read from a project's rules.yaml.
// A nil Enabled means "not specified" and falls back to enabled.
type Override struct {
	Enabled *bool
	Paths   map[Category]string
}

// Overrides maps agent names to their project-level overrides. Unknown agent
// names encountered while loading are dropped before this map is built, so
// every key here is a valid Name.
type Overrides map[Name]Override

// Disabled reports whether the agent is explicitly disabled.
func (o Overrides) Disabled(agent Name) bool {
	ov, ok := o[agent]
	return ok && ov.Enabled != nil && !*ov.Enabled
}

// Resolve computes the destination directory for an (agent, category) pair
// rooted at baseDir. It returns ok=false when the agent is explicitly
// disabled in the overrides — callers must treat that as a no-op, not an
// error. The override path wins when present; otherwise the built-in default
// applies.
func Resolve(agent Name, cat Category, ov Overrides, baseDir string) (string, bool) {
	if ov.Disabled(agent) {
		return "", false
	}

	rel := ""
	if o, ok := ov[agent]; ok {
		rel = o.Paths[cat]
	}
	if rel == "" {
		def, ok := DefaultPath(agent, cat)
		if !ok {
			return "", false
		}
		rel = def
	}

	return filepath.Join(baseDir, rel), true
}
