// Package rulesconfig reads the project-level rules.yaml file that carries
// per-agent enable flags and destination path overrides.
package rulesconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/rulekit-labs/rulekit/internal/agents"
)

// FileName is the project-level configuration filename. It lives at the
// project root, next to the .rules directory.
const FileName = "rules.yaml"

// File represents the parsed rules.yaml document.
type File struct {
	Agents map[string]AgentConfig `yaml:"agents"`
}

// AgentConfig is one agent entry in rules.yaml. A nil Enabled means the key
// was omitted and the agent stays enabled.
type AgentConfig struct {
	Enabled *bool             `yaml:"enabled"`
	Paths   map[string]string `yaml:"paths"`
}

// Path returns the rules.yaml path for a project root.
func Path(projectRoot string) string {
	return filepath.Join(projectRoot, FileName)
}

// Load reads rules.yaml from the project root and converts it into agent
// overrides. A missing file yields empty overrides and no error. A present
// but unparseable file yields empty overrides and the parse error — callers
// surface it as a warning and proceed with defaults.
func Load(projectRoot string) (agents.Overrides, error) {
	data, err := os.ReadFile(Path(projectRoot))
	if err != nil {
		if os.IsNotExist(err) {
			return agents.Overrides{}, nil
		}
		return agents.Overrides{}, fmt.Errorf("reading %s: %w", FileName, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return agents.Overrides{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	return f.Overrides(), nil
}

// Overrides converts the parsed file into the resolver's override map.
// Unknown agent names and unknown category keys are dropped, not rejected.
func (f *File) Overrides() agents.Overrides {
	ov := agents.Overrides{}
	for name, ac := range f.Agents {
		agent, ok := agents.ParseName(name)
		if !ok {
			continue
		}
		paths := map[agents.Category]string{}
		for key, p := range ac.Paths {
			switch agents.Category(key) {
			case agents.Commands, agents.Skills, agents.Subagents:
				paths[agents.Category(key)] = p
			}
		}
		ov[agent] = agents.Override{Enabled: ac.Enabled, Paths: paths}
	}
	return ov
}
