// Package branding provides compile-time identity values for the CLI.
//
// Forks edit branding.yaml in this package; Go's //go:embed bakes it into
// the binary at build time.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

// defaults holds the parsed branding values, loaded once on first access.
var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	RulesetRepo string `yaml:"ruleset_repo"`
	ExternalCLI string `yaml:"external_cli"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "rulekit",
			DisplayName: "RuleKit",
			Description: "Distributor for AI coding-agent rule files",
			HomeDir:     ".rulekit",
			EnvPrefix:   "RULEKIT",
			GoModule:    "github.com/rulekit-labs/rulekit",
			RulesetRepo: "rulekit-labs/ruleset",
			ExternalCLI: "rulesync",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "rulekit").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "RuleKit").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".rulekit").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "RULEKIT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path baked into branding.yaml. It exists
// for forks that rebrand the CLI and is not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// RulesetRepo returns the "owner/repo" string hosting base ruleset releases.
func RulesetRepo() string { load(); return defaults.RulesetRepo }

// ExternalCLI returns the executable name of the wrapped rule-application tool.
func ExternalCLI() string { load(); return defaults.ExternalCLI }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("TOKEN") → "RULEKIT_TOKEN".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
