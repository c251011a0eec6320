package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rulekit-labs/rulekit/internal/branding"
)

// envExampleName is the env template written during init.
const envExampleName = ".env.example"

// WriteEnvExample creates .env.example with the variables the external
// rule-application tool reads. An existing file is left alone.
func WriteEnvExample(projectRoot string) error {
	path := filepath.Join(projectRoot, envExampleName)
	if _, err := os.Stat(path); err == nil {
		return nil // never clobber a project's env template
	}

	content := fmt.Sprintf(
		"# Variables read by %s and the wrapped %s tool.\n%s=\n",
		branding.CLIName(), branding.ExternalCLI(), branding.EnvVar("FETCH_TOKEN"),
	)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", envExampleName, err)
	}
	return nil
}
