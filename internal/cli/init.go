package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rulekit-labs/rulekit/internal/branding"
	"github.com/rulekit-labs/rulekit/internal/config"
	"github.com/rulekit-labs/rulekit/internal/execs"
	"github.com/rulekit-labs/rulekit/internal/fetch"
	"github.com/rulekit-labs/rulekit/internal/output"
	"github.com/rulekit-labs/rulekit/internal/project"
	"github.com/rulekit-labs/rulekit/internal/syncer"
)

var (
	initSkipEnv       bool
	initSkipGitignore bool
)

func init() {
	initCmd.Flags().BoolVar(&initSkipEnv, "skip-env", false, "Do not write .env.example")
	initCmd.Flags().BoolVar(&initSkipGitignore, "skip-gitignore", false, "Do not append the rulekit block to .gitignore")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Download the base ruleset and distribute it to every agent",
	Long: `Download the base ruleset into ./.rules, plant the project plumbing
(.gitignore block, .env.example), run the ` + branding.ExternalCLI() + ` tool, and copy the
commands/skills/subagents subtrees into each enabled agent's destination.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(cmd)
	},
}

func runInit(cmd *cobra.Command) error {
	styles := output.StdoutStyles()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}
	rulesDir := filepath.Join(cwd, syncer.RulesDirName)

	// Fetch the base ruleset. Nothing meaningful can proceed without it,
	// so a fetch failure aborts init with exit code 1.
	config.Load()
	repo := config.Get("fetch.repo")
	if repo == "" {
		repo = branding.RulesetRepo()
	}
	client := fetch.NewClient(config.Get("fetch.api_base"), repo, config.Get("fetch.token"))

	fmt.Printf("Fetching base ruleset from %s...\n", repo)
	release, err := client.LatestRelease(cmd.Context())
	if err != nil {
		return output.WithCode(1, fmt.Errorf("fetching base ruleset: %w", err))
	}
	if err := client.DownloadRuleset(cmd.Context(), release, rulesDir); err != nil {
		return output.WithCode(1, fmt.Errorf("fetching base ruleset: %w", err))
	}
	fmt.Printf("Ruleset %s unpacked into %s\n", release.Version, rulesDir)

	if !initSkipEnv {
		if err := project.WriteEnvExample(cwd); err != nil {
			styles.Warnf(os.Stderr, "warning: %v", err)
		}
	}
	if !initSkipGitignore {
		if err := project.AddGitignoreBlock(cwd); err != nil {
			styles.Warnf(os.Stderr, "warning: %v", err)
		}
	}

	// Let the external tool do its own initialization. Its absence is not
	// fatal here: the ruleset is already in place and syncing still works.
	if code, err := execs.Run(cmd.Context(), cwd, branding.ExternalCLI(), "init"); err != nil {
		styles.Warnf(os.Stderr, "warning: %v (skipping %s init)", err, branding.ExternalCLI())
	} else if code != 0 {
		styles.Warnf(os.Stderr, "warning: %s init exited with code %d", branding.ExternalCLI(), code)
	}

	ov := loadOverrides(styles, cwd)
	totals := syncAllAgents(syncer.New(), styles, ov, rulesDir, cwd)
	reportTotals(styles, totals)

	return nil
}
