package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rulekit-labs/rulekit/internal/branding"
	"github.com/rulekit-labs/rulekit/internal/execs"
	"github.com/rulekit-labs/rulekit/internal/output"
	"github.com/rulekit-labs/rulekit/internal/project"
	"github.com/rulekit-labs/rulekit/internal/rulesconfig"
	"github.com/rulekit-labs/rulekit/internal/syncer"
)

var applyNested bool

func init() {
	applyCmd.Flags().BoolVar(&applyNested, "nested", false, "Also discover and sync nested .rules roots")
	rootCmd.AddCommand(applyCmd)
}

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Re-apply the local ruleset to every agent destination",
	Long: `Run the ` + branding.ExternalCLI() + ` tool and copy the local .rules subtrees into each
enabled agent's destination. Pre-existing destination files are renamed to
their .bak names before being replaced, so repeated applies accumulate
backups rather than losing content.

With --nested, .rules directories of nested sub-projects are discovered and
synchronized as well.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApply(cmd)
	},
}

func runApply(cmd *cobra.Command) error {
	styles := output.StdoutStyles()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}
	projectRoot := project.FindRoot(cwd)

	rulesDir := filepath.Join(projectRoot, syncer.RulesDirName)
	if info, err := os.Stat(rulesDir); err != nil || !info.IsDir() {
		return output.WithCode(1, fmt.Errorf("%s not found in %s (run `%s init` first)",
			syncer.RulesDirName, projectRoot, branding.CLIName()))
	}

	warnOnConfigIssues(styles, projectRoot)

	// The external tool applies the markdown rules themselves; rulekit only
	// fans out the commands/skills/subagents subtrees. A tool failure aborts
	// the remaining stages.
	code, err := execs.Run(cmd.Context(), projectRoot, branding.ExternalCLI(), "apply")
	if err != nil {
		return output.WithCode(1, fmt.Errorf("%w (install %s to apply rules)", err, branding.ExternalCLI()))
	}
	if code != 0 {
		return output.WithCode(1, fmt.Errorf("%s apply exited with code %d", branding.ExternalCLI(), code))
	}

	ov := loadOverrides(styles, projectRoot)
	s := syncer.New()
	totals := syncAllAgents(s, styles, ov, rulesDir, projectRoot)

	if applyNested {
		for _, nestedRules := range syncer.FindNestedRoots(projectRoot) {
			nestedBase := filepath.Dir(nestedRules)
			nestedOv := loadOverrides(styles, nestedBase)
			if len(nestedOv) == 0 {
				// No overrides of its own: the nested project inherits the
				// top-level configuration.
				nestedOv = ov
			}
			t := syncAllAgents(s, styles, nestedOv, nestedRules, nestedBase)
			totals.copied += t.copied
			totals.backups += t.backups
			totals.warnings += t.warnings
		}
	}

	reportTotals(styles, totals)
	return nil
}

// warnOnConfigIssues surfaces rules.yaml schema problems without ever
// failing the command for them.
func warnOnConfigIssues(styles *output.Styles, projectRoot string) {
	result, err := rulesconfig.ValidateFile(rulesconfig.Path(projectRoot))
	if err != nil {
		styles.Warnf(os.Stderr, "warning: validating %s: %v", rulesconfig.FileName, err)
		return
	}
	for _, issue := range result.Issues {
		styles.Warnf(os.Stderr, "warning: %s%s: %s", rulesconfig.FileName, issue.Path, issue.Message)
	}
}
