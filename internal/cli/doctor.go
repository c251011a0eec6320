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
	"github.com/rulekit-labs/rulekit/internal/rulesconfig"
	"github.com/rulekit-labs/rulekit/internal/syncer"
)

var doctorCheckUpdate bool

func init() {
	doctorCmd.Flags().BoolVar(&doctorCheckUpdate, "check-update", false, "Also check whether a newer base ruleset is published")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the rulekit setup in this project",
	RunE: func(cmd *cobra.Command, args []string) error {
		styles := output.StdoutStyles()

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}
		projectRoot := project.FindRoot(cwd)
		fmt.Println(styles.Bold.Render("Checking " + projectRoot))

		// External tool availability.
		if path, err := execs.LookPath(branding.ExternalCLI()); err != nil {
			styles.Warnf(os.Stdout, "✗ %s not found on PATH", branding.ExternalCLI())
		} else {
			styles.Successf(os.Stdout, "✓ %s available (%s)", branding.ExternalCLI(), path)
		}

		// Local ruleset presence and version.
		rulesDir := filepath.Join(projectRoot, syncer.RulesDirName)
		localVersion := ""
		if info, err := os.Stat(rulesDir); err != nil || !info.IsDir() {
			styles.Warnf(os.Stdout, "✗ %s missing (run `%s init`)", syncer.RulesDirName, branding.CLIName())
		} else {
			localVersion = fetch.LocalVersion(rulesDir)
			if localVersion == "" {
				styles.Successf(os.Stdout, "✓ %s present (version unrecorded)", syncer.RulesDirName)
			} else {
				styles.Successf(os.Stdout, "✓ %s present (ruleset %s)", syncer.RulesDirName, localVersion)
			}
		}

		// rules.yaml schema validity.
		result, err := rulesconfig.ValidateFile(rulesconfig.Path(projectRoot))
		switch {
		case err != nil:
			styles.Warnf(os.Stdout, "✗ %s unreadable: %v", rulesconfig.FileName, err)
		case !result.Valid:
			styles.Warnf(os.Stdout, "✗ %s has %d schema issue(s):", rulesconfig.FileName, len(result.Issues))
			for _, issue := range result.Issues {
				fmt.Printf("    %s: %s\n", issue.Path, issue.Message)
			}
		default:
			styles.Successf(os.Stdout, "✓ %s valid", rulesconfig.FileName)
		}

		if doctorCheckUpdate {
			checkRulesetUpdate(cmd, styles, localVersion)
		}

		return nil
	},
}

// checkRulesetUpdate compares the recorded local ruleset version against the
// latest published release. Network problems are reported, never fatal.
func checkRulesetUpdate(cmd *cobra.Command, styles *output.Styles, localVersion string) {
	config.Load()
	repo := config.Get("fetch.repo")
	if repo == "" {
		repo = branding.RulesetRepo()
	}
	client := fetch.NewClient(config.Get("fetch.api_base"), repo, config.Get("fetch.token"))

	release, err := client.LatestRelease(cmd.Context())
	if err != nil {
		styles.Warnf(os.Stdout, "✗ update check failed: %v", err)
		return
	}

	if localVersion == "" {
		fmt.Println(styles.Dim.Render(fmt.Sprintf("  latest published ruleset: %s", release.Version)))
		return
	}

	newer, err := fetch.IsNewer(localVersion, release.Version)
	if err != nil {
		styles.Warnf(os.Stdout, "✗ comparing versions: %v", err)
		return
	}
	if newer {
		styles.Warnf(os.Stdout, "✗ ruleset %s is available (local is %s); run `%s init` to refresh",
			release.Version, localVersion, branding.CLIName())
	} else {
		styles.Successf(os.Stdout, "✓ ruleset up to date (%s)", localVersion)
	}
}
