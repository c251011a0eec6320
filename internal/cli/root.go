package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/rulekit-labs/rulekit/internal/branding"
	"github.com/rulekit-labs/rulekit/internal/execs"
	"github.com/rulekit-labs/rulekit/internal/output"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` distributes a curated set of rule files for AI coding agents
(cursor, claude, codex) into their per-agent destinations, wrapping the
` + branding.ExternalCLI() + ` rule-application tool for everything else.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and returns the process exit code. Subcommands rulekit
// does not know are passed through verbatim to the external rule-application
// tool, mirroring its exit code.
func Execute(version, commit, date string) int {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	args := os.Args[1:]
	if isPassThrough(args) {
		code, err := execs.Run(context.Background(), "", branding.ExternalCLI(), args...)
		if err != nil {
			styles := output.NewStyles(output.IsTTY(os.Stderr))
			styles.Errorf(os.Stderr, "Error: %v", err)
			fmt.Fprintln(os.Stderr, styles.Dim.Render(fmt.Sprintf(
				"Install %s or use a built-in command (see `%s --help`).",
				branding.ExternalCLI(), branding.CLIName())))
			return 1
		}
		return code
	}

	err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(buildVersion))
	return output.GetExitCode(err)
}

// isPassThrough reports whether the first positional argument names a
// subcommand rulekit does not implement itself.
func isPassThrough(args []string) bool {
	for _, a := range args {
		if strings.HasPrefix(a, "-") {
			// A leading flag belongs to rulekit itself (e.g. --help).
			return false
		}
		return !knownCommand(a)
	}
	return false
}

// knownCommand reports whether name matches a built-in command or one of
// cobra's implicit commands.
func knownCommand(name string) bool {
	if name == "help" || name == "completion" {
		return true
	}
	for _, c := range rootCmd.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	return false
}
