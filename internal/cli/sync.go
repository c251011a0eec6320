package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rulekit-labs/rulekit/internal/agents"
	"github.com/rulekit-labs/rulekit/internal/output"
	"github.com/rulekit-labs/rulekit/internal/rulesconfig"
	"github.com/rulekit-labs/rulekit/internal/syncer"
)

// syncTotals accumulates what a run of per-agent syncs did.
type syncTotals struct {
	copied   int
	backups  int
	warnings int
}

// syncAllAgents distributes every category subtree of rulesDir to each
// enabled agent rooted at baseDir. Failures for one agent or one file are
// reported and never stop the remaining agents or categories.
func syncAllAgents(s *syncer.Syncer, styles *output.Styles, ov agents.Overrides, rulesDir, baseDir string) syncTotals {
	var totals syncTotals

	for _, cat := range agents.AllCategories() {
		srcDir := filepath.Join(rulesDir, string(cat))
		if _, err := os.Stat(srcDir); err != nil {
			continue // ruleset doesn't carry this category
		}

		for _, agent := range agents.All() {
			dst, ok := agents.Resolve(agent, cat, ov, baseDir)
			if !ok {
				continue // agent disabled in rules.yaml
			}

			res, err := s.CopyTree(srcDir, dst)
			if err != nil {
				styles.Warnf(os.Stderr, "warning: %s/%s: %v", agent, cat, err)
				totals.warnings++
				continue
			}

			for _, w := range res.Warnings {
				styles.Warnf(os.Stderr, "warning: %s/%s: %s", agent, cat, w)
			}
			totals.copied += len(res.Copied)
			totals.backups += len(res.Backups)
			totals.warnings += len(res.Warnings)
		}
	}

	return totals
}

// loadOverrides reads rules.yaml for a project root, degrading parse problems
// to a warning and empty overrides.
func loadOverrides(styles *output.Styles, projectRoot string) agents.Overrides {
	ov, err := rulesconfig.Load(projectRoot)
	if err != nil {
		styles.Warnf(os.Stderr, "warning: %v (using default agent destinations)", err)
	}
	return ov
}

// reportTotals prints the one-line summary for a sync run.
func reportTotals(styles *output.Styles, totals syncTotals) {
	msg := fmt.Sprintf("Synced %d file(s), %d backed up", totals.copied, totals.backups)
	if totals.warnings > 0 {
		msg += fmt.Sprintf(", %d warning(s)", totals.warnings)
	}
	styles.Successf(os.Stdout, "%s", msg)
}
