package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jalon-sh/jalon/internal/report"
)

var reportChanges bool

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the project activity report",
	Long: `Load the project definition, compute the critical path, and print the
full activity report: version, dates, budget, team, tasks, milestones,
risks, and the critical path.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&reportChanges, "changes", false, "print the change log instead of the activity report")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	p, cfg, err := loadProject(cmd)
	if err != nil {
		return err
	}

	if _, err := p.ComputeCriticalPath(); err != nil {
		return fmt.Errorf("computing critical path: %w", err)
	}

	opts := report.Options{
		DateFormat: cfg.Report.DateFormat,
		Color:      cfg.Report.Color,
	}
	if reportChanges {
		fmt.Fprint(cmd.OutOrStdout(), report.GenerateChangeLog(p, opts))
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), report.Generate(p, opts))
	return nil
}
