package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a project summary",
	Long:  `Display a one-screen summary of the project: header, counts, and task statuses.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	p, cfg, err := loadProject(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	layout := cfg.Report.DateFormat

	fmt.Fprintf(out, "Project: %s\n", p.Name())
	if p.Description() != "" {
		fmt.Fprintf(out, "Description: %s\n", p.Description())
	}
	fmt.Fprintf(out, "Version: %d\n", p.Version())
	fmt.Fprintf(out, "Dates: %s to %s\n", p.Start().Format(layout), p.End().Format(layout))
	fmt.Fprintf(out, "Budget: %.2f\n", p.Budget())
	fmt.Fprintf(out, "Members: %d  Tasks: %d  Milestones: %d  Risks: %d\n\n",
		len(p.Team()), len(p.Tasks()), len(p.Milestones()), len(p.Risks()))

	for i, t := range p.Tasks() {
		fmt.Fprintf(out, "[%d] %s (%s)\n", i+1, t.Name, t.Status)
		fmt.Fprintf(out, "    %s to %s, %d days", t.Start.Format(layout), t.End.Format(layout), t.Duration())
		if t.Responsible.Name != "" {
			fmt.Fprintf(out, ", responsible: %s", t.Responsible.Name)
		}
		fmt.Fprintln(out)
		if len(t.DependsOn) > 0 {
			fmt.Fprintf(out, "    depends on: %v\n", t.DependsOn)
		}
	}

	return nil
}
