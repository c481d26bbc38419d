package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jalon-sh/jalon/internal/config"
	"github.com/jalon-sh/jalon/internal/notify"
	"github.com/jalon-sh/jalon/internal/project"
	"github.com/jalon-sh/jalon/internal/report"
	"github.com/jalon-sh/jalon/internal/task"
	"github.com/jalon-sh/jalon/internal/team"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted walkthrough of the tracker",
	Long: `Build a small example project step by step, printing every team
notification as it is broadcast, then print the activity report with the
computed critical path.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	out := cmd.OutOrStdout()

	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	p := project.New("New Product", "Development of a new product",
		date(2024, time.January, 1), date(2024, time.December, 31))

	// Every mutation from here on is announced to the team.
	p.SetChannel(notify.NewConsoleChannel(notify.MethodEmail, out))

	maya := team.Member{Name: "Maya", Role: "Project lead"}
	chris := team.Member{Name: "Chris", Role: "Developer"}
	p.AddMember(maya)
	p.AddMember(chris)

	if err := p.AddTask(&task.Task{
		Name:        "Requirements analysis",
		Start:       date(2024, time.January, 1),
		End:         date(2024, time.January, 31),
		Responsible: maya,
		Status:      task.StatusDone,
	}); err != nil {
		return err
	}
	if err := p.AddTask(&task.Task{
		Name:        "Development",
		Start:       date(2024, time.February, 1),
		End:         date(2024, time.June, 30),
		Responsible: chris,
		Status:      task.StatusNotStarted,
		DependsOn:   []string{"Requirements analysis"},
	}); err != nil {
		return err
	}

	p.SetBudget(50000)
	if err := p.AddRisk(project.Risk{Description: "Delivery slippage", Probability: 0.3, Impact: "High"}); err != nil {
		return err
	}
	p.AddMilestone(project.Milestone{Name: "Phase 1 complete", Date: date(2024, time.January, 31)})
	p.RecordChange("Project scope revised")

	if _, err := p.ComputeCriticalPath(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprint(out, report.Generate(p, report.Options{
		DateFormat: cfg.Report.DateFormat,
		Color:      cfg.Report.Color,
	}))
	return nil
}
