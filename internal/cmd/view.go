package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jalon-sh/jalon/internal/notify"
	"github.com/jalon-sh/jalon/internal/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive project view",
	Long: `Open a terminal view of the project's tasks. The view supports cycling
task statuses, recomputing the critical path, and recording change-log
entries. Mutations made in the view broadcast over the configured channel
and are appended to the delivery journal.`,
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	p, cfg, err := loadProject(cmd)
	if err != nil {
		return err
	}

	method, err := notify.ParseMethod(cfg.Notifications.Channel)
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	channel, err := notify.NewChannel(method, log)
	if err != nil {
		return err
	}

	journal := notify.NewJournal(cfg.Notifications.ResolveJournalDir())
	p.SetNotifier(notify.NewNotifier(
		notify.WithChannel(channel),
		notify.WithJournal(journal),
		notify.WithLogger(log),
	))

	return tui.Run(p)
}
