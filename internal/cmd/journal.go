package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jalon-sh/jalon/internal/config"
	"github.com/jalon-sh/jalon/internal/notify"
)

var journalFollow bool

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Print the notification delivery journal",
	Long: `Print every recorded delivery attempt, oldest first. With --follow the
command keeps running and prints new records as they are appended.`,
	RunE: runJournal,
}

func init() {
	journalCmd.Flags().BoolVarP(&journalFollow, "follow", "w", false, "watch for new records")
	rootCmd.AddCommand(journalCmd)
}

func runJournal(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	out := cmd.OutOrStdout()

	journal := notify.NewJournal(cfg.Notifications.ResolveJournalDir())
	if poll := cfg.Notifications.WatchPoll(); poll > 0 {
		journal.SetPollInterval(poll)
	}

	records, err := journal.ReadAll()
	if err != nil {
		return fmt.Errorf("reading journal: %w", err)
	}
	for _, rec := range records {
		printRecord(out, rec)
	}

	if !journalFollow {
		return nil
	}

	cancel := journal.Watch(func(rec notify.Record) {
		printRecord(out, rec)
	})
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}

func printRecord(out io.Writer, rec notify.Record) {
	outcome := rec.Outcome
	if outcome == "" {
		outcome = notify.OutcomeSent
	}
	fmt.Fprintf(out, "%s  %-5s  %-8s  %s  %s\n",
		rec.Timestamp.Format(time.RFC3339),
		rec.Method,
		outcome,
		rec.Recipient,
		rec.Message,
	)
}
