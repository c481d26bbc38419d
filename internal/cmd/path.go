package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Compute and print the critical path",
	Long: `Compute the longest dependency chain through the project's task graph
and print its tasks in execution order with the total duration in days.`,
	RunE: runPath,
}

func init() {
	rootCmd.AddCommand(pathCmd)
}

func runPath(cmd *cobra.Command, args []string) error {
	p, _, err := loadProject(cmd)
	if err != nil {
		return err
	}

	path, err := p.ComputeCriticalPath()
	if err != nil {
		return fmt.Errorf("computing critical path: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(path.Tasks) == 0 {
		fmt.Fprintln(out, "No tasks defined")
		return nil
	}

	for i, t := range path.Tasks {
		fmt.Fprintf(out, "%d. %s (%d days)\n", i+1, t.Name, t.Duration())
	}
	fmt.Fprintf(out, "Total: %d days\n", path.Days)
	return nil
}
