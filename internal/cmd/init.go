package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jalon-sh/jalon/internal/projfile"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter project definition file",
	Long: `Write a starter project definition to the path given by --file.
The file is a template to edit; it fails rather than overwrite an
existing file.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path, err := cmd.Flags().GetString("file")
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	starter := projfile.File{
		Project: projfile.ProjectDef{
			Name:        "My Project",
			Description: "Describe the project here",
			Start:       "2026-01-01",
			End:         "2026-12-31",
			Budget:      10000,
		},
		Members: []projfile.MemberDef{
			{Name: "Alice", Role: "Project lead"},
		},
		Tasks: []projfile.TaskDef{
			{
				Name:        "First task",
				Start:       "2026-01-01",
				End:         "2026-01-31",
				Responsible: "Alice",
				Status:      "not started",
			},
		},
	}

	data, err := yaml.Marshal(&starter)
	if err != nil {
		return fmt.Errorf("marshaling starter project: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote starter project to %s\n", path)
	return nil
}
