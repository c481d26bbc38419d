package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// executeCommand runs a cobra command with args and returns captured output
func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err = root.Execute()
	return buf.String(), err
}

// writeProjectFile writes a small valid project definition and returns its path
func writeProjectFile(t *testing.T) string {
	t.Helper()

	const yaml = `
project:
  name: New Product
  start: 2024-01-01
  end: 2024-12-31
  budget: 50000
members:
  - name: Maya
    role: Project lead
tasks:
  - name: Requirements analysis
    start: 2024-01-01
    end: 2024-01-31
    responsible: Maya
    status: done
  - name: Development
    start: 2024-02-01
    end: 2024-06-30
    responsible: Maya
    depends_on: [Requirements analysis]
`
	path := filepath.Join(t.TempDir(), "project.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestRootCommand(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("rootCmd is nil")
	}
	if rootCmd.Use != "jalon" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "jalon")
	}

	// Check for expected subcommands (compare by Name(), not Use which includes args)
	expectedCmds := []string{"init", "report", "path", "status", "demo", "view", "journal"}
	cmdMap := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		cmdMap[cmd.Name()] = true
	}
	for _, expected := range expectedCmds {
		if !cmdMap[expected] {
			t.Errorf("expected subcommand %q not found", expected)
		}
	}
}

func TestReportCommand(t *testing.T) {
	t.Setenv("JALON_REPORT_COLOR", "false")
	path := writeProjectFile(t)

	output, err := executeCommand(rootCmd, "report", "-f", path)
	if err != nil {
		t.Fatalf("report: %v", err)
	}

	for _, want := range []string{
		"Activity report for project 'New Product':",
		"Budget: 50000.00",
		"- Maya (Project lead)",
		"Total: 180 days",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("report output should contain %q:\n%s", want, output)
		}
	}
}

func TestPathCommand(t *testing.T) {
	path := writeProjectFile(t)

	output, err := executeCommand(rootCmd, "path", "-f", path)
	if err != nil {
		t.Fatalf("path: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 3 {
		t.Fatalf("path printed %d lines, want 3:\n%s", len(lines), output)
	}
	if !strings.HasPrefix(lines[0], "1. Requirements analysis") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "2. Development") {
		t.Errorf("line 1 = %q", lines[1])
	}
	if lines[2] != "Total: 180 days" {
		t.Errorf("line 2 = %q, want total of 180 days", lines[2])
	}
}

func TestStatusCommand(t *testing.T) {
	path := writeProjectFile(t)

	output, err := executeCommand(rootCmd, "status", "-f", path)
	if err != nil {
		t.Fatalf("status: %v", err)
	}

	for _, want := range []string{
		"Project: New Product",
		"Members: 1  Tasks: 2",
		"[1] Requirements analysis (done)",
		"depends on: [Requirements analysis]",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("status output should contain %q:\n%s", want, output)
		}
	}
}

func TestDemoCommand(t *testing.T) {
	t.Setenv("JALON_REPORT_COLOR", "false")
	output, err := executeCommand(rootCmd, "demo")
	if err != nil {
		t.Fatalf("demo: %v", err)
	}

	for _, want := range []string{
		"Notification sent to Maya by email: Maya has been added to the team",
		"Notification sent to Chris by email: Project budget set to 50000.00",
		"Change recorded: Project scope revised (version 1)",
		"Activity report for project 'New Product':",
		"Total: 180 days",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("demo output should contain %q:\n%s", want, output)
		}
	}
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.yaml")

	output, err := executeCommand(rootCmd, "init", "-f", path)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(output, "Wrote starter project") {
		t.Errorf("init output = %q", output)
	}

	// The starter file must load cleanly.
	if _, err := executeCommand(rootCmd, "status", "-f", path); err != nil {
		t.Errorf("status on starter file: %v", err)
	}

	// Refuses to overwrite.
	if _, err := executeCommand(rootCmd, "init", "-f", path); err == nil {
		t.Error("init should refuse to overwrite an existing file")
	}
}

func TestReportCommandMissingFile(t *testing.T) {
	if _, err := executeCommand(rootCmd, "report", "-f", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("report on a missing file should fail")
	}
}
