// Package report renders a project's state as an activity report. The plain
// renderer produces stable line-oriented text suitable for piping and for
// assertions; the styled renderer decorates the same content for terminals.
package report

import (
	"fmt"
	"strings"

	"github.com/jalon-sh/jalon/internal/project"
)

// DefaultDateFormat is the reference layout used for report dates.
const DefaultDateFormat = "2006-01-02"

// Options controls report rendering.
type Options struct {
	// DateFormat is the Go reference layout for dates. Empty means
	// DefaultDateFormat.
	DateFormat string

	// Color enables lipgloss styling. Plain text is produced when false.
	Color bool
}

// Generate renders the project's activity report.
func Generate(p *project.Project, opts Options) string {
	layout := opts.DateFormat
	if layout == "" {
		layout = DefaultDateFormat
	}

	var b strings.Builder

	writeHeading := func(s string) {
		if opts.Color {
			b.WriteString(headingStyle.Render(s))
		} else {
			b.WriteString(s)
		}
		b.WriteString("\n")
	}

	writeHeading(fmt.Sprintf("Activity report for project '%s':", p.Name()))
	fmt.Fprintf(&b, "Version: %d\n", p.Version())
	fmt.Fprintf(&b, "Dates: %s to %s\n", p.Start().Format(layout), p.End().Format(layout))
	fmt.Fprintf(&b, "Budget: %.2f\n", p.Budget())

	writeHeading("Team:")
	for _, m := range p.Team() {
		fmt.Fprintf(&b, "- %s (%s)\n", m.Name, m.Role)
	}

	writeHeading("Tasks:")
	for _, t := range p.Tasks() {
		fmt.Fprintf(&b, "- %s (%s to %s), Responsible: %s, Status: %s\n",
			t.Name,
			t.Start.Format(layout),
			t.End.Format(layout),
			t.Responsible.Name,
			t.Status,
		)
	}

	writeHeading("Milestones:")
	for _, m := range p.Milestones() {
		fmt.Fprintf(&b, "- %s (%s)\n", m.Name, m.Date.Format(layout))
	}

	writeHeading("Risks:")
	for _, r := range p.Risks() {
		fmt.Fprintf(&b, "- %s (Probability: %.2f, Impact: %s)\n", r.Description, r.Probability, r.Impact)
	}

	writeHeading("Critical path:")
	critical := p.CriticalPath()
	for _, t := range critical.Tasks {
		fmt.Fprintf(&b, "- %s (%s to %s)\n", t.Name, t.Start.Format(layout), t.End.Format(layout))
	}
	if len(critical.Tasks) > 0 {
		fmt.Fprintf(&b, "Total: %d days\n", critical.Days)
	}

	return b.String()
}

// GenerateChangeLog renders the project's change history, oldest first.
func GenerateChangeLog(p *project.Project, opts Options) string {
	layout := opts.DateFormat
	if layout == "" {
		layout = DefaultDateFormat
	}

	var b strings.Builder
	heading := fmt.Sprintf("Change log for project '%s':", p.Name())
	if opts.Color {
		heading = headingStyle.Render(heading)
	}
	b.WriteString(heading)
	b.WriteString("\n")

	changes := p.Changes()
	if len(changes) == 0 {
		b.WriteString("(no changes recorded)\n")
		return b.String()
	}
	for _, c := range changes {
		fmt.Fprintf(&b, "- v%d %s: %s\n", c.Version, c.Date.Format(layout), c.Description)
	}
	return b.String()
}
