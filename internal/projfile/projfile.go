// Package projfile loads project definitions from YAML files. A definition
// file declares the project, its team, tasks with dependencies, milestones,
// and risks; Build turns a validated definition into a live project.
package projfile

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jalon-sh/jalon/internal/project"
	"github.com/jalon-sh/jalon/internal/task"
	"github.com/jalon-sh/jalon/internal/team"
)

// DateLayout is the reference layout for dates in definition files.
const DateLayout = "2006-01-02"

// File represents a project definition loaded from YAML.
type File struct {
	// Project describes the project itself
	Project ProjectDef `yaml:"project"`
	// Members lists the team roster in order
	Members []MemberDef `yaml:"members,omitempty"`
	// Tasks lists the task graph in declaration order
	Tasks []TaskDef `yaml:"tasks,omitempty"`
	// Milestones lists dated milestones
	Milestones []MilestoneDef `yaml:"milestones,omitempty"`
	// Risks lists the initial risk register
	Risks []RiskDef `yaml:"risks,omitempty"`
}

// ProjectDef describes the project header.
type ProjectDef struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description,omitempty"`
	Start       string  `yaml:"start"`
	End         string  `yaml:"end"`
	Budget      float64 `yaml:"budget,omitempty"`
}

// MemberDef describes one team member.
type MemberDef struct {
	Name string `yaml:"name"`
	Role string `yaml:"role,omitempty"`
}

// TaskDef describes one task. Responsible refers to a member by name and
// DependsOn refers to other tasks by name.
type TaskDef struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Start       string   `yaml:"start"`
	End         string   `yaml:"end"`
	Responsible string   `yaml:"responsible,omitempty"`
	Status      string   `yaml:"status,omitempty"`
	DependsOn   []string `yaml:"depends_on,omitempty"`
}

// MilestoneDef describes one milestone.
type MilestoneDef struct {
	Name string `yaml:"name"`
	Date string `yaml:"date"`
}

// RiskDef describes one risk register entry.
type RiskDef struct {
	Description string  `yaml:"description"`
	Probability float64 `yaml:"probability"`
	Impact      string  `yaml:"impact,omitempty"`
}

// Load reads and validates a project definition from a YAML file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates a project definition from YAML bytes.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing project file: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid project file: %w", err)
	}
	return &f, nil
}

// Validate checks that the definition is well-formed: required fields are
// present, dates parse, and name references resolve. Dependency references
// must name tasks declared in the same file; cycles are not detected here
// (the scheduler reports them).
func (f *File) Validate() error {
	if f.Project.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if _, err := parseDate(f.Project.Start); err != nil {
		return fmt.Errorf("project start: %w", err)
	}
	if _, err := parseDate(f.Project.End); err != nil {
		return fmt.Errorf("project end: %w", err)
	}

	memberNames := make(map[string]bool, len(f.Members))
	for i, m := range f.Members {
		if m.Name == "" {
			return fmt.Errorf("members[%d]: name is required", i)
		}
		if memberNames[m.Name] {
			return fmt.Errorf("members[%d]: duplicate member '%s'", i, m.Name)
		}
		memberNames[m.Name] = true
	}

	taskNames := make(map[string]bool, len(f.Tasks))
	for i, t := range f.Tasks {
		if t.Name == "" {
			return fmt.Errorf("tasks[%d]: name is required", i)
		}
		if taskNames[t.Name] {
			return fmt.Errorf("tasks[%d]: duplicate task '%s'", i, t.Name)
		}
		taskNames[t.Name] = true
		if _, err := parseDate(t.Start); err != nil {
			return fmt.Errorf("task '%s' start: %w", t.Name, err)
		}
		if _, err := parseDate(t.End); err != nil {
			return fmt.Errorf("task '%s' end: %w", t.Name, err)
		}
		if t.Responsible != "" && !memberNames[t.Responsible] {
			return fmt.Errorf("task '%s': responsible '%s' is not a declared member", t.Name, t.Responsible)
		}
	}

	// Dependencies may only reference tasks declared in this file.
	for _, t := range f.Tasks {
		for _, dep := range t.DependsOn {
			if !taskNames[dep] {
				return fmt.Errorf("task '%s': depends on undeclared task '%s'", t.Name, dep)
			}
		}
	}

	for i, m := range f.Milestones {
		if m.Name == "" {
			return fmt.Errorf("milestones[%d]: name is required", i)
		}
		if _, err := parseDate(m.Date); err != nil {
			return fmt.Errorf("milestone '%s' date: %w", m.Name, err)
		}
	}

	for i, r := range f.Risks {
		if r.Description == "" {
			return fmt.Errorf("risks[%d]: description is required", i)
		}
		if r.Probability < 0 || r.Probability > 1 {
			return fmt.Errorf("risk '%s': probability must be between 0 and 1", r.Description)
		}
	}

	return nil
}

// Build constructs a live project from the definition. Additional project
// options (notifier, bus, logger) apply before any member or task is added,
// so construction itself produces broadcasts and events.
func (f *File) Build(opts ...project.Option) (*project.Project, error) {
	start, _ := parseDate(f.Project.Start)
	end, _ := parseDate(f.Project.End)

	if f.Project.Budget != 0 {
		opts = append([]project.Option{project.WithBudget(f.Project.Budget)}, opts...)
	}
	p := project.New(f.Project.Name, f.Project.Description, start, end, opts...)

	members := make(map[string]team.Member, len(f.Members))
	for _, m := range f.Members {
		member := team.Member{Name: m.Name, Role: m.Role}
		members[m.Name] = member
		p.AddMember(member)
	}

	for _, td := range f.Tasks {
		tStart, _ := parseDate(td.Start)
		tEnd, _ := parseDate(td.End)
		status := task.Status(td.Status)
		if td.Status == "" {
			status = task.StatusNotStarted
		}
		t := &task.Task{
			Name:        td.Name,
			Description: td.Description,
			Start:       tStart,
			End:         tEnd,
			Responsible: members[td.Responsible],
			Status:      status,
			DependsOn:   append([]string(nil), td.DependsOn...),
		}
		if err := p.AddTask(t); err != nil {
			return nil, fmt.Errorf("task '%s': %w", td.Name, err)
		}
	}

	for _, m := range f.Milestones {
		d, _ := parseDate(m.Date)
		p.AddMilestone(project.Milestone{Name: m.Name, Date: d})
	}

	for _, r := range f.Risks {
		if err := p.AddRisk(project.Risk{Description: r.Description, Probability: r.Probability, Impact: r.Impact}); err != nil {
			return nil, fmt.Errorf("risk '%s': %w", r.Description, err)
		}
	}

	return p, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected %s)", s, DateLayout)
	}
	return d, nil
}
