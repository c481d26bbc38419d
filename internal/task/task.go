// Package task models the nodes of a project's dependency graph.
//
// A [Task] carries a date span, a responsible team member, an opaque status
// label, and an ordered list of dependency references. Dependencies are held
// by name, not by pointer: the owning project registers tasks under unique
// names and the scheduler resolves references lazily when the graph is
// traversed. Adding a dependency never validates it — an unresolvable
// reference only surfaces as an error at computation time.
package task

import (
	"time"

	"github.com/jalon-sh/jalon/internal/errors"
	"github.com/jalon-sh/jalon/internal/team"
)

// Status is a free-text progress label. It is deliberately not a strict enum:
// real-world trackers grow labels like "blocked" or "in review" and the model
// treats all of them as opaque.
type Status string

// Common status labels. Any other string is equally valid.
const (
	StatusNotStarted Status = "not started"
	StatusInProgress Status = "in progress"
	StatusDone       Status = "done"
)

// String returns the status label.
func (s Status) String() string {
	return string(s)
}

// Task is a single unit of project work. The project exclusively owns its
// tasks; a task holds non-owning references (by name) to the tasks it
// depends on. Tasks are never deleted once registered.
type Task struct {
	// Name identifies the task within its project. Names must be unique
	// per project because they key the scheduler's memoization.
	Name string `json:"name"`

	// Description is free-form explanatory text.
	Description string `json:"description,omitempty"`

	// Start is the planned start date.
	Start time.Time `json:"start"`

	// End is the planned end date. End must not precede Start.
	End time.Time `json:"end"`

	// Responsible is the member accountable for the task.
	Responsible team.Member `json:"responsible"`

	// Status is the current progress label.
	Status Status `json:"status"`

	// DependsOn lists prerequisite task names in declaration order.
	// Order is significant: the scheduler breaks duration ties by the
	// first dependency declared.
	DependsOn []string `json:"depends_on,omitempty"`
}

// AddDependency appends a prerequisite reference. The reference is not
// validated here; an unknown name is reported by the scheduler when the
// graph is traversed.
func (t *Task) AddDependency(name string) {
	t.DependsOn = append(t.DependsOn, name)
}

// UpdateStatus replaces the task's status label.
func (t *Task) UpdateStatus(s Status) {
	t.Status = s
}

// Duration returns the task's own span as a whole number of days.
// Fractional days truncate toward zero, matching calendar-day granularity.
func (t *Task) Duration() int {
	return int(t.End.Sub(t.Start) / (24 * time.Hour))
}

// Validate checks the task's structural invariants: a non-empty name and
// End >= Start. Dependency references are deliberately not checked here.
func (t *Task) Validate() error {
	if t.Name == "" {
		return errors.NewValidationError("name", "task name is required")
	}
	if t.End.Before(t.Start) {
		return errors.NewValidationError("end", "task end date precedes start date")
	}
	return nil
}
