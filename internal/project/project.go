// Package project provides the orchestrator that owns a project's state:
// the team roster, the task graph, risks, milestones, the change log, and
// the active notification strategy.
//
// Every state-mutating operation performs its mutation and then broadcasts a
// fixed-template message describing the event to the full current team.
// Notification is deliberately not selective and not configurable per event
// type. With no notifier configured, broadcasts are silent no-ops, so a
// project operates normally before a delivery strategy is chosen.
//
// A single coarse mutex serializes access to project state. Broadcasts and
// event publication happen outside the lock against a roster snapshot, so
// subscribers may safely call back into the project.
package project

import (
	"fmt"
	"sync"
	"time"

	"github.com/jalon-sh/jalon/internal/errors"
	"github.com/jalon-sh/jalon/internal/event"
	"github.com/jalon-sh/jalon/internal/logging"
	"github.com/jalon-sh/jalon/internal/notify"
	"github.com/jalon-sh/jalon/internal/schedule"
	"github.com/jalon-sh/jalon/internal/task"
	"github.com/jalon-sh/jalon/internal/team"
)

// Project owns all tracker state for one project.
type Project struct {
	mu sync.Mutex

	name        string
	description string
	start       time.Time
	end         time.Time
	budget      float64

	team       team.Team
	tasks      []*task.Task
	taskIndex  map[string]*task.Task
	risks      []Risk
	milestones []Milestone
	changes    []Change
	version    int

	critical schedule.Path

	notifier *notify.Notifier
	bus      *event.Bus
	log      *logging.Logger
}

// Option configures a Project at construction time.
type Option func(*Project)

// WithBudget sets the initial budget.
func WithBudget(budget float64) Option {
	return func(p *Project) { p.budget = budget }
}

// WithNotifier sets the notifier used for broadcasts.
func WithNotifier(n *notify.Notifier) Option {
	return func(p *Project) { p.notifier = n }
}

// WithBus publishes a typed event for every mutation.
func WithBus(b *event.Bus) Option {
	return func(p *Project) { p.bus = b }
}

// WithLogger enables operation logging.
func WithLogger(l *logging.Logger) Option {
	return func(p *Project) { p.log = l }
}

// New creates a Project covering the given date range. The version counter
// starts at 1 and no notifier is configured until one is set.
func New(name, description string, start, end time.Time, opts ...Option) *Project {
	p := &Project{
		name:        name,
		description: description,
		start:       start,
		end:         end,
		version:     1,
		taskIndex:   make(map[string]*task.Task),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.log != nil {
		p.log = p.log.WithProject(name)
	}
	return p
}

// Name returns the project name.
func (p *Project) Name() string { return p.name }

// Description returns the project description.
func (p *Project) Description() string { return p.description }

// Start returns the project start date.
func (p *Project) Start() time.Time { return p.start }

// End returns the project end date.
func (p *Project) End() time.Time { return p.end }

// SetNotifier replaces the project's notifier. A nil notifier disables
// broadcasts.
func (p *Project) SetNotifier(n *notify.Notifier) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notifier = n
}

// SetChannel sets the active delivery strategy, creating a notifier if the
// project does not have one yet.
func (p *Project) SetChannel(c notify.Channel) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.notifier == nil {
		p.notifier = notify.NewNotifier(notify.WithChannel(c))
		return
	}
	p.notifier.SetChannel(c)
}

// AddMember appends a member to the team roster and notifies the team.
func (p *Project) AddMember(m team.Member) {
	p.mu.Lock()
	p.team.Add(m)
	p.mu.Unlock()

	p.publish(event.TypeMemberAdded, m.Name, "")
	p.broadcast(fmt.Sprintf("%s has been added to the team", m.Name))
}

// Team returns a snapshot of the roster in insertion order.
func (p *Project) Team() []team.Member {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.team.Members()
}

// AddTask registers a task with the project and notifies the team. Task
// names must be unique; dependency references are deliberately not checked
// here (they surface when the critical path is computed). Tasks are never
// removed once added.
func (p *Project) AddTask(t *task.Task) error {
	if t == nil {
		return errors.NewValidationError("task", "task is required")
	}
	if err := t.Validate(); err != nil {
		return err
	}

	p.mu.Lock()
	if _, exists := p.taskIndex[t.Name]; exists {
		p.mu.Unlock()
		return fmt.Errorf("add task %q: %w", t.Name, errors.ErrTaskExists)
	}
	p.tasks = append(p.tasks, t)
	p.taskIndex[t.Name] = t
	p.mu.Unlock()

	p.publish(event.TypeTaskAdded, t.Name, "")
	p.broadcast(fmt.Sprintf("New task added: %s", t.Name))
	return nil
}

// Task returns the registered task with the given name.
func (p *Project) Task(name string) (*task.Task, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	t, ok := p.taskIndex[name]
	return t, ok
}

// Tasks returns the task list snapshot in insertion order.
func (p *Project) Tasks() []*task.Task {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*task.Task, len(p.tasks))
	copy(out, p.tasks)
	return out
}

// UpdateTaskStatus replaces the status label of a registered task.
func (p *Project) UpdateTaskStatus(name string, s task.Status) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	t, ok := p.taskIndex[name]
	if !ok {
		return fmt.Errorf("update status of %q: %w", name, errors.ErrTaskNotFound)
	}
	t.UpdateStatus(s)
	return nil
}

// AddTaskDependency appends a prerequisite reference to a registered task.
// Matching the tracker's lazy-validation contract, the dependency itself is
// not required to exist yet; an unresolvable reference is reported when the
// critical path is computed.
func (p *Project) AddTaskDependency(taskName, dependsOn string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	t, ok := p.taskIndex[taskName]
	if !ok {
		return fmt.Errorf("add dependency to %q: %w", taskName, errors.ErrTaskNotFound)
	}
	t.AddDependency(dependsOn)
	return nil
}

// SetBudget replaces the project budget and notifies the team.
func (p *Project) SetBudget(budget float64) {
	p.mu.Lock()
	p.budget = budget
	p.mu.Unlock()

	p.publish(event.TypeBudgetSet, "", fmt.Sprintf("%.2f", budget))
	p.broadcast(fmt.Sprintf("Project budget set to %.2f", budget))
}

// Budget returns the current budget.
func (p *Project) Budget() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.budget
}

// AddRisk appends a risk to the register and notifies the team.
func (p *Project) AddRisk(r Risk) error {
	if err := r.Validate(); err != nil {
		return err
	}

	p.mu.Lock()
	p.risks = append(p.risks, r)
	p.mu.Unlock()

	p.publish(event.TypeRiskAdded, r.Description, r.Impact)
	p.broadcast(fmt.Sprintf("New risk added: %s", r.Description))
	return nil
}

// Risks returns the risk register snapshot in insertion order.
func (p *Project) Risks() []Risk {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Risk, len(p.risks))
	copy(out, p.risks)
	return out
}

// AddMilestone appends a milestone and notifies the team.
func (p *Project) AddMilestone(m Milestone) {
	p.mu.Lock()
	p.milestones = append(p.milestones, m)
	p.mu.Unlock()

	p.publish(event.TypeMilestoneAdded, m.Name, "")
	p.broadcast(fmt.Sprintf("New milestone added: %s", m.Name))
}

// Milestones returns the milestone list snapshot in insertion order.
func (p *Project) Milestones() []Milestone {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Milestone, len(p.milestones))
	copy(out, p.milestones)
	return out
}

// RecordChange appends a change-log entry stamped with the project's current
// version, then advances the version counter by exactly one. The recorded
// and announced version are the same value.
func (p *Project) RecordChange(description string) Change {
	p.mu.Lock()
	change := Change{
		Description: description,
		Version:     p.version,
		Date:        time.Now(),
	}
	p.changes = append(p.changes, change)
	p.version++
	p.mu.Unlock()

	p.publish(event.TypeChangeRecorded, description, fmt.Sprintf("%d", change.Version))
	p.broadcast(fmt.Sprintf("Change recorded: %s (version %d)", description, change.Version))
	return change
}

// Changes returns the change log snapshot in record order.
func (p *Project) Changes() []Change {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Change, len(p.changes))
	copy(out, p.changes)
	return out
}

// Version returns the version the next recorded change will carry.
func (p *Project) Version() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.version
}

// ComputeCriticalPath recomputes the longest dependency chain over the
// current task set and caches the result on the project. The computation
// itself is a pure read over a snapshot of the task list.
func (p *Project) ComputeCriticalPath() (schedule.Path, error) {
	tasks := p.Tasks()

	path, err := schedule.CriticalPath(tasks)
	if err != nil {
		if p.log != nil {
			p.log.Error("critical path computation failed", "error", err)
		}
		return schedule.Path{}, err
	}

	p.mu.Lock()
	p.critical = path
	p.mu.Unlock()

	if p.log != nil {
		p.log.Info("critical path computed", "days", path.Days, "tasks", len(path.Tasks))
	}
	p.publish(event.TypeCriticalPathComputed, "", fmt.Sprintf("%d days", path.Days))
	return path, nil
}

// CriticalPath returns the last computed critical path. It is zero until
// ComputeCriticalPath succeeds.
func (p *Project) CriticalPath() schedule.Path {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.critical
}

// broadcast sends a fixed-template message to the full current team through
// the notifier. With no notifier configured this is a no-op. Delivery
// failures are logged and otherwise ignored here; per-recipient outcomes are
// an operational concern, not a mutation failure.
func (p *Project) broadcast(message string) {
	p.mu.Lock()
	notifier := p.notifier
	roster := p.team.Members()
	p.mu.Unlock()

	if notifier == nil {
		return
	}
	results := notifier.Broadcast(message, roster)
	if p.log != nil {
		if failed := notify.Failures(results); len(failed) > 0 {
			p.log.Warn("broadcast had delivery failures",
				"message", message,
				"failed", len(failed),
				"recipients", len(results),
			)
		}
	}
}

// publish emits a typed project event if a bus is configured.
func (p *Project) publish(eventType, subject, detail string) {
	if p.bus == nil {
		return
	}
	p.bus.Publish(event.NewProjectEvent(eventType, p.name, subject, detail))
}
