package schedule

import (
	"github.com/jalon-sh/jalon/internal/errors"
	"github.com/jalon-sh/jalon/internal/task"
)

// Path is a chain of dependent tasks together with its cumulative duration
// in whole days. Tasks appear in execution order: prerequisites first.
type Path struct {
	Days  int
	Tasks []*task.Task
}

// Names returns the task names along the path, in execution order.
func (p Path) Names() []string {
	if len(p.Tasks) == 0 {
		return nil
	}
	names := make([]string, len(p.Tasks))
	for i, t := range p.Tasks {
		names[i] = t.Name
	}
	return names
}

// Contains reports whether the named task lies on the path.
func (p Path) Contains(name string) bool {
	for _, t := range p.Tasks {
		if t.Name == name {
			return true
		}
	}
	return false
}

// CriticalPath computes the longest dependency chain across all tasks.
//
// The duration of a chain is the sum of each task's own span in whole days.
// A task with no dependencies contributes its own span; a task with
// dependencies contributes its span on top of the longest chain among its
// prerequisites. Ties are deterministic: among a task's dependencies the
// first declared dependency with the maximum length wins, and across the
// project the first task in insertion order wins.
//
// Each task's result is memoized by name and computed at most once per call,
// so diamond-shaped graphs neither double-count shared ancestors nor blow up
// combinatorially.
//
// CriticalPath is a pure read over the given snapshot: it never mutates the
// tasks and keeps no state between calls. An empty task list yields a
// zero-length path and no error.
//
// Failure modes:
//   - a dependency cycle is reported as a [errors.CycleError] naming the
//     cycle's tasks (matched by errors.ErrCyclicDependency)
//   - a reference to an unregistered task is reported as a
//     [errors.DependencyError] (matched by errors.ErrUnknownDependency)
func CriticalPath(tasks []*task.Task) (Path, error) {
	if len(tasks) == 0 {
		return Path{}, nil
	}

	w := &walker{
		index:   make(map[string]*task.Task, len(tasks)),
		memo:    make(map[string]Path, len(tasks)),
		onStack: make(map[string]bool),
	}
	for _, t := range tasks {
		w.index[t.Name] = t
	}

	var best Path
	for _, t := range tasks {
		p, err := w.longest(t)
		if err != nil {
			return Path{}, err
		}
		// Strict comparison keeps the first task in insertion order on ties.
		if p.Days > best.Days || len(best.Tasks) == 0 {
			best = p
		}
	}
	return best, nil
}

// walker carries the per-invocation traversal state. The memo maps task name
// to its longest chain; onStack and stack implement cycle detection via an
// in-progress marker on the current recursion path.
type walker struct {
	index   map[string]*task.Task
	memo    map[string]Path
	onStack map[string]bool
	stack   []string
}

// longest returns the longest chain ending at t, computing and memoizing it
// if necessary.
func (w *walker) longest(t *task.Task) (Path, error) {
	if p, ok := w.memo[t.Name]; ok {
		return p, nil
	}
	if w.onStack[t.Name] {
		return Path{}, errors.NewCycleError(w.cycleFrom(t.Name))
	}

	w.onStack[t.Name] = true
	w.stack = append(w.stack, t.Name)
	defer func() {
		w.onStack[t.Name] = false
		w.stack = w.stack[:len(w.stack)-1]
	}()

	var best Path
	for _, depName := range t.DependsOn {
		dep, ok := w.index[depName]
		if !ok {
			return Path{}, errors.NewDependencyError(t.Name, depName)
		}
		p, err := w.longest(dep)
		if err != nil {
			return Path{}, err
		}
		// Strict comparison: the first declared dependency wins ties.
		// Zero-length chains still count as a prefix, so the first
		// dependency is always taken over having none.
		if len(best.Tasks) == 0 || p.Days > best.Days {
			best = p
		}
	}

	chain := make([]*task.Task, 0, len(best.Tasks)+1)
	chain = append(chain, best.Tasks...)
	chain = append(chain, t)

	result := Path{Days: best.Days + t.Duration(), Tasks: chain}
	w.memo[t.Name] = result
	return result, nil
}

// cycleFrom reconstructs the cycle chain from the recursion stack, starting
// at the first occurrence of name and closing with name repeated.
func (w *walker) cycleFrom(name string) []string {
	start := 0
	for i, id := range w.stack {
		if id == name {
			start = i
			break
		}
	}
	cycle := make([]string, 0, len(w.stack)-start+1)
	cycle = append(cycle, w.stack[start:]...)
	cycle = append(cycle, name)
	return cycle
}
