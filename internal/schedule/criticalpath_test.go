package schedule

import (
	"testing"
	"time"

	"github.com/jalon-sh/jalon/internal/errors"
	"github.com/jalon-sh/jalon/internal/task"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// spanTask builds a task starting Jan 1 2024 lasting the given number of days.
func spanTask(name string, days int, deps ...string) *task.Task {
	start := date(2024, time.January, 1)
	return &task.Task{
		Name:      name,
		Start:     start,
		End:       start.AddDate(0, 0, days),
		DependsOn: deps,
	}
}

func assertNames(t *testing.T, p Path, want ...string) {
	t.Helper()
	got := p.Names()
	if len(got) != len(want) {
		t.Fatalf("path = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("path = %v, want %v", got, want)
		}
	}
}

func TestCriticalPath_Empty(t *testing.T) {
	p, err := CriticalPath(nil)
	if err != nil {
		t.Fatalf("CriticalPath(nil) error = %v, want nil", err)
	}
	if p.Days != 0 || len(p.Tasks) != 0 {
		t.Errorf("CriticalPath(nil) = %+v, want zero path", p)
	}
}

func TestCriticalPath_SingleLeafEqualsOwnSpan(t *testing.T) {
	a := spanTask("a", 10)
	p, err := CriticalPath([]*task.Task{a})
	if err != nil {
		t.Fatalf("CriticalPath error = %v", err)
	}
	if p.Days != 10 {
		t.Errorf("Days = %d, want 10 (leaf length equals own span)", p.Days)
	}
	assertNames(t, p, "a")
}

func TestCriticalPath_LinearChain(t *testing.T) {
	// Scenario from the tracker's reference data: A spans Jan 1 - Jan 31
	// (30 days), B spans Feb 1 - Jun 30 (150 days) and depends on A.
	a := &task.Task{Name: "a", Start: date(2024, time.January, 1), End: date(2024, time.January, 31)}
	b := &task.Task{Name: "b", Start: date(2024, time.February, 1), End: date(2024, time.June, 30), DependsOn: []string{"a"}}

	p, err := CriticalPath([]*task.Task{a, b})
	if err != nil {
		t.Fatalf("CriticalPath error = %v", err)
	}
	if p.Days != 180 {
		t.Errorf("Days = %d, want 180", p.Days)
	}
	assertNames(t, p, "a", "b")
}

func TestCriticalPath_Diamond(t *testing.T) {
	// a(10) <- b(5), a(10) <- c(20), d(1) <- {b, c}.
	// d's length = max(10+5, 10+20) + 1 = 31, path a -> c -> d.
	tasks := []*task.Task{
		spanTask("a", 10),
		spanTask("b", 5, "a"),
		spanTask("c", 20, "a"),
		spanTask("d", 1, "b", "c"),
	}

	p, err := CriticalPath(tasks)
	if err != nil {
		t.Fatalf("CriticalPath error = %v", err)
	}
	if p.Days != 31 {
		t.Errorf("Days = %d, want 31", p.Days)
	}
	assertNames(t, p, "a", "c", "d")
}

func TestCriticalPath_DiamondIndependentOfTraversalOrder(t *testing.T) {
	// Shared ancestors must not be double-counted regardless of which
	// branch is expanded first: reverse the registration order.
	tasks := []*task.Task{
		spanTask("d", 1, "b", "c"),
		spanTask("c", 20, "a"),
		spanTask("b", 5, "a"),
		spanTask("a", 10),
	}

	p, err := CriticalPath(tasks)
	if err != nil {
		t.Fatalf("CriticalPath error = %v", err)
	}
	if p.Days != 31 {
		t.Errorf("Days = %d, want 31", p.Days)
	}
	assertNames(t, p, "a", "c", "d")
}

func TestCriticalPath_DependencyTieBreakByDeclarationOrder(t *testing.T) {
	// b and c have equal spans; d must follow the first declared dependency.
	tasks := []*task.Task{
		spanTask("b", 7),
		spanTask("c", 7),
		spanTask("d", 1, "c", "b"),
	}

	p, err := CriticalPath(tasks)
	if err != nil {
		t.Fatalf("CriticalPath error = %v", err)
	}
	assertNames(t, p, "c", "d")
}

func TestCriticalPath_ProjectTieBreakByInsertionOrder(t *testing.T) {
	// Two disconnected chains of equal length: the first task registered
	// with the project wins.
	tasks := []*task.Task{
		spanTask("x", 9),
		spanTask("y", 9),
	}

	p, err := CriticalPath(tasks)
	if err != nil {
		t.Fatalf("CriticalPath error = %v", err)
	}
	assertNames(t, p, "x")
}

func TestCriticalPath_ZeroSpanDependencyKeptOnPath(t *testing.T) {
	tasks := []*task.Task{
		spanTask("a", 0),
		spanTask("b", 4, "a"),
	}

	p, err := CriticalPath(tasks)
	if err != nil {
		t.Fatalf("CriticalPath error = %v", err)
	}
	if p.Days != 4 {
		t.Errorf("Days = %d, want 4", p.Days)
	}
	assertNames(t, p, "a", "b")
}

func TestCriticalPath_Cycle(t *testing.T) {
	tasks := []*task.Task{
		spanTask("a", 1, "c"),
		spanTask("b", 1, "a"),
		spanTask("c", 1, "b"),
	}

	_, err := CriticalPath(tasks)
	if err == nil {
		t.Fatal("CriticalPath should fail on a dependency cycle")
	}
	if !errors.Is(err, errors.ErrCyclicDependency) {
		t.Errorf("error = %v, want ErrCyclicDependency", err)
	}

	var cycleErr *errors.CycleError
	if !errors.As(err, &cycleErr) {
		t.Fatal("error should be a *errors.CycleError")
	}
	if len(cycleErr.Cycle) < 3 {
		t.Errorf("Cycle = %v, want the full cycle chain", cycleErr.Cycle)
	}
}

func TestCriticalPath_SelfDependency(t *testing.T) {
	tasks := []*task.Task{spanTask("a", 1, "a")}

	_, err := CriticalPath(tasks)
	if !errors.Is(err, errors.ErrCyclicDependency) {
		t.Errorf("error = %v, want ErrCyclicDependency for self-dependency", err)
	}
}

func TestCriticalPath_UnknownDependency(t *testing.T) {
	tasks := []*task.Task{spanTask("a", 1, "ghost")}

	_, err := CriticalPath(tasks)
	if err == nil {
		t.Fatal("CriticalPath should fail on an unregistered dependency")
	}
	if !errors.Is(err, errors.ErrUnknownDependency) {
		t.Errorf("error = %v, want ErrUnknownDependency", err)
	}

	var depErr *errors.DependencyError
	if !errors.As(err, &depErr) {
		t.Fatal("error should be a *errors.DependencyError")
	}
	if depErr.Task != "a" || depErr.Dependency != "ghost" {
		t.Errorf("context = (%q, %q), want (a, ghost)", depErr.Task, depErr.Dependency)
	}
}

func TestCriticalPath_PureAcrossInvocations(t *testing.T) {
	tasks := []*task.Task{
		spanTask("a", 10),
		spanTask("b", 5, "a"),
	}

	first, err := CriticalPath(tasks)
	if err != nil {
		t.Fatalf("first invocation error = %v", err)
	}
	second, err := CriticalPath(tasks)
	if err != nil {
		t.Fatalf("second invocation error = %v", err)
	}
	if first.Days != second.Days {
		t.Errorf("Days differ across invocations: %d vs %d", first.Days, second.Days)
	}
	if len(tasks[1].DependsOn) != 1 || tasks[1].DependsOn[0] != "a" {
		t.Error("CriticalPath must not mutate the task snapshot")
	}
}

func TestPath_Contains(t *testing.T) {
	p := Path{Tasks: []*task.Task{spanTask("a", 1), spanTask("b", 1)}}
	if !p.Contains("a") || !p.Contains("b") {
		t.Error("Contains should report tasks on the path")
	}
	if p.Contains("c") {
		t.Error("Contains(c) = true, want false")
	}
}
