package depgraph

import (
	"strings"
	"testing"

	"github.com/msageha/taskscribe/internal/model"
)

func taskWithDeps(n int, deps ...int) model.Task {
	if deps == nil {
		deps = []int{}
	}
	return model.Task{TaskNumber: n, Dependencies: deps}
}

func indexOf(order []int, n int) int {
	for i, v := range order {
		if v == n {
			return i
		}
	}
	return -1
}

func TestValidateLinearChain(t *testing.T) {
	tasks := []model.Task{
		taskWithDeps(1),
		taskWithDeps(2, 1),
		taskWithDeps(3, 2),
	}
	if err := Validate(tasks); err != nil {
		t.Fatalf("expected valid graph, got %v", err)
	}
}

func TestValidateSelfReference(t *testing.T) {
	tasks := []model.Task{taskWithDeps(1), taskWithDeps(2, 2)}

	err := Validate(tasks)
	if err == nil {
		t.Fatal("expected self-reference error")
	}
	cycErr, ok := err.(*model.CircularDependencyError)
	if !ok {
		t.Fatalf("expected *model.CircularDependencyError, got %T", err)
	}
	if len(cycErr.Cycle) != 2 || cycErr.Cycle[0] != 2 || cycErr.Cycle[1] != 2 {
		t.Errorf("expected cycle [2 2], got %v", cycErr.Cycle)
	}
}

func TestValidateTwoTaskCycle(t *testing.T) {
	tasks := []model.Task{taskWithDeps(1, 2), taskWithDeps(2, 1)}

	err := Validate(tasks)
	if err == nil {
		t.Fatal("expected cycle error")
	}
	cycErr, ok := err.(*model.CircularDependencyError)
	if !ok {
		t.Fatalf("expected *model.CircularDependencyError, got %T", err)
	}

	msg := cycErr.Error()
	if !strings.HasPrefix(msg, "circular dependency detected: ") {
		t.Errorf("unexpected message prefix: %q", msg)
	}
	// Both participants must be named.
	if !strings.Contains(msg, "Task #1") || !strings.Contains(msg, "Task #2") {
		t.Errorf("expected both tasks named in %q", msg)
	}
	// The path is closed: first and last elements are equal.
	if cycErr.Cycle[0] != cycErr.Cycle[len(cycErr.Cycle)-1] {
		t.Errorf("expected closed cycle path, got %v", cycErr.Cycle)
	}
}

func TestValidateCycleInLargerGraph(t *testing.T) {
	tasks := []model.Task{
		taskWithDeps(1),
		taskWithDeps(2, 1, 4),
		taskWithDeps(3, 2),
		taskWithDeps(4, 3),
		taskWithDeps(5, 1),
	}

	err := Validate(tasks)
	if err == nil {
		t.Fatal("expected cycle error")
	}
	cycErr := err.(*model.CircularDependencyError)
	for _, n := range []int{2, 3, 4} {
		if indexOf(cycErr.Cycle, n) < 0 {
			t.Errorf("expected task %d in cycle %v", n, cycErr.Cycle)
		}
	}
}

func TestValidateUnknownReferenceIgnored(t *testing.T) {
	tasks := []model.Task{taskWithDeps(1, 99)}
	if err := Validate(tasks); err != nil {
		t.Fatalf("expected unknown reference to be skipped, got %v", err)
	}
}

func TestTopologicalOrder(t *testing.T) {
	tasks := []model.Task{
		taskWithDeps(1),
		taskWithDeps(2, 1),
		taskWithDeps(3, 1),
		taskWithDeps(4, 2, 3),
	}

	order, err := TopologicalOrder(tasks)
	if err != nil {
		t.Fatalf("TopologicalOrder: %v", err)
	}
	if len(order) != 4 {
		t.Fatalf("expected 4 nodes, got %v", order)
	}

	if indexOf(order, 1) >= indexOf(order, 2) {
		t.Errorf("expected 1 before 2 in %v", order)
	}
	if indexOf(order, 1) >= indexOf(order, 3) {
		t.Errorf("expected 1 before 3 in %v", order)
	}
	if indexOf(order, 2) >= indexOf(order, 4) {
		t.Errorf("expected 2 before 4 in %v", order)
	}
	if indexOf(order, 3) >= indexOf(order, 4) {
		t.Errorf("expected 3 before 4 in %v", order)
	}
}

func TestTopologicalOrderEmpty(t *testing.T) {
	order, err := TopologicalOrder(nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if order != nil {
		t.Errorf("expected nil order, got %v", order)
	}
}
