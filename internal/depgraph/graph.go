package depgraph

import "github.com/msageha/taskscribe/internal/model"

// Validate checks the dependency graph for self-references and cycles.
// Edges run task → the tasks it depends on, indexed by task number.
func Validate(tasks []model.Task) error {
	numbers, edges := adjacency(tasks)

	for n, deps := range edges {
		for _, dep := range deps {
			if dep == n {
				return &model.CircularDependencyError{Cycle: []int{n, n}}
			}
		}
	}

	_, err := sortTopological(numbers, edges)
	return err
}

// TopologicalOrder returns the task numbers in a valid execution
// order: every task appears after all tasks it depends on.
func TopologicalOrder(tasks []model.Task) ([]int, error) {
	numbers, edges := adjacency(tasks)
	return sortTopological(numbers, edges)
}

func adjacency(tasks []model.Task) ([]int, map[int][]int) {
	numbers := make([]int, 0, len(tasks))
	edges := make(map[int][]int)
	known := make(map[int]bool, len(tasks))
	for _, t := range tasks {
		numbers = append(numbers, t.TaskNumber)
		known[t.TaskNumber] = true
	}
	for _, t := range tasks {
		for _, dep := range t.Dependencies {
			if known[dep] {
				edges[t.TaskNumber] = append(edges[t.TaskNumber], dep)
			}
		}
	}
	return numbers, edges
}

// sortTopological runs Kahn's algorithm; dependencies sort before
// their dependents. On cycle detection it falls back to a DFS that
// reconstructs the cycle path for the error.
func sortTopological(numbers []int, edges map[int][]int) ([]int, error) {
	if len(numbers) == 0 {
		return nil, nil
	}

	inDegree := make(map[int]int, len(numbers))
	forward := make(map[int][]int)
	for _, n := range numbers {
		inDegree[n] = 0
	}
	for node, deps := range edges {
		for _, dep := range deps {
			inDegree[node]++
			forward[dep] = append(forward[dep], node)
		}
	}

	var queue []int
	for _, n := range numbers {
		if inDegree[n] == 0 {
			queue = append(queue, n)
		}
	}

	var sorted []int
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		sorted = append(sorted, node)

		for _, dependent := range forward[node] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	if len(sorted) == len(numbers) {
		return sorted, nil
	}

	return nil, &model.CircularDependencyError{
		Cycle: findCyclePath(numbers, edges, inDegree),
	}
}

// findCyclePath locates a cycle among nodes left with non-zero
// in-degree after Kahn's algorithm.
func findCyclePath(numbers []int, edges map[int][]int, inDegree map[int]int) []int {
	const (
		white = 0 // unvisited
		gray  = 1 // in current path
		black = 2 // finished
	)

	color := make(map[int]int)
	parent := make(map[int]int)

	var cyclePath []int

	var dfs func(node int) bool
	dfs = func(node int) bool {
		color[node] = gray
		for _, dep := range edges[node] {
			if color[dep] == gray {
				cyclePath = []int{dep}
				current := node
				for current != dep {
					cyclePath = append(cyclePath, current)
					current = parent[current]
				}
				cyclePath = append(cyclePath, dep)
				for i, j := 0, len(cyclePath)-1; i < j; i, j = i+1, j-1 {
					cyclePath[i], cyclePath[j] = cyclePath[j], cyclePath[i]
				}
				return true
			}
			if color[dep] == white {
				parent[dep] = node
				if dfs(dep) {
					return true
				}
			}
		}
		color[node] = black
		return false
	}

	for _, n := range numbers {
		if inDegree[n] > 0 && color[n] == white {
			if dfs(n) {
				return cyclePath
			}
		}
	}

	return nil
}
