// Package assign resolves a draft task to a team member through a
// tiered strategy: explicit mention, then skill/role overlap, then
// unassigned. Each outcome carries the rationale that produced it.
package assign

import (
	"fmt"
	"strings"

	"github.com/msageha/taskscribe/internal/model"
	"github.com/msageha/taskscribe/internal/roster"
)

// Result is the winning assignment and its rationale. Member is nil
// for an unassigned task; that is not an error, only a condition the
// caller surfaces.
type Result struct {
	Member    *model.TeamMember
	Reasoning string
}

// Resolve picks the assignee for one draft task. The first tier that
// yields a unique winner is used; ties on overlap score are broken by
// roster order.
func Resolve(task model.DraftTask, dir *roster.Directory) Result {
	if task.ExplicitMention != "" {
		if m, ok := dir.Lookup(task.ExplicitMention); ok {
			return Result{
				Member:    &m,
				Reasoning: fmt.Sprintf("Explicitly mentioned in task: %q", task.ExplicitMention),
			}
		}
	}

	if r, ok := bestOverlap(task, dir); ok {
		return r
	}

	return Result{
		Reasoning: "No matching skill or explicit mention found for this task",
	}
}

// bestOverlap scores every member against the task description and
// returns the highest scorer above zero. Iteration is roster order and
// replacement requires a strictly higher score, so the first-listed
// member wins ties.
func bestOverlap(task model.DraftTask, dir *roster.Directory) (Result, bool) {
	var best *model.TeamMember
	bestScore := 0
	var bestMatched []string
	for _, m := range dir.Members() {
		score, matched := dir.OverlapScore(task.Description, m)
		if score > bestScore {
			m := m
			best = &m
			bestScore = score
			bestMatched = matched
		}
	}

	if best == nil {
		return Result{}, false
	}
	return Result{
		Member: best,
		Reasoning: fmt.Sprintf("Matched skills: %s; Role: %s",
			strings.Join(bestMatched, ", "), best.Role),
	}, true
}
