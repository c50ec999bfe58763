// Package model defines the data structures shared by the taskscribe
// pipeline: team members, draft and finalized tasks, pipeline results,
// and the error taxonomy.
package model

import "fmt"

type Priority string

const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
	PriorityLow      Priority = "Low"
)

// priorityRank orders tiers from most to least urgent.
var priorityRank = map[Priority]int{
	PriorityCritical: 0,
	PriorityHigh:     1,
	PriorityMedium:   2,
	PriorityLow:      3,
}

func IsValidPriority(p Priority) bool {
	_, ok := priorityRank[p]
	return ok
}

// MoreUrgent reports whether a is strictly more urgent than b.
func MoreUrgent(a, b Priority) bool {
	ra, ok := priorityRank[a]
	if !ok {
		return false
	}
	rb, ok := priorityRank[b]
	if !ok {
		return true
	}
	return ra < rb
}

func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if !IsValidPriority(p) {
		return "", fmt.Errorf("unknown priority %q", s)
	}
	return p, nil
}
