// Package priority classifies task urgency into one of four tiers by
// evaluating an ordered rule list top-down. The first matching rule
// wins, and the fallthrough tier makes classification total.
package priority

import (
	"strings"
	"time"

	"github.com/msageha/taskscribe/internal/model"
)

// Input carries everything the classifier may consult: the task text,
// the urgency keywords the extractor captured, and the resolved
// deadline (zero when absent or unresolved).
type Input struct {
	Text     string
	Signals  []string
	Deadline time.Time
	Ref      time.Time
}

// Keyword vocabularies, one table per tier. Kept as data so each
// vocabulary can be tested and extended without touching the rules.
var (
	criticalWords = []string{
		"critical", "urgent", "asap", "immediately", "emergency",
		"blocking users", "down", "broken in production",
		"right away", "right now", "drop everything",
	}
	highWords = []string{
		"high priority", "before release", "production issue",
		"blocking", "blocker", "affecting users", "affecting the user",
		"customer impact", "must have",
	}
	moderateWords = []string{
		"should", "important", "can wait", "next sprint",
	}
	lowWords = []string{
		"when possible", "nice to have", "low priority", "backlog",
		"eventually", "no rush", "whenever", "if time permits",
	}
)

type rule struct {
	name  string
	tier  model.Priority
	match func(Input) bool
}

// rules is evaluated in order; precedence lives here and nowhere else.
var rules = []rule{
	{"critical-keywords", model.PriorityCritical, func(in Input) bool {
		return hasAny(in, criticalWords)
	}},
	{"imminent-deadline", model.PriorityHigh, func(in Input) bool {
		return daysUntil(in) >= 0 && daysUntil(in) <= 1
	}},
	{"high-keywords", model.PriorityHigh, func(in Input) bool {
		return hasAny(in, highWords)
	}},
	{"week-deadline", model.PriorityMedium, func(in Input) bool {
		return daysUntil(in) >= 0 && daysUntil(in) <= 7
	}},
	{"moderate-keywords", model.PriorityMedium, func(in Input) bool {
		return hasAny(in, moderateWords)
	}},
	{"low-keywords", model.PriorityLow, func(in Input) bool {
		return hasAny(in, lowWords)
	}},
}

// Classify returns exactly one tier for any input. Tasks matching no
// rule, including those with deadlines beyond the current week, are Low.
func Classify(in Input) model.Priority {
	for _, r := range rules {
		if r.match(in) {
			return r.tier
		}
	}
	return model.PriorityLow
}

func hasAny(in Input, words []string) bool {
	text := strings.ToLower(in.Text)
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
		for _, sig := range in.Signals {
			if strings.Contains(strings.ToLower(sig), w) {
				return true
			}
		}
	}
	return false
}

// daysUntil returns whole days from the reference date to the deadline,
// or -1 when either is unknown.
func daysUntil(in Input) int {
	if in.Deadline.IsZero() || in.Ref.IsZero() {
		return -1
	}
	d := int(in.Deadline.Sub(in.Ref).Hours() / 24)
	if d < 0 {
		return -1
	}
	return d
}
