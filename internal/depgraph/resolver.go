// Package depgraph links raw dependency phrases to task numbers and
// validates the resulting graph. Resolution is best-effort per phrase;
// an unactionable graph (self-reference or cycle) fails the whole run.
package depgraph

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/msageha/taskscribe/internal/model"
)

var reTaskOrdinal = regexp.MustCompile(`(?i)\btask\s*#?\s*(\d+)\b`)

// fillerWords carry no signal when matching a dependency phrase
// against task descriptions.
var fillerWords = map[string]bool{
	"the": true, "a": true, "an": true, "is": true, "are": true,
	"being": true, "completed": true, "done": true, "finished": true,
	"first": true, "this": true, "that": true, "it": true, "be": true,
	"to": true, "of": true, "on": true, "for": true,
}

// Resolve fills each task's dependency set from its raw dependency
// phrases and validates the graph. phrases[i] belongs to tasks[i].
// Returns the tasks with dependencies populated, or a
// *model.CircularDependencyError when the graph contains a cycle.
// Unresolvable phrases leave the dependency set empty; running Resolve
// again over its own output is a no-op.
func Resolve(tasks []model.Task, phrases [][]string) ([]model.Task, error) {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)

	for i := range out {
		if i >= len(phrases) {
			break
		}
		deps := out[i].Dependencies
		seen := make(map[int]bool, len(deps))
		for _, d := range deps {
			seen[d] = true
		}
		for _, phrase := range phrases[i] {
			target, ok := resolvePhrase(phrase, out, i)
			if !ok || seen[target] {
				continue
			}
			seen[target] = true
			deps = append(deps, target)
		}
		out[i].Dependencies = deps
	}

	if err := Validate(out); err != nil {
		return nil, err
	}
	return out, nil
}

// resolvePhrase maps one phrase to a task number. An explicit ordinal
// ("Task #1") resolves directly; otherwise the phrase's content words
// are matched against earlier tasks' descriptions and the highest
// overlap wins, earliest task number breaking ties.
func resolvePhrase(phrase string, tasks []model.Task, selfIdx int) (int, bool) {
	if m := reTaskOrdinal.FindStringSubmatch(phrase); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil && n >= 1 && n <= len(tasks) {
			return n, true
		}
		return 0, false
	}

	words := contentWords(phrase)
	if len(words) == 0 {
		return 0, false
	}

	bestIdx := -1
	bestScore := 0
	for j := 0; j < selfIdx; j++ {
		score := overlap(words, contentWords(tasks[j].Description))
		if score > bestScore {
			bestScore = score
			bestIdx = j
		}
	}
	if bestIdx < 0 {
		return 0, false
	}
	return tasks[bestIdx].TaskNumber, true
}

func overlap(phraseWords, descWords []string) int {
	count := 0
	for _, pw := range phraseWords {
		ps := stem(pw)
		for _, dw := range descWords {
			if stem(dw) == ps {
				count++
				break
			}
		}
	}
	return count
}

func contentWords(text string) []string {
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
	out := tokens[:0]
	for _, t := range tokens {
		if !fillerWords[t] {
			out = append(out, t)
		}
	}
	return out
}

func stem(w string) string {
	if len(w) > 5 && strings.HasSuffix(w, "ing") {
		return w[:len(w)-3]
	}
	if len(w) > 4 && strings.HasSuffix(w, "es") {
		return w[:len(w)-2]
	}
	if len(w) > 3 && strings.HasSuffix(w, "s") {
		return w[:len(w)-1]
	}
	return w
}
