// Package extract segments a meeting transcript into draft tasks:
// discourse-unit splitting, action detection, and capture of the raw
// deadline, priority, and dependency spans each unit carries.
package extract

import (
	"regexp"
	"strings"

	"github.com/msageha/taskscribe/internal/model"
)

const minDescriptionLen = 8

// Extractor is a pure function of the transcript text, the fixed
// pattern vocabulary, and the roster names used for mention detection.
type Extractor struct {
	names   []string
	nameRes []*regexp.Regexp
}

func New(rosterNames []string) *Extractor {
	e := &Extractor{}
	for _, n := range rosterNames {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		e.names = append(e.names, n)
		e.nameRes = append(e.nameRes, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(n)+`\b`))
	}
	return e
}

// unit is one discourse unit after segmentation and context merging.
type unit struct {
	text   string
	isTask bool
	desc   string
	verbAt int
}

// Extract returns the draft tasks in transcript order. Units with no
// action pattern are dropped silently; empty input yields no tasks.
func (e *Extractor) Extract(transcript string) []model.DraftTask {
	if strings.TrimSpace(transcript) == "" {
		return nil
	}

	units := e.buildUnits(transcript)

	var drafts []model.DraftTask
	taskUnitIdx := make([]int, 0, len(units))
	for i := range units {
		u := &units[i]
		if !u.isTask {
			continue
		}
		draft := model.DraftTask{
			Description:       u.desc,
			RawText:           u.text,
			DeadlinePhrase:    findDeadlinePhrase(u.text),
			PrioritySignals:   findSignals(u.text),
			DependencyPhrases: findDependencyPhrases(u.text),
		}
		draft.ExplicitMention = e.mentionNearVerb(u.text, u.verbAt)
		drafts = append(drafts, draft)
		taskUnitIdx = append(taskUnitIdx, i)
	}

	// Mentions may also come from an immediately adjacent unit that is
	// not itself a task ("Arjun, didn't you work on UI designs?"). Each
	// such unit donates its mention to at most one task.
	consumed := make(map[int]bool)
	for di, ui := range taskUnitIdx {
		if drafts[di].ExplicitMention != "" {
			continue
		}
		for _, ni := range []int{ui - 1, ui + 1} {
			if ni < 0 || ni >= len(units) || units[ni].isTask || consumed[ni] {
				continue
			}
			if name := e.mentionNearVerb(units[ni].text, 0); name != "" {
				drafts[di].ExplicitMention = name
				consumed[ni] = true
				break
			}
		}
	}

	return drafts
}

// buildUnits splits the transcript into discourse units, classifies
// each, and folds follow-on context ("This needs to be done by
// tomorrow") into the preceding task unit.
func (e *Extractor) buildUnits(transcript string) []unit {
	var units []unit
	lastTask := -1

	for _, sentence := range splitSegments(transcript) {
		if reWorkQuestion.MatchString(sentence) {
			// Keep it for adjacency, but it can never be a task.
			units = append(units, unit{text: sentence})
			continue
		}

		if reContextUnit.MatchString(sentence) && lastTask >= 0 {
			units[lastTask].text += " " + sentence
			continue
		}

		desc, verbAt, ok := matchAction(sentence)
		if ok && len(desc) >= minDescriptionLen {
			units = append(units, unit{text: sentence, isTask: true, desc: desc, verbAt: verbAt})
			lastTask = len(units) - 1
			continue
		}

		units = append(units, unit{text: sentence})
	}

	return units
}

// splitSegments breaks the transcript at sentence boundaries and at
// task-introducing discourse markers.
func splitSegments(text string) []string {
	var sentences []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '.' || text[i] == '!' || text[i] == '?' {
			end := i + 1
			if end >= len(text) || text[end] == ' ' || text[end] == '\n' || text[end] == '\t' {
				sentences = append(sentences, text[start:end])
				start = end
			}
		}
	}
	if start < len(text) {
		sentences = append(sentences, text[start:])
	}

	var segments []string
	for _, s := range sentences {
		for _, part := range reDiscourseMarker.Split(s, -1) {
			// "and we need to" joins two tasks in one sentence.
			sub := reAndWeNeedTo.Split(part, -1)
			segments = append(segments, sub[0])
			for _, rest := range sub[1:] {
				segments = append(segments, "We need to "+rest)
			}
		}
	}

	out := segments[:0]
	for _, s := range segments {
		s = strings.TrimSpace(s)
		s = strings.TrimPrefix(s, "- ")
		s = strings.TrimSpace(s)
		if len(s) > 5 {
			out = append(out, s)
		}
	}
	return out
}

// matchAction finds an actionable verb phrase and returns the cleaned
// description plus the verb position used for nearest-name matching.
func matchAction(sentence string) (string, int, bool) {
	for _, p := range actionPatterns {
		loc := p.re.FindStringSubmatchIndex(sentence)
		if loc == nil {
			continue
		}
		var desc string
		if p.build != nil {
			desc = p.build(submatches(sentence, loc))
		} else {
			desc = p.fixed
		}
		return capitalize(strings.TrimSpace(desc)), loc[0], true
	}

	loc := genericAction.FindStringSubmatchIndex(sentence)
	if loc == nil {
		return "", 0, false
	}
	m := submatches(sentence, loc)
	obj := truncateAtClause(m[2])
	if len(obj) < 3 {
		return "", 0, false
	}
	return capitalize(m[1] + " " + obj), loc[0], true
}

func submatches(s string, loc []int) []string {
	out := make([]string, len(loc)/2)
	for i := 0; i < len(loc); i += 2 {
		if loc[i] >= 0 {
			out[i/2] = s[loc[i]:loc[i+1]]
		}
	}
	return out
}

func truncateAtClause(obj string) string {
	lower := strings.ToLower(obj)
	cut := len(obj)
	for _, stop := range clauseStops {
		if idx := strings.Index(lower, stop); idx >= 0 && idx < cut {
			cut = idx
		}
	}
	return strings.TrimSpace(obj[:cut])
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// mentionNearVerb returns the roster name closest to the action verb,
// or "" when the unit mentions nobody. With several names in one unit
// only the nearest to the verb is associated.
func (e *Extractor) mentionNearVerb(text string, verbAt int) string {
	best := ""
	bestDist := -1
	for i, re := range e.nameRes {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			dist := loc[0] - verbAt
			if dist < 0 {
				dist = -dist
			}
			if bestDist < 0 || dist < bestDist {
				bestDist = dist
				best = e.names[i]
			}
		}
	}
	return best
}

func findDeadlinePhrase(text string) string {
	for _, re := range deadlinePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			phrase := strings.ToLower(strings.TrimSpace(m[1]))
			phrase = strings.TrimSuffix(phrase, "'s")
			return phrase
		}
	}
	return ""
}

func findSignals(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, sig := range urgencySignals {
		if strings.Contains(lower, sig) {
			found = append(found, sig)
		}
	}
	return found
}

func findDependencyPhrases(text string) []string {
	var found []string
	seen := make(map[string]bool)
	for _, re := range dependencyPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			phrase := strings.ToLower(strings.TrimSpace(m[1]))
			if phrase != "" && !seen[phrase] {
				seen[phrase] = true
				found = append(found, phrase)
			}
		}
	}
	return found
}
