// Package deadline maps natural-language deadline phrases to normalized
// date labels anchored to a reference date. Normalization is advisory:
// a phrase the normalizer does not recognize passes through verbatim.
package deadline

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Label is the normalized form, ISO 8601 date.
const labelLayout = "2006-01-02"

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// relativeRules maps exact phrases to their date resolution. Keeping the
// vocabulary in one table makes each entry independently testable and
// extendable without touching Normalize.
var relativeRules = map[string]func(time.Time) time.Time{
	"today":              func(d time.Time) time.Time { return d },
	"tonight":            func(d time.Time) time.Time { return d },
	"tomorrow":           daysAfter(1),
	"tomorrow morning":   daysAfter(1),
	"tomorrow evening":   daysAfter(1),
	"tomorrow afternoon": daysAfter(1),
	"next week":          daysAfter(7),
	"this week":          endOfWeek,
	"end of week":        endOfWeek,
	"end of this week":   endOfWeek,
	"end of next week":   func(d time.Time) time.Time { return endOfWeek(d).AddDate(0, 0, 7) },
	"end of month":       endOfMonth,
	"end of this month":  endOfMonth,
	"next monday":        nextWeekdayFn(time.Monday),
	"next tuesday":       nextWeekdayFn(time.Tuesday),
	"next wednesday":     nextWeekdayFn(time.Wednesday),
	"next thursday":      nextWeekdayFn(time.Thursday),
	"next friday":        nextWeekdayFn(time.Friday),
	"next saturday":      nextWeekdayFn(time.Saturday),
	"next sunday":        nextWeekdayFn(time.Sunday),
}

var (
	reByWeekday = regexp.MustCompile(`^by\s+(\w+)`)
	reInUnits   = regexp.MustCompile(`^in\s+(\d+)\s+(day|days|week|weeks)`)
	reBareDays  = regexp.MustCompile(`^(\d+)\s+days?`)
)

// Normalize resolves phrase against ref and returns the normalized
// label. With a zero ref, or for a phrase outside the vocabulary, the
// phrase is returned unchanged. An empty phrase stays empty.
func Normalize(phrase string, ref time.Time) string {
	if phrase == "" {
		return ""
	}
	if ref.IsZero() {
		return phrase
	}

	if d, ok := Resolve(phrase, ref); ok {
		return d.Format(labelLayout)
	}
	return phrase
}

// Resolve parses phrase into a concrete date. ok is false when the
// phrase is outside the recognized vocabulary.
func Resolve(phrase string, ref time.Time) (time.Time, bool) {
	p := strings.ToLower(strings.TrimSpace(phrase))
	if p == "" {
		return time.Time{}, false
	}

	if fn, ok := relativeRules[p]; ok {
		return fn(ref), true
	}

	if m := reByWeekday.FindStringSubmatch(p); m != nil {
		if wd, ok := weekdays[m[1]]; ok {
			return nextWeekday(ref, wd), true
		}
	}

	if m := reInUnits.FindStringSubmatch(p); m != nil {
		n, _ := strconv.Atoi(m[1])
		if strings.HasPrefix(m[2], "week") {
			return ref.AddDate(0, 0, 7*n), true
		}
		return ref.AddDate(0, 0, n), true
	}

	if m := reBareDays.FindStringSubmatch(p); m != nil {
		n, _ := strconv.Atoi(m[1])
		return ref.AddDate(0, 0, n), true
	}

	// Partial normalization: a weekday embedded in a longer phrase the
	// exact rules do not cover ("friday release", "plan for wednesday").
	for name, wd := range weekdays {
		if containsWord(p, name) {
			return nextWeekday(ref, wd), true
		}
	}

	return time.Time{}, false
}

func daysAfter(n int) func(time.Time) time.Time {
	return func(d time.Time) time.Time { return d.AddDate(0, 0, n) }
}

// nextWeekday returns the nearest strictly future occurrence of wd.
// A weekday that already passed this week lands in the following week.
func nextWeekday(from time.Time, wd time.Weekday) time.Time {
	delta := (int(wd) - int(from.Weekday()) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	return from.AddDate(0, 0, delta)
}

func nextWeekdayFn(wd time.Weekday) func(time.Time) time.Time {
	return func(d time.Time) time.Time { return nextWeekday(d, wd) }
}

// endOfWeek returns the coming Friday of the reference week.
func endOfWeek(from time.Time) time.Time {
	delta := (int(time.Friday) - int(from.Weekday()) + 7) % 7
	return from.AddDate(0, 0, delta)
}

func endOfMonth(from time.Time) time.Time {
	firstOfNext := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, from.Location()).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1)
}

func containsWord(text, word string) bool {
	idx := strings.Index(text, word)
	for idx >= 0 {
		before := idx == 0 || !isWordByte(text[idx-1])
		afterIdx := idx + len(word)
		after := afterIdx == len(text) || !isWordByte(text[afterIdx])
		if before && after {
			return true
		}
		next := strings.Index(text[idx+1:], word)
		if next < 0 {
			return false
		}
		idx += 1 + next
	}
	return false
}

func isWordByte(b byte) bool {
	return b == '_' || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9')
}
