package extract

import "regexp"

// The extraction vocabulary lives in tables so each pattern can be
// tested and extended without touching the segmentation logic.

// actionPattern recognizes one family of actionable verb phrases and
// builds a clean description from the match.
type actionPattern struct {
	re *regexp.Regexp
	// build turns the regex submatches into a description. A nil build
	// means fixed: the description is the fixed field.
	build func(m []string) string
	fixed string
}

var actionPatterns = []actionPattern{
	{
		re: regexp.MustCompile(`(?i)\bfix\s+(?:the\s+)?((?:critical\s+)?[\w ]*?(?:bug|issue|problem))\b`),
		build: func(m []string) string { return "Fix " + m[1] },
	},
	{
		re:    regexp.MustCompile(`(?i)\boptimi[sz]e\s+(?:the\s+)?database\s+performance\b`),
		fixed: "Optimize database performance",
	},
	{
		// Implicit task: someone reporting slowness is asking for a fix.
		re:    regexp.MustCompile(`(?i)\bdatabase\s+performance\s+is\s+(?:really\s+)?slow\b`),
		fixed: "Optimize database performance",
	},
	{
		re: regexp.MustCompile(`(?i)\bupdate\s+(?:the\s+)?((?:[\w]+\s+)?documentation)\b`),
		build: func(m []string) string { return "Update " + m[1] },
	},
	{
		re: regexp.MustCompile(`(?i)\bdesign\s+(?:the\s+)?((?:new\s+)?[\w ]*?(?:screens?|interface|mockups?|ui))\b`),
		build: func(m []string) string { return "Design " + m[1] },
	},
	{
		re: regexp.MustCompile(`(?i)\b(write\s+(?:unit\s+)?tests?\s+for\s+)(?:the\s+)?([\w ]*?(?:module|service|component|api))\b`),
		build: func(m []string) string { return m[1] + m[2] },
	},
}

// genericAction is the fallback: any known action verb followed by an
// object. The object is truncated at the first clause boundary.
var genericAction = regexp.MustCompile(`(?i)\b(fix|update|design|write|implement|create|build|develop|optimize|improve|refactor|deploy|configure|prepare|review|debug|document|investigate)\b\s+(?:the\s+)?([A-Za-z0-9][\w /&'-]*(?: [\w/&'-]+)*)`)

// clauseStops cut a generic object before trailing context (deadlines,
// justifications, follow-on clauses).
var clauseStops = []string{
	",", ".", "!", "?", ";", " - ", " by ", " before ", " until ",
	" since ", " so ", " because ", " that ", " and ", " for the next ",
}

// deadlinePatterns are tried in order; the first capture wins.
var deadlinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bby\s+((?:tomorrow|today|tonight)(?:\s+(?:evening|morning|afternoon))?)\b`),
	regexp.MustCompile(`(?i)\bby\s+(end\s+of\s+(?:this\s+|next\s+)?(?:week|month))\b`),
	regexp.MustCompile(`(?i)\bby\s+(next\s+\w+day|next\s+week)\b`),
	regexp.MustCompile(`(?i)\bby\s+(\w+day)\b`),
	regexp.MustCompile(`(?i)\bbefore\s+(\w+day)\b`),
	regexp.MustCompile(`(?i)\buntil\s+(next\s+\w+day|next\s+week|\w+day|tomorrow)\b`),
	regexp.MustCompile(`(?i)\b(?:plan\s+(?:this\s+)?for|for)\s+(\w+day)\b`),
	regexp.MustCompile(`(?i)\b(tomorrow\s+(?:evening|morning|afternoon))\b`),
	regexp.MustCompile(`(?i)\b(end\s+of\s+(?:this\s+|next\s+)?(?:week|month))\b`),
	regexp.MustCompile(`(?i)\b(next\s+\w+day|next\s+week)\b`),
	regexp.MustCompile(`(?i)\bin\s+(\d+\s+(?:days?|weeks?))\b`),
	regexp.MustCompile(`(?i)\b(tomorrow|today|tonight)\b`),
	regexp.MustCompile(`(?i)\b(monday|tuesday|wednesday|thursday|friday)\b`),
}

// dependencyPatterns capture the prerequisite phrase of a dependency
// connective.
var dependencyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bdepends\s+on\s+(?:the\s+)?(.+?)(?:\s+being\b|\s+first\b|,|\.|$)`),
	regexp.MustCompile(`(?i)\bafter\s+(?:the\s+)?(.+?)\s+is\s+(?:done|completed|finished)\b`),
	regexp.MustCompile(`(?i)\bonce\s+(?:the\s+)?(.+?)\s+is\s+(?:done|completed|finished)\b`),
	regexp.MustCompile(`(?i)\bblocked\s+by\s+(?:the\s+)?(.+?)(?:,|\.|$)`),
	regexp.MustCompile(`(?i)\bwaiting\s+for\s+(?:the\s+)?(.+?)(?:,|\.|$)`),
	regexp.MustCompile(`(?i)\brequires\s+(?:the\s+)?(.+?)(?:\s+to\s+be\b|\s+first\b|,|\.|$)`),
	regexp.MustCompile(`(?i)\bcan'?t\s+start\s+until\s+(?:the\s+)?(.+?)(?:,|\.|$)`),
	regexp.MustCompile(`(?i)\bprerequisites?:\s*(.+?)(?:,|\.|$)`),
}

// urgencySignals is the keyword scan attached to a draft task as its
// raw priority signal. Classification happens downstream; the
// extractor only records what it saw.
var urgencySignals = []string{
	"critical", "urgent", "asap", "immediately", "emergency",
	"high priority", "important", "blocking", "blocker",
	"affecting users", "affecting the user", "before release",
	"can wait", "when possible", "nice to have", "low priority",
	"next sprint", "no rush",
}

var (
	// Discourse markers that introduce a new task mid-sentence.
	reDiscourseMarker = regexp.MustCompile(`(?i)\b(?:one more thing|oh and)\b`)
	reAndWeNeedTo     = regexp.MustCompile(`(?i)\s+and\s+we\s+need\s+to\s+`)

	// Follow-on context that belongs to the preceding task.
	reContextUnit = regexp.MustCompile(`(?i)^(?:this\s+(?:needs|should|is|depends|can\s+wait)|it'?s\s|we\s+should\s+tackle\s+this\b|tackle\s+this\b|let'?s\s+plan\s+this\b)`)

	// Questions about past work are never tasks.
	reWorkQuestion = regexp.MustCompile(`(?i)\b(?:didn'?t|did)\s+you\s+work\s+on\b`)
)
