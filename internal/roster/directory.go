// Package roster holds the team directory: member records loaded once
// per pipeline run, name lookup, and skill/role overlap scoring.
package roster

import (
	"sort"
	"strings"

	"github.com/msageha/taskscribe/internal/model"
)

// Directory is an immutable view of one roster. Member order is roster
// order and is the deterministic tie-break for all downstream scoring.
type Directory struct {
	members []model.TeamMember
	byName  map[string]int
}

// New validates the roster and builds a Directory. Returns a
// *model.RosterError on an empty roster, duplicate names, or missing
// fields.
func New(members []model.TeamMember) (*Directory, error) {
	if ve := ValidateMembers(members); ve != nil {
		return nil, &model.RosterError{Msg: ve.Error()}
	}

	d := &Directory{
		members: make([]model.TeamMember, len(members)),
		byName:  make(map[string]int, len(members)),
	}
	for i, m := range members {
		d.members[i] = model.NewTeamMember(m.Name, m.Role, m.Skills)
		d.byName[strings.ToLower(strings.TrimSpace(m.Name))] = i
	}
	return d, nil
}

// Lookup finds a member by name, case-insensitive.
func (d *Directory) Lookup(name string) (model.TeamMember, bool) {
	i, ok := d.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return model.TeamMember{}, false
	}
	return d.members[i], true
}

// Members returns all members in roster order.
func (d *Directory) Members() []model.TeamMember {
	out := make([]model.TeamMember, len(d.members))
	copy(out, d.members)
	return out
}

// Names returns all member names in roster order.
func (d *Directory) Names() []string {
	names := make([]string, len(d.members))
	for i, m := range d.members {
		names[i] = m.Name
	}
	return names
}

func (d *Directory) Len() int {
	return len(d.members)
}

// OverlapScore counts how many of the member's skill/role keywords
// occur in the description, as substrings of the lowercased text or as
// whole-word matches up to simple inflection ("testing" matches
// "tests"). Returns the score and the matched keywords, sorted for
// stable output.
func (d *Directory) OverlapScore(description string, m model.TeamMember) (int, []string) {
	text := strings.ToLower(description)
	tokens := tokenize(text)

	var matched []string
	seen := make(map[string]bool)
	for _, kw := range memberKeywords(m) {
		if seen[kw] {
			continue
		}
		seen[kw] = true
		if strings.Contains(text, kw) || stemMatch(kw, tokens) {
			matched = append(matched, kw)
		}
	}
	sort.Strings(matched)
	return len(matched), matched
}

// stemMatch reports whether every token of kw matches some description
// token after stemming.
func stemMatch(kw string, tokens []string) bool {
	kwTokens := tokenize(kw)
	if len(kwTokens) == 0 {
		return false
	}
	for _, kt := range kwTokens {
		ks := stem(kt)
		found := false
		for _, t := range tokens {
			if stem(t) == ks {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// stem strips the common English suffixes that show up between skill
// keywords and task text ("testing"/"tests", "apis"/"api").
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

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
}

// memberKeywords merges the member's skills with the tokenized role.
// Short role tokens (articles, "and", etc.) carry no signal and are
// dropped.
func memberKeywords(m model.TeamMember) []string {
	kws := make([]string, 0, len(m.Skills)+4)
	kws = append(kws, m.Skills...)

	for _, tok := range strings.FieldsFunc(strings.ToLower(m.Role), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	}) {
		if len(tok) >= 3 {
			kws = append(kws, tok)
		}
	}
	return kws
}
