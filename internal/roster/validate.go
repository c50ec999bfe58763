package roster

import (
	"fmt"
	"strings"

	"github.com/msageha/taskscribe/internal/model"
)

type ValidationError struct {
	FieldPath string
	Message   string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.FieldPath, e.Message)
}

type ValidationErrors struct {
	Errors []ValidationError
}

func (ve *ValidationErrors) Add(fieldPath, message string) {
	ve.Errors = append(ve.Errors, ValidationError{FieldPath: fieldPath, Message: message})
}

func (ve *ValidationErrors) HasErrors() bool {
	return len(ve.Errors) > 0
}

func (ve *ValidationErrors) Error() string {
	msgs := make([]string, 0, len(ve.Errors))
	for _, e := range ve.Errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// ValidateMembers checks a roster before it is loaded into a Directory:
// at least one member, no duplicate names (case-insensitive), and a
// non-empty name on every entry.
func ValidateMembers(members []model.TeamMember) *ValidationErrors {
	errs := &ValidationErrors{}

	if len(members) == 0 {
		errs.Add("members", "at least one member is required")
		return errs
	}

	seen := make(map[string]bool, len(members))
	for i, m := range members {
		prefix := fmt.Sprintf("members[%d]", i)
		name := strings.ToLower(strings.TrimSpace(m.Name))
		if name == "" {
			errs.Add(prefix+".name", "required field is missing")
			continue
		}
		if seen[name] {
			errs.Add(prefix+".name", fmt.Sprintf("duplicate name %q", m.Name))
		}
		seen[name] = true
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
