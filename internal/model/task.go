package model

import "strings"

// TeamMember is one roster entry. Skills are normalized to lowercase,
// trimmed keywords at construction and never mutated afterwards.
type TeamMember struct {
	Name   string   `yaml:"name" json:"name"`
	Role   string   `yaml:"role" json:"role"`
	Skills []string `yaml:"skills" json:"skills"`
}

// NewTeamMember normalizes skills (lowercase, trimmed, empties dropped).
func NewTeamMember(name, role string, skills []string) TeamMember {
	normalized := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			normalized = append(normalized, s)
		}
	}
	return TeamMember{Name: name, Role: role, Skills: normalized}
}

// DraftTask is an extracted but not yet resolved task. It exists only
// within one pipeline invocation.
type DraftTask struct {
	Description       string
	RawText           string
	ExplicitMention   string
	DeadlinePhrase    string
	PrioritySignals   []string
	DependencyPhrases []string
}

// Task is a finalized task record. Created once by the pipeline and
// never mutated after the pipeline returns.
type Task struct {
	TaskNumber   int      `yaml:"task_number" json:"task_number"`
	Description  string   `yaml:"description" json:"description"`
	AssignedTo   *string  `yaml:"assigned_to" json:"assigned_to"`
	Deadline     *string  `yaml:"deadline" json:"deadline"`
	Priority     Priority `yaml:"priority" json:"priority"`
	Dependencies []int    `yaml:"dependencies" json:"dependencies"`
	Reasoning    string   `yaml:"reasoning" json:"reasoning"`
}

// PipelineResult aggregates one pipeline run. ErrorMessage is set only
// when Success is false, or to carry a non-fatal note (e.g. no tasks
// found) alongside a successful run.
type PipelineResult struct {
	Success      bool   `yaml:"success" json:"success"`
	Tasks        []Task `yaml:"tasks" json:"tasks"`
	Transcript   string `yaml:"transcript" json:"transcript"`
	ErrorMessage string `yaml:"error_message,omitempty" json:"error_message,omitempty"`
}
