package assign

import (
	"strings"
	"testing"

	"github.com/msageha/taskscribe/internal/model"
	"github.com/msageha/taskscribe/internal/roster"
)

func testDirectory(t *testing.T) *roster.Directory {
	t.Helper()
	dir, err := roster.New([]model.TeamMember{
		{Name: "Sakshi", Role: "Frontend Developer", Skills: []string{"frontend", "ui bugs", "login"}},
		{Name: "Mohit", Role: "Backend Developer", Skills: []string{"database", "apis", "performance"}},
		{Name: "Arjun", Role: "UI Designer", Skills: []string{"ui design", "wireframes"}},
		{Name: "Lata", Role: "QA Engineer", Skills: []string{"testing", "automation"}},
	})
	if err != nil {
		t.Fatalf("roster.New: %v", err)
	}
	return dir
}

func TestResolveExplicitMention(t *testing.T) {
	dir := testDirectory(t)
	task := model.DraftTask{
		Description:     "Fix critical login bug",
		ExplicitMention: "Sakshi",
	}

	r := Resolve(task, dir)
	if r.Member == nil || r.Member.Name != "Sakshi" {
		t.Fatalf("expected Sakshi, got %+v", r.Member)
	}
	if !strings.Contains(r.Reasoning, "Explicitly mentioned") {
		t.Errorf("expected explicit-mention rationale, got %q", r.Reasoning)
	}
}

func TestResolveExplicitMentionBeatsOverlap(t *testing.T) {
	dir := testDirectory(t)
	// Description overlaps Mohit's skills, but the mention wins.
	task := model.DraftTask{
		Description:     "Optimize database performance",
		ExplicitMention: "Lata",
	}

	r := Resolve(task, dir)
	if r.Member == nil || r.Member.Name != "Lata" {
		t.Fatalf("expected Lata, got %+v", r.Member)
	}
}

func TestResolveSkillOverlap(t *testing.T) {
	dir := testDirectory(t)
	task := model.DraftTask{Description: "Write unit tests for payment module"}

	r := Resolve(task, dir)
	if r.Member == nil || r.Member.Name != "Lata" {
		t.Fatalf("expected Lata via skill overlap, got %+v", r.Member)
	}
	if !strings.Contains(r.Reasoning, "Matched skills: testing") {
		t.Errorf("expected matched skills in rationale, got %q", r.Reasoning)
	}
	if !strings.Contains(r.Reasoning, "Role: QA Engineer") {
		t.Errorf("expected role in rationale, got %q", r.Reasoning)
	}
}

func TestResolveUnknownMentionFallsBack(t *testing.T) {
	dir := testDirectory(t)
	task := model.DraftTask{
		Description:     "Optimize database performance",
		ExplicitMention: "Priya", // not on the roster
	}

	r := Resolve(task, dir)
	if r.Member == nil || r.Member.Name != "Mohit" {
		t.Fatalf("expected fallback to Mohit, got %+v", r.Member)
	}
}

func TestResolveUnassigned(t *testing.T) {
	dir := testDirectory(t)
	task := model.DraftTask{Description: "Book the offsite venue"}

	r := Resolve(task, dir)
	if r.Member != nil {
		t.Fatalf("expected no assignee, got %+v", r.Member)
	}
	if r.Reasoning != "No matching skill or explicit mention found for this task" {
		t.Errorf("unexpected rationale: %q", r.Reasoning)
	}
}

func TestResolveTieBreaksByRosterOrder(t *testing.T) {
	dir, err := roster.New([]model.TeamMember{
		{Name: "First", Role: "Engineer", Skills: []string{"billing"}},
		{Name: "Second", Role: "Engineer", Skills: []string{"billing"}},
	})
	if err != nil {
		t.Fatalf("roster.New: %v", err)
	}

	r := Resolve(model.DraftTask{Description: "Refactor billing exports"}, dir)
	if r.Member == nil || r.Member.Name != "First" {
		t.Fatalf("expected roster order to break the tie, got %+v", r.Member)
	}
}
