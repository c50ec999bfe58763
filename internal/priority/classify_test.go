package priority

import (
	"testing"
	"time"

	"github.com/msageha/taskscribe/internal/model"
)

var ref = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC) // a Monday

func day(offset int) time.Time {
	return ref.AddDate(0, 0, offset)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want model.Priority
	}{
		{
			name: "critical keyword",
			in:   Input{Text: "Fix critical login bug"},
			want: model.PriorityCritical,
		},
		{
			name: "urgent signal",
			in:   Input{Text: "Patch the parser", Signals: []string{"urgent"}},
			want: model.PriorityCritical,
		},
		{
			name: "critical beats imminent deadline",
			in:   Input{Text: "Server is down", Deadline: day(0), Ref: ref},
			want: model.PriorityCritical,
		},
		{
			name: "deadline today",
			in:   Input{Text: "Ship the patch", Deadline: day(0), Ref: ref},
			want: model.PriorityHigh,
		},
		{
			name: "deadline tomorrow",
			in:   Input{Text: "Ship the patch", Deadline: day(1), Ref: ref},
			want: model.PriorityHigh,
		},
		{
			name: "high keyword without deadline",
			in:   Input{Text: "Update docs, this is high priority"},
			want: model.PriorityHigh,
		},
		{
			name: "affecting users",
			in:   Input{Text: "Slow queries", Signals: []string{"affecting the user"}},
			want: model.PriorityHigh,
		},
		{
			name: "deadline within the week",
			in:   Input{Text: "Refresh the dashboard", Deadline: day(4), Ref: ref},
			want: model.PriorityMedium,
		},
		{
			name: "deadline exactly a week out",
			in:   Input{Text: "Refresh the dashboard", Deadline: day(7), Ref: ref},
			want: model.PriorityMedium,
		},
		{
			name: "moderate keyword",
			in:   Input{Text: "We should clean up the build scripts"},
			want: model.PriorityMedium,
		},
		{
			name: "low keyword",
			in:   Input{Text: "Reorganize the wiki when possible"},
			want: model.PriorityLow,
		},
		{
			name: "deadline beyond the week",
			in:   Input{Text: "Plan the offsite", Deadline: day(12), Ref: ref},
			want: model.PriorityLow,
		},
		{
			name: "no signals at all",
			in:   Input{Text: "Rename the staging bucket"},
			want: model.PriorityLow,
		},
		{
			name: "past deadline ignored",
			in:   Input{Text: "Archive old reports", Deadline: day(-3), Ref: ref},
			want: model.PriorityLow,
		},
		{
			name: "deadline without reference date ignored",
			in:   Input{Text: "Archive old reports", Deadline: day(1)},
			want: model.PriorityLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.in); got != tt.want {
				t.Errorf("Classify = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassifyIsTotal(t *testing.T) {
	if got := Classify(Input{}); got != model.PriorityLow {
		t.Errorf("expected Low for empty input, got %q", got)
	}
}
