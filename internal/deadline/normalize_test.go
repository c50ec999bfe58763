package deadline

import (
	"testing"
	"time"
)

// ref is a Monday.
var ref = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func TestNormalize(t *testing.T) {
	tests := []struct {
		phrase string
		want   string
	}{
		{"today", "2025-06-02"},
		{"tonight", "2025-06-02"},
		{"tomorrow", "2025-06-03"},
		{"tomorrow evening", "2025-06-03"},
		{"tomorrow morning", "2025-06-03"},
		{"next week", "2025-06-09"},
		{"end of this week", "2025-06-06"},
		{"end of week", "2025-06-06"},
		{"end of next week", "2025-06-13"},
		{"end of month", "2025-06-30"},
		{"next monday", "2025-06-09"},
		{"next friday", "2025-06-06"},
		{"by friday", "2025-06-06"},
		{"by wednesday", "2025-06-04"},
		{"before thursday", "2025-06-05"}, // embedded weekday scan
		{"in 3 days", "2025-06-05"},
		{"in 2 weeks", "2025-06-16"},
		{"5 days", "2025-06-07"},
		{"friday", "2025-06-06"},
		{"wednesday", "2025-06-04"},
		{"monday", "2025-06-09"}, // strictly future: ref itself is Monday
		{"someday maybe", "someday maybe"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.phrase, ref); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.phrase, got, tt.want)
		}
	}
}

func TestNormalizeZeroReferencePassesThrough(t *testing.T) {
	if got := Normalize("tomorrow", time.Time{}); got != "tomorrow" {
		t.Errorf("expected verbatim passthrough with zero ref, got %q", got)
	}
}

func TestResolveEmbeddedWeekday(t *testing.T) {
	d, ok := Resolve("friday release", ref)
	if !ok {
		t.Fatal("expected embedded weekday to resolve")
	}
	if d.Format("2006-01-02") != "2025-06-06" {
		t.Errorf("expected 2025-06-06, got %s", d.Format("2006-01-02"))
	}

	if _, ok := Resolve("sometime soon", ref); ok {
		t.Error("expected unrecognized phrase to stay unresolved")
	}
}

func TestEndOfWeekFromWeekend(t *testing.T) {
	saturday := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	d, ok := Resolve("end of this week", saturday)
	if !ok {
		t.Fatal("expected resolution")
	}
	if d.Format("2006-01-02") != "2025-06-13" {
		t.Errorf("expected the coming Friday, got %s", d.Format("2006-01-02"))
	}
}

func TestEndOfMonthCrossing(t *testing.T) {
	jan := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	d, ok := Resolve("end of this month", jan)
	if !ok {
		t.Fatal("expected resolution")
	}
	if d.Format("2006-01-02") != "2025-01-31" {
		t.Errorf("expected 2025-01-31, got %s", d.Format("2006-01-02"))
	}
}
