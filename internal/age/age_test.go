package age

import (
	"testing"
	"time"
)

func TestAgeData(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		then time.Time
		want time.Duration
		ok   bool
	}{
		{
			name: "zero time has no data",
			then: time.Time{},
			want: 0,
			ok:   false,
		},
		{
			name: "past timestamp",
			then: now.Add(-10 * time.Minute),
			want: 10 * time.Minute,
			ok:   true,
		},
		{
			name: "future timestamp clamps to zero",
			then: now.Add(4 * time.Minute),
			want: 0,
			ok:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := AgeData(tc.then, now)
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
			}
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestLeadData(t *testing.T) {
	created := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	completed := created.Add(3 * time.Minute)

	if _, ok := LeadData(created, nil); ok {
		t.Fatal("expected no data without completion timestamp")
	}
	if _, ok := LeadData(time.Time{}, &completed); ok {
		t.Fatal("expected no data without creation timestamp")
	}

	got, ok := LeadData(created, &completed)
	if !ok {
		t.Fatal("expected timing data")
	}
	if got != 3*time.Minute {
		t.Fatalf("expected 3m, got %v", got)
	}
}
