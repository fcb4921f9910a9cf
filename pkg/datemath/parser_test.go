package datemath_test

import (
	"testing"
	"time"

	"timesheet-assistant/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Kolkata")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{
			name:     "Today",
			relative: "today",
			want:     startOfBase,
		},
		{
			name:     "Tomorrow",
			relative: "Tomorrow",
			want:     startOfBase.AddDate(0, 0, 1),
		},
		{
			name:     "Yesterday",
			relative: "  yesterday ",
			want:     startOfBase.AddDate(0, 0, -1),
		},
		{
			name:     "In 3 days",
			relative: "in 3 days",
			want:     startOfBase.AddDate(0, 0, 3),
		},
		{
			name:     "In 2 weeks",
			relative: "in 2 weeks",
			want:     startOfBase.AddDate(0, 0, 14),
		},
		{
			name:     "In 1 month",
			relative: "in 1 month",
			want:     startOfBase.AddDate(0, 1, 0),
		},
		{
			name:     "Invalid duration pattern",
			relative: "in a few days",
			want:     baseTime,
			wantErr:  true,
		},
		{
			name:     "Next Monday (from Wed)",
			relative: "next monday",
			want:     startOfBase.AddDate(0, 0, 5),
		},
		{
			name:     "Next Wednesday (from Wed)",
			relative: "next wednesday",
			want:     startOfBase.AddDate(0, 0, 7),
		},
		{
			name:     "Last Monday (from Wed)",
			relative: "last monday",
			want:     startOfBase.AddDate(0, 0, -2),
		},
		{
			name:     "Previous Wednesday (from Wed)",
			relative: "previous wednesday",
			want:     startOfBase.AddDate(0, 0, -7),
		},
		{
			name:     "Last Thursday (from Wed)",
			relative: "last   thursday",
			want:     startOfBase.AddDate(0, 0, -6),
		},
		{
			name:     "Bare Friday prefers past",
			relative: "friday",
			want:     startOfBase.AddDate(0, 0, -5),
		},
		{
			name:     "Bare Wednesday is today",
			relative: "wednesday",
			want:     startOfBase,
		},
		{
			name:     "ISO date",
			relative: "2024-04-15",
			want:     time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Invalid ISO date falls back to today",
			relative: "2024-13-45",
			want:     startOfBase,
		},
		{
			name:     "Unknown fallback",
			relative: "some random day",
			want:     startOfBase,
		},
		{
			name:     "Invalid Next Weekday",
			relative: "next funday",
			want:     baseTime,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRelativeWeekdayNeverToday(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	names := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

	for offset := 0; offset < 7; offset++ {
		base := time.Date(2024, 5, 6+offset, 9, 0, 0, 0, time.UTC)
		today := parser.StartOfDay(base)
		for _, name := range names {
			next, err := parser.Parse("next "+name, base)
			if err != nil {
				t.Fatalf("next %s: %v", name, err)
			}
			days := int(next.Sub(today).Hours() / 24)
			if days < 1 || days > 7 {
				t.Errorf("next %s from %s: got %d days ahead", name, base.Weekday(), days)
			}

			last, err := parser.Parse("last "+name, base)
			if err != nil {
				t.Fatalf("last %s: %v", name, err)
			}
			days = int(today.Sub(last).Hours() / 24)
			if days < 1 || days > 7 {
				t.Errorf("last %s from %s: got %d days back", name, base.Weekday(), days)
			}
		}
	}
}

func TestDaysUntilSince(t *testing.T) {
	if got := datemath.DaysUntil(time.Monday, time.Monday, false); got != 0 {
		t.Errorf("DaysUntil non-strict same day = %d, want 0", got)
	}
	if got := datemath.DaysUntil(time.Monday, time.Monday, true); got != 7 {
		t.Errorf("DaysUntil strict same day = %d, want 7", got)
	}
	if got := datemath.DaysSince(time.Monday, time.Sunday, true); got != 1 {
		t.Errorf("DaysSince(Mon, Sun) = %d, want 1", got)
	}
	if got := datemath.DaysUntil(time.Saturday, time.Monday, true); got != 2 {
		t.Errorf("DaysUntil(Sat, Mon) = %d, want 2", got)
	}
}

func TestEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	want := time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)

	got := parser.EndOfDay(base)
	if !got.Equal(want) {
		t.Errorf("EndOfDay() got = %v, want %v", got, want)
	}
}

func TestFormatISO(t *testing.T) {
	parser, _ := datemath.NewParser("Asia/Tokyo")
	base := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC) // already May 2 in Tokyo

	if got := parser.FormatISO(base); got != "2024-05-02" {
		t.Errorf("FormatISO() = %s, want 2024-05-02", got)
	}
}
