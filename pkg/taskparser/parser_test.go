package taskparser_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet-assistant/pkg/datemath"
	"timesheet-assistant/pkg/taskparser"
)

// Wednesday, May 1, 2024
var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newParser(t *testing.T, opts ...taskparser.Option) *taskparser.Parser {
	t.Helper()
	dm, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	return taskparser.New(dm, opts...)
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "comma and conjunction", in: "wrote report friday 3h and filed taxes", want: []string{"wrote report friday 3h", "filed taxes"}},
		{name: "commas", in: "fixed bug yesterday 3h, wrote docs friday", want: []string{"fixed bug yesterday 3h", "wrote docs friday"}},
		{name: "uppercase AND", in: "design AND review", want: []string{"design", "review"}},
		{name: "and inside word", in: "handover to sandra", want: []string{"handover to sandra"}},
		{name: "empty fragments dropped", in: " , standup,, ", want: []string{"standup"}},
		{name: "blank", in: "   ", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := taskparser.Split(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Split() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseHours(t *testing.T) {
	p := newParser(t)

	tests := []struct {
		in   string
		want int
	}{
		{in: "fixed bug 3h", want: 3},
		{in: "meeting 2 hours", want: 2},
		{in: "meeting 1 hour", want: 1},
		{in: "review 4hrs", want: 4},
		{in: "review 5 HR", want: 5},
		{in: "standup", want: 8},
		{in: "nothing 0h", want: 8},
		{in: "overflow 99999999999999999999h", want: 8},
		{in: "long day 30h", want: 30},
		{in: "room 3hx", want: 8},
		{in: "fixed bug 3.5h", want: 4},
		{in: "quick call 0.25 hours", want: 1},
		{in: "nothing 0.0h", want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := p.ParseHours(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Positive(t, got)
		})
	}
}

func TestParseFragment_FractionalHours(t *testing.T) {
	p := newParser(t)

	got := p.ParseFragment("fixed bug 3.5h", now)
	assert.Equal(t, taskparser.Entry{Task: "Fixed bug", Hours: 4, Date: "2024-05-01", FractionalHours: "3.5"}, got)

	issues := taskparser.ValidateEntry(got, taskparser.MaxHours)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "3.5")

	got = p.ParseFragment("fixed bug 3h", now)
	assert.Empty(t, got.FractionalHours)
}

func TestParseHours_DefaultOverride(t *testing.T) {
	p := newParser(t, taskparser.WithDefaultHours(6))
	assert.Equal(t, 6, p.ParseHours("standup"))

	p = newParser(t, taskparser.WithDefaultHours(-1))
	assert.Equal(t, taskparser.DefaultHours, p.ParseHours("standup"))
}

func TestParseDate(t *testing.T) {
	p := newParser(t)

	tests := []struct {
		in   string
		want string
	}{
		{in: "fixed bug yesterday", want: "2024-04-30"},
		{in: "plan tomorrow", want: "2024-05-02"},
		{in: "today", want: "2024-05-01"},
		{in: "wrote docs friday", want: "2024-04-26"},
		{in: "wrote docs Wednesday", want: "2024-05-01"},
		{in: "sync next monday", want: "2024-05-06"},
		{in: "sync last monday", want: "2024-04-29"},
		{in: "retro previous wednesday", want: "2024-04-24"},
		{in: "release 2024-03-15", want: "2024-03-15"},
		{in: "release 2024-13-45", want: "2024-05-01"},
		{in: "standup", want: "2024-05-01"},
		{in: "", want: "2024-05-01"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := p.ParseDate(tt.in, now)
			assert.Equal(t, tt.want, got)
			_, err := time.Parse(datemath.ISOLayout, got)
			assert.NoError(t, err)
		})
	}
}

func TestParseFragment(t *testing.T) {
	p := newParser(t)

	tests := []struct {
		name string
		in   string
		want taskparser.Entry
	}{
		{
			name: "hours and relative day",
			in:   "fixed bug yesterday 3h",
			want: taskparser.Entry{Task: "Fixed bug", Hours: 3, Date: "2024-04-30"},
		},
		{
			name: "defaults",
			in:   "standup",
			want: taskparser.Entry{Task: "Standup", Hours: 8, Date: "2024-05-01"},
		},
		{
			name: "filler words removed",
			in:   "worked on the migration for a client on monday 5 hours",
			want: taskparser.Entry{Task: "Worked migration client", Hours: 5, Date: "2024-04-29"},
		},
		{
			name: "only tokens",
			in:   "3h yesterday",
			want: taskparser.Entry{Task: "Task", Hours: 3, Date: "2024-04-30"},
		},
		{
			name: "acronyms kept",
			in:   "reviewed PRs next friday 2hrs",
			want: taskparser.Entry{Task: "Reviewed PRs", Hours: 2, Date: "2024-05-03"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.ParseFragment(tt.in, now)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseFragment() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse(t *testing.T) {
	p := newParser(t)

	got := p.Parse("fixed bug yesterday 3h, wrote docs friday and standup", now)
	want := []taskparser.Entry{
		{Task: "Fixed bug", Hours: 3, Date: "2024-04-30"},
		{Task: "Wrote docs", Hours: 8, Date: "2024-04-26"},
		{Task: "Standup", Hours: 8, Date: "2024-05-01"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, p.Parse("  ", now))
}

func TestParse_NaturalLanguageFallback(t *testing.T) {
	p := newParser(t)

	got := p.ParseFragment("reviewed pull requests 2 days ago", now)
	assert.Equal(t, "2024-04-29", got.Date)
	assert.True(t, strings.HasPrefix(got.Task, "Reviewed pull requests"), got.Task)
	assert.NotContains(t, got.Task, "ago")
	assert.Equal(t, 8, got.Hours)

	tests := []struct {
		name     string
		fragment string
		wantDate string
		wantTask string
	}{
		{name: "short weekday prefers past", fragment: "reviewed PR on mon", wantDate: "2024-04-29", wantTask: "Reviewed PR"},
		{name: "month and day prefers past", fragment: "wrote report december 5", wantDate: "2023-12-05", wantTask: "Wrote report"},
		{name: "past month and day kept", fragment: "wrote report april 3", wantDate: "2024-04-03", wantTask: "Wrote report"},
		{name: "explicit future kept", fragment: "planning in 2 days", wantDate: "2024-05-03", wantTask: "Planning"},
		{name: "mixed case phrase", fragment: "Wrote docs 3 Days Ago", wantDate: "2024-04-28", wantTask: "Wrote docs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.ParseFragment(tt.fragment, now)
			assert.Equal(t, tt.wantDate, got.Date)
			assert.Equal(t, tt.wantTask, got.Task)
		})
	}

	got = p.ParseFragment("deploy 3 Days Ago 2h", now)
	assert.Equal(t, taskparser.Entry{Task: "Deploy", Hours: 2, Date: "2024-04-28"}, got)

	offline := newParser(t, taskparser.WithoutNaturalLanguage())
	got = offline.ParseFragment("reviewed pull requests 2 days ago", now)
	assert.Equal(t, "2024-05-01", got.Date)
}

func TestParse_Timezone(t *testing.T) {
	dm, err := datemath.NewParser("Asia/Tokyo")
	require.NoError(t, err)
	p := taskparser.New(dm)

	// 20:00 UTC on May 1 is already May 2 in Tokyo.
	late := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	got := p.ParseFragment("standup", late)
	assert.Equal(t, "2024-05-02", got.Date)
}
