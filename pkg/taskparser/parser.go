package taskparser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"timesheet-assistant/pkg/datemath"
)

// Parser turns free-text work descriptions into timesheet entries.
// It never fails: every field has a default.
//
// Date precedence per fragment:
//  1. fixed vocabulary token (weekday with optional last/next/previous,
//     today/yesterday/tomorrow, ISO date), resolved by datemath
//  2. general date-language match over the rest of the fragment
//  3. today
type Parser struct {
	dates        *datemath.Parser
	natural      *when.Parser
	defaultHours int
}

// New creates a Parser resolving dates in the timezone of dates.
func New(dates *datemath.Parser, opts ...Option) *Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	p := &Parser{
		dates:        dates,
		natural:      w,
		defaultHours: DefaultHours,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Split breaks text into task fragments on "," and " and ", keeping order.
func Split(text string) []string {
	parts := splitRe.Split(text, -1)
	fragments := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			fragments = append(fragments, part)
		}
	}
	return fragments
}

// Parse splits text and parses every fragment.
func (p *Parser) Parse(text string, now time.Time) []Entry {
	fragments := Split(text)
	entries := make([]Entry, 0, len(fragments))
	for _, f := range fragments {
		entries = append(entries, p.ParseFragment(f, now))
	}
	return entries
}

// ParseFragment extracts hours, date and label from a single fragment.
func (p *Parser) ParseFragment(fragment string, now time.Time) Entry {
	rest := fragment

	hours, hm := p.extractHours(rest)
	rest = cut(rest, hm)

	date, dm := p.extractDate(rest, now)
	rest = cut(rest, dm)

	e := Entry{
		Task:  p.cleanLabel(rest),
		Hours: hours,
		Date:  date,
	}
	if hm != nil && hm.fraction != "" {
		e.FractionalHours = hm.fraction
	}
	return e
}

// ParseHours returns the hours token of fragment, or the default hours.
// The result is always positive.
func (p *Parser) ParseHours(fragment string) int {
	hours, _ := p.extractHours(fragment)
	return hours
}

// ParseDate returns the ISO date referenced by fragment, or today.
func (p *Parser) ParseDate(fragment string, now time.Time) string {
	date, _ := p.extractDate(fragment, now)
	return date
}

func (p *Parser) extractHours(s string) (int, *match) {
	loc := hoursRe.FindStringSubmatchIndex(s)
	if loc == nil {
		return p.defaultHours, nil
	}

	m := &match{start: loc[0], end: loc[1], text: s[loc[0]:loc[1]]}
	raw := s[loc[2]:loc[3]]
	if !strings.Contains(raw, ".") {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return p.defaultHours, m
		}
		return n, m
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f <= 0 {
		return p.defaultHours, m
	}
	m.fraction = raw
	// Hours are whole numbers; round and keep at least one.
	return max(int(math.Round(f)), 1), m
}

func (p *Parser) extractDate(s string, now time.Time) (string, *match) {
	if loc := dateRe.FindStringIndex(s); loc != nil {
		token := s[loc[0]:loc[1]]
		m := &match{start: loc[0], end: loc[1], text: token}
		if t, err := p.dates.Parse(token, now); err == nil {
			return p.dates.FormatISO(t), m
		}
		// Unparseable tokens are still stripped from the label.
		return p.dates.FormatISO(now), m
	}

	if p.natural != nil {
		// when's rules only know lowercase words.
		lower := strings.ToLower(s)
		r, err := p.natural.Parse(lower, now)
		if err == nil && r != nil && r.Text != "" {
			t := p.preferPast(r.Text, r.Time, now)
			return p.dates.FormatISO(t), locate(s, lower, r.Index, r.Text)
		}
	}

	return p.dates.FormatISO(now), nil
}

// preferPast moves a bare weekday or month/day match that landed after today
// back by a week or a year. Explicitly future phrases are left alone.
func (p *Parser) preferPast(text string, t, now time.Time) time.Time {
	endOfToday := p.dates.EndOfDay(p.dates.StartOfDay(now))
	if !t.After(endOfToday) || futureRe.MatchString(text) {
		return t
	}
	switch {
	case weekdayWordRe.MatchString(text):
		for t.After(endOfToday) {
			t = t.AddDate(0, 0, -7)
		}
	case monthWordRe.MatchString(text):
		for t.After(endOfToday) {
			t = t.AddDate(-1, 0, 0)
		}
	}
	return t
}

// locate maps a match found in lower back onto the original s.
func locate(s, lower string, idx int, text string) *match {
	if len(lower) == len(s) && idx >= 0 && idx+len(text) <= len(s) {
		return &match{start: idx, end: idx + len(text), text: s[idx : idx+len(text)]}
	}
	loc := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(text)).FindStringIndex(s)
	if loc == nil {
		return nil
	}
	return &match{start: loc[0], end: loc[1], text: s[loc[0]:loc[1]]}
}

func (p *Parser) cleanLabel(s string) string {
	s = fillerRe.ReplaceAllString(s, " ")
	s = strings.Join(strings.Fields(s), " ")
	s = strings.Trim(s, " .;:-")
	if s == "" {
		return DefaultLabel
	}

	r, size := utf8.DecodeRuneInString(s)
	// Casers keep state, so one is built per call.
	return cases.Upper(language.English).String(string(r)) + s[size:]
}

// cut removes m from s, leaving a space so neighbouring words stay apart.
func cut(s string, m *match) string {
	if m == nil || m.start < 0 || m.end > len(s) || m.start > m.end {
		return s
	}
	return s[:m.start] + " " + s[m.end:]
}
