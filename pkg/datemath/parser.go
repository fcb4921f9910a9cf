package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ISOLayout is the only date layout the timesheet emits.
const ISOLayout = "2006-01-02"

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	relWeekdayRe = regexp.MustCompile(`^(last|previous|next) ([a-z]+)$`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser converts relative date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Kolkata"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a relative date string to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.Join(strings.Fields(strings.ToLower(relative)), " ")

	switch relative {
	case "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	// Handle "last/previous/next <weekday>"
	if m := relWeekdayRe.FindStringSubmatch(relative); m != nil {
		return p.parseRelativeWeekday(m[1], m[2], baseTime)
	}

	// Bare weekday prefers the past
	if wd, ok := Weekday(relative); ok {
		return p.StartOfDay(baseTime.AddDate(0, 0, -DaysSince(baseTime.In(p.location).Weekday(), wd, false))), nil
	}

	if d, err := time.ParseInLocation(ISOLayout, relative, p.location); err == nil {
		return d, nil
	}

	// Fallback: treat unknown as today
	return p.StartOfDay(baseTime), nil
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return baseTime, fmt.Errorf("invalid duration amount %q: %w", matches[1], err)
	}
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.StartOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseRelativeWeekday handles "next friday", "last monday", "previous sunday".
// A zero offset never resolves to the base day: it moves a full week.
func (p *Parser) parseRelativeWeekday(direction, dayName string, baseTime time.Time) (time.Time, error) {
	target, ok := Weekday(dayName)
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	current := baseTime.In(p.location).Weekday()
	if direction == "next" {
		return p.StartOfDay(baseTime.AddDate(0, 0, DaysUntil(current, target, true))), nil
	}
	return p.StartOfDay(baseTime.AddDate(0, 0, -DaysSince(current, target, true))), nil
}

// Weekday looks up an English weekday name.
func Weekday(name string) (time.Weekday, bool) {
	wd, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	return wd, ok
}

// DaysUntil returns how many days forward target lies from current (0..6).
// With strict set, a zero offset becomes 7.
func DaysUntil(current, target time.Weekday, strict bool) int {
	d := (int(target) - int(current) + 7) % 7
	if d == 0 && strict {
		d = 7
	}
	return d
}

// DaysSince returns how many days back target lies from current (0..6).
// With strict set, a zero offset becomes 7.
func DaysSince(current, target time.Weekday, strict bool) int {
	d := (int(current) - int(target) + 7) % 7
	if d == 0 && strict {
		d = 7
	}
	return d
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// FormatISO formats t as YYYY-MM-DD in the parser's timezone.
func (p *Parser) FormatISO(t time.Time) string {
	return t.In(p.location).Format(ISOLayout)
}
