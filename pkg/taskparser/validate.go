package taskparser

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"

	"timesheet-assistant/pkg/datemath"
)

// MaxHours is the upper bound of hours a single entry may carry.
const MaxHours = 24

// Issue describes one rule an entry breaks. Entries are never changed or
// dropped by validation; issues are reported next to them.
type Issue struct {
	Index   int    `json:"index"`
	Entry   Entry  `json:"entry"`
	Message string `json:"message"`
}

func (i Issue) Error() string {
	return fmt.Sprintf("entry %d (%s): %s", i.Index+1, i.Entry.Task, i.Message)
}

// Validate checks every entry and returns a *multierror.Error of Issue values,
// or nil when all entries pass. maxHours <= 0 means MaxHours.
func Validate(entries []Entry, maxHours int) error {
	if maxHours <= 0 {
		maxHours = MaxHours
	}

	var result *multierror.Error
	for i, e := range entries {
		for _, msg := range check(e, maxHours) {
			result = multierror.Append(result, Issue{Index: i, Entry: e, Message: msg})
		}
	}
	return result.ErrorOrNil()
}

// ValidateEntry checks a single entry.
func ValidateEntry(e Entry, maxHours int) []Issue {
	return Issues(Validate([]Entry{e}, maxHours))
}

// Issues unpacks the error returned by Validate.
func Issues(err error) []Issue {
	if err == nil {
		return nil
	}

	var merr *multierror.Error
	if !errors.As(err, &merr) {
		return nil
	}

	issues := make([]Issue, 0, len(merr.Errors))
	for _, e := range merr.Errors {
		var issue Issue
		if errors.As(e, &issue) {
			issues = append(issues, issue)
		}
	}
	return issues
}

func check(e Entry, maxHours int) []string {
	var msgs []string
	if strings.TrimSpace(e.Task) == "" {
		msgs = append(msgs, "task is empty")
	}
	if e.Hours <= 0 {
		msgs = append(msgs, "hours must be positive")
	}
	if e.Hours > maxHours {
		msgs = append(msgs, fmt.Sprintf("invalid hours %d, must not exceed %d", e.Hours, maxHours))
	}
	if e.FractionalHours != "" {
		msgs = append(msgs, fmt.Sprintf("fractional hours %s rounded to %d", e.FractionalHours, e.Hours))
	}
	if _, err := time.Parse(datemath.ISOLayout, e.Date); err != nil {
		msgs = append(msgs, fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", e.Date))
	}
	return msgs
}
