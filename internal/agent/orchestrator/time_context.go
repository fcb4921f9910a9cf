package orchestrator

import (
	"fmt"
	"time"
)

// DateFormatISO is the only date format the agent is asked to produce.
const DateFormatISO = "2006-01-02"

// buildTimeContext creates a temporal context string for LLM
func buildTimeContext(now time.Time) string {
	// Monday-Sunday week
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	weekStart := now.AddDate(0, 0, -(weekday - 1))
	weekEnd := weekStart.AddDate(0, 0, 6)

	return fmt.Sprintf(
		TimeContextTemplate,
		now.Format(DateFormatISO),
		now.Weekday().String(),
		now.AddDate(0, 0, -1).Format(DateFormatISO),
		weekStart.Format(DateFormatISO),
		weekEnd.Format(DateFormatISO),
	)
}
