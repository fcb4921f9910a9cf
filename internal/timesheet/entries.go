package timesheet

import (
	"encoding/json"
	"strings"

	"timesheet-assistant/pkg/taskparser"
)

// DecodeEntries reads a JSON array of {date, task, hours} objects out of an
// agent reply. Markdown code fences and text around the array are tolerated.
func DecodeEntries(reply string) ([]taskparser.Entry, error) {
	raw := extractJSONArray(reply)
	if raw == "" {
		return nil, ErrNotEntryList
	}

	var entries []taskparser.Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, ErrNotEntryList
	}
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	for i := range entries {
		entries[i].Task = strings.TrimSpace(entries[i].Task)
		entries[i].Date = strings.TrimSpace(entries[i].Date)
	}
	return entries, nil
}

func extractJSONArray(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start == -1 || end <= start {
		return ""
	}
	return s[start : end+1]
}
