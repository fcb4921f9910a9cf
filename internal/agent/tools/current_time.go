package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	_ "time/tzdata"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"timesheet-assistant/internal/agent"
)

var cityTimezones = map[string]string{
	"new york":    "America/New_York",
	"london":      "Europe/London",
	"tokyo":       "Asia/Tokyo",
	"paris":       "Europe/Paris",
	"dubai":       "Asia/Dubai",
	"sydney":      "Australia/Sydney",
	"mumbai":      "Asia/Kolkata",
	"ahmedabad":   "Asia/Kolkata",
	"toronto":     "America/Toronto",
	"los angeles": "America/Los_Angeles",
}

// CurrentTimeTool reports the wall-clock time in a known city.
type CurrentTimeTool struct {
	clock Clock
}

func NewCurrentTimeTool(clock Clock) *CurrentTimeTool {
	return &CurrentTimeTool{clock: clock}
}

func (t *CurrentTimeTool) Name() string {
	return "current_time"
}

func (t *CurrentTimeTool) Description() string {
	return "Return the current local time in a city. Known cities: " + strings.Join(knownCities(), ", ") + "."
}

func (t *CurrentTimeTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"city": map[string]interface{}{
				"type":        "string",
				"description": "City name, e.g. 'London'",
			},
		},
		"required": []string{"city"},
	}
}

type CurrentTimeInput struct {
	City string `json:"city"`
}

type CurrentTimeOutput struct {
	Status  string `json:"status"`
	City    string `json:"city,omitempty"`
	Time    string `json:"time,omitempty"`
	Message string `json:"message,omitempty"`
}

func (t *CurrentTimeTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var params CurrentTimeInput
	if err := decodeInput(input, &params); err != nil {
		return nil, err
	}

	city := strings.ToLower(strings.TrimSpace(params.City))
	tzName, ok := cityTimezones[city]
	if !ok {
		return CurrentTimeOutput{
			Status:  "error",
			Message: fmt.Sprintf("City '%s' not recognized. Try one from the list: %s", params.City, strings.Join(knownCities(), ", ")),
		}, nil
	}

	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return CurrentTimeOutput{Status: "error", Message: err.Error()}, nil
	}

	return CurrentTimeOutput{
		Status: "success",
		City:   cases.Title(language.English).String(city),
		Time:   t.clock.now().In(loc).Format("03:04 PM"),
	}, nil
}

func knownCities() []string {
	cities := make([]string, 0, len(cityTimezones))
	for c := range cityTimezones {
		cities = append(cities, c)
	}
	sort.Strings(cities)
	return cities
}

var _ agent.Tool = (*CurrentTimeTool)(nil)
