package tools

import (
	"context"
	"fmt"
	"strings"

	"timesheet-assistant/internal/agent"
	"timesheet-assistant/pkg/datemath"
	pkgLog "timesheet-assistant/pkg/log"
)

// DateTool resolves relative date expressions into ISO dates.
type DateTool struct {
	dates *datemath.Parser
	clock Clock
	l     pkgLog.Logger
}

func NewDateTool(dates *datemath.Parser, clock Clock, l pkgLog.Logger) *DateTool {
	return &DateTool{dates: dates, clock: clock, l: l}
}

func (t *DateTool) Name() string {
	return "date_tool"
}

func (t *DateTool) Description() string {
	return "Convert a relative date such as 'today', 'yesterday', 'last friday' or 'in 2 days' into YYYY-MM-DD. Unrecognized input resolves to today."
}

func (t *DateTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"date_str": map[string]interface{}{
				"type":        "string",
				"description": "Relative or absolute date expression",
			},
		},
		"required": []string{"date_str"},
	}
}

type DateToolInput struct {
	DateStr string `json:"date_str"`
}

type DateToolOutput struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
}

func (t *DateTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var params DateToolInput
	if err := decodeInput(input, &params); err != nil {
		return nil, err
	}

	expr := strings.TrimSpace(params.DateStr)
	resolved, err := t.dates.Parse(expr, t.clock.now())
	if err != nil {
		t.l.Warnf(ctx, "internal.agent.tools.DateTool.Execute: %q: %v", expr, err)
		return nil, fmt.Errorf("cannot resolve date %q: %w", expr, err)
	}

	return DateToolOutput{
		Date:    t.dates.FormatISO(resolved),
		Weekday: resolved.Weekday().String(),
	}, nil
}

var _ agent.Tool = (*DateTool)(nil)
