package tools

import (
	"context"
	"fmt"
	"strings"

	"timesheet-assistant/internal/agent"
	"timesheet-assistant/pkg/taskparser"
)

// ValidationTool checks one timesheet entry against the hours and date rules.
type ValidationTool struct {
	maxHours int
}

func NewValidationTool(maxHours int) *ValidationTool {
	return &ValidationTool{maxHours: maxHours}
}

func (t *ValidationTool) Name() string {
	return "validation_tool"
}

func (t *ValidationTool) Description() string {
	return "Validate a timesheet entry. Hours must be between 1 and 24 and the date must be YYYY-MM-DD."
}

func (t *ValidationTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"entry": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"task":  map[string]interface{}{"type": "string"},
					"hours": map[string]interface{}{"type": "integer"},
					"date":  map[string]interface{}{"type": "string"},
				},
				"required": []string{"task", "hours", "date"},
			},
		},
		"required": []string{"entry"},
	}
}

type ValidationToolInput struct {
	Entry taskparser.Entry `json:"entry"`
}

type ValidationToolOutput struct {
	Status string   `json:"status,omitempty"`
	Error  string   `json:"error,omitempty"`
	Issues []string `json:"issues,omitempty"`
}

func (t *ValidationTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var params ValidationToolInput
	if err := decodeInput(input, &params); err != nil {
		return nil, err
	}

	issues := taskparser.ValidateEntry(params.Entry, t.maxHours)
	if len(issues) == 0 {
		return ValidationToolOutput{Status: "ok"}, nil
	}

	msgs := make([]string, len(issues))
	for i, issue := range issues {
		msgs[i] = issue.Message
	}
	return ValidationToolOutput{
		Error:  fmt.Sprintf("Invalid entry %q: %s", params.Entry.Task, strings.Join(msgs, "; ")),
		Issues: msgs,
	}, nil
}

var _ agent.Tool = (*ValidationTool)(nil)
