package tools

import (
	"context"
	"errors"
	"strings"

	"timesheet-assistant/internal/agent"
	"timesheet-assistant/pkg/taskparser"
)

// ParseTasksTool runs the deterministic task parser over free text.
type ParseTasksTool struct {
	parser *taskparser.Parser
	clock  Clock
}

func NewParseTasksTool(parser *taskparser.Parser, clock Clock) *ParseTasksTool {
	return &ParseTasksTool{parser: parser, clock: clock}
}

func (t *ParseTasksTool) Name() string {
	return "parse_tasks"
}

func (t *ParseTasksTool) Description() string {
	return "Split a free-text work description into timesheet entries with task, hours (default 8) and date (default today)."
}

func (t *ParseTasksTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"text": map[string]interface{}{
				"type":        "string",
				"description": "Work description, e.g. 'fixed bug yesterday 3h, wrote docs friday'",
			},
		},
		"required": []string{"text"},
	}
}

type ParseTasksInput struct {
	Text string `json:"text"`
}

type ParseTasksOutput struct {
	Entries []taskparser.Entry `json:"entries"`
	Count   int                `json:"count"`
}

func (t *ParseTasksTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var params ParseTasksInput
	if err := decodeInput(input, &params); err != nil {
		return nil, err
	}
	if strings.TrimSpace(params.Text) == "" {
		return nil, errors.New("text is required")
	}

	entries := t.parser.Parse(params.Text, t.clock.now())
	return ParseTasksOutput{Entries: entries, Count: len(entries)}, nil
}

var _ agent.Tool = (*ParseTasksTool)(nil)
