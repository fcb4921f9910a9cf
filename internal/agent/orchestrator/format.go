package orchestrator

import (
	"context"
	"encoding/json"
	"strings"

	"timesheet-assistant/pkg/llmprovider"
)

// EntrySchema is the structured output shape of a timesheet turn.
func EntrySchema() *llmprovider.Schema {
	return &llmprovider.Schema{
		Type: "array",
		Items: &llmprovider.Schema{
			Type: "object",
			Properties: map[string]*llmprovider.Schema{
				"date":  {Type: "string", Format: "date", Description: "YYYY-MM-DD"},
				"task":  {Type: "string"},
				"hours": {Type: "integer"},
			},
			Required: []string{"date", "task", "hours"},
		},
	}
}

// needsFormatting is true when a timesheet tool ran during the turn and the
// draft answer is not already a JSON array.
func (o *Orchestrator) needsFormatting(observed []llmprovider.FunctionResponse, answer string) bool {
	if isJSONArray(answer) {
		return false
	}
	for _, fr := range observed {
		if o.formatWith[fr.Name] {
			return true
		}
	}
	return false
}

// formatEntries asks the model, without tools, to restate the turn under
// EntrySchema. Any failure keeps the draft.
func (o *Orchestrator) formatEntries(ctx context.Context, query, draft string, observed []llmprovider.FunctionResponse) string {
	instruction := FormatInstruction
	if len(observed) > 0 {
		var b strings.Builder
		b.WriteString(instruction)
		b.WriteString("\n\nTool results:")
		for _, fr := range observed {
			raw, _ := json.Marshal(fr.Response)
			b.WriteString("\n- " + fr.Name + ": " + string(raw))
		}
		instruction = b.String()
	}

	now := o.now().In(o.loc)
	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Parts: []llmprovider.Part{{Text: SystemPromptFormat + buildTimeContext(now)}}},
		Messages: []llmprovider.Message{
			textMessage(llmprovider.RoleUser, query),
			textMessage(llmprovider.RoleAssistant, draft),
			textMessage(llmprovider.RoleUser, instruction),
		},
		Temperature:      DefaultTemperature,
		ResponseMIMEType: llmprovider.MIMETypeJSON,
		ResponseSchema:   EntrySchema(),
	}

	resp, err := o.llm.GenerateContent(ctx, req)
	if err != nil {
		o.l.Warnf(ctx, LogMsgFormatFailed, LogPrefixFormatEntries, err)
		return draft
	}
	out := strings.TrimSpace(resp.Text())
	if !isJSONArray(out) {
		o.l.Warnf(ctx, LogMsgFormatFailed, LogPrefixFormatEntries, "reply is not a JSON array")
		return draft
	}
	return out
}

func isJSONArray(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "[") && json.Valid([]byte(s))
}
