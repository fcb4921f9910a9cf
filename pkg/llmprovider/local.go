package llmprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"timesheet-assistant/pkg/taskparser"
)

// LocalProvider answers without any network call: it runs the task parser over
// the latest user message and replies with the entries as a JSON array.
type LocalProvider struct {
	parser *taskparser.Parser
	now    func() time.Time
}

// NewLocalProvider creates the offline provider. now defaults to time.Now.
func NewLocalProvider(parser *taskparser.Parser, now func() time.Time) *LocalProvider {
	if now == nil {
		now = time.Now
	}
	return &LocalProvider{parser: parser, now: now}
}

// GenerateContent implements Provider interface
func (p *LocalProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// A structured request restates an earlier turn; its first user message
	// is the work description.
	text := lastUserText(req.Messages)
	if req.ResponseSchema != nil {
		text = firstUserText(req.Messages)
	}
	if text == "" {
		return nil, fmt.Errorf("local: %w", ErrInvalidRequest)
	}

	entries := p.parser.Parse(text, p.now())
	body, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("local: %w", err)
	}

	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: []Part{{Text: string(body)}}},
		ProviderName: p.Name(),
		ModelName:    p.Model(),
		Usage:        &Usage{},
	}, nil
}

// Name returns provider name
func (p *LocalProvider) Name() string {
	return "local"
}

// Model returns model name
func (p *LocalProvider) Model() string {
	return "taskparser"
}

func lastUserText(msgs []Message) string {
	for i := len(msgs) - 1; i >= 0; i-- {
		if text := userText(msgs[i]); text != "" {
			return text
		}
	}
	return ""
}

func firstUserText(msgs []Message) string {
	for _, m := range msgs {
		if text := userText(m); text != "" {
			return text
		}
	}
	return ""
}

func userText(m Message) string {
	if m.Role != RoleUser {
		return ""
	}
	var text string
	for _, part := range m.Parts {
		text += part.Text
	}
	return text
}
