package llmprovider

import (
	"context"
	"encoding/json"
	"fmt"

	"timesheet-assistant/pkg/gemini"
	"timesheet-assistant/pkg/openaicompat"
)

// GeminiAdapter exposes a gemini.Client as a Provider.
type GeminiAdapter struct {
	client gemini.Client
}

func NewGeminiAdapter(client gemini.Client) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

func (a *GeminiAdapter) Name() string  { return "gemini" }
func (a *GeminiAdapter) Model() string { return a.client.Model() }

// GenerateContent forwards req to Gemini. A ResponseSchema is passed through
// so entry lists come back as schema-checked JSON.
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	greq := &gemini.Request{
		SystemInstruction: toGeminiContent(req.SystemInstruction),
		Messages:          make([]gemini.Content, 0, len(req.Messages)),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		ResponseMIMEType:  req.ResponseMIMEType,
		ResponseSchema:    toGeminiSchema(req.ResponseSchema),
	}
	for i := range req.Messages {
		greq.Messages = append(greq.Messages, *toGeminiContent(&req.Messages[i]))
	}
	for _, t := range req.Tools {
		greq.Tools = append(greq.Tools, gemini.Tool{Name: t.Name, Description: t.Description, Parameters: t.Parameters})
	}

	resp, err := a.client.GenerateContent(ctx, greq)
	if err != nil {
		return nil, err
	}

	out := &Response{
		Content:      Message{Role: RoleAssistant},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	for _, p := range resp.Content.Parts {
		part := Part{Text: p.Text}
		if p.FunctionCall != nil {
			part.FunctionCall = &FunctionCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
		out.Content.Parts = append(out.Content.Parts, part)
	}
	return out, nil
}

func toGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	c := &gemini.Content{Role: msg.Role, Parts: make([]gemini.Part, len(msg.Parts))}
	for i, p := range msg.Parts {
		c.Parts[i].Text = p.Text
		if p.FunctionCall != nil {
			c.Parts[i].FunctionCall = &gemini.FunctionCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
		if p.FunctionResponse != nil {
			c.Parts[i].FunctionResponse = &gemini.FunctionResponse{Name: p.FunctionResponse.Name, Response: p.FunctionResponse.Response}
		}
	}
	return c
}

func toGeminiSchema(s *Schema) *gemini.Schema {
	if s == nil {
		return nil
	}
	gs := &gemini.Schema{
		Type:        s.Type,
		Description: s.Description,
		Format:      s.Format,
		Items:       toGeminiSchema(s.Items),
		Required:    s.Required,
	}
	if len(s.Properties) > 0 {
		gs.Properties = make(map[string]*gemini.Schema, len(s.Properties))
		for name, p := range s.Properties {
			gs.Properties[name] = toGeminiSchema(p)
		}
	}
	return gs
}

// OpenAICompatAdapter adapts pkg/openaicompat (OpenAI, DeepSeek, Qwen) to the Provider interface
type OpenAICompatAdapter struct {
	name   string
	client *openaicompat.Client
}

// NewOpenAICompatAdapter creates an adapter reporting itself as name
func NewOpenAICompatAdapter(name string, client *openaicompat.Client) *OpenAICompatAdapter {
	return &OpenAICompatAdapter{name: name, client: client}
}

// GenerateContent forwards req to an OpenAI compatible endpoint.
// ResponseSchema is not forwarded: strict json_schema needs an object at the
// root and DeepSeek and Qwen do not accept it, so entry lists rely on the
// prompt and on timesheet.DecodeEntries there.
func (a *OpenAICompatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	compatReq := &openaicompat.Request{
		Messages:    convertToCompatMessages(req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		for _, p := range req.SystemInstruction.Parts {
			compatReq.System += p.Text
		}
	}
	for _, t := range req.Tools {
		compatReq.Tools = append(compatReq.Tools, openaicompat.Tool{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		})
	}

	resp, err := a.client.GenerateContent(ctx, compatReq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.name, err)
	}

	return convertFromCompatResponse(a.name, a.client.Model(), resp), nil
}

// Name returns the provider name
func (a *OpenAICompatAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *OpenAICompatAdapter) Model() string {
	return a.client.Model()
}

// convertToCompatMessages flattens neutral messages into chat turns. A message
// carrying several function responses becomes one tool turn per response.
func convertToCompatMessages(msgs []Message) []openaicompat.Message {
	out := make([]openaicompat.Message, 0, len(msgs))
	for _, msg := range msgs {
		var text string
		var calls []openaicompat.ToolCall
		var results []openaicompat.Message

		for _, p := range msg.Parts {
			text += p.Text
			if fc := p.FunctionCall; fc != nil {
				argsJSON, _ := json.Marshal(fc.Args)
				calls = append(calls, openaicompat.ToolCall{
					ID:        callID(fc.ID, fc.Name),
					Name:      fc.Name,
					Arguments: string(argsJSON),
				})
			}
			if fr := p.FunctionResponse; fr != nil {
				responseJSON, _ := json.Marshal(fr.Response)
				results = append(results, openaicompat.Message{
					Role:       openaicompat.RoleTool,
					Content:    string(responseJSON),
					ToolCallID: callID(fr.ID, fr.Name),
				})
			}
		}

		switch {
		case len(results) > 0:
			out = append(out, results...)
		case msg.Role == RoleAssistant:
			out = append(out, openaicompat.Message{Role: openaicompat.RoleAssistant, Content: text, ToolCalls: calls})
		default:
			out = append(out, openaicompat.Message{Role: openaicompat.RoleUser, Content: text})
		}
	}
	return out
}

func callID(id, name string) string {
	if id != "" {
		return id
	}
	return "call_" + name
}

func convertFromCompatResponse(name, model string, resp *openaicompat.Response) *Response {
	parts := []Part{}
	if resp.Content != "" {
		parts = append(parts, Part{Text: resp.Content})
	}
	for _, tc := range resp.ToolCalls {
		var args map[string]interface{}
		if tc.Arguments != "" {
			_ = json.Unmarshal([]byte(tc.Arguments), &args)
		}
		parts = append(parts, Part{
			FunctionCall: &FunctionCall{ID: tc.ID, Name: tc.Name, Args: args},
		})
	}

	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: parts},
		ProviderName: name,
		ModelName:    model,
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
}
