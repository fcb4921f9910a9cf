package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
)

func (c *client) Model() string {
	return c.model
}

func (c *client) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(toWire(req))
	if err != nil {
		return nil, fmt.Errorf("gemini: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var out wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("gemini: decode response: %w", err)
	}
	return fromWire(&out), nil
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(raw))}

	var we wireError
	if json.Unmarshal(raw, &we) == nil && we.Error.Message != "" {
		apiErr.Status = we.Error.Status
		apiErr.Message = we.Error.Message
	}
	return apiErr
}

func toWire(req *Request) wireRequest {
	out := wireRequest{Contents: make([]wireContent, 0, len(req.Messages))}

	if req.SystemInstruction != nil {
		out.SystemInstruction = &wireContent{Parts: toWireParts(req.SystemInstruction.Parts)}
	}
	for _, m := range req.Messages {
		out.Contents = append(out.Contents, wireContent{Role: wireRole(m.Role), Parts: toWireParts(m.Parts)})
	}

	if len(req.Tools) > 0 {
		decls := make([]wireFunctionDeclaration, 0, len(req.Tools))
		for _, t := range req.Tools {
			decls = append(decls, wireFunctionDeclaration{Name: t.Name, Description: t.Description, Parameters: t.Parameters})
		}
		out.Tools = []wireTool{{FunctionDeclarations: decls}}
	}

	gc := wireGenerationConfig{Temperature: req.Temperature, MaxOutputTokens: req.MaxTokens}
	if len(req.Tools) == 0 {
		gc.ResponseMimeType = req.ResponseMIMEType
		gc.ResponseSchema = toWireSchema(req.ResponseSchema)
		if gc.ResponseSchema != nil && gc.ResponseMimeType == "" {
			gc.ResponseMimeType = MIMETypeJSON
		}
	}
	if gc != (wireGenerationConfig{}) {
		out.GenerationConfig = &gc
	}
	return out
}

func toWireSchema(s *Schema) *wireSchema {
	if s == nil {
		return nil
	}
	ws := &wireSchema{
		Type:        strings.ToUpper(s.Type),
		Description: s.Description,
		Format:      s.Format,
		Items:       toWireSchema(s.Items),
		Required:    s.Required,
	}
	if len(s.Properties) > 0 {
		ws.Properties = make(map[string]*wireSchema, len(s.Properties))
		for name, p := range s.Properties {
			ws.Properties[name] = toWireSchema(p)
			ws.PropertyOrdering = append(ws.PropertyOrdering, name)
		}
		sort.Strings(ws.PropertyOrdering)
	}
	return ws
}

func toWireParts(parts []Part) []wirePart {
	out := make([]wirePart, len(parts))
	for i, p := range parts {
		out[i].Text = p.Text
		if p.FunctionCall != nil {
			out[i].FunctionCall = &wireFunctionCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
		if p.FunctionResponse != nil {
			out[i].FunctionResponse = &wireFunctionResponse{Name: p.FunctionResponse.Name, Response: p.FunctionResponse.Response}
		}
	}
	return out
}

func fromWire(resp *wireResponse) *Response {
	out := &Response{Usage: &Usage{}}
	if u := resp.UsageMetadata; u != nil {
		out.Usage = &Usage{
			InputTokens:  u.PromptTokenCount,
			OutputTokens: u.CandidatesTokenCount,
			TotalTokens:  u.TotalTokenCount,
		}
	}
	if len(resp.Candidates) == 0 {
		return out
	}

	cand := resp.Candidates[0]
	out.FinishReason = cand.FinishReason
	out.Content.Role = cand.Content.Role
	for _, p := range cand.Content.Parts {
		part := Part{Text: p.Text}
		if p.FunctionCall != nil {
			part.FunctionCall = &FunctionCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
		if p.FunctionResponse != nil {
			part.FunctionResponse = &FunctionResponse{Name: p.FunctionResponse.Name, Response: p.FunctionResponse.Response}
		}
		out.Content.Parts = append(out.Content.Parts, part)
	}
	return out
}

// wireRole maps neutral roles onto the roles Gemini accepts.
func wireRole(role string) string {
	switch role {
	case "assistant", roleModel:
		return roleModel
	case roleFunction, "tool":
		return roleFunction
	default:
		return roleUser
	}
}
