package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "gemini", "deepseek", "local")
	Name() string

	// Model returns the model being used
	Model() string
}

// Roles used in Message.Role.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleFunction  = "function"
)

// Request represents a normalized LLM generation request
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	Tools             []Tool
	Temperature       float64
	MaxTokens         int

	// ResponseMIMEType and ResponseSchema ask for structured output.
	// Providers without native support ignore them.
	ResponseMIMEType string
	ResponseSchema   *Schema
}

// MIMETypeJSON requests a JSON reply.
const MIMETypeJSON = "application/json"

// Schema describes the shape of a structured reply. Type uses JSON Schema
// names ("array", "object", "string", "integer").
type Schema struct {
	Type        string
	Description string
	Format      string
	Items       *Schema
	Properties  map[string]*Schema
	Required    []string
}

// Message represents a conversation message
type Message struct {
	Role  string // "user", "assistant", "function"
	Parts []Part
}

// Part represents a message part (text or function call)
type Part struct {
	Text             string
	FunctionCall     *FunctionCall
	FunctionResponse *FunctionResponse
}

// Tool represents a function declaration
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]interface{} // JSON Schema
}

// FunctionCall represents a model's function call request.
// ID is set by providers that correlate calls and results (OpenAI style).
type FunctionCall struct {
	ID   string
	Name string
	Args map[string]interface{}
}

// FunctionResponse represents a function execution result
type FunctionResponse struct {
	ID       string
	Name     string
	Response interface{}
}

// Response represents a normalized LLM generation response
type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Text concatenates the text parts of the response.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	var out string
	for _, p := range r.Content.Parts {
		out += p.Text
	}
	return out
}

// FunctionCall returns the first function call of the response, if any.
func (r *Response) FunctionCall() *FunctionCall {
	if r == nil {
		return nil
	}
	for _, p := range r.Content.Parts {
		if p.FunctionCall != nil {
			return p.FunctionCall
		}
	}
	return nil
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
