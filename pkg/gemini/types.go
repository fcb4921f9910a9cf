package gemini

import (
	"errors"
	"net/http"
)

// Config configures a Gemini client. Empty fields other than APIKey take defaults.
type Config struct {
	APIKey     string
	Model      string
	APIURL     string
	HTTPClient *http.Client
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("gemini: API key is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Request is one generateContent call.
type Request struct {
	SystemInstruction *Content
	Messages          []Content
	Tools             []Tool
	Temperature       float64
	MaxTokens         int

	// ResponseMIMEType and ResponseSchema switch the model to structured
	// output. Gemini refuses them next to function declarations, so they
	// are dropped when Tools is not empty.
	ResponseMIMEType string
	ResponseSchema   *Schema
}

// Schema is the OpenAPI subset Gemini accepts as a response schema.
// Type holds one of the Type* constants.
type Schema struct {
	Type        string
	Description string
	Format      string
	Items       *Schema
	Properties  map[string]*Schema
	Required    []string
}

type Content struct {
	Role  string
	Parts []Part
}

// Part carries exactly one of Text, FunctionCall or FunctionResponse.
type Part struct {
	Text             string
	FunctionCall     *FunctionCall
	FunctionResponse *FunctionResponse
}

// Tool is a function declaration the model may call.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]interface{}
}

type FunctionCall struct {
	Name string
	Args map[string]interface{}
}

type FunctionResponse struct {
	Name     string
	Response interface{}
}

// Response holds the first candidate only.
type Response struct {
	Content      Content
	FinishReason string
	Usage        *Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// client is the HTTP implementation of Client.
type client struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

// wire format

type wireRequest struct {
	SystemInstruction *wireContent          `json:"system_instruction,omitempty"`
	Contents          []wireContent         `json:"contents"`
	Tools             []wireTool            `json:"tools,omitempty"`
	GenerationConfig  *wireGenerationConfig `json:"generationConfig,omitempty"`
}

type wireGenerationConfig struct {
	Temperature      float64     `json:"temperature,omitempty"`
	MaxOutputTokens  int         `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string      `json:"responseMimeType,omitempty"`
	ResponseSchema   *wireSchema `json:"responseSchema,omitempty"`
}

type wireSchema struct {
	Type        string                 `json:"type"`
	Description string                 `json:"description,omitempty"`
	Format      string                 `json:"format,omitempty"`
	Items       *wireSchema            `json:"items,omitempty"`
	Properties  map[string]*wireSchema `json:"properties,omitempty"`
	Required    []string               `json:"required,omitempty"`

	// propertyOrdering keeps the emitted object keys in a stable order.
	PropertyOrdering []string `json:"propertyOrdering,omitempty"`
}

type wireTool struct {
	FunctionDeclarations []wireFunctionDeclaration `json:"functionDeclarations,omitempty"`
}

type wireFunctionDeclaration struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters,omitempty"`
}

type wireContent struct {
	Role  string     `json:"role,omitempty"`
	Parts []wirePart `json:"parts"`
}

type wirePart struct {
	Text             string                `json:"text,omitempty"`
	FunctionCall     *wireFunctionCall     `json:"functionCall,omitempty"`
	FunctionResponse *wireFunctionResponse `json:"functionResponse,omitempty"`
}

type wireFunctionCall struct {
	Name string                 `json:"name"`
	Args map[string]interface{} `json:"args"`
}

type wireFunctionResponse struct {
	Name     string      `json:"name"`
	Response interface{} `json:"response"`
}

type wireResponse struct {
	Candidates    []wireCandidate `json:"candidates"`
	UsageMetadata *struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata,omitempty"`
}

type wireCandidate struct {
	Content      wireContent `json:"content"`
	FinishReason string      `json:"finishReason,omitempty"`
}

type wireError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
