package gemini

import (
	"context"
	"fmt"
	"strings"
)

// Client talks to the Gemini generateContent endpoint.
// A Client is safe for concurrent use.
type Client interface {
	// GenerateContent runs one model turn. When req.ResponseSchema is set and
	// no tools are declared, the reply is constrained to that JSON schema.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	Model() string
}

// New validates cfg and returns an HTTP backed Client.
func New(cfg Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &client{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		endpoint:   fmt.Sprintf("%s/models/%s:generateContent", strings.TrimRight(cfg.APIURL, "/"), cfg.Model),
		httpClient: cfg.HTTPClient,
	}, nil
}
