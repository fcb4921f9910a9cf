package model

// Source identifies the surface a request came through.
type Source string

const (
	SourceWeb      Source = "web"
	SourceAPI      Source = "api"
	SourceTerminal Source = "terminal"
)

// Scope carries per-request identity. There is no authentication; SessionID
// only keys the agent conversation history.
type Scope struct {
	SessionID string
	Source    Source
}
