package orchestrator

import (
	"context"
	"time"

	"timesheet-assistant/pkg/llmprovider"
)

// LLM generates the next model turn. *llmprovider.Manager satisfies it.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Config tunes the loop and its session cache. Zero values take defaults.
type Config struct {
	MaxSteps     int
	MaxHistory   int
	SessionTTL   time.Duration
	SessionLimit int
	Location     *time.Location
	Now          func() time.Time
	// FormatTools name the tools that mark a turn as a timesheet turn. Such a
	// turn ends with a tool-free pass constrained to the entry schema.
	FormatTools []string
}

// SessionMemory holds the recent conversation history for one session.
type SessionMemory struct {
	ID          string
	Messages    []llmprovider.Message
	LastUpdated time.Time
}
