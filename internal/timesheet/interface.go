package timesheet

import (
	"context"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/pkg/taskparser"
)

// UseCase defines the business logic interface for the timesheet domain.
type UseCase interface {
	// Parse extracts entries from free text and reports validation issues.
	Parse(ctx context.Context, sc model.Scope, input ParseInput) (ParseOutput, error)

	// Generate parses (or takes) entries, renders the requested files and stores them.
	Generate(ctx context.Context, sc model.Scope, input GenerateInput) (GenerateOutput, error)

	// Chat forwards the text to the agent and decodes entries from its reply when present.
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)

	// Download looks up a previously generated file by name.
	Download(ctx context.Context, sc model.Scope, name string) (model.File, error)

	// Validate reports every rule the entries break without changing them.
	Validate(entries []taskparser.Entry) []taskparser.Issue
}
