package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/timesheet"
)

// Chat forwards one turn to the agent.
func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input timesheet.ChatInput) (timesheet.ChatOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return timesheet.ChatOutput{}, timesheet.ErrEmptyInput
	}
	if uc.agent == nil {
		return timesheet.ChatOutput{}, timesheet.ErrAgentUnavailable
	}

	reply, err := uc.agent.ProcessQuery(ctx, sc.SessionID, input.Text)
	if err != nil {
		uc.l.Errorf(ctx, "internal.timesheet.usecase.Chat: session=%s: %v", sc.SessionID, err)
		return timesheet.ChatOutput{}, fmt.Errorf("agent: %w", err)
	}

	out := timesheet.ChatOutput{Reply: reply}
	entries, err := timesheet.DecodeEntries(reply)
	switch {
	case err == nil:
		out.Entries = entries
		out.Issues = uc.Validate(entries)
	case errors.Is(err, timesheet.ErrNotEntryList), errors.Is(err, timesheet.ErrNoEntries):
		// plain conversational reply
	default:
		return timesheet.ChatOutput{}, err
	}

	uc.l.Debugf(ctx, "internal.timesheet.usecase.Chat: session=%s entries=%d", sc.SessionID, len(out.Entries))
	return out, nil
}
