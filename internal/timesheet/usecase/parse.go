package usecase

import (
	"context"
	"strings"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/timesheet"
	"timesheet-assistant/pkg/taskparser"
)

// Parse extracts entries from free text.
func (uc *implUseCase) Parse(ctx context.Context, sc model.Scope, input timesheet.ParseInput) (timesheet.ParseOutput, error) {
	entries, err := uc.parseText(input.Text)
	if err != nil {
		return timesheet.ParseOutput{}, err
	}

	uc.l.Debugf(ctx, "internal.timesheet.usecase.Parse: source=%s entries=%d", sc.Source, len(entries))

	return timesheet.ParseOutput{
		Entries: entries,
		Issues:  uc.Validate(entries),
	}, nil
}

// Validate reports every rule the entries break without changing them.
func (uc *implUseCase) Validate(entries []taskparser.Entry) []taskparser.Issue {
	return taskparser.Issues(taskparser.Validate(entries, uc.cfg.MaxHours))
}

func (uc *implUseCase) parseText(text string) ([]taskparser.Entry, error) {
	if strings.TrimSpace(text) == "" {
		return nil, timesheet.ErrEmptyInput
	}
	entries := uc.parser.Parse(text, uc.now())
	if len(entries) == 0 {
		return nil, timesheet.ErrNoEntries
	}
	return entries, nil
}
