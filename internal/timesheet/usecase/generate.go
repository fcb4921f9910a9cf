package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/timesheet"
	"timesheet-assistant/internal/timesheet/repository"
	"timesheet-assistant/pkg/excel"
	"timesheet-assistant/pkg/gsheets"
	"timesheet-assistant/pkg/pdf"
	"timesheet-assistant/pkg/taskparser"
)

// Generate renders entries into files and stores them.
func (uc *implUseCase) Generate(ctx context.Context, sc model.Scope, input timesheet.GenerateInput) (timesheet.GenerateOutput, error) {
	entries := input.Entries
	if len(entries) == 0 {
		parsed, err := uc.parseText(input.Text)
		if err != nil {
			return timesheet.GenerateOutput{}, err
		}
		entries = parsed
	}

	formats, err := normalizeFormats(input.Formats)
	if err != nil {
		return timesheet.GenerateOutput{}, err
	}

	issues := uc.Validate(entries)
	if len(issues) > 0 {
		uc.l.Warnf(ctx, "internal.timesheet.usecase.Generate: %d validation issue(s)", len(issues))
	}

	id := uuid.NewString()
	files := make([]model.File, 0, len(formats))
	for _, format := range formats {
		data, err := uc.render(format, entries)
		if err != nil {
			uc.l.Errorf(ctx, "internal.timesheet.usecase.Generate: render %s: %v", format, err)
			return timesheet.GenerateOutput{}, fmt.Errorf("render %s: %w", format, err)
		}

		file, err := uc.repo.Save(ctx, repository.SaveFileOptions{
			Name:   fmt.Sprintf("timesheet_%s.%s", id, format),
			Format: format,
			Data:   data,
		})
		if err != nil {
			uc.l.Errorf(ctx, "internal.timesheet.usecase.Generate: save %s: %v", format, err)
			return timesheet.GenerateOutput{}, fmt.Errorf("save %s: %w", format, err)
		}
		files = append(files, file)
	}

	uc.l.Infof(ctx, "internal.timesheet.usecase.Generate: source=%s entries=%d files=%d", sc.Source, len(entries), len(files))

	return timesheet.GenerateOutput{
		Entries:    entries,
		Issues:     issues,
		Files:      files,
		SheetRange: uc.tryAppendToSheets(ctx, entries),
	}, nil
}

func (uc *implUseCase) render(format model.Format, entries []taskparser.Entry) ([]byte, error) {
	switch format {
	case model.FormatXLSX:
		return excel.Render(entries, excel.Options{SheetName: uc.cfg.SheetName})
	case model.FormatPDF:
		return pdf.Render(entries)
	default:
		return nil, timesheet.ErrUnsupportedFormat
	}
}

// tryAppendToSheets mirrors the rows to Google Sheets when configured.
// Failures only log: the local file is the deliverable.
func (uc *implUseCase) tryAppendToSheets(ctx context.Context, entries []taskparser.Entry) string {
	if uc.sheets == nil || uc.cfg.SpreadsheetID == "" {
		return ""
	}

	res, err := uc.sheets.Append(ctx, gsheets.AppendRequest{
		SpreadsheetID: uc.cfg.SpreadsheetID,
		SheetName:     uc.cfg.GSheetName,
		Entries:       entries,
	})
	if err != nil {
		uc.l.Warnf(ctx, "internal.timesheet.usecase.Generate: google sheets append failed: %v", err)
		return ""
	}
	return res.UpdatedRange
}

// normalizeFormats puts xlsx first and drops duplicates.
func normalizeFormats(formats []model.Format) ([]model.Format, error) {
	out := []model.Format{model.FormatXLSX}
	seen := map[model.Format]bool{model.FormatXLSX: true}
	for _, f := range formats {
		if !f.Valid() {
			return nil, fmt.Errorf("%w: %q", timesheet.ErrUnsupportedFormat, f)
		}
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out, nil
}
