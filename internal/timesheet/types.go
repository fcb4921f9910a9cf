package timesheet

import (
	"timesheet-assistant/internal/model"
	"timesheet-assistant/pkg/taskparser"
)

// ParseInput is the input for Parse.
type ParseInput struct {
	Text string `json:"text"`
}

// ParseOutput is the result of Parse.
type ParseOutput struct {
	Entries []taskparser.Entry `json:"entries"`
	Issues  []taskparser.Issue `json:"issues,omitempty"`
}

// GenerateInput is the input for Generate. Entries win over Text when both are set.
type GenerateInput struct {
	Text    string
	Entries []taskparser.Entry
	Formats []model.Format // xlsx is always produced
}

// GenerateOutput is the result of Generate.
type GenerateOutput struct {
	Entries    []taskparser.Entry
	Issues     []taskparser.Issue
	Files      []model.File
	SheetRange string // set when rows were appended to Google Sheets
}

// Spreadsheet returns the xlsx file of the output.
func (o GenerateOutput) Spreadsheet() (model.File, bool) {
	for _, f := range o.Files {
		if f.Format == model.FormatXLSX {
			return f, true
		}
	}
	return model.File{}, false
}

// ChatInput is the input for Chat.
type ChatInput struct {
	Text string
}

// ChatOutput is the result of Chat. Entries is non-empty only when the reply
// was a JSON array of entries.
type ChatOutput struct {
	Reply   string
	Entries []taskparser.Entry
	Issues  []taskparser.Issue
}
