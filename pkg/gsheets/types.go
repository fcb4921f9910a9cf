package gsheets

import "timesheet-assistant/pkg/taskparser"

// AppendRequest is the input for appending timesheet rows to a spreadsheet.
type AppendRequest struct {
	SpreadsheetID string
	SheetName     string // defaults to "Timesheet"
	Entries       []taskparser.Entry
}

// AppendResult summarizes what the Sheets API wrote.
type AppendResult struct {
	UpdatedRange string
	UpdatedRows  int64
}
