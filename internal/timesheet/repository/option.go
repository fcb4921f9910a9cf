package repository

import "timesheet-assistant/internal/model"

// SaveFileOptions holds the parameters for storing a generated file.
type SaveFileOptions struct {
	Name   string // base name, e.g. timesheet_<uuid>.xlsx
	Format model.Format
	Data   []byte
}
