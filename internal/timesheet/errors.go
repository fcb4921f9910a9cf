package timesheet

import "errors"

// Domain-specific errors for the timesheet package.
var (
	ErrEmptyInput        = errors.New("input text is empty")
	ErrNoEntries         = errors.New("no timesheet entries found")
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrFileNotFound      = errors.New("file not found")
	ErrInvalidFileName   = errors.New("invalid file name")
	ErrAgentUnavailable  = errors.New("agent is not configured")
	ErrNotEntryList      = errors.New("reply is not a JSON list of entries")
)
