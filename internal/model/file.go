package model

import "time"

// Format is the file format of a generated timesheet.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// Valid reports whether f is a supported export format.
func (f Format) Valid() bool {
	return f == FormatXLSX || f == FormatPDF
}

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// File is a generated timesheet stored on disk.
type File struct {
	Name      string // timesheet_<uuid>.<ext>
	Path      string // absolute or output-dir relative path
	Format    Format
	Size      int64
	CreatedAt time.Time
}
