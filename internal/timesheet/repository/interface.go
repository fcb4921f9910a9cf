package repository

import (
	"context"
	"errors"

	"timesheet-assistant/internal/model"
)

var (
	ErrNotFound    = errors.New("file not found")
	ErrInvalidName = errors.New("invalid file name")
)

// FileRepository stores generated timesheet files.
type FileRepository interface {
	Save(ctx context.Context, opt SaveFileOptions) (model.File, error)
	Get(ctx context.Context, name string) (model.File, error)
}
