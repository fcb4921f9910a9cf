package usecase

import (
	"context"
	"errors"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/timesheet"
	"timesheet-assistant/internal/timesheet/repository"
)

// Download looks up a generated file by name.
func (uc *implUseCase) Download(ctx context.Context, sc model.Scope, name string) (model.File, error) {
	file, err := uc.repo.Get(ctx, name)
	switch {
	case err == nil:
		return file, nil
	case errors.Is(err, repository.ErrInvalidName):
		uc.l.Warnf(ctx, "internal.timesheet.usecase.Download: rejected name %q", name)
		return model.File{}, timesheet.ErrInvalidFileName
	case errors.Is(err, repository.ErrNotFound):
		return model.File{}, timesheet.ErrFileNotFound
	default:
		uc.l.Errorf(ctx, "internal.timesheet.usecase.Download: %v", err)
		return model.File{}, err
	}
}
