package localfs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/timesheet/repository"
	pkgLog "timesheet-assistant/pkg/log"
)

var nameRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

type implRepository struct {
	l   pkgLog.Logger
	dir string
}

// New returns a FileRepository rooted at dir, creating it when missing.
func New(l pkgLog.Logger, dir string) (repository.FileRepository, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve output dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &implRepository{l: l, dir: abs}, nil
}

func (r *implRepository) Save(ctx context.Context, opt repository.SaveFileOptions) (model.File, error) {
	format, err := checkName(opt.Name)
	if err != nil {
		return model.File{}, err
	}
	if opt.Format != "" && opt.Format != format {
		return model.File{}, fmt.Errorf("%w: extension does not match format %s", repository.ErrInvalidName, opt.Format)
	}

	tmp, err := os.CreateTemp(r.dir, ".tmp-*")
	if err != nil {
		return model.File{}, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(opt.Data); err != nil {
		tmp.Close()
		return model.File{}, fmt.Errorf("write %s: %w", opt.Name, err)
	}
	if err := tmp.Close(); err != nil {
		return model.File{}, fmt.Errorf("close %s: %w", opt.Name, err)
	}

	path := filepath.Join(r.dir, opt.Name)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return model.File{}, fmt.Errorf("store %s: %w", opt.Name, err)
	}

	r.l.Debugf(ctx, "internal.timesheet.repository.localfs.Save: %s (%d bytes)", path, len(opt.Data))
	return r.stat(opt.Name, format)
}

func (r *implRepository) Get(ctx context.Context, name string) (model.File, error) {
	format, err := checkName(name)
	if err != nil {
		return model.File{}, err
	}
	return r.stat(name, format)
}

func (r *implRepository) stat(name string, format model.Format) (model.File, error) {
	path := filepath.Join(r.dir, name)
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return model.File{}, repository.ErrNotFound
	}
	if err != nil {
		return model.File{}, fmt.Errorf("stat %s: %w", name, err)
	}
	if !info.Mode().IsRegular() {
		return model.File{}, repository.ErrNotFound
	}

	return model.File{
		Name:      name,
		Path:      path,
		Format:    format,
		Size:      info.Size(),
		CreatedAt: info.ModTime(),
	}, nil
}

// checkName accepts plain base names with a supported extension only.
func checkName(name string) (model.Format, error) {
	if !nameRe.MatchString(name) || strings.Contains(name, "..") {
		return "", repository.ErrInvalidName
	}
	format := model.Format(strings.TrimPrefix(filepath.Ext(name), "."))
	if !format.Valid() {
		return "", repository.ErrInvalidName
	}
	return format, nil
}
