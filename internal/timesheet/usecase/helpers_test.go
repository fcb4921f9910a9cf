package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/timesheet"
	"timesheet-assistant/internal/timesheet/repository"
	"timesheet-assistant/pkg/datemath"
	"timesheet-assistant/pkg/gsheets"
	pkgLog "timesheet-assistant/pkg/log"
	"timesheet-assistant/pkg/taskparser"
)

// Wednesday
var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

type memRepo struct {
	files map[string]repository.SaveFileOptions
	err   error
}

func (m *memRepo) Save(ctx context.Context, opt repository.SaveFileOptions) (model.File, error) {
	if m.err != nil {
		return model.File{}, m.err
	}
	if m.files == nil {
		m.files = map[string]repository.SaveFileOptions{}
	}
	m.files[opt.Name] = opt
	return model.File{Name: opt.Name, Path: "/mem/" + opt.Name, Format: opt.Format, Size: int64(len(opt.Data))}, nil
}

func (m *memRepo) Get(ctx context.Context, name string) (model.File, error) {
	if m.err != nil {
		return model.File{}, m.err
	}
	if strings.Contains(name, "/") {
		return model.File{}, repository.ErrInvalidName
	}
	opt, ok := m.files[name]
	if !ok {
		return model.File{}, repository.ErrNotFound
	}
	return model.File{Name: name, Path: "/mem/" + name, Format: opt.Format, Size: int64(len(opt.Data))}, nil
}

type fakeAgent struct {
	reply     string
	err       error
	sessionID string
	query     string
}

func (f *fakeAgent) ProcessQuery(ctx context.Context, sessionID, query string) (string, error) {
	f.sessionID, f.query = sessionID, query
	return f.reply, f.err
}

type fakeSheets struct {
	req gsheets.AppendRequest
	err error
}

func (f *fakeSheets) Append(ctx context.Context, req gsheets.AppendRequest) (*gsheets.AppendResult, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &gsheets.AppendResult{UpdatedRange: "Timesheet!A2:C3", UpdatedRows: int64(len(req.Entries))}, nil
}

var errBoom = errors.New("boom")

type deps struct {
	repo   *memRepo
	agent  *fakeAgent
	sheets *fakeSheets
}

func newTestUseCase(t *testing.T, spreadsheetID string) (timesheet.UseCase, *deps) {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	require.NoError(t, err)

	d := &deps{repo: &memRepo{}, agent: &fakeAgent{}, sheets: &fakeSheets{}}
	uc := New(pkgLog.NewNop(), taskparser.New(dates), d.repo, d.agent, d.sheets, Config{
		MaxHours:      24,
		SpreadsheetID: spreadsheetID,
		Location:      time.UTC,
		Now:           func() time.Time { return fixedNow },
	})
	return uc, d
}
