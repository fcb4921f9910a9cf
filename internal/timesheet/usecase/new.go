package usecase

import (
	"context"
	"time"

	"timesheet-assistant/internal/timesheet"
	"timesheet-assistant/internal/timesheet/repository"
	"timesheet-assistant/pkg/gsheets"
	pkgLog "timesheet-assistant/pkg/log"
	"timesheet-assistant/pkg/taskparser"
)

// Agent answers one chat turn. The orchestrator satisfies it.
type Agent interface {
	ProcessQuery(ctx context.Context, sessionID, query string) (string, error)
}

// SheetAppender appends rows to a Google spreadsheet. *gsheets.Client satisfies it.
type SheetAppender interface {
	Append(ctx context.Context, req gsheets.AppendRequest) (*gsheets.AppendResult, error)
}

// Config holds the tunables of the use case.
type Config struct {
	MaxHours      int
	SheetName     string // xlsx sheet
	SpreadsheetID string // Google Sheets target, empty disables the append
	GSheetName    string
	Location      *time.Location
	Now           func() time.Time
}

type implUseCase struct {
	l      pkgLog.Logger
	parser *taskparser.Parser
	repo   repository.FileRepository
	agent  Agent
	sheets SheetAppender
	cfg    Config
}

// New creates a new timesheet UseCase instance. agent and sheets may be nil.
func New(
	l pkgLog.Logger,
	parser *taskparser.Parser,
	repo repository.FileRepository,
	agent Agent,
	sheets SheetAppender,
	cfg Config,
) timesheet.UseCase {
	if cfg.MaxHours <= 0 {
		cfg.MaxHours = taskparser.MaxHours
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &implUseCase{
		l:      l,
		parser: parser,
		repo:   repo,
		agent:  agent,
		sheets: sheets,
		cfg:    cfg,
	}
}

func (uc *implUseCase) now() time.Time {
	return uc.cfg.Now().In(uc.cfg.Location)
}
