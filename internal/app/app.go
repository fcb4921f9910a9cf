package app

import (
	"context"
	"fmt"
	"time"

	"timesheet-assistant/config"
	"timesheet-assistant/internal/agent"
	"timesheet-assistant/internal/agent/orchestrator"
	"timesheet-assistant/internal/agent/tools"
	"timesheet-assistant/internal/timesheet"
	"timesheet-assistant/internal/timesheet/repository"
	"timesheet-assistant/internal/timesheet/repository/localfs"
	"timesheet-assistant/internal/timesheet/usecase"
	"timesheet-assistant/pkg/datemath"
	"timesheet-assistant/pkg/gsheets"
	"timesheet-assistant/pkg/llmprovider"
	"timesheet-assistant/pkg/log"
	"timesheet-assistant/pkg/taskparser"
)

const fallbackTimezone = "UTC"

// App holds the wired domain components shared by the web server and the terminal chat.
type App struct {
	UseCase   timesheet.UseCase
	Files     repository.FileRepository
	Agent     *orchestrator.Orchestrator // nil when no LLM provider could be built
	Providers []llmprovider.Provider
	Location  *time.Location
}

// Build wires parser, agent, storage and exporters from cfg.
func Build(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	// 1. Date math + task parser
	dates, err := datemath.NewParser(cfg.Timesheet.Timezone)
	if err != nil {
		l.Warnf(ctx, "Invalid timezone %q, falling back to %s: %v", cfg.Timesheet.Timezone, fallbackTimezone, err)
		dates, _ = datemath.NewParser(fallbackTimezone)
	}
	loc := dates.Location()
	clock := func() time.Time { return time.Now().In(loc) }
	parser := taskparser.New(dates, taskparser.WithDefaultHours(cfg.Timesheet.DefaultHours))

	// 2. File storage
	files, err := localfs.New(l, cfg.Timesheet.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("file storage: %w", err)
	}

	// 3. Agent (optional)
	a := &App{Files: files, Location: loc}
	var ag usecase.Agent
	if orch, providers := buildAgent(ctx, cfg, l, dates, parser, clock); orch != nil {
		a.Agent = orch
		a.Providers = providers
		ag = orch
	}

	// 4. Google Sheets (optional)
	var sheets usecase.SheetAppender
	if cfg.GoogleSheets.Enabled {
		client, err := gsheets.NewClientFromCredentialsFile(ctx, cfg.GoogleSheets.CredentialsPath)
		if err != nil {
			l.Warnf(ctx, "Google Sheets not available (optional): %v", err)
		} else {
			sheets = client
			l.Info(ctx, "Google Sheets export initialized")
		}
	}

	// 5. Use case
	a.UseCase = usecase.New(l, parser, files, ag, sheets, usecase.Config{
		MaxHours:      cfg.Timesheet.MaxHours,
		SheetName:     cfg.Timesheet.SheetName,
		SpreadsheetID: cfg.GoogleSheets.SpreadsheetID,
		GSheetName:    cfg.GoogleSheets.SheetName,
		Location:      loc,
	})

	return a, nil
}

func buildAgent(
	ctx context.Context,
	cfg *config.Config,
	l log.Logger,
	dates *datemath.Parser,
	parser *taskparser.Parser,
	clock tools.Clock,
) (*orchestrator.Orchestrator, []llmprovider.Provider) {
	providers, initErrs, err := llmprovider.InitializeProviders(&cfg.LLM, parser)
	for _, e := range initErrs {
		l.Warnf(ctx, "LLM provider skipped: %v", e)
	}
	if err != nil {
		l.Warnf(ctx, "Agent disabled: %v", err)
		return nil, nil
	}
	for _, p := range providers {
		l.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}

	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      durationOr(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: durationOr(cfg.LLM.MaxTotalTimeout, 0),
	}, l)

	registry := agent.NewToolRegistry(
		tools.NewDateTool(dates, clock, l),
		tools.NewValidationTool(cfg.Timesheet.MaxHours),
		tools.NewParseTasksTool(parser, clock),
		tools.NewCurrentTimeTool(clock),
	)

	orch := orchestrator.New(manager, registry, l, orchestrator.Config{
		MaxSteps:     cfg.Agent.MaxSteps,
		MaxHistory:   cfg.Agent.MaxHistory,
		SessionTTL:   durationOr(cfg.Agent.SessionTTL, 0),
		SessionLimit: cfg.Agent.SessionLimit,
		Location:     dates.Location(),
	})
	return orch, providers
}

// durationOr parses raw, returning def when it is empty or malformed.
func durationOr(raw string, def time.Duration) time.Duration {
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return def
	}
	return d
}
