package orchestrator

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"timesheet-assistant/internal/agent"
	pkgLog "timesheet-assistant/pkg/log"
)

type Orchestrator struct {
	llm        LLM
	registry   *agent.ToolRegistry
	l          pkgLog.Logger
	loc        *time.Location
	now        func() time.Time
	maxSteps   int
	maxHistory int
	formatWith map[string]bool

	mu       sync.Mutex
	sessions *expirable.LRU[string, *SessionMemory]
}

func New(llm LLM, registry *agent.ToolRegistry, l pkgLog.Logger, cfg Config) *Orchestrator {
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = DefaultMaxSteps
	}
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = DefaultMaxHistory
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}
	if cfg.SessionLimit <= 0 {
		cfg.SessionLimit = DefaultSessionLimit
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.FormatTools == nil {
		cfg.FormatTools = DefaultFormatTools
	}
	if registry == nil {
		registry = agent.NewToolRegistry()
	}

	o := &Orchestrator{
		llm:        llm,
		registry:   registry,
		l:          l,
		loc:        cfg.Location,
		now:        cfg.Now,
		maxSteps:   cfg.MaxSteps,
		maxHistory: cfg.MaxHistory,
		formatWith: make(map[string]bool, len(cfg.FormatTools)),
		sessions:   expirable.NewLRU[string, *SessionMemory](cfg.SessionLimit, nil, cfg.SessionTTL),
	}
	for _, name := range cfg.FormatTools {
		o.formatWith[name] = true
	}
	return o
}
