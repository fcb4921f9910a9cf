package llmprovider

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"timesheet-assistant/config"
	"timesheet-assistant/pkg/gemini"
	"timesheet-assistant/pkg/openaicompat"
	"timesheet-assistant/pkg/taskparser"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers filtered out.
// Providers that fail to initialize are skipped; the returned error lists them
// only when nothing could be built.
func InitializeProviders(cfg *config.LLMConfig, local *taskparser.Parser) ([]Provider, []error, error) {
	if cfg == nil {
		return nil, nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}
	if len(enabledProviders) == 0 {
		return nil, nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []error

	for _, p := range enabledProviders {
		provider, err := createProvider(p, local)
		if err != nil {
			initErrors = append(initErrors, fmt.Errorf("provider %s (priority %d): %w", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		msgs := make([]string, len(initErrors))
		for i, err := range initErrors {
			msgs[i] = err.Error()
		}
		return nil, initErrors, fmt.Errorf("no providers successfully initialized: %s", strings.Join(msgs, "; "))
	}

	return providers, initErrors, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig, local *taskparser.Parser) (Provider, error) {
	if cfg.Name == config.ProviderLocal {
		if local == nil {
			return nil, fmt.Errorf("task parser is required")
		}
		return NewLocalProvider(local, nil), nil
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	timeout, err := parseTimeout(cfg.Timeout)
	if err != nil {
		return nil, err
	}

	switch cfg.Name {
	case "gemini":
		gcfg := gemini.Config{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
			APIURL: cfg.BaseURL,
		}
		if timeout > 0 {
			gcfg.HTTPClient = &http.Client{Timeout: timeout}
		}
		client, err := gemini.New(gcfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case "openai", "deepseek", "qwen", "alibaba":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = defaultBaseURL(cfg.Name)
		}
		client, err := openaicompat.New(openaicompat.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: baseURL,
			Timeout: timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", cfg.Name, err)
		}
		return NewOpenAICompatAdapter(cfg.Name, client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

func defaultBaseURL(name string) string {
	switch name {
	case "deepseek":
		return openaicompat.BaseURLDeepSeek
	case "qwen", "alibaba":
		return openaicompat.BaseURLQwen
	default:
		return openaicompat.BaseURLOpenAI
	}
}

func parseTimeout(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", raw, err)
	}
	return d, nil
}
