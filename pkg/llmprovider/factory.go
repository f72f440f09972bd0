package llmprovider

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"inbox-planner/config"
	"inbox-planner/pkg/gemini"
	"inbox-planner/pkg/log"
	"inbox-planner/pkg/openaicompat"
	"inbox-planner/pkg/retry"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers filtered out.
// Providers that fail to initialize are skipped as long as one succeeds.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}
	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []string
	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			errMsg := fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, errMsg)
			l.Warnf(ctx, "InitializeProviders: %s", errMsg)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}
	if len(initErrors) > 0 {
		l.Warnf(ctx, "InitializeProviders: %d provider(s) failed to initialize, continuing with %d", len(initErrors), len(providers))
	}

	return providers, nil
}

// ManagerConfig derives the manager settings from config.LLMConfig.
func ManagerConfig(cfg *config.LLMConfig) *Config {
	policy := retry.DefaultPolicy()
	if cfg.RetryAttempts > 0 {
		policy.MaxAttempts = cfg.RetryAttempts
	}
	if cfg.RetryBaseDelay > 0 {
		policy.BaseDelay = cfg.RetryBaseDelay
	}
	if cfg.RetryMaxDelay > 0 {
		policy.MaxDelay = cfg.RetryMaxDelay
	}
	policy.Timeout = cfg.AttemptTimeout

	return &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		Retry:           policy,
		MaxTotalTimeout: cfg.MaxTotalTimeout,
	}
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}

	switch cfg.Name {
	case providerGemini:
		client, err := gemini.New(gemini.Config{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
			APIURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case providerQwen, providerAlibaba:
		return newChatProvider(providerQwen, cfg, openaicompat.QwenBaseURL, openaicompat.QwenModel)

	case providerDeepSeek:
		return newChatProvider(providerDeepSeek, cfg, openaicompat.DeepSeekBaseURL, openaicompat.DeepSeekModel)

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

func newChatProvider(name string, cfg config.ProviderConfig, baseURL, model string) (Provider, error) {
	if cfg.BaseURL != "" {
		baseURL = cfg.BaseURL
	}
	if cfg.Model != "" {
		model = cfg.Model
	}
	client, err := openaicompat.New(openaicompat.Config{APIKey: cfg.APIKey, BaseURL: baseURL, Model: model})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", name, err)
	}
	return NewChatAdapter(name, client), nil
}
