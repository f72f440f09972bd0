// Package app assembles the planner from configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inbox-planner/config"
	"inbox-planner/internal/extraction"
	extractionCache "inbox-planner/internal/extraction/cache"
	extractionUC "inbox-planner/internal/extraction/usecase"
	"inbox-planner/internal/pipeline"
	"inbox-planner/internal/pipeline/source"
	pipelineUC "inbox-planner/internal/pipeline/usecase"
	"inbox-planner/internal/schedule"
	"inbox-planner/pkg/datemath"
	"inbox-planner/pkg/gauth"
	"inbox-planner/pkg/gcalendar"
	"inbox-planner/pkg/gdocs"
	"inbox-planner/pkg/gmail"
	"inbox-planner/pkg/llmprovider"
	"inbox-planner/pkg/log"
)

const defaultTimezone = "UTC"

// Planner is the wired pipeline plus what callers need to present its output.
type Planner struct {
	UC       pipeline.UseCase
	Window   schedule.Window
	Location *time.Location
	close    func() error
}

// Close releases the response cache connection.
func (p Planner) Close() error {
	if p.close == nil {
		return nil
	}
	return p.close()
}

// Build wires Google sources, the LLM extractor and the pipeline.
// Google sources are optional: without credentials only supplied input can be planned.
func Build(ctx context.Context, cfg *config.Config, l log.Logger) (Planner, error) {
	timezone := cfg.Google.Timezone
	if timezone == "" {
		timezone = defaultTimezone
	}
	parser, err := datemath.NewParser(timezone)
	if err != nil {
		l.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, err)
		timezone = defaultTimezone
		parser, _ = datemath.NewParser(timezone)
	}

	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, l)
	if err != nil {
		return Planner{}, fmt.Errorf("llm providers: %w", err)
	}
	manager := llmprovider.NewManager(providers, llmprovider.ManagerConfig(&cfg.LLM), l)

	cache, closeCache := extractionCache.New(ctx, cfg.Cache, l)
	extractor := extractionUC.New(l, manager, cache, extraction.Config{
		Owner:          cfg.Pipeline.Owner,
		RequestsPerSec: cfg.LLM.RequestsPerSec,
		Burst:          cfg.LLM.Burst,
	})

	deps := pipelineUC.Deps{
		Extractor: extractor,
		Parser:    parser,
	}
	if err := wireGoogle(ctx, cfg, timezone, &deps); err != nil {
		l.Warnf(ctx, "Google sources not available: %v", err)
		if errors.Is(err, gauth.ErrNoToken) {
			l.Warn(ctx, "Run `go run ./scripts/gauth` to generate a token file")
		}
	} else {
		l.Info(ctx, "Google sources initialized")
	}

	opts := pipeline.OptionsFromConfig(cfg, parser.Location())
	return Planner{
		UC:       pipelineUC.New(l, deps, opts),
		Window:   opts.Window,
		Location: parser.Location(),
		close:    closeCache,
	}, nil
}

func wireGoogle(ctx context.Context, cfg *config.Config, timezone string, deps *pipelineUC.Deps) error {
	if cfg.Google.CredentialsPath == "" {
		return errors.New("google.credentials_path is not set")
	}

	opt, err := gauth.ClientOption(ctx, gauth.Config{
		CredentialsPath: cfg.Google.CredentialsPath,
		TokenPath:       cfg.Google.TokenPath,
		Scopes:          gauth.Scopes,
	})
	if err != nil {
		return err
	}

	mail, err := gmail.NewClient(ctx, opt)
	if err != nil {
		return fmt.Errorf("gmail: %w", err)
	}
	cal, err := gcalendar.NewClient(ctx, opt)
	if err != nil {
		return fmt.Errorf("calendar: %w", err)
	}
	docs, err := gdocs.NewClient(ctx, opt)
	if err != nil {
		return fmt.Errorf("docs: %w", err)
	}

	calendar := source.NewCalendar(cal, cfg.Google.CalendarID, timezone)
	deps.Items = source.NewMailbox(mail, cfg.Gmail.Query)
	deps.Calendar = calendar
	deps.Writer = calendar
	deps.Docs = source.NewDocs(docs)
	return nil
}
