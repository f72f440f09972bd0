package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"inbox-planner/internal/extraction"
	"inbox-planner/internal/model"
	"inbox-planner/pkg/llmprovider"
	"inbox-planner/pkg/metrics"
)

const (
	kindEmail   = "email"
	kindMeeting = "meeting"
)

func (uc *implUseCase) Extract(ctx context.Context, text string) (model.ExtractionResult, error) {
	if strings.TrimSpace(text) == "" {
		return model.ExtractionResult{}, extraction.ErrEmptyInput
	}

	system, user := buildEmailPrompt(text, uc.today(), uc.maxTasks)
	raw, err := uc.generate(ctx, kindEmail, system, user)
	if err != nil {
		return model.ExtractionResult{}, err
	}

	res, err := uc.parse(ctx, raw, uc.maxTasks)
	if err != nil {
		return model.ExtractionResult{}, err
	}
	if res.Category == model.CategoryPromo || res.Category == model.CategoryOther {
		res.Tasks = nil
	}
	return res, nil
}

func (uc *implUseCase) ExtractMeeting(ctx context.Context, notes string) (model.ExtractionResult, error) {
	if strings.TrimSpace(notes) == "" {
		return model.ExtractionResult{}, extraction.ErrEmptyInput
	}

	system, user := buildMeetingPrompt(notes, uc.today(), uc.owner)
	raw, err := uc.generate(ctx, kindMeeting, system, user)
	if err != nil {
		return model.ExtractionResult{}, err
	}

	res, err := uc.parse(ctx, raw, 0)
	if err != nil {
		return model.ExtractionResult{}, err
	}
	res.Category = model.CategoryMeeting
	return res, nil
}

// generate returns the raw model answer, from cache when possible.
func (uc *implUseCase) generate(ctx context.Context, kind, system, user string) (string, error) {
	key := cacheKey(kind, system, user)
	if uc.cache != nil {
		if v, ok := uc.cache.Get(ctx, key); ok {
			uc.l.Debugf(ctx, "extraction.usecase.generate: cache hit kind=%s", kind)
			return v, nil
		}
	}

	if uc.limiter != nil {
		if err := uc.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("%w: rate limiter: %w", extraction.ErrGeneration, err)
		}
	}

	start := time.Now()
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: system,
		Messages:          []llmprovider.Message{{Role: "user", Text: user}},
		Temperature:       uc.temp,
		MaxTokens:         2048,
		JSONMode:          true,
	})
	metrics.RecordExtractionLatency(kind, err, time.Since(start))
	if err != nil {
		uc.l.Errorf(ctx, "extraction.usecase.generate: kind=%s err=%v", kind, err)
		return "", fmt.Errorf("%w: %w", extraction.ErrGeneration, err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", fmt.Errorf("%w: empty response from %s", extraction.ErrMalformedResponse, resp.ProviderName)
	}
	if uc.cache != nil {
		uc.cache.Set(ctx, key, text)
	}
	return text, nil
}

// parse decodes the answer, falling back to a bullet list when the JSON is broken.
func (uc *implUseCase) parse(ctx context.Context, raw string, maxTasks int) (model.ExtractionResult, error) {
	wr, err := decodeResult(raw)
	if err != nil {
		bullets := ParseBulletTasks(raw)
		if len(bullets) == 0 {
			uc.l.Warnf(ctx, "extraction.usecase.parse: undecodable answer %q", raw)
			return model.ExtractionResult{}, fmt.Errorf("%w: %w", extraction.ErrMalformedResponse, err)
		}
		uc.l.Warnf(ctx, "extraction.usecase.parse: JSON decode failed, recovered %d bullet tasks", len(bullets))
		if maxTasks > 0 && len(bullets) > maxTasks {
			bullets = bullets[:maxTasks]
		}
		return model.ExtractionResult{Category: model.CategoryProject, Tasks: bullets}, nil
	}

	tasks := toTasks(wr.Tasks, maxTasks)
	return model.ExtractionResult{
		Summary:  strings.TrimSpace(wr.Summary),
		Category: parseCategory(wr.Category, len(tasks) > 0),
		Tasks:    tasks,
	}, nil
}

func (uc *implUseCase) today() string {
	return uc.now().Format(time.DateOnly)
}
