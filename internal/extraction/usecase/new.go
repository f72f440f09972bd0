package usecase

import (
	"time"

	"golang.org/x/time/rate"

	"inbox-planner/internal/extraction"
	pkgLog "inbox-planner/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	llm      extraction.Generator
	cache    extraction.Cache
	limiter  *rate.Limiter
	maxTasks int
	temp     float64
	owner    string
	now      func() time.Time
}

// New creates an extraction UseCase. cache may be nil to disable caching.
func New(l pkgLog.Logger, llm extraction.Generator, cache extraction.Cache, cfg extraction.Config) extraction.UseCase {
	uc := &implUseCase{
		l:        l,
		llm:      llm,
		cache:    cache,
		maxTasks: cfg.MaxTasks,
		temp:     cfg.Temperature,
		owner:    cfg.Owner,
		now:      cfg.Now,
	}
	if uc.maxTasks <= 0 {
		uc.maxTasks = extraction.DefaultMaxTasks
	}
	if uc.temp <= 0 {
		uc.temp = extraction.DefaultTemperature
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	if cfg.RequestsPerSec > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		uc.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), burst)
	}
	return uc
}
