package usecase

import (
	"time"

	"inbox-planner/internal/pipeline"
	"inbox-planner/pkg/datemath"
	pkgLog "inbox-planner/pkg/log"
)

// Deps are the collaborators of the pipeline. Only Extractor is required;
// Plan reports a diagnostic for every missing source.
type Deps struct {
	Extractor pipeline.Extractor
	Items     pipeline.ItemSource
	Calendar  pipeline.CalendarSource
	Docs      pipeline.DocSource
	Writer    pipeline.CalendarWriter
	Parser    *datemath.Parser
}

type implUseCase struct {
	l         pkgLog.Logger
	extractor pipeline.Extractor
	items     pipeline.ItemSource
	calendar  pipeline.CalendarSource
	docs      pipeline.DocSource
	writer    pipeline.CalendarWriter
	parser    *datemath.Parser
	opts      pipeline.Options
	now       func() time.Time
}

// New creates a pipeline UseCase.
func New(l pkgLog.Logger, deps Deps, opts pipeline.Options) pipeline.UseCase {
	if opts.Workers <= 0 {
		opts.Workers = pipeline.DefaultWorkers
	}
	if opts.ItemTimeout <= 0 {
		opts.ItemTimeout = pipeline.DefaultItemTimeout
	}
	if opts.ItemLimit <= 0 {
		opts.ItemLimit = pipeline.DefaultItemLimit
	}
	if opts.EventLimit <= 0 {
		opts.EventLimit = pipeline.DefaultEventLimit
	}

	parser := deps.Parser
	if parser == nil {
		parser = defaultParser(opts.Window.Location)
	}

	return &implUseCase{
		l:         l,
		extractor: deps.Extractor,
		items:     deps.Items,
		calendar:  deps.Calendar,
		docs:      deps.Docs,
		writer:    deps.Writer,
		parser:    parser,
		opts:      opts,
		now:       time.Now,
	}
}

func defaultParser(loc *time.Location) *datemath.Parser {
	name := "UTC"
	if loc != nil {
		name = loc.String()
	}
	p, err := datemath.NewParser(name)
	if err != nil {
		p, _ = datemath.NewParser("UTC")
	}
	return p
}
