package http

import (
	"github.com/gin-gonic/gin"

	"inbox-planner/internal/pipeline"
	"inbox-planner/internal/schedule"
	"inbox-planner/pkg/log"
)

// Handler is the public interface for the plan HTTP delivery layer.
type Handler interface {
	Run(c *gin.Context)
	Sync(c *gin.Context)
}

type handler struct {
	l      log.Logger
	uc     pipeline.UseCase
	window schedule.Window
}

// New creates a new HTTP handler for the plan domain. window is the base that
// request overrides are applied to.
func New(l log.Logger, uc pipeline.UseCase, window schedule.Window) Handler {
	return &handler{
		l:      l,
		uc:     uc,
		window: window,
	}
}
