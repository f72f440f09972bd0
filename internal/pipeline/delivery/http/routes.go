package http

import (
	"github.com/gin-gonic/gin"

	"inbox-planner/internal/middleware"
)

// RegisterRoutes maps the plan endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	plan := rg.Group("/plan", mw.RunID(), mw.RateLimit())
	{
		plan.POST("/run", h.Run)
		plan.POST("/sync", h.Sync)
	}
}
