package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	pipelineHTTP "inbox-planner/internal/pipeline/delivery/http"
)

// setupPipelineDomain registers the plan routes.
//
// Pattern to follow when adding a new domain:
//  1. Build the UseCase in main and pass it through Config.
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc, ...)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, srv.mw)
func (srv HTTPServer) setupPipelineDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := pipelineHTTP.New(srv.l, srv.pipelineUC, srv.window)

	// Registers /api/v1/plan/run and /api/v1/plan/sync
	pipelineHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Plan domain registered")
	return nil
}
