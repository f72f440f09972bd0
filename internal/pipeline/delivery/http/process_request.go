package http

import (
	"github.com/gin-gonic/gin"
)

// processRunReq binds the run request body.
func (h *handler) processRunReq(c *gin.Context) (runReq, error) {
	var req runReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSyncReq binds the sync request body. An empty body means "use the defaults".
func (h *handler) processSyncReq(c *gin.Context) (syncReq, error) {
	var req syncReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
