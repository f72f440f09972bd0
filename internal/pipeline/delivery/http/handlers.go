package http

import (
	"github.com/gin-gonic/gin"

	"inbox-planner/pkg/response"
)

// Run godoc
// @Summary     Plan supplied items
// @Description Extracts tasks from the given items, prioritises them and proposes calendar blocks around the given events.
// @Tags        Plan
// @Accept      json
// @Produce     json
// @Param       body body runReq true "Items, events, manual tasks and window overrides"
// @Success     200  {object} planResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plan/run [POST]
func (h *handler) Run(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRunReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput(h.window)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Run(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Run: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newPlanResp(output))
}

// Sync godoc
// @Summary     Plan from the connected accounts
// @Description Fetches recent emails and upcoming events, plans them, and optionally books the proposed blocks.
// @Tags        Plan
// @Accept      json
// @Produce     json
// @Param       body body syncReq false "Fetch limits, meeting doc, commit flag and window overrides"
// @Success     200  {object} planResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/plan/sync [POST]
func (h *handler) Sync(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSyncReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput(h.window)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Plan(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Plan: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newPlanResp(output))
}

func (h *handler) writeError(c *gin.Context, err error) {
	if isClientError(err) {
		response.Error(c, err, nil)
		return
	}
	response.InternalError(c, err)
}
