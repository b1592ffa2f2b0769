package api

import (
	"net/http"

	reqdto "fablab-billing/internal/handler/dto/request"
	resdto "fablab-billing/internal/handler/dto/response"
	"fablab-billing/internal/handler/httperr"
	"fablab-billing/internal/handler/middleware"
	"fablab-billing/internal/usecase/commands"
	"fablab-billing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	cmds commands.PricingCommands
	q    queries.PricingQueries
}

func NewPricingHandler(cmds commands.PricingCommands, q queries.PricingQueries) *PricingHandler {
	return &PricingHandler{cmds: cmds, q: q}
}

// @Summary List pricing
// @Description Current rate card
// @Tags pricing
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PricingRuleResponse
// @Failure 401 {object} httperr.Response
// @Router /pricing [get]
func (h *PricingHandler) List(c *gin.Context) {
	rules, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPricingViews(rules))
}

// @Summary Upsert pricing rule
// @Description Create or replace the price of a service
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpsertPricingRequest true "Pricing rule"
// @Success 200 {object} resdto.PricingRuleResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/pricing [put]
func (h *PricingHandler) Upsert(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.UpsertPricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	rule, err := h.cmds.Upsert(c.Request.Context(), req.ToCommand(), actor)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPricingRule(rule))
}
