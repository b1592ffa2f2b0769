package api

import (
	"net/http"

	"fablab-billing/internal/domain/user"
	reqdto "fablab-billing/internal/handler/dto/request"
	resdto "fablab-billing/internal/handler/dto/response"
	"fablab-billing/internal/handler/httperr"
	"fablab-billing/internal/handler/middleware"
	"fablab-billing/internal/usecase/commands"
	"fablab-billing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BillingHandler struct {
	cmds commands.BillingCommands
	q    queries.BillingQueries
}

func NewBillingHandler(cmds commands.BillingCommands, q queries.BillingQueries) *BillingHandler {
	return &BillingHandler{cmds: cmds, q: q}
}

// @Summary Get billing
// @Description Recompute the billing of a reservation from its stored inputs without writing anything
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.BillingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/billing [get]
func (h *BillingHandler) GetBilling(c *gin.Context) {
	id, actor, ok := reservationRequest(c)
	if !ok {
		return
	}
	view, err := h.q.GetBilling(c.Request.Context(), id, actor)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBillingView(view))
}

// @Summary Get billing inputs
// @Description Stored service lines, utilization records and the rate card of a reservation, in the engine input shape
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} billing.Inputs
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/billing/inputs [get]
func (h *BillingHandler) GetInputs(c *gin.Context) {
	id, actor, ok := reservationRequest(c)
	if !ok {
		return
	}
	view, err := h.q.GetInputs(c.Request.Context(), id, actor)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBillingInputsView(view))
}

// @Summary Refresh billing
// @Description Recompute the billing and, for admins, write a corrected total back when it disagrees with the stored one.
// @Description A failed write-back still returns 200 with the local result and remote "failed".
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.RefreshResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/billing/refresh [post]
func (h *BillingHandler) Refresh(c *gin.Context) {
	id, actor, ok := reservationRequest(c)
	if !ok {
		return
	}
	result, err := h.cmds.Refresh(c.Request.Context(), id, actor)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRefreshResult(result))
}

// @Summary Apply billing correction
// @Description Persist a corrected total and per-line billed minutes
// @Tags billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.CorrectionRequest true "Billing correction"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/reservations/{id}/billing [patch]
func (h *BillingHandler) ApplyCorrection(c *gin.Context) {
	id, actor, ok := reservationRequest(c)
	if !ok {
		return
	}
	var req reqdto.CorrectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.ApplyCorrection(c.Request.Context(), id, req.ToCorrection(), actor); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func reservationRequest(c *gin.Context) (uuid.UUID, user.Actor, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id", nil)
		return uuid.Nil, user.Actor{}, false
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return uuid.Nil, user.Actor{}, false
	}
	return id, actor, true
}
