package api

import (
	"net/http"

	reqdto "fablab-billing/internal/handler/dto/request"
	resdto "fablab-billing/internal/handler/dto/response"
	"fablab-billing/internal/handler/httperr"
	"fablab-billing/internal/usecase/commands"
	"fablab-billing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SurveyHandler struct {
	cmds commands.SurveyCommands
	q    queries.SurveyQueries
}

func NewSurveyHandler(cmds commands.SurveyCommands, q queries.SurveyQueries) *SurveyHandler {
	return &SurveyHandler{cmds: cmds, q: q}
}

// @Summary Submit satisfaction survey
// @Description Rate a completed reservation. One survey per reservation, owner only.
// @Tags surveys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.SubmitSurveyRequest true "Survey"
// @Success 201 {object} resdto.SubmitSurveyResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id}/survey [post]
func (h *SurveyHandler) Submit(c *gin.Context) {
	id, actor, ok := reservationRequest(c)
	if !ok {
		return
	}
	var req reqdto.SubmitSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Submit(c.Request.Context(), req.ToCommand(id), actor)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Header("Location", "/api/reservations/"+id.String()+"/survey")
	c.JSON(http.StatusCreated, resdto.SubmitSurveyResponse{SurveyID: result.SurveyID.String()})
}

// @Summary Get satisfaction survey
// @Tags surveys
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.SurveyResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/survey [get]
func (h *SurveyHandler) Get(c *gin.Context) {
	id, actor, ok := reservationRequest(c)
	if !ok {
		return
	}
	view, err := h.q.GetByReservation(c.Request.Context(), id, actor)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSurveyView(view))
}
