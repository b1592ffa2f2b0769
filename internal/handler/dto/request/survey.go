package request

import (
	"fablab-billing/internal/usecase/commands"

	"github.com/google/uuid"
)

// Range and length are checked by the survey domain so that violations surface as 422.
type SubmitSurveyRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

func (r *SubmitSurveyRequest) ToCommand(reservationID uuid.UUID) commands.SubmitSurveyRequest {
	return commands.SubmitSurveyRequest{
		ReservationID: reservationID,
		Rating:        r.Rating,
		Comment:       r.Comment,
	}
}
