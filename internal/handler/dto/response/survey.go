package response

import (
	"fablab-billing/internal/usecase/queries"
)

type SurveyResponse struct {
	ID            string `json:"id"`
	ReservationID string `json:"reservationId"`
	UserID        string `json:"userId"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
	CreatedAt     int64  `json:"createdAt"`
}

func FromSurveyView(v *queries.SurveyView) SurveyResponse {
	var res SurveyResponse
	copyInto(&res, v)
	return res
}

type SubmitSurveyResponse struct {
	SurveyID string `json:"surveyId"`
}
