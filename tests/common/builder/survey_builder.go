//go:build unit || e2e

package builder

import (
	"time"

	"fablab-billing/internal/domain/reservation"
	"fablab-billing/internal/domain/survey"

	"github.com/google/uuid"
)

// SurveyBuilder starts from a valid survey on a completed reservation owned by the submitter.
type SurveyBuilder struct {
	Reservation *ReservationBuilder
	UserID      uuid.UUID
	Rating      int
	Comment     string
	Now         time.Time
}

func NewSurveyBuilder() *SurveyBuilder {
	res := NewReservationBuilder().WithStatus(reservation.StatusCompleted)
	return &SurveyBuilder{
		Reservation: res,
		UserID:      res.UserID,
		Rating:      5,
		Comment:     "Great staff, fast turnaround",
		Now:         time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC),
	}
}

func (b *SurveyBuilder) With(mutate func(*SurveyBuilder)) *SurveyBuilder {
	mutate(b)
	return b
}

func (b *SurveyBuilder) BuildDomain() (*survey.Survey, error) {
	return survey.NewSurvey(b.Reservation.BuildDomain(), b.UserID, b.Rating, b.Comment, b.Now)
}
