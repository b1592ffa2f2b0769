package survey

import (
	"errors"
	"time"

	"fablab-billing/internal/domain/reservation"

	"github.com/google/uuid"
)

var (
	ErrInvalidRating          = errors.New("rating must be between 1 and 5")
	ErrCommentTooLong         = errors.New("comment exceeds maximum length")
	ErrReservationNotEligible = errors.New("reservation is not eligible for a satisfaction survey")
	ErrNotReservationOwner    = errors.New("only the reservation owner can submit a survey")
)

// Survey is the post-service satisfaction feedback for one completed reservation.
type Survey struct {
	id            uuid.UUID
	reservationID uuid.UUID
	userID        uuid.UUID
	rating        Rating
	comment       Comment
	createdAt     time.Time
}

// NewSurvey validates the feedback against the reservation it belongs to.
func NewSurvey(res *reservation.Reservation, userID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Survey, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}
	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}
	if !res.IsOwnedBy(userID) {
		return nil, ErrNotReservationOwner
	}
	if res.Status() != reservation.StatusCompleted {
		return nil, ErrReservationNotEligible
	}

	return &Survey{
		id:            uuid.New(),
		reservationID: res.ID(),
		userID:        userID,
		rating:        rating,
		comment:       comment,
		createdAt:     now,
	}, nil
}

func (s *Survey) ID() uuid.UUID            { return s.id }
func (s *Survey) ReservationID() uuid.UUID { return s.reservationID }
func (s *Survey) UserID() uuid.UUID        { return s.userID }
func (s *Survey) Rating() Rating           { return s.rating }
func (s *Survey) Comment() Comment         { return s.comment }
func (s *Survey) CreatedAt() time.Time     { return s.createdAt }
