package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

import (
	"context"
	"time"

	"fablab-billing/internal/domain/pricing"
	"fablab-billing/internal/domain/reservation"
	"fablab-billing/internal/domain/survey"
	sqlc "fablab-billing/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only REPEATABLE READ transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Pricing() PricingRepository
	Surveys() SurveyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	// ReservationForUpdate locks the reservation row until the surrounding transaction ends.
	ReservationForUpdate(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	BillingInputs(ctx context.Context, id uuid.UUID) (*BillingSnapshot, error)
}

type ReservationRepository interface {
	UpdateBilling(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
}

type PricingRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, rule *pricing.Rule) error
}

type SurveyRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, s *survey.Survey) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
