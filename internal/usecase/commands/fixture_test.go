//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"fablab-billing/internal/pkg/clock"
	"fablab-billing/internal/usecase/shared"
	sharedmock "fablab-billing/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// uowFixture wires a unit of work whose Within runs the callback against mocked repositories.
type uowFixture struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	txReads       *sharedmock.MockCommandReads
	reservations  *sharedmock.MockReservationRepository
	pricing       *sharedmock.MockPricingRepository
	surveys       *sharedmock.MockSurveyRepository
	notifications *sharedmock.MockNotificationRepository
	clock         *clock.MockClock
}

func newUowFixture(t *testing.T) *uowFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &uowFixture{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		txReads:       sharedmock.NewMockCommandReads(ctrl),
		reservations:  sharedmock.NewMockReservationRepository(ctrl),
		pricing:       sharedmock.NewMockPricingRepository(ctrl),
		surveys:       sharedmock.NewMockSurveyRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		clock:         clock.NewMockClock(fixedNow),
	}

	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()

	f.tx.EXPECT().Reads().Return(f.txReads).AnyTimes()
	f.tx.EXPECT().Reservations().Return(f.reservations).AnyTimes()
	f.tx.EXPECT().Pricing().Return(f.pricing).AnyTimes()
	f.tx.EXPECT().Surveys().Return(f.surveys).AnyTimes()
	f.tx.EXPECT().Notifications().Return(f.notifications).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	return f
}
