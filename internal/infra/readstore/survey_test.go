//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"fablab-billing/internal/infra"
	"fablab-billing/internal/infra/readstore"
	sqlc "fablab-billing/internal/infra/sqlc/generated"
	"fablab-billing/internal/pkg/pgconv"
	readstoremock "fablab-billing/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSurveyReadStore_FindByReservationID(t *testing.T) {
	ctx := context.Background()
	reservationID := uuid.New()

	testCases := []struct {
		name       string
		row        sqlc.SatisfactionSurvey
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: survey found",
			row: sqlc.SatisfactionSurvey{
				ID:            uuid.New(),
				ReservationID: reservationID,
				UserID:        uuid.New(),
				Rating:        4,
				Comment:       "Great lab assistant",
				CreatedAt:     pgconv.TimeToPgtype(time.Now()),
			},
		},
		{name: "error: survey not found", err: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: database error", err: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := readstoremock.NewMockSurveyViewQueries(ctrl)
			m.EXPECT().GetSurveyByReservationID(ctx, gomock.Any(), reservationID).Return(tc.row, tc.err)

			view, err := readstore.NewSurveyReadStore(m, &mockDBTX{}).FindByReservationID(ctx, reservationID)

			if tc.err != nil {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 4, view.Rating)
			assert.Equal(t, "Great lab assistant", view.Comment)
			assert.Equal(t, reservationID, view.ReservationID)
		})
	}
}
