//go:build e2e

package billing_test

import (
	"fmt"
	"net/http"
	"testing"

	"fablab-billing/internal/domain/billing"
	"fablab-billing/internal/domain/reservation"
	"fablab-billing/internal/domain/user"
	"fablab-billing/internal/handler/dto/request"
	"fablab-billing/internal/handler/dto/response"
	"fablab-billing/internal/usecase/commands"
	"fablab-billing/tests/common/authtest"
	"fablab-billing/tests/common/builder"
	"fablab-billing/tests/common/dbtest"
	"fablab-billing/tests/common/httptest"
	"fablab-billing/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	billingURL    = "/api/reservations/%s/billing"
	inputsURL     = "/api/reservations/%s/billing/inputs"
	refreshURL    = "/api/reservations/%s/billing/refresh"
	correctionURL = "/api/admin/reservations/%s/billing"
	pricingURL    = "/api/pricing"
	adminPricing  = "/api/admin/pricing"
)

type BillingSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *BillingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *BillingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBillingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BillingSuite))
}

// seedLaserSession stores an ongoing reservation billed at ₱90.00 whose laser cutter ran 90 minutes.
func (s *BillingSuite) seedLaserSession(t *testing.T, mutate ...func(*builder.ReservationBuilder)) *builder.ReservationBuilder {
	t.Helper()
	b := builder.NewReservationBuilder()
	for _, m := range mutate {
		b.With(m)
	}
	dbtest.CreateReservation(t, s.DB, b)
	dbtest.CreateUtilization(t, s.DB, b.ID, 0,
		builder.Utilization("Laser Cutter", "Laser Cutting", builder.Interval("2025-03-01", "09:00", "10:30", "Ana")))
	return b
}

// =============================================================================
// TestGetBilling - derived billing view
// =============================================================================

func (s *BillingSuite) TestGetBilling() {
	s.Run("Normal case: owner sees the recomputed total and the discrepancy", func() {
		t := s.T()
		res := s.seedLaserSession(t)
		token := s.jwt.GenerateToken(t, res.UserID, user.RoleUser)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(billingURL, res.ID), nil, token)

		var actual response.BillingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &actual)

		stored := "90.00"
		expected := response.BillingResponse{
			ReservationID: res.ID.String(),
			Status:        string(reservation.StatusOngoing),
			Basis:         string(billing.BasisActual),
			Reconciliation: response.ReconciliationResponse{
				CalculatedTotal: "100.00",
				StoredTotal:     &stored,
				HasDiscrepancy:  true,
			},
			Summary: response.SummaryResponse{
				TotalActualMinutes:        90,
				TotalRoundedMinutes:       120,
				TotalBookedMinutes:        60,
				TotalRoundedBookedMinutes: 60,
				ActualHours:               "1.5",
				RoundedHours:              "2.0",
				BookedHours:               "1.0",
				RoundedBookedHours:        "1.0",
				TotalDisplay:              "₱100.00",
			},
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BillingResponse{}, "Lines", "Banner"),
		}
		if diff := cmp.Diff(expected, actual, opts...); diff != "" {
			t.Errorf("Billing response mismatch (-want +got):\n%s", diff)
		}

		require.Len(t, actual.Lines, 1)
		assert.Equal(t, "Laser Cutter", actual.Lines[0].MatchedMachine)
		assert.Equal(t, 120, actual.Lines[0].BilledMinutes)
		assert.Equal(t, "pricing_rule", actual.Lines[0].PriceSource)
		assert.True(t, actual.Banner.Visible)
	})

	s.Run("Normal case: staff may view any reservation", func() {
		t := s.T()
		res := s.seedLaserSession(t)
		_, token := s.jwt.NewUserToken(t, user.RoleStaff)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(billingURL, res.ID), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("Error case: another user is denied", func() {
		t := s.T()
		res := s.seedLaserSession(t)
		_, token := s.jwt.NewUserToken(t, user.RoleUser)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(billingURL, res.ID), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Access denied")
	})

	s.Run("Error case: unknown reservation", func() {
		t := s.T()
		_, token := s.jwt.NewUserToken(t, user.RoleStaff)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(billingURL, uuid.New()), nil, token)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Error case: missing and expired tokens", func() {
		t := s.T()
		res := s.seedLaserSession(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(billingURL, res.ID), nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		expired := s.jwt.CreateExpiredToken(t, res.UserID, user.RoleUser)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(billingURL, res.ID), nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: malformed reservation id", func() {
		t := s.T()
		_, token := s.jwt.NewUserToken(t, user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(billingURL, "not-a-uuid"), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid reservation id")
	})
}

func (s *BillingSuite) TestGetInputs() {
	s.Run("Normal case: inputs decode into the engine document and recompute identically", func() {
		t := s.T()
		res := s.seedLaserSession(t)
		_, token := s.jwt.NewUserToken(t, user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(inputsURL, res.ID), nil, token)

		var in billing.Inputs
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &in)
		assert.Equal(t, res.ID.String(), in.ReservationID)
		require.Len(t, in.Utilizations, 1)
		require.Len(t, in.Utilizations[0].OperatingTimes, 1)
		assert.Equal(t, "09:00", in.Utilizations[0].OperatingTimes[0].StartTime)

		state := billing.Recompute(billing.DefaultConfig(), in)
		assert.Equal(t, "₱100.00", state.Summary.TotalDisplay)
	})
}

// =============================================================================
// TestRefresh - recompute with write-back
// =============================================================================

func (s *BillingSuite) TestRefresh() {
	s.Run("Normal case: admin refresh persists the correction once", func() {
		t := s.T()
		res := s.seedLaserSession(t)
		_, token := s.jwt.NewUserToken(t, user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(refreshURL, res.ID), nil, token)

		var first response.RefreshResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &first)
		assert.True(t, first.Attempted)
		assert.Equal(t, string(billing.SyncPersisted), first.Remote)
		assert.Equal(t, "Billing corrected to ₱100.00 based on rounded operation times", first.Message)

		total, billed := dbtest.StoredBilling(t, s.DB, res.ID)
		require.NotNil(t, total)
		assert.Equal(t, "100.00", *total)
		require.Len(t, billed, 1)
		require.NotNil(t, billed[0])
		assert.Equal(t, 120, *billed[0])
		assert.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, commands.NotificationKindBillingCorrected))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(refreshURL, res.ID), nil, token)

		var second response.RefreshResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &second)
		assert.False(t, second.Attempted)
		assert.False(t, second.Reconciliation.HasDiscrepancy)
		assert.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, commands.NotificationKindBillingCorrected))
	})

	s.Run("Normal case: a reservation without lines is corrected to zero", func() {
		t := s.T()
		res := builder.NewReservationBuilder().WithoutServices()
		dbtest.CreateReservation(t, s.DB, res)
		_, token := s.jwt.NewUserToken(t, user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(refreshURL, res.ID), nil, token)

		var actual response.RefreshResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &actual)
		assert.True(t, actual.Attempted)
		assert.Equal(t, string(billing.SyncPersisted), actual.Remote)
		assert.Empty(t, actual.Error)

		total, billed := dbtest.StoredBilling(t, s.DB, res.ID)
		require.NotNil(t, total)
		assert.Equal(t, "0.00", *total)
		assert.Empty(t, billed)
	})

	s.Run("Normal case: owner refresh only recomputes", func() {
		t := s.T()
		res := s.seedLaserSession(t)
		token := s.jwt.GenerateToken(t, res.UserID, user.RoleUser)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(refreshURL, res.ID), nil, token)

		var actual response.RefreshResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &actual)
		assert.False(t, actual.Attempted)
		assert.Equal(t, "₱100.00", actual.Summary.TotalDisplay)

		total, _ := dbtest.StoredBilling(t, s.DB, res.ID)
		assert.Equal(t, "90.00", *total)
	})

	s.Run("Normal case: completed reservations are never rewritten", func() {
		t := s.T()
		res := s.seedLaserSession(t, func(b *builder.ReservationBuilder) {
			b.Status = reservation.StatusCompleted
		})
		_, token := s.jwt.NewUserToken(t, user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(refreshURL, res.ID), nil, token)

		var actual response.RefreshResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &actual)
		assert.False(t, actual.Attempted)
		assert.True(t, actual.Reconciliation.HasDiscrepancy)

		total, _ := dbtest.StoredBilling(t, s.DB, res.ID)
		assert.Equal(t, "90.00", *total)
	})

	s.Run("Normal case: booked basis before the session starts", func() {
		t := s.T()
		res := builder.NewReservationBuilder().WithStatus(reservation.StatusApproved)
		dbtest.CreateReservation(t, s.DB, res)
		_, token := s.jwt.NewUserToken(t, user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(refreshURL, res.ID), nil, token)

		var actual response.RefreshResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &actual)
		assert.Equal(t, string(billing.BasisBooked), actual.Basis)
		assert.Contains(t, actual.Message, "rounded booked times")

		total, billed := dbtest.StoredBilling(t, s.DB, res.ID)
		assert.Equal(t, "50.00", *total)
		assert.Equal(t, 60, *billed[0])
	})
}

// =============================================================================
// TestApplyCorrection - admin write-back endpoint
// =============================================================================

func (s *BillingSuite) TestApplyCorrection() {
	s.Run("Normal case: admin writes explicit minutes", func() {
		t := s.T()
		res := s.seedLaserSession(t)
		_, token := s.jwt.NewUserToken(t, user.RoleAdmin)

		body := request.CorrectionRequest{
			TotalAmount: "150.00",
			Services:    []request.ServiceMinutesRequest{{ID: res.Services[0].ID.String(), Minutes: "180"}},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(correctionURL, res.ID), body, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		total, billed := dbtest.StoredBilling(t, s.DB, res.ID)
		assert.Equal(t, "150.00", *total)
		assert.Equal(t, 180, *billed[0])
	})

	s.Run("Error case: staff cannot write", func() {
		t := s.T()
		res := s.seedLaserSession(t)
		_, token := s.jwt.NewUserToken(t, user.RoleStaff)

		body := request.CorrectionRequest{
			TotalAmount: "150.00",
			Services:    []request.ServiceMinutesRequest{{ID: res.Services[0].ID.String(), Minutes: "180"}},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(correctionURL, res.ID), body, token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("Error case: invalid corrections", func() {
		t := s.T()
		res := s.seedLaserSession(t)
		_, token := s.jwt.NewUserToken(t, user.RoleAdmin)
		lineID := res.Services[0].ID.String()

		cases := []struct {
			name   string
			body   any
			status int
		}{
			{name: "missing total", body: map[string]any{"services": []any{}}, status: http.StatusBadRequest},
			{name: "negative minutes", body: request.CorrectionRequest{TotalAmount: "10.00", Services: []request.ServiceMinutesRequest{{ID: lineID, Minutes: "-5"}}}, status: http.StatusBadRequest},
			{name: "unknown line", body: request.CorrectionRequest{TotalAmount: "10.00", Services: []request.ServiceMinutesRequest{{ID: uuid.NewString(), Minutes: "60"}}}, status: http.StatusUnprocessableEntity},
		}
		for _, tc := range cases {
			w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(correctionURL, res.ID), tc.body, token)
			assert.Equal(t, tc.status, w.Code, "%s: %s", tc.name, w.Body.String())
		}

		total, _ := dbtest.StoredBilling(t, s.DB, res.ID)
		assert.Equal(t, "90.00", *total)
	})
}

// =============================================================================
// TestPricing - rate card
// =============================================================================

func (s *BillingSuite) TestPricing() {
	s.Run("Normal case: admin price change is used by the next recompute", func() {
		t := s.T()
		res := s.seedLaserSession(t)
		_, admin := s.jwt.NewUserToken(t, user.RoleAdmin)

		body := request.UpsertPricingRequest{ServiceName: "Laser Cutting", CostPerUnit: "75", Unit: "hour"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, adminPricing, body, admin)

		var updated response.PricingRuleResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)
		assert.Equal(t, "75.00", updated.CostPerUnit)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, pricingURL, nil, admin)
		var rules []response.PricingRuleResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &rules)
		assert.Len(t, rules, 2)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(billingURL, res.ID), nil, admin)
		var view response.BillingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		assert.Equal(t, "₱150.00", view.Summary.TotalDisplay)
	})

	s.Run("Error case: invalid unit is rejected", func() {
		t := s.T()
		_, admin := s.jwt.NewUserToken(t, user.RoleAdmin)

		body := request.UpsertPricingRequest{ServiceName: "Laser Cutting", CostPerUnit: "75", Unit: "week"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, adminPricing, body, admin)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("Error case: users cannot change prices", func() {
		t := s.T()
		_, token := s.jwt.NewUserToken(t, user.RoleUser)

		body := request.UpsertPricingRequest{ServiceName: "Laser Cutting", CostPerUnit: "1", Unit: "hour"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, adminPricing, body, token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}
