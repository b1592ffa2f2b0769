//go:build unit

package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"fablab-billing/internal/domain/billing"
	"fablab-billing/internal/domain/user"
	"fablab-billing/internal/handler/dto/response"
	"fablab-billing/internal/pkg/jwt"
	"fablab-billing/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInputs(t *testing.T, in billing.Inputs) string {
	t.Helper()
	raw, err := json.Marshal(in)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "inputs.json")
	require.NoError(t, os.WriteFile(path, raw, 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(&out).Run(append([]string{"billingctl"}, args...))
	return out.String(), err
}

func TestCompute(t *testing.T) {
	path := writeInputs(t, builder.NewBillingInputsBuilder().WithStoredTotal("90.00").Build())

	t.Run("table output", func(t *testing.T) {
		out, err := run(t, "compute", "--file", path)
		require.NoError(t, err)

		assert.Contains(t, out, "Reservation: res-1")
		assert.Contains(t, out, "Laser Cutter")
		assert.Contains(t, out, "Total:   ₱100.00")
		assert.Contains(t, out, "Stored:  ₱90.00")
		assert.Contains(t, out, "rounded operation times")
	})

	t.Run("json output matches the api shape", func(t *testing.T) {
		out, err := run(t, "compute", "--file", path, "--json")
		require.NoError(t, err)

		var res response.BillingResponse
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Equal(t, "res-1", res.ReservationID)
		assert.Equal(t, "actual", res.Basis)
		require.Len(t, res.Lines, 1)
		assert.Equal(t, 120, res.Lines[0].BilledMinutes)
		assert.True(t, res.Reconciliation.HasDiscrepancy)
	})

	t.Run("default unit flag prices listed costs", func(t *testing.T) {
		perMinute := writeInputs(t, builder.NewBillingInputsBuilder().
			WithServices(builder.Line("svc-1", "Sewing", "Juki", 30, "2")).
			WithUtilizations().
			WithPricing().
			Build())

		out, err := run(t, "--default-unit", "minute", "compute", "--file", perMinute)
		require.NoError(t, err)
		assert.Contains(t, out, "Total:   ₱120.00")
	})

	t.Run("malformed document", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))

		_, err := run(t, "compute", "--file", bad)
		assert.ErrorContains(t, err, "failed to decode inputs")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, "compute", "--file", filepath.Join(t.TempDir(), "nope.json"))
		assert.ErrorContains(t, err, "failed to open inputs")
	})
}

func TestReconcile(t *testing.T) {
	newServer := func(t *testing.T, patchStatus int, patches *atomic.Int32) *httptest.Server {
		in := builder.NewBillingInputsBuilder().WithStoredTotal("90.00").Build()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			switch {
			case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/billing/inputs"):
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(in)
			case r.Method == http.MethodPatch:
				patches.Add(1)
				w.WriteHeader(patchStatus)
				if patchStatus >= 400 {
					_, _ = w.Write([]byte(`{"error":{"message":"Billing correction requires admin role"}}`))
				}
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		t.Cleanup(srv.Close)
		return srv
	}

	t.Run("report only", func(t *testing.T) {
		var patches atomic.Int32
		srv := newServer(t, http.StatusNoContent, &patches)

		out, err := run(t, "reconcile", "--server", srv.URL, "--token", "tok", "--reservation", "res-1")
		require.NoError(t, err)
		assert.Zero(t, patches.Load())
		assert.Contains(t, out, "Billing recalculated")
	})

	t.Run("fix writes the correction", func(t *testing.T) {
		var patches atomic.Int32
		srv := newServer(t, http.StatusNoContent, &patches)

		out, err := run(t, "reconcile", "--server", srv.URL, "--token", "tok", "--reservation", "res-1", "--fix", "--json")
		require.NoError(t, err)
		assert.Equal(t, int32(1), patches.Load())

		var res response.RefreshResponse
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.True(t, res.Attempted)
		assert.Equal(t, "persisted", res.Remote)
	})

	t.Run("rejected fix fails the command but prints the local result", func(t *testing.T) {
		var patches atomic.Int32
		srv := newServer(t, http.StatusForbidden, &patches)

		out, err := run(t, "reconcile", "--server", srv.URL, "--token", "tok", "--reservation", "res-1", "--fix")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "correction was not saved")
		assert.Contains(t, out, "Total:   ₱100.00")
		assert.Contains(t, out, "failed to save")
	})
}

func TestToken(t *testing.T) {
	id := uuid.New()

	out, err := run(t, "token", "--secret", "s3cret", "--user", id.String(), "--role", "staff", "--duration", "1h")
	require.NoError(t, err)

	claims, err := jwt.NewService("s3cret", time.Hour).ValidateToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, string(user.RoleStaff), claims.Role)

	_, err = run(t, "token", "--secret", "s3cret", "--role", "owner")
	assert.ErrorContains(t, err, "invalid role")

	_, err = run(t, "token", "--secret", "s3cret", "--user", "not-a-uuid")
	assert.ErrorContains(t, err, "invalid user id")
}
