//go:build unit

package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"fablab-billing/internal/handler/httperr"
	"fablab-billing/internal/handler/middleware"
	"fablab-billing/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logRecord struct {
	Msg   string   `json:"msg"`
	Error string   `json:"error"`
	Path  string   `json:"path"`
	Stack []string `json:"stack"`
}

// captureLogs routes the default slog logger into a buffer for the duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func records(t *testing.T, buf *bytes.Buffer) []logRecord {
	t.Helper()
	var out []logRecord
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var r logRecord
		require.NoError(t, json.Unmarshal(line, &r))
		out = append(out, r)
	}
	return out
}

func newErrorRouter(h gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.ErrorHandler())
	r.GET("/x", h)
	return r
}

func TestRecovery(t *testing.T) {
	buf := captureLogs(t)
	router := newErrorRouter(func(*gin.Context) { panic("boom") })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, rec.Body.String())

	logs := records(t, buf)
	require.Len(t, logs, 1)
	assert.Equal(t, "recovered from panic", logs[0].Msg)
	assert.Equal(t, "panic: boom", logs[0].Error)
	assert.Equal(t, "/x", logs[0].Path)
	require.Greater(t, len(logs[0].Stack), 1)
	assert.Contains(t, logs[0].Stack[0], "panic: boom")
}

func TestErrorHandler_Logging(t *testing.T) {
	t.Run("server errors are logged with their stack", func(t *testing.T) {
		buf := captureLogs(t)
		router := newErrorRouter(func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("pool exhausted"), "Internal server error", nil)
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		logs := records(t, buf)
		require.Len(t, logs, 1)
		assert.Equal(t, "handler error", logs[0].Msg)
		assert.Equal(t, "pool exhausted", logs[0].Error)
		require.Greater(t, len(logs[0].Stack), 1)
		assert.Contains(t, logs[0].Stack[0], "pool exhausted")
	})

	t.Run("client errors are not logged", func(t *testing.T) {
		buf := captureLogs(t)
		router := newErrorRouter(func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusNotFound, errs.New("no such reservation"), "Reservation not found", nil)
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, records(t, buf))
	})
}
