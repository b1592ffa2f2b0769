package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"fablab-billing/internal/handler/httperr"
	"fablab-billing/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLogLines = 12

// ErrorHandler renders the last public error attached by httperr when a handler returned
// without writing a body. Anything else becomes a generic 500. Server errors are logged with
// the head of their stack trace.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			if c.Writer.Status() >= http.StatusInternalServerError && len(c.Errors) > 0 {
				logServerError(c, "handler error", c.Errors.Last().Err)
			}
			return
		}
		if resp, ok := lastPublicResponse(c); ok {
			c.JSON(resp.Status, resp)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		if len(c.Errors) > 0 {
			logServerError(c, "unhandled handler error", c.Errors.Last().Err)
		}
		httperr.Abort(c, http.StatusInternalServerError, "Internal server error")
	}
}

func lastPublicResponse(c *gin.Context) (httperr.Response, bool) {
	for i := len(c.Errors) - 1; i >= 0; i-- {
		if !c.Errors[i].IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := c.Errors[i].Meta.(httperr.Response); ok {
			return resp, true
		}
	}
	return httperr.Response{}, false
}

// Recovery turns a panic into the standard error body so clients never see a bare 500.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				// still on the panicking goroutine's stack, so the trace points at the panic site
				var err error
				if e, ok := rec.(error); ok {
					err = errs.Wrap(e, "panic")
				} else {
					err = errs.New(fmt.Sprintf("panic: %v", rec))
				}
				logServerError(c, "recovered from panic", err)
				httperr.Abort(c, http.StatusInternalServerError, "Internal server error")
			}
		}()
		c.Next()
	}
}

func logServerError(c *gin.Context, msg string, err error) {
	slog.Error(msg,
		"request_id", GetRequestID(c),
		"path", c.Request.URL.Path,
		"error", err.Error(),
		"stack", errs.ExtractStackLines(err, stackLogLines))
}
