//go:build unit

package billingclient

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_HTTPClient(t *testing.T) {
	t.Run("default client leaves the deadline to the context", func(t *testing.T) {
		c := New("http://billing.local/", "token")
		assert.Zero(t, c.http.Timeout)
		assert.Equal(t, "http://billing.local", c.baseURL)
	})

	t.Run("custom client keeps its timeout", func(t *testing.T) {
		hc := &http.Client{Timeout: 5 * time.Second}
		c := New("http://billing.local", "token", WithHTTPClient(hc))
		assert.Same(t, hc, c.http)
	})
}
