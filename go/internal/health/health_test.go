package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckHealthy(t *testing.T) {
	c := NewChecker(time.Second)
	c.AddProbe("database", func(context.Context) error { return nil })
	c.AddDetail("websocket_clients", func(context.Context) interface{} { return 3 })

	status := c.Check(context.Background())
	assert.True(t, status.Healthy)
	assert.Equal(t, map[string]string{"database": "ok"}, status.Checks)
	assert.Equal(t, 3, status.Details["websocket_clients"])
}

func TestServeHTTPReportsFailures(t *testing.T) {
	c := NewChecker(0)
	c.AddProbe("database", func(context.Context) error { return nil })
	c.AddProbe("nats", func(context.Context) error { return errors.New("nats disconnected") })

	rec := httptest.NewRecorder()
	c.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var status Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.False(t, status.Healthy)
	assert.Equal(t, "ok", status.Checks["database"])
	assert.Equal(t, "nats disconnected", status.Checks["nats"])
}

func TestProbeSeesDeadline(t *testing.T) {
	c := NewChecker(50 * time.Millisecond)
	c.AddProbe("slow", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	status := c.Check(context.Background())
	assert.False(t, status.Healthy)
	assert.Equal(t, context.DeadlineExceeded.Error(), status.Checks["slow"])
}
