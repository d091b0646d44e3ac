package middleware

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestApp(t *testing.T, m Middleware) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(m.NewRequestIDMiddleware())
	app.Use(m.NewLoggingMiddleware)
	app.Get("/id", func(c *fiber.Ctx) error {
		return c.SendString(m.GetRequestID(c))
	})
	app.Post("/echo", m.NewRateLimiter, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func TestRequestID_Generated(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	app := newTestApp(t, New(logger))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/id", nil))
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.Len(t, string(body), 26)
	assert.Equal(t, string(body), resp.Header.Get(RequestIDKey))
}

func TestRequestID_Propagated(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	app := newTestApp(t, New(logger))

	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set(RequestIDKey, "client-id")
	resp, err := app.Test(req)
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "client-id", string(body))
}

func TestRateLimiter(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "0.001")
	t.Setenv("RATE_LIMIT_BURST", "2")

	logger, _ := logtest.NewNullLogger()
	app := newTestApp(t, New(logger))

	var codes []int
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/echo", nil))
		require.NoError(t, err)
		codes = append(codes, resp.StatusCode)
	}

	assert.Equal(t, []int{fiber.StatusNoContent, fiber.StatusNoContent, fiber.StatusTooManyRequests}, codes)
}

func TestLoggingMiddleware(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	app := newTestApp(t, New(logger))

	long := strings.Repeat("a", 300)
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"message":"`+long+`"}`))
	req.Header.Set("Content-Type", "application/json")
	_, err := app.Test(req)
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, fiber.StatusNoContent, entry.Data["status"])
	assert.NotContains(t, entry.Data["request_body"], long)

	_, err = app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := newRateLimiter(1, 1, time.Minute)
	limiter.now = func() time.Time { return now }
	limiter.lastSweep = now

	for i := 0; i < 1000; i++ {
		limiter.GetLimiterFrom(fmt.Sprintf("10.0.%d.%d", i/256, i%256))
	}
	assert.Equal(t, 1000, limiter.Len())

	now = now.Add(30 * time.Second)
	active := limiter.GetLimiterFrom("10.0.0.1")
	assert.Equal(t, 1000, limiter.Len())

	now = now.Add(45 * time.Second)
	assert.Same(t, active, limiter.GetLimiterFrom("10.0.0.1"))
	assert.Equal(t, 1, limiter.Len())
}

func TestRateLimiter_KeepsBucketForActiveClient(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := newRateLimiter(rate.Limit(0.001), 1, time.Minute)
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.GetLimiterFrom("192.0.2.1").Allow())
	now = now.Add(10 * time.Second)
	assert.False(t, limiter.GetLimiterFrom("192.0.2.1").Allow())
}
