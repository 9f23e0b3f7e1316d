package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"mindflow/internal/config"
	"mindflow/internal/domain"
	"mindflow/internal/metrics"
	"mindflow/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
}

func decode(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "not found", err: domain.NewNotFoundError("Routine", "r1"), wantStatus: 404, wantCode: "NOT_FOUND"},
		{name: "invalid input", err: domain.NewInvalidInputError("No fields to update"), wantStatus: 400, wantCode: "INVALID_INPUT"},
		{name: "rate limited", err: domain.NewRateLimitedError(5), wantStatus: 429, wantCode: "RATE_LIMITED"},
		{name: "internal", err: domain.NewInternalError("db down", errors.New("x")), wantStatus: 500, wantCode: "INTERNAL_ERROR"},
		{name: "validation", err: domain.ValidationErrors{domain.NewMissingFieldError("user_id")}, wantStatus: 400, wantCode: "VALIDATION_ERROR"},
		{name: "fiber error", err: fiber.NewError(fiber.StatusMethodNotAllowed, "nope"), wantStatus: 405, wantCode: "HTTP_ERROR"},
		{name: "unknown", err: errors.New("boom"), wantStatus: 500, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp()
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			body := decode(t, resp.Body)
			assert.Equal(t, tt.wantCode, body["code"])
		})
	}
}

func TestErrorHandler_NotFoundDetails(t *testing.T) {
	app := newApp()
	app.Get("/", func(c *fiber.Ctx) error { return domain.NewNotFoundError("Card", "c9") })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	body := decode(t, resp.Body)
	details, ok := body["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "c9", details["id"])
}

func TestRequireUserID(t *testing.T) {
	vm := middleware.NewValidationMiddleware()
	app := newApp()
	app.Get("/items", vm.RequireUserID(), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(middleware.ValidatedUserIDKey).(string))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/items?user_id=u_1", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	b, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "u_1", string(b))

	resp, err = app.Test(httptest.NewRequest("GET", "/items", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	body := decode(t, resp.Body)
	errs := body["errors"].([]interface{})
	assert.Equal(t, "user_id", errs[0].(map[string]interface{})["field"])
}

func TestValidateAssessmentBody(t *testing.T) {
	vm := middleware.NewValidationMiddleware()
	app := newApp()
	app.Post("/submit", vm.ValidateAssessmentBody(), func(c *fiber.Ctx) error { return c.SendStatus(204) })

	post := func(body string) int {
		req := httptest.NewRequest("POST", "/submit", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, 204, post(`[]`))
	assert.Equal(t, 204, post(`[{"question_id":1,"option_id":"a","modules":["jhana"]}]`))
	assert.Equal(t, 400, post(`[{"option_id":"a"}]`))
	assert.Equal(t, 400, post(`not json`))
}

type stubLimiter struct {
	err      error
	gotKey   string
	gotScope string
}

func (s *stubLimiter) Allow(_ context.Context, scope, key string) error {
	s.gotScope, s.gotKey = scope, key
	return s.err
}

func TestRateLimit(t *testing.T) {
	limiter := &stubLimiter{}
	app := newApp()
	app.Post("/submit", middleware.RateLimit(limiter, "assessment"), func(c *fiber.Ctx) error { return c.SendStatus(200) })

	resp, err := app.Test(httptest.NewRequest("POST", "/submit", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "assessment", limiter.gotScope)
	assert.NotEmpty(t, limiter.gotKey)

	limiter.err = domain.NewRateLimitedError(1)
	resp, err = app.Test(httptest.NewRequest("POST", "/submit", nil))
	require.NoError(t, err)
	assert.Equal(t, 429, resp.StatusCode)
}

func TestRateLimit_KeysOnForwardedClient(t *testing.T) {
	tests := []struct {
		name        string
		server      config.ServerConfig
		forwarded   string
		wantKey     string
		wantNotKeys []string
	}{
		{
			name:      "proxy header configured",
			server:    config.ServerConfig{ProxyHeader: fiber.HeaderXForwardedFor},
			forwarded: "203.0.113.7",
			wantKey:   "203.0.113.7",
		},
		{
			name:      "first address of a forwarded list",
			server:    config.ServerConfig{ProxyHeader: fiber.HeaderXForwardedFor},
			forwarded: "198.51.100.4, 10.0.0.1",
			wantKey:   "198.51.100.4",
		},
		{
			name:        "no proxy header ignores the forwarded value",
			server:      config.ServerConfig{},
			forwarded:   "203.0.113.7",
			wantNotKeys: []string{"203.0.113.7", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter := &stubLimiter{}
			app := fiber.New(middleware.AppConfig(tt.server))
			app.Post("/submit", middleware.RateLimit(limiter, "assessment"), func(c *fiber.Ctx) error { return c.SendStatus(200) })

			req := httptest.NewRequest("POST", "/submit", nil)
			req.Header.Set(fiber.HeaderXForwardedFor, tt.forwarded)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)

			if tt.wantKey != "" {
				assert.Equal(t, tt.wantKey, limiter.gotKey)
			}
			for _, k := range tt.wantNotKeys {
				assert.NotEqual(t, k, limiter.gotKey)
			}
		})
	}
}

func TestRequestLogger_RecordsErrorStatus(t *testing.T) {
	app := newApp()
	app.Use(middleware.RequestLogger())
	app.Get("/missing/:id", func(c *fiber.Ctx) error { return domain.NewNotFoundError("Card", c.Params("id")) })

	counter := metrics.HTTPRequests.WithLabelValues("GET", "/missing/:id", "404")
	before := testutil.ToFloat64(counter)

	resp, err := app.Test(httptest.NewRequest("GET", "/missing/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
