// Package integration provides end-to-end tests that drive the API over a real TCP listener
// using the fully wired application container.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/mynumber/internal/app"
	"github.com/allisson/mynumber/internal/config"
	"github.com/allisson/mynumber/internal/httputil"
	"github.com/allisson/mynumber/internal/mynumber/domain"
	"github.com/allisson/mynumber/internal/mynumber/http/dto"
)

// integrationTestContext holds all dependencies and state for integration testing.
type integrationTestContext struct {
	container     *app.Container
	server        *httptest.Server
	metricsServer *httptest.Server
}

// makeRequest performs an HTTP request and returns the response and body.
func (ctx *integrationTestContext) makeRequest(
	t *testing.T,
	method, path string,
	body any,
) (*http.Response, []byte) {
	t.Helper()

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(t, err, "failed to marshal request body")
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequest(method, ctx.server.URL+path, bodyReader)
	require.NoError(t, err, "failed to create request")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: 10 * time.Second}
	//nolint:gosec // controlled test environment with localhost URLs
	resp, err := client.Do(req)
	require.NoError(t, err, "failed to perform request")

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	if closeErr := resp.Body.Close(); closeErr != nil {
		t.Logf("Warning: failed to close response body: %v", closeErr)
	}

	return resp, respBody
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v), "body: %s", body)
	return v
}

// setupIntegrationTest builds the container and serves its routers on ephemeral ports.
func setupIntegrationTest(t *testing.T) *integrationTestContext {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		ServerHost:       "127.0.0.1",
		LogLevel:         "error",
		ShutdownTimeout:  5 * time.Second,
		MetricsEnabled:   true,
		MetricsNamespace: "integration",
		GenerateMaxCount: 50,
		RangeMaxResults:  20,
	}
	container := app.NewContainer(cfg)

	apiServer, err := container.HTTPServer()
	require.NoError(t, err)
	metricsServer, err := container.MetricsServer()
	require.NoError(t, err)
	require.NotNil(t, metricsServer)

	ctx := &integrationTestContext{
		container:     container,
		server:        httptest.NewServer(apiServer.GetHandler()),
		metricsServer: httptest.NewServer(metricsServer.GetHandler()),
	}

	t.Cleanup(func() {
		ctx.server.Close()
		ctx.metricsServer.Close()
		assert.NoError(t, apiServer.Shutdown(context.Background()))
		assert.NoError(t, container.Shutdown(context.Background()))
	})

	return ctx
}

func TestIntegration_Health_BasicChecks(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	ctx := setupIntegrationTest(t)

	resp, body := ctx.makeRequest(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"healthy"}`, string(body))
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	// Not started through Start, so the server reports not ready.
	resp, _ = ctx.makeRequest(t, http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp, body = ctx.makeRequest(t, http.MethodGet, "/v1/unknown", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "not_found", decode[httputil.ErrorResponse](t, body).Error)
}

func TestIntegration_MyNumber_CompleteFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	ctx := setupIntegrationTest(t)

	var generated []string

	t.Run("01_Generate", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodGet, "/v1/mynumber/generate?count=5", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", body)

		generated = decode[dto.NumbersResponse](t, body).Numbers
		require.Len(t, generated, 5)
	})

	t.Run("02_VerifyGenerated", func(t *testing.T) {
		for _, value := range generated {
			n, err := domain.Parse(value)
			require.NoError(t, err)

			resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/mynumber/verify", dto.DigitsRequest{Digits: n.Digits()})
			require.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", body)
			assert.True(t, decode[dto.VerifyResponse](t, body).Valid, value)
		}
	})

	t.Run("03_CheckDigitAndComplete", func(t *testing.T) {
		digits := []int{6, 1, 4, 1, 0, 6, 5, 2, 6, 0, 0}

		resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/mynumber/check-digit", dto.DigitsRequest{Digits: digits})
		require.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", body)
		assert.Equal(t, 0, decode[dto.CheckDigitResponse](t, body).CheckDigit)

		resp, body = ctx.makeRequest(t, http.MethodPost, "/v1/mynumber/complete", dto.DigitsRequest{Digits: digits})
		require.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", body)
		assert.Equal(t, "614106526000", decode[dto.NumberResponse](t, body).Number)
	})

	t.Run("04_ParseAndFormat", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/mynumber/parse", dto.ParseRequest{Value: "６１４１-０６５２-６０００"})
		require.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", body)
		assert.Equal(t, "614106526000", decode[dto.NumberResponse](t, body).Number)

		resp, body = ctx.makeRequest(t, http.MethodPost, "/v1/mynumber/format",
			dto.FormatRequest{Value: "614106526000", Mode: "G"})
		require.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", body)
		assert.Equal(t, "6141-0652-600-0", decode[dto.FormatResponse](t, body).Formatted)
	})

	t.Run("05_Range", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/mynumber/range",
			dto.RangeRequest{Min: "0", Max: "100"})
		require.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", body)

		result := decode[dto.RangeResponse](t, body)
		assert.Equal(t, 10, result.Count)
		assert.False(t, result.Truncated)
		assert.Equal(t, "000000000094", result.Numbers[9])

		resp, body = ctx.makeRequest(t, http.MethodPost, "/v1/mynumber/range",
			dto.RangeRequest{Min: "0", Max: "99", Mode: "sequential"})
		require.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", body)

		result = decode[dto.RangeResponse](t, body)
		assert.Equal(t, 20, result.Count)
		assert.True(t, result.Truncated)
	})

	t.Run("06_CoreErrorsAreClientErrors", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/mynumber/verify", dto.DigitsRequest{Digits: []int{1, 2, 3}})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Contains(t, decode[httputil.ErrorResponse](t, body).Message, "must be 12 digits, got 3")

		resp, _ = ctx.makeRequest(t, http.MethodPost, "/v1/mynumber/range", dto.RangeRequest{Min: "20", Max: "3"})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		resp, _ = ctx.makeRequest(t, http.MethodGet, "/v1/mynumber/generate?count=500", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("07_MetricsExposed", func(t *testing.T) {
		resp, err := http.Get(ctx.metricsServer.URL + "/metrics")
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), "integration_operations_total")
		assert.Contains(t, string(body), "integration_http_requests_total")
	})
}
