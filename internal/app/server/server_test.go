package server_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/atinyakov/go-submission-handler/internal/app/server"
	"github.com/atinyakov/go-submission-handler/internal/app/service"
	"github.com/atinyakov/go-submission-handler/internal/middleware"
	"github.com/atinyakov/go-submission-handler/internal/models"
	"github.com/atinyakov/go-submission-handler/internal/recorder"
)

func newTestServer(t *testing.T) *httptest.Server {
	svc := service.NewSubmission(recorder.NewLogRecorder(zap.NewNop()), zap.NewNop())
	ts := httptest.NewServer(server.Init(zap.NewNop(), svc, server.Options{AllowedOrigins: []string{"https://example.com"}}))
	t.Cleanup(ts.Close)
	return ts
}

func TestSubmitRoutes(t *testing.T) {
	type request struct {
		method  string
		url     string
		body    string
		headers map[string]string
	}

	type want struct {
		code        int
		contentType string
		errorText   string
	}

	tests := []struct {
		name    string
		request request
		want    want
	}{
		{
			name:    "POST / 200",
			request: request{method: http.MethodPost, url: "/", body: `{"message":"hello"}`},
			want:    want{code: http.StatusOK, contentType: "application/json"},
		},
		{
			name:    "POST /api/submit 200",
			request: request{method: http.MethodPost, url: "/api/submit", body: `{"message":"hello"}`},
			want:    want{code: http.StatusOK, contentType: "application/json"},
		},
		{
			name:    "POST netlify path 200",
			request: request{method: http.MethodPost, url: "/.netlify/functions/submit", body: `{"message":"hello"}`},
			want:    want{code: http.StatusOK, contentType: "application/json"},
		},
		{
			name:    "GET / 405",
			request: request{method: http.MethodGet, url: "/"},
			want:    want{code: http.StatusMethodNotAllowed, contentType: "application/json", errorText: "Method not allowed"},
		},
		{
			name:    "DELETE /api/submit 405",
			request: request{method: http.MethodDelete, url: "/api/submit"},
			want:    want{code: http.StatusMethodNotAllowed, contentType: "application/json", errorText: "Method not allowed"},
		},
		{
			name:    "POST whitespace 400",
			request: request{method: http.MethodPost, url: "/", body: `{"message":"  "}`},
			want:    want{code: http.StatusBadRequest, contentType: "application/json", errorText: "Message is required"},
		},
		{
			name:    "POST malformed 500",
			request: request{method: http.MethodPost, url: "/", body: `{invalid`},
			want:    want{code: http.StatusInternalServerError, contentType: "application/json", errorText: "Failed to process message"},
		},
		{
			name:    "unknown route 404",
			request: request{method: http.MethodPost, url: "/nope"},
			want:    want{code: http.StatusNotFound, contentType: "application/json", errorText: "Route not found"},
		},
	}

	ts := newTestServer(t)

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req, err := http.NewRequest(test.request.method, ts.URL+test.request.url, strings.NewReader(test.request.body))
			require.NoError(t, err)
			for k, v := range test.request.headers {
				req.Header.Set(k, v)
			}

			result, err := ts.Client().Do(req)
			require.NoError(t, err)
			defer result.Body.Close()

			assert.Equal(t, test.want.code, result.StatusCode, "unexpected status code")
			assert.Equal(t, test.want.contentType, result.Header.Get("Content-Type"), "unexpected content type")
			assert.NotEmpty(t, result.Header.Get(middleware.RequestIDHeader))

			resBody, err := io.ReadAll(result.Body)
			require.NoError(t, err)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(resBody, &body))
			if test.want.errorText != "" {
				assert.Equal(t, test.want.errorText, body["error"])
			} else {
				assert.Equal(t, true, body["success"])
			}
		})
	}
}

func TestSubmit_HeaderPrecedence(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/", strings.NewReader(`{"message":"hello"}`))
	require.NoError(t, err)
	req.Header.Set("x-nf-client-connection-ip", "1.2.3.4")
	req.Header.Set("client-ip", "5.6.7.8")
	req.Header.Set("Referer", "https://example.com/form")

	result, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer result.Body.Close()

	require.Equal(t, http.StatusOK, result.StatusCode)

	var body models.SuccessResponse
	require.NoError(t, json.NewDecoder(result.Body).Decode(&body))
	assert.Equal(t, "1.2.3.4", body.Metadata.IP)
	assert.Equal(t, "https://example.com/form", body.Metadata.Referrer)
}

func TestPing(t *testing.T) {
	ts := newTestServer(t)

	result, err := ts.Client().Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer result.Body.Close()

	body, err := io.ReadAll(result.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, "pong", string(body))
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/submit", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	result, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer result.Body.Close()

	assert.Equal(t, "https://example.com", result.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, result.Header.Get("Access-Control-Allow-Methods"), http.MethodPost)

	assert.Equal(t, http.StatusMethodNotAllowed, result.StatusCode)
	assert.Equal(t, "application/json", result.Header.Get("Content-Type"))

	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(result.Body).Decode(&body))
	assert.Equal(t, "Method not allowed", body.Error)
}
