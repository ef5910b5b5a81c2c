package status_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealtrack/gateway/internal/status"
	"github.com/mealtrack/gateway/internal/status/schema"
)

func serve(t *testing.T, req *http.Request) *http.Response {
	t.Helper()

	w := httptest.NewRecorder()
	status.Handler().ServeHTTP(w, req)

	return w.Result()
}

func TestHandler_Get(t *testing.T) {
	res := serve(t, httptest.NewRequest(http.MethodGet, "/", nil))
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "application/json", res.Header.Get("Content-Type"))
	assert.Equal(t, `{"status": "ok", "message": "API is working!"}`, string(body))
}

func TestHandler_BodyMatchesSchema(t *testing.T) {
	s, err := schema.New()
	require.NoError(t, err)

	res := serve(t, httptest.NewRequest(http.MethodGet, "/api", nil))
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	result, err := s.Validate(body)
	require.NoError(t, err)
	assert.True(t, result.Valid(), result.Errors())

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, map[string]any{
		"status":  "ok",
		"message": "API is working!",
	}, decoded)
}

func TestHandler_IgnoresRequest(t *testing.T) {
	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/", ""},
		{http.MethodGet, "/api/entries?day=2024-01-01", ""},
		{http.MethodPost, "/api", `{"name":"toast"}`},
		{http.MethodDelete, "/whatever", ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			res := serve(t, req)
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, http.StatusOK, res.StatusCode)
			assert.Equal(t, "application/json", res.Header.Get("Content-Type"))
			assert.Equal(t, status.Payload, string(body))
		})
	}
}

func TestHandler_Idempotent(t *testing.T) {
	var first []byte

	for i := 0; i < 5; i++ {
		res := serve(t, httptest.NewRequest(http.MethodGet, "/", nil))
		body, err := io.ReadAll(res.Body)
		res.Body.Close()
		require.NoError(t, err)

		if first == nil {
			first = body
			continue
		}

		assert.True(t, bytes.Equal(first, body), "response %d differs", i)
	}
}
