package httputil

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRouterRecoversPanics(t *testing.T) {
	r := NewRouter(discardLogger())
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRouterSetsNoDeadline(t *testing.T) {
	r := NewRouter(discardLogger())
	var hasDeadline bool
	r.Get("/slow", func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, hasDeadline)
}

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	HealthHandler(discardLogger())(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		CareerTitle string `json:"careerTitle"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"careerTitle":"SRE"}`))
	require.NoError(t, DecodeJSON(req, &v))
	assert.Equal(t, "SRE", v.CareerTitle)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"careerTitle":"SRE"} {"x":1}`))
	assert.Error(t, DecodeJSON(req, &v))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{broken`))
	assert.Error(t, DecodeJSON(req, &v))
}

func TestValidationError(t *testing.T) {
	type payload struct {
		CareerTitle string `validate:"required"`
	}
	err := Validator.Struct(payload{})
	require.Error(t, err)

	w := httptest.NewRecorder()
	ValidationError(discardLogger(), w, err)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "validation failed", body["error"])
	assert.Contains(t, body["detail"], "payload.CareerTitle failed required")
}

func TestMetricsHandler(t *testing.T) {
	w := httptest.NewRecorder()
	MetricsHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
