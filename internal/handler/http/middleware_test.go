package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-spellbook/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- withTraceID ----

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name          string
		requestHeader string
		wantTraceID   string
	}{
		{name: "client trace id is reused", requestHeader: "client-trace", wantTraceID: "client-trace"},
		{name: "trace id is generated", wantTraceID: "trace-id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			h := newTestHandler(t, nil)
			h.logger = &logger.Logger{Logger: zerolog.New(buf)}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
			})

			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			if tt.requestHeader != "" {
				req.Header.Set(traceIDHeader, tt.requestHeader)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantTraceID, rec.Header().Get(traceIDHeader))
			assert.Contains(t, buf.String(), `"trace_id":"`+tt.wantTraceID+`"`)
		})
	}
}

// ---- withLogging ----

func TestWithLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	h := newTestHandler(t, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("Missing required parameters."))
	})

	req := httptest.NewRequest(http.MethodPost, "/newaccount", nil)
	req = req.WithContext(zerolog.New(buf).WithContext(req.Context()))
	rec := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rec, req)

	log := buf.String()
	assert.Contains(t, log, `"method":"POST"`)
	assert.Contains(t, log, `"uri":"/newaccount"`)
	assert.Contains(t, log, `"status":400`)
	assert.Contains(t, log, `"size":28`)
	assert.Contains(t, log, `"duration":`)
}

// ---- responseWriter ----

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusOK, w.status, "Write sends an implicit 200")

	w.WriteHeader(http.StatusInternalServerError)
	assert.Equal(t, http.StatusOK, w.status, "a second WriteHeader is dropped")
	assert.Equal(t, http.StatusOK, rec.Code)

	_, _ = w.Write([]byte(" world"))
	assert.Equal(t, 11, w.size)
	assert.Equal(t, "hello world", rec.Body.String())
	assert.Same(t, rec, w.Unwrap())
}

// ---- CheckHTTPMethod ----

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }
	router.Post("/newaccount", ok)
	router.Get("/login/{username}", ok)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantAllow  string
	}{
		{name: "registered", method: http.MethodPost, path: "/newaccount", wantStatus: http.StatusOK},
		{name: "wrong method", method: http.MethodGet, path: "/newaccount", wantStatus: http.StatusMethodNotAllowed, wantAllow: http.MethodPost},
		{name: "wrong method on parameterised route", method: http.MethodPost, path: "/login/wizard1", wantStatus: http.StatusMethodNotAllowed, wantAllow: http.MethodGet},
		{name: "only unknown methods", method: http.MethodDelete, path: "/newaccount", wantStatus: http.StatusMethodNotAllowed, wantAllow: http.MethodPost},
		{name: "unknown path", method: http.MethodGet, path: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Allow"))
		})
	}
}
