package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/iho/pixdash/internal/infrastructure/metrics"
)

func TestMetricsMiddlewareRecordsRequest(t *testing.T) {
	testCases := []struct {
		name       string
		method     string
		path       string
		wantLabel  string
		statusCode int
	}{
		{
			name:       "labels by route pattern",
			method:     http.MethodPost,
			path:       "/api/v1/transfers/TX123/cancel",
			wantLabel:  "/api/v1/transfers/{id}/cancel",
			statusCode: http.StatusNoContent,
		},
		{
			name:       "keeps static route",
			method:     http.MethodGet,
			path:       "/health",
			wantLabel:  "/health",
			statusCode: http.StatusOK,
		},
		{
			name:       "collapses unknown routes",
			method:     http.MethodGet,
			path:       "/api/v1/unknown/42",
			wantLabel:  "unmatched",
			statusCode: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := metrics.New(prometheus.NewRegistry())

			r := chi.NewRouter()
			r.Use(Metrics(m))
			r.Post("/api/v1/transfers/{id}/cancel", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})
			r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))

			if rr.Code != tc.statusCode {
				t.Fatalf("expected status %d, got %d", tc.statusCode, rr.Code)
			}

			counter := m.HTTPRequests.WithLabelValues(tc.method, tc.wantLabel, strconv.Itoa(tc.statusCode))
			if got := testutil.ToFloat64(counter); got != 1 {
				t.Fatalf("expected counter to be 1, got %v", got)
			}

			if count := testutil.CollectAndCount(m.HTTPDuration); count != 1 {
				t.Fatalf("expected one duration series, got %d", count)
			}
		})
	}
}

func TestMetricsMiddlewareWithoutRouter(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	Metrics(m)(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/plain", nil))

	counter := m.HTTPRequests.WithLabelValues(http.MethodGet, "/plain", "418")
	if got := testutil.ToFloat64(counter); got != 1 {
		t.Fatalf("expected raw path label, got %v", got)
	}
}
