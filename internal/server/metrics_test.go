package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/agbru/ghlookup/internal/github"
	"github.com/agbru/ghlookup/internal/logging"
	"github.com/agbru/ghlookup/internal/metrics"
)

func newTestServer() (*Server, *metrics.LookupRecorder) {
	rec := metrics.NewLookupRecorder()
	return New("127.0.0.1:0", rec, WithLogger(newTestLogger())), rec
}

// TestNewMetrics tests the Metrics constructor.
func TestNewMetrics(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	if m.handler == nil {
		t.Error("Metrics.handler should be initialized")
	}
}

// TestMetrics_ActiveRequests tests the active requests gauge.
func TestMetrics_ActiveRequests(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.IncrementActiveRequests()
	m.IncrementActiveRequests()
	m.DecrementActiveRequests()
	if got := testutil.ToFloat64(m.activeRequests); got != 1 {
		t.Errorf("active requests = %v, want 1", got)
	}
}

// TestMetrics_WritePrometheus tests the Prometheus metrics output.
func TestMetrics_WritePrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.ObserveRequest("/metrics", http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	m.WritePrometheus(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	body := rec.Body.String()
	for _, want := range []string{"ghlookup_http_active_requests", `ghlookup_http_requests_total{path="/metrics",status="200"} 1`} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output should contain %q", want)
		}
	}
}

// TestServer_metricsMiddleware tests the metrics tracking middleware.
func TestServer_metricsMiddleware(t *testing.T) {
	s, _ := newTestServer()

	nextCalled := false
	handler := s.metricsMiddleware(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusTeapot)
	})
	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/test", http.NoBody))

	if !nextCalled {
		t.Error("next handler was not called")
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
	if got := testutil.ToFloat64(s.metrics.requestsTotal.WithLabelValues(UnmatchedRoute, "418")); got != 1 {
		t.Errorf("requests_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(s.metrics.activeRequests); got != 0 {
		t.Errorf("active requests = %v, want 0 after completion", got)
	}
}

func TestServer_RouteLabelsAreBounded(t *testing.T) {
	s, _ := newTestServer()
	for _, path := range []string{"/healthz", "/healthz", "/wp-admin", "/random/1", "/random/2"} {
		s.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, http.NoBody))
	}

	if got := testutil.ToFloat64(s.metrics.requestsTotal.WithLabelValues("/healthz", "200")); got != 2 {
		t.Errorf("requests_total{path=/healthz} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(s.metrics.requestsTotal.WithLabelValues(UnmatchedRoute, "404")); got != 3 {
		t.Errorf("requests_total{path=unmatched} = %v, want 3", got)
	}
	if got := testutil.CollectAndCount(s.metrics.requestsTotal); got != 2 {
		t.Errorf("requests_total series = %d, want 2", got)
	}
}

// TestServer_handleMetrics tests the /metrics endpoint handler.
func TestServer_handleMetrics(t *testing.T) {
	s, rec := newTestServer()
	rec.LookupStarted()
	rec.LookupFinished(github.OutcomeSuccess, time.Millisecond)

	t.Run("GET returns metrics", func(t *testing.T) {
		w := httptest.NewRecorder()
		s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
		}
		if !strings.Contains(w.Body.String(), `ghlookup_lookup_finished_total{outcome="success"} 1`) {
			t.Error("response should contain lookup metrics")
		}
		if w.Header().Get("X-Content-Type-Options") != "nosniff" {
			t.Error("security headers should be applied")
		}
	})

	for _, method := range []string{http.MethodPost, http.MethodPut} {
		t.Run(method+" returns method not allowed", func(t *testing.T) {
			w := httptest.NewRecorder()
			s.handleMetrics(w, httptest.NewRequest(method, "/metrics", http.NoBody))
			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
			}
		})
	}
}

func TestServer_handleHealth(t *testing.T) {
	s, _ := newTestServer()
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status = %v, want ok", body["status"])
	}
	if _, ok := body["goroutines"]; !ok {
		t.Error("health response should include runtime readings")
	}
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	rec := metrics.NewLookupRecorder()
	s := New("127.0.0.1:0", rec)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v, want nil", err)
		}
	case <-time.After(ShutdownTimeout + time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestServer_RunReportsListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	s := New(l.Addr().String(), metrics.NewLookupRecorder())
	err = s.Run(context.Background())
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		t.Errorf("expected bind error, got %v", err)
	}
}

// testLogger is a minimal logger for testing that implements logging.Logger.
type testLogger struct{}

func newTestLogger() *testLogger                                  { return &testLogger{} }
func (l *testLogger) Info(_ string, _ ...logging.Field)           {}
func (l *testLogger) Warn(_ string, _ ...logging.Field)           {}
func (l *testLogger) Error(_ string, _ error, _ ...logging.Field) {}
func (l *testLogger) Debug(_ string, _ ...logging.Field)          {}
func (l *testLogger) Printf(_ string, _ ...any)                   {}
func (l *testLogger) Println(_ ...any)                            {}
