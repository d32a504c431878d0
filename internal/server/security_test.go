package server

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/agbru/ghlookup/internal/metrics"
)

func newSecuredServer(opts ...Option) *Server {
	return New("127.0.0.1:0", metrics.NewLookupRecorder(), opts...)
}

func TestDefaultSecurityConfig(t *testing.T) {
	t.Parallel()
	cfg := DefaultSecurityConfig()
	if !cfg.EnableCORS {
		t.Error("scrapers from other origins should be allowed by default")
	}
	if !slices.Equal(cfg.AllowedOrigins, []string{"*"}) {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if !slices.Contains(cfg.AllowedMethods, http.MethodGet) || slices.Contains(cfg.AllowedMethods, http.MethodPost) {
		t.Errorf("AllowedMethods = %v, want read-only", cfg.AllowedMethods)
	}
}

func TestServer_HardeningHeaders(t *testing.T) {
	t.Parallel()
	srv := newSecuredServer()

	for _, path := range []string{"/healthz", "/metrics", "/missing"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, http.NoBody))

			want := map[string]string{
				"X-Content-Type-Options":  "nosniff",
				"X-Frame-Options":         "DENY",
				"X-XSS-Protection":        "1; mode=block",
				"Referrer-Policy":         "strict-origin-when-cross-origin",
				"Content-Security-Policy": "default-src 'none'; frame-ancestors 'none'",
			}
			for header, value := range want {
				if got := rec.Header().Get(header); got != value {
					t.Errorf("%s = %q, want %q", header, got, value)
				}
			}
		})
	}
}

func TestSecurityMiddleware_CORS(t *testing.T) {
	t.Parallel()
	pinned := SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"https://grafana.example", "https://ops.example"},
		AllowedMethods: []string{http.MethodGet},
	}
	tests := []struct {
		name   string
		config SecurityConfig
		origin string
		want   string
	}{
		{"disabled", SecurityConfig{}, "https://grafana.example", ""},
		{"wildcard", DefaultSecurityConfig(), "https://anywhere.example", "*"},
		{"wildcard without origin", DefaultSecurityConfig(), "", "*"},
		{"pinned first", pinned, "https://grafana.example", "https://grafana.example"},
		{"pinned second", pinned, "https://ops.example", "https://ops.example"},
		{"pinned mismatch", pinned, "https://evil.example", ""},
		{"pinned without origin", pinned, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := SecurityMiddleware(tt.config, func(http.ResponseWriter, *http.Request) {})
			req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
				t.Fatalf("Access-Control-Allow-Origin = %q, want %q", got, tt.want)
			}
			if tt.want != "" && rec.Header().Get("Access-Control-Max-Age") == "" {
				t.Error("allowed origin should carry the CORS header set")
			}
		})
	}
}

func TestServer_Preflight(t *testing.T) {
	t.Parallel()
	srv := newSecuredServer()

	req := httptest.NewRequest(http.MethodOptions, "/metrics", http.NoBody)
	req.Header.Set("Origin", "https://grafana.example")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("preflight must not reach the metrics handler, body = %q", rec.Body.String())
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "GET, OPTIONS" {
		t.Errorf("Access-Control-Allow-Methods = %q", got)
	}
}

func TestServer_CustomSecurityConfig(t *testing.T) {
	t.Parallel()
	srv := newSecuredServer(WithSecurityConfig(SecurityConfig{EnableCORS: false}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	req.Header.Set("Origin", "https://grafana.example")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("CORS disabled but Access-Control-Allow-Origin = %q", got)
	}
	if rec.Header().Get("X-Frame-Options") != "DENY" {
		t.Error("hardening headers apply even without CORS")
	}
}
