package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const octocatJSON = `{"login":"octocat","name":"The Octocat","bio":"mascot","public_repos":8,
"avatar_url":"https://avatars.example/u/583231","html_url":"https://github.com/octocat"}`

func TestClient_FetchSendsHeaders(t *testing.T) {
	requests := make(chan *http.Request, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests <- r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(octocatJSON))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL + "/", Token: "t0k", UserAgent: "ghlookup-test"}, srv.Client())
	result := client.Fetch(context.Background(), "octocat")

	success, ok := result.(Success)
	require.True(t, ok, "expected Success, got %#v", result)
	assert.Equal(t, "octocat", success.Profile.Login)
	assert.Equal(t, "The Octocat", success.Profile.DisplayLabel())
	assert.Equal(t, 8, success.Profile.PublicRepos)

	got := <-requests
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/users/octocat", got.URL.Path)
	assert.Equal(t, MediaType, got.Header.Get("Accept"))
	assert.Equal(t, APIVersion, got.Header.Get(HeaderAPIVersion))
	assert.Equal(t, "Bearer t0k", got.Header.Get("Authorization"))
	assert.Equal(t, "ghlookup-test", got.Header.Get("User-Agent"))
}

func TestClient_UserURLEscapesHandle(t *testing.T) {
	client := NewClient(ClientConfig{}, nil)
	assert.Equal(t, DefaultBaseURL, client.BaseURL())
	assert.Equal(t, "https://api.github.com/users/a%2Fb%20c", client.UserURL("a/b c"))
}

func TestClient_FetchNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	result := NewClient(ClientConfig{BaseURL: srv.URL}, srv.Client()).Fetch(context.Background(), "no-such-user-xyz")
	assert.Equal(t, HTTPFailure{StatusCode: 404, Message: MessageNotFound}, result)
}

func TestClient_FetchRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.Header().Set("X-RateLimit-Reset", "1640995200")
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	result := NewClient(ClientConfig{BaseURL: srv.URL}, srv.Client()).Fetch(context.Background(), "octocat")
	assert.Equal(t, HTTPFailure{
		StatusCode: 403,
		Message:    MessageRateLimited,
		RateLimit:  &RateLimit{Remaining: "0", ResetEpoch: "1640995200"},
	}, result)
}

func TestClient_FetchCancelledMidFlight(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan LookupResult, 1)
	go func() {
		done <- NewClient(ClientConfig{BaseURL: srv.URL}, srv.Client()).Fetch(ctx, "octocat")
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case result := <-done:
		assert.Equal(t, NetworkFailure{Message: MessageCancelled, Cancelled: true}, result)
	case <-time.After(5 * time.Second):
		t.Fatal("Fetch did not return after cancellation")
	}
}

func TestClient_FetchClientTimeoutIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	httpClient := &http.Client{Timeout: 50 * time.Millisecond}
	result := NewClient(ClientConfig{BaseURL: srv.URL}, httpClient).Fetch(context.Background(), "octocat")

	assert.Equal(t, NetworkFailure{Message: MessageFailed}, result)
}

type stubHTTPClient struct {
	err   error
	calls int
}

func (s *stubHTTPClient) Do(*http.Request) (*http.Response, error) {
	s.calls++
	return nil, s.err
}

func TestClient_FetchTransportError(t *testing.T) {
	stub := &stubHTTPClient{err: errors.New("dial tcp: no route to host")}
	result := NewClient(ClientConfig{}, stub).Fetch(context.Background(), "octocat")
	assert.Equal(t, NetworkFailure{Message: MessageFailed}, result)
	assert.Equal(t, 1, stub.calls)
}

func TestClient_LimiterWaitHonoursCancellation(t *testing.T) {
	stub := &stubHTTPClient{err: errors.New("unreachable")}
	client := NewClient(ClientConfig{RequestsPerSecond: 0.001, Burst: 1}, stub)

	// First call drains the single token.
	client.Fetch(context.Background(), "first")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result := client.Fetch(ctx, "second")

	assert.True(t, IsCancelled(result), "expected cancelled result, got %#v", result)
	assert.Equal(t, 1, stub.calls, "throttled call must not reach the transport")
}
