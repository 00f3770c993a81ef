// Package apitest simulates the backend service for route tests.
package apitest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"

	"github.com/Vasu1712/spring-playground/internal/backend"
	"github.com/Vasu1712/spring-playground/internal/proxy"
)

// Call is one request the simulated backend received.
type Call struct {
	Method string
	Path   string
	Body   string
}

// Backend answers every request with the configured status and body and records it.
type Backend struct {
	Server *httptest.Server
	Client *backend.Client

	mu     sync.Mutex
	calls  []Call
	status int
	body   string
}

// NewBackend starts a simulated backend that is closed when the test ends.
func NewBackend(t *testing.T) *Backend {
	t.Helper()
	b := &Backend{status: http.StatusOK, body: `{}`}
	b.Server = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.Server.Close)
	b.Client = backend.NewClient(b.Server.URL, 0)
	return b
}

// Reply sets the response for subsequent calls.
func (b *Backend) Reply(status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.status, b.body = status, body
}

// Calls returns what the backend has received so far.
func (b *Backend) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Call(nil), b.calls...)
}

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) {
	data, _ := io.ReadAll(r.Body)
	b.mu.Lock()
	b.calls = append(b.calls, Call{Method: r.Method, Path: r.URL.EscapedPath(), Body: string(data)})
	status, body := b.status, b.body
	b.mu.Unlock()

	w.WriteHeader(status)
	io.WriteString(w, body)
}

// Router returns a router with the proxy's JSON 405 handler, ready for route registration.
func Router() *mux.Router {
	r := mux.NewRouter()
	r.MethodNotAllowedHandler = proxy.MethodNotAllowed()
	return r
}

// Do serves one request through h and returns the recorder.
func Do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}
