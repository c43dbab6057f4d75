package testsupport

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

// Route is a canned response.
type Route struct {
	Status int
	Body   []byte
}

// Request is a recorded call to the FakeAPI.
type Request struct {
	Path     string
	Query    url.Values
	Username string
	Password string
}

// FakeAPI is an httptest server answering canned JSON bodies by exact request path.
// Unknown paths answer 404. Every request is recorded.
type FakeAPI struct {
	*httptest.Server

	mu       sync.Mutex
	routes   map[string]Route
	requests []Request
}

// NewFakeAPI starts a FakeAPI that is closed when the test ends.
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()

	f := &FakeAPI{routes: make(map[string]Route)}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Close)
	return f
}

// Handle answers path with status and body.
func (f *FakeAPI) Handle(path string, status int, body []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[path] = Route{Status: status, Body: body}
}

// HandleFixture answers path with 200 and the content of fixture.
func (f *FakeAPI) HandleFixture(t *testing.T, path, fixture string) {
	t.Helper()
	f.Handle(path, http.StatusOK, LoadFixture(t, fixture))
}

// Hits counts the requests made to path.
func (f *FakeAPI) Hits(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, r := range f.requests {
		if r.Path == path {
			n++
		}
	}
	return n
}

// Requests returns a copy of every recorded request, oldest first.
func (f *FakeAPI) Requests() []Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Request(nil), f.requests...)
}

// LastRequest returns the most recent request made to path.
func (f *FakeAPI) LastRequest(path string) (Request, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := len(f.requests) - 1; i >= 0; i-- {
		if f.requests[i].Path == path {
			return f.requests[i], true
		}
	}
	return Request{}, false
}

func (f *FakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	user, pass, _ := r.BasicAuth()

	f.mu.Lock()
	f.requests = append(f.requests, Request{
		Path:     r.URL.Path,
		Query:    r.URL.Query(),
		Username: user,
		Password: pass,
	})
	route, ok := f.routes[r.URL.Path]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status":404,"title":"Not Found"}`))
		return
	}
	if route.Status == 0 {
		route.Status = http.StatusOK
	}
	w.WriteHeader(route.Status)
	w.Write(route.Body)
}
