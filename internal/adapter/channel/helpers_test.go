package channel

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

type capturedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// recorder answers every request with a fixed response and keeps the last
// request it saw.
type recorder struct {
	status int
	body   string
	header map[string]string

	mu    sync.Mutex
	last  capturedRequest
	calls int
}

func newRecorder(t *testing.T, status int, body string, header map[string]string) (*recorder, string) {
	t.Helper()
	rec := &recorder{status: status, body: body, header: header}
	server := httptest.NewServer(rec)
	t.Cleanup(server.Close)
	return rec, server.URL
}

func (rec *recorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b, _ := io.ReadAll(r.Body)
	rec.mu.Lock()
	rec.last = capturedRequest{
		Method: r.Method,
		Path:   r.URL.EscapedPath(),
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   b,
	}
	rec.calls++
	rec.mu.Unlock()

	for k, v := range rec.header {
		w.Header().Set(k, v)
	}
	w.WriteHeader(rec.status)
	_, _ = w.Write([]byte(rec.body))
}

func (rec *recorder) request() capturedRequest {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.last
}

func (rec *recorder) count() int {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.calls
}
