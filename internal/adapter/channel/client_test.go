package channel

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automark/internal/core/domain"
)

func TestDoHTTPErrorIncludesStatusAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("bad request"))
	}))
	t.Cleanup(server.Close)

	c := newPlatformClient(domain.ChannelMetaAds, NewHTTPClient(time.Second), "automark-test")
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	_, err = c.do(context.Background(), "create campaign", req, nil)
	require.Error(t, err)

	var ie *domain.IntegrationError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, http.StatusBadRequest, ie.StatusCode)
	assert.Equal(t, domain.ChannelMetaAds, ie.Channel)
	assert.Contains(t, err.Error(), "status=400")
	assert.Contains(t, err.Error(), "body=bad request")
}

func TestDoSendsUserAgent(t *testing.T) {
	var ua string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`{"id":"1"}`))
	}))
	t.Cleanup(server.Close)

	c := newPlatformClient(domain.ChannelMetaAds, nil, "automark-test")
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	var out struct {
		ID string `json:"id"`
	}
	_, err = c.do(context.Background(), "op", req, &out)
	require.NoError(t, err)
	assert.Equal(t, "1", out.ID)
	assert.Equal(t, "automark-test", ua)
}

func TestDoTimeoutClassified(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	c := newPlatformClient(domain.ChannelGoogleAds, NewHTTPClient(20*time.Millisecond), "")
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	_, err = c.do(context.Background(), "op", req, nil)
	require.Error(t, err)
	if !strings.Contains(err.Error(), "timeout") {
		t.Fatalf("expected timeout classification, got %v", err)
	}
}

func TestDoNetworkErrorClassified(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := server.URL
	server.Close()

	c := newPlatformClient(domain.ChannelLinkedInAds, NewHTTPClient(time.Second), "")
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, addr, nil)
	require.NoError(t, err)

	_, err = c.do(context.Background(), "op", req, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "network error")
}
