package channel

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automark/internal/config/configs"
	"automark/internal/core/domain"
)

type googleFake struct {
	tokenCalls atomic.Int32
	apiCalls   atomic.Int32
	// unauthorizedOnce makes the first API call answer 401.
	unauthorizedOnce bool
	response         string

	mu       sync.Mutex
	lastBody map[string]any
}

func (f *googleFake) body() map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastBody
}

func (f *googleFake) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/token":
		n := f.tokenCalls.Add(1)
		if err := r.ParseForm(); err != nil || r.PostForm.Get("grant_type") != "refresh_token" ||
			r.PostForm.Get("refresh_token") != "refresh" || r.PostForm.Get("client_id") != "client" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-" + string(rune('0'+n)),
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	case "/v14/customers/123/campaigns:mutate", "/v14/customers/123/googleAds:searchStream":
		n := f.apiCalls.Add(1)
		if f.unauthorizedOnce && n == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("expired"))
			return
		}
		if r.Header.Get("developer-token") != "dev" || r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		f.lastBody = body
		f.mu.Unlock()
		_, _ = w.Write([]byte(f.response))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newGoogleForTest(t *testing.T, fake *googleFake) *GoogleAds {
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)
	return NewGoogleAds(configs.GoogleAds{
		ClientID:       "client",
		ClientSecret:   "secret",
		RefreshToken:   "refresh",
		CustomerID:     "123",
		DeveloperToken: "dev",
		BaseURL:        server.URL,
		TokenURL:       server.URL + "/token",
	}, NewHTTPClient(time.Second), "automark-test")
}

func TestGoogleAdsCreateCampaign(t *testing.T) {
	fake := &googleFake{response: `{"results":[{"resourceName":"customers/123/campaigns/987"}]}`}
	g := newGoogleForTest(t, fake)

	res, err := g.CreateCampaign(context.Background(), domain.LaunchSpec{
		Name:   "Spring Sale",
		Budget: decimal.RequireFromString("400.5"),
	})
	require.NoError(t, err)
	assert.Equal(t, "987", res.PlatformCampaignID)
	assert.Equal(t, "ENABLED", res.Status)

	ops := fake.body()["operations"].([]any)
	create := ops[0].(map[string]any)["create"].(map[string]any)
	assert.Equal(t, "Spring Sale", create["name"])
	assert.Equal(t, "400500000", create["campaignBudget"].(map[string]any)["amountMicros"])
}

func TestGoogleAdsTokenReused(t *testing.T) {
	fake := &googleFake{response: `{"results":[]}`}
	g := newGoogleForTest(t, fake)

	for range 3 {
		_, err := g.CreateCampaign(context.Background(), domain.LaunchSpec{Name: "x", Budget: decimal.NewFromInt(1)})
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), fake.tokenCalls.Load())
	assert.Equal(t, int32(3), fake.apiCalls.Load())
}

func TestGoogleAdsRefreshesTokenOnceOn401(t *testing.T) {
	fake := &googleFake{unauthorizedOnce: true, response: `{"results":[{"resourceName":"customers/123/campaigns/5"}]}`}
	g := newGoogleForTest(t, fake)

	res, err := g.CreateCampaign(context.Background(), domain.LaunchSpec{Name: "x", Budget: decimal.NewFromInt(10)})
	require.NoError(t, err)
	assert.Equal(t, "5", res.PlatformCampaignID)
	assert.Equal(t, int32(2), fake.tokenCalls.Load())
	assert.Equal(t, int32(2), fake.apiCalls.Load())
}

func TestGoogleAdsAuthFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	t.Cleanup(server.Close)

	g := NewGoogleAds(configs.GoogleAds{
		ClientID: "c", ClientSecret: "s", RefreshToken: "r", CustomerID: "1",
		BaseURL: server.URL, TokenURL: server.URL + "/token",
	}, NewHTTPClient(time.Second), "")

	_, err := g.CreateCampaign(context.Background(), domain.LaunchSpec{Name: "x", Budget: decimal.NewFromInt(1)})
	require.Error(t, err)
	var ie *domain.IntegrationError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, domain.ChannelGoogleAds, ie.Channel)
	assert.Contains(t, err.Error(), "authenticate")
}

func TestGoogleAdsPauseCampaign(t *testing.T) {
	fake := &googleFake{response: `{"results":[{"resourceName":"customers/123/campaigns/42"}]}`}
	g := newGoogleForTest(t, fake)

	res, err := g.PauseCampaign(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "PAUSED", res.Status)

	op := fake.body()["operations"].([]any)[0].(map[string]any)
	assert.Equal(t, "status", op["updateMask"])
	update := op["update"].(map[string]any)
	assert.Equal(t, "customers/123/campaigns/42", update["resourceName"])
	assert.Equal(t, "PAUSED", update["status"])
}

func TestGoogleAdsPerformanceSumsRows(t *testing.T) {
	fake := &googleFake{response: `[
		{"results":[
			{"metrics":{"impressions":"100","clicks":"10","conversions":1.0,"costMicros":"2500000"}},
			{"metrics":{"impressions":"50","clicks":"5","conversions":2.0,"costMicros":"1250000"}}
		]},
		{"results":[{"metrics":{"impressions":"10","clicks":"1","conversions":0,"costMicros":"0"}}]}
	]`}
	g := newGoogleForTest(t, fake)

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	m, err := g.GetCampaignPerformance(context.Background(), "42", domain.DateRange{Start: day.AddDate(0, 0, -7), End: day})
	require.NoError(t, err)
	assert.Equal(t, int64(160), m.Impressions)
	assert.Equal(t, int64(16), m.Clicks)
	assert.Equal(t, int64(3), m.Conversions)
	assert.True(t, decimal.RequireFromString("3.75").Equal(m.Spend))
	assert.Contains(t, fake.body()["query"], "BETWEEN '2026-03-03' AND '2026-03-10'")
}

func TestGoogleAdsRejectsNonNumericID(t *testing.T) {
	fake := &googleFake{}
	g := newGoogleForTest(t, fake)

	_, err := g.GetCampaignPerformance(context.Background(), "1 OR 1=1", domain.DateRange{})
	require.Error(t, err)
	_, err = g.PauseCampaign(context.Background(), "")
	require.Error(t, err)
	assert.Zero(t, fake.apiCalls.Load())
}
