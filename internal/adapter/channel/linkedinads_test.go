package channel

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automark/internal/config/configs"
	"automark/internal/core/domain"
)

func newLinkedInForTest(baseURL string) *LinkedInAds {
	return NewLinkedInAds(configs.LinkedInAds{AccessToken: "li-token", AdAccountID: "777", BaseURL: baseURL}, NewHTTPClient(time.Second), "")
}

func TestLinkedInCreateCampaign(t *testing.T) {
	rec, base := newRecorder(t, http.StatusCreated, "", map[string]string{"X-RestLi-Id": "31337"})
	l := newLinkedInForTest(base)

	res, err := l.CreateCampaign(context.Background(), domain.LaunchSpec{Name: "B2B", Budget: decimal.RequireFromString("200")})
	require.NoError(t, err)
	assert.Equal(t, "31337", res.PlatformCampaignID)

	req := rec.request()
	assert.Equal(t, "/v2/adCampaignsV2", req.Path)
	assert.Equal(t, "Bearer li-token", req.Header.Get("Authorization"))
	assert.Equal(t, "2.0.0", req.Header.Get("X-Restli-Protocol-Version"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(req.Body, &body))
	assert.Equal(t, "urn:li:sponsoredAccount:777", body["account"])
	assert.Equal(t, "200.00", body["dailyBudget"].(map[string]any)["amount"])
	assert.Equal(t, "USD", body["dailyBudget"].(map[string]any)["currencyCode"])
}

func TestLinkedInCreateCampaignUnauthorized(t *testing.T) {
	_, base := newRecorder(t, http.StatusUnauthorized, `{"message":"Invalid access token"}`, nil)
	l := newLinkedInForTest(base)

	_, err := l.CreateCampaign(context.Background(), domain.LaunchSpec{Name: "x", Budget: decimal.NewFromInt(1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=401")
}

func TestLinkedInPauseCampaign(t *testing.T) {
	rec, base := newRecorder(t, http.StatusNoContent, "", nil)
	l := newLinkedInForTest(base)

	res, err := l.PauseCampaign(context.Background(), "31337")
	require.NoError(t, err)
	assert.Equal(t, "PAUSED", res.Status)

	req := rec.request()
	assert.Equal(t, "/v2/adCampaignsV2/31337", req.Path)
	assert.Equal(t, "PARTIAL_UPDATE", req.Header.Get("X-RestLi-Method"))
	assert.JSONEq(t, `{"patch":{"$set":{"status":"PAUSED"}}}`, string(req.Body))
}

func TestLinkedInPerformance(t *testing.T) {
	rec, base := newRecorder(t, http.StatusOK, `{"elements":[
		{"impressions":900,"clicks":30,"externalWebsiteConversions":3,"costInUsd":"61.255"},
		{"impressions":100,"clicks":10,"externalWebsiteConversions":1,"costInUsd":"8.745"}
	]}`, nil)
	l := newLinkedInForTest(base)

	day := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	m, err := l.GetCampaignPerformance(context.Background(), "31337", domain.DateRange{Start: day.AddDate(0, 0, -7), End: day})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), m.Impressions)
	assert.Equal(t, int64(40), m.Clicks)
	assert.Equal(t, int64(4), m.Conversions)
	assert.True(t, decimal.NewFromInt(70).Equal(m.Spend))

	req := rec.request()
	assert.Equal(t, "/v2/adAnalyticsV2", req.Path)
	assert.Equal(t, "analytics", req.Query.Get("q"))
	assert.Equal(t, "CAMPAIGN", req.Query.Get("pivot"))
	assert.True(t, strings.HasPrefix(req.Query.Get("dateRange"), "(start:(year:2026,month:1,day:8)"))
	assert.Equal(t, "List(urn:li:sponsoredCampaign:31337)", req.Query.Get("campaigns"))
}
