package channel

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"automark/internal/config/configs"
	"automark/internal/core/domain"
)

const restliProtocolVersion = "2.0.0"

// LinkedInAds talks to the LinkedIn Marketing API.
type LinkedInAds struct {
	cfg    configs.LinkedInAds
	client *platformClient
}

func NewLinkedInAds(cfg configs.LinkedInAds, hc *http.Client, userAgent string) *LinkedInAds {
	return &LinkedInAds{cfg: cfg, client: newPlatformClient(domain.ChannelLinkedInAds, hc, userAgent)}
}

func (l *LinkedInAds) Channel() domain.Channel { return domain.ChannelLinkedInAds }

func (l *LinkedInAds) endpoint(path string) string {
	return strings.TrimRight(l.cfg.BaseURL, "/") + "/v2/" + strings.TrimLeft(path, "/")
}

func (l *LinkedInAds) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+l.cfg.AccessToken)
	req.Header.Set("X-Restli-Protocol-Version", restliProtocolVersion)
}

type linkedInMoney struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

func (l *LinkedInAds) CreateCampaign(ctx context.Context, spec domain.LaunchSpec) (domain.PlatformResult, error) {
	const op = "create campaign"
	payload := map[string]any{
		"account":       "urn:li:sponsoredAccount:" + l.cfg.AdAccountID,
		"name":          spec.Name,
		"type":          "SPONSORED_CONTENT",
		"status":        "ACTIVE",
		"costType":      "CPC",
		"dailyBudget":   linkedInMoney{Amount: spec.Budget.StringFixed(2), CurrencyCode: "USD"},
		"unitCost":      linkedInMoney{Amount: "2.00", CurrencyCode: "USD"},
		"objectiveType": "WEBSITE_CONVERSIONS",
	}
	req, err := l.client.newJSONRequest(ctx, op, http.MethodPost, l.endpoint("adCampaignsV2"), payload)
	if err != nil {
		return domain.PlatformResult{}, err
	}
	l.authorize(req)

	// Creation answers 201 with an empty body and the id in a header.
	header, err := l.client.do(ctx, op, req, nil)
	if err != nil {
		return domain.PlatformResult{}, err
	}
	id := header.Get("X-RestLi-Id")
	if id == "" {
		id = header.Get("X-LinkedIn-Id")
	}
	return domain.PlatformResult{PlatformCampaignID: id, Status: "ACTIVE"}, nil
}

func (l *LinkedInAds) PauseCampaign(ctx context.Context, platformCampaignID string) (domain.PlatformResult, error) {
	const op = "pause campaign"
	if platformCampaignID == "" {
		return domain.PlatformResult{}, l.client.fail(op, 0, fmt.Errorf("missing campaign id"))
	}
	payload := map[string]any{
		"patch": map[string]any{"$set": map[string]string{"status": "PAUSED"}},
	}
	req, err := l.client.newJSONRequest(ctx, op, http.MethodPost, l.endpoint("adCampaignsV2/"+url.PathEscape(platformCampaignID)), payload)
	if err != nil {
		return domain.PlatformResult{}, err
	}
	l.authorize(req)
	req.Header.Set("X-RestLi-Method", "PARTIAL_UPDATE")

	if _, err = l.client.do(ctx, op, req, nil); err != nil {
		return domain.PlatformResult{}, err
	}
	return domain.PlatformResult{PlatformCampaignID: platformCampaignID, Status: "PAUSED"}, nil
}

func (l *LinkedInAds) GetCampaignPerformance(ctx context.Context, platformCampaignID string, r domain.DateRange) (domain.RawMetrics, error) {
	const op = "get performance"
	if platformCampaignID == "" {
		return domain.RawMetrics{}, l.client.fail(op, 0, fmt.Errorf("missing campaign id"))
	}
	// Rest.li query syntax must not be percent-encoded, so the query string
	// is assembled by hand.
	query := strings.Join([]string{
		"q=analytics",
		"pivot=CAMPAIGN",
		"campaigns=List(" + url.QueryEscape("urn:li:sponsoredCampaign:"+platformCampaignID) + ")",
		"dateRange=(start:" + restliDate(r.Start) + ",end:" + restliDate(r.End) + ")",
		"timeGranularity=ALL",
		"fields=impressions,clicks,externalWebsiteConversions,costInUsd",
	}, "&")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.endpoint("adAnalyticsV2")+"?"+query, nil)
	if err != nil {
		return domain.RawMetrics{}, l.client.fail(op, 0, err)
	}
	l.authorize(req)

	var resp struct {
		Elements []struct {
			Impressions int64  `json:"impressions"`
			Clicks      int64  `json:"clicks"`
			Conversions int64  `json:"externalWebsiteConversions"`
			CostInUSD   string `json:"costInUsd"`
		} `json:"elements"`
	}
	if _, err = l.client.do(ctx, op, req, &resp); err != nil {
		return domain.RawMetrics{}, err
	}

	var out domain.RawMetrics
	for _, e := range resp.Elements {
		out.Impressions += e.Impressions
		out.Clicks += e.Clicks
		out.Conversions += e.Conversions
		if cost, err := decimal.NewFromString(e.CostInUSD); err == nil {
			out.Spend = out.Spend.Add(cost)
		}
	}
	out.Spend = out.Spend.Round(2)
	return out, nil
}

func restliDate(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("(year:%d,month:%d,day:%d)", y, int(m), d)
}
