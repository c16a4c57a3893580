package channel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"automark/internal/config/configs"
	"automark/internal/core/domain"
)

const metaGraphVersion = "v18.0"

var cents = decimal.NewFromInt(100)

// MetaAds talks to the Meta Marketing (Graph) API.
type MetaAds struct {
	cfg    configs.MetaAds
	client *platformClient
}

func NewMetaAds(cfg configs.MetaAds, hc *http.Client, userAgent string) *MetaAds {
	return &MetaAds{cfg: cfg, client: newPlatformClient(domain.ChannelMetaAds, hc, userAgent)}
}

func (m *MetaAds) Channel() domain.Channel { return domain.ChannelMetaAds }

func (m *MetaAds) endpoint(path string) string {
	return strings.TrimRight(m.cfg.BaseURL, "/") + "/" + metaGraphVersion + "/" + strings.TrimLeft(path, "/")
}

func (m *MetaAds) CreateCampaign(ctx context.Context, spec domain.LaunchSpec) (domain.PlatformResult, error) {
	const op = "create campaign"
	payload := map[string]any{
		"name":         spec.Name,
		"objective":    "CONVERSIONS",
		"status":       "ACTIVE",
		"daily_budget": spec.Budget.Mul(cents).Round(0).IntPart(),
		"bid_strategy": "LOWEST_COST_WITHOUT_CAP",
		"access_token": m.cfg.AccessToken,
	}
	req, err := m.client.newJSONRequest(ctx, op, http.MethodPost, m.endpoint("act_"+m.cfg.AdAccountID+"/campaigns"), payload)
	if err != nil {
		return domain.PlatformResult{}, err
	}

	var resp struct {
		ID string `json:"id"`
	}
	if _, err = m.client.do(ctx, op, req, &resp); err != nil {
		return domain.PlatformResult{}, err
	}
	return domain.PlatformResult{PlatformCampaignID: resp.ID, Status: "ACTIVE"}, nil
}

func (m *MetaAds) PauseCampaign(ctx context.Context, platformCampaignID string) (domain.PlatformResult, error) {
	const op = "pause campaign"
	if platformCampaignID == "" {
		return domain.PlatformResult{}, m.client.fail(op, 0, fmt.Errorf("missing campaign id"))
	}
	payload := map[string]any{
		"status":       "PAUSED",
		"access_token": m.cfg.AccessToken,
	}
	req, err := m.client.newJSONRequest(ctx, op, http.MethodPost, m.endpoint(url.PathEscape(platformCampaignID)), payload)
	if err != nil {
		return domain.PlatformResult{}, err
	}
	var resp struct {
		Success bool `json:"success"`
	}
	if _, err = m.client.do(ctx, op, req, &resp); err != nil {
		return domain.PlatformResult{}, err
	}
	return domain.PlatformResult{
		PlatformCampaignID: platformCampaignID,
		Status:             "PAUSED",
		Details:            map[string]any{"success": resp.Success},
	}, nil
}

// metaInsight is one insights row. The Graph API returns numbers as
// strings and conversions as a list of actions.
type metaInsight struct {
	Impressions string `json:"impressions"`
	Clicks      string `json:"clicks"`
	Spend       string `json:"spend"`
	Conversions []struct {
		ActionType string `json:"action_type"`
		Value      string `json:"value"`
	} `json:"conversions"`
}

func (m *MetaAds) GetCampaignPerformance(ctx context.Context, platformCampaignID string, r domain.DateRange) (domain.RawMetrics, error) {
	const op = "get performance"
	if platformCampaignID == "" {
		return domain.RawMetrics{}, m.client.fail(op, 0, fmt.Errorf("missing campaign id"))
	}
	timeRange, err := json.Marshal(map[string]string{"since": r.StartString(), "until": r.EndString()})
	if err != nil {
		return domain.RawMetrics{}, m.client.fail(op, 0, err)
	}
	q := url.Values{}
	q.Set("fields", "impressions,clicks,conversions,spend,ctr,cpc,cpm")
	q.Set("time_range", string(timeRange))
	q.Set("access_token", m.cfg.AccessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.endpoint(url.PathEscape(platformCampaignID)+"/insights")+"?"+q.Encode(), nil)
	if err != nil {
		return domain.RawMetrics{}, m.client.fail(op, 0, err)
	}
	var resp struct {
		Data []metaInsight `json:"data"`
	}
	if _, err = m.client.do(ctx, op, req, &resp); err != nil {
		return domain.RawMetrics{}, err
	}

	var out domain.RawMetrics
	for _, row := range resp.Data {
		out.Impressions += parseCount(row.Impressions)
		out.Clicks += parseCount(row.Clicks)
		for _, c := range row.Conversions {
			out.Conversions += parseCount(c.Value)
		}
		if spend, err := decimal.NewFromString(row.Spend); err == nil {
			out.Spend = out.Spend.Add(spend)
		}
	}
	return out, nil
}

// parseCount parses an integer that platforms may encode as a string or as
// a float string. Invalid input counts as zero.
func parseCount(s string) int64 {
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f)
	}
	return 0
}
