package channel

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/oauth2"

	"automark/internal/config/configs"
	"automark/internal/core/domain"
)

const googleAdsAPIVersion = "v14"

var micros = decimal.NewFromInt(1_000_000)

// GoogleAds talks to the Google Ads REST API. Access tokens are obtained
// from the configured refresh token and reused until they expire or the API
// rejects them.
type GoogleAds struct {
	cfg    configs.GoogleAds
	client *platformClient
	oauth  *oauth2.Config
	// tokenCtx carries the HTTP client used for token refreshes.
	tokenCtx context.Context

	mu  sync.Mutex
	src oauth2.TokenSource
}

func NewGoogleAds(cfg configs.GoogleAds, hc *http.Client, userAgent string) *GoogleAds {
	client := newPlatformClient(domain.ChannelGoogleAds, hc, userAgent)
	g := &GoogleAds{
		cfg:    cfg,
		client: client,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		tokenCtx: context.WithValue(context.Background(), oauth2.HTTPClient, client.http),
	}
	g.src = g.newTokenSource()
	return g
}

func (g *GoogleAds) Channel() domain.Channel { return domain.ChannelGoogleAds }

func (g *GoogleAds) newTokenSource() oauth2.TokenSource {
	return g.oauth.TokenSource(g.tokenCtx, &oauth2.Token{RefreshToken: g.cfg.RefreshToken})
}

func (g *GoogleAds) token(op string) (string, error) {
	g.mu.Lock()
	src := g.src
	g.mu.Unlock()

	tok, err := src.Token()
	if err != nil {
		return "", g.client.fail(op, 0, fmt.Errorf("authenticate: %w", err))
	}
	return tok.AccessToken, nil
}

// resetToken drops the cached access token so the next call refreshes it.
func (g *GoogleAds) resetToken() {
	g.mu.Lock()
	g.src = g.newTokenSource()
	g.mu.Unlock()
}

// call posts payload to path and retries once with a fresh token when the
// API answers 401.
func (g *GoogleAds) call(ctx context.Context, op, path string, payload, out any) error {
	for attempt := 0; ; attempt++ {
		token, err := g.token(op)
		if err != nil {
			return err
		}
		req, err := g.client.newJSONRequest(ctx, op, http.MethodPost, g.endpoint(path), payload)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
		if g.cfg.DeveloperToken != "" {
			req.Header.Set("developer-token", g.cfg.DeveloperToken)
		}

		_, err = g.client.do(ctx, op, req, out)
		var ie *domain.IntegrationError
		if attempt == 0 && errors.As(err, &ie) && ie.StatusCode == http.StatusUnauthorized {
			g.resetToken()
			continue
		}
		return err
	}
}

func (g *GoogleAds) endpoint(path string) string {
	return strings.TrimRight(g.cfg.BaseURL, "/") + "/" + googleAdsAPIVersion + "/customers/" + g.cfg.CustomerID + path
}

type googleMutateResponse struct {
	Results []struct {
		ResourceName string `json:"resourceName"`
	} `json:"results"`
}

// campaignID returns the trailing id of a resource name such as
// customers/123/campaigns/456.
func (r googleMutateResponse) campaignID() string {
	if len(r.Results) == 0 {
		return ""
	}
	name := r.Results[0].ResourceName
	return name[strings.LastIndex(name, "/")+1:]
}

func (g *GoogleAds) CreateCampaign(ctx context.Context, spec domain.LaunchSpec) (domain.PlatformResult, error) {
	payload := map[string]any{
		"operations": []any{map[string]any{
			"create": map[string]any{
				"name":                   spec.Name,
				"status":                 "ENABLED",
				"advertisingChannelType": "SEARCH",
				"biddingStrategyType":    "TARGET_CPA",
				"campaignBudget": map[string]any{
					"amountMicros":   spec.Budget.Mul(micros).Round(0).String(),
					"deliveryMethod": "STANDARD",
				},
			},
		}},
	}

	var resp googleMutateResponse
	if err := g.call(ctx, "create campaign", "/campaigns:mutate", payload, &resp); err != nil {
		return domain.PlatformResult{}, err
	}
	res := domain.PlatformResult{
		PlatformCampaignID: resp.campaignID(),
		Status:             "ENABLED",
	}
	if len(resp.Results) > 0 {
		res.Details = map[string]any{"resource_name": resp.Results[0].ResourceName}
	}
	return res, nil
}

func (g *GoogleAds) PauseCampaign(ctx context.Context, platformCampaignID string) (domain.PlatformResult, error) {
	if err := g.validateID("pause campaign", platformCampaignID); err != nil {
		return domain.PlatformResult{}, err
	}
	payload := map[string]any{
		"operations": []any{map[string]any{
			"update": map[string]any{
				"resourceName": "customers/" + g.cfg.CustomerID + "/campaigns/" + platformCampaignID,
				"status":       "PAUSED",
			},
			"updateMask": "status",
		}},
	}
	var resp googleMutateResponse
	if err := g.call(ctx, "pause campaign", "/campaigns:mutate", payload, &resp); err != nil {
		return domain.PlatformResult{}, err
	}
	return domain.PlatformResult{PlatformCampaignID: platformCampaignID, Status: "PAUSED"}, nil
}

// googleSearchBatch is one element of a searchStream response. Int64 fields
// are encoded as JSON strings by the API.
type googleSearchBatch struct {
	Results []struct {
		Metrics struct {
			Impressions int64   `json:"impressions,string"`
			Clicks      int64   `json:"clicks,string"`
			Conversions float64 `json:"conversions"`
			CostMicros  int64   `json:"costMicros,string"`
		} `json:"metrics"`
	} `json:"results"`
}

func (g *GoogleAds) GetCampaignPerformance(ctx context.Context, platformCampaignID string, r domain.DateRange) (domain.RawMetrics, error) {
	const op = "get performance"
	if err := g.validateID(op, platformCampaignID); err != nil {
		return domain.RawMetrics{}, err
	}
	query := fmt.Sprintf(
		"SELECT campaign.id, metrics.impressions, metrics.clicks, metrics.conversions, metrics.cost_micros "+
			"FROM campaign WHERE campaign.id = %s AND segments.date BETWEEN '%s' AND '%s'",
		platformCampaignID, r.StartString(), r.EndString(),
	)

	var batches []googleSearchBatch
	if err := g.call(ctx, op, "/googleAds:searchStream", map[string]string{"query": query}, &batches); err != nil {
		return domain.RawMetrics{}, err
	}

	var m domain.RawMetrics
	var conversions float64
	costMicros := int64(0)
	for _, b := range batches {
		for _, row := range b.Results {
			m.Impressions += row.Metrics.Impressions
			m.Clicks += row.Metrics.Clicks
			conversions += row.Metrics.Conversions
			costMicros += row.Metrics.CostMicros
		}
	}
	m.Conversions = int64(conversions)
	m.Spend = decimal.NewFromInt(costMicros).Div(micros).Round(2)
	return m, nil
}

// validateID rejects ids that are not plain numbers; they are interpolated
// into GAQL.
func (g *GoogleAds) validateID(op, id string) error {
	if _, err := strconv.ParseUint(id, 10, 64); err != nil {
		return g.client.fail(op, 0, fmt.Errorf("invalid campaign id %q", id))
	}
	return nil
}
