package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSplitBudget(t *testing.T) {
	tests := []struct {
		name       string
		budget     string
		channels   []Channel
		allocation map[Channel]float64
		want       map[Channel]string
	}{
		{
			name:       "allocation",
			budget:     "1000",
			channels:   []Channel{ChannelGoogleAds, ChannelEmail},
			allocation: map[Channel]float64{ChannelGoogleAds: 75, ChannelEmail: 25},
			want:       map[Channel]string{ChannelGoogleAds: "750", ChannelEmail: "250"},
		},
		{
			name:       "allocation renormalized over executed channels",
			budget:     "100",
			channels:   []Channel{ChannelGoogleAds, ChannelMetaAds},
			allocation: map[Channel]float64{ChannelGoogleAds: 30, ChannelMetaAds: 10, ChannelEmail: 60},
			want:       map[Channel]string{ChannelGoogleAds: "75", ChannelMetaAds: "25"},
		},
		{
			name:     "even split remainder to first",
			budget:   "100",
			channels: []Channel{ChannelGoogleAds, ChannelMetaAds, ChannelEmail},
			want:     map[Channel]string{ChannelGoogleAds: "33.34", ChannelMetaAds: "33.33", ChannelEmail: "33.33"},
		},
		{
			name:       "missing channel falls back to even",
			budget:     "500",
			channels:   []Channel{ChannelGoogleAds, ChannelLinkedInAds},
			allocation: map[Channel]float64{ChannelGoogleAds: 90},
			want:       map[Channel]string{ChannelGoogleAds: "250", ChannelLinkedInAds: "250"},
		},
		{
			name:       "zero percentage falls back to even",
			budget:     "10",
			channels:   []Channel{ChannelGoogleAds, ChannelMetaAds},
			allocation: map[Channel]float64{ChannelGoogleAds: 100, ChannelMetaAds: 0},
			want:       map[Channel]string{ChannelGoogleAds: "5", ChannelMetaAds: "5"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitBudget(dec(tt.budget), tt.channels, tt.allocation)
			require.Len(t, got, len(tt.want))
			sum := decimal.Zero
			for c, v := range tt.want {
				assert.True(t, dec(v).Equal(got[c]), "%s: want %s, got %s", c, v, got[c])
				sum = sum.Add(got[c])
			}
			assert.True(t, dec(tt.budget).Equal(sum))
		})
	}

	assert.Empty(t, SplitBudget(dec("10"), nil, nil))

	repeated := SplitBudget(dec("1000"), []Channel{ChannelGoogleAds, ChannelGoogleAds}, nil)
	require.Len(t, repeated, 1)
	assert.True(t, dec("1000").Equal(repeated[ChannelGoogleAds]))
}

func TestParseChannels(t *testing.T) {
	got, err := ParseChannels([]string{"google", "Email"})
	require.NoError(t, err)
	assert.Equal(t, []Channel{ChannelGoogleAds, ChannelEmail}, got)

	_, err = ParseChannels([]string{"Google Ads", "google"})
	assert.EqualError(t, err, `duplicate channel "Google Ads"`)

	_, err = ParseChannels([]string{"Email", "Email Marketing"})
	assert.EqualError(t, err, `duplicate channel "Email Marketing"`)

	_, err = ParseChannels([]string{"Meta Ads", "TikTok"})
	assert.Error(t, err)

	assert.Equal(t, []Channel{ChannelMetaAds, ChannelEmail},
		UniqueChannels([]Channel{ChannelMetaAds, ChannelEmail, ChannelMetaAds}))
}

func TestToRecord(t *testing.T) {
	id := uuid.New()
	at := time.Date(2026, 4, 20, 15, 30, 0, 0, time.UTC)

	ads := RawMetrics{Impressions: 1000, Clicks: 50, Conversions: 5, Spend: dec("12.50")}.
		ToRecord(id, ChannelMetaAds, at)
	assert.Equal(t, id, ads.CampaignID)
	assert.Equal(t, Day(at), ads.Date)
	assert.Equal(t, int64(1000), ads.Impressions)
	assert.Equal(t, int64(5), ads.Conversions)
	assert.True(t, dec("12.50").Equal(ads.Spend))

	email := RawMetrics{Email: &EmailMetrics{Sent: 100, Delivered: 90, Opened: 40, Clicked: 7}}.
		ToRecord(id, ChannelEmail, at)
	assert.Equal(t, int64(90), email.Impressions)
	assert.Equal(t, int64(7), email.Clicks)
	assert.Zero(t, email.Conversions)
	assert.True(t, email.Spend.IsZero())

	clamped := RawMetrics{Impressions: -1, Clicks: -2, Conversions: -3, Spend: dec("-4")}.
		ToRecord(id, ChannelGoogleAds, at)
	assert.Zero(t, clamped.Impressions)
	assert.Zero(t, clamped.Clicks)
	assert.Zero(t, clamped.Conversions)
	assert.True(t, clamped.Spend.IsZero())
}

func TestSummarize(t *testing.T) {
	day1 := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	s := Summarize([]PerformanceRecord{
		{Date: day2, Channel: ChannelEmail, Impressions: 50},
		{Date: day1, Channel: ChannelGoogleAds, Impressions: 100, Clicks: 10, Spend: dec("5")},
		{Date: day1, Channel: ChannelGoogleAds, Impressions: 100, Clicks: 10, Conversions: 2, Spend: dec("5")},
	})

	assert.Equal(t, int64(250), s.Totals.Impressions)
	assert.Equal(t, int64(20), s.Totals.Clicks)
	assert.InDelta(t, 8.0, s.Totals.CTR, 1e-9)
	assert.InDelta(t, 10.0, s.Totals.ConversionRate, 1e-9)
	assert.True(t, dec("0.5").Equal(s.Totals.CPC))

	require.Len(t, s.ByChannel, 2)
	assert.Zero(t, s.ByChannel[ChannelEmail].CTR)

	require.Len(t, s.Daily, 2)
	assert.Equal(t, ChannelGoogleAds, s.Daily[0].Channel)
	assert.Equal(t, int64(200), s.Daily[0].Impressions)
	assert.Equal(t, day2, s.Daily[1].Date)

	empty := Summarize(nil)
	assert.Zero(t, empty.Totals.CTR)
	assert.Empty(t, empty.Daily)
}

func TestTrailingDays(t *testing.T) {
	r := TrailingDays(time.Date(2026, 4, 20, 23, 59, 0, 0, time.UTC), 7)
	assert.Equal(t, "2026-04-13", r.StartString())
	assert.Equal(t, "2026-04-20", r.EndString())
}

func TestParseChannel(t *testing.T) {
	for in, want := range map[string]Channel{
		"Google Ads":      ChannelGoogleAds,
		" facebook ":      ChannelMetaAds,
		"LinkedIn":        ChannelLinkedInAds,
		"Email Marketing": ChannelEmail,
		"email":           ChannelEmail,
	} {
		got, err := ParseChannel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseChannel("TikTok")
	assert.Error(t, err)

	assert.True(t, ChannelLinkedInAds.IsAd())
	assert.False(t, ChannelEmail.IsAd())
}

func TestStrategyUnmarshalNormalizesChannels(t *testing.T) {
	var s Strategy
	err := json.Unmarshal([]byte(`{
		"strategy": "Go wide",
		"channels": ["Google Ads", "LinkedIn", "email", "TikTok", "google"],
		"budget_allocation": {"Google Ads": 60, "LinkedIn": 30, "Email": 10, "TikTok": 5}
	}`), &s)
	require.NoError(t, err)

	assert.Equal(t, "Go wide", s.Summary)
	assert.Equal(t, []Channel{ChannelGoogleAds, ChannelLinkedInAds, ChannelEmail}, s.Channels)
	assert.Equal(t, map[Channel]float64{ChannelGoogleAds: 60, ChannelLinkedInAds: 30, ChannelEmail: 10}, s.BudgetAllocation)
}

func TestCampaignUpdateApply(t *testing.T) {
	c := Campaign{Name: "old", Budget: dec("10"), Channels: []Channel{ChannelEmail}}
	name := "new"
	budget := dec("20")
	CampaignUpdate{Name: &name, Budget: &budget}.Apply(&c)

	assert.Equal(t, "new", c.Name)
	assert.True(t, budget.Equal(c.Budget))
	assert.Equal(t, []Channel{ChannelEmail}, c.Channels)
}

func TestValidationErrorIs(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"budget": "must be positive"}}
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "budget")
}
