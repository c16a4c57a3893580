package db

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"automark/internal/core/domain"
	"automark/internal/core/port"
)

// SeedDays is how many days of demo performance Seed writes.
const SeedDays = 14

// Seed inserts a demo campaign owned by userID together with two weeks of
// performance rows for each of its ad channels. It returns the new
// campaign.
func Seed(ctx context.Context, repo port.CampaignRepository, userID uuid.UUID, now time.Time) (*domain.Campaign, error) {
	r := rand.New(rand.NewPCG(uint64(now.UnixNano()), 0))

	c := &domain.Campaign{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           "Demo Spring Sale",
		BusinessGoal:   "Increase online sales by 20%",
		TargetAudience: "Young professionals interested in fitness",
		Budget:         decimal.NewFromInt(5000),
		Status:         domain.StatusDraft,
		Channels:       []domain.Channel{domain.ChannelGoogleAds, domain.ChannelMetaAds, domain.ChannelEmail},
		Strategy: domain.Strategy{
			Summary:  "Search for intent, social for reach, email for retention",
			Channels: []domain.Channel{domain.ChannelGoogleAds, domain.ChannelMetaAds, domain.ChannelEmail},
			Timeline: "4 weeks",
			BudgetAllocation: map[domain.Channel]float64{
				domain.ChannelGoogleAds: 50,
				domain.ChannelMetaAds:   35,
				domain.ChannelEmail:     15,
			},
			TargetingSuggestions: []string{"Age 25-40", "Interest: fitness", "Urban areas"},
		},
	}
	if err := repo.CreateCampaign(ctx, c); err != nil {
		return nil, fmt.Errorf("seed campaign: %w", err)
	}

	records := make([]domain.PerformanceRecord, 0, SeedDays*len(c.Channels))
	for d := SeedDays - 1; d >= 0; d-- {
		day := domain.Day(now).AddDate(0, 0, -d)
		for _, ch := range c.Channels {
			impressions := int64(1000 + r.IntN(10000))
			clicks := int64(50 + r.IntN(500))
			rec := domain.PerformanceRecord{
				CampaignID:  c.ID,
				Date:        day,
				Channel:     ch,
				Impressions: impressions,
				Clicks:      clicks,
			}
			if ch.IsAd() {
				rec.Conversions = int64(5 + r.IntN(50))
				rec.Spend = decimal.NewFromInt(int64(100 + r.IntN(500)))
			}
			records = append(records, rec)
		}
	}
	if err := repo.InsertPerformanceRecords(ctx, records); err != nil {
		return nil, fmt.Errorf("seed performance: %w", err)
	}
	return c, nil
}
