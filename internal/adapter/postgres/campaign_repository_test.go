package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automark/internal/core/domain"
	"automark/internal/db"
)

// newTestRepo connects to AUTOMARK_TEST_DATABASE_URL, migrates it and
// returns a repository. The test is skipped when the variable is unset.
func newTestRepo(t *testing.T) *CampaignRepository {
	t.Helper()
	addr := os.Getenv("AUTOMARK_TEST_DATABASE_URL")
	if addr == "" {
		t.Skip("AUTOMARK_TEST_DATABASE_URL not set")
	}
	require.NoError(t, db.Migrate(addr))

	pool, err := pgxpool.New(context.Background(), addr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return NewCampaignRepository(pool)
}

func newTestCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		Name:           "Spring Sale",
		BusinessGoal:   "Increase sales",
		TargetAudience: "Shoppers",
		Budget:         decimal.RequireFromString("1000.50"),
		Status:         domain.StatusDraft,
		Channels:       []domain.Channel{domain.ChannelGoogleAds, domain.ChannelEmail},
		Strategy: domain.Strategy{
			Summary:          "s",
			BudgetAllocation: map[domain.Channel]float64{domain.ChannelGoogleAds: 70, domain.ChannelEmail: 30},
			EmailList:        []string{"a@example.com"},
		},
	}
}

func TestCampaignRepositoryRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	c := newTestCampaign()
	require.NoError(t, repo.CreateCampaign(ctx, c))
	assert.False(t, c.CreatedAt.IsZero())

	got, err := repo.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.Name, got.Name)
	assert.True(t, c.Budget.Equal(got.Budget))
	assert.Equal(t, c.Channels, got.Channels)
	assert.Equal(t, c.Strategy.BudgetAllocation, got.Strategy.BudgetAllocation)
	assert.Equal(t, c.Strategy.EmailList, got.Strategy.EmailList)

	list, err := repo.ListCampaigns(ctx, c.UserID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = repo.GetCampaign(ctx, uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCampaignRepositoryCompareAndSetStatus(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	c := newTestCampaign()
	require.NoError(t, repo.CreateCampaign(ctx, c))

	ok, err := repo.CompareAndSetStatus(ctx, c.ID, domain.ExecutableFrom, domain.StatusExecuting)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.CompareAndSetStatus(ctx, c.ID, domain.ExecutableFrom, domain.StatusExecuting)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.UpdateCampaignStatus(ctx, c.ID, domain.StatusActive))
	got, err := repo.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, got.Status)
}

func TestCampaignRepositoryOwnedRows(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	c := newTestCampaign()
	require.NoError(t, repo.CreateCampaign(ctx, c))

	require.NoError(t, repo.SavePlatformCampaign(ctx, domain.PlatformCampaign{CampaignID: c.ID, Channel: domain.ChannelGoogleAds, PlatformCampaignID: "1"}))
	require.NoError(t, repo.SavePlatformCampaign(ctx, domain.PlatformCampaign{CampaignID: c.ID, Channel: domain.ChannelGoogleAds, PlatformCampaignID: "2"}))
	ids, err := repo.GetPlatformCampaigns(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, map[domain.Channel]string{domain.ChannelGoogleAds: "2"}, ids)

	day := domain.Day(time.Now())
	require.NoError(t, repo.InsertPerformanceRecords(ctx, []domain.PerformanceRecord{
		{CampaignID: c.ID, Date: day, Channel: domain.ChannelGoogleAds, Impressions: 10, Clicks: 2, Spend: decimal.RequireFromString("1.25")},
		{CampaignID: c.ID, Date: day, Channel: domain.ChannelEmail, Impressions: 5},
	}))
	perf, err := repo.ListPerformance(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, perf, 2)

	require.NoError(t, repo.AppendExecutionLog(ctx, domain.ExecutionLogEntry{
		CampaignID: c.ID, Action: "Campaign Execution - Google Ads", Status: domain.LogSuccess,
		Details: map[string]any{"platform_campaign_id": "2"},
	}))
	logs, err := repo.ListExecutionLogs(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "2", logs[0].Details["platform_campaign_id"])

	require.NoError(t, repo.InsertGeneratedContent(ctx, []domain.GeneratedContent{
		{ID: uuid.New(), CampaignID: c.ID, ContentType: domain.ContentAdCopy, Content: "Buy now", Platform: "Meta Ads", CreatedAt: time.Now()},
	}))
}
