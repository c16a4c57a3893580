package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"automark/internal/core/domain"
)

// CampaignUseCase defines the business operations exposed by the campaign
// orchestrator. This interface represents the primary port into the
// application domain. Mock implementations can be generated from this
// interface for testing.
type CampaignUseCase interface {
	// ExecuteCampaign launches the campaign on each configured channel in
	// order. One channel failing never aborts the others; outcomes are
	// returned per channel. When no channel succeeds under the on_success
	// policy the results are returned together with
	// domain.ErrNoChannelSucceeded.
	ExecuteCampaign(ctx context.Context, id uuid.UUID) ([]domain.ChannelExecutionResult, error)

	// PauseCampaign pauses the campaign on each channel that supports it
	// and marks the campaign paused. Pausing twice is not an error.
	PauseCampaign(ctx context.Context, id uuid.UUID) ([]domain.ChannelExecutionResult, error)

	// SyncPerformanceData fetches metrics for the trailing week from every
	// channel with a performance capability and stores one record per
	// channel dated today.
	SyncPerformanceData(ctx context.Context, id uuid.UUID) ([]domain.PerformanceRecord, error)

	// CreateCampaign validates and stores a draft campaign, generating a
	// strategy when none is supplied.
	CreateCampaign(ctx context.Context, req CreateCampaignReq) (*domain.Campaign, error)
	// GetCampaign returns a campaign owned by userID.
	GetCampaign(ctx context.Context, userID, id uuid.UUID) (*domain.Campaign, error)
	// ListCampaigns returns the campaigns owned by userID.
	ListCampaigns(ctx context.Context, userID uuid.UUID) ([]domain.Campaign, error)
	// UpdateCampaign applies an update to a campaign owned by userID.
	UpdateCampaign(ctx context.Context, userID, id uuid.UUID, upd domain.CampaignUpdate) (*domain.Campaign, error)

	// ListPerformance returns the stored performance rows of a campaign.
	ListPerformance(ctx context.Context, id uuid.UUID) ([]domain.PerformanceRecord, error)
	// ListExecutionLogs returns the audit trail of a campaign.
	ListExecutionLogs(ctx context.Context, id uuid.UUID) ([]domain.ExecutionLogEntry, error)
	// GetAnalytics aggregates stored performance and asks the generator for
	// a narrative insight.
	GetAnalytics(ctx context.Context, id uuid.UUID) (*Analytics, error)

	// GenerateStrategy previews a strategy without storing anything.
	GenerateStrategy(ctx context.Context, req StrategyReq) domain.Strategy
	// GenerateAdCopy produces ad copy variations for a campaign and stores
	// them as generated content.
	GenerateAdCopy(ctx context.Context, id uuid.UUID, platform string) ([]domain.GeneratedContent, error)
}

// CreateCampaignReq is the input of CreateCampaign. It is a DTO shared by
// the HTTP and CLI layers; validation tags use the JSON names.
type CreateCampaignReq struct {
	UserID         uuid.UUID        `json:"-"`
	Name           string           `json:"name" validate:"required,max=200"`
	BusinessGoal   string           `json:"business_goal" validate:"required"`
	TargetAudience string           `json:"target_audience" validate:"required"`
	Budget         decimal.Decimal  `json:"budget" validate:"positive_decimal"`
	Channels       []string         `json:"channels" validate:"required,min=1,unique,dive,channel"`
	Strategy       *domain.Strategy `json:"strategy,omitempty"`
}

// StrategyReq is the input of a strategy preview.
type StrategyReq struct {
	BusinessGoal   string          `json:"business_goal" validate:"required"`
	TargetAudience string          `json:"target_audience" validate:"required"`
	Budget         decimal.Decimal `json:"budget" validate:"positive_decimal"`
}

// Analytics is the analytics view of one campaign.
type Analytics struct {
	CampaignID uuid.UUID                 `json:"campaign_id"`
	Summary    domain.PerformanceSummary `json:"summary"`
	Insight    string                    `json:"insight"`
}
