package port

import (
	"context"

	"automark/internal/core/domain"
)

// ChannelAdapter is the outbound port to one marketing platform. Every
// adapter can create a campaign; pausing and reading performance are
// optional capabilities exposed through CampaignPauser and
// PerformanceFetcher and discovered with a type assertion. Failures are
// returned as *domain.IntegrationError and never swallowed.
type ChannelAdapter interface {
	// Channel returns the channel this adapter serves.
	Channel() domain.Channel
	// CreateCampaign provisions the campaign on the platform. For email it
	// sends the campaign message to spec.Email.Recipients.
	CreateCampaign(ctx context.Context, spec domain.LaunchSpec) (domain.PlatformResult, error)
}

// CampaignPauser is implemented by adapters that can pause a remote
// campaign.
type CampaignPauser interface {
	PauseCampaign(ctx context.Context, platformCampaignID string) (domain.PlatformResult, error)
}

// PerformanceFetcher is implemented by adapters that report metrics. The
// platform campaign id may be empty when none was recorded.
type PerformanceFetcher interface {
	GetCampaignPerformance(ctx context.Context, platformCampaignID string, r domain.DateRange) (domain.RawMetrics, error)
}

// ChannelRegistry resolves the adapter configured for a channel.
type ChannelRegistry interface {
	Adapter(c domain.Channel) (ChannelAdapter, bool)
}
