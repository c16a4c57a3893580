package port

import (
	"context"

	"github.com/google/uuid"

	"automark/internal/core/domain"
)

// CampaignRepository defines the persistence layer for campaigns and their
// owned rows. It is an outbound port in hexagonal architecture. No
// transactional guarantee is assumed across calls; each call may fail
// independently. Missing campaigns are reported as domain.ErrNotFound and
// store failures as *domain.PersistenceError.
type CampaignRepository interface {
	// GetCampaign returns a campaign by id.
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// CreateCampaign inserts a campaign and fills its timestamps.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// UpdateCampaign persists the editable fields of c.
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error
	// ListCampaigns returns the campaigns owned by userID, newest first.
	ListCampaigns(ctx context.Context, userID uuid.UUID) ([]domain.Campaign, error)
	// UpdateCampaignStatus sets the status unconditionally.
	UpdateCampaignStatus(ctx context.Context, id uuid.UUID, status domain.Status) error
	// CompareAndSetStatus moves the campaign to `to` only if its current
	// status is one of `from`. It reports whether the transition happened.
	CompareAndSetStatus(ctx context.Context, id uuid.UUID, from []domain.Status, to domain.Status) (bool, error)

	// InsertPerformanceRecords writes all records in a single write.
	InsertPerformanceRecords(ctx context.Context, records []domain.PerformanceRecord) error
	// ListPerformance returns performance rows of a campaign, newest first.
	ListPerformance(ctx context.Context, campaignID uuid.UUID) ([]domain.PerformanceRecord, error)

	// AppendExecutionLog appends one audit row.
	AppendExecutionLog(ctx context.Context, entry domain.ExecutionLogEntry) error
	// ListExecutionLogs returns the audit rows of a campaign, newest first.
	ListExecutionLogs(ctx context.Context, campaignID uuid.UUID) ([]domain.ExecutionLogEntry, error)

	// SavePlatformCampaign records the remote id created for a channel.
	SavePlatformCampaign(ctx context.Context, pc domain.PlatformCampaign) error
	// GetPlatformCampaigns returns the latest remote id per channel.
	GetPlatformCampaigns(ctx context.Context, campaignID uuid.UUID) (map[domain.Channel]string, error)

	// InsertGeneratedContent stores generated copy.
	InsertGeneratedContent(ctx context.Context, items []domain.GeneratedContent) error
}
