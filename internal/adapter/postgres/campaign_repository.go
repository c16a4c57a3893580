package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"automark/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, user_id, name, business_goal, target_audience, budget, status, channels, strategy, created_at, updated_at`

func fail(op string, err error) error {
	return &domain.PersistenceError{Op: op, Err: err}
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c           domain.Campaign
		channels    []string
		strategyRaw []byte
	)
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.BusinessGoal, &c.TargetAudience,
		&c.Budget, &c.Status, &channels, &strategyRaw, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Channels = make([]domain.Channel, 0, len(channels))
	for _, name := range channels {
		if ch, err := domain.ParseChannel(name); err == nil {
			c.Channels = append(c.Channels, ch)
		}
	}
	if len(strategyRaw) > 0 {
		if err = json.Unmarshal(strategyRaw, &c.Strategy); err != nil {
			return nil, fmt.Errorf("decode strategy: %w", err)
		}
	}
	return &c, nil
}

func channelNames(channels []domain.Channel) []string {
	out := make([]string, len(channels))
	for i, c := range channels {
		out[i] = string(c)
	}
	return out
}

func statusNames(statuses []domain.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fail("get campaign", err)
	}
	return c, nil
}

// CreateCampaign inserts c and fills its timestamps.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	strategy, err := json.Marshal(c.Strategy)
	if err != nil {
		return fail("create campaign", err)
	}
	err = r.pool.QueryRow(ctx, `INSERT INTO campaigns
    (id, user_id, name, business_goal, target_audience, budget, status, channels, strategy)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) RETURNING created_at, updated_at`,
		c.ID, c.UserID, c.Name, c.BusinessGoal, c.TargetAudience, c.Budget, string(c.Status),
		channelNames(c.Channels), strategy,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fail("create campaign", err)
	}
	return nil
}

// UpdateCampaign persists the editable fields of c. The status column is
// owned by the status operations and left untouched.
func (r *CampaignRepository) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	strategy, err := json.Marshal(c.Strategy)
	if err != nil {
		return fail("update campaign", err)
	}
	err = r.pool.QueryRow(ctx, `UPDATE campaigns
SET name = $2, business_goal = $3, target_audience = $4, budget = $5, channels = $6, strategy = $7, updated_at = now()
WHERE id = $1 RETURNING updated_at`,
		c.ID, c.Name, c.BusinessGoal, c.TargetAudience, c.Budget, channelNames(c.Channels), strategy,
	).Scan(&c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fail("update campaign", err)
	}
	return nil
}

// ListCampaigns returns the campaigns owned by userID, newest first.
func (r *CampaignRepository) ListCampaigns(ctx context.Context, userID uuid.UUID) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fail("list campaigns", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
	if err != nil {
		return nil, fail("list campaigns", err)
	}
	return out, nil
}

// UpdateCampaignStatus sets the status unconditionally.
func (r *CampaignRepository) UpdateCampaignStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET status = $2, updated_at = now() WHERE id = $1`, id, string(status))
	if err != nil {
		return fail("update status", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CompareAndSetStatus moves the campaign to `to` only if its current status
// is one of `from`.
func (r *CampaignRepository) CompareAndSetStatus(ctx context.Context, id uuid.UUID, from []domain.Status, to domain.Status) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET status = $3, updated_at = now() WHERE id = $1 AND status = ANY($2)`,
		id, statusNames(from), string(to))
	if err != nil {
		return false, fail("compare and set status", err)
	}
	return tag.RowsAffected() == 1, nil
}

// InsertPerformanceRecords writes all records in one transaction.
func (r *CampaignRepository) InsertPerformanceRecords(ctx context.Context, records []domain.PerformanceRecord) error {
	if len(records) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(`INSERT INTO campaign_performance
    (campaign_id, date, channel, impressions, clicks, conversions, spend)
VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			rec.CampaignID, rec.Date, string(rec.Channel), rec.Impressions, rec.Clicks, rec.Conversions, rec.Spend)
	}
	if err := r.inTx(ctx, batch); err != nil {
		return fail("insert performance", err)
	}
	return nil
}

// inTx sends batch inside a transaction and commits only when every
// statement succeeded.
func (r *CampaignRepository) inTx(ctx context.Context, batch *pgx.Batch) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()
	return tx.SendBatch(ctx, batch).Close()
}

// ListPerformance returns performance rows of a campaign, newest first.
func (r *CampaignRepository) ListPerformance(ctx context.Context, campaignID uuid.UUID) ([]domain.PerformanceRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, campaign_id, date, channel, impressions, clicks, conversions, spend, created_at
FROM campaign_performance WHERE campaign_id = $1 ORDER BY date DESC, id DESC`, campaignID)
	if err != nil {
		return nil, fail("list performance", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PerformanceRecord, error) {
		var rec domain.PerformanceRecord
		err := row.Scan(&rec.ID, &rec.CampaignID, &rec.Date, &rec.Channel, &rec.Impressions,
			&rec.Clicks, &rec.Conversions, &rec.Spend, &rec.CreatedAt)
		return rec, err
	})
	if err != nil {
		return nil, fail("list performance", err)
	}
	return out, nil
}

// AppendExecutionLog appends one audit row.
func (r *CampaignRepository) AppendExecutionLog(ctx context.Context, entry domain.ExecutionLogEntry) error {
	details := entry.Details
	if details == nil {
		details = map[string]any{}
	}
	raw, err := json.Marshal(details)
	if err != nil {
		return fail("append execution log", err)
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO execution_logs (campaign_id, action, status, details) VALUES ($1,$2,$3,$4)`,
		entry.CampaignID, entry.Action, string(entry.Status), raw)
	if err != nil {
		return fail("append execution log", err)
	}
	return nil
}

// ListExecutionLogs returns the audit rows of a campaign, newest first.
func (r *CampaignRepository) ListExecutionLogs(ctx context.Context, campaignID uuid.UUID) ([]domain.ExecutionLogEntry, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, campaign_id, action, status, details, created_at
FROM execution_logs WHERE campaign_id = $1 ORDER BY created_at DESC, id DESC`, campaignID)
	if err != nil {
		return nil, fail("list execution logs", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ExecutionLogEntry, error) {
		var (
			e   domain.ExecutionLogEntry
			raw []byte
		)
		if err := row.Scan(&e.ID, &e.CampaignID, &e.Action, &e.Status, &raw, &e.CreatedAt); err != nil {
			return e, err
		}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &e.Details); err != nil {
				return e, fmt.Errorf("decode details: %w", err)
			}
		}
		return e, nil
	})
	if err != nil {
		return nil, fail("list execution logs", err)
	}
	return out, nil
}

// SavePlatformCampaign records the remote id created for a channel. Rows are
// append-only; the newest row per channel wins.
func (r *CampaignRepository) SavePlatformCampaign(ctx context.Context, pc domain.PlatformCampaign) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO platform_campaigns (campaign_id, channel, platform_campaign_id) VALUES ($1,$2,$3)`,
		pc.CampaignID, string(pc.Channel), pc.PlatformCampaignID)
	if err != nil {
		return fail("save platform campaign", err)
	}
	return nil
}

// GetPlatformCampaigns returns the latest remote id per channel.
func (r *CampaignRepository) GetPlatformCampaigns(ctx context.Context, campaignID uuid.UUID) (map[domain.Channel]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT ON (channel) channel, platform_campaign_id
FROM platform_campaigns WHERE campaign_id = $1 ORDER BY channel, id DESC`, campaignID)
	if err != nil {
		return nil, fail("get platform campaigns", err)
	}
	defer rows.Close()

	out := make(map[domain.Channel]string)
	for rows.Next() {
		var ch, id string
		if err = rows.Scan(&ch, &id); err != nil {
			return nil, fail("get platform campaigns", err)
		}
		out[domain.Channel(ch)] = id
	}
	if err = rows.Err(); err != nil {
		return nil, fail("get platform campaigns", err)
	}
	return out, nil
}

// InsertGeneratedContent stores generated copy in one transaction.
func (r *CampaignRepository) InsertGeneratedContent(ctx context.Context, items []domain.GeneratedContent) error {
	if len(items) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(`INSERT INTO generated_content (id, campaign_id, content_type, content, platform, created_at)
VALUES ($1,$2,$3,$4,$5,$6)`,
			it.ID, it.CampaignID, string(it.ContentType), it.Content, it.Platform, it.CreatedAt)
	}
	if err := r.inTx(ctx, batch); err != nil {
		return fail("insert generated content", err)
	}
	return nil
}
