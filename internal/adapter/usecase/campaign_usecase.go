package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"automark/internal/config/configs"
	"automark/internal/core/domain"
	"automark/internal/core/port"
	"automark/internal/metrics"
	"automark/internal/validator"
)

const (
	defaultSubjectSuffix = " - Special Offer"
	defaultEmailContent  = "<p>Campaign content</p>"
)

// Sender is the from address used for campaign emails.
type Sender struct {
	Email string
	Name  string
}

// CampaignUseCase orchestrates campaign operations across channel adapters
// and keeps the execution log consistent with what was attempted. Channels
// are processed sequentially in campaign order.
type CampaignUseCase struct {
	repo     port.CampaignRepository
	channels port.ChannelRegistry
	strategy port.StrategyGenerator
	locker   port.Locker
	metrics  *metrics.Metrics
	logger   *slog.Logger

	exec   configs.Execution
	sender Sender

	// now is the clock used for performance dates and content timestamps.
	now func() time.Time
}

// NewCampaignUseCase creates the orchestrator. m may be nil.
func NewCampaignUseCase(
	repo port.CampaignRepository,
	channels port.ChannelRegistry,
	strategy port.StrategyGenerator,
	locker port.Locker,
	exec configs.Execution,
	sender Sender,
	m *metrics.Metrics,
	logger *slog.Logger,
) *CampaignUseCase {
	return &CampaignUseCase{
		repo:     repo,
		channels: channels,
		strategy: strategy,
		locker:   locker,
		metrics:  m,
		logger:   logger.With(slog.String("component", "campaign_usecase")),
		exec:     exec,
		sender:   sender,
		now:      time.Now,
	}
}

func lockKey(id uuid.UUID) string { return "campaign:" + id.String() }

// acquire takes the per-campaign lock for the length of one run.
func (u *CampaignUseCase) acquire(ctx context.Context, id uuid.UUID) (func(), error) {
	release, err := u.locker.Acquire(ctx, lockKey(id))
	if errors.Is(err, port.ErrLocked) {
		return nil, domain.ErrExecutionInProgress
	}
	if err != nil {
		return nil, fmt.Errorf("lock campaign %s: %w", id, err)
	}
	return release, nil
}

// ExecuteCampaign launches the campaign on each configured channel.
func (u *CampaignUseCase) ExecuteCampaign(ctx context.Context, id uuid.UUID) ([]domain.ChannelExecutionResult, error) {
	release, err := u.acquire(ctx, id)
	if err != nil {
		return nil, err
	}
	defer release()

	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}

	ok, err := u.repo.CompareAndSetStatus(ctx, id, domain.ExecutableFrom, domain.StatusExecuting)
	if err != nil {
		return nil, err
	}
	if !ok {
		if c.Status == domain.StatusExecuting {
			return nil, domain.ErrExecutionInProgress
		}
		return nil, fmt.Errorf("%w: cannot execute a %s campaign", domain.ErrInvalidTransition, c.Status)
	}
	prior := c.Status

	// Past the CAS the run completes even if the caller goes away. Each
	// channel call is still bounded by the channel timeout.
	runCtx := context.WithoutCancel(ctx)

	logger := u.logger.With(slog.String("campaign_id", id.String()))
	channels := domain.UniqueChannels(c.Channels)
	budgets := domain.SplitBudget(c.Budget, channels, c.Strategy.BudgetAllocation)

	results := make([]domain.ChannelExecutionResult, 0, len(channels))
	for _, ch := range channels {
		adapter, ok := u.channels.Adapter(ch)
		if !ok {
			logger.Warn("channel not configured, skipping", slog.String("channel", ch.String()))
			continue
		}
		res := u.launch(runCtx, logger, c, adapter, u.launchSpec(c, ch, budgets[ch]))
		results = append(results, res)
	}

	succeeded := domain.CountSucceeded(results)
	if u.exec.ActivationPolicy == domain.ActivateOnSuccess && succeeded == 0 {
		if err = u.repo.UpdateCampaignStatus(runCtx, id, prior); err != nil {
			return results, err
		}
		logger.Warn("no channel succeeded, status restored", slog.String("status", string(prior)))
		return results, domain.ErrNoChannelSucceeded
	}
	if err = u.repo.UpdateCampaignStatus(runCtx, id, domain.StatusActive); err != nil {
		return results, err
	}
	logger.Info("campaign executed",
		slog.Int("attempted", len(results)),
		slog.Int("succeeded", succeeded),
	)

	if u.exec.SyncAfterExecute && succeeded > 0 {
		c.Status = domain.StatusActive
		if _, err = u.sync(runCtx, c); err != nil {
			logger.Warn("performance sync after execute failed", slog.Any("error", err))
		}
	}
	return results, nil
}

// launchSpec builds the create request for one channel.
func (u *CampaignUseCase) launchSpec(c *domain.Campaign, ch domain.Channel, budget decimal.Decimal) domain.LaunchSpec {
	spec := domain.LaunchSpec{
		Name:      c.Name,
		Budget:    budget,
		Targeting: c.Strategy.TargetingSuggestions,
	}
	if ch == domain.ChannelEmail {
		subject := c.Strategy.EmailSubject
		if subject == "" {
			subject = c.Name + defaultSubjectSuffix
		}
		content := c.Strategy.EmailContent
		if content == "" {
			content = defaultEmailContent
		}
		spec.Email = &domain.EmailMessage{
			Subject:     subject,
			FromEmail:   u.sender.Email,
			FromName:    u.sender.Name,
			HTMLContent: content,
			Recipients:  c.Strategy.EmailList,
		}
	}
	return spec
}

// launch creates the campaign on one platform and records the attempt.
func (u *CampaignUseCase) launch(ctx context.Context, logger *slog.Logger, c *domain.Campaign, adapter port.ChannelAdapter, spec domain.LaunchSpec) domain.ChannelExecutionResult {
	ch := adapter.Channel()
	callCtx, cancel := context.WithTimeout(ctx, u.exec.ChannelTimeout)
	start := time.Now()
	pr, err := adapter.CreateCampaign(callCtx, spec)
	cancel()

	action := domain.ActionLabel(domain.ActionExecution, ch)
	if err != nil {
		u.metrics.ObserveChannelOperation(ch.String(), "create", string(domain.ResultFailed), time.Since(start))
		logger.Error("channel execution failed", slog.String("channel", ch.String()), slog.Any("error", err))
		u.appendLog(ctx, logger, c.ID, action, domain.LogFailed, map[string]any{"error": err.Error()})
		return domain.ChannelExecutionResult{Channel: ch, Status: domain.ResultFailed, Error: err.Error()}
	}

	u.metrics.ObserveChannelOperation(ch.String(), "create", string(domain.ResultSuccess), time.Since(start))
	if pr.PlatformCampaignID != "" {
		err = u.repo.SavePlatformCampaign(ctx, domain.PlatformCampaign{
			CampaignID:         c.ID,
			Channel:            ch,
			PlatformCampaignID: pr.PlatformCampaignID,
		})
		if err != nil {
			logger.Error("failed to save platform campaign id", slog.String("channel", ch.String()), slog.Any("error", err))
		}
	}
	u.appendLog(ctx, logger, c.ID, action, domain.LogSuccess, pr.AsDetails())
	return domain.ChannelExecutionResult{Channel: ch, Status: domain.ResultSuccess, Result: &pr}
}

// appendLog writes an audit row. Failures are logged and swallowed.
func (u *CampaignUseCase) appendLog(ctx context.Context, logger *slog.Logger, id uuid.UUID, action string, status domain.LogStatus, details map[string]any) {
	err := u.repo.AppendExecutionLog(ctx, domain.ExecutionLogEntry{
		CampaignID: id,
		Action:     action,
		Status:     status,
		Details:    details,
	})
	if err != nil {
		logger.Error("failed to append execution log", slog.String("action", action), slog.Any("error", err))
	}
}

// PauseCampaign pauses the campaign on each configured channel.
func (u *CampaignUseCase) PauseCampaign(ctx context.Context, id uuid.UUID) ([]domain.ChannelExecutionResult, error) {
	release, err := u.acquire(ctx, id)
	if err != nil {
		return nil, err
	}
	defer release()

	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	platformIDs, err := u.repo.GetPlatformCampaigns(ctx, id)
	if err != nil {
		return nil, err
	}

	logger := u.logger.With(slog.String("campaign_id", id.String()))
	channels := domain.UniqueChannels(c.Channels)
	results := make([]domain.ChannelExecutionResult, 0, len(channels))
	for _, ch := range channels {
		adapter, ok := u.channels.Adapter(ch)
		if !ok {
			logger.Warn("channel not configured, skipping", slog.String("channel", ch.String()))
			continue
		}
		results = append(results, u.pause(ctx, logger, id, adapter, platformIDs[ch]))
	}

	if err = u.repo.UpdateCampaignStatus(ctx, id, domain.StatusPaused); err != nil {
		return results, err
	}
	logger.Info("campaign paused", slog.Int("channels", len(results)))
	return results, nil
}

func (u *CampaignUseCase) pause(ctx context.Context, logger *slog.Logger, id uuid.UUID, adapter port.ChannelAdapter, platformID string) domain.ChannelExecutionResult {
	ch := adapter.Channel()
	action := domain.ActionLabel(domain.ActionPause, ch)

	pauser, ok := adapter.(port.CampaignPauser)
	if !ok || platformID == "" {
		// Nothing to pause remotely; the pause is recorded locally.
		pr := domain.PlatformResult{Status: "paused", Details: map[string]any{"local_only": true}}
		u.appendLog(ctx, logger, id, action, domain.LogSuccess, pr.AsDetails())
		return domain.ChannelExecutionResult{Channel: ch, Status: domain.ResultPaused, Result: &pr}
	}

	callCtx, cancel := context.WithTimeout(ctx, u.exec.ChannelTimeout)
	start := time.Now()
	pr, err := pauser.PauseCampaign(callCtx, platformID)
	cancel()
	if err != nil {
		u.metrics.ObserveChannelOperation(ch.String(), "pause", string(domain.ResultFailed), time.Since(start))
		logger.Error("channel pause failed", slog.String("channel", ch.String()), slog.Any("error", err))
		u.appendLog(ctx, logger, id, action, domain.LogFailed, map[string]any{"error": err.Error()})
		return domain.ChannelExecutionResult{Channel: ch, Status: domain.ResultFailed, Error: err.Error()}
	}
	u.metrics.ObserveChannelOperation(ch.String(), "pause", string(domain.ResultSuccess), time.Since(start))
	u.appendLog(ctx, logger, id, action, domain.LogSuccess, pr.AsDetails())
	return domain.ChannelExecutionResult{Channel: ch, Status: domain.ResultPaused, Result: &pr}
}

// SyncPerformanceData pulls metrics from every channel that reports them.
func (u *CampaignUseCase) SyncPerformanceData(ctx context.Context, id uuid.UUID) ([]domain.PerformanceRecord, error) {
	release, err := u.acquire(ctx, id)
	if err != nil {
		return nil, err
	}
	defer release()

	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.sync(ctx, c)
}

// sync runs a performance sync for a loaded campaign. The caller holds the
// campaign lock.
func (u *CampaignUseCase) sync(ctx context.Context, c *domain.Campaign) ([]domain.PerformanceRecord, error) {
	platformIDs, err := u.repo.GetPlatformCampaigns(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	logger := u.logger.With(slog.String("campaign_id", c.ID.String()))
	now := u.now()
	window := domain.TrailingDays(now, u.exec.SyncWindowDays)

	channels := domain.UniqueChannels(c.Channels)
	records := make([]domain.PerformanceRecord, 0, len(channels))
	for _, ch := range channels {
		adapter, ok := u.channels.Adapter(ch)
		if !ok {
			continue
		}
		fetcher, ok := adapter.(port.PerformanceFetcher)
		if !ok {
			continue
		}

		callCtx, cancel := context.WithTimeout(ctx, u.exec.ChannelTimeout)
		start := time.Now()
		raw, err := fetcher.GetCampaignPerformance(callCtx, platformIDs[ch], window)
		cancel()
		if err != nil {
			u.metrics.ObserveChannelOperation(ch.String(), "sync", string(domain.ResultFailed), time.Since(start))
			logger.Warn("performance fetch failed", slog.String("channel", ch.String()), slog.Any("error", err))
			continue
		}
		u.metrics.ObserveChannelOperation(ch.String(), "sync", string(domain.ResultSuccess), time.Since(start))
		records = append(records, raw.ToRecord(c.ID, ch, now))
	}

	if len(records) == 0 {
		return records, nil
	}
	if err = u.repo.InsertPerformanceRecords(ctx, records); err != nil {
		return nil, err
	}
	u.metrics.AddPerformanceRecords(len(records))
	logger.Info("performance synced", slog.Int("records", len(records)))
	return records, nil
}

// CreateCampaign validates req and stores a draft campaign.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, req port.CreateCampaignReq) (*domain.Campaign, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	channels, err := domain.ParseChannels(req.Channels)
	if err != nil {
		return nil, &domain.ValidationError{Fields: map[string]string{"channels": err.Error()}}
	}

	var strategy domain.Strategy
	if req.Strategy != nil {
		strategy = *req.Strategy
	} else {
		strategy = u.strategy.GenerateStrategy(ctx, req.BusinessGoal, req.TargetAudience, req.Budget)
	}

	c := &domain.Campaign{
		ID:             uuid.New(),
		UserID:         req.UserID,
		Name:           req.Name,
		BusinessGoal:   req.BusinessGoal,
		TargetAudience: req.TargetAudience,
		Budget:         req.Budget,
		Status:         domain.StatusDraft,
		Channels:       channels,
		Strategy:       strategy,
	}
	if err = u.repo.CreateCampaign(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetCampaign returns a campaign owned by userID. Campaigns of other users
// are reported as not found.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, userID, id uuid.UUID) (*domain.Campaign, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (u *CampaignUseCase) ListCampaigns(ctx context.Context, userID uuid.UUID) ([]domain.Campaign, error) {
	return u.repo.ListCampaigns(ctx, userID)
}

// UpdateCampaign applies upd unless the campaign is executing.
func (u *CampaignUseCase) UpdateCampaign(ctx context.Context, userID, id uuid.UUID, upd domain.CampaignUpdate) (*domain.Campaign, error) {
	c, err := u.GetCampaign(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if len(domain.UniqueChannels(upd.Channels)) != len(upd.Channels) {
		return nil, &domain.ValidationError{Fields: map[string]string{"channels": "duplicate channel"}}
	}
	if c.Status == domain.StatusExecuting {
		return nil, fmt.Errorf("%w: campaign is executing", domain.ErrInvalidTransition)
	}
	upd.Apply(c)
	if err = u.repo.UpdateCampaign(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *CampaignUseCase) ListPerformance(ctx context.Context, id uuid.UUID) ([]domain.PerformanceRecord, error) {
	return u.repo.ListPerformance(ctx, id)
}

func (u *CampaignUseCase) ListExecutionLogs(ctx context.Context, id uuid.UUID) ([]domain.ExecutionLogEntry, error) {
	return u.repo.ListExecutionLogs(ctx, id)
}

// GetAnalytics summarizes stored performance and attaches an insight.
func (u *CampaignUseCase) GetAnalytics(ctx context.Context, id uuid.UUID) (*port.Analytics, error) {
	records, err := u.repo.ListPerformance(ctx, id)
	if err != nil {
		return nil, err
	}
	summary := domain.Summarize(records)
	return &port.Analytics{
		CampaignID: id,
		Summary:    summary,
		Insight:    u.strategy.GenerateInsight(ctx, summary),
	}, nil
}

func (u *CampaignUseCase) GenerateStrategy(ctx context.Context, req port.StrategyReq) domain.Strategy {
	return u.strategy.GenerateStrategy(ctx, req.BusinessGoal, req.TargetAudience, req.Budget)
}

// GenerateAdCopy produces copy variations for platform and stores them.
func (u *CampaignUseCase) GenerateAdCopy(ctx context.Context, id uuid.UUID, platform string) ([]domain.GeneratedContent, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	copies := u.strategy.GenerateAdCopy(ctx, c.Name, c.TargetAudience, platform)

	now := u.now().UTC()
	items := make([]domain.GeneratedContent, 0, len(copies))
	for _, text := range copies {
		items = append(items, domain.GeneratedContent{
			ID:          uuid.New(),
			CampaignID:  id,
			ContentType: domain.ContentAdCopy,
			Content:     text,
			Platform:    platform,
			CreatedAt:   now,
		})
	}
	if err = u.repo.InsertGeneratedContent(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}
