package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LogStatus is the status of an execution-log row.
type LogStatus string

const (
	LogPending LogStatus = "pending"
	LogSuccess LogStatus = "success"
	LogFailed  LogStatus = "failed"
)

// ExecutionLogEntry is an append-only audit row, one per channel attempt.
type ExecutionLogEntry struct {
	ID         int64          `json:"id,omitempty"`
	CampaignID uuid.UUID      `json:"campaign_id"`
	Action     string         `json:"action"`
	Status     LogStatus      `json:"status"`
	Details    map[string]any `json:"details"`
	CreatedAt  time.Time      `json:"created_at"`
}

// Action labels used in the execution log.
const (
	ActionExecution = "Campaign Execution"
	ActionPause     = "Campaign Pause"
)

// ActionLabel renders the log action for an operation on a channel.
func ActionLabel(action string, c Channel) string {
	return action + " - " + string(c)
}

// ResultStatus is the outcome of one channel within a run.
type ResultStatus string

const (
	ResultSuccess ResultStatus = "success"
	ResultFailed  ResultStatus = "failed"
	ResultPaused  ResultStatus = "paused"
)

// ChannelExecutionResult is the per-channel outcome returned to callers.
type ChannelExecutionResult struct {
	Channel Channel         `json:"channel"`
	Status  ResultStatus    `json:"status"`
	Result  *PlatformResult `json:"result,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// CountSucceeded returns how many results report success. Callers report
// "activated on N platforms" with this count, never the number attempted.
func CountSucceeded(results []ChannelExecutionResult) int {
	n := 0
	for _, r := range results {
		if r.Status == ResultSuccess {
			n++
		}
	}
	return n
}

// PlatformResult is the normalized response of a platform call.
type PlatformResult struct {
	PlatformCampaignID string         `json:"platform_campaign_id,omitempty"`
	Status             string         `json:"status,omitempty"`
	Details            map[string]any `json:"details,omitempty"`
}

// AsDetails flattens the result for the execution log.
func (r PlatformResult) AsDetails() map[string]any {
	out := make(map[string]any, len(r.Details)+2)
	for k, v := range r.Details {
		out[k] = v
	}
	if r.PlatformCampaignID != "" {
		out["platform_campaign_id"] = r.PlatformCampaignID
	}
	if r.Status != "" {
		out["status"] = r.Status
	}
	return out
}

// PlatformCampaign links a campaign channel to the remote object created on
// the platform, so pause and sync can target it later.
type PlatformCampaign struct {
	CampaignID         uuid.UUID `json:"campaign_id"`
	Channel            Channel   `json:"channel"`
	PlatformCampaignID string    `json:"platform_campaign_id"`
	CreatedAt          time.Time `json:"created_at"`
}

// LaunchSpec is the channel-neutral request to create a campaign on a
// platform. Email is set only for the email channel.
type LaunchSpec struct {
	Name      string
	Budget    decimal.Decimal
	Targeting []string
	Email     *EmailMessage
}

// EmailMessage is a campaign email and its recipients.
type EmailMessage struct {
	Subject     string
	FromEmail   string
	FromName    string
	HTMLContent string
	Recipients  []string
}

// ActivationPolicy decides the campaign status after an execution run.
type ActivationPolicy string

const (
	// ActivateAlways sets the campaign active once every channel was
	// attempted, whatever the outcomes.
	ActivateAlways ActivationPolicy = "always"
	// ActivateOnSuccess sets the campaign active only when at least one
	// channel succeeded and otherwise restores the prior status.
	ActivateOnSuccess ActivationPolicy = "on_success"
)

// ContentType classifies generated content.
type ContentType string

const (
	ContentAdCopy ContentType = "ad_copy"
	ContentEmail  ContentType = "email"
	ContentSocial ContentType = "social"
	ContentImage  ContentType = "image"
)

// GeneratedContent is AI-produced copy stored against a campaign.
type GeneratedContent struct {
	ID          uuid.UUID   `json:"id"`
	CampaignID  uuid.UUID   `json:"campaign_id"`
	ContentType ContentType `json:"content_type"`
	Content     string      `json:"content"`
	Platform    string      `json:"platform"`
	CreatedAt   time.Time   `json:"created_at"`
}
