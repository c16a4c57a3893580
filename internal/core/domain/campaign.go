package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of a campaign.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusExecuting Status = "executing"
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusExecuting, StatusActive, StatusPaused, StatusCompleted:
		return true
	}
	return false
}

// ExecutableFrom lists the statuses a campaign may be executed from. The
// transition into StatusExecuting is a compare-and-set on one of these.
var ExecutableFrom = []Status{StatusDraft, StatusPaused}

// Campaign represents a marketing campaign owned by a single user.
// Budget is in currency units with cent precision.
type Campaign struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"user_id"`
	Name           string          `json:"name"`
	BusinessGoal   string          `json:"business_goal"`
	TargetAudience string          `json:"target_audience"`
	Budget         decimal.Decimal `json:"budget"`
	Status         Status          `json:"status"`
	Channels       []Channel       `json:"channels"`
	Strategy       Strategy        `json:"strategy"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CampaignUpdate carries the editable fields of a campaign. Nil fields are
// left untouched.
type CampaignUpdate struct {
	Name           *string
	BusinessGoal   *string
	TargetAudience *string
	Budget         *decimal.Decimal
	Channels       []Channel
	Strategy       *Strategy
}

// Apply copies the non-nil fields of u onto c.
func (u CampaignUpdate) Apply(c *Campaign) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.BusinessGoal != nil {
		c.BusinessGoal = *u.BusinessGoal
	}
	if u.TargetAudience != nil {
		c.TargetAudience = *u.TargetAudience
	}
	if u.Budget != nil {
		c.Budget = *u.Budget
	}
	if len(u.Channels) > 0 {
		c.Channels = u.Channels
	}
	if u.Strategy != nil {
		c.Strategy = *u.Strategy
	}
}
