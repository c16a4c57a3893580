package configs

import (
	"time"

	"automark/internal/core/domain"
)

// Execution tunes the campaign orchestrator.
type Execution struct {
	// ChannelTimeout bounds each platform call. A timeout is reported as
	// a failed outcome for that channel only.
	ChannelTimeout time.Duration `env:"CHANNEL_TIMEOUT" envDefault:"30s"`
	// ActivationPolicy is "on_success" (active only when a channel
	// succeeded) or "always" (active after any attempt).
	ActivationPolicy domain.ActivationPolicy `env:"ACTIVATION_POLICY" envDefault:"on_success"`
	// SyncAfterExecute runs a performance sync after each execution.
	SyncAfterExecute bool `env:"SYNC_AFTER_EXECUTE" envDefault:"true"`
	// SyncWindowDays is the trailing window fetched by a sync.
	SyncWindowDays int `env:"SYNC_WINDOW_DAYS" envDefault:"7"`
}
