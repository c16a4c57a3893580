package configs

import "time"

// Redis configures the optional Redis connection used for per-campaign
// locks. When URL is empty an in-process locker is used instead, which only
// serializes runs within one instance.
type Redis struct {
	URL string `env:"URL"`
	// LockTTL bounds how long a campaign lock survives a crashed holder.
	LockTTL time.Duration `env:"LOCK_TTL" envDefault:"5m"`
}
