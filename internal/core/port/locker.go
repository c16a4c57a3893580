package port

import (
	"context"
	"errors"
)

// ErrLocked is returned by Locker.Acquire when the key is held elsewhere.
var ErrLocked = errors.New("lock is held")

// Locker provides per-key mutual exclusion across orchestrator runs.
type Locker interface {
	// Acquire takes the lock for key. The returned release function must be
	// called once the run completes.
	Acquire(ctx context.Context, key string) (release func(), err error)
}
