package lock

import (
	"context"
	"sync"
	"time"
)

var (
	lockMap sync.Map
)

const pollInterval = 50 * time.Millisecond

// WithDelay runs safeCode while holding the key lock.
// success is false when the lock was not taken within wait or ctx is done, safeCode is not run then.
func WithDelay(ctx context.Context, key string, wait time.Duration, safeCode func() error) (success bool, err error) {
	isTimeout := time.NewTimer(wait)
	defer isTimeout.Stop()
	for {
		if _, loaded := lockMap.LoadOrStore(key, true); !loaded {
			break
		}
		select {
		case <-isTimeout.C:
			return false, nil
		case <-ctx.Done():
			return false, nil
		case <-time.After(pollInterval):
		}
	}
	defer lockMap.Delete(key)
	return true, safeCode()
}

func IsLocked(key string) bool {
	_, locked := lockMap.Load(key)
	return locked
}
