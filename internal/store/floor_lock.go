package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// FloorLock serializes room creation per floor. The area-availability
// check and the later save are separate store operations, so two
// concurrent creations on the same floor could otherwise both pass the
// check and persist overlapping rooms. The lease has a TTL so a crashed
// holder cannot wedge a floor.
type FloorLock struct {
	kv  KV
	ttl time.Duration
}

func NewFloorLock(kv KV, ttl time.Duration) *FloorLock {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &FloorLock{kv: kv, ttl: ttl}
}

// Acquire tries to take the per-floor lease. On success it returns a
// release func and true. Returning an error means the store itself
// failed; callers decide whether to proceed unguarded.
func (l *FloorLock) Acquire(ctx context.Context, floorID string) (release func(), acquired bool, err error) {
	key := "floor-lock:" + floorID
	token := uuid.NewString()
	ok, err := l.kv.SetNX(ctx, key, token, l.ttl)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	return func() {
		// Only delete our own lease. A stale Get after expiry is fine;
		// worst case the next holder's lease is left untouched.
		if v, err := l.kv.Get(context.Background(), key); err == nil && v == token {
			_ = l.kv.Del(context.Background(), key)
		}
	}, true, nil
}
