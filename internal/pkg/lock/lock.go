package lock

import (
	"context"
	stderrors "errors"
	"time"

	"storefront-service/internal/pkg/errors"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const defaultExpiry = 10 * time.Second

// Locker hands out short-lived distributed mutexes keyed by name.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

type locker struct {
	rs     *redsync.Redsync
	expiry time.Duration
}

func New(rdb *redis.Client) Locker {
	return &locker{
		rs:     redsync.New(goredis.NewPool(rdb)),
		expiry: defaultExpiry,
	}
}

// Lock tries once; a held lock is reported as a conflict rather than waited on.
// An unreachable redis looks the same as a held lock.
func (l *locker) Lock(ctx context.Context, key string) (func(), error) {
	mutex := l.rs.NewMutex(key, redsync.WithExpiry(l.expiry), redsync.WithTries(1))
	if err := mutex.LockContext(ctx); err != nil {
		if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, errors.Conflict("request already in progress")
	}

	return func() {
		_, _ = mutex.UnlockContext(context.Background())
	}, nil
}
