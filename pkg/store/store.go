// Package store defines the string-keyed persistence port used by the catalog
// and the booking ledger, plus the backends that implement it.
//
// Values are opaque strings (the callers store JSON documents). A backend
// never interprets them. Every method either fully succeeds or returns an
// error; there is no partial write.
package store

import (
	"context"
	"errors"
	"time"
)

const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendMongo  = "mongo"
	BackendRedis  = "redis"
)

var ErrInvalidKey = errors.New("store key cannot be empty")

type Store interface {
	// Get returns the value stored under key. found is false when the key
	// has never been written.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Ping(ctx context.Context) error
}

func validateKey(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	return nil
}

// withTimeout bounds one backend call. It never extends a caller deadline,
// and a non-positive timeout leaves ctx as is.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	deadline, hasDeadline := ctx.Deadline()
	if hasDeadline && time.Until(deadline) < timeout {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
