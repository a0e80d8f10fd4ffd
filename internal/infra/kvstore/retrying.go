package kvstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryingStore bounds every call by a timeout and retries failed reads with
// exponential backoff. Writes are never retried; a conditional write that timed
// out may have committed.
type RetryingStore struct {
	next        Store
	callTimeout time.Duration
	readRetries uint64
	logger      *slog.Logger

	newBackOff func() backoff.BackOff
}

func NewRetryingStore(next Store, callTimeout time.Duration, readRetries uint64, logger *slog.Logger) *RetryingStore {
	return &RetryingStore{
		next:        next,
		callTimeout: callTimeout,
		readRetries: readRetries,
		logger:      logger,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 50 * time.Millisecond
			b.MaxInterval = 500 * time.Millisecond
			return b
		},
	}
}

func (s *RetryingStore) Get(ctx context.Context, pk, sk string, out any) error {
	return s.read(ctx, "get", func(ctx context.Context) error {
		return s.next.Get(ctx, pk, sk, out)
	})
}

func (s *RetryingStore) Put(ctx context.Context, op PutOp) error {
	return s.write(ctx, func(ctx context.Context) error {
		return s.next.Put(ctx, op)
	})
}

func (s *RetryingStore) Update(ctx context.Context, pk, sk string, fields map[string]any) error {
	return s.write(ctx, func(ctx context.Context) error {
		return s.next.Update(ctx, pk, sk, fields)
	})
}

func (s *RetryingStore) Query(ctx context.Context, pk, skPrefix string, out any) error {
	return s.read(ctx, "query", func(ctx context.Context) error {
		return s.next.Query(ctx, pk, skPrefix, out)
	})
}

func (s *RetryingStore) QueryIndex(ctx context.Context, index Index, pk, skPrefix string, out any) error {
	return s.read(ctx, "query_index", func(ctx context.Context) error {
		return s.next.QueryIndex(ctx, index, pk, skPrefix, out)
	})
}

func (s *RetryingStore) Scan(ctx context.Context, filter map[string]string, out any) error {
	return s.read(ctx, "scan", func(ctx context.Context) error {
		return s.next.Scan(ctx, filter, out)
	})
}

func (s *RetryingStore) TransactWrite(ctx context.Context, ops ...PutOp) error {
	return s.write(ctx, func(ctx context.Context) error {
		return s.next.TransactWrite(ctx, ops...)
	})
}

func (s *RetryingStore) read(ctx context.Context, op string, fn func(context.Context) error) error {
	policy := backoff.WithContext(backoff.WithMaxRetries(s.newBackOff(), s.readRetries), ctx)

	attempt := func() error {
		err := s.call(ctx, fn)
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConditionFailed) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		s.logger.Warn("store read failed, retrying", "op", op, "error", err, "wait", wait)
	}
	return backoff.RetryNotify(attempt, policy, notify)
}

func (s *RetryingStore) write(ctx context.Context, fn func(context.Context) error) error {
	return s.call(ctx, fn)
}

func (s *RetryingStore) call(ctx context.Context, fn func(context.Context) error) error {
	if s.callTimeout <= 0 {
		return fn(ctx)
	}
	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()
	return fn(callCtx)
}
