//go:build unit

package kvstore

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyStore struct {
	Store
	failures int
	err      error
	calls    int
	deadline bool
}

func (f *flakyStore) Get(ctx context.Context, _, _ string, _ any) error {
	f.calls++
	_, f.deadline = ctx.Deadline()
	if f.calls <= f.failures {
		return f.err
	}
	return nil
}

func (f *flakyStore) Put(ctx context.Context, _ PutOp) error {
	f.calls++
	_, f.deadline = ctx.Deadline()
	return f.err
}

func newTestRetryingStore(next Store, retries uint64) *RetryingStore {
	s := NewRetryingStore(next, time.Second, retries, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.newBackOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }
	return s
}

func TestRetryingStore_Read(t *testing.T) {
	transient := errors.New("connection reset")

	tests := []struct {
		name      string
		failures  int
		err       error
		retries   uint64
		wantErr   error
		wantCalls int
	}{
		{name: "succeeds first time", failures: 0, err: transient, retries: 2, wantCalls: 1},
		{name: "recovers after transient failures", failures: 2, err: transient, retries: 2, wantCalls: 3},
		{name: "gives up after retries", failures: 5, err: transient, retries: 2, wantErr: transient, wantCalls: 3},
		{name: "not found is not retried", failures: 5, err: ErrNotFound, retries: 2, wantErr: ErrNotFound, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := &flakyStore{failures: tt.failures, err: tt.err}
			s := newTestRetryingStore(next, tt.retries)

			var out map[string]any
			err := s.Get(context.Background(), "PK", "SK", &out)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantCalls, next.calls)
			assert.True(t, next.deadline, "each call is bounded by the call timeout")
		})
	}
}

func TestRetryingStore_WritesAreNotRetried(t *testing.T) {
	next := &flakyStore{err: errors.New("timeout")}
	s := newTestRetryingStore(next, 5)

	err := s.Put(context.Background(), Put(Keys{PK: "A", SK: "B"}))

	require.Error(t, err)
	assert.Equal(t, 1, next.calls)
	assert.True(t, next.deadline)
}
