//go:build unit

package kvstore_test

import (
	"testing"

	"badminton-club/internal/infra/kvstore"

	"github.com/stretchr/testify/assert"
)

func TestConditionHolds(t *testing.T) {
	tests := []struct {
		name    string
		cond    kvstore.Condition
		exists  bool
		version int64
		want    bool
	}{
		{name: "no condition on missing item", cond: kvstore.Condition{}, want: true},
		{name: "no condition on stored item", cond: kvstore.Condition{}, exists: true, version: 3, want: true},
		{name: "not exists on missing item", cond: kvstore.IfNotExists(), want: true},
		{name: "not exists on stored item", cond: kvstore.IfNotExists(), exists: true, want: false},
		{name: "version 0 means absent", cond: kvstore.IfVersion(0), want: true},
		{name: "version 0 rejects stored item", cond: kvstore.IfVersion(0), exists: true, want: false},
		{name: "version match", cond: kvstore.IfVersion(2), exists: true, version: 2, want: true},
		{name: "version mismatch", cond: kvstore.IfVersion(2), exists: true, version: 3, want: false},
		{name: "version on missing item", cond: kvstore.IfVersion(2), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cond.Holds(tt.exists, tt.version))
		})
	}
}

func TestPutDefaultsToUnconditional(t *testing.T) {
	op := kvstore.Put(kvstore.Keys{PK: "A", SK: "B"})
	assert.True(t, op.Condition.Holds(true, 7))
	assert.Equal(t, "A", op.Item.ItemKeys().PK)
}
