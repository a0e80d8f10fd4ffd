//go:build e2e

package store_test

import (
	"context"
	"testing"

	"badminton-club/internal/infra/kvstore"
	"badminton-club/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type item struct {
	kvstore.Keys
	EntityType string `json:"entityType"`
	Name       string `json:"name"`
	Version    int64  `json:"version,omitempty"`
}

type StoreSuite struct {
	e2e.SharedSuite
}

func (s *StoreSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestStoreSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) TestConditionalWrites() {
	ctx := context.Background()

	s.Run("IfNotExists rejects a second insert", func() {
		t := s.T()
		first := item{Keys: kvstore.Keys{PK: "COURT#1", SK: "COURT#1"}, EntityType: "court", Name: "A"}
		require.NoError(t, s.Store.Put(ctx, kvstore.Put(first, kvstore.IfNotExists())))

		second := first
		second.Name = "B"
		err := s.Store.Put(ctx, kvstore.Put(second, kvstore.IfNotExists()))
		require.ErrorIs(t, err, kvstore.ErrConditionFailed)

		var got item
		require.NoError(t, s.Store.Get(ctx, "COURT#1", "COURT#1", &got))
		require.Equal(t, "A", got.Name)
	})

	s.Run("TransactWrite is all or nothing", func() {
		t := s.T()
		schedule := item{Keys: kvstore.Keys{PK: "COURT#1", SK: "SCHEDULE#2025-06-14"}, Version: 1}
		require.NoError(t, s.Store.Put(ctx, kvstore.Put(schedule)))

		booking := item{
			Keys: kvstore.Keys{
				PK: "BOOKING#1", SK: "BOOKING#1",
				GSI2PK: "COURT#1", GSI2SK: "BOOKING#2025-06-14#10:00",
			},
			EntityType: "booking",
		}
		stale := schedule
		stale.Version = 2
		err := s.Store.TransactWrite(ctx,
			kvstore.Put(booking, kvstore.IfNotExists()),
			kvstore.Put(stale, kvstore.IfVersion(5)),
		)
		require.ErrorIs(t, err, kvstore.ErrConditionFailed)

		err = s.Store.Get(ctx, "BOOKING#1", "BOOKING#1", &item{})
		require.ErrorIs(t, err, kvstore.ErrNotFound)

		require.NoError(t, s.Store.TransactWrite(ctx,
			kvstore.Put(booking, kvstore.IfNotExists()),
			kvstore.Put(stale, kvstore.IfVersion(1)),
		))

		var got item
		require.NoError(t, s.Store.Get(ctx, "COURT#1", "SCHEDULE#2025-06-14", &got))
		require.Equal(t, int64(2), got.Version)
	})
}

func (s *StoreSuite) TestQueries() {
	ctx := context.Background()

	s.Run("index prefix query is ordered and escapes wildcards", func() {
		t := s.T()
		for _, it := range []item{
			{Keys: kvstore.Keys{PK: "B#2", SK: "B#2", GSI2PK: "COURT#1", GSI2SK: "BOOKING#2025-06-14#12:00"}, EntityType: "booking", Name: "noon"},
			{Keys: kvstore.Keys{PK: "B#1", SK: "B#1", GSI2PK: "COURT#1", GSI2SK: "BOOKING#2025-06-14#09:00"}, EntityType: "booking", Name: "morning"},
			{Keys: kvstore.Keys{PK: "B#3", SK: "B#3", GSI2PK: "COURT#1", GSI2SK: "BOOKING#2025-06-15#09:00"}, EntityType: "booking", Name: "next day"},
			{Keys: kvstore.Keys{PK: "B#4", SK: "B#4", GSI2PK: "COURT#2", GSI2SK: "BOOKING#2025-06-14#09:00"}, EntityType: "booking", Name: "other court"},
		} {
			require.NoError(t, s.Store.Put(ctx, kvstore.Put(it)))
		}

		var got []item
		require.NoError(t, s.Store.QueryIndex(ctx, kvstore.IndexGSI2, "COURT#1", "BOOKING#2025-06-14", &got))
		names := make([]string, 0, len(got))
		for _, it := range got {
			names = append(names, it.Name)
		}
		if diff := cmp.Diff([]string{"morning", "noon"}, names); diff != "" {
			t.Errorf("query mismatch (-want +got):\n%s", diff)
		}

		got = nil
		require.NoError(t, s.Store.QueryIndex(ctx, kvstore.IndexGSI2, "COURT#1", "BOOKING#2025_06", &got))
		require.Empty(t, got)
	})

	s.Run("scan filters on attributes and update merges fields", func() {
		t := s.T()
		require.NoError(t, s.Store.Put(ctx, kvstore.Put(item{Keys: kvstore.Keys{PK: "C#1", SK: "C#1"}, EntityType: "court", Name: "one"})))
		require.NoError(t, s.Store.Put(ctx, kvstore.Put(item{Keys: kvstore.Keys{PK: "U#1", SK: "U#1"}, EntityType: "user", Name: "jane"})))

		var courts []item
		require.NoError(t, s.Store.Scan(ctx, map[string]string{"entityType": "court"}, &courts))
		require.Len(t, courts, 1)

		require.NoError(t, s.Store.Update(ctx, "C#1", "C#1", map[string]any{"name": "renamed"}))
		var got item
		require.NoError(t, s.Store.Get(ctx, "C#1", "C#1", &got))
		require.Equal(t, "renamed", got.Name)
		require.Equal(t, "court", got.EntityType)

		err := s.Store.Update(ctx, "C#404", "C#404", map[string]any{"name": "x"})
		require.ErrorIs(t, err, kvstore.ErrNotFound)
	})
}
