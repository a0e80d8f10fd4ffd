// Package kvstore is the single-table item store behind every repository.
// Items are addressed by a partition key and a sort key and may carry two
// secondary index key pairs (GSI1, GSI2).
package kvstore

import (
	"context"
	"errors"
)

var (
	ErrNotFound        = errors.New("item not found")
	ErrConditionFailed = errors.New("condition check failed")
)

type Index string

const (
	IndexPrimary Index = ""
	IndexGSI1    Index = "GSI1"
	IndexGSI2    Index = "GSI2"
)

// VersionAttribute is the item attribute compared by IfVersion.
const VersionAttribute = "version"

// Keys is embedded in every stored record. Empty index keys are not indexed.
type Keys struct {
	PK     string `json:"PK" dynamodbav:"PK"`
	SK     string `json:"SK" dynamodbav:"SK"`
	GSI1PK string `json:"GSI1PK,omitempty" dynamodbav:"GSI1PK,omitempty"`
	GSI1SK string `json:"GSI1SK,omitempty" dynamodbav:"GSI1SK,omitempty"`
	GSI2PK string `json:"GSI2PK,omitempty" dynamodbav:"GSI2PK,omitempty"`
	GSI2SK string `json:"GSI2SK,omitempty" dynamodbav:"GSI2SK,omitempty"`
}

func (k Keys) ItemKeys() Keys {
	return k
}

type Keyed interface {
	ItemKeys() Keys
}

type conditionKind int

const (
	conditionNone conditionKind = iota
	conditionNotExists
	conditionVersion
)

type Condition struct {
	kind    conditionKind
	version int64
}

// IfNotExists fails the write when an item with the same primary key is stored.
func IfNotExists() Condition {
	return Condition{kind: conditionNotExists}
}

// IfVersion fails the write unless the stored item's version equals v.
// v == 0 means the item must not exist yet.
func IfVersion(v int64) Condition {
	if v == 0 {
		return IfNotExists()
	}
	return Condition{kind: conditionVersion, version: v}
}

// Holds reports whether a write guarded by c may proceed against the stored item.
func (c Condition) Holds(exists bool, storedVersion int64) bool {
	switch c.kind {
	case conditionNotExists:
		return !exists
	case conditionVersion:
		return exists && storedVersion == c.version
	default:
		return true
	}
}

type PutOp struct {
	Item      Keyed
	Condition Condition
}

func Put(item Keyed, cond ...Condition) PutOp {
	op := PutOp{Item: item}
	if len(cond) > 0 {
		op.Condition = cond[0]
	}
	return op
}

// Store is implemented by PostgresStore, DynamoStore and RetryingStore.
//
// out arguments are pointers to a record (Get) or to a slice of records
// (Query, QueryIndex, Scan). Query results are ordered by sort key.
type Store interface {
	Get(ctx context.Context, pk, sk string, out any) error
	Put(ctx context.Context, op PutOp) error
	// Update merges fields into the stored item; ErrNotFound when absent.
	Update(ctx context.Context, pk, sk string, fields map[string]any) error
	Query(ctx context.Context, pk, skPrefix string, out any) error
	QueryIndex(ctx context.Context, index Index, pk, skPrefix string, out any) error
	// Scan returns every item whose attributes equal all filter values.
	Scan(ctx context.Context, filter map[string]string, out any) error
	// TransactWrite applies all puts or none. ErrConditionFailed when any condition fails.
	TransactWrite(ctx context.Context, ops ...PutOp) error
}
