//go:build unit || e2e

// Package kvtest provides an in-memory kvstore.Store with the same
// conditional-write semantics as the real backends.
package kvtest

import (
	"bytes"
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"

	"badminton-club/internal/infra/kvstore"
)

type entry struct {
	keys kvstore.Keys
	data map[string]any
}

type MemoryStore struct {
	mu    sync.Mutex
	items map[string]entry

	// BeforeTransact runs once, before the next TransactWrite, without the lock held.
	// Tests use it to interleave a competing writer.
	BeforeTransact func(ctx context.Context)
	// Errors forces the named operation ("get", "put", "update", "query", "scan", "transact") to fail.
	Errors map[string]error
	Calls  map[string]int
}

var _ kvstore.Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items:  map[string]entry{},
		Errors: map[string]error{},
		Calls:  map[string]int{},
	}
}

func (m *MemoryStore) Get(_ context.Context, pk, sk string, out any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.track("get"); err != nil {
		return err
	}
	e, ok := m.items[id(pk, sk)]
	if !ok {
		return kvstore.ErrNotFound
	}
	return decode(e.data, out)
}

func (m *MemoryStore) Put(_ context.Context, op kvstore.PutOp) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.track("put"); err != nil {
		return err
	}
	e, err := toEntry(op.Item)
	if err != nil {
		return err
	}
	if err := m.check(op, e.keys); err != nil {
		return err
	}
	m.items[id(e.keys.PK, e.keys.SK)] = e
	return nil
}

func (m *MemoryStore) Update(_ context.Context, pk, sk string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.track("update"); err != nil {
		return err
	}
	e, ok := m.items[id(pk, sk)]
	if !ok {
		return kvstore.ErrNotFound
	}
	patch, err := normalize(fields)
	if err != nil {
		return err
	}
	for k, v := range patch {
		e.data[k] = v
	}
	m.items[id(pk, sk)] = e
	return nil
}

func (m *MemoryStore) Query(ctx context.Context, pk, skPrefix string, out any) error {
	return m.QueryIndex(ctx, kvstore.IndexPrimary, pk, skPrefix, out)
}

func (m *MemoryStore) QueryIndex(_ context.Context, index kvstore.Index, pk, skPrefix string, out any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.track("query"); err != nil {
		return err
	}

	type hit struct {
		sk   string
		data map[string]any
	}
	var hits []hit
	for _, e := range m.items {
		p, s := indexKeys(e.keys, index)
		if p == "" || p != pk || !strings.HasPrefix(s, skPrefix) {
			continue
		}
		hits = append(hits, hit{sk: s, data: e.data})
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].sk < hits[j].sk })

	docs := make([]map[string]any, len(hits))
	for i, h := range hits {
		docs[i] = h.data
	}
	return decode(docs, out)
}

func (m *MemoryStore) Scan(_ context.Context, filter map[string]string, out any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.track("scan"); err != nil {
		return err
	}

	ids := make([]string, 0, len(m.items))
	for k := range m.items {
		ids = append(ids, k)
	}
	sort.Strings(ids)

	var docs []map[string]any
	for _, k := range ids {
		e := m.items[k]
		if matches(e.data, filter) {
			docs = append(docs, e.data)
		}
	}
	if docs == nil {
		docs = []map[string]any{}
	}
	return decode(docs, out)
}

func (m *MemoryStore) TransactWrite(ctx context.Context, ops ...kvstore.PutOp) error {
	m.mu.Lock()
	hook := m.BeforeTransact
	m.BeforeTransact = nil
	m.mu.Unlock()
	if hook != nil {
		hook(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.track("transact"); err != nil {
		return err
	}

	entries := make([]entry, len(ops))
	for i, op := range ops {
		e, err := toEntry(op.Item)
		if err != nil {
			return err
		}
		if err := m.check(op, e.keys); err != nil {
			return err
		}
		entries[i] = e
	}
	for _, e := range entries {
		m.items[id(e.keys.PK, e.keys.SK)] = e
	}
	return nil
}

// Len reports how many items are stored.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

func (m *MemoryStore) track(op string) error {
	m.Calls[op]++
	return m.Errors[op]
}

func (m *MemoryStore) check(op kvstore.PutOp, keys kvstore.Keys) error {
	current, exists := m.items[id(keys.PK, keys.SK)]
	var stored float64
	if exists {
		stored, _ = current.data[kvstore.VersionAttribute].(float64)
	}
	if !op.Condition.Holds(exists, int64(stored)) {
		return kvstore.ErrConditionFailed
	}
	return nil
}

func toEntry(item kvstore.Keyed) (entry, error) {
	data, err := normalize(item)
	if err != nil {
		return entry{}, err
	}
	return entry{keys: item.ItemKeys(), data: data}, nil
}

func normalize(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decode(v any, out any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.NewDecoder(bytes.NewReader(raw)).Decode(out)
}

func matches(data map[string]any, filter map[string]string) bool {
	for k, want := range filter {
		got, ok := data[k].(string)
		if !ok || got != want {
			return false
		}
	}
	return true
}

func indexKeys(k kvstore.Keys, index kvstore.Index) (string, string) {
	switch index {
	case kvstore.IndexGSI1:
		return k.GSI1PK, k.GSI1SK
	case kvstore.IndexGSI2:
		return k.GSI2PK, k.GSI2SK
	default:
		return k.PK, k.SK
	}
}

func id(pk, sk string) string {
	return pk + "\x00" + sk
}
