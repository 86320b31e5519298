// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package records

import (
	"context"
	"sort"
	"sync"

	"gitlab.com/accumulatenetwork/authroute/pkg/errors"
	"gitlab.com/accumulatenetwork/authroute/pkg/txn"
)

// Memory is an in-memory store. Records are stored encoded so callers never
// share state with the store.
type Memory struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{entries: map[string][]byte{}}
}

func (m *Memory) Transaction(_ context.Context, id string) (*txn.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.entries[id]
	if !ok {
		return nil, notFound(id)
	}
	return decode(b)
}

func (m *Memory) Put(_ context.Context, t *txn.Transaction) (string, error) {
	b, err := prepare(t)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[t.ID] = b
	return t.ID, nil
}

func (m *Memory) List(context.Context) ([]*txn.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.entries))
	for id := range m.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	s := make([]*txn.Transaction, 0, len(ids))
	for _, id := range ids {
		t, err := decode(m.entries[id])
		if err != nil {
			return nil, errors.UnknownError.Wrap(err)
		}
		s = append(s, t)
	}
	return s, nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		return notFound(id)
	}
	delete(m.entries, id)
	return nil
}

func (m *Memory) Close() error { return nil }
