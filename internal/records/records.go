// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package records stores tracked transactions.
package records

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gitlab.com/accumulatenetwork/authroute/pkg/errors"
	"gitlab.com/accumulatenetwork/authroute/pkg/txn"
)

// Store is a writable store of transaction records.
type Store interface {
	txn.Records

	// Put stores the record, assigning an ID if it has none, and returns
	// the ID.
	Put(ctx context.Context, t *txn.Transaction) (string, error)

	// List returns every record.
	List(ctx context.Context) ([]*txn.Transaction, error)

	// Delete removes a record.
	Delete(ctx context.Context, id string) error

	Close() error
}

func notFound(id string) error {
	return errors.NotFound.WithFormat("transaction %s not found", id)
}

func prepare(t *txn.Transaction) ([]byte, error) {
	if t == nil {
		return nil, errors.BadRequest.With("missing transaction")
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, errors.EncodingError.WithFormat("encode transaction %s: %w", t.ID, err)
	}
	return b, nil
}

func decode(b []byte) (*txn.Transaction, error) {
	t := new(txn.Transaction)
	err := json.Unmarshal(b, t)
	if err != nil {
		return nil, errors.EncodingError.WithFormat("decode transaction: %w", err)
	}
	return t, nil
}
