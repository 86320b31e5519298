// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package records

import (
	"context"
	"log/slog"

	"gitlab.com/accumulatenetwork/authroute/internal/logging"
	"gitlab.com/accumulatenetwork/authroute/pkg/errors"
	"gitlab.com/accumulatenetwork/authroute/pkg/txn"
	bolt "go.etcd.io/bbolt"
)

// Bolt is a store backed by a bbolt database file.
type Bolt struct {
	opts
	bolt *bolt.DB
}

var _ Store = (*Bolt)(nil)

type opts struct {
	bucket []byte
}

type Option func(*opts) error

// WithBucket sets the bucket records are stored in.
func WithBucket(name string) Option {
	return func(o *opts) error {
		if name == "" {
			return errors.BadRequest.With("empty bucket name")
		}
		o.bucket = []byte(name)
		return nil
	}
}

// OpenBolt opens or creates a store.
func OpenBolt(filepath string, o ...Option) (*Bolt, error) {
	d := new(Bolt)
	d.bucket = []byte("transactions")
	var err error
	for _, o := range o {
		err = o(&d.opts)
		if err != nil {
			return nil, errors.UnknownError.Wrap(err)
		}
	}

	d.bolt, err = bolt.Open(filepath, 0600, nil)
	if err != nil {
		return nil, errors.UnknownError.WithFormat("open %s: %w", filepath, err)
	}

	err = d.bolt.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(d.bucket)
		return err
	})
	if err != nil {
		_ = d.bolt.Close()
		return nil, errors.UnknownError.WithFormat("create bucket: %w", err)
	}
	return d, nil
}

func (d *Bolt) Transaction(_ context.Context, id string) (*txn.Transaction, error) {
	var v []byte
	err := d.bolt.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(d.bucket).Get([]byte(id))
		if b == nil {
			return notFound(id)
		}

		// Values are only valid for the life of the transaction
		v = make([]byte, len(b))
		copy(v, b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return decode(v)
}

func (d *Bolt) Put(ctx context.Context, t *txn.Transaction) (string, error) {
	v, err := prepare(t)
	if err != nil {
		return "", err
	}

	err = d.bolt.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(d.bucket).Put([]byte(t.ID), v)
	})
	if err != nil {
		return "", errors.UnknownError.WithFormat("store transaction %s: %w", t.ID, err)
	}

	slog.DebugContext(ctx, "Stored transaction", "module", "records", "id", t.ID, "address", t.Address, "status", t.Status)
	return t.ID, nil
}

func (d *Bolt) List(context.Context) ([]*txn.Transaction, error) {
	var s []*txn.Transaction
	err := d.bolt.View(func(tx *bolt.Tx) error {
		return tx.Bucket(d.bucket).ForEach(func(k, v []byte) error {
			t, err := decode(v)
			if err != nil {
				slog.Error("Cannot decode transaction record", "module", "records", "key", logging.AsHex(k), "error", err)
				return errors.UnknownError.Wrap(err)
			}
			s = append(s, t)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (d *Bolt) Delete(_ context.Context, id string) error {
	return d.bolt.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(d.bucket)
		if b.Get([]byte(id)) == nil {
			return notFound(id)
		}
		return b.Delete([]byte(id))
	})
}

func (d *Bolt) Close() error {
	return d.bolt.Close()
}
