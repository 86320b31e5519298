// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package records

import (
	"gitlab.com/accumulatenetwork/authroute/internal/config"
	"gitlab.com/accumulatenetwork/authroute/pkg/errors"
)

// Open opens the configured store.
func Open(cfg *config.Records) (Store, error) {
	if cfg == nil {
		return NewMemory(), nil
	}
	switch cfg.Type {
	case "", config.RecordsTypeMemory:
		return NewMemory(), nil
	case config.RecordsTypeBolt:
		if cfg.Path == "" {
			return nil, errors.BadRequest.With("bolt records need a path")
		}
		return OpenBolt(cfg.Path)
	default:
		return nil, errors.BadRequest.WithFormat("unknown records type %q", cfg.Type)
	}
}
