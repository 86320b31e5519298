// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package pool

import "sync"

// Pool is a typed [sync.Pool] of *T. Values are reset when they are returned.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T)
}

// New returns a pool that allocates with new(T) and calls reset on every
// value put back.
func New[T any](reset func(*T)) *Pool[T] {
	p := &Pool[T]{reset: reset}
	p.pool.New = func() any { return new(T) }
	return p
}

func (p *Pool[T]) Get() *T {
	return p.pool.Get().(*T)
}

func (p *Pool[T]) Put(v *T) {
	if p.reset != nil {
		p.reset(v)
	}
	p.pool.Put(v)
}
