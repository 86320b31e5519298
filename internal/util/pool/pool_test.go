// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReset(t *testing.T) {
	p := New((*bytes.Buffer).Reset)
	b := p.Get()
	b.WriteString("foo")
	p.Put(b)
	require.Zero(t, b.Len())
	require.NotNil(t, p.Get())
}
