// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package cmdutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/accumulatenetwork/authroute/pkg/errors"
)

func TestExitCode(t *testing.T) {
	require.Equal(t, ExitMalformed, ExitCode(errors.BadRequest.With("bad")))
	require.Equal(t, ExitRace, ExitCode(errors.Conflict.With("raced")))
	require.Equal(t, ExitCapability, ExitCode(errors.NotFound.With("missing")))
	require.Equal(t, ExitFailure, ExitCode(fmt.Errorf("plain")))
}
