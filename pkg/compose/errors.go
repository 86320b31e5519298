// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package compose

import (
	"fmt"

	"gitlab.com/accumulatenetwork/authroute/pkg/address"
	"gitlab.com/accumulatenetwork/authroute/pkg/call"
	"gitlab.com/accumulatenetwork/authroute/pkg/errors"
)

// AlreadyExecutedError is returned when a recorded approval round no longer
// exists on chain: another signer completed (or cancelled) it between
// enumeration and composition.
type AlreadyExecutedError struct {
	Multisig address.Address
	CallHash call.Hash
	Expected call.Timepoint
}

func (e *AlreadyExecutedError) Error() string {
	return fmt.Sprintf("approval round %v of multisig %v started at %v is no longer pending", e.CallHash, e.Multisig, e.Expected)
}

func (e *AlreadyExecutedError) Unwrap() error { return errors.Conflict }

// ProxyNotFoundError is returned when the proxy relationship a route relies
// on is not registered on chain.
type ProxyNotFoundError struct {
	Real      address.Address
	Delegate  address.Address
	ProxyType string
	Delay     uint32
}

func (e *ProxyNotFoundError) Error() string {
	return fmt.Sprintf("%v is not a %s proxy of %v with delay %d", e.Delegate, e.ProxyType, e.Real, e.Delay)
}

func (e *ProxyNotFoundError) Unwrap() error { return errors.NotFound }

// UnsupportedDispatchError is returned when a route needs a dispatch form the
// network does not support.
type UnsupportedDispatchError struct {
	Network  string
	Real     address.Address
	Delegate address.Address
	Reason   string
}

func (e *UnsupportedDispatchError) Error() string {
	return fmt.Sprintf("%s: %v cannot dispatch for %v: %s", e.Network, e.Delegate, e.Real, e.Reason)
}

func (e *UnsupportedDispatchError) Unwrap() error { return errors.NotAllowed }

// TimepointMismatch means the on-chain approval round started at a different
// timepoint than recorded. The on-chain timepoint is used.
type TimepointMismatch struct {
	Multisig address.Address
	Expected call.Timepoint
	Actual   call.Timepoint
}

func (e *TimepointMismatch) Error() string {
	return fmt.Sprintf("multisig %v: expected timepoint %v, chain has %v", e.Multisig, e.Expected, e.Actual)
}

func (e *TimepointMismatch) Unwrap() error { return errors.Stale }
