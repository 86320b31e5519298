// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package compose

import (
	"context"
	"log/slog"

	"gitlab.com/accumulatenetwork/authroute/pkg/address"
	"gitlab.com/accumulatenetwork/authroute/pkg/call"
	"gitlab.com/accumulatenetwork/authroute/pkg/chain"
	"gitlab.com/accumulatenetwork/authroute/pkg/errors"
	"gitlab.com/accumulatenetwork/authroute/pkg/route"
	"gitlab.com/accumulatenetwork/authroute/pkg/txn"
)

// Composer wraps a call once per hop of a route, using live chain state for
// timepoints, weights, and proxy relationships.
type Composer struct {
	Network *chain.Network
	Client  chain.Client
}

// Layer is one wrapping step.
type Layer struct {
	// Step is the index of the route step that produced the layer.
	Step int `json:"step"`

	Type route.StepType `json:"type"`

	// Sender is the account that dispatches the wrapper.
	Sender address.Address `json:"sender"`

	// Inner is the call being wrapped.
	Inner     []byte    `json:"inner"`
	InnerHash call.Hash `json:"innerHash"`

	// FirstApproval is set if the layer opens a new approval round.
	FirstApproval bool `json:"firstApproval,omitempty"`

	Timepoint *call.Timepoint `json:"timepoint,omitempty"`
	Weight    *call.Weight    `json:"weight,omitempty"`
}

// Announcement is a delayed proxy dispatch that must be executed once the
// delay has passed.
type Announcement struct {
	Real     address.Address `json:"real"`
	Delegate address.Address `json:"delegate"`
	CallHash call.Hash       `json:"callHash"`
}

// Envelope is a composed call ready to be signed.
type Envelope struct {
	Call     []byte          `json:"call"`
	Hash     call.Hash       `json:"hash"`
	Signer   address.Address `json:"signer"`
	Route    route.Route     `json:"route"`
	Proposal bool            `json:"proposal,omitempty"`

	// Layers are ordered from the innermost outward.
	Layers        []*Layer        `json:"layers,omitempty"`
	Announcements []*Announcement `json:"announcements,omitempty"`

	// Mismatch is the first recorded timepoint that differed from the chain.
	Mismatch *TimepointMismatch `json:"mismatch,omitempty"`
}

// Compose wraps the call for the route. If tracked is not nil, the recorded
// timepoints are checked against the chain.
func (c *Composer) Compose(ctx context.Context, base []byte, r route.Route, tracked *txn.Transaction) (*Envelope, error) {
	env, err := c.compose(ctx, base, r, tracked)
	if err != nil {
		mFailed.WithLabelValues(errors.KindOf(err).String()).Inc()
		return nil, err
	}
	mComposed.Inc()
	return env, nil
}

func (c *Composer) compose(ctx context.Context, base []byte, r route.Route, tracked *txn.Transaction) (*Envelope, error) {
	if c.Network == nil || c.Client == nil {
		return nil, errors.BadRequest.With("composer is missing a network or a client")
	}
	if len(base) == 0 {
		return nil, errors.BadRequest.With("empty call")
	}
	err := r.Validate()
	if err != nil {
		return nil, errors.UnknownError.Wrap(err)
	}

	if tracked != nil {
		if tracked.Address != r.Target() {
			return nil, errors.BadRequest.WithFormat("tracked transaction belongs to %v, not %v", tracked.Address, r.Target())
		}
		if tracked.CallHash != nil && *tracked.CallHash != call.HashOf(base) {
			return nil, errors.BadRequest.WithFormat("call hash %v does not match the tracked transaction's %v", call.HashOf(base), *tracked.CallHash)
		}
	}

	env := new(Envelope)
	env.Signer = r.Signer()
	env.Route = r

	if r.IsProposal() {
		env.Proposal = true
		env.Call = base
		env.Hash = call.HashOf(base)
		return env, nil
	}

	records := recordsFor(r, tracked)
	enc := c.Network.Encoder()
	cur := base
	for i := len(r) - 1; i > 0; i-- {
		layer := &Layer{
			Step:      i,
			Type:      r[i].Type(),
			Sender:    r[i-1].Address(),
			Inner:     cur,
			InnerHash: call.HashOf(cur),
		}

		switch hop := r[i].(type) {
		case *route.MultisigHop:
			cur, err = c.wrapMultisig(ctx, enc, env, layer, hop, records[i])
		case *route.ProxyHop:
			cur, err = c.wrapProxy(ctx, enc, env, layer, hop)
		default:
			err = errors.InternalError.WithFormat("unexpected %v step", hop.Type())
		}
		if err != nil {
			return nil, err
		}
		env.Layers = append(env.Layers, layer)
	}

	env.Call = cur
	env.Hash = call.HashOf(cur)
	return env, nil
}

func (c *Composer) wrapMultisig(ctx context.Context, enc *call.Encoder, env *Envelope, layer *Layer, hop *route.MultisigHop, rec *txn.Transaction) ([]byte, error) {
	others := address.Sorted(hop.OtherSignatories)
	if hop.Threshold == 1 {
		b, err := enc.AsMultiThreshold1(others, layer.Inner)
		return b, errors.UnknownError.Wrap(err)
	}

	var expected *call.Timepoint
	if rec != nil && rec.Type == txn.TypeMultisig {
		expected = rec.Timepoint
	}

	pending, err := c.Client.MultisigPending(ctx, hop.Multisig, layer.InnerHash)
	if err != nil {
		return nil, errors.UnknownError.WithFormat("load pending approvals of %v: %w", hop.Multisig, err)
	}

	switch {
	case pending == nil && expected != nil:
		return nil, &AlreadyExecutedError{Multisig: hop.Multisig, CallHash: layer.InnerHash, Expected: *expected}

	case pending == nil:
		// Either no one has approved yet, or the round completed and the
		// caller has no record to tell the difference
		layer.FirstApproval = true
		mFirstApproval.Inc()
		slog.DebugContext(ctx, "Opening a new approval round", "module", "compose",
			"multisig", hop.Multisig, "hash", layer.InnerHash, "sender", layer.Sender)

	default:
		tp := pending.When
		layer.Timepoint = &tp
		if expected != nil && *expected != tp && env.Mismatch == nil {
			env.Mismatch = &TimepointMismatch{Multisig: hop.Multisig, Expected: *expected, Actual: tp}
			mMismatch.Inc()
			slog.WarnContext(ctx, "Recorded timepoint differs from the chain", "module", "compose",
				"multisig", hop.Multisig, "expected", *expected, "actual", tp)
		}
		if pending.Approved(layer.Sender) {
			slog.DebugContext(ctx, "Sender has already approved", "module", "compose",
				"multisig", hop.Multisig, "sender", layer.Sender)
		}
	}

	weight, err := c.Client.EstimateWeight(ctx, layer.Inner)
	if err != nil {
		return nil, errors.UnknownError.WithFormat("estimate weight: %w", err)
	}
	layer.Weight = &weight

	b, err := enc.AsMulti(hop.Threshold, others, layer.Timepoint, layer.Inner, weight)
	return b, errors.UnknownError.Wrap(err)
}

// wrapProxy dispatches through a local proxy relationship when the chain has
// one. Otherwise it falls back to a remote proxy proof, if the network accepts
// them.
func (c *Composer) wrapProxy(ctx context.Context, enc *call.Encoder, env *Envelope, layer *Layer, hop *route.ProxyHop) ([]byte, error) {
	defs, err := c.Client.ProxyRelationships(ctx, hop.Real)
	if err != nil {
		return nil, errors.UnknownError.WithFormat("load proxies of %v: %w", hop.Real, err)
	}

	var found bool
	for _, d := range defs {
		if d.Delegate == hop.Delegate && d.ProxyType == hop.ProxyType && d.Delay == hop.Delay {
			found = true
			break
		}
	}

	switch {
	case !found && c.Network.RemoteProxy && hop.Delay == 0:
		slog.DebugContext(ctx, "No local proxy, using a remote proof", "module", "compose",
			"real", hop.Real, "delegate", hop.Delegate, "proxy-network", hop.Network)
		b, err := enc.RemoteProxy(hop.Real, hop.ProxyType, layer.Inner)
		return b, errors.UnknownError.Wrap(err)

	case !found:
		return nil, &ProxyNotFoundError{Real: hop.Real, Delegate: hop.Delegate, ProxyType: hop.ProxyType, Delay: hop.Delay}

	case hop.Delay == 0:
		b, err := enc.Proxy(hop.Real, hop.ProxyType, layer.Inner)
		return b, errors.UnknownError.Wrap(err)
	}

	if !c.Network.Announce {
		return nil, &UnsupportedDispatchError{Network: c.Network.ID, Real: hop.Real, Delegate: hop.Delegate, Reason: "delayed proxies are not supported"}
	}

	env.Announcements = append(env.Announcements, &Announcement{Real: hop.Real, Delegate: hop.Delegate, CallHash: layer.InnerHash})
	mAnnounced.Inc()
	b, err := enc.Announce(hop.Real, layer.InnerHash)
	return b, errors.UnknownError.Wrap(err)
}

// recordsFor returns the tracked record of each step, by step index. The
// tracked root is the record of the route's target.
func recordsFor(r route.Route, tracked *txn.Transaction) []*txn.Transaction {
	records := make([]*txn.Transaction, len(r))
	records[len(r)-1] = tracked
	var path []address.Address
	for i := len(r) - 2; i >= 0; i-- {
		path = append(path, r[i].Address())
		records[i] = tracked.Walk(path...)
	}
	return records
}
