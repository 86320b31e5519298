// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package txn describes recorded transactions. A record is a tree: the root
// is the action taken by the target account, and each child is the action
// taken one hop further from the target, keyed by the address that took it.
package txn

import (
	"context"
	"strings"

	"gitlab.com/accumulatenetwork/authroute/pkg/address"
	"gitlab.com/accumulatenetwork/authroute/pkg/call"
	"gitlab.com/accumulatenetwork/authroute/pkg/errors"
)

// Status is the progress of a recorded action.
type Status int

const (
	StatusInitialized Status = iota
	StatusPending
	StatusSuccess
	StatusFailed
	StatusMemberChanged
	StatusCancelled
	StatusAnnounceRemoved
	StatusAnnounceRejected
)

var statusNames = []string{
	StatusInitialized:      "initialized",
	StatusPending:          "pending",
	StatusSuccess:          "success",
	StatusFailed:           "failed",
	StatusMemberChanged:    "member-changed",
	StatusCancelled:        "cancelled",
	StatusAnnounceRemoved:  "announce-removed",
	StatusAnnounceRejected: "announce-rejected",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

// Terminal returns true once the action can no longer progress.
func (s Status) Terminal() bool { return s >= StatusSuccess }

func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Status) UnmarshalText(b []byte) error {
	for i, n := range statusNames {
		if strings.EqualFold(n, string(b)) {
			*s = Status(i)
			return nil
		}
	}
	return errors.BadRequest.WithFormat("unknown transaction status %q", b)
}

// Type is the kind of action a record describes.
type Type int

const (
	// TypeDirect is a call signed directly.
	TypeDirect Type = iota

	// TypeMultisig is an approval round of a multisig.
	TypeMultisig

	// TypeProxy is an immediate proxy dispatch.
	TypeProxy

	// TypeAnnounce is a delayed proxy dispatch that was announced.
	TypeAnnounce

	// TypePropose is an off-chain proposal.
	TypePropose
)

var typeNames = []string{
	TypeDirect:   "direct",
	TypeMultisig: "multisig",
	TypeProxy:    "proxy",
	TypeAnnounce: "announce",
	TypePropose:  "propose",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

func (t Type) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *Type) UnmarshalText(b []byte) error {
	for i, n := range typeNames {
		if strings.EqualFold(n, string(b)) {
			*t = Type(i)
			return nil
		}
	}
	return errors.BadRequest.WithFormat("unknown transaction type %q", b)
}

// Transaction is a recorded action and the actions taken beneath it.
type Transaction struct {
	ID       string          `json:"id,omitempty"`
	Network  string          `json:"network,omitempty"`
	Address  address.Address `json:"address"`
	Type     Type            `json:"type"`
	Status   Status          `json:"status"`
	CallHash *call.Hash      `json:"callHash,omitempty"`

	// Delegate is the proxy that acted, for proxy and announce records.
	Delegate *address.Address `json:"delegate,omitempty"`

	// Timepoint is the recorded start of a multisig approval round.
	Timepoint *call.Timepoint `json:"timepoint,omitempty"`

	Children []*Transaction `json:"children,omitempty"`
}

// Child returns the child record for the given address, or nil.
func (t *Transaction) Child(addr address.Address) *Transaction {
	if t == nil {
		return nil
	}
	for _, c := range t.Children {
		if c.Address == addr {
			return c
		}
	}
	return nil
}

// Walk follows the path of addresses down from the record. It returns nil
// as soon as a step has no record.
func (t *Transaction) Walk(path ...address.Address) *Transaction {
	for _, a := range path {
		t = t.Child(a)
		if t == nil {
			return nil
		}
	}
	return t
}

// Records is a source of recorded transactions.
type Records interface {
	Transaction(ctx context.Context, id string) (*Transaction, error)
}
