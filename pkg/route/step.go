// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package route

import (
	"fmt"
	"slices"

	"gitlab.com/accumulatenetwork/authroute/pkg/address"
)

// StepType is the type of a route step.
type StepType int

const (
	StepTypeOrigin StepType = iota + 1
	StepTypeMultisig
	StepTypeProxy
	StepTypeProposer
)

func (t StepType) String() string {
	switch t {
	case StepTypeOrigin:
		return "origin"
	case StepTypeMultisig:
		return "multisig"
	case StepTypeProxy:
		return "proxy"
	case StepTypeProposer:
		return "proposer"
	default:
		return fmt.Sprintf("StepType(%d)", int(t))
	}
}

func (t StepType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// Step is one step of a route. The set of steps is closed: Origin,
// MultisigHop, ProxyHop, and ProposerHop.
type Step interface {
	Type() StepType

	// Address is the account the step acts as.
	Address() address.Address

	step()
}

// Origin is the account that signs.
type Origin struct {
	Account address.Address `json:"account"`
}

// MultisigHop is an approval of a multisig by one of its members. The
// member is the previous step of the route.
type MultisigHop struct {
	Multisig         address.Address   `json:"multisig"`
	Threshold        uint16            `json:"threshold"`
	OtherSignatories []address.Address `json:"otherSignatories"`
}

// ProxyHop is a dispatch by Delegate on behalf of Real.
type ProxyHop struct {
	Real      address.Address `json:"real"`
	Delegate  address.Address `json:"delegate"`
	ProxyType string          `json:"proxyType"`
	Delay     uint32          `json:"delay,omitempty"`
	Network   string          `json:"network,omitempty"`
	IsRemote  bool            `json:"isRemote,omitempty"`
}

// ProposerHop is an off-chain proposal by Proposer for Target. It is never
// wrapped.
type ProposerHop struct {
	Proposer address.Address `json:"proposer"`
	Target   address.Address `json:"target"`
}

func (*Origin) Type() StepType      { return StepTypeOrigin }
func (*MultisigHop) Type() StepType { return StepTypeMultisig }
func (*ProxyHop) Type() StepType    { return StepTypeProxy }
func (*ProposerHop) Type() StepType { return StepTypeProposer }

func (s *Origin) Address() address.Address      { return s.Account }
func (s *MultisigHop) Address() address.Address { return s.Multisig }
func (s *ProxyHop) Address() address.Address    { return s.Real }
func (s *ProposerHop) Address() address.Address { return s.Target }

func (*Origin) step()      {}
func (*MultisigHop) step() {}
func (*ProxyHop) step()    {}
func (*ProposerHop) step() {}

func (s *Origin) String() string { return s.Account.String() }

func (s *MultisigHop) String() string {
	return fmt.Sprintf("multisig(%d of %d) %v", s.Threshold, len(s.OtherSignatories)+1, s.Multisig)
}

func (s *ProxyHop) String() string {
	str := fmt.Sprintf("proxy(%s", s.ProxyType)
	if s.Delay > 0 {
		str += fmt.Sprintf(", delay %d", s.Delay)
	}
	if s.IsRemote {
		str += ", remote " + s.Network
	}
	return str + fmt.Sprintf(") %v", s.Real)
}

func (s *ProposerHop) String() string {
	return fmt.Sprintf("proposer %v for %v", s.Proposer, s.Target)
}

// EqualStep returns true if the steps are equal.
func EqualStep(a, b Step) bool {
	switch a := a.(type) {
	case *Origin:
		b, ok := b.(*Origin)
		return ok && *a == *b
	case *MultisigHop:
		b, ok := b.(*MultisigHop)
		return ok &&
			a.Multisig == b.Multisig &&
			a.Threshold == b.Threshold &&
			slices.Equal(address.Sorted(a.OtherSignatories), address.Sorted(b.OtherSignatories))
	case *ProxyHop:
		b, ok := b.(*ProxyHop)
		return ok && *a == *b
	case *ProposerHop:
		b, ok := b.(*ProposerHop)
		return ok && *a == *b
	default:
		return false
	}
}
