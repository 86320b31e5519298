// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package route

import (
	"encoding/json"
	"strings"

	"gitlab.com/accumulatenetwork/authroute/pkg/address"
	"gitlab.com/accumulatenetwork/authroute/pkg/errors"
)

// Route is an ordered list of steps from the signer to the target. The first
// step is the Origin (or a lone ProposerHop) and the last step acts as the
// target.
type Route []Step

// Signer returns the account that signs the outermost call.
func (r Route) Signer() address.Address {
	if len(r) == 0 {
		return address.Zero
	}
	if p, ok := r[0].(*ProposerHop); ok {
		return p.Proposer
	}
	return r[0].Address()
}

// Target returns the account the route acts as.
func (r Route) Target() address.Address {
	if len(r) == 0 {
		return address.Zero
	}
	return r[len(r)-1].Address()
}

// IsProposal returns true if the route is an off-chain proposal.
func (r Route) IsProposal() bool {
	if len(r) != 1 {
		return false
	}
	_, ok := r[0].(*ProposerHop)
	return ok
}

// Equal returns true if the routes have the same steps.
func (r Route) Equal(s Route) bool {
	if len(r) != len(s) {
		return false
	}
	for i := range r {
		if !EqualStep(r[i], s[i]) {
			return false
		}
	}
	return true
}

// Validate checks that every step is dispatched by the account the previous
// step acts as.
func (r Route) Validate() error {
	if len(r) == 0 {
		return errors.BadRequest.With("empty route")
	}

	switch r[0].(type) {
	case *Origin:
	case *ProposerHop:
		if len(r) > 1 {
			return errors.BadRequest.With("a proposal cannot be wrapped")
		}
		return nil
	default:
		return errors.BadRequest.WithFormat("route starts with a %v step", r[0].Type())
	}

	for i := 1; i < len(r); i++ {
		sender := r[i-1].Address()
		switch s := r[i].(type) {
		case *MultisigHop:
			if s.Threshold < 1 {
				return errors.BadRequest.WithFormat("step %d: multisig %v has a zero threshold", i, s.Multisig)
			}
			if address.Contains(s.OtherSignatories, sender) {
				return errors.BadRequest.WithFormat("step %d: %v is listed among its own co-signatories", i, sender)
			}
			if int(s.Threshold) > len(address.Sorted(s.OtherSignatories))+1 {
				return errors.BadRequest.WithFormat("step %d: threshold %d exceeds the number of signatories", i, s.Threshold)
			}

		case *ProxyHop:
			if s.Delegate != sender {
				return errors.BadRequest.WithFormat("step %d: delegate %v is not the dispatcher %v", i, s.Delegate, sender)
			}
			if s.ProxyType == "" {
				return errors.BadRequest.WithFormat("step %d: missing proxy type", i)
			}

		default:
			return errors.BadRequest.WithFormat("step %d: unexpected %v step", i, r[i].Type())
		}
	}
	return nil
}

func (r Route) String() string {
	parts := make([]string, len(r))
	for i, s := range r {
		parts[i] = s.(interface{ String() string }).String()
	}
	return strings.Join(parts, " -> ")
}

type stepJSON struct {
	Type string `json:"type"`
	*Origin
	*MultisigHop
	*ProxyHop
	*ProposerHop
}

func (r Route) MarshalJSON() ([]byte, error) {
	v := make([]*stepJSON, len(r))
	for i, s := range r {
		u := &stepJSON{Type: s.Type().String()}
		switch s := s.(type) {
		case *Origin:
			u.Origin = s
		case *MultisigHop:
			u.MultisigHop = s
		case *ProxyHop:
			u.ProxyHop = s
		case *ProposerHop:
			u.ProposerHop = s
		}
		v[i] = u
	}
	return json.Marshal(v)
}

func (r *Route) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	err := json.Unmarshal(b, &raw)
	if err != nil {
		return errors.EncodingError.Wrap(err)
	}

	s := make(Route, len(raw))
	for i, b := range raw {
		var h struct{ Type string }
		err = json.Unmarshal(b, &h)
		if err != nil {
			return errors.EncodingError.Wrap(err)
		}

		switch h.Type {
		case StepTypeOrigin.String():
			s[i] = new(Origin)
		case StepTypeMultisig.String():
			s[i] = new(MultisigHop)
		case StepTypeProxy.String():
			s[i] = new(ProxyHop)
		case StepTypeProposer.String():
			s[i] = new(ProposerHop)
		default:
			return errors.EncodingError.WithFormat("step %d: unknown step type %q", i, h.Type)
		}

		err = json.Unmarshal(b, s[i])
		if err != nil {
			return errors.EncodingError.WithFormat("step %d: %w", i, err)
		}
	}
	*r = s
	return nil
}
