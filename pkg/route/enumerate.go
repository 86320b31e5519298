// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package route

import (
	"fmt"
	"slices"

	"gitlab.com/accumulatenetwork/authroute/pkg/account"
	"gitlab.com/accumulatenetwork/authroute/pkg/address"
	"gitlab.com/accumulatenetwork/authroute/pkg/txn"
)

// DefaultMaxDepth is the default bound on nesting.
const DefaultMaxDepth = 8

// Mode is the enumeration mode.
type Mode int

const (
	// ModeDisplay lists every route to the target.
	ModeDisplay Mode = iota

	// ModeApproval lists the routes that can still contribute to a recorded
	// transaction.
	ModeApproval
)

func (m Mode) String() string {
	if m == ModeApproval {
		return "approval"
	}
	return "display"
}

func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// Paths is the result of an enumeration.
type Paths struct {
	Mode        Mode                  `json:"mode"`
	Routes      []Route               `json:"routes"`
	Diagnostics []*account.Diagnostic `json:"diagnostics,omitempty"`
}

// Contains returns true if the paths include the route.
func (p *Paths) Contains(r Route) bool {
	return slices.ContainsFunc(p.Routes, r.Equal)
}

// Enumerator lists the routes by which an account can be acted for.
type Enumerator struct {
	// MaxDepth bounds the nesting. Defaults to DefaultMaxDepth.
	MaxDepth int

	// Identities says which addresses the caller can sign for.
	Identities *account.Identities

	// LocalOnly restricts routes to those signed by local identities.
	LocalOnly bool
}

// Enumerate lists the routes to the target in depth-first order. If tracked
// is nil every route is listed. Otherwise only routes that can still
// contribute to the tracked transaction are listed. Enumerate never fails;
// problems are reported as diagnostics.
func (e *Enumerator) Enumerate(target *account.Account, tracked *txn.Transaction) *Paths {
	w := &walker{Enumerator: e, paths: new(Paths)}
	w.maxDepth = e.MaxDepth
	if w.maxDepth <= 0 {
		w.maxDepth = DefaultMaxDepth
	}

	if target == nil {
		return w.paths
	}

	eligible := true
	if tracked != nil {
		w.paths.Mode = ModeApproval
		switch {
		case tracked.Address != target.Address:
			w.diagnose(target.Address, 0, fmt.Sprintf("tracked transaction belongs to %v", tracked.Address))
			eligible = false
		case tracked.Status.Terminal():
			eligible = false
		}
	}

	w.visit(target, tracked, eligible, nil, 0)

	if tracked == nil {
		for _, p := range target.Proposers {
			if !w.canSign(p.Address) {
				continue
			}
			w.paths.Routes = append(w.paths.Routes, Route{&ProposerHop{Proposer: p.Address, Target: target.Address}})
		}
	}
	return w.paths
}

type walker struct {
	*Enumerator
	maxDepth int
	paths    *Paths
}

func (w *walker) approval() bool { return w.paths.Mode == ModeApproval }

func (w *walker) canSign(a address.Address) bool {
	return !w.LocalOnly || w.Identities.IsLocal(a)
}

func (w *walker) diagnose(a address.Address, depth int, msg string) {
	w.paths.Diagnostics = append(w.paths.Diagnostics, &account.Diagnostic{Address: a, Depth: depth, Message: msg})
}

// visit walks the controllers of acc. hops holds the steps from the target
// down to acc, target first.
func (w *walker) visit(acc *account.Account, rec *txn.Transaction, eligible bool, hops []Step, depth int) {
	if acc == nil {
		return
	}
	if depth > w.maxDepth {
		w.diagnose(acc.Address, depth, fmt.Sprintf("exceeded the maximum depth of %d", w.maxDepth))
		return
	}

	// Eligibility can only be lost further down
	if w.approval() && !eligible {
		return
	}

	// Below the root, a record only prunes through eligibility. The target
	// itself signs directly only for a direct action.
	direct := depth > 0 || rec == nil || rec.Type == txn.TypeDirect
	if acc.Signable() && direct && w.canSign(acc.Address) {
		w.emit(&Origin{Account: acc.Address}, hops)
	}

	if acc.Type == account.TypeMultisig && (rec == nil || rec.Type == txn.TypeMultisig) {
		members := account.MemberAddresses(acc)
		for _, m := range acc.Members {
			if m.Account == nil {
				continue
			}
			child := rec.Child(m.Account.Address)
			ok := eligible
			if child != nil {
				ok = ok && child.Status == txn.StatusPending
			}
			hop := &MultisigHop{
				Multisig:         acc.Address,
				Threshold:        acc.Threshold,
				OtherSignatories: address.Sorted(address.Without(members, m.Account.Address)),
			}
			w.visit(m.Account, child, ok, append(slices.Clip(hops), hop), depth+1)
		}
	}

	if rec == nil || rec.Type == txn.TypeProxy || rec.Type == txn.TypeAnnounce {
		for _, d := range acc.Delegatees {
			if d.Delegate == nil {
				continue
			}
			if rec != nil && rec.Delegate != nil && *rec.Delegate != d.Delegate.Address {
				continue
			}
			child := rec.Child(d.Delegate.Address)
			ok := eligible
			if child != nil {
				if d.Delay > 0 {
					// An announcement stays open until the final dispatch
					ok = ok && child.Status < txn.StatusSuccess
				} else {
					ok = ok && child.Status == txn.StatusPending
				}
			}
			hop := &ProxyHop{
				Real:      acc.Address,
				Delegate:  d.Delegate.Address,
				ProxyType: d.ProxyType,
				Delay:     d.Delay,
				Network:   d.Network,
				IsRemote:  d.IsRemote,
			}
			w.visit(d.Delegate, child, ok, append(slices.Clip(hops), hop), depth+1)
		}
	}
}

func (w *walker) emit(origin *Origin, hops []Step) {
	r := make(Route, 0, len(hops)+1)
	r = append(r, origin)
	for i := len(hops) - 1; i >= 0; i-- {
		r = append(r, hops[i])
	}
	w.paths.Routes = append(w.paths.Routes, r)
}
