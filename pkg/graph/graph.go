// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package graph

import (
	"encoding/hex"
	"fmt"

	"gitlab.com/accumulatenetwork/authroute/pkg/account"
	"gitlab.com/accumulatenetwork/authroute/pkg/address"
	"golang.org/x/crypto/blake2b"
)

// DefaultMaxDepth is the default bound on nesting.
const DefaultMaxDepth = 8

// HopKind is how a node is reached from its parent.
type HopKind string

const (
	HopRoot     HopKind = "root"
	HopMember   HopKind = "member"
	HopDelegate HopKind = "delegate"
)

// Key identifies a node by the path that reaches it.
type Key [32]byte

func (k Key) String() string { return hex.EncodeToString(k[:]) }

func (k Key) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// RootKey returns the key of the root node for the address.
func RootKey(a address.Address) Key {
	return blake2b.Sum256(a[:])
}

// ChildKey returns the key of the node reached from parent by the hop.
func ChildKey(parent Key, kind HopKind, a address.Address) Key {
	b := make([]byte, 0, len(parent)+len(kind)+len(a))
	b = append(b, parent[:]...)
	b = append(b, kind...)
	b = append(b, a[:]...)
	return blake2b.Sum256(b)
}

// Node is an occurrence of an account in the graph. The same account reached
// by different paths is a different node.
type Node struct {
	Key     Key             `json:"key"`
	Address address.Address `json:"address"`
	Type    account.Type    `json:"type"`
	Name    string          `json:"name,omitempty"`
	Depth   int             `json:"depth"`
	Via     HopKind         `json:"via"`
	IsRoot  bool            `json:"isRoot,omitempty"`
	IsLeaf  bool            `json:"isLeaf,omitempty"`

	Account *account.Account `json:"-"`
}

// Label describes one relationship carried by an edge.
type Label struct {
	Kind      HopKind `json:"kind"`
	ProxyType string  `json:"proxyType,omitempty"`
	Delay     uint32  `json:"delay,omitempty"`
	Remote    bool    `json:"remote,omitempty"`
}

func (l Label) String() string {
	if l.Kind == HopMember {
		return "member"
	}
	s := l.ProxyType
	if l.Delay > 0 {
		s += fmt.Sprintf(" (delay %d)", l.Delay)
	}
	if l.Remote {
		s += " (remote)"
	}
	return s
}

// Edge points from a controlled account to one of its controllers.
type Edge struct {
	Source Key     `json:"source"`
	Target Key     `json:"target"`
	Labels []Label `json:"labels"`
}

// Graph is a visualization graph of an account and its controllers.
type Graph struct {
	Nodes       []*Node               `json:"nodes"`
	Edges       []*Edge               `json:"edges"`
	Diagnostics []*account.Diagnostic `json:"diagnostics,omitempty"`
}

// Root returns the root node.
func (g *Graph) Root() *Node {
	if len(g.Nodes) == 0 {
		return nil
	}
	return g.Nodes[0]
}

// Node returns the node with the given key.
func (g *Graph) Node(k Key) (*Node, bool) {
	for _, n := range g.Nodes {
		if n.Key == k {
			return n, true
		}
	}
	return nil, false
}

// Children returns the nodes the given node has edges to.
func (g *Graph) Children(k Key) []*Node {
	var c []*Node
	for _, e := range g.Edges {
		if e.Source != k {
			continue
		}
		if n, ok := g.Node(e.Target); ok {
			c = append(c, n)
		}
	}
	return c
}
