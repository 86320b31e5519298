// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package graph

import (
	"fmt"
	"slices"

	"gitlab.com/accumulatenetwork/authroute/pkg/account"
)

// Builder builds graphs.
type Builder struct {
	// MaxDepth bounds the nesting. Defaults to DefaultMaxDepth.
	MaxDepth int

	// Identities supplies names for accounts that have none.
	Identities *account.Identities
}

type edgeKey struct{ source, target Key }

type build struct {
	*Builder
	maxDepth int
	graph    *Graph
	nodes    map[Key]*Node
	edges    map[edgeKey]*Edge
}

// Build builds the graph of the target and everything that controls it. The
// output is deterministic for a given input.
func (b *Builder) Build(target *account.Account) *Graph {
	c := &build{
		Builder:  b,
		maxDepth: b.MaxDepth,
		graph:    new(Graph),
		nodes:    map[Key]*Node{},
		edges:    map[edgeKey]*Edge{},
	}
	if c.maxDepth <= 0 {
		c.maxDepth = DefaultMaxDepth
	}
	if target == nil {
		return c.graph
	}

	root := c.add(target, RootKey(target.Address), HopRoot, 0)
	root.IsRoot = true
	c.expand(root)

	for _, n := range c.graph.Nodes {
		n.IsLeaf = true
	}
	for _, e := range c.graph.Edges {
		c.nodes[e.Source].IsLeaf = false
	}
	return c.graph
}

func (c *build) add(acc *account.Account, key Key, via HopKind, depth int) *Node {
	n := &Node{
		Key:     key,
		Address: acc.Address,
		Type:    acc.Type,
		Name:    acc.Name,
		Depth:   depth,
		Via:     via,
		Account: acc,
	}
	if n.Name == "" {
		n.Name = c.Identities.Name(acc.Address)
	}
	c.nodes[key] = n
	c.graph.Nodes = append(c.graph.Nodes, n)
	return n
}

func (c *build) expand(parent *Node) {
	acc := parent.Account
	for _, m := range acc.Members {
		if m.Account == nil {
			continue
		}
		c.link(parent, m.Account, Label{Kind: HopMember})
	}
	for _, d := range acc.Delegatees {
		if d.Delegate == nil {
			continue
		}
		c.link(parent, d.Delegate, Label{
			Kind:      HopDelegate,
			ProxyType: d.ProxyType,
			Delay:     d.Delay,
			Remote:    d.IsRemote,
		})
	}
}

func (c *build) link(parent *Node, child *account.Account, label Label) {
	depth := parent.Depth + 1
	if depth > c.maxDepth {
		c.graph.Diagnostics = append(c.graph.Diagnostics, &account.Diagnostic{
			Address: child.Address,
			Depth:   depth,
			Message: fmt.Sprintf("exceeded the maximum depth of %d", c.maxDepth),
		})
		return
	}

	key := ChildKey(parent.Key, label.Kind, child.Address)
	n, seen := c.nodes[key]
	if !seen {
		n = c.add(child, key, label.Kind, depth)
	}

	ek := edgeKey{parent.Key, key}
	e, ok := c.edges[ek]
	if !ok {
		e = &Edge{Source: parent.Key, Target: key}
		c.edges[ek] = e
		c.graph.Edges = append(c.graph.Edges, e)
	}
	if !slices.Contains(e.Labels, label) {
		e.Labels = append(e.Labels, label)
	}

	if !seen {
		c.expand(n)
	}
}
