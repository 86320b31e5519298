// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/accumulatenetwork/authroute/pkg/address"
	"gitlab.com/accumulatenetwork/authroute/pkg/call"
	"gitlab.com/accumulatenetwork/authroute/pkg/compose"
	"gitlab.com/accumulatenetwork/authroute/pkg/deposit"
	"gitlab.com/accumulatenetwork/authroute/pkg/graph"
)

func TestEdgeLabel(t *testing.T) {
	a, b, c := graph.Key{1}, graph.Key{2}, graph.Key{3}
	g := &graph.Graph{Edges: []*graph.Edge{{
		Source: a,
		Target: b,
		Labels: []graph.Label{
			{Kind: graph.HopDelegate, ProxyType: "Any"},
			{Kind: graph.HopDelegate, ProxyType: "Staking", Delay: 10},
		},
	}}}

	require.Equal(t, " via Any, Staking (delay 10)", edgeLabel(g, a, b))
	require.Empty(t, edgeLabel(g, a, c))
}

func TestLayerNotes(t *testing.T) {
	require.Equal(t, "first approval", layerNotes(&compose.Layer{FirstApproval: true}))
	require.Equal(t, "timepoint 100/2", layerNotes(&compose.Layer{Timepoint: &call.Timepoint{Height: 100, Index: 2}}))
	require.Empty(t, layerNotes(&compose.Layer{}))
}

func TestShortfalls(t *testing.T) {
	a, b := address.Address{1}, address.Address{2}
	l := &deposit.Ledger{
		Reserve:     map[address.Address]*big.Int{a: big.NewInt(100), b: big.NewInt(10)},
		Existential: map[address.Address]*big.Int{a: big.NewInt(5), b: big.NewInt(5)},
	}

	require.Equal(t, []address.Address{a}, shortfalls(l, big.NewInt(50)))
	require.Equal(t, big.NewInt(105), required(l, a))
	require.Empty(t, shortfalls(l, big.NewInt(105)))
	require.Equal(t, []address.Address{a, b}, shortfalls(l, big.NewInt(0)))
}
