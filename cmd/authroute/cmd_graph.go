// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gitlab.com/accumulatenetwork/authroute/internal/accounts"
	. "gitlab.com/accumulatenetwork/authroute/internal/util/cmd"
	"gitlab.com/accumulatenetwork/authroute/pkg/account"
	"gitlab.com/accumulatenetwork/authroute/pkg/address"
	"gitlab.com/accumulatenetwork/authroute/pkg/graph"
)

var cmdGraph = &cobra.Command{
	Use:   "graph <address>",
	Short: "Show the accounts that control an account",
	Args:  cobra.ExactArgs(1),
	Run:   showGraph,
}

func init() {
	cmdMain.AddCommand(cmdGraph)
}

func showGraph(_ *cobra.Command, args []string) {
	s, src, recs := newService(serviceOptions{offline: true})
	defer func() { _ = recs.Close() }()

	g := s.BuildGraph(loadAccount(src, s.Network().ID, args[0]))
	if flagMain.JSON {
		printJSON(g)
		return
	}

	var walk func(n *graph.Node, label string)
	walk = func(n *graph.Node, label string) {
		name := n.Name
		if name == "" {
			name = n.Address.String()
		} else {
			name = fmt.Sprintf("%s (%v)", name, n.Address)
		}
		fmt.Printf("%s%s [%v]%s\n", strings.Repeat("  ", n.Depth), name, n.Type, label)
		for _, c := range g.Children(n.Key) {
			walk(c, edgeLabel(g, n.Key, c.Key))
		}
	}
	walk(g.Root(), "")
	printDiagnostics(g.Diagnostics)
}

func edgeLabel(g *graph.Graph, source, target graph.Key) string {
	for _, e := range g.Edges {
		if e.Source != source || e.Target != target {
			continue
		}
		var parts []string
		for _, l := range e.Labels {
			parts = append(parts, l.String())
		}
		return " via " + strings.Join(parts, ", ")
	}
	return ""
}

func loadAccount(src *accounts.Snapshot, network, arg string) *account.Account {
	a, err := address.Parse(arg)
	Checkf(err, "parse address")
	acc, err := src.Account(context.Background(), network, a)
	Check(err)
	return acc
}

func printDiagnostics(diags []*account.Diagnostic) {
	for _, d := range diags {
		Warnf("%v", d)
	}
}
