// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gitlab.com/accumulatenetwork/authroute/internal/records"
	. "gitlab.com/accumulatenetwork/authroute/internal/util/cmd"
	"gitlab.com/accumulatenetwork/authroute/pkg/txn"
)

var cmdPaths = &cobra.Command{
	Use:   "paths <address>",
	Short: "List the routes that can sign for an account",
	Long:  "Lists every route that can sign for an account. With --txn, only routes that can still approve the tracked transaction are listed.",
	Args:  cobra.ExactArgs(1),
	Run:   listPaths,
}

var flagPaths struct {
	Txn       string
	LocalOnly bool
}

func init() {
	cmdMain.AddCommand(cmdPaths)

	cmdPaths.Flags().StringVar(&flagPaths.Txn, "txn", "", "Only list routes that can approve this tracked transaction")
	cmdPaths.Flags().BoolVar(&flagPaths.LocalOnly, "local-only", false, "Only list routes that start from a local signer")
}

func listPaths(_ *cobra.Command, args []string) {
	s, src, recs := newService(serviceOptions{offline: true, localOnly: flagPaths.LocalOnly})
	defer func() { _ = recs.Close() }()

	target := loadAccount(src, s.Network().ID, args[0])
	paths := s.EnumeratePaths(target, loadTracked(recs, flagPaths.Txn))
	if flagMain.JSON {
		printJSON(paths)
		return
	}

	if len(paths.Routes) == 0 {
		fmt.Printf("No routes (%v)\n", paths.Mode)
	}
	for i, r := range paths.Routes {
		fmt.Printf("%d: %v\n", i, r)
	}
	printDiagnostics(paths.Diagnostics)
}

func loadTracked(recs records.Store, id string) *txn.Transaction {
	if id == "" {
		return nil
	}
	t, err := recs.Transaction(context.Background(), id)
	Checkf(err, "load transaction %s", id)
	return t
}
