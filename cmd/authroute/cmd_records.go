// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gitlab.com/accumulatenetwork/authroute/internal/config"
	"gitlab.com/accumulatenetwork/authroute/internal/records"
	. "gitlab.com/accumulatenetwork/authroute/internal/util/cmd"
	"gitlab.com/accumulatenetwork/authroute/pkg/txn"
)

var cmdRecords = &cobra.Command{
	Use:   "records",
	Short: "Manage tracked transactions",
	Run:   printUsageAndExit1,
}

var cmdRecordsPut = &cobra.Command{
	Use:   "put <file>",
	Short: "Store a transaction record from a TOML, YAML, or JSON file",
	Args:  cobra.ExactArgs(1),
	Run:   putRecord,
}

var cmdRecordsGet = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a transaction record",
	Args:  cobra.ExactArgs(1),
	Run:   getRecord,
}

var cmdRecordsList = &cobra.Command{
	Use:   "list",
	Short: "List transaction records",
	Args:  cobra.NoArgs,
	Run:   listRecords,
}

var cmdRecordsDelete = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a transaction record",
	Args:  cobra.ExactArgs(1),
	Run:   deleteRecord,
}

func init() {
	cmdMain.AddCommand(cmdRecords)
	cmdRecords.AddCommand(cmdRecordsPut, cmdRecordsGet, cmdRecordsList, cmdRecordsDelete)
}

func withRecords(fn func(context.Context, records.Store)) {
	s := openRecords()
	defer func() { _ = s.Close() }()
	fn(context.Background(), s)
}

func putRecord(_ *cobra.Command, args []string) {
	b, err := os.ReadFile(args[0])
	Check(err)
	t := new(txn.Transaction)
	Checkf(config.DecodeFile(args[0], b, t), "decode %s", args[0])
	if t.Network == "" {
		t.Network = network().ID
	}

	if cfg.Records.Type == config.RecordsTypeMemory {
		Warnf("records are kept in memory and will be lost on exit; set records.type to bolt")
	}

	withRecords(func(ctx context.Context, s records.Store) {
		id, err := s.Put(ctx, t)
		Check(err)
		fmt.Println(id)
	})
}

func getRecord(_ *cobra.Command, args []string) {
	withRecords(func(ctx context.Context, s records.Store) {
		t, err := s.Transaction(ctx, args[0])
		Check(err)
		printJSON(t)
	})
}

func listRecords(*cobra.Command, []string) {
	withRecords(func(ctx context.Context, s records.Store) {
		all, err := s.List(ctx)
		Check(err)
		if flagMain.JSON {
			printJSON(all)
			return
		}

		tw := tabwriter.NewWriter(os.Stdout, 2, 4, 1, ' ', 0)
		fmt.Fprintf(tw, "ID\tNetwork\tAddress\tType\tStatus\n")
		for _, t := range all {
			fmt.Fprintf(tw, "%s\t%s\t%v\t%v\t%v\n", t.ID, t.Network, t.Address, t.Type, t.Status)
		}
		_ = tw.Flush()
	})
}

func deleteRecord(_ *cobra.Command, args []string) {
	withRecords(func(ctx context.Context, s records.Store) {
		Check(s.Delete(ctx, args[0]))
	})
}
