// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/big"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	. "gitlab.com/accumulatenetwork/authroute/internal/util/cmd"
	"gitlab.com/accumulatenetwork/authroute/pkg/address"
	"gitlab.com/accumulatenetwork/authroute/pkg/authority"
	"gitlab.com/accumulatenetwork/authroute/pkg/call"
	"gitlab.com/accumulatenetwork/authroute/pkg/compose"
	"gitlab.com/accumulatenetwork/authroute/pkg/deposit"
	"golang.org/x/exp/maps"
)

var cmdCompose = &cobra.Command{
	Use:   "compose <address> <call-hex>",
	Short: "Wrap a call for submission along a route",
	Args:  cobra.ExactArgs(2),
	Run:   composeCall,
}

var cmdAssess = &cobra.Command{
	Use:   "assess <address> <call-hex>",
	Short: "Show the deposits a composed call will reserve and release",
	Args:  cobra.ExactArgs(2),
	Run:   assessCall,
}

var flagCompose struct {
	Route     int
	Txn       string
	LocalOnly bool
}

var flagAssess struct {
	Free string
}

func init() {
	cmdMain.AddCommand(cmdCompose, cmdAssess)

	for _, cmd := range []*cobra.Command{cmdCompose, cmdAssess} {
		cmd.Flags().IntVar(&flagCompose.Route, "route", 0, "Index of the route, as listed by paths")
		cmd.Flags().StringVar(&flagCompose.Txn, "txn", "", "Tracked transaction to approve")
		cmd.Flags().BoolVar(&flagCompose.LocalOnly, "local-only", false, "Only consider routes that start from a local signer")
	}
	cmdAssess.Flags().StringVar(&flagAssess.Free, "free", "", "Free balance of each reserving account, warns on a shortfall")
}

func composeCall(_ *cobra.Command, args []string) {
	env, _ := composeFromArgs(args)
	if flagMain.JSON {
		printJSON(env)
		return
	}

	fmt.Printf("Route:  %v\n", env.Route)
	fmt.Printf("Signer: %v\n", env.Signer)
	fmt.Printf("Hash:   %v\n", env.Hash)
	fmt.Printf("Call:   0x%s\n", hex.EncodeToString(env.Call))

	if len(env.Layers) > 0 {
		fmt.Println()
		tw := tabwriter.NewWriter(os.Stdout, 2, 4, 1, ' ', 0)
		fmt.Fprintf(tw, "Step\tType\tSender\tInner\tNotes\n")
		for _, l := range env.Layers {
			fmt.Fprintf(tw, "%d\t%v\t%v\t%v\t%s\n", l.Step, l.Type, l.Sender, l.InnerHash, layerNotes(l))
		}
		_ = tw.Flush()
	}

	for _, a := range env.Announcements {
		fmt.Printf("Announce %v as a delegate of %v, then execute after the delay\n", a.Delegate, a.Real)
	}
}

func layerNotes(l *compose.Layer) string {
	switch {
	case l.FirstApproval:
		return "first approval"
	case l.Timepoint != nil:
		return "timepoint " + l.Timepoint.String()
	}
	return ""
}

func assessCall(_ *cobra.Command, args []string) {
	var free *big.Int
	if flagAssess.Free != "" {
		var ok bool
		free, ok = new(big.Int).SetString(flagAssess.Free, 10)
		if !ok || free.Sign() < 0 {
			Fatalf("invalid free balance %q", flagAssess.Free)
		}
	}

	env, s := composeFromArgs(args)
	ledger, err := s.AssessDeposits(context.Background(), env)
	Check(err)
	if free != nil {
		for _, a := range shortfalls(ledger, free) {
			Warnf("%v needs %s but has %s free", a, humanize.BigComma(required(ledger, a)), humanize.BigComma(free))
		}
	}
	if flagMain.JSON {
		printJSON(ledger)
		return
	}

	printLedger(ledger)
}

// shortfalls returns the reserving accounts that cannot cover their deposit
// with the given free balance.
func shortfalls(l *deposit.Ledger, free *big.Int) []address.Address {
	var short []address.Address
	for _, a := range l.Reserving() {
		if !l.Sufficient(a, free) {
			short = append(short, a)
		}
	}
	return short
}

func required(l *deposit.Ledger, a address.Address) *big.Int {
	v := new(big.Int)
	if r, ok := l.Reserve[a]; ok {
		v.Add(v, r)
	}
	if e, ok := l.Existential[a]; ok {
		v.Add(v, e)
	}
	return v
}

func printLedger(l *deposit.Ledger) {
	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 1, ' ', 0)
	fmt.Fprintf(tw, "Account\tReserve\tExistential\tDelay\n")
	for _, a := range l.Reserving() {
		fmt.Fprintf(tw, "%v\t%s\t%s\t%d\n", a, humanize.BigComma(l.Reserve[a]), humanize.BigComma(l.Existential[a]), l.Delay[a])
	}
	_ = tw.Flush()

	released := maps.Keys(l.Unreserve)
	address.Sort(released)
	for _, a := range released {
		fmt.Printf("Releases %s to %v\n", humanize.BigComma(l.Unreserve[a]), a)
	}
}

func composeFromArgs(args []string) (*compose.Envelope, *authority.Service) {
	s, src, recs := newService(serviceOptions{localOnly: flagCompose.LocalOnly})
	defer func() { _ = recs.Close() }()

	base, err := call.DecodeHex(args[1])
	Checkf(err, "decode call")

	target := loadAccount(src, s.Network().ID, args[0])
	paths := s.EnumeratePaths(target, loadTracked(recs, flagCompose.Txn))
	if flagCompose.Route < 0 || flagCompose.Route >= len(paths.Routes) {
		Fatalf("route %d does not exist; %d routes are available", flagCompose.Route, len(paths.Routes))
	}

	env, err := s.RebuildAndCompose(context.Background(), base, paths.Routes[flagCompose.Route], flagCompose.Txn)
	Check(err)
	if env.Mismatch != nil {
		Warnf("%v", env.Mismatch)
	}
	return env, s
}
