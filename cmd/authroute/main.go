// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"gitlab.com/accumulatenetwork/authroute/internal/accounts"
	"gitlab.com/accumulatenetwork/authroute/internal/config"
	"gitlab.com/accumulatenetwork/authroute/internal/logging"
	"gitlab.com/accumulatenetwork/authroute/internal/records"
	. "gitlab.com/accumulatenetwork/authroute/internal/util/cmd"
	"gitlab.com/accumulatenetwork/authroute/pkg/account"
	"gitlab.com/accumulatenetwork/authroute/pkg/authority"
	"gitlab.com/accumulatenetwork/authroute/pkg/chain"
	"gitlab.com/accumulatenetwork/authroute/pkg/chain/memory"
	"gitlab.com/accumulatenetwork/authroute/pkg/chain/rpc"
	"gitlab.com/accumulatenetwork/authroute/pkg/errors"
	"golang.org/x/term"
)

var cmdMain = &cobra.Command{
	Use:   "authroute",
	Short: "Find and compose authorization routes for multisig and proxy accounts",
	Run:   printUsageAndExit1,
	PersistentPreRun: func(*cobra.Command, []string) {
		setup()
	},
}

var flagMain struct {
	Config     string
	Network    string
	Endpoint   string
	Accounts   string
	ChainState string
	LogLevel   string
	JSON       bool
}

func init() {
	cmdMain.PersistentFlags().StringVarP(&flagMain.Config, "config", "c", "", "Configuration file (TOML, YAML, or JSON)")
	cmdMain.PersistentFlags().StringVarP(&flagMain.Network, "network", "n", "", "Network ID")
	cmdMain.PersistentFlags().StringVar(&flagMain.Endpoint, "endpoint", "", "Node RPC endpoint")
	cmdMain.PersistentFlags().StringVar(&flagMain.Accounts, "accounts", "", "Account snapshot file")
	cmdMain.PersistentFlags().StringVar(&flagMain.ChainState, "chain-state", "", "Use a chain state snapshot file instead of a node")
	cmdMain.PersistentFlags().StringVar(&flagMain.LogLevel, "log-level", "", "Log levels, such as \"info;compose=debug\"")
	cmdMain.PersistentFlags().BoolVar(&flagMain.JSON, "json", false, "Print JSON")
}

func main() {
	_ = cmdMain.Execute()
}

func printUsageAndExit1(cmd *cobra.Command, args []string) {
	_ = cmd.Usage()
	os.Exit(1)
}

var cfg *config.Config

func setup() {
	cfg = config.Default()
	if flagMain.Config != "" {
		Checkf(cfg.LoadFrom(flagMain.Config), "load %s", flagMain.Config)
	}
	if flagMain.Network != "" {
		cfg.Network = flagMain.Network
	}
	if flagMain.Endpoint != "" {
		cfg.Endpoint = flagMain.Endpoint
	}
	if flagMain.Accounts != "" {
		cfg.Accounts = &config.Accounts{File: flagMain.Accounts}
	}
	if flagMain.LogLevel != "" {
		cfg.Logging.Level = flagMain.LogLevel
	}

	lc, err := cfg.SlogConfig()
	Checkf(err, "logging")

	var out io.Writer = os.Stderr
	if cfg.Logging.Format != "json" {
		color := term.IsTerminal(int(os.Stderr.Fd()))
		if cfg.Logging.Color != nil {
			color = *cfg.Logging.Color
		}
		out = logging.ConsoleSlogWriter(os.Stderr, color)
	}
	h, err := logging.NewSlogHandler(lc, out)
	Checkf(err, "logging")
	slog.SetDefault(slog.New(h))

	if cfg.Metrics != nil && cfg.Metrics.Listen != "" {
		go func() {
			err := http.ListenAndServe(cfg.Metrics.Listen, promhttp.Handler())
			slog.Error("Metrics server stopped", "module", "main", "error", err)
		}()
	}
}

func network() *chain.Network {
	n, err := cfg.SelectedNetwork()
	Check(err)
	return n
}

// chainClient connects to the node, or loads the offline chain state.
func chainClient(n *chain.Network) chain.Client {
	if flagMain.ChainState == "" {
		c, err := rpc.Dial(n)
		Checkf(err, "connect")
		return c
	}

	b, err := os.ReadFile(flagMain.ChainState)
	Checkf(err, "read chain state")
	var s memory.State
	Checkf(config.DecodeFile(flagMain.ChainState, b, &s), "decode chain state")
	c := memory.New(n)
	c.Load(&s)
	return c
}

func accountSource() *accounts.Snapshot {
	if cfg.Accounts == nil || cfg.Accounts.File == "" {
		Fatalf("no account snapshot; use --accounts or set accounts.file")
	}
	s, err := accounts.Load(cfg.Accounts.File)
	Check(err)
	return s
}

func identities(s *accounts.Snapshot) *account.Identities {
	names := account.NewIdentities(s.Names()...)
	ids := s.Names()
	for _, id := range cfg.Identities {
		if id.Name == "" {
			id.Name = names.Name(id.Address)
		}
		ids = append(ids, id)
	}
	return account.NewIdentities(ids...)
}

func openRecords() records.Store {
	s, err := records.Open(cfg.Records)
	Checkf(err, "open records")
	return s
}

type serviceOptions struct {
	offline   bool
	localOnly bool
}

func newService(opts serviceOptions) (*authority.Service, *accounts.Snapshot, records.Store) {
	n := network()
	src := accountSource()
	recs := openRecords()

	var client chain.Client
	if opts.offline {
		client = memory.New(n)
	} else {
		client = chainClient(n)
	}

	s, err := authority.New(authority.Options{
		Network:        n,
		Client:         client,
		Accounts:       src,
		Records:        recs,
		Identities:     identities(src),
		LocalOnly:      opts.localOnly || cfg.Routing.LocalOnly,
		MaxDepth:       cfg.Routing.MaxDepth,
		GraphCacheSize: cfg.Routing.GraphCacheSize,
	})
	Check(err)
	return s, src, recs
}

func printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	Check(errors.EncodingError.Wrap(err))
	fmt.Println(string(b))
}
