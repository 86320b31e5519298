// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package authority ties the graph builder, the route enumerator, the call
// composer, and the deposit accountant together for one network.
package authority

import (
	"context"
	"encoding/json"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	"gitlab.com/accumulatenetwork/authroute/internal/logging"
	"gitlab.com/accumulatenetwork/authroute/pkg/account"
	"gitlab.com/accumulatenetwork/authroute/pkg/address"
	"gitlab.com/accumulatenetwork/authroute/pkg/chain"
	"gitlab.com/accumulatenetwork/authroute/pkg/compose"
	"gitlab.com/accumulatenetwork/authroute/pkg/deposit"
	"gitlab.com/accumulatenetwork/authroute/pkg/errors"
	"gitlab.com/accumulatenetwork/authroute/pkg/graph"
	"gitlab.com/accumulatenetwork/authroute/pkg/route"
	"gitlab.com/accumulatenetwork/authroute/pkg/txn"
	"golang.org/x/crypto/blake2b"
)

// Accounts resolves an address to its account tree.
type Accounts interface {
	Account(ctx context.Context, network string, addr address.Address) (*account.Account, error)
}

// Options are the options for a [Service].
type Options struct {
	Network *chain.Network
	Client  chain.Client

	// Accounts and Records are only required by RebuildAndCompose.
	Accounts Accounts
	Records  txn.Records

	Identities *account.Identities
	LocalOnly  bool
	MaxDepth   int

	// GraphCacheSize is the number of graphs to memoize. Defaults to 128.
	GraphCacheSize int
}

// Service answers authorization questions for one network.
type Service struct {
	network    *chain.Network
	accounts   Accounts
	records    txn.Records
	builder    *graph.Builder
	enumerator *route.Enumerator
	composer   *compose.Composer
	accountant *deposit.Accountant
	graphs     *lru.Cache[[32]byte, *graph.Graph]
}

// New creates a service.
func New(opts Options) (*Service, error) {
	if opts.Network == nil {
		return nil, errors.BadRequest.With("missing network")
	}
	if opts.Client == nil {
		return nil, errors.BadRequest.With("missing chain client")
	}
	if opts.GraphCacheSize <= 0 {
		opts.GraphCacheSize = 128
	}

	graphs, err := lru.New[[32]byte, *graph.Graph](opts.GraphCacheSize)
	if err != nil {
		return nil, errors.InternalError.WithFormat("create graph cache: %w", err)
	}

	s := new(Service)
	s.network = opts.Network
	s.accounts = opts.Accounts
	s.records = opts.Records
	s.graphs = graphs
	s.builder = &graph.Builder{MaxDepth: opts.MaxDepth, Identities: opts.Identities}
	s.enumerator = &route.Enumerator{MaxDepth: opts.MaxDepth, Identities: opts.Identities, LocalOnly: opts.LocalOnly}
	s.composer = &compose.Composer{Network: opts.Network, Client: opts.Client}
	s.accountant = &deposit.Accountant{Client: opts.Client}
	return s, nil
}

// Network returns the service's network.
func (s *Service) Network() *chain.Network { return s.network }

// BuildGraph builds the visualization graph of the target. Graphs are
// memoized by the content of the account tree.
func (s *Service) BuildGraph(target *account.Account) *graph.Graph {
	b, err := json.Marshal(target)
	if err != nil {
		// Cyclic trees cannot be keyed
		return s.builder.Build(target)
	}

	key := blake2b.Sum256(b)
	if g, ok := s.graphs.Get(key); ok {
		return g
	}
	g := s.builder.Build(target)
	s.graphs.Add(key, g)
	return g
}

// EnumeratePaths lists the routes to the target. See [route.Enumerator].
func (s *Service) EnumeratePaths(target *account.Account, tracked *txn.Transaction) *route.Paths {
	return s.enumerator.Enumerate(target, tracked)
}

// Compose composes the call for the route. See [compose.Composer].
func (s *Service) Compose(ctx context.Context, base []byte, r route.Route, tracked *txn.Transaction) (*compose.Envelope, error) {
	return s.composer.Compose(ctx, base, r, tracked)
}

// AssessDeposits works out the deposits the envelope reserves and releases.
func (s *Service) AssessDeposits(ctx context.Context, env *compose.Envelope) (*deposit.Ledger, error) {
	return s.accountant.Assess(ctx, env)
}

// RebuildAndCompose reloads the target account and the tracked transaction
// (if txID is not empty), checks that the route is still offered, and
// composes the call. It is the entry point to use immediately before
// signing.
func (s *Service) RebuildAndCompose(ctx context.Context, base []byte, r route.Route, txID string) (*compose.Envelope, error) {
	if s.accounts == nil {
		return nil, errors.BadRequest.With("no account source")
	}
	err := r.Validate()
	if err != nil {
		return nil, errors.UnknownError.Wrap(err)
	}

	ctx = logging.With(ctx, "target", r.Target(), "signer", r.Signer())

	var tracked *txn.Transaction
	if txID != "" {
		ctx = logging.With(ctx, "transaction", txID)
		if s.records == nil {
			return nil, errors.BadRequest.With("no transaction records")
		}
		tracked, err = s.records.Transaction(ctx, txID)
		if err != nil {
			return nil, errors.UnknownError.WithFormat("load transaction %s: %w", txID, err)
		}
	}

	target, err := s.accounts.Account(ctx, s.network.ID, r.Target())
	if err != nil {
		return nil, errors.UnknownError.WithFormat("load account %v: %w", r.Target(), err)
	}

	paths := s.enumerator.Enumerate(target, tracked)
	if !paths.Contains(r) {
		slog.InfoContext(ctx, "Route is no longer available", "module", "authority")
		return nil, errors.Conflict.WithFormat("route %v is no longer available", r)
	}

	return s.composer.Compose(ctx, base, r, tracked)
}
