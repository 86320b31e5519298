// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package config

import (
	"io/fs"
	"log/slog"
	"strings"

	"gitlab.com/accumulatenetwork/authroute/internal/logging"
	"gitlab.com/accumulatenetwork/authroute/pkg/account"
	"gitlab.com/accumulatenetwork/authroute/pkg/chain"
	"gitlab.com/accumulatenetwork/authroute/pkg/errors"
)

// Config is the configuration of the authroute tool.
type Config struct {
	file string
	fs   fs.FS

	// DotEnv enables ${VAR} expansion from a .env file next to the config
	// file.
	DotEnv *bool `json:"dotEnv,omitempty"`

	// Network is the ID of the network to use.
	Network string `json:"network,omitempty"`

	// Endpoint overrides the RPC endpoint of the network.
	Endpoint string `json:"endpoint,omitempty"`

	// Networks defines additional networks, or replaces the built-in
	// definition of a network with the same ID.
	Networks []*chain.Network `json:"networks,omitempty"`

	Logging  *Logging  `json:"logging,omitempty"`
	Routing  *Routing  `json:"routing,omitempty"`
	Accounts *Accounts `json:"accounts,omitempty"`
	Records  *Records  `json:"records,omitempty"`
	Metrics  *Metrics  `json:"metrics,omitempty"`

	// Identities are the caller's known addresses.
	Identities []account.Identity `json:"identities,omitempty"`
}

type Logging struct {
	// Format is plain or json.
	Format string `json:"format,omitempty"`

	// Level is a list of level rules such as "info;compose=debug".
	Level string `json:"level,omitempty"`

	Color *bool `json:"color,omitempty"`
}

type Routing struct {
	MaxDepth       int  `json:"maxDepth,omitempty"`
	LocalOnly      bool `json:"localOnly,omitempty"`
	GraphCacheSize int  `json:"graphCacheSize,omitempty"`
}

// Accounts locates the account snapshot file.
type Accounts struct {
	File string `json:"file,omitempty"`
}

// RecordsType is the type of a transaction record store.
type RecordsType string

const (
	RecordsTypeMemory RecordsType = "memory"
	RecordsTypeBolt   RecordsType = "bolt"
)

type Records struct {
	Type RecordsType `json:"type,omitempty"`
	Path string      `json:"path,omitempty"`
}

type Metrics struct {
	// Listen is the address to serve Prometheus metrics on.
	Listen string `json:"listen,omitempty"`
}

// Default returns the default configuration.
func Default() *Config {
	c := new(Config)
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.Network == "" {
		c.Network = "polkadot"
	}
	setDefaultPtr(&c.Logging, Logging{})
	if c.Logging.Format == "" {
		c.Logging.Format = "plain"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	setDefaultPtr(&c.Routing, Routing{})
	setDefaultPtr(&c.Records, Records{})
	if c.Records.Type == "" {
		c.Records.Type = RecordsTypeMemory
	}
}

// SelectedNetwork returns the configured network.
func (c *Config) SelectedNetwork() (*chain.Network, error) {
	var n *chain.Network
	for _, m := range c.Networks {
		if strings.EqualFold(m.ID, c.Network) {
			n = m
		}
	}

	if n == nil {
		switch strings.ToLower(c.Network) {
		case "polkadot":
			n = chain.Polkadot()
		case "kusama":
			n = chain.Kusama()
		default:
			return nil, errors.NotFound.WithFormat("unknown network %q", c.Network)
		}
	}

	if c.Endpoint != "" {
		m := *n
		m.Endpoint = c.Endpoint
		n = &m
	}
	return n, nil
}

// SlogConfig returns the logging configuration.
func (c *Config) SlogConfig() (logging.SlogConfig, error) {
	if c.Logging == nil || c.Logging.Level == "" {
		return logging.SlogConfig{DefaultLevel: slog.LevelInfo}, nil
	}
	return logging.ParseLogLevel(c.Logging.Level)
}

func setDefaultPtr[V any](ptr **V, value V) V {
	if *ptr == nil {
		*ptr = &value
	}
	return **ptr
}
