// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package rpc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "authroute",
		Subsystem: "rpc",
		Name:      "calls",
		Help:      "Number of node RPC calls, by method",
	}, []string{"method"})
	mCallErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "authroute",
		Subsystem: "rpc",
		Name:      "call_errors",
		Help:      "Number of failed node RPC calls, by method",
	}, []string{"method"})
)
