// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package compose

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mComposed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "authroute",
		Subsystem: "compose",
		Name:      "composed",
		Help:      "Number of calls composed",
	})
	mFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "authroute",
		Subsystem: "compose",
		Name:      "failed",
		Help:      "Number of compositions that failed, by error kind",
	}, []string{"kind"})
	mFirstApproval = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "authroute",
		Subsystem: "compose",
		Name:      "first_approval",
		Help:      "Number of multisig layers that open a new approval round",
	})
	mMismatch = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "authroute",
		Subsystem: "compose",
		Name:      "timepoint_mismatch",
		Help:      "Number of recorded timepoints that differed from the chain",
	})
	mAnnounced = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "authroute",
		Subsystem: "compose",
		Name:      "announced",
		Help:      "Number of delayed proxy dispatches composed as announcements",
	})
)
