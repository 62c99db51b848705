// Copyright © 2025 MEVShield Pool contributors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package standard

import (
	"context"
	"math/big"

	"github.com/Najnomics/MEVShieldPool-sub001/services/metrics"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

var metricsNamespace = "mevshieldd"

var bidsSubmitted *prometheus.CounterVec
var roundsOpened prometheus.Counter
var roundsFinalised prometheus.Counter
var refundsIssued prometheus.Counter
var mevCaptured prometheus.Counter
var capturedValueRejected prometheus.Counter

func registerMetrics(_ context.Context, monitor metrics.Service) error {
	if bidsSubmitted != nil {
		// Already registered.
		return nil
	}
	if monitor == nil {
		// No monitor.
		return nil
	}
	if monitor.Presenter() == "prometheus" {
		return registerPrometheusMetrics()
	}
	return nil
}

func registerPrometheusMetrics() error {
	bidsSubmitted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "auction",
		Name:      "bids_submitted_total",
		Help:      "Number of bids submitted",
	}, []string{"outcome"})
	if err := prometheus.Register(bidsSubmitted); err != nil {
		return errors.Wrap(err, "failed to register bids submitted")
	}
	roundsOpened = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "auction",
		Name:      "rounds_opened_total",
		Help:      "Number of auction rounds opened",
	})
	if err := prometheus.Register(roundsOpened); err != nil {
		return errors.Wrap(err, "failed to register rounds opened")
	}
	roundsFinalised = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "auction",
		Name:      "rounds_finalised_total",
		Help:      "Number of auction rounds finalised",
	})
	if err := prometheus.Register(roundsFinalised); err != nil {
		return errors.Wrap(err, "failed to register rounds finalised")
	}
	refundsIssued = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "auction",
		Name:      "refunds_total",
		Help:      "Number of refunds issued to displaced bidders",
	})
	if err := prometheus.Register(refundsIssued); err != nil {
		return errors.Wrap(err, "failed to register refunds")
	}
	mevCaptured = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "auction",
		Name:      "mev_captured_total",
		Help:      "Value captured across all rounds",
	})
	if err := prometheus.Register(mevCaptured); err != nil {
		return errors.Wrap(err, "failed to register MEV captured")
	}
	capturedValueRejected = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "auction",
		Name:      "captured_value_rejected_total",
		Help:      "Number of captured value reports rejected by the price policy",
	})
	if err := prometheus.Register(capturedValueRejected); err != nil {
		return errors.Wrap(err, "failed to register captured value rejected")
	}

	return nil
}

func monitorBidSubmitted(outcome string) {
	if bidsSubmitted != nil {
		bidsSubmitted.WithLabelValues(outcome).Inc()
	}
}

func monitorRoundOpened() {
	if roundsOpened != nil {
		roundsOpened.Inc()
	}
}

func monitorRoundFinalised() {
	if roundsFinalised != nil {
		roundsFinalised.Inc()
	}
}

func monitorRefundIssued() {
	if refundsIssued != nil {
		refundsIssued.Inc()
	}
}

func monitorMEVCaptured(amount *big.Int) {
	if mevCaptured != nil {
		mevCaptured.Add(decimal.NewFromBigInt(amount, 0).InexactFloat64())
	}
}

func monitorCapturedValueRejected() {
	if capturedValueRejected != nil {
		capturedValueRejected.Inc()
	}
}
