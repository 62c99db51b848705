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

	"github.com/Najnomics/MEVShieldPool-sub001/services/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	commitmentsCounter   prometheus.Counter
	revealsCounter       *prometheus.CounterVec
	cancellationsCounter prometheus.Counter
	expirationsCounter   prometheus.Counter
)

func registerMetrics(ctx context.Context, monitor metrics.Service) error {
	if commitmentsCounter != nil {
		// Already registered.
		return nil
	}
	if monitor == nil {
		// No monitor.
		return nil
	}
	if monitor.Presenter() == "prometheus" {
		return registerPrometheusMetrics(ctx)
	}
	return nil
}

func registerPrometheusMetrics(_ context.Context) error {
	commitmentsCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mevshieldd",
		Subsystem: "commitreveal",
		Name:      "commitments_total",
		Help:      "The number of commitments recorded.",
	})
	if err := prometheus.Register(commitmentsCounter); err != nil {
		return err
	}

	revealsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mevshieldd",
		Subsystem: "commitreveal",
		Name:      "reveals_total",
		Help:      "The number of reveals received.",
	}, []string{"outcome"})
	if err := prometheus.Register(revealsCounter); err != nil {
		return err
	}

	cancellationsCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mevshieldd",
		Subsystem: "commitreveal",
		Name:      "cancellations_total",
		Help:      "The number of commitments cancelled.",
	})
	if err := prometheus.Register(cancellationsCounter); err != nil {
		return err
	}

	expirationsCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mevshieldd",
		Subsystem: "commitreveal",
		Name:      "expirations_total",
		Help:      "The number of commitments expired without a reveal.",
	})
	return prometheus.Register(expirationsCounter)
}

func monitorCommitment() {
	if commitmentsCounter == nil {
		return
	}
	commitmentsCounter.Inc()
}

func monitorReveal(outcome string) {
	if revealsCounter == nil {
		return
	}
	revealsCounter.WithLabelValues(outcome).Inc()
}

func monitorCancellation() {
	if cancellationsCounter == nil {
		return
	}
	cancellationsCounter.Inc()
}

func monitorExpirations(count int) {
	if expirationsCounter == nil {
		return
	}
	expirationsCounter.Add(float64(count))
}
