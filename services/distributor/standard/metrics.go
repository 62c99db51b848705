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
	"github.com/prometheus/client_golang/prometheus"
)

var (
	distributionsCounter       *prometheus.CounterVec
	distributedAmountCounter   *prometheus.CounterVec
	distributionFailedCounter  prometheus.Counter
)

func registerMetrics(ctx context.Context, monitor metrics.Service) error {
	if distributionsCounter != nil {
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
	distributionsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mevshieldd",
		Subsystem: "distributor",
		Name:      "distributions_total",
		Help:      "The number of distributions made.",
	}, []string{"leg"})
	if err := prometheus.Register(distributionsCounter); err != nil {
		return err
	}

	distributedAmountCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mevshieldd",
		Subsystem: "distributor",
		Name:      "distributed_amount_total",
		Help:      "The total amount distributed.",
	}, []string{"leg"})
	if err := prometheus.Register(distributedAmountCounter); err != nil {
		return err
	}

	distributionFailedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mevshieldd",
		Subsystem: "distributor",
		Name:      "distributions_failed_total",
		Help:      "The number of distributions that failed.",
	})
	return prometheus.Register(distributionFailedCounter)
}

func monitorDistribution(lpAmount *big.Int, protocolAmount *big.Int) {
	if distributionsCounter == nil {
		return
	}
	lp, _ := new(big.Float).SetInt(lpAmount).Float64()
	protocol, _ := new(big.Float).SetInt(protocolAmount).Float64()
	distributionsCounter.WithLabelValues("lp").Inc()
	distributionsCounter.WithLabelValues("protocol").Inc()
	distributedAmountCounter.WithLabelValues("lp").Add(lp)
	distributedAmountCounter.WithLabelValues("protocol").Add(protocol)
}

func monitorDistributionFailed() {
	if distributionFailedCounter == nil {
		return
	}
	distributionFailedCounter.Inc()
}
