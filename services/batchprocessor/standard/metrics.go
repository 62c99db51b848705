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
	"time"

	"github.com/Najnomics/MEVShieldPool-sub001/services/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	opportunitiesSubmittedCounter prometheus.Counter
	opportunitiesProcessedCounter prometheus.Counter
	opportunitiesSkippedCounter   *prometheus.CounterVec
	opportunitiesFailedCounter    prometheus.Counter
	batchesCounter                prometheus.Counter
	batchProfitCounter            prometheus.Counter
	backlogGauge                  prometheus.Gauge
	peakTPSGauge                  prometheus.Gauge
	averageLatencyGauge           prometheus.Gauge
)

func registerMetrics(ctx context.Context, monitor metrics.Service) error {
	if opportunitiesSubmittedCounter != nil {
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
	opportunitiesSubmittedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mevshieldd",
		Subsystem: "batchprocessor",
		Name:      "opportunities_submitted_total",
		Help:      "The number of opportunities submitted.",
	})
	if err := prometheus.Register(opportunitiesSubmittedCounter); err != nil {
		return err
	}

	opportunitiesProcessedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mevshieldd",
		Subsystem: "batchprocessor",
		Name:      "opportunities_processed_total",
		Help:      "The number of opportunities processed.",
	})
	if err := prometheus.Register(opportunitiesProcessedCounter); err != nil {
		return err
	}

	opportunitiesSkippedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mevshieldd",
		Subsystem: "batchprocessor",
		Name:      "opportunities_skipped_total",
		Help:      "The number of opportunities skipped.",
	}, []string{"reason"})
	if err := prometheus.Register(opportunitiesSkippedCounter); err != nil {
		return err
	}

	opportunitiesFailedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mevshieldd",
		Subsystem: "batchprocessor",
		Name:      "opportunities_failed_total",
		Help:      "The number of opportunities whose payout failed.",
	})
	if err := prometheus.Register(opportunitiesFailedCounter); err != nil {
		return err
	}

	batchesCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mevshieldd",
		Subsystem: "batchprocessor",
		Name:      "batches_total",
		Help:      "The number of batches run.",
	})
	if err := prometheus.Register(batchesCounter); err != nil {
		return err
	}

	batchProfitCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mevshieldd",
		Subsystem: "batchprocessor",
		Name:      "profit_total",
		Help:      "The total profit accumulated across batches.",
	})
	if err := prometheus.Register(batchProfitCounter); err != nil {
		return err
	}

	backlogGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "mevshieldd",
		Subsystem: "batchprocessor",
		Name:      "backlog_length",
		Help:      "The number of opportunities in the backlog.",
	})
	if err := prometheus.Register(backlogGauge); err != nil {
		return err
	}

	peakTPSGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "mevshieldd",
		Subsystem: "batchprocessor",
		Name:      "peak_tps",
		Help:      "The highest per-batch throughput observed.",
	})
	if err := prometheus.Register(peakTPSGauge); err != nil {
		return err
	}

	averageLatencyGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "mevshieldd",
		Subsystem: "batchprocessor",
		Name:      "average_latency_seconds",
		Help:      "The rolling average batch latency.",
	})
	return prometheus.Register(averageLatencyGauge)
}

func monitorOpportunitySubmitted(backlog int) {
	if opportunitiesSubmittedCounter == nil {
		return
	}
	opportunitiesSubmittedCounter.Inc()
	backlogGauge.Set(float64(backlog))
}

func monitorOpportunityProcessed(profit *big.Int) {
	if opportunitiesProcessedCounter == nil {
		return
	}
	opportunitiesProcessedCounter.Inc()
	value, _ := new(big.Float).SetInt(profit).Float64()
	batchProfitCounter.Add(value)
}

func monitorOpportunitySkipped(reason string) {
	if opportunitiesSkippedCounter == nil {
		return
	}
	opportunitiesSkippedCounter.WithLabelValues(reason).Inc()
}

func monitorOpportunityFailed() {
	if opportunitiesFailedCounter == nil {
		return
	}
	opportunitiesFailedCounter.Inc()
}

func monitorBatchRun(peakTPS float64, averageLatency time.Duration) {
	if batchesCounter == nil {
		return
	}
	batchesCounter.Inc()
	peakTPSGauge.Set(peakTPS)
	averageLatencyGauge.Set(averageLatency.Seconds())
}
