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
	ordersEnqueuedCounter   prometheus.Counter
	ordersDispatchedCounter *prometheus.CounterVec
	ordersCancelledCounter  prometheus.Counter
	queueLengthGauge        prometheus.Gauge
)

func registerMetrics(ctx context.Context, monitor metrics.Service) error {
	if ordersEnqueuedCounter != nil {
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
	ordersEnqueuedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mevshieldd",
		Subsystem: "executor",
		Name:      "orders_enqueued_total",
		Help:      "The number of orders enqueued.",
	})
	if err := prometheus.Register(ordersEnqueuedCounter); err != nil {
		return err
	}

	ordersDispatchedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mevshieldd",
		Subsystem: "executor",
		Name:      "orders_dispatched_total",
		Help:      "The number of orders dispatched.",
	}, []string{"result"})
	if err := prometheus.Register(ordersDispatchedCounter); err != nil {
		return err
	}

	ordersCancelledCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mevshieldd",
		Subsystem: "executor",
		Name:      "orders_cancelled_total",
		Help:      "The number of orders cancelled before dispatch.",
	})
	if err := prometheus.Register(ordersCancelledCounter); err != nil {
		return err
	}

	queueLengthGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "mevshieldd",
		Subsystem: "executor",
		Name:      "queue_length",
		Help:      "The number of orders currently queued.",
	})
	return prometheus.Register(queueLengthGauge)
}

func monitorOrderEnqueued(queued int) {
	if ordersEnqueuedCounter == nil {
		return
	}
	ordersEnqueuedCounter.Inc()
	queueLengthGauge.Set(float64(queued))
}

func monitorOrderDispatched(result string) {
	if ordersDispatchedCounter == nil {
		return
	}
	ordersDispatchedCounter.WithLabelValues(result).Inc()
}

func monitorOrderCancelled() {
	if ordersCancelledCounter == nil {
		return
	}
	ordersCancelledCounter.Inc()
}

func monitorQueueLength(queued int) {
	if queueLengthGauge == nil {
		return
	}
	queueLengthGauge.Set(float64(queued))
}
