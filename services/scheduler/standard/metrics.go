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
	"github.com/Najnomics/MEVShieldPool-sub001/services/metrics"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

var metricsNamespace = "mevshieldd"

var schedulerJobsScheduled *prometheus.CounterVec
var schedulerJobsFired *prometheus.CounterVec
var schedulerJobsCancelled *prometheus.CounterVec

func registerMetrics(monitor metrics.Service) error {
	if schedulerJobsScheduled != nil {
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
	schedulerJobsScheduled = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "scheduler",
		Name:      "jobs_scheduled_total",
		Help:      "Number of jobs scheduled",
	}, []string{"class"})
	if err := prometheus.Register(schedulerJobsScheduled); err != nil {
		return errors.Wrap(err, "failed to register jobs scheduled")
	}
	schedulerJobsFired = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "scheduler",
		Name:      "jobs_fired_total",
		Help:      "Number of jobs fired",
	}, []string{"class", "trigger"})
	if err := prometheus.Register(schedulerJobsFired); err != nil {
		return errors.Wrap(err, "failed to register jobs fired")
	}
	schedulerJobsCancelled = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "scheduler",
		Name:      "jobs_cancelled_total",
		Help:      "Number of jobs cancelled",
	}, []string{"class"})
	if err := prometheus.Register(schedulerJobsCancelled); err != nil {
		return errors.Wrap(err, "failed to register jobs cancelled")
	}

	return nil
}

func monitorJobScheduled(class string) {
	if schedulerJobsScheduled != nil {
		schedulerJobsScheduled.WithLabelValues(class).Inc()
	}
}

func monitorJobStartedOnTimer(class string) {
	if schedulerJobsFired != nil {
		schedulerJobsFired.WithLabelValues(class, "timer").Inc()
	}
}

func monitorJobStartedNow(class string) {
	if schedulerJobsFired != nil {
		schedulerJobsFired.WithLabelValues(class, "signal").Inc()
	}
}

func monitorJobCancelled(class string) {
	if schedulerJobsCancelled != nil {
		schedulerJobsCancelled.WithLabelValues(class).Inc()
	}
}
