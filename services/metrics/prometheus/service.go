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

// Package prometheus is a metrics service exposing metrics for prometheus.
package prometheus

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	zerologger "github.com/rs/zerolog/log"
)

// Service is a metrics service exposing metrics via prometheus.
type Service struct {
	ready   prometheus.Gauge
	release *prometheus.GaugeVec
}

// module-wide log.
var log zerolog.Logger

// New creates a new prometheus metrics service.
func New(_ context.Context, params ...Parameter) (*Service, error) {
	parameters, err := parseAndCheckParameters(params...)
	if err != nil {
		return nil, errors.Wrap(err, "problem with parameters")
	}

	// Set logging.
	log = zerologger.With().Str("service", "metrics").Str("impl", "prometheus").Logger().Level(parameters.logLevel)

	s := &Service{}
	if err := s.registerDaemonMetrics(); err != nil {
		return nil, err
	}

	go func() {
		http.Handle("/metrics", promhttp.Handler())
		server := &http.Server{
			Addr:              parameters.address,
			ReadHeaderTimeout: 5 * time.Second,
		}
		if err := server.ListenAndServe(); err != nil {
			log.Warn().Str("metrics_address", parameters.address).Err(err).Msg("Failed to run metrics server")
		}
	}()

	return s, nil
}

// Presenter provides the presenter for the service.
func (*Service) Presenter() string {
	return "prometheus"
}

// SetReady sets the readiness state of the daemon.
func (s *Service) SetReady(ready bool) {
	if ready {
		s.ready.Set(1)
	} else {
		s.ready.Set(0)
	}
}

// SetRelease sets the release of the daemon.
func (s *Service) SetRelease(release string) {
	s.release.WithLabelValues(release).Set(1)
}

func (s *Service) registerDaemonMetrics() error {
	s.ready = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "mevshieldd",
		Name:      "ready",
		Help:      "1 if the daemon is ready to serve requests, otherwise 0",
	})
	if err := prometheus.Register(s.ready); err != nil {
		return errors.Wrap(err, "failed to register ready metric")
	}

	s.release = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "mevshieldd",
		Name:      "release",
		Help:      "The release of the daemon",
	}, []string{"version"})
	if err := prometheus.Register(s.release); err != nil {
		return errors.Wrap(err, "failed to register release metric")
	}

	return nil
}
