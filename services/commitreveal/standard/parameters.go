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
	"errors"
	"time"

	"github.com/Najnomics/MEVShieldPool-sub001/services/chaintime"
	"github.com/Najnomics/MEVShieldPool-sub001/services/commitreveal"
	"github.com/Najnomics/MEVShieldPool-sub001/services/metrics"
	nullmetrics "github.com/Najnomics/MEVShieldPool-sub001/services/metrics/null"
	"github.com/Najnomics/MEVShieldPool-sub001/services/scheduler"
	"github.com/rs/zerolog"
)

type parameters struct {
	logLevel         zerolog.Level
	monitor          metrics.Service
	chainTime        chaintime.Service
	scheduler        scheduler.Service
	revealWindow     time.Duration
	sweepInterval    time.Duration
	revealedHandlers []commitreveal.RevealedHandler
}

// Parameter is the interface for service parameters.
type Parameter interface {
	apply(p *parameters)
}

type parameterFunc func(*parameters)

func (f parameterFunc) apply(p *parameters) {
	f(p)
}

// WithLogLevel sets the log level for the module.
func WithLogLevel(logLevel zerolog.Level) Parameter {
	return parameterFunc(func(p *parameters) {
		p.logLevel = logLevel
	})
}

// WithMonitor sets the monitor for the module.
func WithMonitor(monitor metrics.Service) Parameter {
	return parameterFunc(func(p *parameters) {
		p.monitor = monitor
	})
}

// WithChainTime sets the chain time service for the module.
func WithChainTime(chainTime chaintime.Service) Parameter {
	return parameterFunc(func(p *parameters) {
		p.chainTime = chainTime
	})
}

// WithScheduler sets the scheduler used to run the expiry sweep.
func WithScheduler(svc scheduler.Service) Parameter {
	return parameterFunc(func(p *parameters) {
		p.scheduler = svc
	})
}

// WithRevealWindow sets the window in which a commitment can be revealed.
func WithRevealWindow(window time.Duration) Parameter {
	return parameterFunc(func(p *parameters) {
		p.revealWindow = window
	})
}

// WithSweepInterval sets the interval between expiry sweeps.
func WithSweepInterval(interval time.Duration) Parameter {
	return parameterFunc(func(p *parameters) {
		p.sweepInterval = interval
	})
}

// WithRevealedHandlers sets the handlers for revealed orders.
func WithRevealedHandlers(handlers []commitreveal.RevealedHandler) Parameter {
	return parameterFunc(func(p *parameters) {
		p.revealedHandlers = handlers
	})
}

// parseAndCheckParameters parses and checks parameters to ensure that mandatory parameters are present and correct.
func parseAndCheckParameters(params ...Parameter) (*parameters, error) {
	parameters := parameters{
		logLevel:      zerolog.GlobalLevel(),
		monitor:       nullmetrics.New(),
		sweepInterval: time.Minute,
	}
	for _, p := range params {
		if params != nil {
			p.apply(&parameters)
		}
	}

	if parameters.chainTime == nil {
		return nil, errors.New("no chain time specified")
	}
	if parameters.revealWindow <= 0 {
		return nil, errors.New("no reveal window specified")
	}
	if parameters.sweepInterval <= 0 {
		return nil, errors.New("no sweep interval specified")
	}

	return &parameters, nil
}
