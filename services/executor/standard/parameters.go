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
	"github.com/Najnomics/MEVShieldPool-sub001/services/executor"
	"github.com/Najnomics/MEVShieldPool-sub001/services/metrics"
	nullmetrics "github.com/Najnomics/MEVShieldPool-sub001/services/metrics/null"
	"github.com/Najnomics/MEVShieldPool-sub001/services/scheduler"
	"github.com/Najnomics/MEVShieldPool-sub001/services/shielddb"
	"github.com/rs/zerolog"
)

type parameters struct {
	logLevel            zerolog.Level
	monitor             metrics.Service
	chainTime           chaintime.Service
	settlementSink      executor.SettlementSink
	scheduler           scheduler.Service
	ordersSetter        shielddb.ScheduledOrdersSetter
	minDelay            time.Duration
	maxDelay            time.Duration
	randomisationWindow time.Duration
	volumeWeighting     bool
	volumeCoefficient   float64
	dispatchInterval    time.Duration
	dispatchBatchSize   int
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

// WithSettlementSink sets the sink that executes ready orders.
func WithSettlementSink(sink executor.SettlementSink) Parameter {
	return parameterFunc(func(p *parameters) {
		p.settlementSink = sink
	})
}

// WithScheduler sets the scheduler used to run the periodic dispatch.
func WithScheduler(svc scheduler.Service) Parameter {
	return parameterFunc(func(p *parameters) {
		p.scheduler = svc
	})
}

// WithScheduledOrdersSetter sets the store for order state.
func WithScheduledOrdersSetter(setter shielddb.ScheduledOrdersSetter) Parameter {
	return parameterFunc(func(p *parameters) {
		p.ordersSetter = setter
	})
}

// WithMinDelay sets the minimum execution delay.
func WithMinDelay(delay time.Duration) Parameter {
	return parameterFunc(func(p *parameters) {
		p.minDelay = delay
	})
}

// WithMaxDelay sets the maximum execution delay.
func WithMaxDelay(delay time.Duration) Parameter {
	return parameterFunc(func(p *parameters) {
		p.maxDelay = delay
	})
}

// WithRandomisationWindow sets the width of the uniform jitter added to each delay.
func WithRandomisationWindow(window time.Duration) Parameter {
	return parameterFunc(func(p *parameters) {
		p.randomisationWindow = window
	})
}

// WithVolumeWeighting enables the volume-weighted dispatch hint.
func WithVolumeWeighting(enabled bool) Parameter {
	return parameterFunc(func(p *parameters) {
		p.volumeWeighting = enabled
	})
}

// WithVolumeCoefficient sets the coefficient applied to the volume term of the dispatch score.
func WithVolumeCoefficient(coefficient float64) Parameter {
	return parameterFunc(func(p *parameters) {
		p.volumeCoefficient = coefficient
	})
}

// WithDispatchInterval sets the interval between periodic dispatch passes.
func WithDispatchInterval(interval time.Duration) Parameter {
	return parameterFunc(func(p *parameters) {
		p.dispatchInterval = interval
	})
}

// WithDispatchBatchSize sets the maximum orders settled per dispatch pass.
func WithDispatchBatchSize(size int) Parameter {
	return parameterFunc(func(p *parameters) {
		p.dispatchBatchSize = size
	})
}

// parseAndCheckParameters parses and checks parameters to ensure that mandatory parameters are present and correct.
func parseAndCheckParameters(params ...Parameter) (*parameters, error) {
	parameters := parameters{
		logLevel:          zerolog.GlobalLevel(),
		monitor:           nullmetrics.New(),
		volumeCoefficient: 1,
		dispatchInterval:  time.Second,
		dispatchBatchSize: 64,
	}
	for _, p := range params {
		if params != nil {
			p.apply(&parameters)
		}
	}

	if parameters.chainTime == nil {
		return nil, errors.New("no chain time specified")
	}
	if parameters.settlementSink == nil {
		return nil, errors.New("no settlement sink specified")
	}
	if parameters.minDelay < 0 {
		return nil, errors.New("negative minimum delay specified")
	}
	if parameters.maxDelay <= 0 {
		return nil, errors.New("no maximum delay specified")
	}
	if parameters.maxDelay < parameters.minDelay {
		return nil, errors.New("maximum delay below minimum delay")
	}
	if parameters.randomisationWindow < 0 {
		return nil, errors.New("negative randomisation window specified")
	}
	if parameters.dispatchInterval <= 0 {
		return nil, errors.New("no dispatch interval specified")
	}
	if parameters.dispatchBatchSize <= 0 {
		return nil, errors.New("no dispatch batch size specified")
	}

	return &parameters, nil
}
