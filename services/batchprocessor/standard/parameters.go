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
	"math/big"

	"github.com/Najnomics/MEVShieldPool-sub001/services/chaintime"
	"github.com/Najnomics/MEVShieldPool-sub001/services/metrics"
	nullmetrics "github.com/Najnomics/MEVShieldPool-sub001/services/metrics/null"
	"github.com/Najnomics/MEVShieldPool-sub001/services/payout"
	"github.com/rs/zerolog"
)

type parameters struct {
	logLevel   zerolog.Level
	monitor    metrics.Service
	chainTime  chaintime.Service
	payoutSink payout.Sink
	minProfit  *big.Int
	maxLanes   int
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

// WithPayoutSink sets the sink paid on successful opportunity execution.
func WithPayoutSink(sink payout.Sink) Parameter {
	return parameterFunc(func(p *parameters) {
		p.payoutSink = sink
	})
}

// WithMinProfit sets the minimum profit potential accepted for processing.
func WithMinProfit(minProfit *big.Int) Parameter {
	return parameterFunc(func(p *parameters) {
		p.minProfit = minProfit
	})
}

// WithMaxLanes sets the maximum number of parallel lanes.
func WithMaxLanes(maxLanes int) Parameter {
	return parameterFunc(func(p *parameters) {
		p.maxLanes = maxLanes
	})
}

// parseAndCheckParameters parses and checks parameters to ensure that mandatory parameters are present and correct.
func parseAndCheckParameters(params ...Parameter) (*parameters, error) {
	parameters := parameters{
		logLevel:  zerolog.GlobalLevel(),
		monitor:   nullmetrics.New(),
		minProfit: new(big.Int),
		maxLanes:  32,
	}
	for _, p := range params {
		if params != nil {
			p.apply(&parameters)
		}
	}

	if parameters.chainTime == nil {
		return nil, errors.New("no chain time specified")
	}
	if parameters.payoutSink == nil {
		return nil, errors.New("no payout sink specified")
	}
	if parameters.minProfit == nil {
		return nil, errors.New("no minimum profit specified")
	}
	if parameters.maxLanes <= 0 {
		return nil, errors.New("no maximum lanes specified")
	}

	return &parameters, nil
}
