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

	"github.com/Najnomics/MEVShieldPool-sub001/services/metrics"
	nullmetrics "github.com/Najnomics/MEVShieldPool-sub001/services/metrics/null"
	"github.com/Najnomics/MEVShieldPool-sub001/services/payout"
	"github.com/rs/zerolog"
)

type parameters struct {
	logLevel          zerolog.Level
	monitor           metrics.Service
	payoutSink        payout.Sink
	lpShareBps        uint32
	protocolShareBps  uint32
	lpRecipient       string
	treasuryRecipient string
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

// WithPayoutSink sets the payout sink for distributions.
func WithPayoutSink(sink payout.Sink) Parameter {
	return parameterFunc(func(p *parameters) {
		p.payoutSink = sink
	})
}

// WithLPShareBps sets the liquidity provider share in basis points.
func WithLPShareBps(bps uint32) Parameter {
	return parameterFunc(func(p *parameters) {
		p.lpShareBps = bps
	})
}

// WithProtocolShareBps sets the protocol treasury share in basis points.
func WithProtocolShareBps(bps uint32) Parameter {
	return parameterFunc(func(p *parameters) {
		p.protocolShareBps = bps
	})
}

// WithLPRecipient sets the recipient account for the liquidity provider share.
func WithLPRecipient(recipient string) Parameter {
	return parameterFunc(func(p *parameters) {
		p.lpRecipient = recipient
	})
}

// WithTreasuryRecipient sets the recipient account for the protocol share.
func WithTreasuryRecipient(recipient string) Parameter {
	return parameterFunc(func(p *parameters) {
		p.treasuryRecipient = recipient
	})
}

// parseAndCheckParameters parses and checks parameters to ensure that mandatory parameters are present and correct.
func parseAndCheckParameters(params ...Parameter) (*parameters, error) {
	parameters := parameters{
		logLevel: zerolog.GlobalLevel(),
		monitor:  nullmetrics.New(),
	}
	for _, p := range params {
		if params != nil {
			p.apply(&parameters)
		}
	}

	if parameters.payoutSink == nil {
		return nil, errors.New("no payout sink specified")
	}
	if parameters.lpShareBps+parameters.protocolShareBps != 10000 {
		return nil, errors.New("shares do not sum to 10000 basis points")
	}
	if parameters.lpRecipient == "" {
		return nil, errors.New("no liquidity provider recipient specified")
	}
	if parameters.treasuryRecipient == "" {
		return nil, errors.New("no treasury recipient specified")
	}

	return &parameters, nil
}
