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
	"time"

	"github.com/Najnomics/MEVShieldPool-sub001/services/auction"
	"github.com/Najnomics/MEVShieldPool-sub001/services/bidcrypt"
	"github.com/Najnomics/MEVShieldPool-sub001/services/chaintime"
	"github.com/Najnomics/MEVShieldPool-sub001/services/metrics"
	"github.com/Najnomics/MEVShieldPool-sub001/services/payout"
	"github.com/Najnomics/MEVShieldPool-sub001/services/pricefeed"
	"github.com/Najnomics/MEVShieldPool-sub001/services/shielddb"
	"github.com/rs/zerolog"
)

type parameters struct {
	logLevel          zerolog.Level
	monitor           metrics.Service
	chainTime         chaintime.Service
	payoutSink        payout.Sink
	seedProvider      auction.SeedProvider
	minBid            *big.Int
	roundDuration     time.Duration
	bidOracle         bidcrypt.Oracle
	settledHandlers   []auction.SettledHandler
	priceProvider     pricefeed.Provider
	pricePolicy       *pricefeed.Policy
	priceFeedID       string
	settlementsSetter shielddb.SettlementsSetter
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
func WithChainTime(service chaintime.Service) Parameter {
	return parameterFunc(func(p *parameters) {
		p.chainTime = service
	})
}

// WithPayoutSink sets the sink through which refunds are issued.
func WithPayoutSink(sink payout.Sink) Parameter {
	return parameterFunc(func(p *parameters) {
		p.payoutSink = sink
	})
}

// WithSeedProvider sets the provider for round seed material.
func WithSeedProvider(provider auction.SeedProvider) Parameter {
	return parameterFunc(func(p *parameters) {
		p.seedProvider = provider
	})
}

// WithMinBid sets the bid floor for the module.
func WithMinBid(minBid *big.Int) Parameter {
	return parameterFunc(func(p *parameters) {
		p.minBid = minBid
	})
}

// WithRoundDuration sets the duration of each auction round.
func WithRoundDuration(roundDuration time.Duration) Parameter {
	return parameterFunc(func(p *parameters) {
		p.roundDuration = roundDuration
	})
}

// WithBidOracle sets the oracle that unseals sealed bids.
func WithBidOracle(oracle bidcrypt.Oracle) Parameter {
	return parameterFunc(func(p *parameters) {
		p.bidOracle = oracle
	})
}

// WithSettledHandlers sets the handlers notified of settled rounds.
func WithSettledHandlers(handlers []auction.SettledHandler) Parameter {
	return parameterFunc(func(p *parameters) {
		p.settledHandlers = handlers
	})
}

// WithPriceProvider sets the price feed provider gating captured value.
func WithPriceProvider(provider pricefeed.Provider) Parameter {
	return parameterFunc(func(p *parameters) {
		p.priceProvider = provider
	})
}

// WithPricePolicy sets the acceptance policy for prices.
func WithPricePolicy(policy *pricefeed.Policy) Parameter {
	return parameterFunc(func(p *parameters) {
		p.pricePolicy = policy
	})
}

// WithPriceFeedID sets the feed consulted before accruing captured value.
func WithPriceFeedID(feedID string) Parameter {
	return parameterFunc(func(p *parameters) {
		p.priceFeedID = feedID
	})
}

// WithSettlementsSetter sets the setter for persisting settlements.
func WithSettlementsSetter(setter shielddb.SettlementsSetter) Parameter {
	return parameterFunc(func(p *parameters) {
		p.settlementsSetter = setter
	})
}

// parseAndCheckParameters parses and checks parameters to ensure that mandatory parameters are present and correct.
func parseAndCheckParameters(params ...Parameter) (*parameters, error) {
	parameters := parameters{
		logLevel: zerolog.GlobalLevel(),
		minBid:   new(big.Int),
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
	if parameters.seedProvider == nil {
		return nil, errors.New("no seed provider specified")
	}
	if parameters.minBid == nil || parameters.minBid.Sign() < 0 {
		return nil, errors.New("invalid minimum bid")
	}
	if parameters.roundDuration == 0 {
		return nil, errors.New("no round duration specified")
	}
	if parameters.priceProvider != nil && parameters.priceFeedID == "" {
		return nil, errors.New("no price feed ID specified")
	}

	return &parameters, nil
}
