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

// Package standard is a distributor that splits captured MEV between the
// liquidity provider pool and the protocol treasury using a basis points
// configuration.
package standard

import (
	"context"
	"fmt"
	"math/big"

	"github.com/Najnomics/MEVShieldPool-sub001/services/auction"
	"github.com/Najnomics/MEVShieldPool-sub001/services/distributor"
	"github.com/Najnomics/MEVShieldPool-sub001/services/payout"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	zerologger "github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
)

// Service is a distributor that splits captured MEV by basis points shares.
type Service struct {
	payoutSink        payout.Sink
	lpShareBps        uint32
	protocolShareBps  uint32
	lpRecipient       string
	treasuryRecipient string
}

// module-wide log.
var log zerolog.Logger

// New creates a new distributor.
func New(ctx context.Context, params ...Parameter) (*Service, error) {
	parameters, err := parseAndCheckParameters(params...)
	if err != nil {
		return nil, errors.Wrap(err, "problem with parameters")
	}

	// Set logging.
	log = zerologger.With().Str("service", "distributor").Str("impl", "standard").Logger()
	if parameters.logLevel != log.GetLevel() {
		log = log.Level(parameters.logLevel)
	}

	if err := registerMetrics(ctx, parameters.monitor); err != nil {
		return nil, errors.Wrap(err, "failed to register metrics")
	}

	s := &Service{
		payoutSink:        parameters.payoutSink,
		lpShareBps:        parameters.lpShareBps,
		protocolShareBps:  parameters.protocolShareBps,
		lpRecipient:       parameters.lpRecipient,
		treasuryRecipient: parameters.treasuryRecipient,
	}

	return s, nil
}

// Distribute splits captured value and instructs the payout sink.
func (s *Service) Distribute(ctx context.Context,
	poolKey []byte,
	round uint64,
	totalCaptured *big.Int,
) (
	*distributor.Distribution,
	error,
) {
	ctx, span := otel.Tracer("mevshieldpool.services.distributor.standard").Start(ctx, "Distribute")
	defer span.End()

	if totalCaptured == nil || totalCaptured.Sign() < 0 {
		return nil, errors.New("invalid captured value")
	}

	lpAmount, protocolAmount := distributor.Split(totalCaptured, s.lpShareBps)
	log.Trace().
		Str("pool_key", fmt.Sprintf("%#x", poolKey)).
		Uint64("round", round).
		Stringer("lp_amount", lpAmount).
		Stringer("protocol_amount", protocolAmount).
		Msg("Calculated distribution")

	// Transfer IDs are deterministic per (pool, round, leg) so that a replayed
	// distribution cannot pay the same leg twice.
	if lpAmount.Sign() > 0 {
		transferID := fmt.Sprintf("distribution:%#x:%d:lp", poolKey, round)
		if err := s.payoutSink.Transfer(ctx, transferID, s.lpRecipient, lpAmount); err != nil {
			monitorDistributionFailed()
			return nil, errors.Wrap(err, "failed to transfer liquidity provider share")
		}
	}
	if protocolAmount.Sign() > 0 {
		transferID := fmt.Sprintf("distribution:%#x:%d:protocol", poolKey, round)
		if err := s.payoutSink.Transfer(ctx, transferID, s.treasuryRecipient, protocolAmount); err != nil {
			monitorDistributionFailed()
			return nil, errors.Wrap(err, "failed to transfer protocol share")
		}
	}

	monitorDistribution(lpAmount, protocolAmount)

	return &distributor.Distribution{
		LPAmount:       lpAmount,
		ProtocolAmount: protocolAmount,
	}, nil
}

// AuctionSettled receives settlement notifications and distributes the captured value.
func (s *Service) AuctionSettled(ctx context.Context, settlement *auction.Settlement) {
	if settlement.MEVCaptured == nil || settlement.MEVCaptured.Sign() == 0 {
		log.Trace().
			Str("pool_key", fmt.Sprintf("%#x", settlement.PoolKey)).
			Uint64("round", settlement.Round).
			Msg("No captured value to distribute")
		return
	}

	if _, err := s.Distribute(ctx, settlement.PoolKey, settlement.Round, settlement.MEVCaptured); err != nil {
		log.Error().
			Err(err).
			Str("pool_key", fmt.Sprintf("%#x", settlement.PoolKey)).
			Uint64("round", settlement.Round).
			Msg("Failed to distribute captured value")
	}
}
