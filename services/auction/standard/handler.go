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

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
)

// OnBeforeTrade ensures the pool has a live round before a trade executes.
// An expired round is finalised and the next one opened here, so the trade
// always observes a fresh, valid round without relying on an external keeper.
func (s *Service) OnBeforeTrade(ctx context.Context, poolKey []byte) error {
	ctx, span := otel.Tracer("mevshieldpool.services.auction.standard").Start(ctx, "OnBeforeTrade")
	defer span.End()

	if len(poolKey) == 0 {
		return errors.New("no pool key specified")
	}

	p := s.pool(poolKey)
	p.mu.Lock()
	defer p.mu.Unlock()

	now := s.chainTime.CurrentTime()
	if err := s.ensureRoundLocked(ctx, p, now); err != nil {
		return err
	}

	if !now.Before(p.current.deadline) {
		if _, err := s.finaliseLocked(ctx, p, now); err != nil {
			return errors.Wrap(err, "failed to roll over expired round")
		}
	}

	return nil
}

// OnAfterTrade accrues value captured by an executed trade to the round
// active at trade time.
func (s *Service) OnAfterTrade(ctx context.Context, poolKey []byte, capturedValue *big.Int) error {
	ctx, span := otel.Tracer("mevshieldpool.services.auction.standard").Start(ctx, "OnAfterTrade")
	defer span.End()

	if len(poolKey) == 0 {
		return errors.New("no pool key specified")
	}
	if capturedValue == nil || capturedValue.Sign() < 0 {
		return errors.New("invalid captured value")
	}

	if s.priceProvider != nil {
		if err := s.checkPrice(ctx); err != nil {
			monitorCapturedValueRejected()
			log.Warn().Hex("pool_key", poolKey).Err(err).Msg("Price check failed; captured value not accrued")
			return errors.Wrap(err, "price check failed")
		}
	}

	p := s.pool(poolKey)
	p.mu.Lock()
	defer p.mu.Unlock()

	now := s.chainTime.CurrentTime()
	if err := s.ensureRoundLocked(ctx, p, now); err != nil {
		return err
	}

	p.current.mevCollected.Add(p.current.mevCollected, capturedValue)
	monitorMEVCaptured(capturedValue)
	log.Trace().Hex("pool_key", poolKey).Uint64("round", p.current.index).Stringer("captured", capturedValue).Msg("Accrued captured value")

	return nil
}

// checkPrice confirms the configured feed is fresh and confident enough for
// captured value to be accrued.
func (s *Service) checkPrice(ctx context.Context) error {
	price, err := s.priceProvider.Price(ctx, s.priceFeedID)
	if err != nil {
		return errors.Wrap(err, "failed to obtain price")
	}
	if s.pricePolicy == nil {
		return nil
	}

	return s.pricePolicy.Check(price, s.chainTime.CurrentTime())
}
