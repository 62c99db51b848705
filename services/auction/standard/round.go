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
	"time"

	"github.com/Najnomics/MEVShieldPool-sub001/services/auction"
	"github.com/Najnomics/MEVShieldPool-sub001/services/shielddb"
	"github.com/pkg/errors"
	deadlock "github.com/sasha-s/go-deadlock"
)

// pool is the auction state for a single pool key.  All operations on a pool
// are serialised by its mutex; distinct pools are fully independent.
type pool struct {
	mu             deadlock.Mutex
	key            []byte
	current        *round
	lastSettlement *auction.Settlement
	nextIndex      uint64
}

// round is a single timed auction over a pool.
type round struct {
	index         uint64
	highestBid    *big.Int
	highestBidder string
	deadline      time.Time
	seed          [32]byte
	mevCollected  *big.Int
	active        bool
	bids          int
}

func newPool(key []byte) *pool {
	return &pool{
		key: append([]byte(nil), key...),
	}
}

// hasActivity reports whether the round has seen bids or captured value.
func (r *round) hasActivity() bool {
	return r.bids > 0 || r.mevCollected.Sign() > 0
}

// ensureRoundLocked opens a round for the pool if none exists.
// The pool mutex must be held.
func (s *Service) ensureRoundLocked(ctx context.Context, p *pool, now time.Time) error {
	if p.current != nil {
		return nil
	}

	seed, err := s.seedProvider.Seed(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to obtain round seed")
	}

	p.current = &round{
		index:        p.nextIndex,
		highestBid:   new(big.Int),
		deadline:     now.Add(s.roundDuration),
		seed:         seed,
		mevCollected: new(big.Int),
		active:       true,
	}
	p.nextIndex++
	monitorRoundOpened()
	log.Trace().Hex("pool_key", p.key).Uint64("round", p.current.index).Time("deadline", p.current.deadline).Msg("Opened round")

	return nil
}

// finaliseLocked settles the pool's current round and opens the next one.
// The pool mutex must be held.  The settlement and the rollover are a single
// step: the seed for the next round is fetched and the settlement persisted
// before any state changes, so a failure leaves the round untouched.
func (s *Service) finaliseLocked(ctx context.Context, p *pool, now time.Time) (*auction.Settlement, error) {
	if p.current == nil {
		return nil, auction.ErrNoRound
	}
	r := p.current

	seed, err := s.seedProvider.Seed(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to obtain seed for next round")
	}

	settlement := &auction.Settlement{
		PoolKey:     append([]byte(nil), p.key...),
		Round:       r.index,
		Winner:      r.highestBidder,
		Amount:      new(big.Int).Set(r.highestBid),
		MEVCaptured: new(big.Int).Set(r.mevCollected),
		FinalisedAt: now,
	}

	if s.settlementsSetter != nil {
		if err := s.storeSettlement(ctx, settlement); err != nil {
			return nil, errors.Wrap(err, "failed to store settlement")
		}
	}

	r.active = false
	p.lastSettlement = settlement
	p.current = &round{
		index:        p.nextIndex,
		highestBid:   new(big.Int),
		deadline:     now.Add(s.roundDuration),
		seed:         seed,
		mevCollected: new(big.Int),
		active:       true,
	}
	p.nextIndex++

	monitorRoundFinalised()
	monitorRoundOpened()
	log.Trace().
		Hex("pool_key", p.key).
		Uint64("round", settlement.Round).
		Str("winner", settlement.Winner).
		Stringer("amount", settlement.Amount).
		Stringer("mev_captured", settlement.MEVCaptured).
		Msg("Finalised round")

	for _, handler := range s.settledHandlers {
		log.Trace().Uint64("round", settlement.Round).Msg("Notifying handler")
		go handler.AuctionSettled(ctx, settlement)
	}

	return settlement, nil
}

// storeSettlement persists a settlement in its own transaction.
func (s *Service) storeSettlement(ctx context.Context, settlement *auction.Settlement) error {
	ctx, cancel, err := s.settlementsSetter.BeginTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}

	if err := s.settlementsSetter.SetSettlement(ctx, &shielddb.Settlement{
		PoolKey:     settlement.PoolKey,
		Round:       settlement.Round,
		Winner:      settlement.Winner,
		Amount:      settlement.Amount,
		MEVCaptured: settlement.MEVCaptured,
		FinalisedAt: settlement.FinalisedAt,
	}); err != nil {
		cancel()
		return errors.Wrap(err, "failed to set settlement")
	}

	if err := s.settlementsSetter.CommitTx(ctx); err != nil {
		cancel()
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
