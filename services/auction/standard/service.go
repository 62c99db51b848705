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

// Package standard is the in-memory pool auction registry.
package standard

import (
	"context"
	"math/big"
	"time"

	"github.com/Najnomics/MEVShieldPool-sub001/services/auction"
	"github.com/Najnomics/MEVShieldPool-sub001/services/bidcrypt"
	"github.com/Najnomics/MEVShieldPool-sub001/services/chaintime"
	"github.com/Najnomics/MEVShieldPool-sub001/services/payout"
	"github.com/Najnomics/MEVShieldPool-sub001/services/pricefeed"
	"github.com/Najnomics/MEVShieldPool-sub001/services/shielddb"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	zerologger "github.com/rs/zerolog/log"
	deadlock "github.com/sasha-s/go-deadlock"
	"go.opentelemetry.io/otel"
)

// Service is the pool auction registry.
type Service struct {
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

	pools   map[string]*pool
	poolsMu deadlock.Mutex
}

// module-wide log.
var log zerolog.Logger

// New creates a new pool auction registry.
func New(ctx context.Context, params ...Parameter) (*Service, error) {
	parameters, err := parseAndCheckParameters(params...)
	if err != nil {
		return nil, errors.Wrap(err, "problem with parameters")
	}

	// Set logging.
	log = zerologger.With().Str("service", "auction").Str("impl", "standard").Logger().Level(parameters.logLevel)

	if err := registerMetrics(ctx, parameters.monitor); err != nil {
		return nil, errors.New("failed to register metrics")
	}

	s := &Service{
		chainTime:         parameters.chainTime,
		payoutSink:        parameters.payoutSink,
		seedProvider:      parameters.seedProvider,
		minBid:            new(big.Int).Set(parameters.minBid),
		roundDuration:     parameters.roundDuration,
		bidOracle:         parameters.bidOracle,
		settledHandlers:   parameters.settledHandlers,
		priceProvider:     parameters.priceProvider,
		pricePolicy:       parameters.pricePolicy,
		priceFeedID:       parameters.priceFeedID,
		settlementsSetter: parameters.settlementsSetter,
		pools:             make(map[string]*pool),
	}

	return s, nil
}

// SubmitBid enters a bid for the right to capture MEV on the given pool.
func (s *Service) SubmitBid(ctx context.Context,
	poolKey []byte,
	bidder string,
	amount *big.Int,
) (*auction.BidResult, error) {
	ctx, span := otel.Tracer("mevshieldpool.services.auction.standard").Start(ctx, "SubmitBid")
	defer span.End()

	if len(poolKey) == 0 {
		return nil, errors.New("no pool key specified")
	}
	if bidder == "" {
		return nil, errors.New("no bidder specified")
	}
	if amount == nil {
		return nil, errors.New("no amount specified")
	}

	p := s.pool(poolKey)
	p.mu.Lock()
	defer p.mu.Unlock()

	now := s.chainTime.CurrentTime()
	if err := s.ensureRoundLocked(ctx, p, now); err != nil {
		return nil, err
	}
	r := p.current

	if !now.Before(r.deadline) {
		return nil, auction.ErrRoundExpired
	}
	if amount.Cmp(s.minBid) < 0 {
		return nil, auction.ErrBidTooLow
	}

	log := log.With().Hex("pool_key", poolKey).Uint64("round", r.index).Str("bidder", bidder).Logger()

	if amount.Cmp(r.highestBid) <= 0 {
		// The bid is accepted but does not take the lead; its funds are
		// returned immediately rather than held against a leader that will
		// never be displaced by it.
		refund := &auction.Refund{Bidder: bidder, Amount: new(big.Int).Set(amount)}
		if err := s.payoutSink.Transfer(ctx, refundID(), bidder, refund.Amount); err != nil {
			monitorBidSubmitted("failed")
			return nil, errors.Wrap(err, "failed to return non-competing bid")
		}
		r.bids++
		monitorBidSubmitted("noncompeting")
		log.Trace().Stringer("amount", amount).Msg("Bid did not take the lead")

		return &auction.BidResult{Leader: false, Round: r.index, Refund: refund}, nil
	}

	// Refund the displaced leader before recording the new one; if the
	// refund fails the submission fails and the round is untouched.
	var refund *auction.Refund
	if r.highestBidder != "" {
		refund = &auction.Refund{Bidder: r.highestBidder, Amount: new(big.Int).Set(r.highestBid)}
		if err := s.payoutSink.Transfer(ctx, refundID(), refund.Bidder, refund.Amount); err != nil {
			monitorBidSubmitted("failed")
			return nil, errors.Wrap(err, "failed to refund displaced bidder")
		}
		monitorRefundIssued()
	}

	r.highestBid = new(big.Int).Set(amount)
	r.highestBidder = bidder
	r.bids++
	monitorBidSubmitted("leader")
	log.Trace().Stringer("amount", amount).Msg("Bid took the lead")

	return &auction.BidResult{Leader: true, Round: r.index, Refund: refund}, nil
}

// SubmitSealedBid enters a bid whose amount is sealed by the bid oracle.
func (s *Service) SubmitSealedBid(ctx context.Context,
	poolKey []byte,
	bidder string,
	blob []byte,
	proof []byte,
) (*auction.BidResult, error) {
	ctx, span := otel.Tracer("mevshieldpool.services.auction.standard").Start(ctx, "SubmitSealedBid")
	defer span.End()

	if s.bidOracle == nil {
		return nil, errors.New("no bid oracle configured")
	}

	amount, err := s.bidOracle.Decrypt(ctx, blob, proof)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unseal bid")
	}

	return s.SubmitBid(ctx, poolKey, bidder, amount)
}

// Finalise freezes the current round of the given pool and opens the next.
func (s *Service) Finalise(ctx context.Context, poolKey []byte) (*auction.Settlement, error) {
	ctx, span := otel.Tracer("mevshieldpool.services.auction.standard").Start(ctx, "Finalise")
	defer span.End()

	if len(poolKey) == 0 {
		return nil, errors.New("no pool key specified")
	}

	p := s.pool(poolKey)
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == nil && p.lastSettlement == nil {
		return nil, auction.ErrNoRound
	}

	now := s.chainTime.CurrentTime()
	if p.current != nil && (p.current.hasActivity() || !now.Before(p.current.deadline) || p.lastSettlement == nil) {
		return s.finaliseLocked(ctx, p, now)
	}

	// The current round has seen no activity since the last settlement, so
	// treat this as a duplicate trigger and return the cached result.
	return p.lastSettlement, nil
}

// Round provides a snapshot of the pool's current round.
func (s *Service) Round(_ context.Context, poolKey []byte) (*auction.RoundState, error) {
	if len(poolKey) == 0 {
		return nil, errors.New("no pool key specified")
	}

	s.poolsMu.Lock()
	p, exists := s.pools[string(poolKey)]
	s.poolsMu.Unlock()
	if !exists {
		return nil, auction.ErrNoRound
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return nil, auction.ErrNoRound
	}
	r := p.current

	return &auction.RoundState{
		PoolKey:       append([]byte(nil), poolKey...),
		Round:         r.index,
		HighestBid:    new(big.Int).Set(r.highestBid),
		HighestBidder: r.highestBidder,
		Deadline:      r.deadline,
		Active:        r.active && s.chainTime.CurrentTime().Before(r.deadline),
		Seed:          r.seed,
		MEVCollected:  new(big.Int).Set(r.mevCollected),
	}, nil
}

// pool fetches the auction state for a pool key, creating it if required.
func (s *Service) pool(poolKey []byte) *pool {
	s.poolsMu.Lock()
	defer s.poolsMu.Unlock()

	p, exists := s.pools[string(poolKey)]
	if !exists {
		p = newPool(poolKey)
		s.pools[string(poolKey)] = p
	}

	return p
}

// refundID generates a logical transfer ID for a refund.
func refundID() string {
	return "refund:" + uuid.New().String()
}
