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

// Package auction provides per-pool block auction services.
package auction

import (
	"context"
	"math/big"
	"time"

	"github.com/pkg/errors"
)

// ErrBidTooLow is returned when a bid is below the configured floor.
// Resubmitting the same amount will never succeed.
var ErrBidTooLow = errors.New("bid below minimum")

// ErrRoundExpired is returned when a bid arrives at or after the round deadline.
// The caller should trigger finalisation and bid into the next round.
var ErrRoundExpired = errors.New("round expired")

// ErrNoRound is returned when an operation requires a round that has never been opened.
var ErrNoRound = errors.New("no round for pool")

// Refund describes funds returned to a bidder.
type Refund struct {
	// Bidder is the identity receiving the refund.
	Bidder string
	// Amount is the amount returned.
	Amount *big.Int
}

// BidResult is the outcome of an accepted bid submission.
type BidResult struct {
	// Leader is true if the bid became the round leader.
	Leader bool
	// Round is the index of the round the bid was entered into.
	Round uint64
	// Refund is the refund issued as part of the submission: the displaced
	// leader's stake when the bid took the lead, or the bid itself when it
	// did not.  Nil for the first bid of a round.
	Refund *Refund
}

// RoundState is a point-in-time snapshot of a pool's auction round.
type RoundState struct {
	PoolKey       []byte
	Round         uint64
	HighestBid    *big.Int
	HighestBidder string
	Deadline      time.Time
	Active        bool
	Seed          [32]byte
	MEVCollected  *big.Int
}

// Settlement is the frozen result of a finalised auction round.
type Settlement struct {
	PoolKey     []byte
	Round       uint64
	Winner      string
	Amount      *big.Int
	MEVCaptured *big.Int
	FinalisedAt time.Time
}

// Service is the interface for the pool auction registry.
type Service interface {
	// SubmitBid enters a bid for the right to capture MEV on the given pool.
	// A bid that does not beat the current highest is accepted without taking
	// the lead, and its funds are returned immediately.
	SubmitBid(ctx context.Context, poolKey []byte, bidder string, amount *big.Int) (*BidResult, error)

	// SubmitSealedBid enters a bid whose amount is sealed by the bid oracle.
	// Once unsealed the amount is treated identically to a plaintext bid.
	SubmitSealedBid(ctx context.Context, poolKey []byte, bidder string, blob []byte, proof []byte) (*BidResult, error)

	// Finalise freezes the current round of the given pool and opens the next.
	// Calling it again before the new round has seen activity returns the
	// cached settlement rather than settling twice.
	Finalise(ctx context.Context, poolKey []byte) (*Settlement, error)

	// Round provides a snapshot of the pool's current round.
	Round(ctx context.Context, poolKey []byte) (*RoundState, error)
}

// TradeHandler receives the trade-intent signals from the surrounding market system.
type TradeHandler interface {
	// OnBeforeTrade ensures the pool has a live round before a trade executes,
	// finalising and reopening an expired one if necessary.
	OnBeforeTrade(ctx context.Context, poolKey []byte) error

	// OnAfterTrade accrues value captured by an executed trade to the round
	// active at trade time.
	OnAfterTrade(ctx context.Context, poolKey []byte, capturedValue *big.Int) error
}

// SettledHandler is the interface for handlers of settled auction rounds.
type SettledHandler interface {
	// AuctionSettled is called when a round has been finalised.
	AuctionSettled(ctx context.Context, settlement *Settlement)
}

// SeedProvider provides unpredictable seed material for round creation.
type SeedProvider interface {
	// Seed provides seed material derived from the latest chain state.
	Seed(ctx context.Context) ([32]byte, error)
}
