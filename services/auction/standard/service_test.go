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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Najnomics/MEVShieldPool-sub001/services/auction"
	localbidcrypt "github.com/Najnomics/MEVShieldPool-sub001/services/bidcrypt/local"
	ledgerpayout "github.com/Najnomics/MEVShieldPool-sub001/services/payout/ledger"
	"github.com/Najnomics/MEVShieldPool-sub001/services/pricefeed"

	chaintimeMocks "github.com/Najnomics/MEVShieldPool-sub001/mocks/chaintime"
	payoutMocks "github.com/Najnomics/MEVShieldPool-sub001/mocks/payout"
	shielddbMocks "github.com/Najnomics/MEVShieldPool-sub001/mocks/shielddb"
)

// staticPriceProvider provides a fixed price observation.
type staticPriceProvider struct {
	price *pricefeed.Price
	err   error
}

func (p *staticPriceProvider) Price(_ context.Context, _ string) (*pricefeed.Price, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.price, nil
}

// recordingSettledHandler records settlements on a channel.
type recordingSettledHandler struct {
	settlements chan *auction.Settlement
}

func (h *recordingSettledHandler) AuctionSettled(_ context.Context, settlement *auction.Settlement) {
	h.settlements <- settlement
}

// testClock drives the chain time mock from a mutable timestamp.
type testClock struct {
	now time.Time
}

func newTestChainTime(t *testing.T, clock *testClock) *chaintimeMocks.MockService {
	chainTime := chaintimeMocks.NewMockService(t)
	chainTime.EXPECT().CurrentTime().RunAndReturn(func() time.Time {
		return clock.now
	}).Maybe()
	return chainTime
}

func TestSubmitBidLifecycle(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}
	start := clock.now

	payoutSink, err := ledgerpayout.New(ctx)
	require.NoError(t, err)

	svc, err := New(ctx,
		WithChainTime(newTestChainTime(t, clock)),
		WithPayoutSink(payoutSink),
		WithSeedProvider(&staticSeedProvider{seed: [32]byte{1}}),
		WithRoundDuration(300*time.Second),
	)
	require.NoError(t, err)

	poolKey := []byte{0xde, 0xad, 0xbe, 0xef}

	// First bid opens the round and takes the lead.
	result, err := svc.SubmitBid(ctx, poolKey, "bidderA", big.NewInt(100))
	require.NoError(t, err)
	require.True(t, result.Leader)
	require.Equal(t, uint64(0), result.Round)
	require.Nil(t, result.Refund)

	// A lower bid is accepted but refunded immediately.
	result, err = svc.SubmitBid(ctx, poolKey, "bidderB", big.NewInt(50))
	require.NoError(t, err)
	require.False(t, result.Leader)
	require.NotNil(t, result.Refund)
	require.Equal(t, "bidderB", result.Refund.Bidder)
	require.Equal(t, big.NewInt(50), result.Refund.Amount)
	require.Equal(t, big.NewInt(50), payoutSink.Balance("bidderB"))

	// A higher bid displaces the leader, refunding its stake.
	result, err = svc.SubmitBid(ctx, poolKey, "bidderC", big.NewInt(200))
	require.NoError(t, err)
	require.True(t, result.Leader)
	require.NotNil(t, result.Refund)
	require.Equal(t, "bidderA", result.Refund.Bidder)
	require.Equal(t, big.NewInt(100), result.Refund.Amount)
	require.Equal(t, big.NewInt(100), payoutSink.Balance("bidderA"))

	// A bid after the deadline is rejected.
	clock.now = start.Add(301 * time.Second)
	_, err = svc.SubmitBid(ctx, poolKey, "bidderD", big.NewInt(300))
	require.ErrorIs(t, err, auction.ErrRoundExpired)

	// Finalisation freezes the round with the highest bidder as winner.
	settlement, err := svc.Finalise(ctx, poolKey)
	require.NoError(t, err)
	require.Equal(t, uint64(0), settlement.Round)
	require.Equal(t, "bidderC", settlement.Winner)
	require.Equal(t, big.NewInt(200), settlement.Amount)

	// The next round is open for bidding.
	state, err := svc.Round(ctx, poolKey)
	require.NoError(t, err)
	require.Equal(t, uint64(1), state.Round)
	require.True(t, state.Active)
	require.Equal(t, 0, state.HighestBid.Sign())
}

func TestSubmitBidBelowMinimum(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}

	payoutSink, err := ledgerpayout.New(ctx)
	require.NoError(t, err)

	svc, err := New(ctx,
		WithChainTime(newTestChainTime(t, clock)),
		WithPayoutSink(payoutSink),
		WithSeedProvider(&staticSeedProvider{}),
		WithRoundDuration(300*time.Second),
		WithMinBid(big.NewInt(10)),
	)
	require.NoError(t, err)

	_, err = svc.SubmitBid(ctx, []byte{0x01}, "bidder", big.NewInt(5))
	require.ErrorIs(t, err, auction.ErrBidTooLow)
}

func TestSubmitBidRefundFailureLeavesRoundUntouched(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}

	payoutSink := payoutMocks.NewMockSink(t)
	payoutSink.EXPECT().Transfer(mock.Anything, mock.Anything, "bidderA", big.NewInt(100)).Return(assert.AnError).Once()

	svc, err := New(ctx,
		WithChainTime(newTestChainTime(t, clock)),
		WithPayoutSink(payoutSink),
		WithSeedProvider(&staticSeedProvider{}),
		WithRoundDuration(300*time.Second),
	)
	require.NoError(t, err)

	poolKey := []byte{0x01}
	_, err = svc.SubmitBid(ctx, poolKey, "bidderA", big.NewInt(100))
	require.NoError(t, err)

	// The displacing bid fails because the refund cannot be issued.
	_, err = svc.SubmitBid(ctx, poolKey, "bidderB", big.NewInt(200))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to refund displaced bidder")

	state, err := svc.Round(ctx, poolKey)
	require.NoError(t, err)
	require.Equal(t, "bidderA", state.HighestBidder)
	require.Equal(t, big.NewInt(100), state.HighestBid)
}

func TestFinaliseWithoutRound(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}

	payoutSink, err := ledgerpayout.New(ctx)
	require.NoError(t, err)

	svc, err := New(ctx,
		WithChainTime(newTestChainTime(t, clock)),
		WithPayoutSink(payoutSink),
		WithSeedProvider(&staticSeedProvider{}),
		WithRoundDuration(300*time.Second),
	)
	require.NoError(t, err)

	_, err = svc.Finalise(ctx, []byte{0x01})
	require.ErrorIs(t, err, auction.ErrNoRound)
}

func TestFinaliseIdempotent(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}

	payoutSink, err := ledgerpayout.New(ctx)
	require.NoError(t, err)

	svc, err := New(ctx,
		WithChainTime(newTestChainTime(t, clock)),
		WithPayoutSink(payoutSink),
		WithSeedProvider(&staticSeedProvider{}),
		WithRoundDuration(300*time.Second),
	)
	require.NoError(t, err)

	poolKey := []byte{0x01}
	_, err = svc.SubmitBid(ctx, poolKey, "bidder", big.NewInt(100))
	require.NoError(t, err)

	first, err := svc.Finalise(ctx, poolKey)
	require.NoError(t, err)

	// A second trigger before the new round sees activity returns the cached
	// settlement rather than settling an empty round.
	second, err := svc.Finalise(ctx, poolKey)
	require.NoError(t, err)
	require.Equal(t, first, second)

	state, err := svc.Round(ctx, poolKey)
	require.NoError(t, err)
	require.Equal(t, uint64(1), state.Round)
}

func TestFinaliseNotifiesSettledHandlers(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}

	payoutSink, err := ledgerpayout.New(ctx)
	require.NoError(t, err)

	handler := &recordingSettledHandler{settlements: make(chan *auction.Settlement, 1)}

	svc, err := New(ctx,
		WithChainTime(newTestChainTime(t, clock)),
		WithPayoutSink(payoutSink),
		WithSeedProvider(&staticSeedProvider{}),
		WithRoundDuration(300*time.Second),
		WithSettledHandlers([]auction.SettledHandler{handler}),
	)
	require.NoError(t, err)

	poolKey := []byte{0x01}
	_, err = svc.SubmitBid(ctx, poolKey, "bidder", big.NewInt(100))
	require.NoError(t, err)

	_, err = svc.Finalise(ctx, poolKey)
	require.NoError(t, err)

	select {
	case settlement := <-handler.settlements:
		require.Equal(t, "bidder", settlement.Winner)
		require.Equal(t, big.NewInt(100), settlement.Amount)
	case <-time.After(time.Second):
		t.Fatal("settled handler not notified")
	}
}

func TestFinalisePersistsSettlement(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}

	payoutSink, err := ledgerpayout.New(ctx)
	require.NoError(t, err)

	setter := shielddbMocks.NewMockSettlementsSetter(t)
	setter.EXPECT().BeginTx(mock.Anything).Return(ctx, context.CancelFunc(func() {}), nil).Once()
	setter.EXPECT().SetSettlement(mock.Anything, mock.Anything).Return(nil).Once()
	setter.EXPECT().CommitTx(mock.Anything).Return(nil).Once()

	svc, err := New(ctx,
		WithChainTime(newTestChainTime(t, clock)),
		WithPayoutSink(payoutSink),
		WithSeedProvider(&staticSeedProvider{}),
		WithRoundDuration(300*time.Second),
		WithSettlementsSetter(setter),
	)
	require.NoError(t, err)

	poolKey := []byte{0x01}
	_, err = svc.SubmitBid(ctx, poolKey, "bidder", big.NewInt(100))
	require.NoError(t, err)

	_, err = svc.Finalise(ctx, poolKey)
	require.NoError(t, err)
}

func TestFinalisePersistFailureLeavesRoundOpen(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}

	payoutSink, err := ledgerpayout.New(ctx)
	require.NoError(t, err)

	setter := shielddbMocks.NewMockSettlementsSetter(t)
	setter.EXPECT().BeginTx(mock.Anything).Return(ctx, nil, assert.AnError).Once()

	svc, err := New(ctx,
		WithChainTime(newTestChainTime(t, clock)),
		WithPayoutSink(payoutSink),
		WithSeedProvider(&staticSeedProvider{}),
		WithRoundDuration(300*time.Second),
		WithSettlementsSetter(setter),
	)
	require.NoError(t, err)

	poolKey := []byte{0x01}
	_, err = svc.SubmitBid(ctx, poolKey, "bidder", big.NewInt(100))
	require.NoError(t, err)

	_, err = svc.Finalise(ctx, poolKey)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to store settlement")

	// The round is untouched; the bid still leads.
	state, err := svc.Round(ctx, poolKey)
	require.NoError(t, err)
	require.Equal(t, uint64(0), state.Round)
	require.Equal(t, "bidder", state.HighestBidder)
}

func TestIndependentPools(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}

	payoutSink, err := ledgerpayout.New(ctx)
	require.NoError(t, err)

	svc, err := New(ctx,
		WithChainTime(newTestChainTime(t, clock)),
		WithPayoutSink(payoutSink),
		WithSeedProvider(&staticSeedProvider{}),
		WithRoundDuration(300*time.Second),
	)
	require.NoError(t, err)

	_, err = svc.SubmitBid(ctx, []byte{0x01}, "bidderA", big.NewInt(100))
	require.NoError(t, err)
	_, err = svc.SubmitBid(ctx, []byte{0x02}, "bidderB", big.NewInt(50))
	require.NoError(t, err)

	stateA, err := svc.Round(ctx, []byte{0x01})
	require.NoError(t, err)
	stateB, err := svc.Round(ctx, []byte{0x02})
	require.NoError(t, err)
	require.Equal(t, "bidderA", stateA.HighestBidder)
	require.Equal(t, "bidderB", stateB.HighestBidder)
}

func TestSubmitSealedBid(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}

	payoutSink, err := ledgerpayout.New(ctx)
	require.NoError(t, err)

	oracle, err := localbidcrypt.New(ctx, localbidcrypt.WithSecret([]byte("oracle secret")))
	require.NoError(t, err)

	svc, err := New(ctx,
		WithChainTime(newTestChainTime(t, clock)),
		WithPayoutSink(payoutSink),
		WithSeedProvider(&staticSeedProvider{}),
		WithRoundDuration(300*time.Second),
		WithBidOracle(oracle),
	)
	require.NoError(t, err)

	poolKey := []byte{0x01}
	blob, err := oracle.Encrypt(ctx, poolKey, big.NewInt(100), nil)
	require.NoError(t, err)

	result, err := svc.SubmitSealedBid(ctx, poolKey, "bidderA", blob, nil)
	require.NoError(t, err)
	require.True(t, result.Leader)

	state, err := svc.Round(ctx, poolKey)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(100), state.HighestBid)
	require.Equal(t, "bidderA", state.HighestBidder)
}

func TestSubmitSealedBidWithoutOracle(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}

	payoutSink, err := ledgerpayout.New(ctx)
	require.NoError(t, err)

	svc, err := New(ctx,
		WithChainTime(newTestChainTime(t, clock)),
		WithPayoutSink(payoutSink),
		WithSeedProvider(&staticSeedProvider{}),
		WithRoundDuration(300*time.Second),
	)
	require.NoError(t, err)

	_, err = svc.SubmitSealedBid(ctx, []byte{0x01}, "bidderA", []byte{0x00}, nil)
	require.EqualError(t, err, "no bid oracle configured")
}
