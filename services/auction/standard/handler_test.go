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

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Najnomics/MEVShieldPool-sub001/services/pricefeed"
	ledgerpayout "github.com/Najnomics/MEVShieldPool-sub001/services/payout/ledger"
)

func TestOnBeforeTradeOpensRound(t *testing.T) {
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
	require.NoError(t, svc.OnBeforeTrade(ctx, poolKey))

	state, err := svc.Round(ctx, poolKey)
	require.NoError(t, err)
	require.Equal(t, uint64(0), state.Round)
	require.True(t, state.Active)
}

func TestOnBeforeTradeRollsOverExpiredRound(t *testing.T) {
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

	clock.now = clock.now.Add(301 * time.Second)
	require.NoError(t, svc.OnBeforeTrade(ctx, poolKey))

	state, err := svc.Round(ctx, poolKey)
	require.NoError(t, err)
	require.Equal(t, uint64(1), state.Round)
	require.True(t, state.Active)
}

func TestOnAfterTradeAccruesCapturedValue(t *testing.T) {
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
	require.NoError(t, svc.OnAfterTrade(ctx, poolKey, big.NewInt(30)))
	require.NoError(t, svc.OnAfterTrade(ctx, poolKey, big.NewInt(12)))

	state, err := svc.Round(ctx, poolKey)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(42), state.MEVCollected)

	settlement, err := svc.Finalise(ctx, poolKey)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(42), settlement.MEVCaptured)
}

func TestOnAfterTradeRejectsNegativeValue(t *testing.T) {
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

	require.Error(t, svc.OnAfterTrade(ctx, []byte{0x01}, big.NewInt(-1)))
	require.Error(t, svc.OnAfterTrade(ctx, []byte{0x01}, nil))
}

func TestOnAfterTradeStalePriceRejected(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}

	payoutSink, err := ledgerpayout.New(ctx)
	require.NoError(t, err)

	provider := &staticPriceProvider{price: &pricefeed.Price{
		FeedID:      "eth-usd",
		Value:       decimal.NewFromInt(3000),
		PublishedAt: clock.now.Add(-time.Hour),
	}}

	svc, err := New(ctx,
		WithChainTime(newTestChainTime(t, clock)),
		WithPayoutSink(payoutSink),
		WithSeedProvider(&staticSeedProvider{}),
		WithRoundDuration(300*time.Second),
		WithPriceProvider(provider),
		WithPriceFeedID("eth-usd"),
		WithPricePolicy(&pricefeed.Policy{MaxAge: time.Minute}),
	)
	require.NoError(t, err)

	err = svc.OnAfterTrade(ctx, []byte{0x01}, big.NewInt(10))
	require.ErrorIs(t, err, pricefeed.ErrStalePrice)

	// A fresh price is accepted.
	provider.price.PublishedAt = clock.now
	require.NoError(t, svc.OnAfterTrade(ctx, []byte{0x01}, big.NewInt(10)))
}
