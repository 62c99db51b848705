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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Najnomics/MEVShieldPool-sub001/services/auction"
	"github.com/Najnomics/MEVShieldPool-sub001/services/distributor"
	ledgerpayout "github.com/Najnomics/MEVShieldPool-sub001/services/payout/ledger"

	payoutMocks "github.com/Najnomics/MEVShieldPool-sub001/mocks/payout"
)

func newTestService(t *testing.T, sink *ledgerpayout.Service) *Service {
	ctx := context.Background()

	svc, err := New(ctx,
		WithPayoutSink(sink),
		WithLPShareBps(9000),
		WithProtocolShareBps(1000),
		WithLPRecipient("lp-pool"),
		WithTreasuryRecipient("treasury"),
	)
	require.NoError(t, err)

	return svc
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		lpShareBps uint32
		lp         int64
		protocol   int64
	}{
		{name: "EvenSplit", total: 100, lpShareBps: 9000, lp: 90, protocol: 10},
		{name: "RemainderToProtocol", total: 101, lpShareBps: 9000, lp: 90, protocol: 11},
		{name: "Zero", total: 0, lpShareBps: 9000, lp: 0, protocol: 0},
		{name: "AllLP", total: 100, lpShareBps: 10000, lp: 100, protocol: 0},
		{name: "AllProtocol", total: 100, lpShareBps: 0, lp: 0, protocol: 100},
		{name: "SmallValue", total: 3, lpShareBps: 9000, lp: 2, protocol: 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			lp, protocol := distributor.Split(big.NewInt(test.total), test.lpShareBps)
			require.Equal(t, big.NewInt(test.lp), lp)
			require.Equal(t, big.NewInt(test.protocol), protocol)
			// No value is lost to rounding.
			require.Equal(t, big.NewInt(test.total), new(big.Int).Add(lp, protocol))
		})
	}
}

func TestDistribute(t *testing.T) {
	ctx := context.Background()

	payoutSink, err := ledgerpayout.New(ctx)
	require.NoError(t, err)
	svc := newTestService(t, payoutSink)

	distribution, err := svc.Distribute(ctx, []byte{0x01}, 7, big.NewInt(100))
	require.NoError(t, err)
	require.Equal(t, big.NewInt(90), distribution.LPAmount)
	require.Equal(t, big.NewInt(10), distribution.ProtocolAmount)
	require.Equal(t, big.NewInt(90), payoutSink.Balance("lp-pool"))
	require.Equal(t, big.NewInt(10), payoutSink.Balance("treasury"))
}

func TestDistributeInvalidValue(t *testing.T) {
	ctx := context.Background()

	payoutSink, err := ledgerpayout.New(ctx)
	require.NoError(t, err)
	svc := newTestService(t, payoutSink)

	_, err = svc.Distribute(ctx, []byte{0x01}, 7, nil)
	require.EqualError(t, err, "invalid captured value")

	_, err = svc.Distribute(ctx, []byte{0x01}, 7, big.NewInt(-1))
	require.EqualError(t, err, "invalid captured value")
}

func TestDistributeReplayIsIdempotent(t *testing.T) {
	ctx := context.Background()

	payoutSink, err := ledgerpayout.New(ctx)
	require.NoError(t, err)
	svc := newTestService(t, payoutSink)

	_, err = svc.Distribute(ctx, []byte{0x01}, 7, big.NewInt(100))
	require.NoError(t, err)
	_, err = svc.Distribute(ctx, []byte{0x01}, 7, big.NewInt(100))
	require.NoError(t, err)

	// The ledger applied each leg once.
	require.Equal(t, big.NewInt(90), payoutSink.Balance("lp-pool"))
	require.Equal(t, big.NewInt(10), payoutSink.Balance("treasury"))
	require.Equal(t, 2, payoutSink.Transfers())
}

func TestDistributeSkipsZeroLegs(t *testing.T) {
	ctx := context.Background()

	payoutSink := payoutMocks.NewMockSink(t)
	payoutSink.EXPECT().Transfer(mock.Anything, "distribution:0x01:7:protocol", "treasury", big.NewInt(1)).Return(nil).Once()

	svc, err := New(ctx,
		WithPayoutSink(payoutSink),
		WithLPShareBps(9000),
		WithProtocolShareBps(1000),
		WithLPRecipient("lp-pool"),
		WithTreasuryRecipient("treasury"),
	)
	require.NoError(t, err)

	// 1 at 9000 bps rounds the LP leg to zero; only the protocol leg transfers.
	distribution, err := svc.Distribute(ctx, []byte{0x01}, 7, big.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, 0, distribution.LPAmount.Sign())
	require.Equal(t, big.NewInt(1), distribution.ProtocolAmount)
}

func TestDistributeTransferFailure(t *testing.T) {
	ctx := context.Background()

	payoutSink := payoutMocks.NewMockSink(t)
	payoutSink.EXPECT().Transfer(mock.Anything, mock.Anything, "lp-pool", mock.Anything).Return(assert.AnError).Once()

	svc, err := New(ctx,
		WithPayoutSink(payoutSink),
		WithLPShareBps(9000),
		WithProtocolShareBps(1000),
		WithLPRecipient("lp-pool"),
		WithTreasuryRecipient("treasury"),
	)
	require.NoError(t, err)

	_, err = svc.Distribute(ctx, []byte{0x01}, 7, big.NewInt(100))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to transfer liquidity provider share")
}

func TestAuctionSettled(t *testing.T) {
	ctx := context.Background()

	payoutSink, err := ledgerpayout.New(ctx)
	require.NoError(t, err)
	svc := newTestService(t, payoutSink)

	svc.AuctionSettled(ctx, &auction.Settlement{
		PoolKey:     []byte{0x01},
		Round:       3,
		MEVCaptured: big.NewInt(1000),
	})
	require.Equal(t, big.NewInt(900), payoutSink.Balance("lp-pool"))
	require.Equal(t, big.NewInt(100), payoutSink.Balance("treasury"))
}

func TestAuctionSettledSkipsZeroCapture(t *testing.T) {
	ctx := context.Background()

	payoutSink, err := ledgerpayout.New(ctx)
	require.NoError(t, err)
	svc := newTestService(t, payoutSink)

	svc.AuctionSettled(ctx, &auction.Settlement{
		PoolKey: []byte{0x01},
		Round:   3,
	})
	svc.AuctionSettled(ctx, &auction.Settlement{
		PoolKey:     []byte{0x01},
		Round:       4,
		MEVCaptured: new(big.Int),
	})
	require.Equal(t, 0, payoutSink.Transfers())
}
