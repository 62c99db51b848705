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

package ledgersink

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Najnomics/MEVShieldPool-sub001/services/executor"
	ledgerpayout "github.com/Najnomics/MEVShieldPool-sub001/services/payout/ledger"
)

func TestNewMissingPayoutSink(t *testing.T) {
	_, err := New(nil)
	require.EqualError(t, err, "no payout sink specified")
}

func TestSettle(t *testing.T) {
	ctx := context.Background()

	payoutSink, err := ledgerpayout.New(ctx)
	require.NoError(t, err)
	svc, err := New(payoutSink)
	require.NoError(t, err)

	err = svc.Settle(ctx, &executor.ScheduledOrder{
		Order: executor.Order{
			OrderID:   "order-1",
			Submitter: "alice",
			Amount:    big.NewInt(100),
		},
	})
	require.NoError(t, err)
	require.Equal(t, big.NewInt(100), payoutSink.Balance("alice"))
}

func TestSettleNilOrder(t *testing.T) {
	ctx := context.Background()

	payoutSink, err := ledgerpayout.New(ctx)
	require.NoError(t, err)
	svc, err := New(payoutSink)
	require.NoError(t, err)

	require.EqualError(t, svc.Settle(ctx, nil), "order nil")
}

func TestSettleSellUsesAbsoluteAmount(t *testing.T) {
	ctx := context.Background()

	payoutSink, err := ledgerpayout.New(ctx)
	require.NoError(t, err)
	svc, err := New(payoutSink)
	require.NoError(t, err)

	err = svc.Settle(ctx, &executor.ScheduledOrder{
		Order: executor.Order{
			OrderID:   "order-1",
			Submitter: "alice",
			Amount:    big.NewInt(-100),
		},
	})
	require.NoError(t, err)
	require.Equal(t, big.NewInt(100), payoutSink.Balance("alice"))
}

func TestSettleReplayIsNoOp(t *testing.T) {
	ctx := context.Background()

	payoutSink, err := ledgerpayout.New(ctx)
	require.NoError(t, err)
	svc, err := New(payoutSink)
	require.NoError(t, err)

	order := &executor.ScheduledOrder{
		Order: executor.Order{
			OrderID:   "order-1",
			Submitter: "alice",
			Amount:    big.NewInt(100),
		},
	}
	require.NoError(t, svc.Settle(ctx, order))
	require.NoError(t, svc.Settle(ctx, order))
	require.Equal(t, big.NewInt(100), payoutSink.Balance("alice"))
	require.Equal(t, 1, payoutSink.Transfers())
}
