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

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Najnomics/MEVShieldPool-sub001/services/executor"

	chaintimeMocks "github.com/Najnomics/MEVShieldPool-sub001/mocks/chaintime"
	shielddbMocks "github.com/Najnomics/MEVShieldPool-sub001/mocks/shielddb"
)

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

// recordingSink records settled orders in arrival order.
type recordingSink struct {
	settled []string
	failFor map[string]error
}

func (s *recordingSink) Settle(_ context.Context, order *executor.ScheduledOrder) error {
	if err, exists := s.failFor[order.OrderID]; exists {
		return err
	}
	s.settled = append(s.settled, order.OrderID)
	return nil
}

func TestEnqueueClampsDelay(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}

	svc, err := New(ctx,
		WithChainTime(newTestChainTime(t, clock)),
		WithSettlementSink(&recordingSink{}),
		WithMinDelay(10*time.Second),
		WithMaxDelay(300*time.Second),
	)
	require.NoError(t, err)

	// A delay below the floor is raised to it.
	scheduled, err := svc.Enqueue(ctx, &executor.Order{
		Submitter: "alice",
		Amount:    big.NewInt(100),
		Direction: executor.DirectionBuy,
	})
	require.NoError(t, err)
	require.Equal(t, clock.now.Add(10*time.Second), scheduled.TargetExecutionTime)

	// A delay above the cap is lowered to it.
	scheduled, err = svc.Enqueue(ctx, &executor.Order{
		Submitter:      "bob",
		Amount:         big.NewInt(100),
		Direction:      executor.DirectionSell,
		RequestedDelay: time.Hour,
	})
	require.NoError(t, err)
	require.Equal(t, clock.now.Add(300*time.Second), scheduled.TargetExecutionTime)
}

func TestEnqueueJitterWithinWindow(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}

	svc, err := New(ctx,
		WithChainTime(newTestChainTime(t, clock)),
		WithSettlementSink(&recordingSink{}),
		WithMaxDelay(300*time.Second),
		WithRandomisationWindow(30*time.Second),
	)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		scheduled, err := svc.Enqueue(ctx, &executor.Order{
			Submitter:      "alice",
			Amount:         big.NewInt(100),
			Direction:      executor.DirectionBuy,
			RequestedDelay: 60 * time.Second,
		})
		require.NoError(t, err)
		earliest := clock.now.Add(60 * time.Second)
		latest := earliest.Add(30 * time.Second)
		require.False(t, scheduled.TargetExecutionTime.Before(earliest))
		require.True(t, scheduled.TargetExecutionTime.Before(latest))
	}
}

func TestEnqueueDuplicateOrder(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}

	svc, err := New(ctx,
		WithChainTime(newTestChainTime(t, clock)),
		WithSettlementSink(&recordingSink{}),
		WithMaxDelay(300*time.Second),
	)
	require.NoError(t, err)

	order := &executor.Order{
		OrderID:   "order-1",
		Submitter: "alice",
		Amount:    big.NewInt(100),
		Direction: executor.DirectionBuy,
	}
	_, err = svc.Enqueue(ctx, order)
	require.NoError(t, err)

	_, err = svc.Enqueue(ctx, order)
	require.ErrorIs(t, err, executor.ErrDuplicateOrder)
}

func TestDispatchReadyInOrder(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}
	sink := &recordingSink{}

	svc, err := New(ctx,
		WithChainTime(newTestChainTime(t, clock)),
		WithSettlementSink(sink),
		WithMaxDelay(300*time.Second),
	)
	require.NoError(t, err)

	for _, orderID := range []string{"order-1", "order-2", "order-3"} {
		_, err = svc.Enqueue(ctx, &executor.Order{
			OrderID:        orderID,
			Submitter:      "alice",
			Amount:         big.NewInt(100),
			Direction:      executor.DirectionBuy,
			RequestedDelay: 10 * time.Second,
		})
		require.NoError(t, err)
	}

	// Nothing is ready before the delay elapses.
	dispatched, err := svc.DispatchReady(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, 0, dispatched)
	require.Equal(t, 3, svc.QueueLength(ctx))

	clock.now = clock.now.Add(11 * time.Second)
	dispatched, err = svc.DispatchReady(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, 3, dispatched)
	require.Equal(t, []string{"order-1", "order-2", "order-3"}, sink.settled)
	require.Equal(t, 0, svc.QueueLength(ctx))

	order, err := svc.Order(ctx, "order-1")
	require.NoError(t, err)
	require.Equal(t, executor.StatusCompleted, order.Status)
}

func TestDispatchReadyRespectsBatchSize(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}
	sink := &recordingSink{}

	svc, err := New(ctx,
		WithChainTime(newTestChainTime(t, clock)),
		WithSettlementSink(sink),
		WithMaxDelay(300*time.Second),
	)
	require.NoError(t, err)

	for _, orderID := range []string{"order-1", "order-2", "order-3"} {
		_, err = svc.Enqueue(ctx, &executor.Order{
			OrderID:   orderID,
			Submitter: "alice",
			Amount:    big.NewInt(100),
			Direction: executor.DirectionBuy,
		})
		require.NoError(t, err)
	}

	clock.now = clock.now.Add(time.Second)
	dispatched, err := svc.DispatchReady(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, 2, dispatched)
	require.Equal(t, []string{"order-1", "order-2"}, sink.settled)
	require.Equal(t, 1, svc.QueueLength(ctx))
}

func TestDispatchReadyVolumeWeighted(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}
	sink := &recordingSink{}

	svc, err := New(ctx,
		WithChainTime(newTestChainTime(t, clock)),
		WithSettlementSink(sink),
		WithMaxDelay(300*time.Second),
		WithVolumeWeighting(true),
		WithVolumeCoefficient(1000),
	)
	require.NoError(t, err)

	_, err = svc.Enqueue(ctx, &executor.Order{
		OrderID:   "small",
		Submitter: "alice",
		Amount:    big.NewInt(10),
		Direction: executor.DirectionBuy,
	})
	require.NoError(t, err)
	_, err = svc.Enqueue(ctx, &executor.Order{
		OrderID:   "large",
		Submitter: "bob",
		Amount:    big.NewInt(1000000),
		Direction: executor.DirectionSell,
	})
	require.NoError(t, err)

	clock.now = clock.now.Add(time.Second)
	dispatched, err := svc.DispatchReady(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, 2, dispatched)
	require.Equal(t, []string{"large", "small"}, sink.settled)
}

func TestDispatchReadyFailureRecorded(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}
	sink := &recordingSink{failFor: map[string]error{"order-2": errors.New("insufficient balance")}}

	svc, err := New(ctx,
		WithChainTime(newTestChainTime(t, clock)),
		WithSettlementSink(sink),
		WithMaxDelay(300*time.Second),
	)
	require.NoError(t, err)

	for _, orderID := range []string{"order-1", "order-2", "order-3"} {
		_, err = svc.Enqueue(ctx, &executor.Order{
			OrderID:   orderID,
			Submitter: "alice",
			Amount:    big.NewInt(100),
			Direction: executor.DirectionBuy,
		})
		require.NoError(t, err)
	}

	clock.now = clock.now.Add(time.Second)
	dispatched, err := svc.DispatchReady(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, 2, dispatched)

	order, err := svc.Order(ctx, "order-2")
	require.NoError(t, err)
	require.Equal(t, executor.StatusFailed, order.Status)
	require.Equal(t, "insufficient balance", order.Reason)
}

func TestCancel(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}
	sink := &recordingSink{}

	svc, err := New(ctx,
		WithChainTime(newTestChainTime(t, clock)),
		WithSettlementSink(sink),
		WithMaxDelay(300*time.Second),
	)
	require.NoError(t, err)

	_, err = svc.Enqueue(ctx, &executor.Order{
		OrderID:   "order-1",
		Submitter: "alice",
		Amount:    big.NewInt(100),
		Direction: executor.DirectionBuy,
	})
	require.NoError(t, err)

	// Only the submitter may cancel.
	require.ErrorIs(t, svc.Cancel(ctx, "order-1", "mallory"), executor.ErrNotSubmitter)

	require.NoError(t, svc.Cancel(ctx, "order-1", "alice"))

	// A cancelled order is never dispatched.
	clock.now = clock.now.Add(time.Second)
	dispatched, err := svc.DispatchReady(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, 0, dispatched)
	require.Empty(t, sink.settled)

	// Cancelling a second time is too late.
	require.ErrorIs(t, svc.Cancel(ctx, "order-1", "alice"), executor.ErrTooLateToCancel)
}

func TestCancelUnknownOrder(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}

	svc, err := New(ctx,
		WithChainTime(newTestChainTime(t, clock)),
		WithSettlementSink(&recordingSink{}),
		WithMaxDelay(300*time.Second),
	)
	require.NoError(t, err)

	require.ErrorIs(t, svc.Cancel(ctx, "missing", "alice"), executor.ErrUnknownOrder)
}

func TestEnqueuePersistsOrder(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}

	setter := shielddbMocks.NewMockScheduledOrdersSetter(t)
	setter.EXPECT().BeginTx(mock.Anything).Return(ctx, context.CancelFunc(func() {}), nil).Once()
	setter.EXPECT().SetScheduledOrder(mock.Anything, mock.Anything).Return(nil).Once()
	setter.EXPECT().CommitTx(mock.Anything).Return(nil).Once()

	svc, err := New(ctx,
		WithChainTime(newTestChainTime(t, clock)),
		WithSettlementSink(&recordingSink{}),
		WithScheduledOrdersSetter(setter),
		WithMaxDelay(300*time.Second),
	)
	require.NoError(t, err)

	_, err = svc.Enqueue(ctx, &executor.Order{
		OrderID:   "order-1",
		Submitter: "alice",
		Amount:    big.NewInt(100),
		Direction: executor.DirectionBuy,
	})
	require.NoError(t, err)
}
