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
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Najnomics/MEVShieldPool-sub001/services/commitreveal"

	chaintimeMocks "github.com/Najnomics/MEVShieldPool-sub001/mocks/chaintime"
	schedulerMocks "github.com/Najnomics/MEVShieldPool-sub001/mocks/scheduler"
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

// recordingRevealedHandler records revealed orders.
type recordingRevealedHandler struct {
	orderIDs []string
	params   [][]byte
}

func (h *recordingRevealedHandler) OrderRevealed(_ context.Context, orderID string, orderParams []byte) {
	h.orderIDs = append(h.orderIDs, orderID)
	h.params = append(h.params, orderParams)
}

func newTestService(t *testing.T, clock *testClock, handlers []commitreveal.RevealedHandler) *Service {
	svc, err := New(context.Background(),
		WithChainTime(newTestChainTime(t, clock)),
		WithRevealWindow(time.Minute),
		WithRevealedHandlers(handlers),
	)
	require.NoError(t, err)
	return svc
}

func TestCommitAndReveal(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}
	handler := &recordingRevealedHandler{}
	svc := newTestService(t, clock, []commitreveal.RevealedHandler{handler})

	orderParams := []byte(`{"submitter":"alice"}`)
	nonce := []byte{0x01, 0x02, 0x03}

	commitment, err := svc.Commit(ctx, "order-1", commitreveal.ComputeCommitment(orderParams, nonce))
	require.NoError(t, err)
	require.Equal(t, commitreveal.StatusCommitted, commitment.Status)
	require.Equal(t, clock.now.Add(time.Minute), commitment.RevealDeadline)

	revealed, err := svc.Reveal(ctx, "order-1", orderParams, nonce)
	require.NoError(t, err)
	require.Equal(t, commitreveal.StatusRevealed, revealed.Status)
	require.Equal(t, nonce, revealed.RevealedNonce)

	// The revealed order was handed on for execution.
	require.Equal(t, []string{"order-1"}, handler.orderIDs)
	require.Equal(t, orderParams, handler.params[0])
}

func TestCommitDuplicateOrder(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}
	svc := newTestService(t, clock, nil)

	_, err := svc.Commit(ctx, "order-1", [32]byte{0x01})
	require.NoError(t, err)

	_, err = svc.Commit(ctx, "order-1", [32]byte{0x02})
	require.ErrorIs(t, err, commitreveal.ErrDuplicateOrder)
}

func TestRevealUnknownOrder(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}
	svc := newTestService(t, clock, nil)

	_, err := svc.Reveal(ctx, "missing", []byte("params"), []byte("nonce"))
	require.ErrorIs(t, err, commitreveal.ErrUnknownOrder)
}

func TestRevealMismatchedNonce(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}
	handler := &recordingRevealedHandler{}
	svc := newTestService(t, clock, []commitreveal.RevealedHandler{handler})

	orderParams := []byte("params")
	_, err := svc.Commit(ctx, "order-1", commitreveal.ComputeCommitment(orderParams, []byte("nonce")))
	require.NoError(t, err)

	_, err = svc.Reveal(ctx, "order-1", orderParams, []byte("wrong"))
	require.ErrorIs(t, err, commitreveal.ErrCommitmentMismatch)
	require.Empty(t, handler.orderIDs)

	// The commitment survives a failed reveal attempt.
	revealed, err := svc.Reveal(ctx, "order-1", orderParams, []byte("nonce"))
	require.NoError(t, err)
	require.Equal(t, commitreveal.StatusRevealed, revealed.Status)
}

func TestRevealTwice(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}
	svc := newTestService(t, clock, nil)

	orderParams := []byte("params")
	nonce := []byte("nonce")
	_, err := svc.Commit(ctx, "order-1", commitreveal.ComputeCommitment(orderParams, nonce))
	require.NoError(t, err)

	_, err = svc.Reveal(ctx, "order-1", orderParams, nonce)
	require.NoError(t, err)

	_, err = svc.Reveal(ctx, "order-1", orderParams, nonce)
	require.ErrorIs(t, err, commitreveal.ErrDuplicateOrder)
}

func TestRevealAfterDeadline(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}
	svc := newTestService(t, clock, nil)

	orderParams := []byte("params")
	nonce := []byte("nonce")
	_, err := svc.Commit(ctx, "order-1", commitreveal.ComputeCommitment(orderParams, nonce))
	require.NoError(t, err)

	clock.now = clock.now.Add(2 * time.Minute)
	_, err = svc.Reveal(ctx, "order-1", orderParams, nonce)
	require.ErrorIs(t, err, commitreveal.ErrRevealExpired)

	commitment, err := svc.Commitment(ctx, "order-1")
	require.NoError(t, err)
	require.Equal(t, commitreveal.StatusExpired, commitment.Status)
}

func TestCancel(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}
	svc := newTestService(t, clock, nil)

	orderParams := []byte("params")
	nonce := []byte("nonce")
	_, err := svc.Commit(ctx, "order-1", commitreveal.ComputeCommitment(orderParams, nonce))
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, "order-1"))

	// A cancelled commitment cannot be revealed.
	_, err = svc.Reveal(ctx, "order-1", orderParams, nonce)
	require.ErrorIs(t, err, commitreveal.ErrUnknownOrder)
}

func TestCancelAfterReveal(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}
	svc := newTestService(t, clock, nil)

	orderParams := []byte("params")
	nonce := []byte("nonce")
	_, err := svc.Commit(ctx, "order-1", commitreveal.ComputeCommitment(orderParams, nonce))
	require.NoError(t, err)
	_, err = svc.Reveal(ctx, "order-1", orderParams, nonce)
	require.NoError(t, err)

	require.ErrorIs(t, svc.Cancel(ctx, "order-1"), commitreveal.ErrTooLateToCancel)
}

func TestCancelUnknownOrder(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}
	svc := newTestService(t, clock, nil)

	require.ErrorIs(t, svc.Cancel(ctx, "missing"), commitreveal.ErrUnknownOrder)
}

func TestExpireOverdue(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}
	svc := newTestService(t, clock, nil)

	_, err := svc.Commit(ctx, "order-1", [32]byte{0x01})
	require.NoError(t, err)
	_, err = svc.Commit(ctx, "order-2", [32]byte{0x02})
	require.NoError(t, err)

	// Nothing is overdue inside the window.
	require.Equal(t, 0, svc.ExpireOverdue(ctx, clock.now.Add(30*time.Second)))

	require.Equal(t, 2, svc.ExpireOverdue(ctx, clock.now.Add(2*time.Minute)))

	commitment, err := svc.Commitment(ctx, "order-1")
	require.NoError(t, err)
	require.Equal(t, commitreveal.StatusExpired, commitment.Status)
}

func TestNewSchedulesExpirySweep(t *testing.T) {
	clock := &testClock{now: time.Unix(1700000000, 0)}

	schedulerSvc := schedulerMocks.NewMockService(t)
	schedulerSvc.EXPECT().SchedulePeriodicJob(mock.Anything, "Commit-reveal", "Expiry sweep", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	_, err := New(context.Background(),
		WithChainTime(newTestChainTime(t, clock)),
		WithRevealWindow(time.Minute),
		WithScheduler(schedulerSvc),
	)
	require.NoError(t, err)
}
