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

// Package executor provides delayed, randomised execution of orders.  Orders
// are queued with a bounded delay plus uniform jitter so that observers
// cannot predict exactly when an order will settle.
package executor

import (
	"context"
	"math/big"
	"time"

	"github.com/pkg/errors"
)

// Direction is the direction of an order.
type Direction uint8

const (
	// DirectionBuy is an order buying the base asset.
	DirectionBuy Direction = iota
	// DirectionSell is an order selling the base asset.
	DirectionSell
)

// String implements the Stringer interface.
func (d Direction) String() string {
	switch d {
	case DirectionBuy:
		return "buy"
	case DirectionSell:
		return "sell"
	default:
		return "unknown"
	}
}

// Status is the state of a scheduled order.
type Status uint8

const (
	// StatusQueued indicates the order is waiting for its execution time.
	StatusQueued Status = iota
	// StatusExecuting indicates the order is being settled.
	StatusExecuting
	// StatusCompleted indicates the order settled successfully.
	StatusCompleted
	// StatusFailed indicates the settlement sink rejected the order.
	StatusFailed
	// StatusCancelled indicates the submitter withdrew the order before dispatch.
	StatusCancelled
)

// String implements the Stringer interface.
func (s Status) String() string {
	switch s {
	case StatusQueued:
		return "queued"
	case StatusExecuting:
		return "executing"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Order is an order submitted for delayed execution.
type Order struct {
	// OrderID is the unique identifier of the order; one is generated if empty.
	OrderID   string
	Submitter string
	PoolKey   []byte
	// Amount is the amount specified for the trade.
	Amount    *big.Int
	Direction Direction
	// RequestedDelay is the delay requested by the submitter; it is clamped
	// to the scheduler's configured bounds.
	RequestedDelay time.Duration
	MaxSlippageBps uint32
}

// ScheduledOrder is the state of an order inside the execution queue.
type ScheduledOrder struct {
	Order
	SubmittedAt         time.Time
	TargetExecutionTime time.Time
	Status              Status
	// Reason describes the failure, empty unless Status is StatusFailed.
	Reason string
}

// ErrDuplicateOrder is returned when an order ID is already queued.
var ErrDuplicateOrder = errors.New("duplicate order")

// ErrUnknownOrder is returned when no order exists for an order ID.
var ErrUnknownOrder = errors.New("unknown order")

// ErrTooLateToCancel is returned when a cancellation arrives after dispatch has begun.
var ErrTooLateToCancel = errors.New("too late to cancel")

// ErrNotSubmitter is returned when a cancellation comes from other than the original submitter.
var ErrNotSubmitter = errors.New("not the submitter")

// SettlementSink is the interface for external order settlement.
type SettlementSink interface {
	// Settle executes a revealed order.  A failure is recorded against the
	// order and is not retried; the submitter must resubmit.
	Settle(ctx context.Context, order *ScheduledOrder) error
}

// Service is the interface for execution schedulers.
type Service interface {
	// Enqueue adds an order to the execution queue, returning its scheduled state.
	Enqueue(ctx context.Context, order *Order) (*ScheduledOrder, error)

	// Cancel withdraws a queued order.  Only the original submitter may cancel,
	// and only before dispatch begins.
	Cancel(ctx context.Context, orderID string, submitter string) error

	// DispatchReady settles queued orders whose execution time has been
	// reached, up to maxToProcess of them, returning the number dispatched.
	DispatchReady(ctx context.Context, maxToProcess int) (int, error)

	// Order returns the state of an order in the queue.
	Order(ctx context.Context, orderID string) (*ScheduledOrder, error)

	// QueueLength returns the number of orders currently queued.
	QueueLength(ctx context.Context) int
}
