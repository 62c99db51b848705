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

// Package commitreveal provides a two-phase order gate: an order is first
// committed as an opaque hash, and only handed on for execution once the
// matching parameters are revealed.  This stops observers front-running an
// order based on its commitment alone.
package commitreveal

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

// Status is the state of a commitment.
type Status uint8

const (
	// StatusCommitted indicates the commitment has been recorded but not revealed.
	StatusCommitted Status = iota
	// StatusRevealed indicates the order parameters have been revealed.
	StatusRevealed
	// StatusCancelled indicates the committer withdrew before revealing.
	StatusCancelled
	// StatusExpired indicates the reveal window passed without a reveal.
	StatusExpired
)

// String implements the Stringer interface.
func (s Status) String() string {
	switch s {
	case StatusCommitted:
		return "committed"
	case StatusRevealed:
		return "revealed"
	case StatusCancelled:
		return "cancelled"
	case StatusExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Commitment holds the state of a committed order.
type Commitment struct {
	OrderID        string
	Commitment     [32]byte
	CommittedAt    time.Time
	RevealDeadline time.Time
	// RevealedNonce is set only once the order has been revealed.
	RevealedNonce []byte
	Status        Status
}

// ErrDuplicateOrder is returned when a commitment already exists for an order ID.
var ErrDuplicateOrder = errors.New("duplicate order")

// ErrUnknownOrder is returned when no commitment exists for an order ID.
var ErrUnknownOrder = errors.New("unknown order")

// ErrRevealExpired is returned when a reveal arrives after the reveal deadline.
var ErrRevealExpired = errors.New("reveal expired")

// ErrCommitmentMismatch is returned when revealed parameters do not hash to the commitment.
var ErrCommitmentMismatch = errors.New("commitment mismatch")

// ErrTooLateToCancel is returned when a cancellation arrives after the order has been revealed.
var ErrTooLateToCancel = errors.New("too late to cancel")

// Service is the interface for commit-reveal gates.
type Service interface {
	// Commit records a commitment hash for an order.
	Commit(ctx context.Context, orderID string, commitment [32]byte) (*Commitment, error)

	// Reveal discloses the parameters behind a commitment.
	// On success the order is handed to the revealed handlers for execution.
	Reveal(ctx context.Context, orderID string, orderParams []byte, nonce []byte) (*Commitment, error)

	// Cancel withdraws a commitment that has not yet been revealed.
	Cancel(ctx context.Context, orderID string) error

	// Commitment returns the current state of a commitment.
	Commitment(ctx context.Context, orderID string) (*Commitment, error)
}

// RevealedHandler is the interface for receivers of revealed orders.
type RevealedHandler interface {
	// OrderRevealed is called when an order's parameters have been revealed.
	OrderRevealed(ctx context.Context, orderID string, orderParams []byte)
}

// ComputeCommitment calculates the commitment hash for the given order
// parameters and nonce, as keccak256(orderParams ‖ nonce).
func ComputeCommitment(orderParams []byte, nonce []byte) [32]byte {
	hash := sha3.NewLegacyKeccak256()
	_, _ = hash.Write(orderParams)
	_, _ = hash.Write(nonce)
	var commitment [32]byte
	copy(commitment[:], hash.Sum(nil))

	return commitment
}
