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

// Package standard is an in-memory commit-reveal gate.
package standard

import (
	"bytes"
	"context"
	"time"

	"github.com/Najnomics/MEVShieldPool-sub001/services/chaintime"
	"github.com/Najnomics/MEVShieldPool-sub001/services/commitreveal"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	zerologger "github.com/rs/zerolog/log"
	"github.com/sasha-s/go-deadlock"
	"go.opentelemetry.io/otel"
)

// Service is an in-memory commit-reveal gate.
type Service struct {
	chainTime        chaintime.Service
	revealWindow     time.Duration
	revealedHandlers []commitreveal.RevealedHandler

	commitmentsMu deadlock.Mutex
	commitments   map[string]*commitreveal.Commitment
}

// module-wide log.
var log zerolog.Logger

// New creates a new commit-reveal gate.
func New(ctx context.Context, params ...Parameter) (*Service, error) {
	parameters, err := parseAndCheckParameters(params...)
	if err != nil {
		return nil, errors.Wrap(err, "problem with parameters")
	}

	// Set logging.
	log = zerologger.With().Str("service", "commitreveal").Str("impl", "standard").Logger()
	if parameters.logLevel != log.GetLevel() {
		log = log.Level(parameters.logLevel)
	}

	if err := registerMetrics(ctx, parameters.monitor); err != nil {
		return nil, errors.Wrap(err, "failed to register metrics")
	}

	s := &Service{
		chainTime:        parameters.chainTime,
		revealWindow:     parameters.revealWindow,
		revealedHandlers: parameters.revealedHandlers,
		commitments:      make(map[string]*commitreveal.Commitment),
	}

	if parameters.scheduler != nil {
		runtimeFunc := func(_ context.Context, _ any) (time.Time, error) {
			return time.Now().Add(parameters.sweepInterval), nil
		}
		if err := parameters.scheduler.SchedulePeriodicJob(ctx,
			"Commit-reveal",
			"Expiry sweep",
			runtimeFunc,
			nil,
			s.sweepExpired,
			nil,
		); err != nil {
			return nil, errors.Wrap(err, "failed to schedule expiry sweep")
		}
	}

	return s, nil
}

// Commit records a commitment hash for an order.
func (s *Service) Commit(ctx context.Context, orderID string, commitment [32]byte) (*commitreveal.Commitment, error) {
	_, span := otel.Tracer("mevshieldpool.services.commitreveal.standard").Start(ctx, "Commit")
	defer span.End()

	if orderID == "" {
		return nil, errors.New("no order ID specified")
	}

	now := s.chainTime.CurrentTime()

	s.commitmentsMu.Lock()
	defer s.commitmentsMu.Unlock()

	if _, exists := s.commitments[orderID]; exists {
		return nil, commitreveal.ErrDuplicateOrder
	}

	request := &commitreveal.Commitment{
		OrderID:        orderID,
		Commitment:     commitment,
		CommittedAt:    now,
		RevealDeadline: now.Add(s.revealWindow),
		Status:         commitreveal.StatusCommitted,
	}
	s.commitments[orderID] = request
	monitorCommitment()
	log.Trace().Str("order_id", orderID).Time("reveal_deadline", request.RevealDeadline).Msg("Recorded commitment")

	return copyCommitment(request), nil
}

// Reveal discloses the parameters behind a commitment.
func (s *Service) Reveal(ctx context.Context,
	orderID string,
	orderParams []byte,
	nonce []byte,
) (
	*commitreveal.Commitment,
	error,
) {
	ctx, span := otel.Tracer("mevshieldpool.services.commitreveal.standard").Start(ctx, "Reveal")
	defer span.End()

	now := s.chainTime.CurrentTime()

	s.commitmentsMu.Lock()
	request, exists := s.commitments[orderID]
	if !exists {
		s.commitmentsMu.Unlock()
		monitorReveal("unknown")
		return nil, commitreveal.ErrUnknownOrder
	}
	switch request.Status {
	case commitreveal.StatusRevealed:
		s.commitmentsMu.Unlock()
		monitorReveal("duplicate")
		return nil, commitreveal.ErrDuplicateOrder
	case commitreveal.StatusCancelled:
		s.commitmentsMu.Unlock()
		monitorReveal("cancelled")
		return nil, commitreveal.ErrUnknownOrder
	case commitreveal.StatusExpired:
		s.commitmentsMu.Unlock()
		monitorReveal("expired")
		return nil, commitreveal.ErrRevealExpired
	case commitreveal.StatusCommitted:
		// Continue below.
	}
	if now.After(request.RevealDeadline) {
		request.Status = commitreveal.StatusExpired
		s.commitmentsMu.Unlock()
		monitorReveal("expired")
		return nil, commitreveal.ErrRevealExpired
	}

	commitment := commitreveal.ComputeCommitment(orderParams, nonce)
	if !bytes.Equal(commitment[:], request.Commitment[:]) {
		s.commitmentsMu.Unlock()
		monitorReveal("mismatch")
		return nil, commitreveal.ErrCommitmentMismatch
	}

	request.Status = commitreveal.StatusRevealed
	request.RevealedNonce = nonce
	result := copyCommitment(request)
	s.commitmentsMu.Unlock()

	monitorReveal("accepted")
	log.Trace().Str("order_id", orderID).Msg("Revealed order")

	// Hand the order on for execution outside the lock.
	for _, handler := range s.revealedHandlers {
		handler.OrderRevealed(ctx, orderID, orderParams)
	}

	return result, nil
}

// Cancel withdraws a commitment that has not yet been revealed.
func (s *Service) Cancel(ctx context.Context, orderID string) error {
	_, span := otel.Tracer("mevshieldpool.services.commitreveal.standard").Start(ctx, "Cancel")
	defer span.End()

	s.commitmentsMu.Lock()
	defer s.commitmentsMu.Unlock()

	request, exists := s.commitments[orderID]
	if !exists {
		return commitreveal.ErrUnknownOrder
	}
	if request.Status != commitreveal.StatusCommitted {
		return commitreveal.ErrTooLateToCancel
	}

	request.Status = commitreveal.StatusCancelled
	monitorCancellation()
	log.Trace().Str("order_id", orderID).Msg("Cancelled commitment")

	return nil
}

// Commitment returns the current state of a commitment.
func (s *Service) Commitment(_ context.Context, orderID string) (*commitreveal.Commitment, error) {
	s.commitmentsMu.Lock()
	defer s.commitmentsMu.Unlock()

	request, exists := s.commitments[orderID]
	if !exists {
		return nil, commitreveal.ErrUnknownOrder
	}

	return copyCommitment(request), nil
}

// ExpireOverdue marks commitments whose reveal window has passed as expired,
// returning the number of commitments expired.
func (s *Service) ExpireOverdue(_ context.Context, now time.Time) int {
	s.commitmentsMu.Lock()
	defer s.commitmentsMu.Unlock()

	expired := 0
	for _, request := range s.commitments {
		if request.Status == commitreveal.StatusCommitted && now.After(request.RevealDeadline) {
			request.Status = commitreveal.StatusExpired
			expired++
		}
	}
	if expired > 0 {
		monitorExpirations(expired)
	}

	return expired
}

// sweepExpired is the scheduler job that expires overdue commitments.
func (s *Service) sweepExpired(ctx context.Context, _ any) {
	expired := s.ExpireOverdue(ctx, s.chainTime.CurrentTime())
	if expired > 0 {
		log.Trace().Int("expired", expired).Msg("Expired overdue commitments")
	}
}

func copyCommitment(request *commitreveal.Commitment) *commitreveal.Commitment {
	result := *request
	return &result
}
