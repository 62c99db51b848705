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

// Package ledger is a payout sink backed by an in-memory balance ledger.
package ledger

import (
	"context"
	"math/big"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	zerologger "github.com/rs/zerolog/log"
	deadlock "github.com/sasha-s/go-deadlock"
)

// Service is a payout sink that credits an in-memory ledger.
type Service struct {
	mu       deadlock.Mutex
	balances map[string]*big.Int
	applied  map[string]struct{}
}

// module-wide log.
var log zerolog.Logger

// New creates a new ledger payout sink.
func New(_ context.Context, params ...Parameter) (*Service, error) {
	parameters, err := parseAndCheckParameters(params...)
	if err != nil {
		return nil, errors.Wrap(err, "problem with parameters")
	}

	// Set logging.
	log = zerologger.With().Str("service", "payout").Str("impl", "ledger").Logger().Level(parameters.logLevel)

	return &Service{
		balances: make(map[string]*big.Int),
		applied:  make(map[string]struct{}),
	}, nil
}

// Transfer moves amount to the recipient under the given logical transfer ID.
// Replaying an already-applied transfer ID is a no-op.
func (s *Service) Transfer(_ context.Context, transferID string, recipient string, amount *big.Int) error {
	if transferID == "" {
		return errors.New("no transfer ID specified")
	}
	if recipient == "" {
		return errors.New("no recipient specified")
	}
	if amount == nil || amount.Sign() < 0 {
		return errors.New("invalid amount")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.applied[transferID]; exists {
		log.Trace().Str("transfer_id", transferID).Msg("Transfer already applied")
		return nil
	}

	balance, exists := s.balances[recipient]
	if !exists {
		balance = new(big.Int)
		s.balances[recipient] = balance
	}
	balance.Add(balance, amount)
	s.applied[transferID] = struct{}{}

	log.Trace().Str("transfer_id", transferID).Str("recipient", recipient).Stringer("amount", amount).Msg("Applied transfer")

	return nil
}

// Balance provides the current balance of the given recipient.
func (s *Service) Balance(recipient string) *big.Int {
	s.mu.Lock()
	defer s.mu.Unlock()

	balance, exists := s.balances[recipient]
	if !exists {
		return new(big.Int)
	}
	return new(big.Int).Set(balance)
}

// AccountBalance provides the current balance of the given account.
func (s *Service) AccountBalance(_ context.Context, account string) (*big.Int, error) {
	if account == "" {
		return nil, errors.New("no account specified")
	}

	return s.Balance(account), nil
}

// Transfers provides the number of distinct transfers applied.
func (s *Service) Transfers() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.applied)
}
