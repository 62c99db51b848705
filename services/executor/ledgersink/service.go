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

// Package ledgersink is a settlement sink that settles orders by moving the
// order amount through a payout sink.  Settlement of trades against an
// external venue sits behind the same interface.
package ledgersink

import (
	"context"
	"fmt"
	"math/big"

	"github.com/Najnomics/MEVShieldPool-sub001/services/executor"
	"github.com/Najnomics/MEVShieldPool-sub001/services/payout"
	"github.com/pkg/errors"
)

// Service is a payout-backed settlement sink.
type Service struct {
	payoutSink payout.Sink
}

// New creates a new ledger settlement sink.
func New(payoutSink payout.Sink) (*Service, error) {
	if payoutSink == nil {
		return nil, errors.New("no payout sink specified")
	}

	return &Service{
		payoutSink: payoutSink,
	}, nil
}

// Settle executes an order by transferring its amount to the submitter.
// The transfer ID is derived from the order ID, so a replayed settlement
// cannot pay twice.
func (s *Service) Settle(ctx context.Context, order *executor.ScheduledOrder) error {
	if order == nil {
		return errors.New("order nil")
	}

	amount := new(big.Int).Abs(order.Amount)
	transferID := fmt.Sprintf("settle:%s", order.OrderID)
	if err := s.payoutSink.Transfer(ctx, transferID, order.Submitter, amount); err != nil {
		return errors.Wrap(err, "failed to settle order")
	}

	return nil
}
