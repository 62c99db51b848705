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
	"encoding/json"
	"math/big"
	"time"

	"github.com/Najnomics/MEVShieldPool-sub001/services/executor"
	"github.com/pkg/errors"
)

// orderParams is the wire form of revealed order parameters.
type orderParams struct {
	Submitter      string `json:"submitter"`
	PoolKey        []byte `json:"pool_key"`
	Amount         string `json:"amount"`
	Direction      string `json:"direction"`
	DelayMS        int64  `json:"delay_ms"`
	MaxSlippageBps uint32 `json:"max_slippage_bps"`
}

// parseOrderParams parses and validates revealed order parameters.
func parseOrderParams(orderID string, params []byte) (*executor.Order, error) {
	var wire orderParams
	if err := json.Unmarshal(params, &wire); err != nil {
		return nil, errors.Wrap(err, "invalid order parameters")
	}
	if wire.Submitter == "" {
		return nil, errors.New("no submitter specified")
	}
	amount, ok := new(big.Int).SetString(wire.Amount, 10)
	if !ok {
		return nil, errors.New("invalid amount")
	}
	var direction executor.Direction
	switch wire.Direction {
	case "buy":
		direction = executor.DirectionBuy
	case "sell":
		direction = executor.DirectionSell
	default:
		return nil, errors.New("invalid direction")
	}
	if wire.DelayMS < 0 {
		return nil, errors.New("negative delay")
	}

	return &executor.Order{
		OrderID:        orderID,
		Submitter:      wire.Submitter,
		PoolKey:        wire.PoolKey,
		Amount:         amount,
		Direction:      direction,
		RequestedDelay: time.Duration(wire.DelayMS) * time.Millisecond,
		MaxSlippageBps: wire.MaxSlippageBps,
	}, nil
}

// OrderRevealed receives a revealed order and enqueues it for execution.
func (s *Service) OrderRevealed(ctx context.Context, orderID string, params []byte) {
	order, err := parseOrderParams(orderID, params)
	if err != nil {
		log.Debug().Err(err).Str("order_id", orderID).Msg("Rejected revealed order")
		return
	}

	if _, err := s.Enqueue(ctx, order); err != nil {
		log.Debug().Err(err).Str("order_id", orderID).Msg("Failed to enqueue revealed order")
	}
}
