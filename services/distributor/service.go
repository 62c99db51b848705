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

// Package distributor provides distribution of captured MEV between the
// liquidity provider pool and the protocol treasury.
package distributor

import (
	"context"
	"math/big"
)

// Distribution is the result of splitting captured value.
type Distribution struct {
	// LPAmount is the portion sent to the liquidity provider pool.
	LPAmount *big.Int
	// ProtocolAmount is the portion sent to the protocol treasury.
	ProtocolAmount *big.Int
}

// Service is the interface for MEV distributors.
type Service interface {
	// Distribute splits captured value and instructs the payout sink.
	// The split computation is deterministic, so a failed distribution can be
	// replayed safely; the sink's per-transfer idempotency prevents double
	// payment on retry.
	Distribute(ctx context.Context, poolKey []byte, round uint64, totalCaptured *big.Int) (*Distribution, error)
}

// Split computes the division of captured value for the given LP share.
// The remainder after the LP portion goes to the protocol, so no value is
// lost to rounding.
func Split(totalCaptured *big.Int, lpShareBps uint32) (*big.Int, *big.Int) {
	lpAmount := new(big.Int).Mul(totalCaptured, big.NewInt(int64(lpShareBps)))
	lpAmount.Div(lpAmount, big.NewInt(10000))
	protocolAmount := new(big.Int).Sub(totalCaptured, lpAmount)

	return lpAmount, protocolAmount
}
