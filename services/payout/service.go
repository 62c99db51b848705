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

// Package payout defines the boundary to the system that moves funds.
package payout

import (
	"context"
	"math/big"
)

// Sink accepts transfer instructions from the auction core.
//
// Implementations must be idempotent per transfer ID: replaying a transfer
// with an ID that has already been applied must succeed without moving funds
// a second time, so that callers can safely retry after a transient failure.
type Sink interface {
	// Transfer moves amount to the recipient under the given logical transfer ID.
	Transfer(ctx context.Context, transferID string, recipient string, amount *big.Int) error
}
