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

package shielddb

import (
	"math/big"
	"time"
)

// Settlement holds information about a finalised auction round.
type Settlement struct {
	PoolKey []byte
	Round   uint64
	// Winner is the account of the winning bidder, empty if the round had no bids.
	Winner string
	// Amount is the winning bid amount.
	Amount *big.Int
	// MEVCaptured is the total value captured during the round.
	MEVCaptured *big.Int
	FinalisedAt time.Time
}

// ScheduledOrder holds information about an order passing through the execution queue.
type ScheduledOrder struct {
	OrderID string
	PoolKey []byte
	// Owner is the account that submitted the order.
	Owner  string
	Volume *big.Int
	// ReadyAt is the time before which the order must not be dispatched.
	ReadyAt time.Time
	// Status is one of "queued", "executing", "completed", "failed" or "cancelled".
	Status string
	// Reason describes the failure, empty unless Status is "failed".
	Reason      string
	ScheduledAt time.Time
	// DispatchedAt is zero if the order has not been dispatched.
	DispatchedAt time.Time
}
