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
	"context"
)

// Service defines a minimal shield pool database service.
type Service interface {
	// BeginTx begins a transaction.
	BeginTx(ctx context.Context) (context.Context, context.CancelFunc, error)

	// CommitTx commits a transaction.
	CommitTx(ctx context.Context) error

	// SetMetadata sets a metadata key to a JSON value.
	SetMetadata(ctx context.Context, key string, value []byte) error

	// Metadata obtains the JSON value from a metadata key.
	Metadata(ctx context.Context, key string) ([]byte, error)
}

// SettlementsProvider defines functions to provide auction settlement information.
type SettlementsProvider interface {
	// Settlements returns settlements matching the supplied filter.
	Settlements(ctx context.Context, filter *SettlementFilter) ([]*Settlement, error)
}

// SettlementsSetter defines functions to create and update auction settlements.
type SettlementsSetter interface {
	Service

	// SetSettlement sets a settlement.
	SetSettlement(ctx context.Context, settlement *Settlement) error
}

// ScheduledOrdersProvider defines functions to provide scheduled order information.
type ScheduledOrdersProvider interface {
	// ScheduledOrders returns scheduled orders matching the supplied filter.
	ScheduledOrders(ctx context.Context, filter *ScheduledOrderFilter) ([]*ScheduledOrder, error)
}

// ScheduledOrdersSetter defines functions to create and update scheduled orders.
type ScheduledOrdersSetter interface {
	Service

	// SetScheduledOrder sets a scheduled order.
	SetScheduledOrder(ctx context.Context, order *ScheduledOrder) error
}
