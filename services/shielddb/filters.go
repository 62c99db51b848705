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
	"time"
)

// Order is the order in which results should be fetched (N.B. fetched, not returned).
type Order uint8

const (
	// OrderEarliest fetches earliest results first.
	OrderEarliest Order = iota
	// OrderLatest fetches latest results first.
	OrderLatest
)

// SettlementFilter defines a filter for fetching settlements.
// Filter elements are ANDed together.
// Results are always returned in ascending round order.
type SettlementFilter struct {
	// Limit is the maximum number of settlements to return.
	// If nil then there is no limit.
	Limit *uint32

	// Order is either OrderEarliest, in which case the earliest results
	// that match the filter are returned, or OrderLatest, in which case the
	// latest results that match the filter are returned.
	// The default is OrderEarliest.
	Order Order

	// PoolKeys are the pool keys of the settlements.
	// If nil then there is no pool key filter.
	PoolKeys [][]byte

	// FromRound is the earliest round from which to fetch settlements.
	// If nil then there is no earliest round.
	FromRound *uint64

	// ToRound is the latest round to which to fetch settlements.
	// If nil then there is no latest round.
	ToRound *uint64

	// Winners are the winning accounts of the settlements.
	// If nil then there is no winner filter.
	Winners []string
}

// ScheduledOrderFilter defines a filter for fetching scheduled orders.
// Filter elements are ANDed together.
// Results are always returned in ascending scheduled time order.
type ScheduledOrderFilter struct {
	// Limit is the maximum number of orders to return.
	// If nil then there is no limit.
	Limit *uint32

	// Order is either OrderEarliest, in which case the earliest results
	// that match the filter are returned, or OrderLatest, in which case the
	// latest results that match the filter are returned.
	// The default is OrderEarliest.
	Order Order

	// PoolKeys are the pool keys of the orders.
	// If nil then there is no pool key filter.
	PoolKeys [][]byte

	// Statuses are the statuses of the orders.
	// If nil then there is no status filter.
	Statuses []string

	// FromScheduled is the earliest scheduled time from which to fetch orders.
	// If nil then there is no earliest scheduled time.
	FromScheduled *time.Time

	// ToScheduled is the latest scheduled time to which to fetch orders.
	// If nil then there is no latest scheduled time.
	ToScheduled *time.Time
}
