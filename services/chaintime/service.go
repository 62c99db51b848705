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

// Package chaintime provides time services for the auction chain.
package chaintime

import "time"

// Service provides a number of functions for calculating auction-related times.
type Service interface {
	// GenesisTime provides the time of the protocol's genesis.
	GenesisTime() time.Time

	// CurrentTime provides the current time as observed by the daemon.
	CurrentTime() time.Time

	// RoundDuration provides the duration of a single auction round.
	RoundDuration() time.Duration

	// CurrentRound provides the index of the auction round containing the current time.
	CurrentRound() uint64

	// StartOfRound provides the start time of the given auction round.
	StartOfRound(round uint64) time.Time

	// TimestampToRound provides the auction round containing the given timestamp.
	TimestampToRound(timestamp time.Time) uint64
}
