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

// Package standard is a chain time service anchored to a configurable genesis.
package standard

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	zerologger "github.com/rs/zerolog/log"
)

// Service provides auction time services.
type Service struct {
	genesisTime   time.Time
	roundDuration time.Duration
}

// module-wide log.
var log zerolog.Logger

// New creates a new chain time service.
func New(_ context.Context, params ...Parameter) (*Service, error) {
	parameters, err := parseAndCheckParameters(params...)
	if err != nil {
		return nil, errors.Wrap(err, "problem with parameters")
	}

	// Set logging.
	log = zerologger.With().Str("service", "chaintime").Str("impl", "standard").Logger().Level(parameters.logLevel)

	s := &Service{
		genesisTime:   parameters.genesisTime,
		roundDuration: parameters.roundDuration,
	}
	log.Trace().Time("genesis_time", s.genesisTime).Dur("round_duration", s.roundDuration).Msg("Configured chain time")

	return s, nil
}

// GenesisTime provides the time of the protocol's genesis.
func (s *Service) GenesisTime() time.Time {
	return s.genesisTime
}

// CurrentTime provides the current time as observed by the daemon.
func (*Service) CurrentTime() time.Time {
	return time.Now()
}

// RoundDuration provides the duration of a single auction round.
func (s *Service) RoundDuration() time.Duration {
	return s.roundDuration
}

// CurrentRound provides the index of the auction round containing the current time.
func (s *Service) CurrentRound() uint64 {
	return s.TimestampToRound(s.CurrentTime())
}

// StartOfRound provides the start time of the given auction round.
func (s *Service) StartOfRound(round uint64) time.Time {
	return s.genesisTime.Add(time.Duration(round) * s.roundDuration)
}

// TimestampToRound provides the auction round containing the given timestamp.
func (s *Service) TimestampToRound(timestamp time.Time) uint64 {
	if timestamp.Before(s.genesisTime) {
		return 0
	}
	return uint64(timestamp.Sub(s.genesisTime) / s.roundDuration)
}
