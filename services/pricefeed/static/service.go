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

// Package static is a price feed provider returning configured prices.
package static

import (
	"context"
	"time"

	"github.com/Najnomics/MEVShieldPool-sub001/services/pricefeed"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	zerologger "github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Service is a price feed provider returning configured prices.
type Service struct {
	prices map[string]decimal.Decimal
}

// module-wide log.
var log zerolog.Logger

// New creates a new static price feed provider.
func New(_ context.Context, params ...Parameter) (*Service, error) {
	parameters, err := parseAndCheckParameters(params...)
	if err != nil {
		return nil, errors.Wrap(err, "problem with parameters")
	}

	// Set logging.
	log = zerologger.With().Str("service", "pricefeed").Str("impl", "static").Logger().Level(parameters.logLevel)

	return &Service{
		prices: parameters.prices,
	}, nil
}

// Price provides the configured price for the given feed.
func (s *Service) Price(_ context.Context, feedID string) (*pricefeed.Price, error) {
	value, exists := s.prices[feedID]
	if !exists {
		return nil, errors.New("unknown feed")
	}

	return &pricefeed.Price{
		FeedID:      feedID,
		Value:       value,
		Confidence:  decimal.Zero,
		PublishedAt: time.Now(),
	}, nil
}
