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

// Package pricefeed defines the boundary to the external price oracle network.
package pricefeed

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Price is a single price observation from a feed.
type Price struct {
	FeedID      string
	Value       decimal.Decimal
	Confidence  decimal.Decimal
	PublishedAt time.Time
}

// Provider provides prices from an external feed network.
type Provider interface {
	// Price provides the latest price observation for the given feed.
	Price(ctx context.Context, feedID string) (*Price, error)
}

// ErrStalePrice is returned when a price is older than the policy allows.
var ErrStalePrice = errors.New("price too old")

// ErrLowConfidence is returned when a price's confidence interval is wider than the policy allows.
var ErrLowConfidence = errors.New("price confidence too wide")

// Policy is the acceptance policy applied to prices before they are used.
// The policy is owned by this module, not by the feed network.
type Policy struct {
	// MaxAge is the maximum acceptable age of a price.
	MaxAge time.Duration
	// MaxConfidence is the widest acceptable confidence interval.
	MaxConfidence decimal.Decimal
}

// Check confirms that the given price is usable under the policy at the given time.
func (p *Policy) Check(price *Price, now time.Time) error {
	if price == nil {
		return errors.New("no price supplied")
	}
	if p.MaxAge > 0 && now.Sub(price.PublishedAt) > p.MaxAge {
		return ErrStalePrice
	}
	if p.MaxConfidence.Sign() > 0 && price.Confidence.GreaterThan(p.MaxConfidence) {
		return ErrLowConfidence
	}

	return nil
}
