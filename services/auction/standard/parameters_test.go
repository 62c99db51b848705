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
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	chaintimeMocks "github.com/Najnomics/MEVShieldPool-sub001/mocks/chaintime"
	payoutMocks "github.com/Najnomics/MEVShieldPool-sub001/mocks/payout"
)

// staticSeedProvider provides a fixed seed for round creation.
type staticSeedProvider struct {
	seed [32]byte
}

func (p *staticSeedProvider) Seed(_ context.Context) ([32]byte, error) {
	return p.seed, nil
}

func TestParseAndCheckParametersValid(t *testing.T) {
	params, err := parseAndCheckParameters(
		WithChainTime(chaintimeMocks.NewMockService(t)),
		WithPayoutSink(payoutMocks.NewMockSink(t)),
		WithSeedProvider(&staticSeedProvider{}),
		WithRoundDuration(300*time.Second),
	)
	require.NoError(t, err)
	require.NotNil(t, params)
}

func TestParseAndCheckParametersMissingChainTime(t *testing.T) {
	_, err := parseAndCheckParameters(
		WithPayoutSink(payoutMocks.NewMockSink(t)),
		WithSeedProvider(&staticSeedProvider{}),
		WithRoundDuration(300*time.Second),
	)
	require.EqualError(t, err, "no chain time specified")
}

func TestParseAndCheckParametersMissingPayoutSink(t *testing.T) {
	_, err := parseAndCheckParameters(
		WithChainTime(chaintimeMocks.NewMockService(t)),
		WithSeedProvider(&staticSeedProvider{}),
		WithRoundDuration(300*time.Second),
	)
	require.EqualError(t, err, "no payout sink specified")
}

func TestParseAndCheckParametersMissingSeedProvider(t *testing.T) {
	_, err := parseAndCheckParameters(
		WithChainTime(chaintimeMocks.NewMockService(t)),
		WithPayoutSink(payoutMocks.NewMockSink(t)),
		WithRoundDuration(300*time.Second),
	)
	require.EqualError(t, err, "no seed provider specified")
}

func TestParseAndCheckParametersMissingRoundDuration(t *testing.T) {
	_, err := parseAndCheckParameters(
		WithChainTime(chaintimeMocks.NewMockService(t)),
		WithPayoutSink(payoutMocks.NewMockSink(t)),
		WithSeedProvider(&staticSeedProvider{}),
	)
	require.EqualError(t, err, "no round duration specified")
}

func TestParseAndCheckParametersNegativeMinBid(t *testing.T) {
	_, err := parseAndCheckParameters(
		WithChainTime(chaintimeMocks.NewMockService(t)),
		WithPayoutSink(payoutMocks.NewMockSink(t)),
		WithSeedProvider(&staticSeedProvider{}),
		WithRoundDuration(300*time.Second),
		WithMinBid(big.NewInt(-1)),
	)
	require.EqualError(t, err, "invalid minimum bid")
}

func TestParseAndCheckParametersPriceProviderWithoutFeedID(t *testing.T) {
	_, err := parseAndCheckParameters(
		WithChainTime(chaintimeMocks.NewMockService(t)),
		WithPayoutSink(payoutMocks.NewMockSink(t)),
		WithSeedProvider(&staticSeedProvider{}),
		WithRoundDuration(300*time.Second),
		WithPriceProvider(&staticPriceProvider{}),
	)
	require.EqualError(t, err, "no price feed ID specified")
}

func TestParseAndCheckParametersWithMinBid(t *testing.T) {
	params, err := parseAndCheckParameters(
		WithChainTime(chaintimeMocks.NewMockService(t)),
		WithPayoutSink(payoutMocks.NewMockSink(t)),
		WithSeedProvider(&staticSeedProvider{}),
		WithRoundDuration(300*time.Second),
		WithMinBid(big.NewInt(1000)),
	)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(1000), params.minBid)
}
