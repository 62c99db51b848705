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
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	chaintimeMocks "github.com/Najnomics/MEVShieldPool-sub001/mocks/chaintime"
)

func TestParseAndCheckParametersValid(t *testing.T) {
	params, err := parseAndCheckParameters(
		WithChainTime(chaintimeMocks.NewMockService(t)),
		WithSettlementSink(&recordingSink{}),
		WithMaxDelay(300*time.Second),
	)
	require.NoError(t, err)
	require.NotNil(t, params)
}

func TestParseAndCheckParametersMissingChainTime(t *testing.T) {
	_, err := parseAndCheckParameters(
		WithSettlementSink(&recordingSink{}),
		WithMaxDelay(300*time.Second),
	)
	require.EqualError(t, err, "no chain time specified")
}

func TestParseAndCheckParametersMissingSettlementSink(t *testing.T) {
	_, err := parseAndCheckParameters(
		WithChainTime(chaintimeMocks.NewMockService(t)),
		WithMaxDelay(300*time.Second),
	)
	require.EqualError(t, err, "no settlement sink specified")
}

func TestParseAndCheckParametersMissingMaxDelay(t *testing.T) {
	_, err := parseAndCheckParameters(
		WithChainTime(chaintimeMocks.NewMockService(t)),
		WithSettlementSink(&recordingSink{}),
	)
	require.EqualError(t, err, "no maximum delay specified")
}

func TestParseAndCheckParametersMaxDelayBelowMinDelay(t *testing.T) {
	_, err := parseAndCheckParameters(
		WithChainTime(chaintimeMocks.NewMockService(t)),
		WithSettlementSink(&recordingSink{}),
		WithMinDelay(10*time.Second),
		WithMaxDelay(time.Second),
	)
	require.EqualError(t, err, "maximum delay below minimum delay")
}

func TestParseAndCheckParametersNegativeRandomisationWindow(t *testing.T) {
	_, err := parseAndCheckParameters(
		WithChainTime(chaintimeMocks.NewMockService(t)),
		WithSettlementSink(&recordingSink{}),
		WithMaxDelay(300*time.Second),
		WithRandomisationWindow(-time.Second),
	)
	require.EqualError(t, err, "negative randomisation window specified")
}

func TestParseAndCheckParametersDefaults(t *testing.T) {
	params, err := parseAndCheckParameters(
		WithChainTime(chaintimeMocks.NewMockService(t)),
		WithSettlementSink(&recordingSink{}),
		WithMaxDelay(300*time.Second),
	)
	require.NoError(t, err)
	require.Equal(t, float64(1), params.volumeCoefficient)
	require.Equal(t, time.Second, params.dispatchInterval)
	require.Equal(t, 64, params.dispatchBatchSize)
}
