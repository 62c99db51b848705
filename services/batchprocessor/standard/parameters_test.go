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

	ledgerpayout "github.com/Najnomics/MEVShieldPool-sub001/services/payout/ledger"
)

func TestParseAndCheckParametersValid(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}

	payoutSink, err := ledgerpayout.New(ctx)
	require.NoError(t, err)

	parameters, err := parseAndCheckParameters(
		WithChainTime(newTestChainTime(t, clock)),
		WithPayoutSink(payoutSink),
		WithMinProfit(big.NewInt(100)),
		WithMaxLanes(8),
	)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(100), parameters.minProfit)
	require.Equal(t, 8, parameters.maxLanes)
}

func TestParseAndCheckParametersMissingChainTime(t *testing.T) {
	ctx := context.Background()

	payoutSink, err := ledgerpayout.New(ctx)
	require.NoError(t, err)

	_, err = parseAndCheckParameters(
		WithPayoutSink(payoutSink),
	)
	require.EqualError(t, err, "no chain time specified")
}

func TestParseAndCheckParametersMissingPayoutSink(t *testing.T) {
	clock := &testClock{now: time.Unix(1700000000, 0)}

	_, err := parseAndCheckParameters(
		WithChainTime(newTestChainTime(t, clock)),
	)
	require.EqualError(t, err, "no payout sink specified")
}

func TestParseAndCheckParametersNilMinProfit(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}

	payoutSink, err := ledgerpayout.New(ctx)
	require.NoError(t, err)

	_, err = parseAndCheckParameters(
		WithChainTime(newTestChainTime(t, clock)),
		WithPayoutSink(payoutSink),
		WithMinProfit(nil),
	)
	require.EqualError(t, err, "no minimum profit specified")
}

func TestParseAndCheckParametersInvalidMaxLanes(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}

	payoutSink, err := ledgerpayout.New(ctx)
	require.NoError(t, err)

	_, err = parseAndCheckParameters(
		WithChainTime(newTestChainTime(t, clock)),
		WithPayoutSink(payoutSink),
		WithMaxLanes(0),
	)
	require.EqualError(t, err, "no maximum lanes specified")
}

func TestParseAndCheckParametersDefaults(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Unix(1700000000, 0)}

	payoutSink, err := ledgerpayout.New(ctx)
	require.NoError(t, err)

	parameters, err := parseAndCheckParameters(
		WithChainTime(newTestChainTime(t, clock)),
		WithPayoutSink(payoutSink),
	)
	require.NoError(t, err)
	require.Equal(t, 32, parameters.maxLanes)
	require.Equal(t, 0, parameters.minProfit.Sign())
}
