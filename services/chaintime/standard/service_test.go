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
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseAndCheckParametersMissingGenesisTime(t *testing.T) {
	ctx := context.Background()

	_, err := New(ctx, WithRoundDuration(300*time.Second))
	require.EqualError(t, err, "problem with parameters: no genesis time specified")
}

func TestParseAndCheckParametersMissingRoundDuration(t *testing.T) {
	ctx := context.Background()

	_, err := New(ctx, WithGenesisTime(time.Unix(1700000000, 0)))
	require.EqualError(t, err, "problem with parameters: no round duration specified")
}

func TestRoundArithmetic(t *testing.T) {
	ctx := context.Background()
	genesis := time.Unix(1700000000, 0)

	svc, err := New(ctx,
		WithGenesisTime(genesis),
		WithRoundDuration(300*time.Second),
	)
	require.NoError(t, err)

	require.Equal(t, genesis, svc.GenesisTime())
	require.Equal(t, 300*time.Second, svc.RoundDuration())

	require.Equal(t, uint64(0), svc.TimestampToRound(genesis))
	require.Equal(t, uint64(0), svc.TimestampToRound(genesis.Add(299*time.Second)))
	require.Equal(t, uint64(1), svc.TimestampToRound(genesis.Add(300*time.Second)))
	require.Equal(t, uint64(10), svc.TimestampToRound(genesis.Add(3000*time.Second)))

	require.Equal(t, genesis, svc.StartOfRound(0))
	require.Equal(t, genesis.Add(300*time.Second), svc.StartOfRound(1))
	require.Equal(t, genesis.Add(3000*time.Second), svc.StartOfRound(10))
}

func TestTimestampBeforeGenesis(t *testing.T) {
	ctx := context.Background()
	genesis := time.Unix(1700000000, 0)

	svc, err := New(ctx,
		WithGenesisTime(genesis),
		WithRoundDuration(300*time.Second),
	)
	require.NoError(t, err)

	require.Equal(t, uint64(0), svc.TimestampToRound(genesis.Add(-time.Hour)))
}

func TestCurrentRoundTracksCurrentTime(t *testing.T) {
	ctx := context.Background()

	svc, err := New(ctx,
		WithGenesisTime(time.Unix(1700000000, 0)),
		WithRoundDuration(300*time.Second),
	)
	require.NoError(t, err)

	require.Equal(t, svc.TimestampToRound(svc.CurrentTime()), svc.CurrentRound())
}
