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

package bidcrypt_test

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Najnomics/MEVShieldPool-sub001/services/bidcrypt"
)

// staticBalances provides fixed balances per account.
type staticBalances struct {
	balances map[string]int64
}

func (b *staticBalances) AccountBalance(_ context.Context, account string) (*big.Int, error) {
	return big.NewInt(b.balances[account]), nil
}

func TestEvaluate(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1700000000, 0)
	balances := &staticBalances{balances: map[string]int64{"rich": 1000, "poor": 10}}

	tests := []struct {
		name       string
		conditions []bidcrypt.Condition
		account    string
		err        string
	}{
		{
			name: "NoConditions",
		},
		{
			name: "BalanceMet",
			conditions: []bidcrypt.Condition{
				{Kind: bidcrypt.ConditionBalanceAtLeast, MinBalance: big.NewInt(100)},
			},
			account: "rich",
		},
		{
			name: "BalanceNotMet",
			conditions: []bidcrypt.Condition{
				{Kind: bidcrypt.ConditionBalanceAtLeast, MinBalance: big.NewInt(100)},
			},
			account: "poor",
			err:     "access condition not met",
		},
		{
			name: "BalanceMissingMinimum",
			conditions: []bidcrypt.Condition{
				{Kind: bidcrypt.ConditionBalanceAtLeast},
			},
			account: "rich",
			err:     "balance condition missing minimum balance",
		},
		{
			name: "DeadlineMet",
			conditions: []bidcrypt.Condition{
				{Kind: bidcrypt.ConditionBlockTimeBefore, Deadline: now.Add(time.Hour)},
			},
		},
		{
			name: "DeadlinePassed",
			conditions: []bidcrypt.Condition{
				{Kind: bidcrypt.ConditionBlockTimeBefore, Deadline: now},
			},
			err: "access condition not met",
		},
		{
			name: "AllMustHold",
			conditions: []bidcrypt.Condition{
				{Kind: bidcrypt.ConditionBalanceAtLeast, MinBalance: big.NewInt(100)},
				{Kind: bidcrypt.ConditionBlockTimeBefore, Deadline: now},
			},
			account: "rich",
			err:     "access condition not met",
		},
		{
			name: "UnknownKind",
			conditions: []bidcrypt.Condition{
				{Kind: bidcrypt.ConditionKind(99)},
			},
			err: "unknown condition kind",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := bidcrypt.Evaluate(ctx, test.conditions, test.account, balances, now)
			if test.err != "" {
				require.EqualError(t, err, test.err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestEvaluateWithoutBalanceProvider(t *testing.T) {
	ctx := context.Background()

	err := bidcrypt.Evaluate(ctx,
		[]bidcrypt.Condition{{Kind: bidcrypt.ConditionBalanceAtLeast, MinBalance: big.NewInt(100)}},
		"rich",
		nil,
		time.Unix(1700000000, 0),
	)
	require.EqualError(t, err, "no balance provider for balance condition")
}
