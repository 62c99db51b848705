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

package bidcrypt

import (
	"context"
	"math/big"
	"time"

	"github.com/pkg/errors"
)

// ConditionKind is the kind of an access condition.
type ConditionKind uint8

const (
	// ConditionBalanceAtLeast requires the requesting account to hold at least MinBalance.
	ConditionBalanceAtLeast ConditionKind = iota + 1
	// ConditionBlockTimeBefore requires evaluation to happen before Deadline.
	ConditionBlockTimeBefore
)

// Condition is a single access condition attached to a sealed bid.
// Exactly the fields relevant to Kind are set.
type Condition struct {
	Kind ConditionKind

	// MinBalance applies to ConditionBalanceAtLeast.
	MinBalance *big.Int

	// Deadline applies to ConditionBlockTimeBefore.
	Deadline time.Time
}

// BalanceProvider provides account balances for condition evaluation.
type BalanceProvider interface {
	// Balance provides the current balance of the given account.
	AccountBalance(ctx context.Context, account string) (*big.Int, error)
}

// ErrConditionFailed is returned when an access condition is not met.
var ErrConditionFailed = errors.New("access condition not met")

// Evaluate confirms that all conditions hold for the given account at the given time.
func Evaluate(ctx context.Context,
	conditions []Condition,
	account string,
	balances BalanceProvider,
	now time.Time,
) error {
	for _, condition := range conditions {
		switch condition.Kind {
		case ConditionBalanceAtLeast:
			if condition.MinBalance == nil {
				return errors.New("balance condition missing minimum balance")
			}
			if balances == nil {
				return errors.New("no balance provider for balance condition")
			}
			balance, err := balances.AccountBalance(ctx, account)
			if err != nil {
				return errors.Wrap(err, "failed to obtain account balance")
			}
			if balance.Cmp(condition.MinBalance) < 0 {
				return ErrConditionFailed
			}
		case ConditionBlockTimeBefore:
			if !now.Before(condition.Deadline) {
				return ErrConditionFailed
			}
		default:
			return errors.New("unknown condition kind")
		}
	}

	return nil
}
