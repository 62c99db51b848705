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

package postgresql

import (
	"context"

	"github.com/Najnomics/MEVShieldPool-sub001/services/shielddb"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// SetSettlement sets a settlement.
func (s *Service) SetSettlement(ctx context.Context, settlement *shielddb.Settlement) error {
	if settlement == nil {
		return errors.New("settlement nil")
	}

	tx := s.tx(ctx)
	if tx == nil {
		return ErrNoTransaction
	}

	_, err := tx.Exec(ctx, `
INSERT INTO t_settlements(f_pool_key
                         ,f_round
                         ,f_winner
                         ,f_amount
                         ,f_mev_captured
                         ,f_finalised_at
                         )
VALUES($1,$2,$3,$4,$5,$6)
ON CONFLICT (f_pool_key,f_round) DO
UPDATE
SET f_winner = excluded.f_winner
   ,f_amount = excluded.f_amount
   ,f_mev_captured = excluded.f_mev_captured
   ,f_finalised_at = excluded.f_finalised_at
`,
		settlement.PoolKey,
		settlement.Round,
		settlement.Winner,
		decimal.NewFromBigInt(settlement.Amount, 0),
		decimal.NewFromBigInt(settlement.MEVCaptured, 0),
		settlement.FinalisedAt,
	)
	if err != nil {
		return err
	}

	return nil
}
