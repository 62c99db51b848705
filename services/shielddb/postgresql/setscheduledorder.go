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
	"time"

	"github.com/Najnomics/MEVShieldPool-sub001/services/shielddb"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// SetScheduledOrder sets a scheduled order.
func (s *Service) SetScheduledOrder(ctx context.Context, order *shielddb.ScheduledOrder) error {
	if order == nil {
		return errors.New("order nil")
	}

	tx := s.tx(ctx)
	if tx == nil {
		return ErrNoTransaction
	}

	var dispatchedAt *time.Time
	if !order.DispatchedAt.IsZero() {
		dispatchedAt = &order.DispatchedAt
	}
	_, err := tx.Exec(ctx, `
INSERT INTO t_scheduled_orders(f_order_id
                              ,f_pool_key
                              ,f_owner
                              ,f_volume
                              ,f_ready_at
                              ,f_status
                              ,f_reason
                              ,f_scheduled_at
                              ,f_dispatched_at
                              )
VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9)
ON CONFLICT (f_order_id) DO
UPDATE
SET f_status = excluded.f_status
   ,f_reason = excluded.f_reason
   ,f_dispatched_at = excluded.f_dispatched_at
`,
		order.OrderID,
		order.PoolKey,
		order.Owner,
		decimal.NewFromBigInt(order.Volume, 0),
		order.ReadyAt,
		order.Status,
		order.Reason,
		order.ScheduledAt,
		dispatchedAt,
	)
	if err != nil {
		return err
	}

	return nil
}
