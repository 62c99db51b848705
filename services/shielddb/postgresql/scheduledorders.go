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
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Najnomics/MEVShieldPool-sub001/services/shielddb"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
)

// ScheduledOrders returns scheduled orders matching the supplied filter.
func (s *Service) ScheduledOrders(ctx context.Context,
	filter *shielddb.ScheduledOrderFilter,
) (
	[]*shielddb.ScheduledOrder,
	error,
) {
	ctx, span := otel.Tracer("mevshieldpool.services.shielddb.postgresql").Start(ctx, "ScheduledOrders")
	defer span.End()

	tx := s.tx(ctx)
	if tx == nil {
		ctx, err := s.BeginROTx(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to begin transaction")
		}
		tx = s.tx(ctx)
		defer s.CommitROTx(ctx)
	}

	// Build the query.
	queryBuilder := strings.Builder{}
	queryVals := make([]any, 0)

	_, _ = queryBuilder.WriteString(`
SELECT f_order_id
      ,f_pool_key
      ,f_owner
      ,f_volume
      ,f_ready_at
      ,f_status
      ,f_reason
      ,f_scheduled_at
      ,f_dispatched_at
FROM t_scheduled_orders`)

	wherestr := "WHERE"

	if len(filter.PoolKeys) != 0 {
		queryVals = append(queryVals, filter.PoolKeys)
		_, _ = queryBuilder.WriteString(fmt.Sprintf(`
%s f_pool_key = ANY($%d)`, wherestr, len(queryVals)))
		wherestr = "  AND"
	}

	if len(filter.Statuses) != 0 {
		queryVals = append(queryVals, filter.Statuses)
		_, _ = queryBuilder.WriteString(fmt.Sprintf(`
%s f_status = ANY($%d)`, wherestr, len(queryVals)))
		wherestr = "  AND"
	}

	if filter.FromScheduled != nil {
		queryVals = append(queryVals, *filter.FromScheduled)
		_, _ = queryBuilder.WriteString(fmt.Sprintf(`
%s f_scheduled_at >= $%d`, wherestr, len(queryVals)))
		wherestr = "  AND"
	}

	if filter.ToScheduled != nil {
		queryVals = append(queryVals, *filter.ToScheduled)
		_, _ = queryBuilder.WriteString(fmt.Sprintf(`
%s f_scheduled_at <= $%d`, wherestr, len(queryVals)))
	}

	switch filter.Order {
	case shielddb.OrderEarliest:
		_, _ = queryBuilder.WriteString(`
ORDER BY f_scheduled_at,f_order_id`)
	case shielddb.OrderLatest:
		_, _ = queryBuilder.WriteString(`
ORDER BY f_scheduled_at DESC,f_order_id DESC`)
	default:
		return nil, errors.New("no order specified")
	}

	if filter.Limit != nil {
		queryVals = append(queryVals, *filter.Limit)
		_, _ = queryBuilder.WriteString(fmt.Sprintf(`
LIMIT $%d`, len(queryVals)))
	}

	if e := log.Trace(); e.Enabled() {
		params := make([]string, len(queryVals))
		for i := range queryVals {
			params[i] = fmt.Sprintf("%v", queryVals[i])
		}
		e.Str("query", strings.ReplaceAll(queryBuilder.String(), "\n", " ")).Strs("params", params).Msg("SQL query")
	}

	rows, err := tx.Query(ctx,
		queryBuilder.String(),
		queryVals...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*shielddb.ScheduledOrder, 0)
	for rows.Next() {
		var volume decimal.Decimal
		var dispatchedAt *time.Time
		order := &shielddb.ScheduledOrder{}
		err := rows.Scan(
			&order.OrderID,
			&order.PoolKey,
			&order.Owner,
			&volume,
			&order.ReadyAt,
			&order.Status,
			&order.Reason,
			&order.ScheduledAt,
			&dispatchedAt,
		)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan row")
		}
		order.Volume = volume.BigInt()
		if dispatchedAt != nil {
			order.DispatchedAt = *dispatchedAt
		}
		orders = append(orders, order)
	}

	// Always return order of scheduled time then order ID.
	sort.Slice(orders, func(i int, j int) bool {
		if !orders[i].ScheduledAt.Equal(orders[j].ScheduledAt) {
			return orders[i].ScheduledAt.Before(orders[j].ScheduledAt)
		}

		return orders[i].OrderID < orders[j].OrderID
	})

	return orders, nil
}
