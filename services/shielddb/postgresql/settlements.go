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
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Najnomics/MEVShieldPool-sub001/services/shielddb"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
)

// Settlements returns settlements matching the supplied filter.
func (s *Service) Settlements(ctx context.Context,
	filter *shielddb.SettlementFilter,
) (
	[]*shielddb.Settlement,
	error,
) {
	ctx, span := otel.Tracer("mevshieldpool.services.shielddb.postgresql").Start(ctx, "Settlements")
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
SELECT f_pool_key
      ,f_round
      ,f_winner
      ,f_amount
      ,f_mev_captured
      ,f_finalised_at
FROM t_settlements`)

	wherestr := "WHERE"

	if len(filter.PoolKeys) != 0 {
		queryVals = append(queryVals, filter.PoolKeys)
		_, _ = queryBuilder.WriteString(fmt.Sprintf(`
%s f_pool_key = ANY($%d)`, wherestr, len(queryVals)))
		wherestr = "  AND"
	}

	if filter.FromRound != nil {
		queryVals = append(queryVals, *filter.FromRound)
		_, _ = queryBuilder.WriteString(fmt.Sprintf(`
%s f_round >= $%d`, wherestr, len(queryVals)))
		wherestr = "  AND"
	}

	if filter.ToRound != nil {
		queryVals = append(queryVals, *filter.ToRound)
		_, _ = queryBuilder.WriteString(fmt.Sprintf(`
%s f_round <= $%d`, wherestr, len(queryVals)))
		wherestr = "  AND"
	}

	if len(filter.Winners) != 0 {
		queryVals = append(queryVals, filter.Winners)
		_, _ = queryBuilder.WriteString(fmt.Sprintf(`
%s f_winner = ANY($%d)`, wherestr, len(queryVals)))
	}

	switch filter.Order {
	case shielddb.OrderEarliest:
		_, _ = queryBuilder.WriteString(`
ORDER BY f_round,f_pool_key`)
	case shielddb.OrderLatest:
		_, _ = queryBuilder.WriteString(`
ORDER BY f_round DESC,f_pool_key DESC`)
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

	settlements := make([]*shielddb.Settlement, 0)
	for rows.Next() {
		var amount decimal.Decimal
		var mevCaptured decimal.Decimal
		settlement := &shielddb.Settlement{}
		err := rows.Scan(
			&settlement.PoolKey,
			&settlement.Round,
			&settlement.Winner,
			&amount,
			&mevCaptured,
			&settlement.FinalisedAt,
		)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan row")
		}
		settlement.Amount = amount.BigInt()
		settlement.MEVCaptured = mevCaptured.BigInt()
		settlements = append(settlements, settlement)
	}

	// Always return order of round then pool key.
	sort.Slice(settlements, func(i int, j int) bool {
		if settlements[i].Round != settlements[j].Round {
			return settlements[i].Round < settlements[j].Round
		}

		return bytes.Compare(settlements[i].PoolKey, settlements[j].PoolKey) < 0
	})

	return settlements, nil
}
