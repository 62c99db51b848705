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

// Package postgresql provides a PostgreSQL-backed shield pool database.
package postgresql

import (
	"context"
	"fmt"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	pgxzerolog "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	zerologger "github.com/rs/zerolog/log"
)

// Service is a PostgreSQL database service.
type Service struct {
	pool *pgxpool.Pool
}

// ErrNoTransaction is returned when an attempt to carry out a mutation to the database
// is not inside a transaction.
var ErrNoTransaction = errors.New("no transaction for action")

// module-wide log.
var log zerolog.Logger

type txKeyType struct{}

var txKey txKeyType

// New creates a new database service.
func New(ctx context.Context, params ...Parameter) (*Service, error) {
	parameters, err := parseAndCheckParameters(params...)
	if err != nil {
		return nil, errors.Wrap(err, "problem with parameters")
	}

	// Set logging.
	log = zerologger.With().Str("service", "shielddb").Str("impl", "postgresql").Logger()
	if parameters.logLevel != log.GetLevel() {
		log = log.Level(parameters.logLevel)
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d", parameters.user, parameters.password, parameters.server, parameters.port)
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse database configuration")
	}
	config.ConnConfig.Tracer = &tracelog.TraceLog{
		Logger:   pgxzerolog.NewLogger(log),
		LogLevel: tracelog.LogLevelWarn,
	}
	config.AfterConnect = func(_ context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	s := &Service{
		pool: pool,
	}

	if err := s.Upgrade(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to upgrade database")
	}

	return s, nil
}

// Close closes the database connection pool.
func (s *Service) Close() {
	s.pool.Close()
}

// tx obtains the transaction from the context; nil if no transaction.
func (*Service) tx(ctx context.Context) pgx.Tx {
	if ctx == nil {
		return nil
	}
	if tx, ok := ctx.Value(txKey).(pgx.Tx); ok {
		return tx
	}

	return nil
}

// BeginTx begins a read/write transaction, returning a context carrying the
// transaction and a cancel function that rolls it back.
func (s *Service) BeginTx(ctx context.Context) (context.Context, context.CancelFunc, error) {
	ctx, cancel := context.WithCancel(ctx)
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel: pgx.Serializable,
	})
	if err != nil {
		cancel()
		return ctx, nil, errors.Wrap(err, "failed to begin transaction")
	}
	ctx = context.WithValue(ctx, txKey, tx)

	return ctx, func() {
		//nolint:errcheck
		tx.Rollback(ctx)
		cancel()
	}, nil
}

// CommitTx commits the transaction carried by the context.
func (s *Service) CommitTx(ctx context.Context) error {
	tx := s.tx(ctx)
	if tx == nil {
		return ErrNoTransaction
	}

	return tx.Commit(ctx)
}

// BeginROTx begins a read-only transaction, returning a context carrying it.
// The transaction should be released with CommitROTx once queries are complete.
func (s *Service) BeginROTx(ctx context.Context) (context.Context, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return ctx, errors.Wrap(err, "failed to begin read-only transaction")
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// CommitROTx commits the read-only transaction carried by the context.
func (s *Service) CommitROTx(ctx context.Context) {
	tx := s.tx(ctx)
	if tx == nil {
		return
	}
	if err := tx.Commit(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to commit read-only transaction")
	}
}

// SetMetadata sets a metadata key to a JSON value.
func (s *Service) SetMetadata(ctx context.Context, key string, value []byte) error {
	tx := s.tx(ctx)
	if tx == nil {
		return ErrNoTransaction
	}

	_, err := tx.Exec(ctx, `
INSERT INTO t_metadata(f_key
                      ,f_value)
VALUES($1,$2)
ON CONFLICT (f_key) DO
UPDATE
SET f_value = excluded.f_value`,
		key,
		value,
	)

	return err
}

// Metadata obtains the JSON value from a metadata key.
func (s *Service) Metadata(ctx context.Context, key string) ([]byte, error) {
	tx := s.tx(ctx)
	if tx == nil {
		var err error
		ctx, err = s.BeginROTx(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to begin transaction")
		}
		tx = s.tx(ctx)
		defer s.CommitROTx(ctx)
	}

	rows, err := tx.Query(ctx, `
SELECT f_value
FROM t_metadata
WHERE f_key = $1`,
		key,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var value []byte
	if rows.Next() {
		if err := rows.Scan(&value); err != nil {
			return nil, errors.Wrap(err, "failed to scan row")
		}
	}

	return value, nil
}
