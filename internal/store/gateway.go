// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-spellbook/internal/logger"
)

// Scanner is the row view handed to scan callbacks. *sql.Rows satisfies it.
type Scanner interface {
	Scan(dest ...any) error
}

// ScanFunc reads one row.
type ScanFunc func(row Scanner) error

// querier is the statement surface shared by *sql.Conn and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Tx exposes the gateway verbs inside an open transaction.
type Tx struct {
	db *DB
	tx *sql.Tx
}

// QueryAll runs query and calls scan once per result row.
//
// Every verb checks out its own connection and closes it before returning.
func (db *DB) QueryAll(ctx context.Context, query sq.Sqlizer, scan ScanFunc) error {
	conn, err := db.conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = db.queryRows(ctx, conn, query, scan, false)
	return err
}

// QueryOne runs query and scans the first row. It returns [ErrNoRows] when
// the query matched nothing.
func (db *DB) QueryOne(ctx context.Context, query sq.Sqlizer, scan ScanFunc) error {
	conn, err := db.conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	return db.queryOne(ctx, conn, query, scan)
}

// Execute runs a DML statement and returns the number of affected rows.
func (db *DB) Execute(ctx context.Context, query sq.Sqlizer) (int64, error) {
	conn, err := db.conn(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	return db.execute(ctx, conn, query)
}

// InTx runs fn inside a single transaction on a dedicated connection.
// The transaction commits when fn returns nil and rolls back otherwise.
func (db *DB) InTx(ctx context.Context, fn func(tx *Tx) error) error {
	log := logger.FromContext(ctx)

	conn, err := db.conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	sqlTx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*DB.InTx").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer sqlTx.Rollback()

	if err = fn(&Tx{db: db, tx: sqlTx}); err != nil {
		return err
	}

	if err = sqlTx.Commit(); err != nil {
		log.Err(err).Str("func", "*DB.InTx").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// QueryOne is [DB.QueryOne] inside the transaction.
func (t *Tx) QueryOne(ctx context.Context, query sq.Sqlizer, scan ScanFunc) error {
	return t.db.queryOne(ctx, t.tx, query, scan)
}

// Execute is [DB.Execute] inside the transaction.
func (t *Tx) Execute(ctx context.Context, query sq.Sqlizer) (int64, error) {
	return t.db.execute(ctx, t.tx, query)
}

func (db *DB) conn(ctx context.Context) (*sql.Conn, error) {
	conn, err := db.Conn(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*DB.conn").Msg("failed to acquire connection")
		return nil, db.wrapDriverError(ErrAcquiringConnection, err)
	}
	return conn, nil
}

func (db *DB) queryOne(ctx context.Context, q querier, query sq.Sqlizer, scan ScanFunc) error {
	found, err := db.queryRows(ctx, q, query, scan, true)
	if err != nil {
		return err
	}
	if !found {
		return ErrNoRows
	}
	return nil
}

// queryRows scans rows until exhausted, or only the first one when firstOnly
// is set. It reports whether any row was seen.
func (db *DB) queryRows(ctx context.Context, q querier, query sq.Sqlizer, scan ScanFunc, firstOnly bool) (bool, error) {
	log := logger.FromContext(ctx)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*DB.queryRows").Msg("failed to build query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Err(err).Str("func", "*DB.queryRows").Str("query", sqlStr).Msg("failed to execute query")
		return false, db.wrapDriverError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	found := false
	for rows.Next() {
		found = true
		if err = scan(rows); err != nil {
			log.Err(err).Str("func", "*DB.queryRows").Msg("failed to scan row")
			return found, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if firstOnly {
			break
		}
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*DB.queryRows").Msg("error iterating rows")
		return found, db.wrapDriverError(ErrExecutingQuery, err)
	}

	return found, nil
}

func (db *DB) execute(ctx context.Context, q querier, query sq.Sqlizer) (int64, error) {
	log := logger.FromContext(ctx)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*DB.execute").Msg("failed to build statement")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := q.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		log.Err(err).Str("func", "*DB.execute").Str("query", sqlStr).Msg("failed to execute statement")
		return 0, db.wrapDriverError(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

// wrapDriverError wraps a driver error in sentinel, adding
// [ErrUniqueViolation] when the dialect reports a key conflict.
func (db *DB) wrapDriverError(sentinel, err error) error {
	if db.errorClassifier == nil {
		return fmt.Errorf("%w: %w", sentinel, err)
	}

	switch db.errorClassifier.Classify(err) {
	case UniqueViolation:
		return fmt.Errorf("%w: %w: %w", sentinel, ErrUniqueViolation, err)
	case ConnectionFailure:
		return fmt.Errorf("%w: %w: %w", sentinel, ErrAcquiringConnection, err)
	default:
		return fmt.Errorf("%w: %w", sentinel, err)
	}
}
