package transactor

import (
	"context"

	"github.com/jackc/pgtype/pgxtype"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type pgxTxKey struct{}

func withPgTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, pgxTxKey{}, tx)
}

func pgxTxValue(ctx context.Context) pgx.Tx {
	if tx, ok := ctx.Value(pgxTxKey{}).(pgx.Tx); ok {
		return tx
	}
	return nil
}

type pgxTransactor struct {
	pool *pgxpool.Pool
}

// NewPgxTransactor builds Transactor over pgx connection pool
func NewPgxTransactor(p *pgxpool.Pool) Transactor {
	return &pgxTransactor{pool: p}
}

func (t *pgxTransactor) WithinTransaction(ctx context.Context, txFunc func(ctx context.Context) error) (err error) {
	conn, err := t.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		var txErr error
		if err != nil {
			txErr = tx.Rollback(ctx)
		} else {
			txErr = tx.Commit(ctx)
		}

		if txErr != nil {
			err = txErr
		}
	}()

	err = txFunc(withPgTx(ctx, tx))
	return err
}

// PgxQueryExecutor is the query surface shared by pool and transaction
type PgxQueryExecutor interface {
	pgxtype.Querier
}

// PgxExecutorProvider resolves the executor for current context: the ongoing
// transaction when one is present, the pool otherwise
type PgxExecutorProvider interface {
	Executor(ctx context.Context) PgxQueryExecutor
}

type pgxExecutorProvider struct {
	pool *pgxpool.Pool
}

// NewPgxExecutorProvider builds PgxExecutorProvider over pgx connection pool
func NewPgxExecutorProvider(p *pgxpool.Pool) PgxExecutorProvider {
	return &pgxExecutorProvider{pool: p}
}

func (e *pgxExecutorProvider) Executor(ctx context.Context) PgxQueryExecutor {
	if tx := pgxTxValue(ctx); tx != nil {
		return tx
	}
	return e.pool
}
