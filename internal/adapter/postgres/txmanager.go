package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// defaultTxAttempts bounds how often a transaction aborted by a serialization
// failure or deadlock is replayed.
const defaultTxAttempts = 3

// Beginner starts transactions. *pgxpool.Pool and pgxmock pools satisfy it.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxManager runs one logical operation per local transaction. The
// transaction travels in the context; repositories pick it up through
// QuerierFromCtx.
type TxManager struct {
	db       Beginner
	attempts int
}

// NewTxManager creates a TxManager over db.
func NewTxManager(db Beginner) *TxManager {
	return &TxManager{db: db, attempts: defaultTxAttempts}
}

// RunInTx executes fn inside a transaction and commits when fn returns nil.
// A call nested in another RunInTx joins the outer transaction. fn may run
// more than once: the whole transaction is replayed when PostgreSQL aborts it
// with a serialization failure or deadlock, so fn must only touch the
// database. A panic in fn rolls back and re-panics.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txCtxKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	var err error
	for attempt := 1; attempt <= m.attempts; attempt++ {
		err = m.runOnce(ctx, fn)
		if !isRetryable(err) || ctx.Err() != nil {
			return err
		}
	}
	return fmt.Errorf("transaction retries exhausted: %w", err)
}

func (m *TxManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// isRetryable reports whether err aborted the transaction in a way a replay
// can fix.
func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case "40001", "40P01": // serialization_failure, deadlock_detected
		return true
	}
	return false
}
