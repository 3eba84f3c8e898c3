package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/GlebRadaev/gigledger/internal/metrics"
)

//go:generate mockgen -source=tx.go -destination=mock_tx.go -package=pg

const (
	defaultRetryBudget = 3
	defaultLockTimeout = 2 * time.Second
	retryBackoff       = 10 * time.Millisecond
)

type TransactionalFn func(ctx context.Context) error

// TXManager runs fn inside a transaction and exposes it to repositories via ctx.
type TXManager interface {
	// Begin runs fn at read committed isolation.
	Begin(ctx context.Context, fn TransactionalFn) error
	// BeginSerializable runs fn at serializable isolation.
	BeginSerializable(ctx context.Context, fn TransactionalFn) error
}

type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type TxOptions struct {
	RetryBudget int
	LockTimeout time.Duration
}

type PgxTXManager struct {
	pool        TxBeginner
	retryBudget int
	lockTimeout time.Duration
}

func NewTXManager(pool TxBeginner, opts ...TxOptions) *PgxTXManager {
	m := &PgxTXManager{
		pool:        pool,
		retryBudget: defaultRetryBudget,
		lockTimeout: defaultLockTimeout,
	}
	if len(opts) > 0 {
		if opts[0].RetryBudget > 0 {
			m.retryBudget = opts[0].RetryBudget
		}
		if opts[0].LockTimeout > 0 {
			m.lockTimeout = opts[0].LockTimeout
		}
	}
	return m
}

func (m *PgxTXManager) Begin(ctx context.Context, fn TransactionalFn) error {
	return m.run(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, "read_committed", fn)
}

func (m *PgxTXManager) BeginSerializable(ctx context.Context, fn TransactionalFn) error {
	return m.run(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, "serializable", fn)
}

func (m *PgxTXManager) run(ctx context.Context, opts pgx.TxOptions, label string, fn TransactionalFn) error {
	// Nested calls join the outer transaction.
	if InTx(ctx) {
		return fn(ctx)
	}

	var err error
	for attempt := 1; attempt <= m.retryBudget; attempt++ {
		err = m.attempt(ctx, opts, fn)
		if err == nil || !IsRetryable(err) {
			return err
		}
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %v", domain.ErrTransient, ctx.Err())
		}
		metrics.TxRetriesTotal.WithLabelValues(label).Inc()
		zap.L().Warn("transaction conflict, retrying",
			zap.String("isolation", label),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if attempt < m.retryBudget {
			select {
			case <-ctx.Done():
				return fmt.Errorf("%w: %v", domain.ErrTransient, ctx.Err())
			case <-time.After(retryBackoff * time.Duration(attempt)):
			}
		}
	}
	return fmt.Errorf("%w: gave up after %d attempts: %v", domain.ErrTransient, m.retryBudget, err)
}

func (m *PgxTXManager) attempt(ctx context.Context, opts pgx.TxOptions, fn TransactionalFn) (err error) {
	tx, err := m.pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	// Rollback must still reach the server when the request context is gone.
	release := context.WithoutCancel(ctx)
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(release)
			panic(p)
		}
	}()

	lockTimeout := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", m.lockTimeout.Milliseconds())
	if _, err = tx.Exec(ctx, lockTimeout); err != nil {
		m.rollback(release, tx)
		return fmt.Errorf("set lock timeout: %w", err)
	}

	if err = fn(withTx(ctx, tx)); err != nil {
		m.rollback(release, tx)
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (m *PgxTXManager) rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil {
		zap.L().Error("failed to rollback transaction", zap.Error(err))
	}
}
