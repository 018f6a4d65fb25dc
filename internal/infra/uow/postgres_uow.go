package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"commerce-order-core/internal/infra"
	"commerce-order-core/internal/infra/repository"
	sqlc "commerce-order-core/internal/infra/sqlc/generated"
	"commerce-order-core/internal/pkg/config"
	"commerce-order-core/internal/pkg/errs"
	"commerce-order-core/internal/pkg/metrics"
	"commerce-order-core/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
	pgErrCodeLockNotAvailable     = "55P03"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// TxBeginner is satisfied by *pgxpool.Pool.
type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type PostgresUoW struct {
	pool       TxBeginner
	q          *sqlc.Queries
	maxRetries int
	base       time.Duration
	metrics    *metrics.Metrics
}

func NewPostgresUoW(pool TxBeginner, q *sqlc.Queries, cfg config.TxConfig, m *metrics.Metrics) *PostgresUoW {
	return &PostgresUoW{
		pool:       pool,
		q:          q,
		maxRetries: cfg.MaxRetries,
		base:       cfg.BaseBackoff,
		metrics:    m,
	}
}

var _ shared.UnitOfWork = (*PostgresUoW)(nil)

// ReadCommitted prevents dirty reads; stock and status writes are
// conditional updates, purchases are read FOR UPDATE.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; ; attempt++ {
		err := u.runOnce(ctx, options, fn)
		if err == nil {
			return nil
		}

		reason, retryable := retryReason(err)
		if !retryable {
			return err
		}
		if attempt >= u.maxRetries {
			slog.ErrorContext(ctx, "transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(err, ErrMaxRetriesExceeded)
		}

		waitTime := calculateBackoff(attempt, u.base)
		u.metrics.TxRetries.WithLabelValues(reason).Inc()
		slog.WarnContext(ctx, "retrying transaction due to retryable error",
			"attempt", attempt+1,
			"reason", reason,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}
}

func (u *PostgresUoW) runOnce(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	err = fn(ctx, &pgTx{dbtx: pgxTx, q: u.q})
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
		if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.WarnContext(ctx, "rollback failed", "error", rollbackErr.Error())
		}
	}
	return err
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked to a non-negative value
	return int64(uval) % n
}

// retryReason reports whether err is worth re-running the whole unit for and
// labels it for metrics.
func retryReason(err error) (string, bool) {
	if infra.IsKind(err, infra.KindConflict) {
		return "conflict", true
	}

	var pgErr *pgconn.PgError
	if !errs.As(err, &pgErr) {
		return "", false
	}
	switch pgErr.Code {
	case pgErrCodeSerializationFailure:
		return "serialization_failure", true
	case pgErrCodeDeadlockDetected:
		return "deadlock", true
	case pgErrCodeLockNotAvailable:
		return "lock_not_available", true
	default:
		return "", false
	}
}

// pgTx binds repositories to one pgx transaction, built on first use.
type pgTx struct {
	dbtx sqlc.DBTX
	q    *sqlc.Queries

	userRepo     *repository.UserRepository
	productRepo  *repository.ProductRepository
	purchaseRepo *repository.PurchaseRepository
	refundRepo   *repository.RefundRepository
}

func (t *pgTx) Users() shared.UserReader {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.q, t.dbtx)
	}
	return t.userRepo
}

func (t *pgTx) Products() shared.ProductStore {
	if t.productRepo == nil {
		t.productRepo = repository.NewProductRepository(t.q, t.dbtx)
	}
	return t.productRepo
}

func (t *pgTx) Purchases() shared.PurchaseStore {
	if t.purchaseRepo == nil {
		t.purchaseRepo = repository.NewPurchaseRepository(t.q, t.dbtx)
	}
	return t.purchaseRepo
}

func (t *pgTx) Refunds() shared.RefundStore {
	if t.refundRepo == nil {
		t.refundRepo = repository.NewRefundRepository(t.q, t.dbtx)
	}
	return t.refundRepo
}
