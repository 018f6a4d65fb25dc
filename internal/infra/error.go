package infra

import (
	"log/slog"

	"commerce-order-core/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	// Row changed between read and conditional write. The unit of work retries.
	KindConflict RepositoryErrorKind = "CONFLICT"
	// Conditional stock decrement failed because not enough units are left.
	KindStockShortage RepositoryErrorKind = "STOCK_SHORTAGE"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// WrapRepoErr classifies err. An explicit kind wins; otherwise Postgres
// constraint violations are recognised and everything else is DB_FAILURE.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := KindDBFailure
	if len(kind) > 0 {
		k = kind[0]
	} else if pgErr := pgError(err); pgErr != nil {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			k = KindDuplicateKey
		case pgErrCodeForeignKeyViolation:
			k = KindForeignKeyViolated
		}
	}

	if k == KindDBFailure {
		slog.Error("Repository error: "+msg, slog.String("kind", string(k)), slog.Any("error", err))
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return RepositoryError{Kind: k, msg: msg, err: err}
}

func NewRepoErr(kind RepositoryErrorKind, msg string) error {
	return RepositoryError{Kind: kind, msg: msg}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errs.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func pgError(err error) *pgconn.PgError {
	var pgErr *pgconn.PgError
	if err != nil && errs.As(err, &pgErr) {
		return pgErr
	}
	return nil
}
