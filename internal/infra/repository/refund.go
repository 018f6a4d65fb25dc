package repository

//go:generate mockgen -source=refund.go -destination=../../../tests/mock/repository/refund_mock.go -package=repositorymock

import (
	"context"

	"commerce-order-core/internal/domain/refund"
	"commerce-order-core/internal/infra"
	"commerce-order-core/internal/infra/repository/converter"
	sqlc "commerce-order-core/internal/infra/sqlc/generated"
)

type RefundQueries interface {
	CreateRefund(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRefundParams) (sqlc.Refunds, error)
}

type RefundRepository struct {
	queries RefundQueries
	db      sqlc.DBTX
}

func NewRefundRepository(queries RefundQueries, db sqlc.DBTX) *RefundRepository {
	return &RefundRepository{
		queries: queries,
		db:      db,
	}
}

// Save fails with DUPLICATE_KEY when the purchase already has a refund.
func (r *RefundRepository) Save(ctx context.Context, rf *refund.Refund) (*refund.Refund, error) {
	row, err := r.queries.CreateRefund(ctx, r.db, converter.RefundToCreateParams(rf))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create refund", err)
	}
	saved, err := converter.RefundFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert refund", err)
	}
	return saved, nil
}
