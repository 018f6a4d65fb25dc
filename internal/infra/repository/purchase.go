package repository

//go:generate mockgen -source=purchase.go -destination=../../../tests/mock/repository/purchase_mock.go -package=repositorymock

import (
	"context"

	"commerce-order-core/internal/domain/purchase"
	"commerce-order-core/internal/infra"
	"commerce-order-core/internal/infra/repository/converter"
	sqlc "commerce-order-core/internal/infra/sqlc/generated"
	"commerce-order-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PurchaseQueries interface {
	CreatePurchase(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePurchaseParams) (sqlc.Purchases, error)
	GetPurchaseForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Purchases, error)
	UpdatePurchaseStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePurchaseStatusParams) (int64, error)
}

type PurchaseRepository struct {
	queries PurchaseQueries
	db      sqlc.DBTX
}

func NewPurchaseRepository(queries PurchaseQueries, db sqlc.DBTX) *PurchaseRepository {
	return &PurchaseRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PurchaseRepository) Save(ctx context.Context, p *purchase.Purchase) (*purchase.Purchase, error) {
	if p.IsNew() {
		return r.create(ctx, p)
	}

	affected, err := r.queries.UpdatePurchaseStatus(ctx, r.db, sqlc.UpdatePurchaseStatusParams{
		Status:         p.Status().String(),
		ID:             p.ID(),
		ExpectedStatus: p.LoadedStatus().String(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update purchase status", err)
	}
	if affected == 0 {
		return nil, infra.NewRepoErr(infra.KindConflict, "purchase status changed concurrently")
	}
	return purchase.Reconstruct(
		p.ID(), p.UserID(), p.ProductID(),
		p.Quantity(), p.UnitPrice(), p.TotalPrice(),
		p.Status(), p.PurchasedAt(),
	), nil
}

func (r *PurchaseRepository) create(ctx context.Context, p *purchase.Purchase) (*purchase.Purchase, error) {
	params, err := converter.PurchaseToCreateParams(p)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid purchase", err)
	}
	row, err := r.queries.CreatePurchase(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create purchase", err)
	}
	saved, err := converter.PurchaseFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert purchase", err)
	}
	return saved, nil
}

func (r *PurchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*purchase.Purchase, error) {
	row, err := r.queries.GetPurchaseForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("purchase not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get purchase", err)
	}
	p, err := converter.PurchaseFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert purchase", err)
	}
	return p, nil
}
