package repository

//go:generate mockgen -source=product.go -destination=../../../tests/mock/repository/product_mock.go -package=repositorymock

import (
	"context"

	"commerce-order-core/internal/domain/product"
	"commerce-order-core/internal/infra"
	"commerce-order-core/internal/infra/repository/converter"
	sqlc "commerce-order-core/internal/infra/sqlc/generated"
	"commerce-order-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ProductQueries interface {
	GetProduct(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Products, error)
	DecreaseProductStock(ctx context.Context, db sqlc.DBTX, arg sqlc.DecreaseProductStockParams) (int64, error)
	IncreaseProductStock(ctx context.Context, db sqlc.DBTX, arg sqlc.IncreaseProductStockParams) (int64, error)
}

type ProductRepository struct {
	queries ProductQueries
	db      sqlc.DBTX
}

func NewProductRepository(queries ProductQueries, db sqlc.DBTX) *ProductRepository {
	return &ProductRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	row, err := r.queries.GetProduct(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product", err)
	}
	p, err := converter.ProductFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert product", err)
	}
	return p, nil
}

// DecreaseStock is a conditional update guarded by stock >= amount. The row
// lock taken by the UPDATE serializes concurrent decrements, so a buyer that
// read an older version still succeeds while stock remains. When no row is
// updated the product is re-read to tell a missing product from a shortage.
func (r *ProductRepository) DecreaseStock(ctx context.Context, id uuid.UUID, amount int) error {
	n, err := pgconv.IntToInt32(amount)
	if err != nil {
		return infra.WrapRepoErr("stock amount out of range", err)
	}

	affected, err := r.queries.DecreaseProductStock(ctx, r.db, sqlc.DecreaseProductStockParams{
		Amount: n,
		ID:     id,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to decrease stock", err)
	}
	if affected > 0 {
		return nil
	}

	current, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if current.Stock() < amount {
		return infra.NewRepoErr(infra.KindStockShortage, "insufficient stock")
	}
	// Stock was refilled between the UPDATE and the re-read.
	return infra.NewRepoErr(infra.KindConflict, "product stock changed concurrently")
}

func (r *ProductRepository) IncreaseStock(ctx context.Context, id uuid.UUID, amount int) error {
	n, err := pgconv.IntToInt32(amount)
	if err != nil {
		return infra.WrapRepoErr("stock amount out of range", err)
	}

	affected, err := r.queries.IncreaseProductStock(ctx, r.db, sqlc.IncreaseProductStockParams{
		Amount: n,
		ID:     id,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to increase stock", err)
	}
	if affected == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "product not found")
	}
	return nil
}
