package readstore

//go:generate mockgen -source=purchase.go -destination=../../../tests/mock/readstore/purchase_mock.go -package=readstoremock

import (
	"context"
	"time"

	"commerce-order-core/internal/infra"
	sqlc "commerce-order-core/internal/infra/sqlc/generated"
	"commerce-order-core/internal/pkg/pgconv"
	"commerce-order-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type PurchaseViewQueries interface {
	GetPurchaseView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetPurchaseViewRow, error)
	ListPendingPurchasesFirstPage(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ListPendingPurchasesFirstPageRow, error)
	ListPendingPurchasesKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPendingPurchasesKeysetParams) ([]sqlc.ListPendingPurchasesKeysetRow, error)
}

type PurchaseReadStore struct {
	queries PurchaseViewQueries
	db      sqlc.DBTX
}

func NewPurchaseReadStore(queries PurchaseViewQueries, db sqlc.DBTX) *PurchaseReadStore {
	return &PurchaseReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PurchaseReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PurchaseView, error) {
	row, err := r.queries.GetPurchaseView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("purchase not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get purchase view by id", err)
	}
	v, err := toView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert purchase view", err)
	}
	return v, nil
}

func (r *PurchaseReadStore) ListPendingFirstPage(ctx context.Context, limit int32) ([]*queries.PurchaseView, error) {
	rows, err := r.queries.ListPendingPurchasesFirstPage(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending purchases", err)
	}
	out := make([]*queries.PurchaseView, 0, len(rows))
	for _, row := range rows {
		v, err := toView(sqlc.GetPurchaseViewRow(row))
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert purchase view", err)
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *PurchaseReadStore) ListPendingAfter(ctx context.Context, lastPurchasedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.PurchaseView, error) {
	rows, err := r.queries.ListPendingPurchasesKeyset(ctx, r.db, sqlc.ListPendingPurchasesKeysetParams{
		LastPurchasedAt: pgconv.TimeToPgtype(lastPurchasedAt),
		LastID:          lastID,
		Lim:             limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending purchases after cursor", err)
	}
	out := make([]*queries.PurchaseView, 0, len(rows))
	for _, row := range rows {
		v, err := toView(sqlc.GetPurchaseViewRow(row))
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert purchase view", err)
		}
		out = append(out, v)
	}
	return out, nil
}

func toView(row sqlc.GetPurchaseViewRow) (*queries.PurchaseView, error) {
	unit, err := pgconv.DecimalFromNumeric(row.UnitPrice)
	if err != nil {
		return nil, err
	}
	total, err := pgconv.DecimalFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, err
	}
	return &queries.PurchaseView{
		ID:          row.ID,
		UserID:      row.UserID,
		UserEmail:   row.UserEmail,
		ProductID:   row.ProductID,
		ProductName: row.ProductName,
		Quantity:    int(row.Quantity),
		UnitPrice:   unit,
		TotalPrice:  total,
		Status:      row.Status,
		PurchasedAt: pgconv.TimeFromPgtype(row.PurchasedAt),
	}, nil
}
