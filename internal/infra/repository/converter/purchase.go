package converter

import (
	"commerce-order-core/internal/domain/purchase"
	sqlc "commerce-order-core/internal/infra/sqlc/generated"
	"commerce-order-core/internal/pkg/pgconv"
)

func PurchaseToCreateParams(p *purchase.Purchase) (sqlc.CreatePurchaseParams, error) {
	qty, err := pgconv.IntToInt32(p.Quantity().Value())
	if err != nil {
		return sqlc.CreatePurchaseParams{}, err
	}
	return sqlc.CreatePurchaseParams{
		UserID:      p.UserID(),
		ProductID:   p.ProductID(),
		Quantity:    qty,
		UnitPrice:   MoneyToNumeric(p.UnitPrice()),
		TotalPrice:  MoneyToNumeric(p.TotalPrice()),
		Status:      p.Status().String(),
		PurchasedAt: pgconv.TimeToPgtype(p.PurchasedAt()),
	}, nil
}

func PurchaseFromRow(row sqlc.Purchases) (*purchase.Purchase, error) {
	qty, err := purchase.NewQuantity(int(row.Quantity))
	if err != nil {
		return nil, err
	}
	status, err := purchase.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	unit, err := MoneyFromNumeric(row.UnitPrice)
	if err != nil {
		return nil, err
	}
	total, err := MoneyFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, err
	}
	return purchase.Reconstruct(
		row.ID, row.UserID, row.ProductID,
		qty, unit, total, status,
		pgconv.TimeFromPgtype(row.PurchasedAt),
	), nil
}
