package converter

import (
	"commerce-order-core/internal/domain/product"
	sqlc "commerce-order-core/internal/infra/sqlc/generated"
	"commerce-order-core/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func MoneyFromNumeric(n pgtype.Numeric) (product.Money, error) {
	d, err := pgconv.DecimalFromNumeric(n)
	if err != nil {
		return product.Money{}, err
	}
	return product.NewMoney(d)
}

func MoneyToNumeric(m product.Money) pgtype.Numeric {
	return pgconv.DecimalToNumeric(m.Decimal())
}

func ProductFromRow(row sqlc.Products) (*product.Product, error) {
	price, err := MoneyFromNumeric(row.Price)
	if err != nil {
		return nil, err
	}
	return product.Reconstruct(row.ID, row.Name, price, int(row.Stock), row.Version), nil
}
