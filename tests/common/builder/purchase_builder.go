//go:build unit || e2e

package builder

import (
	"time"

	"commerce-order-core/internal/domain/product"
	"commerce-order-core/internal/domain/purchase"
	reqdto "commerce-order-core/internal/handler/dto/request"
	"commerce-order-core/internal/infra/repository/converter"
	sqlc "commerce-order-core/internal/infra/sqlc/generated"
	"commerce-order-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PurchaseBuilder struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	UserEmail   string
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	UnitPrice   string
	Status      purchase.Status
	PurchasedAt time.Time
}

func NewPurchaseBuilder() *PurchaseBuilder {
	return &PurchaseBuilder{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		UserEmail:   "buyer@example.com",
		ProductID:   uuid.New(),
		ProductName: "Mechanical Keyboard",
		Quantity:    2,
		UnitPrice:   "49.90",
		Status:      purchase.StatusCompleted,
		PurchasedAt: time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *PurchaseBuilder) With(mutate func(*PurchaseBuilder)) *PurchaseBuilder {
	mutate(b)
	return b
}

func (b *PurchaseBuilder) WithStatus(status purchase.Status) *PurchaseBuilder {
	b.Status = status
	return b
}

func (b *PurchaseBuilder) unitPrice() product.Money {
	return product.MustParseMoney(b.UnitPrice)
}

// BuildDomain returns a stored purchase as loaded from a store.
func (b *PurchaseBuilder) BuildDomain() *purchase.Purchase {
	qty, err := purchase.NewQuantity(b.Quantity)
	if err != nil {
		panic(err)
	}
	unit := b.unitPrice()
	return purchase.Reconstruct(b.ID, b.UserID, b.ProductID, qty, unit, unit.Mul(b.Quantity), b.Status, b.PurchasedAt)
}

func (b *PurchaseBuilder) BuildInfra() sqlc.Purchases {
	unit := b.unitPrice()
	ts := pgtype.Timestamptz{Time: b.PurchasedAt, Valid: true}
	return sqlc.Purchases{
		ID:          b.ID,
		UserID:      b.UserID,
		ProductID:   b.ProductID,
		Quantity:    int32(b.Quantity), // #nosec G115 -- test fixture
		UnitPrice:   converter.MoneyToNumeric(unit),
		TotalPrice:  converter.MoneyToNumeric(unit.Mul(b.Quantity)),
		Status:      b.Status.String(),
		PurchasedAt: ts,
		UpdatedAt:   ts,
	}
}

func (b *PurchaseBuilder) BuildView() *queries.PurchaseView {
	unit := b.unitPrice()
	return &queries.PurchaseView{
		ID:          b.ID,
		UserID:      b.UserID,
		UserEmail:   b.UserEmail,
		ProductID:   b.ProductID,
		ProductName: b.ProductName,
		Quantity:    b.Quantity,
		UnitPrice:   unit.Decimal(),
		TotalPrice:  unit.Mul(b.Quantity).Decimal(),
		Status:      b.Status.String(),
		PurchasedAt: b.PurchasedAt,
	}
}

func (b *PurchaseBuilder) BuildRequestDTO() reqdto.PlacePurchaseRequest {
	return reqdto.PlacePurchaseRequest{
		UserID:    b.UserID,
		ProductID: b.ProductID,
		Quantity:  b.Quantity,
	}
}
