package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

import (
	"context"

	"commerce-order-core/internal/domain/product"
	"commerce-order-core/internal/domain/purchase"
	"commerce-order-core/internal/domain/refund"
	"commerce-order-core/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn as one atomic unit. Stores obtained from tx are bound to
	// the unit; fn may be re-executed from scratch on a retryable conflict, so
	// it must not have side effects outside tx.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Users() UserReader
	Products() ProductStore
	Purchases() PurchaseStore
	Refunds() RefundStore
}

type UserReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type ProductStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error)
	// DecreaseStock succeeds only if the product has at least amount units at
	// the moment of the write. Otherwise it reports a stock shortage.
	DecreaseStock(ctx context.Context, id uuid.UUID, amount int) error
	IncreaseStock(ctx context.Context, id uuid.UUID, amount int) error
}

type PurchaseStore interface {
	// Save inserts a new purchase (nil id) or moves a loaded one from its
	// loaded status to its current status. The stored purchase is returned.
	Save(ctx context.Context, p *purchase.Purchase) (*purchase.Purchase, error)
	// FindByID locks the purchase for the rest of the unit.
	FindByID(ctx context.Context, id uuid.UUID) (*purchase.Purchase, error)
}

type RefundStore interface {
	Save(ctx context.Context, r *refund.Refund) (*refund.Refund, error)
}

// RefundNotifier is told about committed refunds. Delivery is best effort.
type RefundNotifier interface {
	NotifyRefund(ctx context.Context, p *purchase.Purchase, r *refund.Refund) error
}
