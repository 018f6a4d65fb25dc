package purchase

import (
	"time"

	"commerce-order-core/internal/domain/product"
	"commerce-order-core/internal/pkg/errs"

	"github.com/google/uuid"
)

// Purchase records a single-product order. Unit and total price are captured
// at creation and never recomputed.
type Purchase struct {
	id           uuid.UUID
	userID       uuid.UUID
	productID    uuid.UUID
	quantity     Quantity
	unitPrice    product.Money
	totalPrice   product.Money
	status       Status
	loadedStatus Status
	purchasedAt  time.Time
}

// NewPurchase builds an unsaved purchase; the store assigns the id.
func NewPurchase(userID uuid.UUID, p *product.Product, qty Quantity, initial Status, now time.Time) (*Purchase, error) {
	if !initial.IsInitial() {
		return nil, errs.Wrapf(errs.ErrInvalidStatusTransition, "initial status %s", initial)
	}
	if qty.Value() <= 0 {
		return nil, errs.ErrInvalidQuantity
	}
	unit := p.Price()
	return &Purchase{
		userID:      userID,
		productID:   p.ID(),
		quantity:    qty,
		unitPrice:   unit,
		totalPrice:  unit.Mul(qty.Value()),
		status:      initial,
		purchasedAt: now,
	}, nil
}

func Reconstruct(
	id, userID, productID uuid.UUID,
	quantity Quantity,
	unitPrice, totalPrice product.Money,
	status Status,
	purchasedAt time.Time,
) *Purchase {
	return &Purchase{
		id:           id,
		userID:       userID,
		productID:    productID,
		quantity:     quantity,
		unitPrice:    unitPrice,
		totalPrice:   totalPrice,
		status:       status,
		loadedStatus: status,
		purchasedAt:  purchasedAt,
	}
}

func (p *Purchase) Complete() error {
	if !p.status.CanTransitionTo(StatusCompleted) {
		return errs.Wrapf(errs.ErrInvalidStatusTransition, "%s -> %s", p.status, StatusCompleted)
	}
	p.status = StatusCompleted
	return nil
}

// MarkRefunded is only valid for a completed purchase.
func (p *Purchase) MarkRefunded() error {
	if !p.status.CanTransitionTo(StatusRefunded) {
		return errs.Wrapf(errs.ErrRefundNotAllowed, "purchase status is %s", p.status)
	}
	p.status = StatusRefunded
	return nil
}

func (p *Purchase) IsNew() bool { return p.id == uuid.Nil }

// LoadedStatus is the status the purchase had when read from the store, empty
// for a new purchase. Stores use it as the expected value of a status update.
func (p *Purchase) LoadedStatus() Status { return p.loadedStatus }

func (p *Purchase) ID() uuid.UUID             { return p.id }
func (p *Purchase) UserID() uuid.UUID         { return p.userID }
func (p *Purchase) ProductID() uuid.UUID      { return p.productID }
func (p *Purchase) Quantity() Quantity        { return p.quantity }
func (p *Purchase) UnitPrice() product.Money  { return p.unitPrice }
func (p *Purchase) TotalPrice() product.Money { return p.totalPrice }
func (p *Purchase) Status() Status            { return p.status }
func (p *Purchase) PurchasedAt() time.Time    { return p.purchasedAt }
