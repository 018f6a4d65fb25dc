package notifier

import (
	"time"

	"commerce-order-core/internal/domain/purchase"
	"commerce-order-core/internal/domain/refund"

	"github.com/google/uuid"
)

const EventTypeRefundApproved = "refund.approved"

type RefundEvent struct {
	RefundID   uuid.UUID `json:"refund_id"`
	PurchaseID uuid.UUID `json:"purchase_id"`
	UserID     uuid.UUID `json:"user_id"`
	ProductID  uuid.UUID `json:"product_id"`
	Quantity   int       `json:"quantity"`
	TotalPrice string    `json:"total_price"`
	Reason     string    `json:"reason"`
	RefundedAt time.Time `json:"refunded_at"`
}

func newRefundEvent(p *purchase.Purchase, r *refund.Refund) RefundEvent {
	return RefundEvent{
		RefundID:   r.ID(),
		PurchaseID: p.ID(),
		UserID:     p.UserID(),
		ProductID:  p.ProductID(),
		Quantity:   p.Quantity().Value(),
		TotalPrice: p.TotalPrice().String(),
		Reason:     r.Reason().String(),
		RefundedAt: r.CreatedAt(),
	}
}
