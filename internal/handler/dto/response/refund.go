package response

import (
	"time"

	"commerce-order-core/internal/domain/refund"

	"github.com/google/uuid"
)

type RefundResponse struct {
	ID         uuid.UUID `json:"id"`
	PurchaseID uuid.UUID `json:"purchase_id"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromRefund(r *refund.Refund) *RefundResponse {
	return &RefundResponse{
		ID:         r.ID(),
		PurchaseID: r.PurchaseID(),
		Reason:     r.Reason().String(),
		Status:     r.Status().String(),
		CreatedAt:  r.CreatedAt(),
	}
}
