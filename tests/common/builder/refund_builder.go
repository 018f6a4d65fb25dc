//go:build unit || e2e

package builder

import (
	"time"

	"commerce-order-core/internal/domain/refund"
	reqdto "commerce-order-core/internal/handler/dto/request"

	"github.com/google/uuid"
)

type RefundBuilder struct {
	ID         uuid.UUID
	PurchaseID uuid.UUID
	Reason     string
	CreatedAt  time.Time
}

func NewRefundBuilder() *RefundBuilder {
	return &RefundBuilder{
		ID:         uuid.New(),
		PurchaseID: uuid.New(),
		Reason:     "arrived damaged",
		CreatedAt:  time.Date(2025, 4, 2, 8, 30, 0, 0, time.UTC),
	}
}

func (b *RefundBuilder) With(mutate func(*RefundBuilder)) *RefundBuilder {
	mutate(b)
	return b
}

func (b *RefundBuilder) BuildDomain() *refund.Refund {
	reason, err := refund.NewReason(b.Reason)
	if err != nil {
		panic(err)
	}
	return refund.Reconstruct(b.ID, b.PurchaseID, reason, refund.StatusApproved, b.CreatedAt)
}

func (b *RefundBuilder) BuildRequestDTO() reqdto.ProcessRefundRequest {
	return reqdto.ProcessRefundRequest{Reason: b.Reason}
}
