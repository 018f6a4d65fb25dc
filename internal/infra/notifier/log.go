package notifier

import (
	"context"
	"log/slog"

	"commerce-order-core/internal/domain/purchase"
	"commerce-order-core/internal/domain/refund"
	"commerce-order-core/internal/usecase/shared"
)

// LogRefundNotifier is used when no broker is configured.
type LogRefundNotifier struct{}

var _ shared.RefundNotifier = LogRefundNotifier{}

func NewLogRefundNotifier() LogRefundNotifier {
	return LogRefundNotifier{}
}

func (LogRefundNotifier) NotifyRefund(ctx context.Context, p *purchase.Purchase, r *refund.Refund) error {
	slog.InfoContext(ctx, "refund approved",
		slog.String("purchase_id", p.ID().String()),
		slog.String("refund_id", r.ID().String()),
		slog.String("user_id", p.UserID().String()),
		slog.Int("quantity", p.Quantity().Value()),
		slog.String("reason", r.Reason().String()))
	return nil
}
