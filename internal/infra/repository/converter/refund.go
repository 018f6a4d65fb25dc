package converter

import (
	"commerce-order-core/internal/domain/refund"
	sqlc "commerce-order-core/internal/infra/sqlc/generated"
	"commerce-order-core/internal/pkg/pgconv"
)

func RefundToCreateParams(r *refund.Refund) sqlc.CreateRefundParams {
	return sqlc.CreateRefundParams{
		PurchaseID: r.PurchaseID(),
		Reason:     r.Reason().String(),
		Status:     r.Status().String(),
		CreatedAt:  pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func RefundFromRow(row sqlc.Refunds) (*refund.Refund, error) {
	reason, err := refund.NewReason(row.Reason)
	if err != nil {
		return nil, err
	}
	return refund.Reconstruct(row.ID, row.PurchaseID, reason, refund.Status(row.Status), pgconv.TimeFromPgtype(row.CreatedAt)), nil
}
