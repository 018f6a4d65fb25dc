package commands

//go:generate mockgen -source=refund.go -destination=../../../tests/mock/commands/refund_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"commerce-order-core/internal/domain/purchase"
	"commerce-order-core/internal/domain/refund"
	"commerce-order-core/internal/infra"
	"commerce-order-core/internal/pkg/clock"
	"commerce-order-core/internal/pkg/errs"
	"commerce-order-core/internal/pkg/metrics"
	"commerce-order-core/internal/usecase/shared"

	"github.com/google/uuid"
)

const notifyTimeout = 5 * time.Second

type ProcessRefundCommand struct {
	Reason string
}

type RefundCommands interface {
	// ProcessRefund restores stock, marks the purchase REFUNDED and records an
	// approved refund atomically. The notifier runs after commit.
	ProcessRefund(ctx context.Context, purchaseID uuid.UUID, cmd ProcessRefundCommand) (*refund.Refund, error)
}

type refundCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier shared.RefundNotifier
	clock    clock.Clock
	metrics  *metrics.Metrics
}

func NewRefundCommands(uow shared.UnitOfWork, notifier shared.RefundNotifier, clk clock.Clock, m *metrics.Metrics) RefundCommands {
	return &refundCommandsImpl{uow: uow, notifier: notifier, clock: clk, metrics: m}
}

func (uc *refundCommandsImpl) ProcessRefund(ctx context.Context, purchaseID uuid.UUID, cmd ProcessRefundCommand) (*refund.Refund, error) {
	var (
		refunded *purchase.Purchase
		saved    *refund.Refund
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Purchases().FindByID(ctx, purchaseID)
		if err != nil {
			return notFoundAs(err, errs.ErrPurchaseNotFound)
		}

		if err := p.MarkRefunded(); err != nil {
			return err
		}

		reason, err := refund.NewReason(cmd.Reason)
		if err != nil {
			return err
		}

		if err := tx.Products().IncreaseStock(ctx, p.ProductID(), p.Quantity().Value()); err != nil {
			return notFoundAs(err, errs.ErrProductNotFound)
		}

		refunded, err = tx.Purchases().Save(ctx, p)
		if err != nil {
			return err
		}

		saved, err = tx.Refunds().Save(ctx, refund.NewRefund(p.ID(), reason, uc.clock.Now()))
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return errs.Mark(err, errs.ErrRefundNotAllowed)
		}
		return err
	})
	err = errs.AsInfrastructure(err)

	uc.metrics.Refunds.WithLabelValues(errs.Code(err)).Inc()
	if err != nil {
		logFailure(ctx, "refund rejected", err, slog.String("purchase_id", purchaseID.String()))
		return nil, err
	}

	slog.InfoContext(ctx, "refund approved",
		slog.String("purchase_id", purchaseID.String()),
		slog.String("refund_id", saved.ID().String()),
		slog.Int("restocked", refunded.Quantity().Value()),
	)
	uc.notify(ctx, refunded, saved)
	return saved, nil
}

// The refund is already committed; a notification failure must not undo it.
func (uc *refundCommandsImpl) notify(ctx context.Context, p *purchase.Purchase, r *refund.Refund) {
	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	if err := uc.notifier.NotifyRefund(nctx, p, r); err != nil {
		slog.WarnContext(ctx, "refund notification failed",
			slog.String("purchase_id", p.ID().String()),
			slog.String("refund_id", r.ID().String()),
			slog.String("error", err.Error()),
		)
	}
}
