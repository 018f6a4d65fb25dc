package commands

//go:generate mockgen -source=purchase.go -destination=../../../tests/mock/commands/purchase_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"commerce-order-core/internal/domain/purchase"
	"commerce-order-core/internal/pkg/clock"
	"commerce-order-core/internal/pkg/errs"
	"commerce-order-core/internal/pkg/metrics"
	"commerce-order-core/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	pathImmediate = "immediate"
	pathPending   = "pending"
	pathComplete  = "complete"
)

type PlacePurchaseCommand struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int
}

type PurchaseCommands interface {
	// PlacePurchase reserves stock and records a COMPLETED purchase atomically.
	PlacePurchase(ctx context.Context, cmd PlacePurchaseCommand) (*purchase.Purchase, error)
	// PlacePendingPurchase is PlacePurchase for deferred fulfillment.
	PlacePendingPurchase(ctx context.Context, cmd PlacePurchaseCommand) (*purchase.Purchase, error)
	CompletePurchase(ctx context.Context, purchaseID uuid.UUID) (*purchase.Purchase, error)
}

type purchaseCommandsImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics *metrics.Metrics
}

func NewPurchaseCommands(uow shared.UnitOfWork, clk clock.Clock, m *metrics.Metrics) PurchaseCommands {
	return &purchaseCommandsImpl{uow: uow, clock: clk, metrics: m}
}

func (uc *purchaseCommandsImpl) PlacePurchase(ctx context.Context, cmd PlacePurchaseCommand) (*purchase.Purchase, error) {
	p, err := uc.place(ctx, cmd, purchase.StatusCompleted)
	uc.record(ctx, pathImmediate, cmd, p, err)
	return p, err
}

func (uc *purchaseCommandsImpl) PlacePendingPurchase(ctx context.Context, cmd PlacePurchaseCommand) (*purchase.Purchase, error) {
	p, err := uc.place(ctx, cmd, purchase.StatusPending)
	uc.record(ctx, pathPending, cmd, p, err)
	return p, err
}

func (uc *purchaseCommandsImpl) place(ctx context.Context, cmd PlacePurchaseCommand, initial purchase.Status) (*purchase.Purchase, error) {
	var saved *purchase.Purchase
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Users().FindByID(ctx, cmd.UserID); err != nil {
			return notFoundAs(err, errs.ErrUserNotFound)
		}

		prod, err := tx.Products().FindByID(ctx, cmd.ProductID)
		if err != nil {
			return notFoundAs(err, errs.ErrProductNotFound)
		}

		qty, err := purchase.NewQuantity(cmd.Quantity)
		if err != nil {
			return err
		}

		if !prod.HasStock(qty.Value()) {
			return errs.Wrapf(errs.ErrInsufficientStock, "product %s has %d units, %d requested",
				prod.ID(), prod.Stock(), qty.Value())
		}

		if err := tx.Products().DecreaseStock(ctx, prod.ID(), qty.Value()); err != nil {
			return stockErr(err)
		}

		p, err := purchase.NewPurchase(cmd.UserID, prod, qty, initial, uc.clock.Now())
		if err != nil {
			return err
		}

		saved, err = tx.Purchases().Save(ctx, p)
		return err
	})
	if err != nil {
		return nil, errs.AsInfrastructure(err)
	}
	return saved, nil
}

func (uc *purchaseCommandsImpl) CompletePurchase(ctx context.Context, purchaseID uuid.UUID) (*purchase.Purchase, error) {
	var saved *purchase.Purchase
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Purchases().FindByID(ctx, purchaseID)
		if err != nil {
			return notFoundAs(err, errs.ErrPurchaseNotFound)
		}
		if err := p.Complete(); err != nil {
			return err
		}
		saved, err = tx.Purchases().Save(ctx, p)
		return err
	})
	err = errs.AsInfrastructure(err)

	uc.metrics.Purchases.WithLabelValues(pathComplete, errs.Code(err)).Inc()
	if err != nil {
		logFailure(ctx, "purchase completion failed", err, slog.String("purchase_id", purchaseID.String()))
		return nil, err
	}
	slog.InfoContext(ctx, "purchase completed", slog.String("purchase_id", purchaseID.String()))
	return saved, nil
}

func (uc *purchaseCommandsImpl) record(ctx context.Context, path string, cmd PlacePurchaseCommand, p *purchase.Purchase, err error) {
	uc.metrics.Purchases.WithLabelValues(path, errs.Code(err)).Inc()

	attrs := []any{
		slog.String("path", path),
		slog.String("user_id", cmd.UserID.String()),
		slog.String("product_id", cmd.ProductID.String()),
		slog.Int("quantity", cmd.Quantity),
	}
	if err != nil {
		logFailure(ctx, "purchase rejected", err, attrs...)
		return
	}
	attrs = append(attrs,
		slog.String("purchase_id", p.ID().String()),
		slog.String("total_price", p.TotalPrice().String()),
	)
	slog.InfoContext(ctx, "purchase placed", attrs...)
}

// Business rejections are expected traffic; only infrastructure failures are errors.
func logFailure(ctx context.Context, msg string, err error, attrs ...any) {
	attrs = append(attrs, slog.String("code", errs.Code(err)), slog.String("error", err.Error()))
	if errs.IsBusiness(err) {
		slog.InfoContext(ctx, msg, attrs...)
		return
	}
	slog.ErrorContext(ctx, msg, attrs...)
}
