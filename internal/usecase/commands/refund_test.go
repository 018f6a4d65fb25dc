//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"commerce-order-core/internal/domain/product"
	"commerce-order-core/internal/domain/purchase"
	"commerce-order-core/internal/domain/refund"
	"commerce-order-core/internal/infra/memstore"
	"commerce-order-core/internal/pkg/errs"
	"commerce-order-core/internal/usecase/commands"
	"commerce-order-core/internal/usecase/queries"
	"commerce-order-core/internal/usecase/shared"
	sharedmock "commerce-order-core/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingNotifier struct {
	mu    sync.Mutex
	calls []uuid.UUID
}

func (n *recordingNotifier) NotifyRefund(_ context.Context, p *purchase.Purchase, _ *refund.Refund) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, p.ID())
	return nil
}

func (w *world) place(t *testing.T, productID uuid.UUID, qty int) *purchase.Purchase {
	t.Helper()
	uc := commands.NewPurchaseCommands(w.store, w.clock, w.metrics)
	p, err := uc.PlacePurchase(context.Background(), commands.PlacePurchaseCommand{
		UserID: w.userID, ProductID: productID, Quantity: qty,
	})
	require.NoError(t, err)
	return p
}

func TestRefundCommands_ProcessRefund(t *testing.T) {
	t.Run("restores stock and approves refund", func(t *testing.T) {
		w := newWorld(t)
		productID := w.addProduct(t, "50", 10)
		p := w.place(t, productID, 4)
		n := &recordingNotifier{}
		uc := commands.NewRefundCommands(w.store, n, w.clock, w.metrics)
		w.clock.Advance(time.Hour)

		r, err := uc.ProcessRefund(context.Background(), p.ID(), commands.ProcessRefundCommand{Reason: "  defective  "})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, p.ID(), r.PurchaseID())
		assert.Equal(t, refund.StatusApproved, r.Status())
		assert.Equal(t, "defective", r.Reason().String())
		assert.Equal(t, purchasedAt.Add(time.Hour), r.CreatedAt())
		assert.Equal(t, 10, w.stock(t, productID))
		assert.Equal(t, 1, w.store.RefundCount())
		assert.Equal(t, []uuid.UUID{p.ID()}, n.calls)

		view, err := queries.NewPurchaseQueries(memstore.NewReadStore(w.store)).GetPurchase(context.Background(), p.ID())
		require.NoError(t, err)
		assert.Equal(t, string(purchase.StatusRefunded), view.Status)
		assert.InDelta(t, 1, testutil.ToFloat64(w.metrics.Refunds.WithLabelValues("OK")), 0)
	})

	t.Run("second refund is rejected without double credit", func(t *testing.T) {
		w := newWorld(t)
		productID := w.addProduct(t, "50", 10)
		p := w.place(t, productID, 4)
		n := &recordingNotifier{}
		uc := commands.NewRefundCommands(w.store, n, w.clock, w.metrics)

		_, err := uc.ProcessRefund(context.Background(), p.ID(), commands.ProcessRefundCommand{Reason: "defective"})
		require.NoError(t, err)
		_, err = uc.ProcessRefund(context.Background(), p.ID(), commands.ProcessRefundCommand{Reason: "defective"})

		assert.True(t, errs.Is(err, errs.ErrRefundNotAllowed))
		assert.Equal(t, 10, w.stock(t, productID))
		assert.Equal(t, 1, w.store.RefundCount())
		assert.Len(t, n.calls, 1)
	})

	t.Run("concurrent refunds of one purchase apply once", func(t *testing.T) {
		w := newWorld(t)
		productID := w.addProduct(t, "50", 10)
		p := w.place(t, productID, 4)
		uc := commands.NewRefundCommands(w.store, &recordingNotifier{}, w.clock, w.metrics)

		var wg sync.WaitGroup
		results := make([]error, 8)
		for i := range results {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, results[i] = uc.ProcessRefund(context.Background(), p.ID(), commands.ProcessRefundCommand{Reason: "duplicate click"})
			}()
		}
		wg.Wait()

		var ok int
		for _, err := range results {
			if err == nil {
				ok++
				continue
			}
			assert.True(t, errs.Is(err, errs.ErrRefundNotAllowed), "got %v", err)
		}
		assert.Equal(t, 1, ok)
		assert.Equal(t, 10, w.stock(t, productID))
		assert.Equal(t, 1, w.store.RefundCount())
	})

	tests := []struct {
		name    string
		setup   func(t *testing.T, w *world, productID uuid.UUID) uuid.UUID
		reason  string
		wantErr error
	}{
		{
			name:    "unknown purchase wins over blank reason",
			setup:   func(*testing.T, *world, uuid.UUID) uuid.UUID { return uuid.New() },
			reason:  "",
			wantErr: errs.ErrPurchaseNotFound,
		},
		{
			name: "pending purchase is not refundable",
			setup: func(t *testing.T, w *world, productID uuid.UUID) uuid.UUID {
				uc := commands.NewPurchaseCommands(w.store, w.clock, w.metrics)
				p, err := uc.PlacePendingPurchase(context.Background(), commands.PlacePurchaseCommand{
					UserID: w.userID, ProductID: productID, Quantity: 2,
				})
				require.NoError(t, err)
				return p.ID()
			},
			reason:  "",
			wantErr: errs.ErrRefundNotAllowed,
		},
		{
			name: "blank reason",
			setup: func(t *testing.T, w *world, productID uuid.UUID) uuid.UUID {
				return w.place(t, productID, 2).ID()
			},
			reason:  " \t ",
			wantErr: errs.ErrInvalidRefundReason,
		},
		{
			name: "reason too long",
			setup: func(t *testing.T, w *world, productID uuid.UUID) uuid.UUID {
				return w.place(t, productID, 2).ID()
			},
			reason:  strings.Repeat("x", refund.MaxReasonLength+1),
			wantErr: errs.ErrInvalidRefundReason,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld(t)
			productID := w.addProduct(t, "50", 10)
			purchaseID := tt.setup(t, w, productID)
			stockBefore := w.stock(t, productID)
			n := &recordingNotifier{}
			uc := commands.NewRefundCommands(w.store, n, w.clock, w.metrics)

			r, err := uc.ProcessRefund(context.Background(), purchaseID, commands.ProcessRefundCommand{Reason: tt.reason})

			assert.Nil(t, r)
			assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
			assert.Equal(t, stockBefore, w.stock(t, productID))
			assert.Equal(t, 0, w.store.RefundCount())
			assert.Empty(t, n.calls)
		})
	}

	t.Run("notifier failure does not undo the refund", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		w := newWorld(t)
		productID := w.addProduct(t, "50", 10)
		p := w.place(t, productID, 3)

		notifier := sharedmock.NewMockRefundNotifier(ctrl)
		notifier.EXPECT().
			NotifyRefund(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, got *purchase.Purchase, r *refund.Refund) error {
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline)
				assert.Equal(t, purchase.StatusRefunded, got.Status())
				assert.Equal(t, p.ID(), r.PurchaseID())
				return errors.New("broker unavailable")
			})
		uc := commands.NewRefundCommands(w.store, notifier, w.clock, w.metrics)

		r, err := uc.ProcessRefund(context.Background(), p.ID(), commands.ProcessRefundCommand{Reason: "late delivery"})

		require.NoError(t, err)
		assert.NotNil(t, r)
		assert.Equal(t, 10, w.stock(t, productID))
	})

	t.Run("notifier outlives a cancelled request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		w := newWorld(t)
		productID := w.addProduct(t, "50", 10)
		p := w.place(t, productID, 3)
		ctx, cancel := context.WithCancel(context.Background())

		notifier := sharedmock.NewMockRefundNotifier(ctrl)
		notifier.EXPECT().
			NotifyRefund(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ *purchase.Purchase, _ *refund.Refund) error {
				assert.NoError(t, ctx.Err())
				return nil
			})
		uc := commands.NewRefundCommands(cancelAfterCommit{inner: w.store, cancel: cancel}, notifier, w.clock, w.metrics)

		_, err := uc.ProcessRefund(ctx, p.ID(), commands.ProcessRefundCommand{Reason: "late delivery"})

		require.NoError(t, err)
	})
}

type cancelAfterCommit struct {
	inner  *memstore.Store
	cancel context.CancelFunc
}

func (u cancelAfterCommit) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	err := u.inner.Within(ctx, fn)
	u.cancel()
	return err
}

func TestPurchaseAndRefund_EndToEnd(t *testing.T) {
	w := newWorld(t)
	productID := w.addProduct(t, "50", 10)
	purchases := commands.NewPurchaseCommands(w.store, w.clock, w.metrics)
	refunds := commands.NewRefundCommands(w.store, &recordingNotifier{}, w.clock, w.metrics)

	p, err := purchases.PlacePurchase(context.Background(), commands.PlacePurchaseCommand{
		UserID: w.userID, ProductID: productID, Quantity: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, p.Quantity().Value())
	assert.Equal(t, "50.00", p.UnitPrice().String())
	assert.Equal(t, "200.00", p.TotalPrice().String())
	assert.Equal(t, purchase.StatusCompleted, p.Status())
	assert.Equal(t, 6, w.stock(t, productID))

	r, err := refunds.ProcessRefund(context.Background(), p.ID(), commands.ProcessRefundCommand{Reason: "defective"})
	require.NoError(t, err)
	assert.Equal(t, refund.StatusApproved, r.Status())
	assert.Equal(t, 10, w.stock(t, productID))

	_, err = refunds.ProcessRefund(context.Background(), p.ID(), commands.ProcessRefundCommand{Reason: "defective"})
	assert.True(t, errs.Is(err, errs.ErrRefundNotAllowed))
}

func TestPurchase_PriceSnapshotSurvivesCatalogChange(t *testing.T) {
	w := newWorld(t)
	productID := w.addProduct(t, "50", 10)
	p := w.place(t, productID, 2)

	require.NoError(t, w.store.UpdateProductPrice(productID, product.MustParseMoney("75")))

	view, err := queries.NewPurchaseQueries(memstore.NewReadStore(w.store)).GetPurchase(context.Background(), p.ID())
	require.NoError(t, err)
	assert.True(t, view.UnitPrice.Equal(decimal.RequireFromString("50")), "unit price %s", view.UnitPrice)
	assert.True(t, view.TotalPrice.Equal(decimal.RequireFromString("100")), "total price %s", view.TotalPrice)

	refunds := commands.NewRefundCommands(w.store, &recordingNotifier{}, w.clock, w.metrics)
	_, err = refunds.ProcessRefund(context.Background(), p.ID(), commands.ProcessRefundCommand{Reason: "changed mind"})
	require.NoError(t, err)
	assert.Equal(t, 10, w.stock(t, productID))
}

func TestStockConservation(t *testing.T) {
	const initial = 30
	w := newWorld(t)
	productID := w.addProduct(t, "3.10", initial)
	purchases := commands.NewPurchaseCommands(w.store, w.clock, w.metrics)
	refunds := commands.NewRefundCommands(w.store, &recordingNotifier{}, w.clock, w.metrics)

	quantities := []int{1, 2, 3, 4, 5, 6}
	held := 0
	for i, qty := range quantities {
		p, err := purchases.PlacePurchase(context.Background(), commands.PlacePurchaseCommand{
			UserID: w.userID, ProductID: productID, Quantity: qty,
		})
		require.NoError(t, err)
		held += qty

		if i%2 == 0 {
			_, err := refunds.ProcessRefund(context.Background(), p.ID(), commands.ProcessRefundCommand{Reason: "returned"})
			require.NoError(t, err)
			held -= qty
		}

		stock := w.stock(t, productID)
		require.GreaterOrEqual(t, stock, 0)
		require.Equal(t, initial, stock+held)
	}
}
