//go:build unit

package purchase_test

import (
	"testing"
	"time"

	"commerce-order-core/internal/domain/product"
	"commerce-order-core/internal/domain/purchase"
	"commerce-order-core/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(t *testing.T, price string) *product.Product {
	t.Helper()
	return product.Reconstruct(uuid.New(), "Keyboard", product.MustParseMoney(price), 10, 1)
}

func mustQty(t *testing.T, v int) purchase.Quantity {
	t.Helper()
	q, err := purchase.NewQuantity(v)
	require.NoError(t, err)
	return q
}

func TestQuantity(t *testing.T) {
	for _, v := range []int{0, -1, -100} {
		_, err := purchase.NewQuantity(v)
		assert.True(t, errs.Is(err, errs.ErrInvalidQuantity), "quantity %d", v)
	}
	q, err := purchase.NewQuantity(3)
	require.NoError(t, err)
	assert.Equal(t, 3, q.Value())
}

func TestNewPurchase(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("captures price snapshot", func(t *testing.T) {
		p := newProduct(t, "19.99")
		pur, err := purchase.NewPurchase(userID, p, mustQty(t, 3), purchase.StatusCompleted, now)
		require.NoError(t, err)

		assert.True(t, pur.IsNew())
		assert.Equal(t, userID, pur.UserID())
		assert.Equal(t, p.ID(), pur.ProductID())
		assert.Equal(t, "19.99", pur.UnitPrice().String())
		assert.Equal(t, "59.97", pur.TotalPrice().String())
		assert.Equal(t, purchase.StatusCompleted, pur.Status())
		assert.Equal(t, purchase.Status(""), pur.LoadedStatus())
		assert.Equal(t, now, pur.PurchasedAt())
	})

	t.Run("pending is a valid initial status", func(t *testing.T) {
		pur, err := purchase.NewPurchase(userID, newProduct(t, "1.00"), mustQty(t, 1), purchase.StatusPending, now)
		require.NoError(t, err)
		assert.Equal(t, purchase.StatusPending, pur.Status())
	})

	t.Run("refunded is not a valid initial status", func(t *testing.T) {
		_, err := purchase.NewPurchase(userID, newProduct(t, "1.00"), mustQty(t, 1), purchase.StatusRefunded, now)
		assert.True(t, errs.Is(err, errs.ErrInvalidStatusTransition))
	})

	t.Run("zero value quantity rejected", func(t *testing.T) {
		_, err := purchase.NewPurchase(userID, newProduct(t, "1.00"), purchase.Quantity{}, purchase.StatusCompleted, now)
		assert.True(t, errs.Is(err, errs.ErrInvalidQuantity))
	})
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to purchase.Status
		ok       bool
	}{
		{purchase.StatusPending, purchase.StatusCompleted, true},
		{purchase.StatusPending, purchase.StatusRefunded, false},
		{purchase.StatusCompleted, purchase.StatusRefunded, true},
		{purchase.StatusCompleted, purchase.StatusPending, false},
		{purchase.StatusRefunded, purchase.StatusCompleted, false},
		{purchase.StatusRefunded, purchase.StatusPending, false},
		{purchase.StatusRefunded, purchase.StatusRefunded, false},
	}
	for _, c := range cases {
		t.Run(string(c.from)+"->"+string(c.to), func(t *testing.T) {
			assert.Equal(t, c.ok, c.from.CanTransitionTo(c.to))
		})
	}
}

func TestPurchaseLifecycle(t *testing.T) {
	now := time.Now().UTC()
	load := func(status purchase.Status) *purchase.Purchase {
		unit := product.MustParseMoney("5.00")
		return purchase.Reconstruct(uuid.New(), uuid.New(), uuid.New(), mustQty(t, 2), unit, unit.Mul(2), status, now)
	}

	t.Run("complete pending purchase", func(t *testing.T) {
		p := load(purchase.StatusPending)
		require.NoError(t, p.Complete())
		assert.Equal(t, purchase.StatusCompleted, p.Status())
		assert.Equal(t, purchase.StatusPending, p.LoadedStatus())
	})

	t.Run("complete twice rejected", func(t *testing.T) {
		p := load(purchase.StatusCompleted)
		assert.True(t, errs.Is(p.Complete(), errs.ErrInvalidStatusTransition))
	})

	t.Run("refund completed purchase keeps snapshot", func(t *testing.T) {
		p := load(purchase.StatusCompleted)
		require.NoError(t, p.MarkRefunded())
		assert.Equal(t, purchase.StatusRefunded, p.Status())
		assert.Equal(t, "10.00", p.TotalPrice().String())
		assert.Equal(t, 2, p.Quantity().Value())
	})

	t.Run("refund rejected unless completed", func(t *testing.T) {
		for _, st := range []purchase.Status{purchase.StatusPending, purchase.StatusRefunded} {
			p := load(st)
			err := p.MarkRefunded()
			assert.True(t, errs.Is(err, errs.ErrRefundNotAllowed), "status %s", st)
			assert.Equal(t, st, p.Status())
		}
	})

	t.Run("parse status", func(t *testing.T) {
		st, err := purchase.ParseStatus("REFUNDED")
		require.NoError(t, err)
		assert.Equal(t, purchase.StatusRefunded, st)

		_, err = purchase.ParseStatus("CANCELED")
		require.ErrorIs(t, err, purchase.ErrUnknownStatus)
	})
}
