//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"commerce-order-core/internal/domain/product"
	"commerce-order-core/internal/domain/purchase"
	"commerce-order-core/internal/domain/user"
	"commerce-order-core/internal/infra"
	"commerce-order-core/internal/infra/memstore"
	"commerce-order-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, stock int) (*memstore.Store, uuid.UUID, uuid.UUID) {
	t.Helper()
	s := memstore.New()

	email, err := user.NewEmail("a@example.com")
	require.NoError(t, err)
	u := user.NewUser(uuid.New(), email, "a")
	s.SeedUser(u)

	p, err := product.NewProduct(uuid.New(), "Mug", product.MustParseMoney("9.50"), stock)
	require.NoError(t, err)
	s.SeedProduct(p)
	return s, u.ID(), p.ID()
}

func newPurchase(t *testing.T, s *memstore.Store, userID, productID uuid.UUID, status purchase.Status, at time.Time) *purchase.Purchase {
	t.Helper()
	prod, err := s.Product(productID)
	require.NoError(t, err)
	qty, err := purchase.NewQuantity(1)
	require.NoError(t, err)
	p, err := purchase.NewPurchase(userID, prod, qty, status, at)
	require.NoError(t, err)
	return p
}

func TestDecreaseStock(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		amount  int
		kind    infra.RepositoryErrorKind
		left    int
		version int64
	}{
		{name: "decrements and bumps version", amount: 2, left: 3, version: 1},
		{name: "takes the last units", amount: 5, left: 0, version: 1},
		{name: "shortage", amount: 6, kind: infra.KindStockShortage, left: 5, version: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, productID := seed(t, 5)

			err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				return tx.Products().DecreaseStock(ctx, productID, tt.amount)
			})

			if tt.kind != "" {
				assert.True(t, infra.IsKind(err, tt.kind), "got %v", err)
			} else {
				require.NoError(t, err)
			}
			p, err := s.Product(productID)
			require.NoError(t, err)
			assert.Equal(t, tt.left, p.Stock())
			assert.Equal(t, tt.version, p.Version())
		})
	}
}

func TestDecreaseStock_StaleReadStillSucceeds(t *testing.T) {
	ctx := context.Background()
	s, _, productID := seed(t, 5)

	stale, err := s.Product(productID)
	require.NoError(t, err)
	require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Products().DecreaseStock(ctx, productID, 1)
	}))

	err = s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Products().DecreaseStock(ctx, stale.ID(), 1)
	})

	require.NoError(t, err)
	prod, err := s.Product(productID)
	require.NoError(t, err)
	assert.Equal(t, 3, prod.Stock())
	assert.Equal(t, int64(2), prod.Version())
}

func TestWithin_RestoresSnapshotOnError(t *testing.T) {
	ctx := context.Background()
	s, userID, productID := seed(t, 5)
	boom := errors.New("boom")

	p := newPurchase(t, s, userID, productID, purchase.StatusCompleted, time.Now())
	err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Products().DecreaseStock(ctx, productID, 2); err != nil {
			return err
		}
		if _, err := tx.Purchases().Save(ctx, p); err != nil {
			return err
		}
		return boom
	})

	require.ErrorIs(t, err, boom)
	prod, err := s.Product(productID)
	require.NoError(t, err)
	assert.Equal(t, 5, prod.Stock())
	assert.Equal(t, int64(0), prod.Version())
	assert.Equal(t, 0, s.PurchaseCount())
}

func TestWithin_CancelledContext(t *testing.T) {
	s, _, _ := seed(t, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := s.Within(ctx, func(context.Context, shared.Tx) error {
		called = true
		return nil
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestPurchaseSave_StatusCompareAndSet(t *testing.T) {
	ctx := context.Background()
	s, userID, productID := seed(t, 5)

	var stored *purchase.Purchase
	p := newPurchase(t, s, userID, productID, purchase.StatusCompleted, time.Now())
	require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		stored, err = tx.Purchases().Save(ctx, p)
		return err
	}))
	require.NotEqual(t, uuid.Nil, stored.ID())

	load := func() *purchase.Purchase {
		var p *purchase.Purchase
		require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			var err error
			p, err = tx.Purchases().FindByID(ctx, stored.ID())
			return err
		}))
		return p
	}
	first, second := load(), load()

	require.NoError(t, first.MarkRefunded())
	require.NoError(t, second.MarkRefunded())

	require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Purchases().Save(ctx, first)
		return err
	}))
	err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Purchases().Save(ctx, second)
		return err
	})
	assert.True(t, infra.IsKind(err, infra.KindConflict), "got %v", err)
}

func TestReadStore(t *testing.T) {
	ctx := context.Background()
	s, userID, productID := seed(t, 10)
	rs := memstore.NewReadStore(s)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	var ids []uuid.UUID
	for i, status := range []purchase.Status{purchase.StatusPending, purchase.StatusCompleted, purchase.StatusPending, purchase.StatusPending} {
		p := newPurchase(t, s, userID, productID, status, base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			saved, err := tx.Purchases().Save(ctx, p)
			if err != nil {
				return err
			}
			ids = append(ids, saved.ID())
			return nil
		}))
	}

	t.Run("find joins email and product name", func(t *testing.T) {
		v, err := rs.FindByID(ctx, ids[1])
		require.NoError(t, err)
		assert.Equal(t, "a@example.com", v.UserEmail)
		assert.Equal(t, "Mug", v.ProductName)
		assert.Equal(t, "COMPLETED", v.Status)
	})

	t.Run("find unknown", func(t *testing.T) {
		_, err := rs.FindByID(ctx, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("pending oldest first with keyset", func(t *testing.T) {
		page, err := rs.ListPendingFirstPage(ctx, 2)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, ids[0], page[0].ID)
		assert.Equal(t, ids[2], page[1].ID)

		rest, err := rs.ListPendingAfter(ctx, page[1].PurchasedAt, page[1].ID, 2)
		require.NoError(t, err)
		require.Len(t, rest, 1)
		assert.Equal(t, ids[3], rest[0].ID)
	})
}
