//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"commerce-order-core/internal/domain/product"
	"commerce-order-core/internal/domain/purchase"
	"commerce-order-core/internal/domain/user"
	"commerce-order-core/internal/infra"
	"commerce-order-core/internal/infra/memstore"
	"commerce-order-core/internal/pkg/clock"
	"commerce-order-core/internal/pkg/metrics"
	"commerce-order-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var purchasedAt = time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)

type world struct {
	store   *memstore.Store
	clock   *clock.FixedClock
	metrics *metrics.Metrics
	userID  uuid.UUID
}

func newWorld(t *testing.T) *world {
	t.Helper()
	w := &world{
		store:   memstore.New(),
		clock:   clock.NewFixedClock(purchasedAt),
		metrics: metrics.NewNop(),
		userID:  uuid.New(),
	}
	email, err := user.NewEmail("buyer@example.com")
	require.NoError(t, err)
	w.store.SeedUser(user.NewUser(w.userID, email, "Buyer"))
	return w
}

func (w *world) addProduct(t *testing.T, price string, stock int) uuid.UUID {
	t.Helper()
	p, err := product.NewProduct(uuid.New(), "Keyboard", product.MustParseMoney(price), stock)
	require.NoError(t, err)
	w.store.SeedProduct(p)
	return p.ID()
}

func (w *world) stock(t *testing.T, productID uuid.UUID) int {
	t.Helper()
	p, err := w.store.Product(productID)
	require.NoError(t, err)
	return p.Stock()
}

// failingUoW runs on the memory store but fails the purchase insert, after
// the stock decrement has already been applied.
type failingUoW struct {
	inner shared.UnitOfWork
}

func (u failingUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.inner.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return fn(ctx, failingTx{Tx: tx})
	})
}

type failingTx struct {
	shared.Tx
}

func (t failingTx) Purchases() shared.PurchaseStore {
	return failingPurchases{PurchaseStore: t.Tx.Purchases()}
}

type failingPurchases struct {
	shared.PurchaseStore
}

func (failingPurchases) Save(context.Context, *purchase.Purchase) (*purchase.Purchase, error) {
	return nil, infra.NewRepoErr(infra.KindDBFailure, "connection reset")
}
