package memstore

import (
	"context"
	"slices"
	"time"

	"commerce-order-core/internal/domain/purchase"
	"commerce-order-core/internal/infra"
	"commerce-order-core/internal/usecase/queries"

	"github.com/google/uuid"
)

// ReadStore serves purchase views from the same in-process state.
type ReadStore struct {
	s *Store
}

func NewReadStore(s *Store) *ReadStore {
	return &ReadStore{s: s}
}

var _ queries.PurchaseReadStore = (*ReadStore)(nil)

func (r *ReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.PurchaseView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	row, ok := r.s.st.purchases[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "purchase not found")
	}
	return r.view(id, row), nil
}

func (r *ReadStore) ListPendingFirstPage(_ context.Context, limit int32) ([]*queries.PurchaseView, error) {
	return r.listPending(func(time.Time, uuid.UUID) bool { return true }, limit), nil
}

func (r *ReadStore) ListPendingAfter(_ context.Context, lastPurchasedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.PurchaseView, error) {
	after := func(at time.Time, id uuid.UUID) bool {
		if at.Equal(lastPurchasedAt) {
			return id.String() > lastID.String()
		}
		return at.After(lastPurchasedAt)
	}
	return r.listPending(after, limit), nil
}

func (r *ReadStore) listPending(include func(time.Time, uuid.UUID) bool, limit int32) []*queries.PurchaseView {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*queries.PurchaseView, 0)
	for id, row := range r.s.st.purchases {
		if row.status != purchase.StatusPending.String() || !include(row.purchasedAt, id) {
			continue
		}
		out = append(out, r.view(id, row))
	}
	slices.SortFunc(out, func(a, b *queries.PurchaseView) int {
		if c := a.PurchasedAt.Compare(b.PurchasedAt); c != 0 {
			return c
		}
		switch {
		case a.ID.String() < b.ID.String():
			return -1
		case a.ID.String() > b.ID.String():
			return 1
		default:
			return 0
		}
	})
	if len(out) > int(limit) {
		out = out[:limit]
	}
	return out
}

func (r *ReadStore) view(id uuid.UUID, row purchaseRow) *queries.PurchaseView {
	v := &queries.PurchaseView{
		ID:          id,
		UserID:      row.userID,
		ProductID:   row.productID,
		Quantity:    row.quantity,
		UnitPrice:   row.unitPrice.Decimal(),
		TotalPrice:  row.totalPrice.Decimal(),
		Status:      row.status,
		PurchasedAt: row.purchasedAt,
	}
	if u, ok := r.s.st.users[row.userID]; ok {
		v.UserEmail = u.Email().Value()
	}
	if p, ok := r.s.st.products[row.productID]; ok {
		v.ProductName = p.name
	}
	return v
}
