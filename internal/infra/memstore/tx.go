package memstore

import (
	"context"
	"time"

	"commerce-order-core/internal/domain/product"
	"commerce-order-core/internal/domain/purchase"
	"commerce-order-core/internal/domain/refund"
	"commerce-order-core/internal/domain/user"
	"commerce-order-core/internal/infra"
	"commerce-order-core/internal/usecase/shared"

	"github.com/google/uuid"
)

// memTx is only used while Store.mu is held.
type memTx struct {
	st *state
}

func (t *memTx) Users() shared.UserReader        { return t }
func (t *memTx) Products() shared.ProductStore   { return productStore{t} }
func (t *memTx) Purchases() shared.PurchaseStore { return purchaseStore{t} }
func (t *memTx) Refunds() shared.RefundStore     { return refundStore{t} }

func (t *memTx) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := t.st.users[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "user not found")
	}
	return u, nil
}

func (t *memTx) findProduct(id uuid.UUID) (*product.Product, error) {
	row, ok := t.st.products[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "product not found")
	}
	return product.Reconstruct(id, row.name, row.price, row.stock, row.version), nil
}

type productStore struct{ t *memTx }

func (s productStore) FindByID(_ context.Context, id uuid.UUID) (*product.Product, error) {
	return s.t.findProduct(id)
}

func (s productStore) DecreaseStock(_ context.Context, id uuid.UUID, amount int) error {
	row, ok := s.t.st.products[id]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "product not found")
	}
	if row.stock < amount {
		return infra.NewRepoErr(infra.KindStockShortage, "insufficient stock")
	}
	row.stock -= amount
	row.version++
	s.t.st.products[id] = row
	return nil
}

func (s productStore) IncreaseStock(_ context.Context, id uuid.UUID, amount int) error {
	row, ok := s.t.st.products[id]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "product not found")
	}
	row.stock += amount
	row.version++
	s.t.st.products[id] = row
	return nil
}

type purchaseStore struct{ t *memTx }

func (s purchaseStore) Save(_ context.Context, p *purchase.Purchase) (*purchase.Purchase, error) {
	if p.IsNew() {
		id := uuid.New()
		row := purchaseRow{
			userID:      p.UserID(),
			productID:   p.ProductID(),
			quantity:    p.Quantity().Value(),
			unitPrice:   p.UnitPrice(),
			totalPrice:  p.TotalPrice(),
			status:      p.Status().String(),
			purchasedAt: p.PurchasedAt().UTC().Truncate(time.Microsecond),
		}
		s.t.st.purchases[id] = row
		return toPurchase(id, row)
	}

	row, ok := s.t.st.purchases[p.ID()]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "purchase not found")
	}
	if row.status != p.LoadedStatus().String() {
		return nil, infra.NewRepoErr(infra.KindConflict, "purchase status changed")
	}
	row.status = p.Status().String()
	s.t.st.purchases[p.ID()] = row
	return toPurchase(p.ID(), row)
}

func (s purchaseStore) FindByID(_ context.Context, id uuid.UUID) (*purchase.Purchase, error) {
	row, ok := s.t.st.purchases[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "purchase not found")
	}
	return toPurchase(id, row)
}

func toPurchase(id uuid.UUID, row purchaseRow) (*purchase.Purchase, error) {
	qty, err := purchase.NewQuantity(row.quantity)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt purchase quantity", err)
	}
	status, err := purchase.ParseStatus(row.status)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt purchase status", err)
	}
	return purchase.Reconstruct(id, row.userID, row.productID, qty, row.unitPrice, row.totalPrice, status, row.purchasedAt), nil
}

type refundStore struct{ t *memTx }

func (s refundStore) Save(_ context.Context, r *refund.Refund) (*refund.Refund, error) {
	if _, dup := s.t.st.refundByPurchase[r.PurchaseID()]; dup {
		return nil, infra.NewRepoErr(infra.KindDuplicateKey, "refund already recorded for purchase")
	}
	if _, ok := s.t.st.purchases[r.PurchaseID()]; !ok {
		return nil, infra.NewRepoErr(infra.KindForeignKeyViolated, "refund references unknown purchase")
	}
	id := uuid.New()
	createdAt := r.CreatedAt().UTC().Truncate(time.Microsecond)
	s.t.st.refunds[id] = refundRow{
		purchaseID: r.PurchaseID(),
		reason:     r.Reason().String(),
		status:     r.Status().String(),
		createdAt:  createdAt,
	}
	s.t.st.refundByPurchase[r.PurchaseID()] = id
	return refund.Reconstruct(id, r.PurchaseID(), r.Reason(), r.Status(), createdAt), nil
}
