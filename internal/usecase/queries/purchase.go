package queries

//go:generate mockgen -source=purchase.go -destination=../../../tests/mock/queries/purchase_mock.go -package=queriesmock

import (
	"context"
	"time"

	"commerce-order-core/internal/infra"
	"commerce-order-core/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseView is a purchase joined with the buyer's email and product name.
type PurchaseView struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	UserEmail   string          `json:"user_email"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Status      string          `json:"status"`
	PurchasedAt time.Time       `json:"purchased_at"`
}

type PurchaseReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseView, error)
	// Pending purchases oldest first, ties broken by id.
	ListPendingFirstPage(ctx context.Context, limit int32) ([]*PurchaseView, error)
	ListPendingAfter(ctx context.Context, lastPurchasedAt time.Time, lastID uuid.UUID, limit int32) ([]*PurchaseView, error)
}

type PurchaseQueries interface {
	GetPurchase(ctx context.Context, id uuid.UUID) (*PurchaseView, error)
	// ListPendingPurchases returns the next settlement batch and a cursor when
	// more pending purchases follow.
	ListPendingPurchases(ctx context.Context, cursor *Cursor, limit int) ([]*PurchaseView, *Cursor, error)
}

type purchaseQueriesImpl struct {
	readStore PurchaseReadStore
}

func NewPurchaseQueries(readStore PurchaseReadStore) PurchaseQueries {
	return &purchaseQueriesImpl{readStore: readStore}
}

func (q *purchaseQueriesImpl) GetPurchase(ctx context.Context, id uuid.UUID) (*PurchaseView, error) {
	v, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrPurchaseNotFound)
		}
		return nil, errs.AsInfrastructure(err)
	}
	return v, nil
}

func (q *purchaseQueriesImpl) ListPendingPurchases(ctx context.Context, cursor *Cursor, limit int) ([]*PurchaseView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var (
		rows []*PurchaseView
		err  error
	)
	if cursor == nil || cursor.After == "" {
		rows, err = q.readStore.ListPendingFirstPage(ctx, int32(limit+1))
	} else {
		lastAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, derr
		}
		rows, err = q.readStore.ListPendingAfter(ctx, lastAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, errs.AsInfrastructure(err)
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.PurchasedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
