package response

import (
	"time"

	"commerce-order-core/internal/domain/purchase"
	"commerce-order-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type PurchaseResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	ProductID   uuid.UUID `json:"product_id"`
	Quantity    int       `json:"quantity"`
	UnitPrice   string    `json:"unit_price"`
	TotalPrice  string    `json:"total_price"`
	Status      string    `json:"status"`
	PurchasedAt time.Time `json:"purchased_at"`
}

func FromPurchase(p *purchase.Purchase) *PurchaseResponse {
	return &PurchaseResponse{
		ID:          p.ID(),
		UserID:      p.UserID(),
		ProductID:   p.ProductID(),
		Quantity:    p.Quantity().Value(),
		UnitPrice:   p.UnitPrice().String(),
		TotalPrice:  p.TotalPrice().String(),
		Status:      p.Status().String(),
		PurchasedAt: p.PurchasedAt(),
	}
}

type PurchaseViewResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	UserEmail   string    `json:"user_email"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   string    `json:"unit_price"`
	TotalPrice  string    `json:"total_price"`
	Status      string    `json:"status"`
	PurchasedAt time.Time `json:"purchased_at"`
}

func FromPurchaseView(v *queries.PurchaseView) *PurchaseViewResponse {
	return &PurchaseViewResponse{
		ID:          v.ID,
		UserID:      v.UserID,
		UserEmail:   v.UserEmail,
		ProductID:   v.ProductID,
		ProductName: v.ProductName,
		Quantity:    v.Quantity,
		UnitPrice:   v.UnitPrice.StringFixed(2),
		TotalPrice:  v.TotalPrice.StringFixed(2),
		Status:      v.Status,
		PurchasedAt: v.PurchasedAt,
	}
}

type PendingPurchasesResponse struct {
	Items      []*PurchaseViewResponse `json:"items"`
	NextCursor string                  `json:"next_cursor,omitempty"`
}

func FromPendingPage(views []*queries.PurchaseView, next *queries.Cursor) *PendingPurchasesResponse {
	items := make([]*PurchaseViewResponse, len(views))
	for i, v := range views {
		items[i] = FromPurchaseView(v)
	}
	res := &PendingPurchasesResponse{Items: items}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}
