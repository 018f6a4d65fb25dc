package request

import (
	"commerce-order-core/internal/usecase/commands"

	"github.com/google/uuid"
)

// Quantity is validated by the workflow, after the user and product checks.
type PlacePurchaseRequest struct {
	UserID    uuid.UUID `json:"user_id" binding:"required"`
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity"`
}

func (r *PlacePurchaseRequest) ToCommand() commands.PlacePurchaseCommand {
	return commands.PlacePurchaseCommand{
		UserID:    r.UserID,
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
	}
}

type ListPendingRequest struct {
	Limit int    `form:"limit" binding:"omitempty,min=1"`
	After string `form:"after"`
}
