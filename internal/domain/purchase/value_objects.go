package purchase

import "commerce-order-core/internal/pkg/errs"

type Quantity struct {
	value int
}

func NewQuantity(v int) (Quantity, error) {
	if v <= 0 {
		return Quantity{}, errs.ErrInvalidQuantity
	}
	return Quantity{value: v}, nil
}

func (q Quantity) Value() int { return q.value }
