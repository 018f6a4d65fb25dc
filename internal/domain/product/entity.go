package product

import (
	"strings"

	"commerce-order-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errs.New("product name must not be empty")
	ErrNegativePrice = errs.New("price cannot be negative")
	ErrInvalidPrice  = errs.New("price is not a decimal number")
	ErrNegativeStock = errs.New("stock cannot be negative")
)

// Product is read by the workflows; its stock only changes through the
// inventory store so that decrements stay conditional.
type Product struct {
	id      uuid.UUID
	name    string
	price   Money
	stock   int
	version int64
}

func NewProduct(id uuid.UUID, name string, price Money, stock int) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if stock < 0 {
		return nil, ErrNegativeStock
	}
	return &Product{
		id:    id,
		name:  name,
		price: price,
		stock: stock,
	}, nil
}

func Reconstruct(id uuid.UUID, name string, price Money, stock int, version int64) *Product {
	return &Product{
		id:      id,
		name:    name,
		price:   price,
		stock:   stock,
		version: version,
	}
}

func (p *Product) HasStock(n int) bool {
	return n > 0 && p.stock >= n
}

func (p *Product) ID() uuid.UUID  { return p.id }
func (p *Product) Name() string   { return p.name }
func (p *Product) Price() Money   { return p.price }
func (p *Product) Stock() int     { return p.stock }
func (p *Product) Version() int64 { return p.version }
