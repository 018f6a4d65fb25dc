//go:build unit || e2e

package builder

import (
	"commerce-order-core/internal/domain/product"
	"commerce-order-core/internal/domain/user"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID    uuid.UUID
	Email string
	Name  string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:    uuid.New(),
		Email: "buyer@example.com",
		Name:  "Test Buyer",
	}
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	return user.NewUser(u.ID, email, u.Name), nil
}

type ProductBuilder struct {
	ID    uuid.UUID
	Name  string
	Price string
	Stock int
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:    uuid.New(),
		Name:  "Mechanical Keyboard",
		Price: "49.90",
		Stock: 10,
	}
}

func (p *ProductBuilder) WithStock(stock int) *ProductBuilder {
	p.Stock = stock
	return p
}

func (p *ProductBuilder) WithPrice(price string) *ProductBuilder {
	p.Price = price
	return p
}

func (p *ProductBuilder) BuildDomain() (*product.Product, error) {
	price, err := product.ParseMoney(p.Price)
	if err != nil {
		return nil, err
	}
	return product.NewProduct(p.ID, p.Name, price, p.Stock)
}
