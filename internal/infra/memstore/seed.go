package memstore

import (
	"encoding/json"
	"io"
	"os"

	"commerce-order-core/internal/domain/product"
	"commerce-order-core/internal/domain/user"
	"commerce-order-core/internal/pkg/errs"

	"github.com/google/uuid"
)

// Seed is the reference data a memory store starts with.
//
//	{"users": [{"id": "...", "email": "a@example.com", "name": "A"}],
//	 "products": [{"id": "...", "name": "Mug", "price": "9.50", "stock": 10}]}
type Seed struct {
	Users    []SeedUser    `json:"users"`
	Products []SeedProduct `json:"products"`
}

type SeedUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

type SeedProduct struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price string    `json:"price"`
	Stock int       `json:"stock"`
}

// LoadSeedFile reads a JSON seed from path and applies it to s.
func (s *Store) LoadSeedFile(path string) (users, products int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, errs.Wrap(err, "failed to open seed file")
	}
	defer f.Close()
	return s.LoadSeed(f)
}

// LoadSeed validates every entry before touching the store, so a bad seed
// leaves it unchanged.
func (s *Store) LoadSeed(r io.Reader) (users, products int, err error) {
	var seed Seed
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&seed); err != nil {
		return 0, 0, errs.Wrap(err, "failed to decode seed")
	}

	us := make([]*user.User, 0, len(seed.Users))
	for i, su := range seed.Users {
		if su.ID == uuid.Nil {
			return 0, 0, errs.Wrapf(errs.New("missing id"), "seed user %d", i)
		}
		email, err := user.NewEmail(su.Email)
		if err != nil {
			return 0, 0, errs.Wrapf(err, "seed user %d", i)
		}
		us = append(us, user.NewUser(su.ID, email, su.Name))
	}

	ps := make([]*product.Product, 0, len(seed.Products))
	for i, sp := range seed.Products {
		if sp.ID == uuid.Nil {
			return 0, 0, errs.Wrapf(errs.New("missing id"), "seed product %d", i)
		}
		price, err := product.ParseMoney(sp.Price)
		if err != nil {
			return 0, 0, errs.Wrapf(err, "seed product %d", i)
		}
		p, err := product.NewProduct(sp.ID, sp.Name, price, sp.Stock)
		if err != nil {
			return 0, 0, errs.Wrapf(err, "seed product %d", i)
		}
		ps = append(ps, p)
	}

	for _, u := range us {
		s.SeedUser(u)
	}
	for _, p := range ps {
		s.SeedProduct(p)
	}
	return len(us), len(ps), nil
}
