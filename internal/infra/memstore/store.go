package memstore

import (
	"context"
	"maps"
	"sync"
	"time"

	"commerce-order-core/internal/domain/product"
	"commerce-order-core/internal/domain/user"
	"commerce-order-core/internal/infra"
	"commerce-order-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type productRow struct {
	name    string
	price   product.Money
	stock   int
	version int64
}

type purchaseRow struct {
	userID      uuid.UUID
	productID   uuid.UUID
	quantity    int
	unitPrice   product.Money
	totalPrice  product.Money
	status      string
	purchasedAt time.Time
}

type refundRow struct {
	purchaseID uuid.UUID
	reason     string
	status     string
	createdAt  time.Time
}

type state struct {
	users            map[uuid.UUID]*user.User
	products         map[uuid.UUID]productRow
	purchases        map[uuid.UUID]purchaseRow
	refunds          map[uuid.UUID]refundRow
	refundByPurchase map[uuid.UUID]uuid.UUID
}

func (s state) clone() state {
	return state{
		users:            maps.Clone(s.users),
		products:         maps.Clone(s.products),
		purchases:        maps.Clone(s.purchases),
		refunds:          maps.Clone(s.refunds),
		refundByPurchase: maps.Clone(s.refundByPurchase),
	}
}

// Store keeps all rows in process. Units of work are serialized by a single
// mutex; a failed unit restores the snapshot taken when it started.
type Store struct {
	mu sync.Mutex
	st state
}

func New() *Store {
	return &Store{
		st: state{
			users:            make(map[uuid.UUID]*user.User),
			products:         make(map[uuid.UUID]productRow),
			purchases:        make(map[uuid.UUID]purchaseRow),
			refunds:          make(map[uuid.UUID]refundRow),
			refundByPurchase: make(map[uuid.UUID]uuid.UUID),
		},
	}
}

var _ shared.UnitOfWork = (*Store)(nil)

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	err := fn(ctx, &memTx{st: &s.st})
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

// SeedUser and SeedProduct load reference data outside any unit of work.
func (s *Store) SeedUser(u *user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.users[u.ID()] = u
}

func (s *Store) SeedProduct(p *product.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.products[p.ID()] = productRow{
		name:    p.Name(),
		price:   p.Price(),
		stock:   p.Stock(),
		version: p.Version(),
	}
}

// UpdateProductPrice changes the catalogue price; existing purchases keep
// their snapshot.
func (s *Store) UpdateProductPrice(id uuid.UUID, price product.Money) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.st.products[id]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "product not found")
	}
	row.price = price
	row.version++
	s.st.products[id] = row
	return nil
}

func (s *Store) Product(id uuid.UUID) (*product.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&memTx{st: &s.st}).findProduct(id)
}

func (s *Store) RefundCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.refunds)
}

func (s *Store) PurchaseCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.purchases)
}
