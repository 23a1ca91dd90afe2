// Package testutil provides store doubles and token helpers for tests.
package testutil

import (
	"context"
	"slices"
	"sync"
	"time"

	"manaibay/internal/data/entity"
	"manaibay/internal/data/repository"

	"github.com/google/uuid"
)

// Store is an in-memory stand-in for the wide-column store. Like the real
// one it has no unique constraints and Update is an upsert.
type Store struct {
	mu       sync.RWMutex
	users    map[uuid.UUID]entity.User
	clients  map[uuid.UUID]entity.Client
	products map[uuid.UUID]entity.Product
	reviews  map[uuid.UUID]entity.Review
	failures map[string]error
}

func NewStore() *Store {
	return &Store{
		users:    map[uuid.UUID]entity.User{},
		clients:  map[uuid.UUID]entity.Client{},
		products: map[uuid.UUID]entity.Product{},
		reviews:  map[uuid.UUID]entity.Review{},
		failures: map[string]error{},
	}
}

// Repository exposes the store through the repository contracts.
func (s *Store) Repository() *repository.Repository {
	return &repository.Repository{
		User:    userRepo{s},
		Client:  clientRepo{s},
		Product: productRepo{s},
		Review:  reviewRepo{s},
		Store:   s,
	}
}

// FailOn makes the named operation ("product.delete", "review.find_by_product", ...) return err.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

func (s *Store) fail(op string) error {
	return s.failures[op]
}

func (s *Store) Ping(context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fail("ping")
}

// ReviewCount reports how many reviews reference productID.
func (s *Store) ReviewCount(productID uuid.UUID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, r := range s.reviews {
		if r.ProductID == productID {
			n++
		}
	}
	return n
}

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("user.create"); err != nil {
		return err
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r userRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if err := r.s.fail("user.find_by_id"); err != nil {
		return nil, err
	}
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r userRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if err := r.s.fail("user.find_by_email"); err != nil {
		return nil, err
	}
	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r userRepo) FindAll(context.Context) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if err := r.s.fail("user.find_all"); err != nil {
		return nil, err
	}
	out := []*entity.User{}
	for _, u := range r.s.users {
		out = append(out, &u)
	}
	return out, nil
}

func (r userRepo) Update(ctx context.Context, user *entity.User) error {
	return r.Create(ctx, user)
}

func (r userRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("user.delete"); err != nil {
		return err
	}
	delete(r.s.users, id)
	return nil
}

type clientRepo struct{ s *Store }

func (r clientRepo) Create(_ context.Context, client *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("client.create"); err != nil {
		return err
	}
	r.s.clients[client.ID] = *client
	return nil
}

func (r clientRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if err := r.s.fail("client.find_by_id"); err != nil {
		return nil, err
	}
	c, ok := r.s.clients[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r clientRepo) FindAll(context.Context) ([]*entity.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if err := r.s.fail("client.find_all"); err != nil {
		return nil, err
	}
	out := []*entity.Client{}
	for _, c := range r.s.clients {
		out = append(out, &c)
	}
	return out, nil
}

func (r clientRepo) Update(ctx context.Context, client *entity.Client) error {
	return r.Create(ctx, client)
}

func (r clientRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("client.delete"); err != nil {
		return err
	}
	delete(r.s.clients, id)
	return nil
}

type productRepo struct{ s *Store }

func (r productRepo) Create(_ context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("product.create"); err != nil {
		return err
	}
	r.s.products[product.ID] = *product
	return nil
}

func (r productRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if err := r.s.fail("product.find_by_id"); err != nil {
		return nil, err
	}
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r productRepo) FindAll(context.Context) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if err := r.s.fail("product.find_all"); err != nil {
		return nil, err
	}
	out := []*entity.Product{}
	for _, p := range r.s.products {
		out = append(out, &p)
	}
	slices.SortFunc(out, func(a, b *entity.Product) int {
		return a.CreatedDate.Compare(b.CreatedDate)
	})
	return out, nil
}

func (r productRepo) Update(ctx context.Context, product *entity.Product) error {
	return r.Create(ctx, product)
}

func (r productRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("product.delete"); err != nil {
		return err
	}
	delete(r.s.products, id)
	return nil
}

type reviewRepo struct{ s *Store }

func (r reviewRepo) Create(_ context.Context, review *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("review.create"); err != nil {
		return err
	}
	r.s.reviews[review.ID] = *review
	return nil
}

func (r reviewRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if err := r.s.fail("review.find_by_id"); err != nil {
		return nil, err
	}
	rv, ok := r.s.reviews[id]
	if !ok {
		return nil, nil
	}
	return &rv, nil
}

func (r reviewRepo) FindByProductID(_ context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if err := r.s.fail("review.find_by_product"); err != nil {
		return nil, err
	}
	out := []*entity.Review{}
	for _, rv := range r.s.reviews {
		if rv.ProductID == productID {
			out = append(out, &rv)
		}
	}
	slices.SortFunc(out, func(a, b *entity.Review) int {
		return a.CreatedDate.Compare(b.CreatedDate)
	})
	return out, nil
}

func (r reviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("review.delete"); err != nil {
		return err
	}
	delete(r.s.reviews, id)
	return nil
}

// Revocations is an in-memory token.RevocationStore.
type Revocations struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func NewRevocations() *Revocations {
	return &Revocations{revoked: map[string]bool{}}
}

func (r *Revocations) Revoke(_ context.Context, tokenID string, _ time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.revoked[tokenID] = true
	return nil
}

func (r *Revocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.revoked[tokenID], nil
}
