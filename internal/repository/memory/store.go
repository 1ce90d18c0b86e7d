// Package memory holds map-backed implementations of the model stores. They
// enforce the same uniqueness and delete-restrict rules as the Postgres schema
// and are used by tests and local runs without a database.
package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dtroode/storefront/internal/model"
)

// Store owns the shared state of every in-memory repository. One mutex guards
// all tables so that cross-table checks (foreign keys) are atomic.
type Store struct {
	mu       sync.RWMutex
	users    map[uuid.UUID]model.User
	brands   map[uuid.UUID]model.Brand
	models   map[uuid.UUID]model.DeviceModel
	products map[uuid.UUID]model.Product
}

func New() *Store {
	return &Store{
		users:    make(map[uuid.UUID]model.User),
		brands:   make(map[uuid.UUID]model.Brand),
		models:   make(map[uuid.UUID]model.DeviceModel),
		products: make(map[uuid.UUID]model.Product),
	}
}

func (s *Store) Users() *UserRepository {
	return &UserRepository{s: s}
}

func (s *Store) Brands() *BrandRepository {
	return &BrandRepository{s: s}
}

func (s *Store) DeviceModels() *DeviceModelRepository {
	return &DeviceModelRepository{s: s}
}

func (s *Store) Products() *ProductRepository {
	return &ProductRepository{s: s}
}
