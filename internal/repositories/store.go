package repositories

import (
	"context"

	"gorm.io/gorm"
)

// Store gives access to every repository bound to the same connection or transaction.
type Store interface {
	Categories() CategoryRepository
	Products() ProductRepository
	Sales() SaleRepository
	Clients() ClientRepository
	// Transaction runs fn with a Store bound to a single database transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

// GORMStore is the GORM implementation of Store.
type GORMStore struct {
	db *gorm.DB
}

// NewGORMStore creates a Store backed by db.
func NewGORMStore(db *gorm.DB) *GORMStore {
	return &GORMStore{db: db}
}

func (s *GORMStore) Categories() CategoryRepository { return NewGORMCategoryRepository(s.db) }
func (s *GORMStore) Products() ProductRepository   { return NewGORMProductRepository(s.db) }
func (s *GORMStore) Sales() SaleRepository         { return NewGORMSaleRepository(s.db) }
func (s *GORMStore) Clients() ClientRepository     { return NewGORMClientRepository(s.db) }

// Transaction implements Store.
func (s *GORMStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGORMStore(tx))
	})
}
