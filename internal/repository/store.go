package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store groups the repositories that share one connection or transaction
type Store struct {
	db       *gorm.DB
	Cells    *CellRepository
	Inmates  *InmateRepository
	Visitors *VisitorRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:       db,
		Cells:    NewCellRepo(db),
		Inmates:  NewInmateRepo(db),
		Visitors: NewVisitorRepo(db),
	}
}

// Transaction runs fn against a Store bound to a single transaction.
// Any error returned by fn rolls back every write made through it.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
