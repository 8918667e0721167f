package repository

import "time"

type GenericRepository[T any] interface {
	Create(entity *T) error
	// CreateWithSequence creates entity and stores next as the named
	// sequence in one transaction.
	CreateWithSequence(entity *T, sequence string, next uint64) error
	FindByID(id uint) (*T, error)
	FindAll() ([]T, error)
	Update(entity *T) error
	UpdateColumns(id uint, values map[string]interface{}) error
	Delete(id uint) error
	// MaxID includes soft-deleted rows.
	MaxID() (uint, error)
	FindDeletedBefore(cutoff time.Time) ([]T, error)
	HardDelete(id uint) error
}
