package repository

import (
	"time"

	"gorm.io/gorm"
)

type GenericRepositoryImpl[T any] struct {
	db *gorm.DB
}

func NewGenericRepository[T any](db *gorm.DB) GenericRepository[T] {
	return &GenericRepositoryImpl[T]{db: db}
}

func (r *GenericRepositoryImpl[T]) Create(entity *T) error {
	return r.db.Create(entity).Error
}

func (r *GenericRepositoryImpl[T]) CreateWithSequence(entity *T, sequence string, next uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entity).Error; err != nil {
			return err
		}
		return setSequence(tx, sequence, next)
	})
}

func (r *GenericRepositoryImpl[T]) FindByID(id uint) (*T, error) {
	var entity T
	err := r.db.First(&entity, id).Error
	return &entity, err
}

func (r *GenericRepositoryImpl[T]) FindAll() ([]T, error) {
	var entities []T
	err := r.db.Order("id").Find(&entities).Error
	return entities, err
}

func (r *GenericRepositoryImpl[T]) Update(entity *T) error {
	return r.db.Save(entity).Error
}

func (r *GenericRepositoryImpl[T]) UpdateColumns(id uint, values map[string]interface{}) error {
	return r.db.Model(new(T)).Where("id = ?", id).Updates(values).Error
}

func (r *GenericRepositoryImpl[T]) Delete(id uint) error {
	var entity T
	return r.db.Delete(&entity, id).Error
}

func (r *GenericRepositoryImpl[T]) MaxID() (uint, error) {
	var maxID uint
	err := r.db.Unscoped().Model(new(T)).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error
	return maxID, err
}

func (r *GenericRepositoryImpl[T]) FindDeletedBefore(cutoff time.Time) ([]T, error) {
	var entities []T
	err := r.db.Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Order("id").
		Find(&entities).Error
	return entities, err
}

func (r *GenericRepositoryImpl[T]) HardDelete(id uint) error {
	var entity T
	return r.db.Unscoped().Delete(&entity, id).Error
}
