package repository

import (
	"HomeBoxed/internal/models"
	"gorm.io/gorm"
)

type BoxRepository interface {
	GenericRepository[models.Box]
	DeleteAndUnplace(id uint) error
}

type BoxRepositoryImpl[T models.Box] struct {
	GenericRepository[models.Box]
	db *gorm.DB
}

func NewBoxRepository(db *gorm.DB) BoxRepository {
	return &BoxRepositoryImpl[models.Box]{
		GenericRepository: NewGenericRepository[models.Box](db),
		db:                db,
	}
}

// DeleteAndUnplace soft-deletes a box after clearing the box reference of
// every item it held.
func (r *BoxRepositoryImpl[T]) DeleteAndUnplace(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Item{}).
			Where("box_id = ?", id).
			Updates(map[string]interface{}{"box_id": nil, "position": 0}).Error
		if err != nil {
			return err
		}
		return tx.Delete(&models.Box{}, id).Error
	})
}
