package repository

import (
	"HomeBoxed/internal/models"
	"gorm.io/gorm"
)

type ItemRepository interface {
	GenericRepository[models.Item]
	MaxPosition() (uint64, error)
	Place(id uint, boxID uint, position uint64) error
	PlaceMany(ids []uint, boxID uint, firstPosition uint64) error
	Unplace(id uint) error
	DeleteAndUnplace(id uint) error
}

type ItemRepositoryImpl[T models.Item] struct {
	GenericRepository[models.Item]
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &ItemRepositoryImpl[models.Item]{
		GenericRepository: NewGenericRepository[models.Item](db),
		db:                db,
	}
}

func (r *ItemRepositoryImpl[T]) MaxPosition() (uint64, error) {
	var maxPosition uint64
	err := r.db.Unscoped().Model(&models.Item{}).Select("COALESCE(MAX(position), 0)").Scan(&maxPosition).Error
	return maxPosition, err
}

// Place puts an item into a box at position and advances the placement
// sequence past it.
func (r *ItemRepositoryImpl[T]) Place(id uint, boxID uint, position uint64) error {
	return r.PlaceMany([]uint{id}, boxID, position)
}

// PlaceMany places ids into a box in order, numbering positions from firstPosition.
func (r *ItemRepositoryImpl[T]) PlaceMany(ids []uint, boxID uint, firstPosition uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			err := tx.Model(&models.Item{}).
				Where("id = ?", id).
				Updates(map[string]interface{}{"box_id": boxID, "position": firstPosition + uint64(i)}).Error
			if err != nil {
				return err
			}
		}
		return setSequence(tx, models.SequencePlacement, firstPosition+uint64(len(ids)))
	})
}

func (r *ItemRepositoryImpl[T]) Unplace(id uint) error {
	return r.db.Model(&models.Item{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"box_id": nil, "position": 0}).Error
}

func (r *ItemRepositoryImpl[T]) DeleteAndUnplace(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Item{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{"box_id": nil, "position": 0}).Error
		if err != nil {
			return err
		}
		return tx.Delete(&models.Item{}, id).Error
	})
}
