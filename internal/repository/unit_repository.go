package repository

import (
	"HomeBoxed/internal/models"
	"gorm.io/gorm"
)

type UnitRepository interface {
	FindAll() ([]models.Unit, error)
}

type UnitRepositoryImpl struct {
	db *gorm.DB
}

func NewUnitRepository(db *gorm.DB) UnitRepository {
	return &UnitRepositoryImpl{db: db}
}

// FindAll lists units in seeded order; units added later sort by abbreviation.
func (r *UnitRepositoryImpl) FindAll() ([]models.Unit, error) {
	var units []models.Unit
	err := r.db.Order("position, abbreviation").Find(&units).Error
	return units, err
}
