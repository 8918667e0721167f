package repository

import (
	"HomeBoxed/internal/models"
	"errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SequenceRepository interface {
	Get(name string) (uint64, error)
}

type SequenceRepositoryImpl struct {
	db *gorm.DB
}

func NewSequenceRepository(db *gorm.DB) SequenceRepository {
	return &SequenceRepositoryImpl{db: db}
}

// Get returns 0 for a sequence that was never stored.
func (r *SequenceRepositoryImpl) Get(name string) (uint64, error) {
	var sequence models.Sequence
	err := r.db.Where("name = ?", name).First(&sequence).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return sequence.Next, nil
}

// setSequence upserts a sequence. Repositories call it inside the transaction
// that consumes the value.
func setSequence(tx *gorm.DB, name string, next uint64) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"next"}),
	}).Create(&models.Sequence{Name: name, Next: next}).Error
}
