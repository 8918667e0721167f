package repository

import (
	"HomeBoxed/internal/models"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Unit{}, &models.Box{}, &models.Item{}, &models.Sequence{}))
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func boxWithID(id uint, name string) *models.Box {
	return &models.Box{BaseModel: models.BaseModel{ID: id}, Name: name}
}

func itemWithID(id uint, name string) *models.Item {
	return &models.Item{BaseModel: models.BaseModel{ID: id}, Name: name}
}

// itemsInBox reads a box's items back in placement order.
func itemsInBox(t *testing.T, db *gorm.DB, boxID uint) []models.Item {
	t.Helper()
	var items []models.Item
	require.NoError(t, db.Where("box_id = ?", boxID).Order("position, id").Find(&items).Error)
	return items
}
