package services

import (
	"HomeBoxed/database"
	"HomeBoxed/internal/repository"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")))
	require.NoError(t, err)
	t.Cleanup(func() { database.CloseDatabase(db) })
	return db
}

func newTestLogService() (LogService, *test.Hook) {
	logger, hook := test.NewNullLogger()
	return LogService{Log: logger}, hook
}

func newTestInventoryService(t *testing.T, db *gorm.DB) InventoryService {
	t.Helper()
	logService, _ := newTestLogService()
	service, err := NewInventoryService(
		repository.NewBoxRepository(db),
		repository.NewItemRepository(db),
		repository.NewSequenceRepository(db),
		repository.NewUnitRepository(db),
		logService,
	)
	require.NoError(t, err)
	return service
}
