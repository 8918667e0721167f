package database

import (
	"HomeBoxed/internal/config"
	"HomeBoxed/internal/helpers"
	"HomeBoxed/internal/inventory"
	"HomeBoxed/internal/mapper"
	"HomeBoxed/internal/models"
	"fmt"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	"log"
	"os"
)

func SetupDatabase(configuration *config.Configuration) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch configuration.Database.Driver {
	case "postgres":
		dsn, err := postgresDSN()
		if err != nil {
			return nil, err
		}
		dialector = postgres.Open(dsn)
	default:
		if err := helpers.EnsureParentDir(configuration.Database.Path); err != nil {
			return nil, err
		}
		dialector = sqlite.Open(configuration.Database.Path)
	}
	return Open(dialector)
}

// Open connects through the given dialector, migrates the schema and seeds
// the default units.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, err
	}
	err = db.AutoMigrate(&models.Unit{}, &models.Box{}, &models.Item{}, &models.Sequence{})
	if err != nil {
		return nil, err
	}
	if err := seedUnits(db); err != nil {
		return nil, fmt.Errorf("seed units: %w", err)
	}
	return db, nil
}

// seedUnits inserts the default units that are missing and leaves existing
// rows alone.
func seedUnits(db *gorm.DB) error {
	units := mapper.ToUnitModels(inventory.DefaultUnits())
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&units).Error
}

func postgresDSN() (string, error) {
	// A missing .env is fine, the variables may come from the environment.
	_ = godotenv.Load()
	var envVariables = [...]string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_TZ"}
	for _, envVariable := range envVariables {
		if os.Getenv(envVariable) == "" {
			return "", fmt.Errorf("%s environment variable not set", envVariable)
		}
	}
	if os.Getenv("DB_SSLMODE") == "" {
		if err := os.Setenv("DB_SSLMODE", "disable"); err != nil {
			return "", err
		}
	}
	return os.ExpandEnv("host=${DB_HOST} user=${DB_USER} password=${DB_PASSWORD} dbname=${DB_NAME} port=${DB_PORT} sslmode=${DB_SSLMODE} TimeZone=${DB_TZ}"), nil
}

func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Could not get DB instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}
}
