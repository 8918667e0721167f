package cmd

import (
	"HomeBoxed/internal/handlers"
	"HomeBoxed/internal/services"
	"gorm.io/gorm"
)

type App struct {
	InventoryService services.InventoryService
	BoxHandler       *handlers.BoxHandler
	ItemHandler      *handlers.ItemHandler
	FileHandler      *handlers.FileHandler
	JanitorHandler   *handlers.JanitorHandler
	JanitorService   *services.Janitor
	LogService       services.LogService
	DB               *gorm.DB
}

func NewApp(
	inventoryService services.InventoryService,
	boxHandler *handlers.BoxHandler,
	itemHandler *handlers.ItemHandler,
	fileHandler *handlers.FileHandler,
	janitorHandler *handlers.JanitorHandler,
	janitorService *services.Janitor,
	logService services.LogService,
	db *gorm.DB,
) *App {
	return &App{
		InventoryService: inventoryService,
		BoxHandler:       boxHandler,
		ItemHandler:      itemHandler,
		FileHandler:      fileHandler,
		JanitorHandler:   janitorHandler,
		JanitorService:   janitorService,
		LogService:       logService,
		DB:               db,
	}
}
