//go:build wireinject
// +build wireinject

package main

import (
	"HomeBoxed/cmd"
	"HomeBoxed/database"
	"HomeBoxed/internal/config"
	"HomeBoxed/internal/handlers"
	"HomeBoxed/internal/repository"
	"HomeBoxed/internal/services"
	"github.com/google/wire"
)

func InitializeApp(configuration *config.Configuration) (*cmd.App, error) {
	wire.Build(
		cmd.NewApp,
		database.SetupDatabase,
		repository.NewBoxRepository,
		repository.NewItemRepository,
		repository.NewSequenceRepository,
		repository.NewUnitRepository,
		services.NewLogService,
		services.NewInventoryService,
		services.NewMoverService,
		services.NewFileService,
		services.NewJanitorService,
		handlers.NewBoxHandler,
		handlers.NewItemHandler,
		handlers.NewFileHandler,
		handlers.NewJanitorHandler,
	)
	return nil, nil
}
