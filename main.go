package main

import (
	"HomeBoxed/database"
	"HomeBoxed/internal/config"
	"HomeBoxed/internal/routers"
	"errors"
	"io/fs"
	"log"
	"os"
)

func main() {
	cfg, err := bootstrap()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	app, err := InitializeApp(cfg)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	err = routers.SetupRoutes(app).Execute()
	database.CloseDatabase(app.DB)
	if err != nil {
		os.Exit(1)
	}
}

// bootstrap loads boxed.yaml, or the file named by BOXED_CONFIG. A missing
// file means the defaults.
func bootstrap() (*config.Configuration, error) {
	path := os.Getenv("BOXED_CONFIG")
	if path == "" {
		path = "boxed.yaml"
	}
	cfg, err := config.LoadConfiguration(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.DefaultConfiguration(), nil
	}
	return cfg, err
}
