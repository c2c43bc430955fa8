package main

import (
	"context"
	"log"

	"helpdesk-assistant-be/internal/bootstrap"
	"helpdesk-assistant-be/internal/config"
	"helpdesk-assistant-be/internal/server"
	"helpdesk-assistant-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Indexer Service...")
		if err := container.IndexerService.Consume(context.Background()); err != nil {
			log.Printf("Background Indexer Error: %v", err)
		}
	}()

	// 5. Initialize and Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
