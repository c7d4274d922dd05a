package main

import (
	"context"
	"log"

	"petmedia-be/internal/bootstrap"
	"petmedia-be/internal/config"
	"petmedia-be/internal/server"
	"petmedia-be/internal/tracer"
	"petmedia-be/pkg/database"
)

func main() {
	// 0. Initialize tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load configuration
	cfg := config.Load()

	// 2. Initialize database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap dependencies
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Initialize and run server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
