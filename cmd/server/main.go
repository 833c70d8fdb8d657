package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/taskboard/internal/server"
	"github.com/dmitrijs2005/taskboard/internal/server/config"
	"github.com/joho/godotenv"
)

func main() {

	// optional .env for local development
	_ = godotenv.Load()

	ctx := context.Background()

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("startup error: %v", err)
	}

	app.Run(ctx)
}
