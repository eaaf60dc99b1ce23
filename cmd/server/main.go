package main

import (
	"context"
	"log"

	"github.com/fatihtuzcu28/chess/app"
	"github.com/fatihtuzcu28/chess/app/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	app.MustInitDB()
	if err := app.InitQueue(context.Background()); err != nil {
		log.Fatalf("failed to init queue: %v", err)
	}
	app.InitDispatcher()

	router, err := app.NewRouter()
	if err != nil {
		log.Fatalf("failed to initialize router: %v", err)
	}
	router.Run("0.0.0.0:" + cfg.Port)
}
