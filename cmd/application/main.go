package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"storefront_client/config"
	"storefront_client/internal/storefront/app"
)

func main() {
	// .env is optional; environment beats the YAML file either way.
	_ = godotenv.Load()

	path := os.Getenv("STORE_CONFIG")
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Fatalf("loading config %s: %v", path, err)
	}

	storefront := app.NewStorefrontApp(cfg, os.Stdout)
	if err := storefront.Run(context.Background(), os.Stdin); err != nil {
		log.Fatalf("storefront stopped: %v", err)
	}
}
