package main

import (
	"context"
	"log"

	"github.com/agencydash/agency-backend/config"
	"github.com/agencydash/agency-backend/internal/auth"
	"github.com/agencydash/agency-backend/internal/bootstrap"
	"github.com/agencydash/agency-backend/internal/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{URL: cfg.Database.URL})
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer pool.Close()

	if err := postgres.RunMigrations(cfg.Database.URL); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "agency-backend",
		Version:     cfg.App.Version,
		CORSOrigins: cfg.Server.CORSOrigins,
		Tokens:      tokens,
		DB:          pool,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
