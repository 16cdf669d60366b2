// seed bootstraps the initial ADMIN account. Public registration never
// produces admins, so a fresh deployment runs this once before first login.
//
// Usage: SEED_ADMIN_EMAIL=... SEED_ADMIN_PASSWORD=... go run ./cmd/seed
// Idempotent: an existing account with the configured email is left alone.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kalasetu/marketplace/internal/domain/entity"
	"github.com/kalasetu/marketplace/internal/infrastructure/postgres"
	"github.com/kalasetu/marketplace/pkg/config"
	"github.com/kalasetu/marketplace/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		log.Fatal().Msg("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD are required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)

	taken, err := users.EmailTaken(ctx, cfg.Seed.AdminEmail)
	if err != nil {
		log.Fatal().Err(err).Msg("check admin account")
	}
	if taken {
		log.Info().Str("email", cfg.Seed.AdminEmail).Msg("admin account already exists, nothing to do")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash admin password")
	}

	admin := &entity.User{
		ID:           uuid.New().String(),
		Email:        cfg.Seed.AdminEmail,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		IsActive:     true,
		IsStaff:      true,
		DateJoined:   time.Now(),
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatal().Err(err).Msg("create admin account")
	}

	log.Info().Str("email", admin.Email).Msg("admin account created")
}
