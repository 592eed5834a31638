// seed cria o usuário administrador inicial quando a base está vazia.
//
// Email e senha vêm de SEED_ADMIN_EMAIL e SEED_ADMIN_PASSWORD; sem eles
// usa admin@macedocontabil.com.br com senha gerada e impressa no log.
package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/macedocontabil/macedo-si-api/internal/domain"
	"github.com/macedocontabil/macedo-si-api/internal/domain/entity"
	"github.com/macedocontabil/macedo-si-api/internal/infrastructure/postgres"
	"github.com/macedocontabil/macedo-si-api/pkg/config"
	"github.com/macedocontabil/macedo-si-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)

	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@macedocontabil.com.br"
	}

	if _, err := users.GetByEmail(ctx, email); err == nil {
		log.Info().Str("email", email).Msg("admin já existe, nada a fazer")
		return
	} else if !errors.Is(err, domain.ErrNotFound) {
		log.Fatal().Err(err).Msg("consultar admin")
	}

	senha := os.Getenv("SEED_ADMIN_PASSWORD")
	gerada := senha == ""
	if gerada {
		buf := make([]byte, 12)
		if _, err := rand.Read(buf); err != nil {
			log.Fatal().Err(err).Msg("gerar senha")
		}
		senha = hex.EncodeToString(buf)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash da senha")
	}

	now := time.Now().UTC()
	admin := &entity.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         "Administrador",
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatal().Err(err).Msg("criar admin")
	}

	ev := log.Info().Str("email", email)
	if gerada {
		ev = ev.Str("senha", senha)
	}
	ev.Msg("admin criado")
}
