package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/macedocontabil/macedo-si-api/internal/application/auth"
	"github.com/macedocontabil/macedo-si-api/internal/application/usecase"
	infrapdf "github.com/macedocontabil/macedo-si-api/internal/infrastructure/pdf"
	"github.com/macedocontabil/macedo-si-api/internal/infrastructure/postgres"
	httpRouter "github.com/macedocontabil/macedo-si-api/internal/interfaces/http"
	"github.com/macedocontabil/macedo-si-api/pkg/config"
	"github.com/macedocontabil/macedo-si-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	contaRepo := postgres.NewContaReceberRepository(pool)
	financialClientRepo := postgres.NewFinancialClientRepository(pool)
	trabalhistaRepo := postgres.NewTrabalhistaRepository(pool)
	fiscalRepo := postgres.NewFiscalRepository(pool)
	ticketRepo := postgres.NewTicketRepository(pool)
	chatRepo := postgres.NewChatRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	configuracaoRepo := postgres.NewConfiguracaoRepository(pool)

	reciboGen := infrapdf.NewMarotoReciboGenerator()

	authUC := auth.NewUseCase(userRepo, auth.TokenConfig{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		Expiration: cfg.JWT.Expiration,
	}, log)
	clientUC := usecase.NewClientUseCase(clientRepo, log)
	financeiroUC := usecase.NewFinanceiroUseCase(contaRepo, financialClientRepo, reciboGen, log)
	trabalhistaUC := usecase.NewTrabalhistaUseCase(trabalhistaRepo, log)
	fiscalUC := usecase.NewFiscalUseCase(fiscalRepo, log)
	atendimentoUC := usecase.NewAtendimentoUseCase(ticketRepo, log)
	chatUC := usecase.NewChatUseCase(chatRepo, log)
	taskUC := usecase.NewTaskUseCase(taskRepo, userRepo, log)
	configuracaoUC := usecase.NewConfiguracaoUseCase(configuracaoRepo, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Macedo SI API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ClientUC:       clientUC,
		FinanceiroUC:   financeiroUC,
		TrabalhistaUC:  trabalhistaUC,
		FiscalUC:       fiscalUC,
		AtendimentoUC:  atendimentoUC,
		ChatUC:         chatUC,
		TaskUC:         taskUC,
		ConfiguracaoUC: configuracaoUC,
		UserRepo:       userRepo,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
