// migrate aplica (ou reverte) as migrações SQL de ./migrations.
//
// Uso: go run ./cmd/migrate [up|down]
// Sem argumento, aplica tudo (up).
package main

import (
	"errors"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/macedocontabil/macedo-si-api/pkg/config"
	"github.com/macedocontabil/macedo-si-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	direcao := "up"
	if len(os.Args) > 1 {
		direcao = os.Args[1]
	}

	m, err := migrate.New("file://migrations", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir migrações")
	}
	defer m.Close()

	switch direcao {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	default:
		log.Fatal().Str("direcao", direcao).Msg("direção desconhecida, use up ou down")
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal().Err(err).Str("direcao", direcao).Msg("aplicar migrações")
	}

	version, dirty, _ := m.Version()
	log.Info().Uint("versao", version).Bool("dirty", dirty).Msg("migrações aplicadas")
}
