// migrate aplica (o revierte) las migraciones SQL de ./migrations contra la
// base configurada por entorno.
//
// Uso:
//
//	go run ./cmd/migrate            aplica todas las pendientes
//	go run ./cmd/migrate down       revierte la última
package main

import (
	"os"

	"github.com/tu-usuario/turismo-market/internal/infrastructure/postgres"
	"github.com/tu-usuario/turismo-market/pkg/config"
	"github.com/tu-usuario/turismo-market/pkg/logger"
)

const migrationsPath = "migrations"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	dsn := cfg.DB.ConnectionString()

	if len(os.Args) > 1 && os.Args[1] == "down" {
		if err := postgres.RollbackMigration(dsn, migrationsPath); err != nil {
			log.Fatal().Err(err).Msg("revertir migración")
		}
		log.Info().Msg("última migración revertida")
		return
	}

	version, dirty, err := postgres.RunMigrations(dsn, migrationsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}
	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("migraciones aplicadas")
}
