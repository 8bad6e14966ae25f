// backfill-owners asigna dueño a las filas legacy con published_by_user_id
// en NULL. Esas filas pasan los chequeos de ownership con una advertencia de
// auditoría hasta que este backfill corre y cierra la ventana.
//
// Uso:
//
//	go run ./cmd/backfill-owners              asigna el primer admin como dueño
//	go run ./cmd/backfill-owners -owner 42    asigna el usuario 42
//	go run ./cmd/backfill-owners -dry-run     solo cuenta pendientes
package main

import (
	"context"
	"flag"

	"github.com/tu-usuario/turismo-market/internal/infrastructure/postgres"
	"github.com/tu-usuario/turismo-market/pkg/config"
	"github.com/tu-usuario/turismo-market/pkg/logger"
)

func main() {
	ownerFlag := flag.Int64("owner", 0, "usuario destino del backfill (default: primer admin)")
	dryRun := flag.Bool("dry-run", false, "solo contar filas pendientes, sin actualizar")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	backfiller := postgres.NewBackfiller(pool)

	if *dryRun {
		pending, err := backfiller.Pendientes(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("contar pendientes")
		}
		for table, n := range pending {
			log.Info().Str("tabla", table).Int64("pendientes", n).Msg("filas sin dueño")
		}
		return
	}

	ownerID := *ownerFlag
	if ownerID == 0 {
		usuarioRepo := postgres.NewUsuarioRepository(pool)
		ownerID, err = usuarioRepo.FirstAdminID(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("resolver el primer admin")
		}
	}

	updated, err := backfiller.Run(ctx, ownerID)
	if err != nil {
		log.Fatal().Err(err).Msg("backfill de dueños")
	}
	for table, n := range updated {
		log.Info().Str("tabla", table).Int64("actualizadas", n).Int64("owner_id", ownerID).Msg("backfill aplicado")
	}
}
