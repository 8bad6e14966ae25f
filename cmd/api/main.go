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

	"github.com/tu-usuario/turismo-market/internal/application/auth"
	"github.com/tu-usuario/turismo-market/internal/application/cupos"
	"github.com/tu-usuario/turismo-market/internal/application/reportes"
	"github.com/tu-usuario/turismo-market/internal/application/reservas"
	"github.com/tu-usuario/turismo-market/internal/application/tracking"
	"github.com/tu-usuario/turismo-market/internal/application/usecase"
	infrapdf "github.com/tu-usuario/turismo-market/internal/infrastructure/pdf"
	"github.com/tu-usuario/turismo-market/internal/infrastructure/postgres"
	"github.com/tu-usuario/turismo-market/internal/infrastructure/redisclient"
	httpRouter "github.com/tu-usuario/turismo-market/internal/interfaces/http"
	"github.com/tu-usuario/turismo-market/pkg/config"
	"github.com/tu-usuario/turismo-market/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	rdb, err := redisclient.New(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer rdb.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	paqueteRepo := postgres.NewPaqueteRepository(pool)
	trenRepo := postgres.NewTrenRepository(pool)
	circuitoRepo := postgres.NewCircuitoRepository(pool)
	cupoRepo := postgres.NewCupoRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	reservaRepo := postgres.NewReservaRepository(pool)
	clickRepo := postgres.NewClickRepository(pool)
	reporteRepo := postgres.NewReporteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	paqueteUC := usecase.NewPaqueteUseCase(paqueteRepo)
	trenUC := usecase.NewTrenUseCase(trenRepo)
	circuitoUC := usecase.NewCircuitoUseCase(circuitoRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	destacadosUC := usecase.NewDestacadosUseCase(paqueteRepo, trenRepo, circuitoRepo)
	cupoUC := cupos.NewCupoUseCase(cupoRepo)

	voucherGen := infrapdf.NewMarotoVoucherGenerator()
	reservaUC := reservas.NewReservaUseCase(txRunner, reservaRepo, cupoRepo, clienteRepo, voucherGen, log)

	clickStore := redisclient.NewClickStore(rdb)
	reporteUC := reportes.NewReporteUseCase(reporteRepo, clickStore, log)
	trackingUC := tracking.NewTrackingUseCase(clickRepo, clickStore, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Turismo Market API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		PaqueteUC:    paqueteUC,
		TrenUC:       trenUC,
		CircuitoUC:   circuitoUC,
		ClienteUC:    clienteUC,
		DestacadosUC: destacadosUC,
		CupoUC:       cupoUC,
		ReservaUC:    reservaUC,
		ReporteUC:    reporteUC,
		TrackingUC:   trackingUC,

		Guard:     httpRouter.NewPolicyGuard(log),
		JWTSecret: cfg.JWT.Secret,

		PaqueteOwner:  paqueteRepo.OwnerOf,
		TrenOwner:     trenRepo.OwnerOf,
		CircuitoOwner: circuitoRepo.OwnerOf,
		CupoOwner:     cupoRepo.OwnerOf,
		ClienteOwner:  clienteRepo.OwnerOf,
		ReservaOwner:  reservaRepo.OwnerOf,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
