package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/turismo-market/internal/application/auth"
	"github.com/tu-usuario/turismo-market/internal/application/cupos"
	"github.com/tu-usuario/turismo-market/internal/application/reportes"
	"github.com/tu-usuario/turismo-market/internal/application/reservas"
	"github.com/tu-usuario/turismo-market/internal/application/tracking"
	"github.com/tu-usuario/turismo-market/internal/application/usecase"
	"github.com/tu-usuario/turismo-market/internal/domain/policy"
)

// RouterDeps dependencias para el router.
//
// Los OwnerLookup son los métodos OwnerOf de los repositorios; el router los
// cablea a los middlewares de ownership para que el chequeo corra ANTES que
// el handler (existencia primero, dueño después).
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	PaqueteUC    *usecase.PaqueteUseCase
	TrenUC       *usecase.TrenUseCase
	CircuitoUC   *usecase.CircuitoUseCase
	ClienteUC    *usecase.ClienteUseCase
	DestacadosUC *usecase.DestacadosUseCase
	CupoUC       *cupos.CupoUseCase
	ReservaUC    *reservas.ReservaUseCase
	ReporteUC    *reportes.ReporteUseCase
	TrackingUC   *tracking.TrackingUseCase

	Guard     *PolicyGuard
	JWTSecret string

	PaqueteOwner  OwnerLookup
	TrenOwner     OwnerLookup
	CircuitoOwner OwnerLookup
	CupoOwner     OwnerLookup
	ClienteOwner  OwnerLookup
	ReservaOwner  OwnerLookup
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	g := deps.Guard

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Vidriera pública B2C (sin token)
	destacadosHandler := NewDestacadosHandler(deps.DestacadosUC)
	api.Get("/destacados", destacadosHandler.List)

	// Tracking (público, con atribución si hay token)
	trackingHandler := NewTrackingHandler(deps.TrackingUC)
	api.Post("/tracking/clicks", OptionalAuthMiddleware(deps.JWTSecret), trackingHandler.RegistrarClick)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Paquetes
	paquetes := protected.Group("/paquetes", g.RequireModuleVisibility(policy.ModPaquetes))
	paqueteHandler := NewPaqueteHandler(deps.PaqueteUC)
	paquetes.Post("/", g.RequirePublish(), paqueteHandler.Create)
	paquetes.Get("/", g.ScopeList(policy.ModPaquetes), paqueteHandler.List)
	paquetes.Get("/:id", g.RequireReadAccess(policy.ModPaquetes, deps.PaqueteOwner), paqueteHandler.GetByID)
	paquetes.Put("/:id", g.RequireOwnership(policy.ModPaquetes, deps.PaqueteOwner), paqueteHandler.Update)
	paquetes.Delete("/:id", g.RequireOwnership(policy.ModPaquetes, deps.PaqueteOwner), paqueteHandler.Delete)

	// Trenes
	trenes := protected.Group("/trenes", g.RequireModuleVisibility(policy.ModTrenes))
	trenHandler := NewTrenHandler(deps.TrenUC)
	trenes.Post("/", g.RequirePublish(), trenHandler.Create)
	trenes.Get("/", g.ScopeList(policy.ModTrenes), trenHandler.List)
	trenes.Get("/:id", g.RequireReadAccess(policy.ModTrenes, deps.TrenOwner), trenHandler.GetByID)
	trenes.Put("/:id", g.RequireOwnership(policy.ModTrenes, deps.TrenOwner), trenHandler.Update)
	trenes.Delete("/:id", g.RequireOwnership(policy.ModTrenes, deps.TrenOwner), trenHandler.Delete)

	// Circuitos
	circuitos := protected.Group("/circuitos", g.RequireModuleVisibility(policy.ModCircuitos))
	circuitoHandler := NewCircuitoHandler(deps.CircuitoUC)
	circuitos.Post("/", g.RequirePublish(), circuitoHandler.Create)
	circuitos.Get("/", g.ScopeList(policy.ModCircuitos), circuitoHandler.List)
	circuitos.Get("/:id", g.RequireReadAccess(policy.ModCircuitos, deps.CircuitoOwner), circuitoHandler.GetByID)
	circuitos.Put("/:id", g.RequireOwnership(policy.ModCircuitos, deps.CircuitoOwner), circuitoHandler.Update)
	circuitos.Delete("/:id", g.RequireOwnership(policy.ModCircuitos, deps.CircuitoOwner), circuitoHandler.Delete)

	// Mercado de cupos: lectura abierta, escritura solo del dueño.
	cuposGroup := protected.Group("/cupos-mercado", g.RequireModuleVisibility(policy.ModCuposMercado))
	cupoHandler := NewCupoHandler(deps.CupoUC)
	cuposGroup.Post("/", g.RequirePublish(), cupoHandler.Create)
	cuposGroup.Get("/", g.ScopeList(policy.ModCuposMercado), cupoHandler.List)
	cuposGroup.Get("/mios", cupoHandler.ListMios)
	cuposGroup.Get("/:id", g.RequireReadAccess(policy.ModCuposMercado, deps.CupoOwner), cupoHandler.GetByID)
	cuposGroup.Put("/:id", g.RequireOwnership(policy.ModCuposMercado, deps.CupoOwner), cupoHandler.Update)
	cuposGroup.Delete("/:id", g.RequireOwnership(policy.ModCuposMercado, deps.CupoOwner), cupoHandler.Delete)

	// Clientes (cartera)
	clientes := protected.Group("/clientes", g.RequireModuleVisibility(policy.ModClientes))
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", g.ScopeList(policy.ModClientes), clienteHandler.List)
	clientes.Get("/:id", g.RequireReadAccess(policy.ModClientes, deps.ClienteOwner), clienteHandler.GetByID)
	clientes.Put("/:id", g.RequireOwnership(policy.ModClientes, deps.ClienteOwner), clienteHandler.Update)
	clientes.Delete("/:id", g.RequireOwnership(policy.ModClientes, deps.ClienteOwner), clienteHandler.Delete)

	// Reservas
	reservasGroup := protected.Group("/reservas", g.RequireModuleVisibility(policy.ModReservas))
	reservaHandler := NewReservaHandler(deps.ReservaUC)
	reservasGroup.Post("/", reservaHandler.Create)
	reservasGroup.Get("/", g.ScopeList(policy.ModReservas), reservaHandler.List)
	reservasGroup.Get("/:id", g.RequireReadAccess(policy.ModReservas, deps.ReservaOwner), reservaHandler.GetByID)
	reservasGroup.Post("/:id/cancelar", g.RequireOwnership(policy.ModReservas, deps.ReservaOwner), reservaHandler.Cancel)
	reservasGroup.Get("/:id/voucher", g.RequireReadAccess(policy.ModReservas, deps.ReservaOwner), reservaHandler.Voucher)

	// Reportes (solo admin)
	reportesGroup := protected.Group("/reportes", g.RequireAdmin())
	reporteHandler := NewReporteHandler(deps.ReporteUC)
	reportesGroup.Get("/actividad", reporteHandler.GetActividad)
}
