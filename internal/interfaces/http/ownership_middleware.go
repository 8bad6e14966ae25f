package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/turismo-market/internal/application/dto"
	"github.com/tu-usuario/turismo-market/internal/domain/policy"
	"github.com/tu-usuario/turismo-market/pkg/logger"
)

// LocalListDirective key de c.Locals con la directiva de alcance resuelta
// por ScopeList.
const LocalListDirective = "list_directive"

// OwnerLookup resuelve el dueño de un recurso por ID: (dueño, existe, error).
// Los métodos OwnerOf de los repositorios satisfacen esta firma directamente.
type OwnerLookup func(ctx context.Context, id string) (*int64, bool, error)

// PolicyGuard agrupa los middlewares de ownership sobre el resolver de
// políticas. El guard no decide nada por sí mismo: toda decisión sale del
// resolver puro; acá solo se traduce a HTTP y se audita.
type PolicyGuard struct {
	log *logger.Logger
}

// NewPolicyGuard construye el guard con el logger de auditoría.
func NewPolicyGuard(log *logger.Logger) *PolicyGuard {
	return &PolicyGuard{log: log}
}

// ScopeList resuelve la directiva de alcance del listado para el módulo y la
// deja en c.Locals. Debe usarse DESPUÉS de AuthMiddleware. Sin principal la
// directiva es vacía: el handler responde lista vacía, jamás "todo".
func (g *PolicyGuard) ScopeList(moduleName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		mod, ok := policy.ModuleByName(moduleName)
		if !ok {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("UNKNOWN_MODULE", "módulo no registrado"))
		}
		directive := policy.ResolveListFilter(GetPrincipal(c), mod)
		c.Locals(LocalListDirective, directive)
		return c.Next()
	}
}

// GetListDirective devuelve la directiva dejada por ScopeList. Si falta
// (ruta mal cableada), devuelve la directiva vacía.
func GetListDirective(c *fiber.Ctx) policy.FilterDirective {
	if d, ok := c.Locals(LocalListDirective).(policy.FilterDirective); ok {
		return d
	}
	return policy.Nothing()
}

// RequireOwnership autoriza mutaciones (PUT/PATCH/DELETE) sobre un recurso
// con dueño. Debe usarse DESPUÉS de AuthMiddleware, con ":id" en la ruta.
//
// Orden de chequeo: existencia primero, ownership después. Un recurso
// inexistente responde 404 aunque el caller tampoco fuera el dueño; así la
// respuesta no delata qué IDs existen.
func (g *PolicyGuard) RequireOwnership(moduleName string, lookup OwnerLookup) fiber.Handler {
	return g.guard(moduleName, lookup, policy.ResolveMutationVerdict)
}

// RequireReadAccess autoriza la lectura de detalle. Igual que
// RequireOwnership salvo en módulos de lectura abierta (mercado de cupos),
// donde cualquier vendedor autenticado puede leer.
func (g *PolicyGuard) RequireReadAccess(moduleName string, lookup OwnerLookup) fiber.Handler {
	return g.guard(moduleName, lookup, policy.ResolveReadVerdict)
}

func (g *PolicyGuard) guard(
	moduleName string,
	lookup OwnerLookup,
	resolve func(*policy.Principal, policy.Module, *int64) policy.Verdict,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		mod, ok := policy.ModuleByName(moduleName)
		if !ok {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("UNKNOWN_MODULE", "módulo no registrado"))
		}
		p := GetPrincipal(c)
		if !p.Authenticated() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("UNAUTHORIZED", "autenticación requerida"))
		}

		id := c.Params("id")
		if id == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("MISSING_ID", "id es requerido"))
		}
		owner, found, err := lookup(c.Context(), id)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", "no se pudo resolver el recurso"))
		}
		if !found {
			return c.Status(fiber.StatusNotFound).JSON(dto.Err("NOT_FOUND", "recurso no encontrado"))
		}

		verdict := resolve(p, mod, owner)
		if !verdict.Allowed {
			g.log.Audit().Warn().
				Int64("user_id", p.ID).
				Str("rol", p.EffectiveRole()).
				Str("modulo", moduleName).
				Str("recurso", id).
				Str("motivo", verdict.Reason).
				Msg("acceso denegado por ownership")
			// Mensaje genérico: no se revela quién es el dueño real.
			return c.Status(fiber.StatusForbidden).JSON(dto.Err("FORBIDDEN", "acceso denegado"))
		}
		if verdict.Warning != "" {
			g.log.Audit().Warn().
				Int64("user_id", p.ID).
				Str("modulo", moduleName).
				Str("recurso", id).
				Str("advertencia", verdict.Warning).
				Msg("acceso permitido sobre fila sin dueño")
		}
		return c.Next()
	}
}

// RequirePublish autoriza la creación de publicaciones. Publicar es capacidad
// B2B: cuentas B2C y roles sin CanPublish reciben 403 antes del handler.
func (g *PolicyGuard) RequirePublish() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if !p.Authenticated() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("UNAUTHORIZED", "autenticación requerida"))
		}
		if v := policy.ResolvePublishVerdict(p); !v.Allowed {
			g.log.Audit().Warn().
				Int64("user_id", p.ID).
				Str("rol", p.EffectiveRole()).
				Str("user_type", p.UserType).
				Str("ruta", c.Path()).
				Str("motivo", v.Reason).
				Msg("publicación denegada")
			return c.Status(fiber.StatusForbidden).JSON(dto.Err("FORBIDDEN", "acceso denegado"))
		}
		return c.Next()
	}
}

// RequireAdmin restringe la ruta a roles administradores. Para la capa de
// reportes, que agrega datos de todos los vendedores.
func (g *PolicyGuard) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if !p.Authenticated() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("UNAUTHORIZED", "autenticación requerida"))
		}
		if !policy.IsAdmin(p.EffectiveRole()) {
			g.log.Audit().Warn().
				Int64("user_id", p.ID).
				Str("rol", p.EffectiveRole()).
				Str("ruta", c.Path()).
				Msg("acceso denegado a ruta de administración")
			return c.Status(fiber.StatusForbidden).JSON(dto.Err("FORBIDDEN", "acceso denegado"))
		}
		return c.Next()
	}
}

// RequireModuleVisibility verifica que el módulo pertenezca al dashboard del
// rol del caller. Corta el acceso por URL directa a módulos que el rol no ve.
func (g *PolicyGuard) RequireModuleVisibility(moduleName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if !p.Authenticated() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("UNAUTHORIZED", "autenticación requerida"))
		}
		if !policy.ResolveModuleVisibility(p, moduleName) {
			return c.Status(fiber.StatusForbidden).JSON(dto.Err("FORBIDDEN", "acceso denegado"))
		}
		return c.Next()
	}
}
