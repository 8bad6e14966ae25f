package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/turismo-market/internal/application/dto"
	"github.com/tu-usuario/turismo-market/internal/domain/policy"
	"github.com/tu-usuario/turismo-market/pkg/jwt"
)

// Locals keys para la identidad del caller en Fiber.
const (
	LocalUserID         = "user_id"
	LocalRole           = "role"
	LocalUserType       = "user_type"
	LocalCalculatedRole = "calculated_role"
)

// AuthMiddleware valida el Bearer Token JWT y carga la identidad a c.Locals.
// Toda la identidad viaja en el token (incluido el rol calculado en el
// login); las decisiones de ownership no vuelven a consultar la DB.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("MISSING_TOKEN", "Authorization header requerido"))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("INVALID_TOKEN", "formato: Bearer <token>"))
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("MISSING_TOKEN", "token vacío"))
		}
		id, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("INVALID_TOKEN", "token inválido o expirado"))
		}
		if id.UserID <= 0 {
			// Token firmado pero sin identidad utilizable: se trata igual
			// que un token inválido, nunca como acceso anónimo.
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("INVALID_TOKEN", "token sin identidad de usuario"))
		}
		c.Locals(LocalUserID, id.UserID)
		c.Locals(LocalRole, id.Role)
		c.Locals(LocalUserType, id.UserType)
		c.Locals(LocalCalculatedRole, id.CalculatedRole)
		return c.Next()
	}
}

// OptionalAuthMiddleware carga la identidad si hay token válido y sigue de
// largo sin identidad si no lo hay. Para la superficie pública que quiere
// atribuir actividad a usuarios logueados (tracking de clicks).
func OptionalAuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Next()
		}
		id, err := jwt.Parse(jwtSecret, strings.TrimSpace(parts[1]))
		if err != nil || id.UserID <= 0 {
			return c.Next()
		}
		c.Locals(LocalUserID, id.UserID)
		c.Locals(LocalRole, id.Role)
		c.Locals(LocalUserType, id.UserType)
		c.Locals(LocalCalculatedRole, id.CalculatedRole)
		return c.Next()
	}
}

// GetPrincipal devuelve el principal del contexto o nil si no hay identidad
// cargada. El resolver de políticas trata nil como "sin acceso", nunca como
// acceso total.
func GetPrincipal(c *fiber.Ctx) *policy.Principal {
	v := c.Locals(LocalUserID)
	if v == nil {
		return nil
	}
	userID, ok := v.(int64)
	if !ok || userID <= 0 {
		return nil
	}
	role, _ := c.Locals(LocalRole).(string)
	userType, _ := c.Locals(LocalUserType).(string)
	calculated, _ := c.Locals(LocalCalculatedRole).(string)
	return &policy.Principal{
		ID:             userID,
		Role:           role,
		UserType:       userType,
		CalculatedRole: calculated,
	}
}
