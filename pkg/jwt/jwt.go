package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity es la identidad autenticada que viaja dentro del token.
// CalculatedRole puede diferir de Role para usuarios B2B (se deriva de atributos
// de negocio al momento del login); todas las decisiones de ownership la usan.
type Identity struct {
	UserID         int64
	Role           string // "admin" | "sysadmin" | "agencia" | "operador"
	UserType       string // "B2B" | "B2C"
	CalculatedRole string // rol efectivo para usuarios B2B; vacío = usar Role
}

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Se incluyen role/userType/calculatedRole para que el middleware de ownership
// pueda tomar decisiones sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID         int64  `json:"user_id"`
	Role           string `json:"role"`
	UserType       string `json:"user_type"`
	CalculatedRole string `json:"calculated_role,omitempty"`
}

// Generate genera un token JWT firmado con la identidad completa.
func Generate(secret string, id Identity, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   fmt.Sprintf("%d", id.UserID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:         id.UserID,
		Role:           id.Role,
		UserType:       id.UserType,
		CalculatedRole: id.CalculatedRole,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve la identidad que transporta.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (Identity, error) {
	if secret == "" {
		return Identity{}, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Identity{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("claims inválidos")
	}
	return Identity{
		UserID:         claims.UserID,
		Role:           claims.Role,
		UserType:       claims.UserType,
		CalculatedRole: claims.CalculatedRole,
	}, nil
}
