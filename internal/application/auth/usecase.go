package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/turismo-market/internal/application/dto"
	"github.com/tu-usuario/turismo-market/internal/domain"
	"github.com/tu-usuario/turismo-market/internal/domain/entity"
	"github.com/tu-usuario/turismo-market/internal/domain/policy"
	"github.com/tu-usuario/turismo-market/internal/domain/repository"
	"github.com/tu-usuario/turismo-market/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
// El token emitido incluye el calculatedRole derivado al momento del login;
// es el rol que usan todas las decisiones de ownership aguas abajo.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya existe. El rol admin/sysadmin
// no es auto-asignable por registro público.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	existing, err := uc.usuarioRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	role := in.Role
	switch role {
	case "":
		role = policy.RoleOperador
	case policy.RoleAdmin, policy.RoleSysadmin:
		return nil, domain.ErrForbidden
	case policy.RoleAgencia, policy.RoleOperador:
		// válidos
	default:
		return nil, domain.ErrInvalidInput
	}
	userType := in.UserType
	if userType == "" {
		userType = entity.UserTypeB2B
	}
	if userType != entity.UserTypeB2B && userType != entity.UserTypeB2C {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	nombre := in.Nombre
	if nombre == "" {
		nombre = in.Email
	}
	u := &entity.Usuario{
		Email:            in.Email,
		PasswordHash:     string(hash),
		Nombre:           nombre,
		Role:             role,
		UserType:         userType,
		PublicaProductos: in.PublicaProductos,
		Status:           "active",
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	id, err := uc.usuarioRepo.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	u.ID = id
	return toUsuarioResponse(u), nil
}

// Login verifica email/password, deriva el calculatedRole y genera el JWT.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.usuarioRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if u.Status != "active" {
		return nil, domain.ErrForbidden
	}
	calculated := policy.CalculatedRole(u)
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{
		UserID:         u.ID,
		Role:           u.Role,
		UserType:       u.UserType,
		CalculatedRole: calculated,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	resp := toUsuarioResponse(u)
	return &dto.LoginResponse{Token: token, Usuario: *resp}, nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:             u.ID,
		Email:          u.Email,
		Nombre:         u.Nombre,
		Role:           u.Role,
		UserType:       u.UserType,
		CalculatedRole: policy.CalculatedRole(u),
		CreatedAt:      u.CreatedAt,
	}
}
