package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/turismo-market/internal/application/auth"
	"github.com/tu-usuario/turismo-market/internal/application/dto"
	"github.com/tu-usuario/turismo-market/internal/domain"
	"github.com/tu-usuario/turismo-market/internal/domain/entity"
	"github.com/tu-usuario/turismo-market/internal/domain/policy"
)

// ─────────────────────────────────────────────
// Fake de repositorio
// ─────────────────────────────────────────────

type fakeUsuarioRepo struct {
	porEmail map[string]*entity.Usuario
	nextID   int64
	findErr  error
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{porEmail: map[string]*entity.Usuario{}, nextID: 100}
}

func (f *fakeUsuarioRepo) Create(_ context.Context, u *entity.Usuario) (int64, error) {
	f.nextID++
	u.ID = f.nextID
	f.porEmail[u.Email] = u
	return u.ID, nil
}

func (f *fakeUsuarioRepo) GetByID(_ context.Context, id int64) (*entity.Usuario, error) {
	for _, u := range f.porEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) FindByEmail(_ context.Context, email string) (*entity.Usuario, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.porEmail[email], nil
}

func (f *fakeUsuarioRepo) FirstAdminID(_ context.Context) (int64, error) { return 1, nil }

func nuevoAuthUC(repo *fakeUsuarioRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "secreto-de-test-suficientemente-largo",
		ExpMinutes: 60,
		Issuer:     "turismo-market-test",
	})
}

func usuarioActivo(t *testing.T, repo *fakeUsuarioRepo, email, password string) *entity.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.Usuario{
		Email:            email,
		PasswordHash:     string(hash),
		Nombre:           "Vendedor Test",
		Role:             policy.RoleAgencia,
		UserType:         entity.UserTypeB2B,
		PublicaProductos: true,
		Status:           "active",
	}
	_, err = repo.Create(context.Background(), u)
	require.NoError(t, err)
	return u
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestRegister_CreaOperadorPorDefecto(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := nuevoAuthUC(repo)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "nuevo@agencia.com",
		Password: "clave-segura-123",
	})
	require.NoError(t, err)

	assert.Equal(t, policy.RoleOperador, out.Role, "sin rol explícito se asigna operador")
	assert.Equal(t, entity.UserTypeB2B, out.UserType, "B2B es el tipo por defecto")
	assert.NotZero(t, out.ID)

	guardado := repo.porEmail["nuevo@agencia.com"]
	require.NotNil(t, guardado)
	assert.NotEqual(t, "clave-segura-123", guardado.PasswordHash, "la password nunca se persiste en claro")
}

// Un fallo de la consulta por email debe propagarse; tratarlo como "email
// libre" permitiría registrar duplicados durante una caída de la DB.
func TestRegister_ErrorDeConsultaSePropaga(t *testing.T) {
	repo := newFakeUsuarioRepo()
	repo.findErr = errors.New("conexión a la DB perdida")
	uc := nuevoAuthUC(repo)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "nuevo@agencia.com",
		Password: "clave-segura-123",
	})
	require.ErrorIs(t, err, repo.findErr)
	assert.Empty(t, repo.porEmail, "nada debe persistirse cuando la verificación falla")
}

func TestRegister_EmailDuplicado(t *testing.T) {
	repo := newFakeUsuarioRepo()
	usuarioActivo(t, repo, "ana@agencia.com", "clave-segura-123")
	uc := nuevoAuthUC(repo)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "ana@agencia.com",
		Password: "otra-clave-456",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_AdminNoAutoAsignable(t *testing.T) {
	uc := nuevoAuthUC(newFakeUsuarioRepo())

	for _, role := range []string{policy.RoleAdmin, policy.RoleSysadmin} {
		_, err := uc.Register(context.Background(), dto.RegisterRequest{
			Email:    "intruso@x.com",
			Password: "clave-segura-123",
			Role:     role,
		})
		assert.ErrorIs(t, err, domain.ErrForbidden, "rol %s", role)
	}
}

func TestRegister_RolDesconocidoRechazado(t *testing.T) {
	uc := nuevoAuthUC(newFakeUsuarioRepo())

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "x@x.com",
		Password: "clave-segura-123",
		Role:     "superusuario",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_UserTypeInvalido(t *testing.T) {
	uc := nuevoAuthUC(newFakeUsuarioRepo())

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "x@x.com",
		Password: "clave-segura-123",
		UserType: "B2G",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestLogin_EmiteTokenConCalculatedRole(t *testing.T) {
	repo := newFakeUsuarioRepo()
	usuarioActivo(t, repo, "ana@agencia.com", "clave-segura-123")
	uc := nuevoAuthUC(repo)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@agencia.com",
		Password: "clave-segura-123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, policy.RoleAgencia, out.Usuario.Role)
	assert.Equal(t, policy.RoleOperador, out.Usuario.CalculatedRole,
		"una agencia B2B que publica productos opera como operador")
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	repo := newFakeUsuarioRepo()
	usuarioActivo(t, repo, "ana@agencia.com", "clave-segura-123")
	uc := nuevoAuthUC(repo)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@agencia.com",
		Password: "incorrecta",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := nuevoAuthUC(newFakeUsuarioRepo())

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@x.com",
		Password: "clave-segura-123",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioSuspendido(t *testing.T) {
	repo := newFakeUsuarioRepo()
	u := usuarioActivo(t, repo, "ana@agencia.com", "clave-segura-123")
	u.Status = "suspended"
	uc := nuevoAuthUC(repo)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@agencia.com",
		Password: "clave-segura-123",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
