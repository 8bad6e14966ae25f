package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/turismo-market/internal/application/dto"
	"github.com/tu-usuario/turismo-market/internal/application/usecase"
	"github.com/tu-usuario/turismo-market/internal/domain/entity"
	"github.com/tu-usuario/turismo-market/internal/domain/policy"
	"github.com/tu-usuario/turismo-market/internal/domain/repository"
	apphttp "github.com/tu-usuario/turismo-market/internal/interfaces/http"
)

// fakePaqueteRepo repositorio en memoria para tests de handler.
type fakePaqueteRepo struct {
	rows []*entity.Paquete
}

func (f *fakePaqueteRepo) Create(_ context.Context, p *entity.Paquete) error {
	f.rows = append(f.rows, p)
	return nil
}

func (f *fakePaqueteRepo) GetByID(_ context.Context, id string) (*entity.Paquete, error) {
	for _, p := range f.rows {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePaqueteRepo) OwnerOf(_ context.Context, id string) (*int64, bool, error) {
	for _, p := range f.rows {
		if p.ID == id {
			owner := p.PublishedByUserID
			return &owner, true, nil
		}
	}
	return nil, false, nil
}

func (f *fakePaqueteRepo) Update(_ context.Context, p *entity.Paquete) error { return nil }

func (f *fakePaqueteRepo) Delete(_ context.Context, id string) error { return nil }

func (f *fakePaqueteRepo) List(_ context.Context, scope repository.Scope, limit, offset int) ([]*entity.Paquete, error) {
	var out []*entity.Paquete
	for _, p := range f.rows {
		if scope.OwnerID != nil && p.PublishedByUserID != *scope.OwnerID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePaqueteRepo) ListDestacados(_ context.Context, limit int) ([]*entity.Paquete, error) {
	var out []*entity.Paquete
	for _, p := range f.rows {
		if p.IsPublic && p.Destacado {
			out = append(out, p)
		}
	}
	return out, nil
}

func buildPaqueteApp(repo *fakePaqueteRepo) *fiber.App {
	h := apphttp.NewPaqueteHandler(usecase.NewPaqueteUseCase(repo))
	g := testGuard()

	app := fiber.New()
	grp := app.Group("/api/paquetes",
		apphttp.AuthMiddleware(testJWTSecret),
		g.RequireModuleVisibility(policy.ModPaquetes),
	)
	grp.Post("/", g.RequirePublish(), h.Create)
	grp.Get("/", g.ScopeList(policy.ModPaquetes), h.List)
	grp.Put("/:id", g.RequireOwnership(policy.ModPaquetes, repo.OwnerOf), h.Update)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// El dueño de una publicación nueva sale siempre del token: un
// published_by_user_id en el body se descarta en silencio.
func TestPaqueteCreate_DuenoSaleDelTokenNoDelBody(t *testing.T) {
	repo := &fakePaqueteRepo{}
	app := buildPaqueteApp(repo)

	body := `{"nombre":"Bariloche 7 noches","destino":"Bariloche","dias":8,"noches":7,"published_by_user_id":99}`
	resp := postJSON(t, app, "/api/paquetes/", body, tokenFor(t, 42, "operador"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out dto.PaqueteResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, int64(42), out.PublishedByUserID,
		"el dueño debe ser el principal del token, no el del body")

	require.Len(t, repo.rows, 1)
	assert.Equal(t, int64(42), repo.rows[0].PublishedByUserID)
}

// Una cuenta B2C no crea publicaciones: el request se corta en los guards y
// nada llega a persistirse.
func TestPaqueteCreate_CuentaB2CNoPublica(t *testing.T) {
	repo := &fakePaqueteRepo{}
	app := buildPaqueteApp(repo)

	body := `{"nombre":"Bariloche 7 noches","destino":"Bariloche","dias":8,"noches":7}`
	resp := postJSON(t, app, "/api/paquetes/", body, tokenForCuenta(t, 55, "operador", "B2C"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"una cuenta B2C no debe poder publicar inventario")
	assert.Empty(t, repo.rows, "no debe persistirse ninguna fila")
}

func TestPaqueteCreate_SinCamposRequeridosDa400(t *testing.T) {
	app := buildPaqueteApp(&fakePaqueteRepo{})

	resp := postJSON(t, app, "/api/paquetes/", `{"descripcion":"sin nombre ni destino"}`, tokenFor(t, 42, "operador"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// El listado de un operador solo devuelve sus propias filas.
func TestPaqueteList_OperadorSoloVeLoSuyo(t *testing.T) {
	repo := &fakePaqueteRepo{rows: []*entity.Paquete{
		{Publicacion: entity.Publicacion{ID: "p1", PublishedByUserID: 42}, Nombre: "Propio", Destino: "Salta", Activo: true},
		{Publicacion: entity.Publicacion{ID: "p2", PublishedByUserID: 7}, Nombre: "Ajeno", Destino: "Jujuy", Activo: true},
	}}
	app := buildPaqueteApp(repo)

	resp := doRequest(t, app, http.MethodGet, "/api/paquetes/", tokenFor(t, 42, "operador"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.PaqueteListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Items, 1, "el operador no debe ver publicaciones ajenas")
	assert.Equal(t, "p1", out.Items[0].ID)
}

// Admin lista las filas de todos los vendedores.
func TestPaqueteList_AdminVeTodo(t *testing.T) {
	repo := &fakePaqueteRepo{rows: []*entity.Paquete{
		{Publicacion: entity.Publicacion{ID: "p1", PublishedByUserID: 42}, Nombre: "Uno", Destino: "Salta", Activo: true},
		{Publicacion: entity.Publicacion{ID: "p2", PublishedByUserID: 7}, Nombre: "Dos", Destino: "Jujuy", Activo: true},
	}}
	app := buildPaqueteApp(repo)

	resp := doRequest(t, app, http.MethodGet, "/api/paquetes/", tokenFor(t, 1, "admin"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.PaqueteListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Len(t, out.Items, 2)
}

// La mutación de una fila ajena se corta en el middleware, nunca llega al
// handler.
func TestPaqueteUpdate_FilaAjenaBloqueada(t *testing.T) {
	repo := &fakePaqueteRepo{rows: []*entity.Paquete{
		{Publicacion: entity.Publicacion{ID: "p1", PublishedByUserID: 7}, Nombre: "Ajeno", Destino: "Jujuy", Activo: true},
	}}
	app := buildPaqueteApp(repo)

	req := httptest.NewRequest(http.MethodPut, "/api/paquetes/p1", strings.NewReader(`{"nombre":"Hackeado"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenFor(t, 42, "operador"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Ajeno", repo.rows[0].Nombre, "la fila no debe haberse tocado")
}
