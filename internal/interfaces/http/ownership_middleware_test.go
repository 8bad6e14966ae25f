package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/turismo-market/internal/domain/policy"
	apphttp "github.com/tu-usuario/turismo-market/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/turismo-market/pkg/jwt"
	"github.com/tu-usuario/turismo-market/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "turismo-market-test"
	testExpMin    = 60
)

func testGuard() *apphttp.PolicyGuard {
	return apphttp.NewPolicyGuard(logger.New(logger.Config{Env: "development", Level: "error"}))
}

// fixedOwnerLookup simula un repositorio: el recurso "existe" salvo que el ID
// sea "no-existe"; el dueño es el configurado (nil = fila legacy sin dueño).
func fixedOwnerLookup(owner *int64) apphttp.OwnerLookup {
	return func(_ context.Context, id string) (*int64, bool, error) {
		if id == "no-existe" {
			return nil, false, nil
		}
		return owner, true, nil
	}
}

// tokenFor genera un JWT de cuenta B2B con la identidad indicada.
func tokenFor(t *testing.T, userID int64, role string) string {
	t.Helper()
	return tokenForCuenta(t, userID, role, "B2B")
}

// tokenForCuenta genera un JWT con rol y tipo de cuenta explícitos.
func tokenForCuenta(t *testing.T, userID int64, role, userType string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.Identity{
		UserID:   userID,
		Role:     role,
		UserType: userType,
	}, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, method, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func owner(id int64) *int64 { return &id }

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireOwnership — mutaciones sobre recursos con dueño
// ──────────────────────────────────────────────────────────────────────────────

func buildMutationApp(moduleName string, lookup apphttp.OwnerLookup) *fiber.App {
	app := fiber.New()
	app.Put("/recursos/:id",
		apphttp.AuthMiddleware(testJWTSecret),
		testGuard().RequireOwnership(moduleName, lookup),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true})
		},
	)
	return app
}

// El dueño puede mutar su propio recurso.
func TestRequireOwnership_DuenoPuedeMutar(t *testing.T) {
	app := buildMutationApp(policy.ModPaquetes, fixedOwnerLookup(owner(7)))
	resp := doRequest(t, app, http.MethodPut, "/recursos/abc", tokenFor(t, 7, "operador"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"el dueño debe poder mutar su propio recurso")
}

// Un vendedor distinto del dueño recibe 403 con mensaje genérico.
func TestRequireOwnership_NoDuenoRecibe403Generico(t *testing.T) {
	app := buildMutationApp(policy.ModPaquetes, fixedOwnerLookup(owner(7)))
	resp := doRequest(t, app, http.MethodPut, "/recursos/abc", tokenFor(t, 99, "operador"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un vendedor ajeno no debe poder mutar el recurso")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "acceso denegado",
		"el mensaje debe ser genérico")
	assert.NotContains(t, string(body), "7",
		"la respuesta no debe revelar la identidad del dueño real")
}

// Admin muta recursos ajenos sin restricción.
func TestRequireOwnership_AdminMutaRecursoAjeno(t *testing.T) {
	app := buildMutationApp(policy.ModPaquetes, fixedOwnerLookup(owner(7)))
	resp := doRequest(t, app, http.MethodPut, "/recursos/abc", tokenFor(t, 1, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder mutar recursos de cualquier vendedor")
}

// Recurso inexistente responde 404 aunque el caller tampoco fuera el dueño:
// la existencia se chequea ANTES que el ownership.
func TestRequireOwnership_RecursoInexistenteDa404AntesQue403(t *testing.T) {
	app := buildMutationApp(policy.ModPaquetes, fixedOwnerLookup(owner(7)))
	resp := doRequest(t, app, http.MethodPut, "/recursos/no-existe", tokenFor(t, 99, "operador"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode,
		"recurso inexistente debe dar 404, no 403, para no delatar qué IDs existen")
}

// Fila legacy sin dueño: la operación pasa (con advertencia auditada).
func TestRequireOwnership_FilaSinDuenoPermiteConAdvertencia(t *testing.T) {
	app := buildMutationApp(policy.ModPaquetes, fixedOwnerLookup(nil))
	resp := doRequest(t, app, http.MethodPut, "/recursos/legacy", tokenFor(t, 99, "operador"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"una fila sin dueño (pendiente de backfill) no debe bloquear la operación")
}

// Sin token → 401 antes de tocar el lookup.
func TestRequireOwnership_SinTokenDa401(t *testing.T) {
	app := buildMutationApp(policy.ModPaquetes, fixedOwnerLookup(owner(7)))
	resp := doRequest(t, app, http.MethodPut, "/recursos/abc", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Rol desconocido cae al perfil más restrictivo: no es dueño → 403.
func TestRequireOwnership_RolDesconocidoNoGeneraliza(t *testing.T) {
	app := buildMutationApp(policy.ModPaquetes, fixedOwnerLookup(owner(7)))
	resp := doRequest(t, app, http.MethodPut, "/recursos/abc", tokenFor(t, 99, "rol-inventado"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un rol desconocido nunca debe tratarse como admin")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireReadAccess — lectura abierta del mercado de cupos
// ──────────────────────────────────────────────────────────────────────────────

func buildReadApp(moduleName string, lookup apphttp.OwnerLookup) *fiber.App {
	app := fiber.New()
	app.Get("/recursos/:id",
		apphttp.AuthMiddleware(testJWTSecret),
		testGuard().RequireReadAccess(moduleName, lookup),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true})
		},
	)
	return app
}

// En el mercado de cupos cualquier vendedor autenticado lee detalle ajeno.
func TestRequireReadAccess_CupoAjenoLegibleEnMercado(t *testing.T) {
	app := buildReadApp(policy.ModCuposMercado, fixedOwnerLookup(owner(7)))
	resp := doRequest(t, app, http.MethodGet, "/recursos/abc", tokenFor(t, 99, "operador"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"la lectura del mercado de cupos es abierta a vendedores autenticados")
}

// La lectura abierta NO se extiende a otros módulos.
func TestRequireReadAccess_PaqueteAjenoNoLegible(t *testing.T) {
	app := buildReadApp(policy.ModPaquetes, fixedOwnerLookup(owner(7)))
	resp := doRequest(t, app, http.MethodGet, "/recursos/abc", tokenFor(t, 99, "operador"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"la excepción de lectura abierta es exclusiva del mercado de cupos")
}

// La escritura del mercado de cupos sigue siendo solo del dueño.
func TestRequireOwnership_CupoAjenoNoMutable(t *testing.T) {
	app := buildMutationApp(policy.ModCuposMercado, fixedOwnerLookup(owner(7)))
	resp := doRequest(t, app, http.MethodPut, "/recursos/abc", tokenFor(t, 99, "operador"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"la lectura abierta del mercado no habilita mutaciones ajenas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ScopeList — alcance de listados
// ──────────────────────────────────────────────────────────────────────────────

func buildListApp(moduleName string) *fiber.App {
	app := fiber.New()
	app.Get("/recursos",
		apphttp.AuthMiddleware(testJWTSecret),
		testGuard().ScopeList(moduleName),
		func(c *fiber.Ctx) error {
			d := apphttp.GetListDirective(c)
			ownerID, restricted := d.OwnerID()
			return c.JSON(fiber.Map{
				"unrestricted": d.Unrestricted(),
				"empty":        d.Empty(),
				"owner_id":     ownerID,
				"restricted":   restricted,
			})
		},
	)
	return app
}

func decodeDirective(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// Operador lista solo lo suyo.
func TestScopeList_OperadorRestringidoASuPropio(t *testing.T) {
	app := buildListApp(policy.ModPaquetes)
	resp := doRequest(t, app, http.MethodGet, "/recursos", tokenFor(t, 42, "operador"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeDirective(t, resp)
	assert.Equal(t, false, body["unrestricted"])
	assert.Equal(t, true, body["restricted"])
	assert.Equal(t, float64(42), body["owner_id"],
		"el listado debe restringirse al dueño del token")
}

// Admin lista todo.
func TestScopeList_AdminSinFiltro(t *testing.T) {
	app := buildListApp(policy.ModPaquetes)
	resp := doRequest(t, app, http.MethodGet, "/recursos", tokenFor(t, 1, "admin"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeDirective(t, resp)
	assert.Equal(t, true, body["unrestricted"], "admin lista sin filtro")
}

// El mercado de cupos se lista completo para cualquier vendedor.
func TestScopeList_MercadoDeCuposSinFiltroParaVendedores(t *testing.T) {
	app := buildListApp(policy.ModCuposMercado)
	resp := doRequest(t, app, http.MethodGet, "/recursos", tokenFor(t, 42, "operador"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeDirective(t, resp)
	assert.Equal(t, true, body["unrestricted"],
		"el mercado de cupos es de lectura abierta para todos los vendedores")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireAdmin — capa de reportes
// ──────────────────────────────────────────────────────────────────────────────

func buildAdminApp() *fiber.App {
	app := fiber.New()
	app.Get("/reportes",
		apphttp.AuthMiddleware(testJWTSecret),
		testGuard().RequireAdmin(),
		func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) },
	)
	return app
}

func TestRequireAdmin_AdminAccede(t *testing.T) {
	app := buildAdminApp()
	resp := doRequest(t, app, http.MethodGet, "/reportes", tokenFor(t, 1, "sysadmin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAdmin_OperadorBloqueado(t *testing.T) {
	app := buildAdminApp()
	resp := doRequest(t, app, http.MethodGet, "/reportes", tokenFor(t, 42, "operador"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"los reportes agregados son exclusivos de admin")
}

func TestRequireAdmin_SinToken401(t *testing.T) {
	app := buildAdminApp()
	resp := doRequest(t, app, http.MethodGet, "/reportes", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireModuleVisibility
// ──────────────────────────────────────────────────────────────────────────────

func buildVisibilityApp(moduleName string) *fiber.App {
	app := fiber.New()
	app.Get("/modulo",
		apphttp.AuthMiddleware(testJWTSecret),
		testGuard().RequireModuleVisibility(moduleName),
		func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) },
	)
	return app
}

// El operador ve los módulos de venta pero no la capa de reportes.
func TestRequireModuleVisibility_OperadorNoVeReportes(t *testing.T) {
	app := buildVisibilityApp(policy.ModReportes)
	resp := doRequest(t, app, http.MethodGet, "/modulo", tokenFor(t, 42, "operador"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"el acceso por URL directa a un módulo fuera del dashboard debe cortarse")
}

func TestRequireModuleVisibility_OperadorVePaquetes(t *testing.T) {
	app := buildVisibilityApp(policy.ModPaquetes)
	resp := doRequest(t, app, http.MethodGet, "/modulo", tokenFor(t, 42, "operador"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// El dashboard es superficie B2B: una cuenta B2C no lo ve aunque su rol
// figure en la tabla.
func TestRequireModuleVisibility_CuentaB2CNoVeDashboard(t *testing.T) {
	app := buildVisibilityApp(policy.ModPaquetes)
	resp := doRequest(t, app, http.MethodGet, "/modulo", tokenForCuenta(t, 55, "operador", "B2C"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"una cuenta B2C no accede a los módulos del dashboard B2B")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePublish
// ──────────────────────────────────────────────────────────────────────────────

func buildPublishApp() *fiber.App {
	app := fiber.New()
	app.Post("/publicaciones",
		apphttp.AuthMiddleware(testJWTSecret),
		testGuard().RequirePublish(),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusCreated) },
	)
	return app
}

func TestRequirePublish_OperadorB2BPublica(t *testing.T) {
	app := buildPublishApp()
	resp := doRequest(t, app, http.MethodPost, "/publicaciones", tokenFor(t, 42, "operador"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

// Publicar es capacidad B2B: una cuenta B2C se rechaza sin importar el rol.
func TestRequirePublish_CuentaB2CBloqueada(t *testing.T) {
	app := buildPublishApp()
	resp := doRequest(t, app, http.MethodPost, "/publicaciones", tokenForCuenta(t, 55, "operador", "B2C"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"una cuenta B2C no debe poder crear publicaciones")
}

func TestRequirePublish_AdminPublica(t *testing.T) {
	app := buildPublishApp()
	resp := doRequest(t, app, http.MethodPost, "/publicaciones", tokenFor(t, 1, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestRequirePublish_SinTokenDa401(t *testing.T) {
	app := buildPublishApp()
	resp := doRequest(t, app, http.MethodPost, "/publicaciones", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
