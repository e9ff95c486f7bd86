package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/usuarios-api/internal/application/dto"
	"github.com/jhoicas/usuarios-api/internal/application/usuarios"
	"github.com/jhoicas/usuarios-api/internal/domain"
	"github.com/jhoicas/usuarios-api/internal/domain/entity"
	"github.com/jhoicas/usuarios-api/internal/infrastructure/memory"
	"github.com/jhoicas/usuarios-api/internal/infrastructure/metrics"
	apphttp "github.com/jhoicas/usuarios-api/internal/interfaces/http"
	"github.com/jhoicas/usuarios-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp arma la API completa sobre el almacén en memoria (correo, documento y rol).
// Si registrar no es nil reemplaza al caso de uso de registro.
func buildTestApp(t *testing.T, registrar usuarios.Registrador, checks map[string]apphttp.HealthCheck) *fiber.App {
	t.Helper()
	repo := memory.NewUsuarioMem()
	if registrar == nil {
		registrar = usuarios.NewRegistrarUsuarioUseCase(repo, repo, repo)
	}
	reg := prometheus.NewRegistry()

	app := apphttp.NewApp(apphttp.AppConfig{Name: "usuarios-api-test"})
	apphttp.Router(app, apphttp.RouterDeps{
		Service:   "usuarios-api-test",
		Registrar: registrar,
		Buscar:    usuarios.NewBuscarUsuarioUseCase(repo),
		Metrics:   metrics.New(reg),
		Gatherer:  reg,
		Checks:    checks,
	})
	return app
}

const bodyJuan = `{
	"nombres": "Juan Carlos",
	"apellidos": "Pérez García",
	"tipoDocumento": "CC",
	"numeroDocumento": "12345678",
	"fechaNacimiento": "1990-05-17",
	"direccion": "Calle 123 #45-67",
	"telefono": "3001234567",
	"correoElectronico": "juan.perez@email.com",
	"salarioBase": 3000000,
	"rol": {"idRol": 1}
}`

func do(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

type registradorFunc func(ctx context.Context, u *entity.Usuario) (*entity.Usuario, error)

func (f registradorFunc) Registrar(ctx context.Context, u *entity.Usuario) (*entity.Usuario, error) {
	return f(ctx, u)
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/v1/usuarios
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_Exitoso(t *testing.T) {
	app := buildTestApp(t, nil, nil)

	resp := do(t, app, http.MethodPost, "/api/v1/usuarios", bodyJuan)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

	out := decode[map[string]any](t, resp)
	assert.Equal(t, float64(1), out["idUsuario"])
	assert.Equal(t, "Juan Carlos", out["nombres"])
	assert.Equal(t, "1990-05-17", out["fechaNacimiento"])
	assert.Equal(t, float64(3000000), out["salarioBase"])
	rol, ok := out["rol"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ADMIN", rol["nombre"])
}

func TestRegistrar_CorreoDuplicado409(t *testing.T) {
	app := buildTestApp(t, nil, nil)
	require.Equal(t, fiber.StatusCreated, do(t, app, http.MethodPost, "/api/v1/usuarios", bodyJuan).StatusCode)

	otro := strings.Replace(bodyJuan, `"12345678"`, `"87654321"`, 1)
	resp := do(t, app, http.MethodPost, "/api/v1/usuarios", otro)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "CONFLICT", out.Code)
	assert.Equal(t, "Conflict", out.Error)
	assert.Equal(t, "Ya existe un usuario registrado con este correo electrónico", out.Message)
	assert.Equal(t, fiber.StatusConflict, out.Status)
	assert.Equal(t, "/api/v1/usuarios", out.Path)
}

func TestRegistrar_DocumentoDuplicado409(t *testing.T) {
	app := buildTestApp(t, nil, nil)
	require.Equal(t, fiber.StatusCreated, do(t, app, http.MethodPost, "/api/v1/usuarios", bodyJuan).StatusCode)

	otro := strings.Replace(bodyJuan, "juan.perez@email.com", "otro@email.com", 1)
	resp := do(t, app, http.MethodPost, "/api/v1/usuarios", otro)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "Ya existe un usuario registrado con este tipo y número de documento", out.Message)
}

func TestRegistrar_CampoFaltante400ConDetalles(t *testing.T) {
	app := buildTestApp(t, nil, nil)
	body := strings.Replace(bodyJuan, `"nombres": "Juan Carlos",`, "", 1)

	resp := do(t, app, http.MethodPost, "/api/v1/usuarios", body)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "Validation Error", out.Error)
	assert.Equal(t, dto.MensajeValidacion, out.Message)
	require.NotEmpty(t, out.Details)
	assert.Equal(t, "El campo nombres es requerido", out.Details[0])
}

func TestRegistrar_SalarioFueraDeRango400(t *testing.T) {
	app := buildTestApp(t, nil, nil)
	body := strings.Replace(bodyJuan, `"salarioBase": 3000000`, `"salarioBase": -1000`, 1)

	resp := do(t, app, http.MethodPost, "/api/v1/usuarios", body)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, []string{"El salario base debe estar entre 0 y 15,000,000"}, out.Details)
}

func TestRegistrar_SalarioApenasSobreElLimite400(t *testing.T) {
	app := buildTestApp(t, nil, nil)
	body := strings.Replace(bodyJuan, `"salarioBase": 3000000`, `"salarioBase": 15000000.0000000001`, 1)

	resp := do(t, app, http.MethodPost, "/api/v1/usuarios", body)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, dto.MensajeValidacion, out.Message)
	assert.Equal(t, []string{"El salario base debe estar entre 0 y 15,000,000"}, out.Details)

	// El límite exacto sí se acepta.
	body = strings.Replace(bodyJuan, `"salarioBase": 3000000`, `"salarioBase": 15000000`, 1)
	assert.Equal(t, fiber.StatusCreated, do(t, app, http.MethodPost, "/api/v1/usuarios", body).StatusCode)
}

func TestRegistrar_CorreoConEspacios201(t *testing.T) {
	app := buildTestApp(t, nil, nil)
	body := strings.Replace(bodyJuan, `"juan.perez@email.com"`, `" juan.perez@email.com "`, 1)

	resp := do(t, app, http.MethodPost, "/api/v1/usuarios", body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	out := decode[map[string]any](t, resp)
	assert.Equal(t, float64(1), out["idUsuario"])
}

func TestRegistrar_RolInexistente400(t *testing.T) {
	app := buildTestApp(t, nil, nil)
	body := strings.Replace(bodyJuan, `{"idRol": 1}`, `{"idRol": 99}`, 1)

	resp := do(t, app, http.MethodPost, "/api/v1/usuarios", body)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "El rol indicado no existe", out.Message)
}

func TestRegistrar_CuerpoInvalido400(t *testing.T) {
	app := buildTestApp(t, nil, nil)

	resp := do(t, app, http.MethodPost, "/api/v1/usuarios", `{"nombres": `)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decode[dto.ErrorResponse](t, resp).Code)
}

func TestRegistrar_FallaDePersistencia500Generico(t *testing.T) {
	falla := registradorFunc(func(context.Context, *entity.Usuario) (*entity.Usuario, error) {
		return nil, fmt.Errorf("%w: guardar usuario: %w", domain.ErrGatewayFailure, errors.New("connection reset by peer"))
	})
	app := buildTestApp(t, falla, nil)

	resp := do(t, app, http.MethodPost, "/api/v1/usuarios", bodyJuan)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, apphttp.MensajeErrorInterno, out.Message)
	assert.NotContains(t, out.Message, "connection reset")
}

// ──────────────────────────────────────────────────────────────────────────────
// GET por documento / correo
// ──────────────────────────────────────────────────────────────────────────────

func TestBuscarPorDocumento(t *testing.T) {
	app := buildTestApp(t, nil, nil)
	require.Equal(t, fiber.StatusCreated, do(t, app, http.MethodPost, "/api/v1/usuarios", bodyJuan).StatusCode)

	resp := do(t, app, http.MethodGet, "/api/v1/usuarios/documento/CC/12345678", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.UsuarioResponse](t, resp)
	assert.Equal(t, int64(1), out.IDUsuario)
	assert.Equal(t, "juan.perez@email.com", out.CorreoElectronico)

	resp = do(t, app, http.MethodGet, "/api/v1/usuarios/documento/CC/999", "")
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	nf := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NOT_FOUND", nf.Code)
	assert.Equal(t, "Usuario no encontrado con tipo documento: CC y número: 999", nf.Message)
}

func TestBuscarPorCorreo(t *testing.T) {
	app := buildTestApp(t, nil, nil)
	require.Equal(t, fiber.StatusCreated, do(t, app, http.MethodPost, "/api/v1/usuarios", bodyJuan).StatusCode)

	resp := do(t, app, http.MethodGet, "/api/v1/usuarios/email/juan.perez%40email.com", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Juan Carlos", decode[dto.UsuarioResponse](t, resp).Nombres)

	resp = do(t, app, http.MethodGet, "/api/v1/usuarios/email/nadie@email.com", "")
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Usuario no encontrado con correo electrónico: nadie@email.com",
		decode[dto.ErrorResponse](t, resp).Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas de soporte
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	app := buildTestApp(t, nil, map[string]apphttp.HealthCheck{
		"postgres": func(context.Context) error { return nil },
	})
	resp := do(t, app, http.MethodGet, "/health", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[map[string]any](t, resp)
	assert.Equal(t, "ok", out["status"])

	caida := buildTestApp(t, nil, map[string]apphttp.HealthCheck{
		"redis": func(context.Context) error { return errors.New("dial tcp: connection refused") },
	})
	resp = do(t, caida, http.MethodGet, "/health", "")
	require.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "connection refused", "el detalle del fallo solo va al log")

	var caidaOut map[string]any
	require.NoError(t, json.Unmarshal(raw, &caidaOut))
	assert.Equal(t, map[string]any{"redis": "error"}, caidaOut["checks"])
}

func TestHealth_CausaSoloEnElLog(t *testing.T) {
	var buf bytes.Buffer
	app := apphttp.NewApp(apphttp.AppConfig{Name: "usuarios-api-test"})
	apphttp.Router(app, apphttp.RouterDeps{
		Service: "usuarios-api-test",
		Checks: map[string]apphttp.HealthCheck{
			"postgres": func(context.Context) error { return errors.New("password authentication failed") },
		},
		Log: logger.New(logger.Config{Env: "production", Level: "info", Out: &buf}),
	})

	resp := do(t, app, http.MethodGet, "/health", "")
	require.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.Contains(t, buf.String(), "password authentication failed")
	assert.Contains(t, buf.String(), `"check":"postgres"`)
}

func TestMetrics_CuentaRegistros(t *testing.T) {
	app := buildTestApp(t, nil, nil)
	do(t, app, http.MethodPost, "/api/v1/usuarios", bodyJuan)
	do(t, app, http.MethodPost, "/api/v1/usuarios", bodyJuan)

	resp := do(t, app, http.MethodGet, "/metrics", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(b), `usuarios_registros_total{resultado="ok"} 1`)
	assert.Contains(t, string(b), `usuarios_registros_total{resultado="conflicto"} 1`)
}

func TestRutaInexistente404(t *testing.T) {
	app := buildTestApp(t, nil, nil)
	resp := do(t, app, http.MethodGet, "/api/v1/nada", "")
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}
