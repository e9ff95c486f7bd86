package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/usuarios-api/internal/application/usuarios"
	"github.com/jhoicas/usuarios-api/internal/infrastructure/metrics"
	"github.com/jhoicas/usuarios-api/pkg/logger"
)

// HealthCheck verifica una dependencia (base de datos, Redis) para /health.
type HealthCheck func(ctx context.Context) error

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Service   string
	Registrar usuarios.Registrador
	Buscar    *usuarios.BuscarUsuarioUseCase
	Metrics   *metrics.Metrics
	Gatherer  prometheus.Gatherer // nil = sin /metrics
	Checks    map[string]HealthCheck
	Log       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	app.Get("/health", healthHandler(deps.Service, deps.Checks, log.Named("health")))
	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api/v1")

	usuariosGroup := api.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.Registrar, deps.Buscar, deps.Metrics, log)
	usuariosGroup.Post("/", usuarioHandler.Registrar)
	usuariosGroup.Get("/documento/:tipoDocumento/:numeroDocumento", usuarioHandler.BuscarPorDocumento)
	usuariosGroup.Get("/email/:correoElectronico", usuarioHandler.BuscarPorCorreo)
}

// healthHandler responde 200 si todas las dependencias responden, 503 si alguna falla.
// La causa del fallo solo se registra en el log; la respuesta indica "error".
func healthHandler(service string, checks map[string]HealthCheck, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := "ok"
		detalle := make(fiber.Map, len(checks))
		for nombre, check := range checks {
			if err := check(c.UserContext()); err != nil {
				status = "degraded"
				detalle[nombre] = "error"
				log.Warn().Err(err).Str("check", nombre).Msg("dependencia no disponible")
				continue
			}
			detalle[nombre] = "ok"
		}
		code := fiber.StatusOK
		if status != "ok" {
			code = fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{"status": status, "service": service, "checks": detalle})
	}
}
