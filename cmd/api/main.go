package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/prometheus/client_golang/prometheus"

	_ "github.com/jhoicas/usuarios-api/docs"
	"github.com/jhoicas/usuarios-api/internal/application/usuarios"
	"github.com/jhoicas/usuarios-api/internal/domain/repository"
	"github.com/jhoicas/usuarios-api/internal/infrastructure/memory"
	"github.com/jhoicas/usuarios-api/internal/infrastructure/metrics"
	"github.com/jhoicas/usuarios-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/usuarios-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/usuarios-api/internal/interfaces/http"
	"github.com/jhoicas/usuarios-api/pkg/config"
	"github.com/jhoicas/usuarios-api/pkg/logger"
)

// @title        Usuarios API
// @version      1.0
// @description  API de registro y consulta de usuarios.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	checks := map[string]httpRouter.HealthCheck{}

	var (
		usuariosRepo   repository.UsuarioRepository
		documentosRepo repository.DocumentoChecker
		rolesRepo      repository.RolRepository
	)
	switch cfg.DB.Driver {
	case config.StorageMemory:
		mem := memory.NewUsuarioMem()
		usuariosRepo, documentosRepo, rolesRepo = mem, mem, mem
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		checks["postgres"] = pool.Ping

		repo := postgres.NewUsuarioRepository(pool, log)
		usuariosRepo, documentosRepo, rolesRepo = repo, repo, postgres.NewRolRepository(pool)
	}

	// Capacidades opcionales del registro según configuración.
	if !cfg.Registro.ValidarDocumento {
		documentosRepo = nil
	}
	if !cfg.Registro.ValidarRol {
		rolesRepo = nil
	}
	log.Info().
		Bool("validar_documento", documentosRepo != nil).
		Bool("validar_rol", rolesRepo != nil).
		Msg("verificaciones de registro")

	var registrar usuarios.Registrador = usuarios.NewRegistrarUsuarioUseCase(usuariosRepo, documentosRepo, rolesRepo)
	buscarUC := usuarios.NewBuscarUsuarioUseCase(usuariosRepo)

	if cfg.Registro.LockEnabled {
		rdb, err := infraredis.New(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		checks["redis"] = rdb.Health

		registrar = usuarios.NewRegistroSerializado(registrar, infraredis.NewBloqueador(rdb.Client), cfg.Registro.LockTTL, log)
		log.Info().Dur("ttl", cfg.Registro.LockTTL).Msg("bloqueo de registro por identidad habilitado")
	}

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:         cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		Log:          log,
	})

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.HTTP.SwaggerFile != "" {
		if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.HTTP.SwaggerFile,
				Path:     "docs",
				Title:    "Usuarios API",
			}))
		} else {
			log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
		}
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		Service:   cfg.App.Name,
		Registrar: registrar,
		Buscar:    buscarUC,
		Metrics:   metrics.New(prometheus.DefaultRegisterer),
		Gatherer:  prometheus.DefaultGatherer,
		Checks:    checks,
		Log:       log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
