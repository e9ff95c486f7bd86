package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"

	"github.com/jhoicas/usuarios-api/internal/application/dto"
	"github.com/jhoicas/usuarios-api/pkg/logger"
)

// MensajeErrorInterno mensaje para cualquier falla no clasificada; el detalle solo va al log.
const MensajeErrorInterno = "Ha ocurrido un error interno. Intente nuevamente."

// AppConfig opciones del servidor Fiber.
type AppConfig struct {
	Name         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Log          *logger.Logger
}

// NewApp crea la aplicación Fiber con recover, request id, log de accesos y un
// ErrorHandler que responde siempre con dto.ErrorResponse.
func NewApp(cfg AppConfig) *fiber.App {
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: errorHandler(log.Named("http")),
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: requestIDKey,
	}))
	app.Use(AccessLog(log.Named("access")))
	return app
}

// errorHandler atiende los errores que llegan a Fiber (rutas inexistentes, panics recuperados, ...).
func errorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{
				Code:      codigoPorEstado(fe.Code),
				Error:     StatusText(fe.Code),
				Message:   fe.Message,
				Status:    fe.Code,
				Timestamp: time.Now(),
				Path:      c.Path(),
			})
		}
		log.Error().Err(err).Str("request_id", GetRequestID(c)).Str("path", c.Path()).Msg("error no controlado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:      "INTERNAL",
			Error:     StatusText(fiber.StatusInternalServerError),
			Message:   MensajeErrorInterno,
			Status:    fiber.StatusInternalServerError,
			Timestamp: time.Now(),
			Path:      c.Path(),
		})
	}
}

// StatusText nombre corto del estado HTTP usado en el campo "error".
func StatusText(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "Validation Error"
	case fiber.StatusConflict:
		return "Conflict"
	case fiber.StatusNotFound:
		return "Not Found"
	case fiber.StatusInternalServerError:
		return "Internal Server Error"
	}
	return utils.StatusMessage(status)
}

func codigoPorEstado(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "VALIDATION"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusConflict:
		return "CONFLICT"
	}
	return "HTTP_ERROR"
}
