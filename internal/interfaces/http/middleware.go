package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/usuarios-api/pkg/logger"
)

// Locals key del request id en Fiber; el mismo valor viaja en el header X-Request-ID.
const requestIDKey = "request_id"

// AccessLog registra cada petición con zerolog al terminar (método, ruta, estado, duración, request id).
func AccessLog(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// Deja que el ErrorHandler escriba la respuesta antes de leer el estado.
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		ev := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error()
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		ev.Str("request_id", GetRequestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Msg("petición HTTP")
		return nil
	}
}

// GetRequestID devuelve el request id asignado por el middleware (vacío fuera de él).
func GetRequestID(c *fiber.Ctx) string {
	v := c.Locals(requestIDKey)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
