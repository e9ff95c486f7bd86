package http

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/usuarios-api/internal/application/dto"
	"github.com/jhoicas/usuarios-api/internal/application/usuarios"
	"github.com/jhoicas/usuarios-api/internal/domain"
	"github.com/jhoicas/usuarios-api/internal/infrastructure/metrics"
	"github.com/jhoicas/usuarios-api/pkg/logger"
)

// UsuarioHandler maneja el registro y la consulta de usuarios.
type UsuarioHandler struct {
	registrar usuarios.Registrador
	buscar    *usuarios.BuscarUsuarioUseCase
	metrics   *metrics.Metrics
	log       *logger.Logger
}

// NewUsuarioHandler construye el handler.
func NewUsuarioHandler(registrar usuarios.Registrador, buscar *usuarios.BuscarUsuarioUseCase, m *metrics.Metrics, log *logger.Logger) *UsuarioHandler {
	return &UsuarioHandler{registrar: registrar, buscar: buscar, metrics: m, log: log.Named("usuario_handler")}
}

// Registrar godoc
// @Summary      Registrar un nuevo usuario
// @Description  Valida los datos, verifica que el correo (y el documento y rol, si está habilitado) no estén en uso y guarda el usuario.
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegistrarUsuarioRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.UsuarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/v1/usuarios [post]
func (h *UsuarioHandler) Registrar(c *fiber.Ctx) error {
	start := time.Now()
	var in dto.RegistrarUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		h.log.Warn().Err(err).Str("request_id", GetRequestID(c)).Msg("Cuerpo de registro inválido")
		h.metrics.ObserveRegistro(start, domain.ErrInvalidInput)
		return responder(c, fiber.StatusBadRequest, "INVALID_BODY", "Cuerpo de la petición inválido", nil)
	}
	if details := dto.Validar(&in); len(details) > 0 {
		h.metrics.ObserveRegistro(start, domain.ErrInvalidInput)
		return responder(c, fiber.StatusBadRequest, "VALIDATION", dto.MensajeValidacion, details)
	}

	h.log.Info().Str("correo", in.CorreoElectronico).Msg("Iniciando registro de usuario")
	u, err := h.registrar.Registrar(c.UserContext(), in.ToEntity())
	h.metrics.ObserveRegistro(start, err)
	if err != nil {
		return h.responderError(c, "Error al registrar usuario", err)
	}

	h.log.Info().Int64("id_usuario", *u.IDUsuario).Msg("Usuario registrado exitosamente")
	return c.Status(fiber.StatusCreated).JSON(dto.NewUsuarioResponse(u))
}

// BuscarPorDocumento godoc
// @Summary      Buscar usuario por documento
// @Tags         usuarios
// @Produce      json
// @Param        tipoDocumento    path      string  true  "Tipo de documento"    example(CC)
// @Param        numeroDocumento  path      string  true  "Número de documento"  example(12345678)
// @Success      200              {object}  dto.UsuarioResponse
// @Failure      404              {object}  dto.ErrorResponse
// @Failure      500              {object}  dto.ErrorResponse
// @Router       /api/v1/usuarios/documento/{tipoDocumento}/{numeroDocumento} [get]
func (h *UsuarioHandler) BuscarPorDocumento(c *fiber.Ctx) error {
	tipo, err1 := url.PathUnescape(c.Params("tipoDocumento"))
	numero, err2 := url.PathUnescape(c.Params("numeroDocumento"))
	if err := errors.Join(err1, err2); err != nil {
		return responder(c, fiber.StatusBadRequest, "VALIDATION", "Documento inválido en la ruta", nil)
	}

	h.log.Info().Str("tipo_documento", tipo).Str("numero_documento", numero).Msg("Buscando usuario por documento")
	u, err := h.buscar.BuscarPorTipoYNumeroDocumento(c.UserContext(), tipo, numero)
	h.metrics.ObserveConsulta("documento", err)
	if err != nil {
		return h.responderError(c, "Error al buscar usuario", err)
	}
	return c.JSON(dto.NewUsuarioResponse(u))
}

// BuscarPorCorreo godoc
// @Summary      Buscar usuario por correo electrónico
// @Tags         usuarios
// @Produce      json
// @Param        correoElectronico  path      string  true  "Correo electrónico"  example(usuario@ejemplo.com)
// @Success      200                {object}  dto.UsuarioResponse
// @Failure      404                {object}  dto.ErrorResponse
// @Failure      500                {object}  dto.ErrorResponse
// @Router       /api/v1/usuarios/email/{correoElectronico} [get]
func (h *UsuarioHandler) BuscarPorCorreo(c *fiber.Ctx) error {
	correo, err := url.PathUnescape(c.Params("correoElectronico"))
	if err != nil {
		return responder(c, fiber.StatusBadRequest, "VALIDATION", "Correo electrónico inválido en la ruta", nil)
	}

	h.log.Info().Str("correo", correo).Msg("Buscando usuario por correo")
	u, err := h.buscar.BuscarPorCorreoElectronico(c.UserContext(), correo)
	h.metrics.ObserveConsulta("correo", err)
	if err != nil {
		return h.responderError(c, "Error al buscar usuario por correo", err)
	}
	return c.JSON(dto.NewUsuarioResponse(u))
}

// responderError traduce el error del caso de uso a estado HTTP. Los errores no clasificados
// se registran y se responden con un mensaje genérico.
func (h *UsuarioHandler) responderError(c *fiber.Ctx, msg string, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		h.log.Warn().Err(err).Str("request_id", GetRequestID(c)).Msg(msg)
		return responder(c, fiber.StatusBadRequest, "VALIDATION", err.Error(), nil)
	case errors.Is(err, domain.ErrConflict):
		h.log.Warn().Err(err).Str("request_id", GetRequestID(c)).Msg(msg)
		return responder(c, fiber.StatusConflict, "CONFLICT", err.Error(), nil)
	case errors.Is(err, domain.ErrNotFound):
		h.log.Info().Err(err).Str("request_id", GetRequestID(c)).Msg(msg)
		return responder(c, fiber.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.log.Warn().Err(err).Str("request_id", GetRequestID(c)).Msg(msg)
	default:
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg(msg)
	}
	return responder(c, fiber.StatusInternalServerError, "INTERNAL", MensajeErrorInterno, nil)
}

func responder(c *fiber.Ctx, status int, code, message string, details []string) error {
	return c.Status(status).JSON(dto.ErrorResponse{
		Code:      code,
		Error:     StatusText(status),
		Message:   message,
		Status:    status,
		Timestamp: time.Now(),
		Path:      c.Path(),
		Details:   details,
	})
}
