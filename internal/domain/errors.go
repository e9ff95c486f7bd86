package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrConflict       = errors.New("conflicto con el estado actual")
	ErrGatewayFailure = errors.New("falla en la capa de persistencia")
)

// Error es un error de dominio con mensaje propio para el cliente, clasificado por uno de los
// sentinels de arriba (errors.Is(err, ErrConflict), etc.).
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// Wrap crea un error de dominio con la categoría kind y el mensaje msg.
func Wrap(kind error, msg string) error {
	return &Error{Kind: kind, Message: msg}
}
