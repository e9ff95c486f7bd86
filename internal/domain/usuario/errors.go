package usuario

import (
	"fmt"

	"github.com/jhoicas/usuarios-api/internal/domain"
)

// Errores del registro y consulta de usuarios.
var (
	ErrCorreoDuplicado     = domain.Wrap(domain.ErrConflict, "Ya existe un usuario registrado con este correo electrónico")
	ErrDocumentoDuplicado  = domain.Wrap(domain.ErrConflict, "Ya existe un usuario registrado con este tipo y número de documento")
	ErrUsuarioNoEncontrado = domain.Wrap(domain.ErrNotFound, "Usuario no encontrado")
	ErrRolNoEncontrado     = domain.Wrap(domain.ErrInvalidInput, "El rol indicado no existe")
)

// ValidationKind clasifica la regla de validación que falló.
type ValidationKind string

const (
	KindRequiredField ValidationKind = "RequiredField"
	KindInvalidFormat ValidationKind = "InvalidFormat"
	KindOutOfRange    ValidationKind = "OutOfRange"
)

// ValidationError es el error de una regla de validación sobre un campo del usuario.
// Es un domain.ErrInvalidInput.
type ValidationError struct {
	Kind  ValidationKind
	Field string // nombre del campo en el contrato JSON: nombres, correoElectronico, ...
}

func (e *ValidationError) Error() string {
	etiqueta := etiquetaCampo(e.Field)
	switch e.Kind {
	case KindRequiredField:
		return fmt.Sprintf("El campo %s es requerido", etiqueta)
	case KindInvalidFormat:
		return fmt.Sprintf("El formato del %s es inválido", etiqueta)
	case KindOutOfRange:
		if e.Field == CampoSalarioBase {
			return "El salario base debe estar entre 0 y 15,000,000"
		}
		return fmt.Sprintf("El %s está fuera del rango permitido", etiqueta)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Field)
}

func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }

// RequiredField construye el error de campo requerido.
func RequiredField(field string) *ValidationError {
	return &ValidationError{Kind: KindRequiredField, Field: field}
}

// InvalidFormat construye el error de formato inválido.
func InvalidFormat(field string) *ValidationError {
	return &ValidationError{Kind: KindInvalidFormat, Field: field}
}

// OutOfRange construye el error de valor fuera de rango.
func OutOfRange(field string) *ValidationError {
	return &ValidationError{Kind: KindOutOfRange, Field: field}
}

// NoEncontradoPorDocumento envuelve ErrUsuarioNoEncontrado con el documento buscado.
func NoEncontradoPorDocumento(tipoDocumento, numeroDocumento string) error {
	return fmt.Errorf("%w con tipo documento: %s y número: %s", ErrUsuarioNoEncontrado, tipoDocumento, numeroDocumento)
}

// NoEncontradoPorCorreo envuelve ErrUsuarioNoEncontrado con el correo buscado.
func NoEncontradoPorCorreo(correoElectronico string) error {
	return fmt.Errorf("%w con correo electrónico: %s", ErrUsuarioNoEncontrado, correoElectronico)
}

func etiquetaCampo(field string) string {
	switch field {
	case CampoCorreoElectronico:
		return "correo electrónico"
	case CampoSalarioBase:
		return "salario base"
	case CampoIDUsuario:
		return "id de usuario"
	}
	return field
}
