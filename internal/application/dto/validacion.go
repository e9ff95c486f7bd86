package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	validators "github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/usuarios-api/internal/domain/usuario"
)

// MensajeValidacion mensaje general cuando la entrada no pasa las validaciones.
const MensajeValidacion = "Errores de validación en los datos de entrada"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", validators.NotBlank)

	// Los nombres de campo del error usan el nombre JSON (rol.idRol, no Rol.IDRol).
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// salarioBase llega a las reglas como texto decimal exacto, nunca como float.
	v.RegisterCustomTypeFunc(func(f reflect.Value) any {
		if d, ok := f.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	// correo y salario aplican las mismas reglas que el dominio.
	_ = v.RegisterValidation("correo", func(fl validator.FieldLevel) bool {
		return usuario.EsCorreoValido(fl.Field().String())
	})
	_ = v.RegisterValidation("salario", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && usuario.EsSalarioEnRango(d)
	})
	return v
}

// mensajes por campo JSON y regla; el resto usa "El campo <campo> es inválido".
var mensajes = map[string]string{
	"nombres.notblank":           "El campo nombres es requerido",
	"apellidos.notblank":         "El campo apellidos es requerido",
	"tipoDocumento.notblank":     "El campo tipo de documento es requerido",
	"numeroDocumento.notblank":   "El campo número de documento es requerido",
	"correoElectronico.notblank": "El campo correo electrónico es requerido",
	"correoElectronico.correo":   usuario.InvalidFormat(usuario.CampoCorreoElectronico).Error(),
	"salarioBase.required":       "El campo salario base es requerido",
	"salarioBase.salario":        usuario.OutOfRange(usuario.CampoSalarioBase).Error(),
	"rol.required":               "El campo rol es requerido",
	"rol.idRol.required":         "El campo rol.idRol es requerido",
}

// Validar aplica las reglas de los tags validate y devuelve un mensaje por campo inválido,
// en el orden de los campos. nil si la entrada es válida.
func Validar(in any) []string {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		campo := campoJSON(fe)
		if msg, ok := mensajes[campo+"."+fe.Tag()]; ok {
			out = append(out, msg)
			continue
		}
		out = append(out, "El campo "+campo+" es inválido")
	}
	return out
}

// campoJSON devuelve la ruta JSON del campo sin el nombre del struct raíz.
func campoJSON(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}
