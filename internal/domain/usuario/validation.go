// Package usuario contiene las reglas de validación del registro de usuarios.
// Las reglas son funciones puras sobre el candidato; Validar las aplica en un orden fijo
// y se detiene en la primera que falla.
package usuario

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/usuarios-api/internal/domain/entity"
)

// Nombres de campo tal como viajan en el contrato JSON.
const (
	CampoIDUsuario         = "idUsuario"
	CampoNombres           = "nombres"
	CampoApellidos         = "apellidos"
	CampoCorreoElectronico = "correoElectronico"
	CampoSalarioBase       = "salarioBase"
)

var (
	// SalarioMinimo y SalarioMaximo delimitan el salario base (inclusivo).
	SalarioMinimo = decimal.Zero
	SalarioMaximo = decimal.NewFromInt(15_000_000)

	correoRegexp = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

// Regla es una validación independiente sobre un candidato.
type Regla func(u *entity.Usuario) error

// Reglas en el orden en que se aplican: primero la presencia de los cuatro campos
// obligatorios, después formato del correo y rango del salario.
var Reglas = []Regla{
	ValidarNombres,
	ValidarApellidos,
	ValidarCorreoRequerido,
	ValidarSalarioRequerido,
	ValidarFormatoCorreo,
	ValidarRangoSalario,
}

// Validar aplica Reglas en orden y devuelve el primer *ValidationError.
func Validar(u *entity.Usuario) error {
	for _, regla := range Reglas {
		if err := regla(u); err != nil {
			return err
		}
	}
	return nil
}

// ValidarNombres exige nombres no vacíos.
func ValidarNombres(u *entity.Usuario) error {
	if esVacio(u.Nombres) {
		return RequiredField(CampoNombres)
	}
	return nil
}

// ValidarApellidos exige apellidos no vacíos.
func ValidarApellidos(u *entity.Usuario) error {
	if esVacio(u.Apellidos) {
		return RequiredField(CampoApellidos)
	}
	return nil
}

// ValidarCorreoRequerido exige correo electrónico no vacío.
func ValidarCorreoRequerido(u *entity.Usuario) error {
	if esVacio(u.CorreoElectronico) {
		return RequiredField(CampoCorreoElectronico)
	}
	return nil
}

// ValidarSalarioRequerido exige salario base presente.
func ValidarSalarioRequerido(u *entity.Usuario) error {
	if u.SalarioBase == nil {
		return RequiredField(CampoSalarioBase)
	}
	return nil
}

// ValidarFormatoCorreo verifica la forma local@dominio.tld sobre el correo recortado.
func ValidarFormatoCorreo(u *entity.Usuario) error {
	if !EsCorreoValido(u.CorreoElectronico) {
		return InvalidFormat(CampoCorreoElectronico)
	}
	return nil
}

// ValidarRangoSalario verifica 0 <= salario <= 15.000.000 con aritmética decimal.
func ValidarRangoSalario(u *entity.Usuario) error {
	if u.SalarioBase == nil {
		return RequiredField(CampoSalarioBase)
	}
	if !EsSalarioEnRango(*u.SalarioBase) {
		return OutOfRange(CampoSalarioBase)
	}
	return nil
}

// EsCorreoValido indica si el correo (recortado) tiene la forma local@dominio.tld.
func EsCorreoValido(correo string) bool {
	return correoRegexp.MatchString(strings.TrimSpace(correo))
}

// EsSalarioEnRango indica si el salario está en [SalarioMinimo, SalarioMaximo].
func EsSalarioEnRango(salario decimal.Decimal) bool {
	return salario.Cmp(SalarioMinimo) >= 0 && salario.Cmp(SalarioMaximo) <= 0
}

func esVacio(s string) bool {
	return strings.TrimSpace(s) == ""
}
