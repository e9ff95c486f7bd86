package dto

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/usuarios-api/internal/domain/entity"
)

func init() {
	// salarioBase viaja como número JSON, no como texto.
	decimal.MarshalJSONWithoutQuotes = true
}

// RegistrarUsuarioRequest entrada para registrar un usuario.
type RegistrarUsuarioRequest struct {
	Nombres           string           `json:"nombres" validate:"notblank"`
	Apellidos         string           `json:"apellidos" validate:"notblank"`
	TipoDocumento     string           `json:"tipoDocumento" validate:"notblank"`
	NumeroDocumento   string           `json:"numeroDocumento" validate:"notblank"`
	FechaNacimiento   *Fecha           `json:"fechaNacimiento,omitempty" swaggertype:"string" example:"1990-05-17"`
	Direccion         string           `json:"direccion,omitempty"`
	Telefono          string           `json:"telefono,omitempty"`
	CorreoElectronico string           `json:"correoElectronico" validate:"notblank,correo"`
	SalarioBase       *decimal.Decimal `json:"salarioBase" validate:"required,salario" swaggertype:"number" example:"3000000"`
	Rol               *RolDto          `json:"rol" validate:"required"`
}

// RolDto referencia al rol (en la entrada solo se usa idRol).
type RolDto struct {
	IDRol       *int64 `json:"idRol" validate:"required" example:"1"`
	Nombre      string `json:"nombre,omitempty"`
	Descripcion string `json:"descripcion,omitempty"`
}

// UsuarioResponse salida de un usuario.
type UsuarioResponse struct {
	IDUsuario         int64            `json:"idUsuario"`
	Nombres           string           `json:"nombres"`
	Apellidos         string           `json:"apellidos"`
	TipoDocumento     string           `json:"tipoDocumento"`
	NumeroDocumento   string           `json:"numeroDocumento"`
	FechaNacimiento   *Fecha           `json:"fechaNacimiento" swaggertype:"string"`
	Direccion         string           `json:"direccion"`
	Telefono          string           `json:"telefono"`
	CorreoElectronico string           `json:"correoElectronico"`
	SalarioBase       *decimal.Decimal `json:"salarioBase" swaggertype:"number"`
	Rol               *RolDto          `json:"rol"`
}

// ToEntity arma el candidato a registro. Los textos libres se normalizan a NFC para que
// la misma cadena escrita con acentos compuestos o combinados se guarde igual.
func (r *RegistrarUsuarioRequest) ToEntity() *entity.Usuario {
	u := &entity.Usuario{
		Nombres:           norm.NFC.String(r.Nombres),
		Apellidos:         norm.NFC.String(r.Apellidos),
		TipoDocumento:     r.TipoDocumento,
		NumeroDocumento:   r.NumeroDocumento,
		FechaNacimiento:   r.FechaNacimiento.Time(),
		Direccion:         norm.NFC.String(r.Direccion),
		Telefono:          r.Telefono,
		CorreoElectronico: r.CorreoElectronico,
		SalarioBase:       r.SalarioBase,
	}
	if r.Rol != nil && r.Rol.IDRol != nil {
		u.Rol = &entity.Rol{IDRol: *r.Rol.IDRol}
	}
	return u
}

// NewUsuarioResponse mapea el usuario del dominio a la salida.
func NewUsuarioResponse(u *entity.Usuario) UsuarioResponse {
	out := UsuarioResponse{
		Nombres:           u.Nombres,
		Apellidos:         u.Apellidos,
		TipoDocumento:     u.TipoDocumento,
		NumeroDocumento:   u.NumeroDocumento,
		FechaNacimiento:   FechaDesde(u.FechaNacimiento),
		Direccion:         u.Direccion,
		Telefono:          u.Telefono,
		CorreoElectronico: u.CorreoElectronico,
		SalarioBase:       u.SalarioBase,
	}
	if u.IDUsuario != nil {
		out.IDUsuario = *u.IDUsuario
	}
	if u.Rol != nil {
		id := u.Rol.IDRol
		out.Rol = &RolDto{IDRol: &id, Nombre: u.Rol.Nombre, Descripcion: u.Rol.Descripcion}
	}
	return out
}
