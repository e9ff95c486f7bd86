package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Usuario representa un usuario registrado (o candidato a registro si IDUsuario es nil).
type Usuario struct {
	IDUsuario         *int64 // asignado por la persistencia; nil en un candidato
	Nombres           string
	Apellidos         string
	TipoDocumento     string // CC, CE, TI, PA...
	NumeroDocumento   string
	FechaNacimiento   *time.Time
	Direccion         string
	Telefono          string
	CorreoElectronico string
	SalarioBase       *decimal.Decimal // COP, exacto
	Rol               *Rol
}

// IDRol devuelve el id del rol referenciado o nil si no hay referencia.
func (u *Usuario) IDRol() *int64 {
	if u == nil || u.Rol == nil {
		return nil
	}
	id := u.Rol.IDRol
	return &id
}
