package usuarios

import (
	"context"

	"github.com/jhoicas/usuarios-api/internal/domain/entity"
	"github.com/jhoicas/usuarios-api/internal/domain/repository"
	"github.com/jhoicas/usuarios-api/internal/domain/usuario"
)

// BuscarUsuarioUseCase consulta usuarios por documento o por correo electrónico.
type BuscarUsuarioUseCase struct {
	usuarios repository.UsuarioRepository
}

// NewBuscarUsuarioUseCase construye el caso de uso.
func NewBuscarUsuarioUseCase(usuarios repository.UsuarioRepository) *BuscarUsuarioUseCase {
	return &BuscarUsuarioUseCase{usuarios: usuarios}
}

// BuscarPorTipoYNumeroDocumento devuelve el usuario o un error que es usuario.ErrUsuarioNoEncontrado.
func (uc *BuscarUsuarioUseCase) BuscarPorTipoYNumeroDocumento(ctx context.Context, tipoDocumento, numeroDocumento string) (*entity.Usuario, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u, err := uc.usuarios.BuscarPorTipoYNumeroDocumento(ctx, tipoDocumento, numeroDocumento)
	if err != nil {
		return nil, fallaPersistencia("buscar por documento", err)
	}
	if u == nil {
		return nil, usuario.NoEncontradoPorDocumento(tipoDocumento, numeroDocumento)
	}
	return u, nil
}

// BuscarPorCorreoElectronico devuelve el usuario o un error que es usuario.ErrUsuarioNoEncontrado.
func (uc *BuscarUsuarioUseCase) BuscarPorCorreoElectronico(ctx context.Context, correoElectronico string) (*entity.Usuario, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u, err := uc.usuarios.BuscarPorCorreoElectronico(ctx, correoElectronico)
	if err != nil {
		return nil, fallaPersistencia("buscar por correo", err)
	}
	if u == nil {
		return nil, usuario.NoEncontradoPorCorreo(correoElectronico)
	}
	return u, nil
}
