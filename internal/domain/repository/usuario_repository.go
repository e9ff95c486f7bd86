//go:generate mockgen -source=usuario_repository.go -destination=mocks/mocks.go -package=mocks

package repository

import (
	"context"

	"github.com/jhoicas/usuarios-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
// Las búsquedas devuelven (nil, nil) cuando no existe el registro.
type UsuarioRepository interface {
	// Guardar persiste el candidato y devuelve el usuario con IDUsuario asignado.
	Guardar(ctx context.Context, usuario *entity.Usuario) (*entity.Usuario, error)
	ExistePorCorreoElectronico(ctx context.Context, correoElectronico string) (bool, error)
	BuscarPorTipoYNumeroDocumento(ctx context.Context, tipoDocumento, numeroDocumento string) (*entity.Usuario, error)
	BuscarPorCorreoElectronico(ctx context.Context, correoElectronico string) (*entity.Usuario, error)
}

// DocumentoChecker es la capacidad opcional de verificar unicidad por (tipo, número) de documento.
type DocumentoChecker interface {
	ExistePorTipoYNumeroDocumento(ctx context.Context, tipoDocumento, numeroDocumento string) (bool, error)
}
