package usuarios

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/usuarios-api/internal/domain"
	"github.com/jhoicas/usuarios-api/internal/domain/entity"
	"github.com/jhoicas/usuarios-api/internal/domain/repository"
	"github.com/jhoicas/usuarios-api/internal/domain/usuario"
)

// Registrador es el contrato del caso de uso de registro, para que el handler HTTP
// pueda recibir el caso de uso directo o decorado (p. ej. con bloqueo por identidad).
type Registrador interface {
	Registrar(ctx context.Context, candidato *entity.Usuario) (*entity.Usuario, error)
}

var _ Registrador = (*RegistrarUsuarioUseCase)(nil)

// RegistrarUsuarioUseCase valida el candidato, verifica unicidad contra la persistencia
// y delega el guardado.
//
// Secuencia (se detiene en el primer fallo):
//  1. Reglas de validación en orden fijo (usuario.Validar).
//  2. Unicidad por correo electrónico.
//  3. Unicidad por (tipo, número) de documento, si documentos != nil.
//  4. Existencia del rol, si roles != nil.
//  5. Guardar, una sola vez.
//
// La unicidad es verificar-y-luego-escribir: dos registros concurrentes con el mismo correo
// pueden pasar ambos la verificación. El adaptador de Postgres traduce la violación del
// índice único a los mismos errores de conflicto; el caso de uso no toma bloqueos.
type RegistrarUsuarioUseCase struct {
	usuarios   repository.UsuarioRepository
	documentos repository.DocumentoChecker
	roles      repository.RolRepository
}

// NewRegistrarUsuarioUseCase construye el caso de uso. documentos y roles son capacidades
// opcionales: con nil no se verifica la unicidad del documento ni la existencia del rol.
func NewRegistrarUsuarioUseCase(
	usuarios repository.UsuarioRepository,
	documentos repository.DocumentoChecker,
	roles repository.RolRepository,
) *RegistrarUsuarioUseCase {
	return &RegistrarUsuarioUseCase{
		usuarios:   usuarios,
		documentos: documentos,
		roles:      roles,
	}
}

// Registrar ejecuta el registro y devuelve el usuario tal como lo retornó la persistencia.
func (uc *RegistrarUsuarioUseCase) Registrar(ctx context.Context, candidato *entity.Usuario) (*entity.Usuario, error) {
	if candidato == nil {
		return nil, fmt.Errorf("%w: usuario nulo", domain.ErrInvalidInput)
	}
	if candidato.IDUsuario != nil {
		return nil, usuario.InvalidFormat(usuario.CampoIDUsuario)
	}
	if err := usuario.Validar(candidato); err != nil {
		return nil, err
	}

	if err := uc.validarCorreoUnico(ctx, candidato.CorreoElectronico); err != nil {
		return nil, err
	}
	if uc.documentos != nil {
		if err := uc.validarDocumentoUnico(ctx, candidato.TipoDocumento, candidato.NumeroDocumento); err != nil {
			return nil, err
		}
	}
	if uc.roles != nil {
		if err := uc.validarRol(ctx, candidato.IDRol()); err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	guardado, err := uc.usuarios.Guardar(ctx, candidato)
	if err != nil {
		return nil, fallaPersistencia("guardar usuario", err)
	}
	if guardado == nil || guardado.IDUsuario == nil {
		return nil, fmt.Errorf("%w: guardar usuario: la persistencia no asignó id", domain.ErrGatewayFailure)
	}
	return guardado, nil
}

func (uc *RegistrarUsuarioUseCase) validarCorreoUnico(ctx context.Context, correo string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	existe, err := uc.usuarios.ExistePorCorreoElectronico(ctx, correo)
	if err != nil {
		return fallaPersistencia("verificar correo", err)
	}
	if existe {
		return usuario.ErrCorreoDuplicado
	}
	return nil
}

func (uc *RegistrarUsuarioUseCase) validarDocumentoUnico(ctx context.Context, tipo, numero string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	existe, err := uc.documentos.ExistePorTipoYNumeroDocumento(ctx, tipo, numero)
	if err != nil {
		return fallaPersistencia("verificar documento", err)
	}
	if existe {
		return usuario.ErrDocumentoDuplicado
	}
	return nil
}

func (uc *RegistrarUsuarioUseCase) validarRol(ctx context.Context, idRol *int64) error {
	if idRol == nil {
		return usuario.ErrRolNoEncontrado
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	existe, err := uc.roles.ExistePorID(ctx, *idRol)
	if err != nil {
		return fallaPersistencia("verificar rol", err)
	}
	if !existe {
		return usuario.ErrRolNoEncontrado
	}
	return nil
}

// fallaPersistencia clasifica un error del gateway como ErrGatewayFailure, salvo los conflictos
// (violación de índice único ya traducida por el adaptador) y la cancelación del contexto,
// que se propagan tal cual.
func fallaPersistencia(op string, err error) error {
	if errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrGatewayFailure, op, err)
}
