package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/usuarios-api/internal/domain/entity"
	"github.com/jhoicas/usuarios-api/internal/domain/repository"
	"github.com/jhoicas/usuarios-api/internal/domain/usuario"
	"github.com/jhoicas/usuarios-api/pkg/logger"
)

var (
	_ repository.UsuarioRepository = (*UsuarioRepo)(nil)
	_ repository.DocumentoChecker  = (*UsuarioRepo)(nil)
)

// UsuarioRepo implementación de UsuarioRepository y DocumentoChecker sobre PostgreSQL
// (tabla usuarios, con índices únicos sobre correo_electronico y (tipo_documento, numero_documento)).
type UsuarioRepo struct {
	q   Querier
	log *logger.Logger
}

// NewUsuarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier, log *logger.Logger) *UsuarioRepo {
	return &UsuarioRepo{q: q, log: log.Named("usuario_repository")}
}

const selectUsuario = `
	SELECT u.id_usuario, u.nombres, u.apellidos, u.tipo_documento, u.numero_documento,
	       u.fecha_nacimiento, u.direccion, u.telefono, u.correo_electronico, u.salario_base,
	       u.id_rol, r.nombre, r.descripcion
	FROM usuarios u
	LEFT JOIN roles r ON r.id_rol = u.id_rol`

// Guardar inserta el usuario y devuelve una copia con el id asignado por la base.
// Las violaciones de los índices únicos se traducen a los errores de conflicto del dominio.
func (r *UsuarioRepo) Guardar(ctx context.Context, u *entity.Usuario) (*entity.Usuario, error) {
	r.log.Debug().Msg("Guardando usuario en base de datos")
	query := `
		INSERT INTO usuarios (nombres, apellidos, tipo_documento, numero_documento, fecha_nacimiento,
		                      direccion, telefono, correo_electronico, salario_base, id_rol)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id_usuario`
	var id int64
	err := r.q.QueryRow(ctx, query,
		u.Nombres, u.Apellidos, nullIfEmpty(u.TipoDocumento), nullIfEmpty(u.NumeroDocumento), u.FechaNacimiento,
		nullIfEmpty(u.Direccion), nullIfEmpty(u.Telefono), u.CorreoElectronico, u.SalarioBase, u.IDRol(),
	).Scan(&id)
	if err != nil {
		if constraint, ok := isUniqueViolation(err); ok {
			if strings.Contains(constraint, "documento") {
				return nil, usuario.ErrDocumentoDuplicado
			}
			return nil, usuario.ErrCorreoDuplicado
		}
		return nil, fmt.Errorf("insert usuario: %w", err)
	}

	out := *u
	out.IDUsuario = &id
	if u.Rol != nil {
		rol := *u.Rol
		out.Rol = &rol
	}
	r.log.Debug().Int64("id_usuario", id).Msg("Usuario guardado exitosamente")
	return &out, nil
}

// ExistePorCorreoElectronico indica si ya hay un usuario con ese correo.
func (r *UsuarioRepo) ExistePorCorreoElectronico(ctx context.Context, correo string) (bool, error) {
	r.log.Debug().Str("correo", correo).Msg("Verificando existencia de usuario con correo")
	var existe bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM usuarios WHERE correo_electronico = $1)`, correo,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("exists usuario by correo: %w", err)
	}
	r.log.Debug().Str("correo", correo).Bool("existe", existe).Msg("Resultado verificación de correo")
	return existe, nil
}

// ExistePorTipoYNumeroDocumento indica si ya hay un usuario con ese documento.
func (r *UsuarioRepo) ExistePorTipoYNumeroDocumento(ctx context.Context, tipo, numero string) (bool, error) {
	r.log.Debug().Str("tipo_documento", tipo).Str("numero_documento", numero).Msg("Verificando existencia de usuario con documento")
	var existe bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM usuarios WHERE tipo_documento = $1 AND numero_documento = $2)`, tipo, numero,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("exists usuario by documento: %w", err)
	}
	return existe, nil
}

// BuscarPorTipoYNumeroDocumento obtiene un usuario por documento; (nil, nil) si no existe.
func (r *UsuarioRepo) BuscarPorTipoYNumeroDocumento(ctx context.Context, tipo, numero string) (*entity.Usuario, error) {
	row := r.q.QueryRow(ctx, selectUsuario+` WHERE u.tipo_documento = $1 AND u.numero_documento = $2`, tipo, numero)
	u, err := scanUsuario(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by documento: %w", err)
	}
	return u, nil
}

// BuscarPorCorreoElectronico obtiene un usuario por correo; (nil, nil) si no existe.
func (r *UsuarioRepo) BuscarPorCorreoElectronico(ctx context.Context, correo string) (*entity.Usuario, error) {
	row := r.q.QueryRow(ctx, selectUsuario+` WHERE u.correo_electronico = $1 LIMIT 1`, correo)
	u, err := scanUsuario(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by correo: %w", err)
	}
	return u, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

// pgxScanner abstrae pgx.Row y pgx.Rows.
type pgxScanner interface {
	Scan(dest ...any) error
}

func scanUsuario(row pgxScanner) (*entity.Usuario, error) {
	var (
		u                                 entity.Usuario
		id                                int64
		tipo, numero, direccion, telefono *string
		fechaNacimiento                   *time.Time
		salario                           *decimal.Decimal
		idRol                             *int64
		rolNombre, rolDescripcion         *string
	)
	err := row.Scan(
		&id, &u.Nombres, &u.Apellidos, &tipo, &numero,
		&fechaNacimiento, &direccion, &telefono, &u.CorreoElectronico, &salario,
		&idRol, &rolNombre, &rolDescripcion,
	)
	if err != nil {
		return nil, err
	}
	u.IDUsuario = &id
	u.TipoDocumento = derefString(tipo)
	u.NumeroDocumento = derefString(numero)
	u.FechaNacimiento = fechaNacimiento
	u.Direccion = derefString(direccion)
	u.Telefono = derefString(telefono)
	u.SalarioBase = salario
	if idRol != nil {
		u.Rol = &entity.Rol{
			IDRol:       *idRol,
			Nombre:      derefString(rolNombre),
			Descripcion: derefString(rolDescripcion),
		}
	}
	return &u, nil
}
