package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/usuarios-api/internal/domain/repository"
)

var _ repository.RolRepository = (*RolRepo)(nil)

// RolRepo implementación de RolRepository sobre PostgreSQL (tabla roles).
type RolRepo struct {
	q Querier
}

// NewRolRepository construye el adaptador de roles.
func NewRolRepository(q Querier) *RolRepo {
	return &RolRepo{q: q}
}

// ExistePorID indica si existe el rol.
func (r *RolRepo) ExistePorID(ctx context.Context, idRol int64) (bool, error) {
	var existe bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM roles WHERE id_rol = $1)`, idRol).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("exists rol: %w", err)
	}
	return existe, nil
}
