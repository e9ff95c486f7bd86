//go:generate mockgen -source=rol_repository.go -destination=mocks/rol_mocks.go -package=mocks

package repository

import "context"

// RolRepository define el puerto de consulta de roles.
type RolRepository interface {
	ExistePorID(ctx context.Context, idRol int64) (bool, error)
}
