// Package redis provee el cliente Redis y el bloqueo distribuido por identidad que
// serializa registros concurrentes con el mismo correo o documento.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/usuarios-api/internal/application/usuarios"
)

const keyPrefix = "usuarios:registro:lock:"

var _ usuarios.Bloqueador = (*Bloqueador)(nil)

// liberarScript borra la clave solo si sigue siendo nuestra (el token coincide).
var liberarScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// Bloqueador implementa usuarios.Bloqueador con SET NX PX.
type Bloqueador struct {
	client redis.UniversalClient
}

// NewBloqueador construye el bloqueador sobre un cliente ya conectado.
func NewBloqueador(client redis.UniversalClient) *Bloqueador {
	return &Bloqueador{client: client}
}

// Adquirir intenta tomar la clave por ttl. Devuelve el token a usar en Liberar,
// o ok=false si otra instancia la tiene.
func (b *Bloqueador) Adquirir(ctx context.Context, clave string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	ok, err := b.client.SetNX(ctx, keyPrefix+clave, token, ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("redis setnx %s: %w", clave, err)
	}
	return token, ok, nil
}

// Liberar suelta la clave si el token sigue siendo el dueño; si expiró y otro la tomó, no hace nada.
func (b *Bloqueador) Liberar(ctx context.Context, clave, token string) error {
	err := liberarScript.Run(ctx, b.client, []string{keyPrefix + clave}, token).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("redis release %s: %w", clave, err)
	}
	return nil
}
