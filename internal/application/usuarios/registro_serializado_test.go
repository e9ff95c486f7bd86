package usuarios_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/usuarios-api/internal/application/usuarios"
	"github.com/jhoicas/usuarios-api/internal/domain"
	"github.com/jhoicas/usuarios-api/internal/domain/entity"
	"github.com/jhoicas/usuarios-api/pkg/logger"
)

// ── fakes ─────────────────────────────────────────────────────────────────────

type bloqueadorFake struct {
	mu         sync.Mutex
	tomadas    map[string]string
	adquiridas []string
	liberadas  []string
	errAdq     error
}

func newBloqueadorFake() *bloqueadorFake {
	return &bloqueadorFake{tomadas: map[string]string{}}
}

func (b *bloqueadorFake) Adquirir(_ context.Context, clave string, _ time.Duration) (string, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.errAdq != nil {
		return "", false, b.errAdq
	}
	if _, ok := b.tomadas[clave]; ok {
		return "", false, nil
	}
	b.tomadas[clave] = "tok-" + clave
	b.adquiridas = append(b.adquiridas, clave)
	return "tok-" + clave, true, nil
}

func (b *bloqueadorFake) Liberar(_ context.Context, clave, token string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.tomadas[clave] == token {
		delete(b.tomadas, clave)
	}
	b.liberadas = append(b.liberadas, clave)
	return nil
}

type registradorFunc func(ctx context.Context, u *entity.Usuario) (*entity.Usuario, error)

func (f registradorFunc) Registrar(ctx context.Context, u *entity.Usuario) (*entity.Usuario, error) {
	return f(ctx, u)
}

// ── tests ─────────────────────────────────────────────────────────────────────

func TestRegistroSerializado_TomaYLiberaBloqueos(t *testing.T) {
	locks := newBloqueadorFake()
	var durante map[string]string
	next := registradorFunc(func(_ context.Context, u *entity.Usuario) (*entity.Usuario, error) {
		durante = map[string]string{}
		for k, v := range locks.tomadas {
			durante[k] = v
		}
		return u, nil
	})

	in := candidato()
	out, err := usuarios.NewRegistroSerializado(next, locks, time.Second, logger.Nop()).Registrar(context.Background(), in)
	require.NoError(t, err)
	assert.Same(t, in, out)

	assert.Equal(t, []string{"correo:juan.perez@email.com", "documento:CC:12345678"}, locks.adquiridas)
	assert.Len(t, durante, 2, "los bloqueos se mantienen durante el registro")
	assert.Empty(t, locks.tomadas, "se liberan al terminar")
	assert.ElementsMatch(t, locks.adquiridas, locks.liberadas)
}

func TestRegistroSerializado_OcupadoDevuelveConflicto(t *testing.T) {
	locks := newBloqueadorFake()
	locks.tomadas["documento:CC:12345678"] = "otro"
	llamado := false
	next := registradorFunc(func(context.Context, *entity.Usuario) (*entity.Usuario, error) {
		llamado = true
		return nil, nil
	})

	_, err := usuarios.NewRegistroSerializado(next, locks, time.Second, logger.Nop()).Registrar(context.Background(), candidato())
	assert.ErrorIs(t, err, usuarios.ErrRegistroEnCurso)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.False(t, llamado)
	assert.Equal(t, "otro", locks.tomadas["documento:CC:12345678"], "no toca el bloqueo ajeno")
	assert.NotContains(t, locks.tomadas, "correo:juan.perez@email.com", "libera el que sí tomó")
}

func TestRegistroSerializado_ErrorDelBloqueadorEsFallaDeGateway(t *testing.T) {
	locks := newBloqueadorFake()
	locks.errAdq = errors.New("dial tcp: connection refused")
	next := registradorFunc(func(context.Context, *entity.Usuario) (*entity.Usuario, error) {
		t.Fatal("no debe delegar")
		return nil, nil
	})

	_, err := usuarios.NewRegistroSerializado(next, locks, 0, logger.Nop()).Registrar(context.Background(), candidato())
	assert.ErrorIs(t, err, domain.ErrGatewayFailure)
}

func TestRegistroSerializado_PropagaErrorDelRegistro(t *testing.T) {
	locks := newBloqueadorFake()
	next := registradorFunc(func(context.Context, *entity.Usuario) (*entity.Usuario, error) {
		return nil, domain.ErrGatewayFailure
	})

	_, err := usuarios.NewRegistroSerializado(next, locks, time.Second, logger.Nop()).Registrar(context.Background(), candidato())
	assert.ErrorIs(t, err, domain.ErrGatewayFailure)
	assert.Empty(t, locks.tomadas)
}

func TestRegistroSerializado_CandidatoNuloDelega(t *testing.T) {
	locks := newBloqueadorFake()
	next := registradorFunc(func(_ context.Context, u *entity.Usuario) (*entity.Usuario, error) {
		assert.Nil(t, u)
		return nil, domain.ErrInvalidInput
	})

	_, err := usuarios.NewRegistroSerializado(next, locks, time.Second, logger.Nop()).Registrar(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, locks.adquiridas)
}
