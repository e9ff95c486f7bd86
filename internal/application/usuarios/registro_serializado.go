package usuarios

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/usuarios-api/internal/domain"
	"github.com/jhoicas/usuarios-api/internal/domain/entity"
	"github.com/jhoicas/usuarios-api/pkg/logger"
)

// ErrRegistroEnCurso se devuelve cuando otro registro con el mismo correo o documento
// tiene tomado el bloqueo.
var ErrRegistroEnCurso = domain.Wrap(domain.ErrConflict,
	"Ya hay un registro en curso con este correo electrónico o documento. Intente nuevamente.")

// Bloqueador es un bloqueo exclusivo por clave con expiración (Redis en producción).
type Bloqueador interface {
	Adquirir(ctx context.Context, clave string, ttl time.Duration) (token string, ok bool, err error)
	Liberar(ctx context.Context, clave, token string) error
}

// RegistroSerializado decora un Registrador tomando un bloqueo por correo y por documento
// mientras dura el registro. Cierra la ventana verificar-y-luego-escribir entre instancias.
type RegistroSerializado struct {
	next  Registrador
	locks Bloqueador
	ttl   time.Duration
	log   *logger.Logger
}

var _ Registrador = (*RegistroSerializado)(nil)

// NewRegistroSerializado envuelve next. ttl acota cuánto vive un bloqueo si el proceso muere.
func NewRegistroSerializado(next Registrador, locks Bloqueador, ttl time.Duration, log *logger.Logger) *RegistroSerializado {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &RegistroSerializado{next: next, locks: locks, ttl: ttl, log: log.Named("registro_serializado")}
}

// Registrar toma los bloqueos (correo primero, luego documento), delega y los libera.
func (r *RegistroSerializado) Registrar(ctx context.Context, candidato *entity.Usuario) (*entity.Usuario, error) {
	if candidato == nil {
		return r.next.Registrar(ctx, candidato)
	}

	claves := clavesIdentidad(candidato)
	tomadas := make(map[string]string, len(claves))
	defer func() {
		// Se libera aunque el contexto del request ya esté cancelado.
		rctx := context.WithoutCancel(ctx)
		for clave, token := range tomadas {
			if err := r.locks.Liberar(rctx, clave, token); err != nil {
				r.log.Warn().Err(err).Str("clave", clave).Msg("No se pudo liberar el bloqueo de registro")
			}
		}
	}()

	for _, clave := range claves {
		token, ok, err := r.locks.Adquirir(ctx, clave, r.ttl)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: bloqueo de registro: %w", domain.ErrGatewayFailure, err)
		}
		if !ok {
			r.log.Info().Str("clave", clave).Msg("Registro concurrente detectado")
			return nil, ErrRegistroEnCurso
		}
		tomadas[clave] = token
	}

	return r.next.Registrar(ctx, candidato)
}

// clavesIdentidad en orden fijo para que dos registros no se bloqueen mutuamente.
func clavesIdentidad(u *entity.Usuario) []string {
	claves := make([]string, 0, 2)
	if u.CorreoElectronico != "" {
		claves = append(claves, "correo:"+u.CorreoElectronico)
	}
	if u.TipoDocumento != "" || u.NumeroDocumento != "" {
		claves = append(claves, "documento:"+u.TipoDocumento+":"+u.NumeroDocumento)
	}
	return claves
}
