package metrics_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/usuarios-api/internal/domain"
	"github.com/jhoicas/usuarios-api/internal/domain/usuario"
	"github.com/jhoicas/usuarios-api/internal/infrastructure/metrics"
)

func TestResultado(t *testing.T) {
	casos := map[string]error{
		metrics.ResultadoOK:        nil,
		metrics.ResultadoInvalido:  usuario.RequiredField(usuario.CampoNombres),
		metrics.ResultadoConflicto: usuario.ErrCorreoDuplicado,
		metrics.ResultadoNoExiste:  usuario.NoEncontradoPorCorreo("x@y.co"),
		metrics.ResultadoCancelado: context.Canceled,
		metrics.ResultadoError:     fmt.Errorf("%w: guardar: %w", domain.ErrGatewayFailure, errors.New("boom")),
	}
	for esperado, err := range casos {
		assert.Equal(t, esperado, metrics.Resultado(err), "err=%v", err)
	}
}

func TestObserveRegistroYConsulta(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.ObserveRegistro(time.Now(), nil)
	m.ObserveRegistro(time.Now(), usuario.ErrCorreoDuplicado)
	m.ObserveRegistro(time.Now(), usuario.ErrCorreoDuplicado)
	m.ObserveConsulta("correo", usuario.ErrUsuarioNoEncontrado)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Registros.WithLabelValues(metrics.ResultadoOK)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Registros.WithLabelValues(metrics.ResultadoConflicto)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Consultas.WithLabelValues("correo", metrics.ResultadoNoExiste)))
}
