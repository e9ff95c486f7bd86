package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jhoicas/usuarios-api/internal/domain"
)

// Resultados posibles de una operación sobre usuarios.
const (
	ResultadoOK        = "ok"
	ResultadoInvalido  = "invalido"
	ResultadoConflicto = "conflicto"
	ResultadoNoExiste  = "no_encontrado"
	ResultadoError     = "error"
	ResultadoCancelado = "cancelado"
)

// Metrics observabilidad del registro y consulta de usuarios.
type Metrics struct {
	Registros        *prometheus.CounterVec
	Consultas        *prometheus.CounterVec
	RegistroDuration prometheus.Histogram
}

// New registra las métricas en reg (prometheus.DefaultRegisterer en el binario,
// un registro propio en tests).
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Registros: f.NewCounterVec(prometheus.CounterOpts{
			Name: "usuarios_registros_total",
			Help: "Registros de usuario por resultado",
		}, []string{"resultado"}),
		Consultas: f.NewCounterVec(prometheus.CounterOpts{
			Name: "usuarios_consultas_total",
			Help: "Consultas de usuario por criterio y resultado",
		}, []string{"criterio", "resultado"}),
		RegistroDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "usuarios_registro_duration_seconds",
			Help:    "Duración del registro de un usuario (validación, verificaciones y guardado)",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// ObserveRegistro registra el resultado y la duración de un registro.
// Llamar con time.Now() tomado al inicio. Con m nil no hace nada.
func (m *Metrics) ObserveRegistro(start time.Time, err error) {
	if m == nil {
		return
	}
	m.RegistroDuration.Observe(time.Since(start).Seconds())
	m.Registros.WithLabelValues(Resultado(err)).Inc()
}

// ObserveConsulta registra una consulta por criterio (documento | correo).
func (m *Metrics) ObserveConsulta(criterio string, err error) {
	if m == nil {
		return
	}
	m.Consultas.WithLabelValues(criterio, Resultado(err)).Inc()
}

// Resultado clasifica un error del caso de uso en la etiqueta de la métrica.
func Resultado(err error) string {
	switch {
	case err == nil:
		return ResultadoOK
	case errors.Is(err, domain.ErrInvalidInput):
		return ResultadoInvalido
	case errors.Is(err, domain.ErrConflict):
		return ResultadoConflicto
	case errors.Is(err, domain.ErrNotFound):
		return ResultadoNoExiste
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ResultadoCancelado
	}
	return ResultadoError
}
