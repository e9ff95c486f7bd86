package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code      string    `json:"code"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
	Details   []string  `json:"details,omitempty"`
}

// LayoutFecha formato de fechas sin hora en el contrato JSON.
const LayoutFecha = "2006-01-02"

// Fecha fecha calendario serializada como "YYYY-MM-DD".
type Fecha time.Time

// UnmarshalJSON acepta "YYYY-MM-DD" o null.
func (f *Fecha) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("fecha: se esperaba texto YYYY-MM-DD")
	}
	t, err := time.Parse(LayoutFecha, raw)
	if err != nil {
		return fmt.Errorf("fecha %q: se esperaba YYYY-MM-DD", raw)
	}
	*f = Fecha(t)
	return nil
}

// MarshalJSON escribe "YYYY-MM-DD".
func (f Fecha) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(f).Format(LayoutFecha))
}

// Time devuelve la fecha como time.Time (o nil).
func (f *Fecha) Time() *time.Time {
	if f == nil {
		return nil
	}
	t := time.Time(*f)
	return &t
}

// FechaDesde convierte un *time.Time del dominio (nil se conserva).
func FechaDesde(t *time.Time) *Fecha {
	if t == nil {
		return nil
	}
	f := Fecha(*t)
	return &f
}
