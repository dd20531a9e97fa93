package dto

import (
	"strings"
	"time"

	"github.com/zykorwx/dapp/internal/model"
)

// MsgOk is the message of every successful envelope
const MsgOk = "Ok"

// timestampLayout renders timestamps with microseconds and a literal Z
const timestampLayout = "2006-01-02T15:04:05.000000Z"

// Envelope wraps every response body, successful or not
type Envelope struct {
	RC   int    `json:"rc"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

// Ok builds a successful envelope around data
func Ok(data any) Envelope {
	return Envelope{RC: 0, Msg: MsgOk, Data: data}
}

// Timestamp serializes as UTC with microsecond precision
type Timestamp time.Time

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).UTC().Format(timestampLayout) + `"`), nil
}

// EmpleadoView is the public representation of an employee. nombre,
// apellidos and uuid are kept internal.
type EmpleadoView struct {
	ID             string    `json:"id"`
	NombreCompleto string    `json:"nombre_completo"`
	Pin            string    `json:"pin"`
	FechaCreacion  Timestamp `json:"fecha_creacion"`
	Activo         bool      `json:"activo"`
}

// NewEmpleadoView maps a stored employee to its public view
func NewEmpleadoView(e *model.Empleado) EmpleadoView {
	return EmpleadoView{
		ID:             e.UUID.String(),
		NombreCompleto: e.FullName(),
		Pin:            e.Pin,
		FechaCreacion:  Timestamp(e.FechaCreacion),
		Activo:         e.Activo,
	}
}

// NewEmpleadoViews maps a list, never returning nil so it encodes as []
func NewEmpleadoViews(empleados []model.Empleado) []EmpleadoView {
	views := make([]EmpleadoView, 0, len(empleados))
	for i := range empleados {
		views = append(views, NewEmpleadoView(&empleados[i]))
	}
	return views
}

// ComercioView is what the admin surface returns for a comercio
type ComercioView struct {
	ID               string    `json:"id"`
	Nombre           string    `json:"nombre"`
	Activo           bool      `json:"activo"`
	EmailContacto    string    `json:"email_contacto,omitempty"`
	TelefonoContacto string    `json:"telefono_contacto,omitempty"`
	APIKey           string    `json:"api_key"`
	FechaCreacion    Timestamp `json:"fecha_creacion"`
}

// NewComercioView maps a comercio; the API key is rendered in hex form, the
// same form clients send as the Basic-Auth username.
func NewComercioView(c *model.Comercio) ComercioView {
	return ComercioView{
		ID:               c.UUID.String(),
		Nombre:           c.Nombre,
		Activo:           c.Activo,
		EmailContacto:    c.EmailContacto,
		TelefonoContacto: c.TelefonoContacto,
		APIKey:           HexKey(c.APIKey.String()),
		FechaCreacion:    Timestamp(c.FechaCreacion),
	}
}

// NewComercioViews maps a list of comercios
func NewComercioViews(comercios []model.Comercio) []ComercioView {
	views := make([]ComercioView, 0, len(comercios))
	for i := range comercios {
		views = append(views, NewComercioView(&comercios[i]))
	}
	return views
}

// HexKey strips the dashes of a canonical UUID string
func HexKey(s string) string {
	return strings.ReplaceAll(s, "-", "")
}
