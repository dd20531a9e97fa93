package dto

import (
	"encoding/json"
	"fmt"

	"github.com/zykorwx/dapp/internal/model"
)

// FlagKind tells which JSON type was received for a flag
type FlagKind uint8

const (
	FlagAbsent FlagKind = iota
	FlagNull
	FlagBool
	FlagNumber
	FlagString
	FlagComposite // array or object
)

// inactiveLiteral is the only input that switches an employee off
const inactiveLiteral = "0"

// ActiveFlag keeps the raw shape of the "activo" field so the legacy rule can
// be applied: only the JSON string "0" means inactive.
type ActiveFlag struct {
	kind FlagKind
	str  string
	raw  string
}

// UnmarshalJSON records the JSON type of the value. encoding/json calls it
// for null as well, which is how null and absent are told apart.
func (f *ActiveFlag) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return fmt.Errorf("activo: empty value")
	}
	f.raw = string(b)
	switch b[0] {
	case 'n':
		f.kind = FlagNull
	case 't', 'f':
		f.kind = FlagBool
	case '"':
		f.kind = FlagString
		if err := json.Unmarshal(b, &f.str); err != nil {
			return fmt.Errorf("activo: %w", err)
		}
	case '[', '{':
		f.kind = FlagComposite
	default:
		f.kind = FlagNumber
	}
	return nil
}

// Kind returns the JSON type that was received
func (f ActiveFlag) Kind() FlagKind {
	return f.kind
}

// Present reports whether the key was sent, null included
func (f ActiveFlag) Present() bool {
	return f.kind != FlagAbsent
}

// Active applies the legacy rule
func (f ActiveFlag) Active() bool {
	return !(f.kind == FlagString && f.str == inactiveLiteral)
}

// String returns the raw JSON text, for logging
func (f ActiveFlag) String() string {
	if f.kind == FlagAbsent {
		return "<absent>"
	}
	return f.raw
}

// ActiveFlagFromString builds a string-typed flag, as if "activo" had been
// sent as that JSON string.
func ActiveFlagFromString(s string) ActiveFlag {
	b, _ := json.Marshal(s)
	return ActiveFlag{kind: FlagString, str: s, raw: string(b)}
}

// NullActiveFlag builds a flag as if "activo": null had been sent
func NullActiveFlag() ActiveFlag {
	return ActiveFlag{kind: FlagNull, raw: "null"}
}

// NewEmpleadoRequest is the body of POST /empleados
type NewEmpleadoRequest struct {
	Nombre    string `json:"nombre" validate:"required,max=40"`
	Apellidos string `json:"apellidos" validate:"required,max=40"`
	Pin       string `json:"pin" validate:"required,max=6"`
}

// ToModel builds the row to insert under comercioID
func (r NewEmpleadoRequest) ToModel(comercioID uint) *model.Empleado {
	return &model.Empleado{
		Nombre:     r.Nombre,
		Apellidos:  r.Apellidos,
		Pin:        r.Pin,
		Activo:     true,
		ComercioID: comercioID,
	}
}

// UpdateEmpleadoRequest is the body of PUT /empleados/{uuid}. Activo must be
// present even when null.
type UpdateEmpleadoRequest struct {
	Nombre    string     `json:"nombre" validate:"required,max=40"`
	Apellidos string     `json:"apellidos" validate:"required,max=40"`
	Pin       string     `json:"pin" validate:"required,max=6"`
	Activo    ActiveFlag `json:"activo"`
}

// Apply copies the editable fields onto an existing row
func (r UpdateEmpleadoRequest) Apply(e *model.Empleado) {
	e.Nombre = r.Nombre
	e.Apellidos = r.Apellidos
	e.Pin = r.Pin
	e.Activo = r.Activo.Active()
	e.NombreCompleto = ""
}

// NewComercioRequest is the body of POST /admin/comercios
type NewComercioRequest struct {
	Nombre           string `json:"nombre" validate:"required,max=100"`
	EmailContacto    string `json:"email_contacto" validate:"omitempty,email,max=50"`
	TelefonoContacto string `json:"telefono_contacto" validate:"omitempty,max=15"`
}

// ToModel builds the comercio row to insert
func (r NewComercioRequest) ToModel() *model.Comercio {
	return &model.Comercio{
		Nombre:           r.Nombre,
		Activo:           true,
		EmailContacto:    r.EmailContacto,
		TelefonoContacto: r.TelefonoContacto,
	}
}
