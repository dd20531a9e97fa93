package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PinComercioIndex is the unique index on (pin, comercio_id)
const PinComercioIndex = "main_empleado_pin_comercio_id_uniq"

// Empleado is an employee owned by exactly one Comercio
type Empleado struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UUID          uuid.UUID `json:"uuid" gorm:"column:uuid;type:uuid;not null;index"`
	Nombre        string    `json:"nombre" gorm:"type:varchar(40);not null"`
	Apellidos     string    `json:"apellidos" gorm:"type:varchar(40);not null"`
	Pin           string    `json:"pin" gorm:"type:varchar(6);not null;uniqueIndex:main_empleado_pin_comercio_id_uniq,priority:1"`
	FechaCreacion time.Time `json:"fecha_creacion" gorm:"not null"`
	Activo        bool      `json:"activo" gorm:"not null;default:true"`
	ComercioID    uint      `json:"comercio_id" gorm:"not null;index;uniqueIndex:main_empleado_pin_comercio_id_uniq,priority:2"`

	// NombreCompleto is derived, never stored.
	NombreCompleto string `json:"nombre_completo" gorm:"-"`
}

// TableName keeps the table name used by the existing database
func (Empleado) TableName() string {
	return "main_empleado"
}

// BeforeCreate assigns the public UUID and creation time
func (e *Empleado) BeforeCreate(tx *gorm.DB) error {
	if e.UUID == uuid.Nil {
		e.UUID = uuid.New()
	}
	if e.FechaCreacion.IsZero() {
		e.FechaCreacion = time.Now().UTC()
	}
	return nil
}

// FullName returns NombreCompleto, deriving it from nombre and apellidos when
// it has not been set.
func (e *Empleado) FullName() string {
	if e.NombreCompleto != "" {
		return e.NombreCompleto
	}
	return fmt.Sprintf("%s %s", e.Nombre, e.Apellidos)
}
