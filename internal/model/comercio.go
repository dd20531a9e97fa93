package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comercio is a tenant. It owns its empleados and authenticates with ApiKey.
type Comercio struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	UUID             uuid.UUID `json:"uuid" gorm:"column:uuid;type:uuid;not null"`
	Nombre           string    `json:"nombre" gorm:"type:varchar(100);not null"`
	Activo           bool      `json:"activo" gorm:"not null;default:true"`
	EmailContacto    string    `json:"email_contacto" gorm:"type:varchar(50)"`
	TelefonoContacto string    `json:"telefono_contacto" gorm:"type:varchar(15)"`
	APIKey           uuid.UUID `json:"-" gorm:"column:api_key;type:uuid;not null;uniqueIndex"`
	FechaCreacion    time.Time `json:"fecha_creacion" gorm:"not null"`

	Empleados []Empleado `json:"-" gorm:"foreignKey:ComercioID"`
}

// TableName keeps the table name used by the existing database
func (Comercio) TableName() string {
	return "main_comercio"
}

// BeforeCreate assigns identifiers and creation time when missing
func (c *Comercio) BeforeCreate(tx *gorm.DB) error {
	if c.UUID == uuid.Nil {
		c.UUID = uuid.New()
	}
	if c.APIKey == uuid.Nil {
		c.APIKey = uuid.New()
	}
	if c.FechaCreacion.IsZero() {
		c.FechaCreacion = time.Now().UTC()
	}
	return nil
}
