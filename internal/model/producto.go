package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto always belongs to exactly one Categoria and optionally to one
// Proveedor. Stock defaults to 0 and is intentionally unconstrained: the
// bulk actions only ever write 0 or a fixed positive value, but nothing at
// the store level forbids other integers.
type Producto struct {
	ID               uint            `gorm:"primaryKey"`
	CategoriaID      uint            `gorm:"not null;index"`
	Nombre           string          `gorm:"size:200;not null"`
	Descripcion      string          `gorm:"type:text"`
	Precio           decimal.Decimal `gorm:"type:decimal(6,2);not null"`
	Stock            int             `gorm:"not null;default:0"`
	ProveedorID      *uint           `gorm:"index"`
	FechaVencimiento *time.Time      `gorm:"type:date"`
	PubDate          time.Time       `gorm:"column:pub_date;not null"`

	Categoria Categoria  `gorm:"foreignKey:CategoriaID;constraint:OnDelete:CASCADE"`
	Proveedor *Proveedor `gorm:"foreignKey:ProveedorID;constraint:OnDelete:SET NULL"`
}

func (Producto) TableName() string { return "productos" }
