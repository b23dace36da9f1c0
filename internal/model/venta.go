package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venta references a Cliente and a Vendedor; both FKs cascade, so deleting
// either party deletes the sale (and its detalle lines in turn).
//
// TotalVenta is stored redundantly and is never reconciled against the sum
// of the detalle lines — callers own that consistency.
type Venta struct {
	ID         uint            `gorm:"primaryKey"`
	ClienteID  uint            `gorm:"not null;index"`
	VendedorID uint            `gorm:"not null;index"`
	FechaVenta time.Time       `gorm:"not null"`
	TotalVenta decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Cliente  Cliente  `gorm:"foreignKey:ClienteID;constraint:OnDelete:CASCADE"`
	Vendedor Vendedor `gorm:"foreignKey:VendedorID;constraint:OnDelete:CASCADE"`

	Detalles []DetalleVenta `gorm:"foreignKey:VentaID"`
}

func (Venta) TableName() string { return "ventas" }
