package model

import "github.com/shopspring/decimal"

// DetalleVenta is one line of a Venta. PrecioUnitario is the price at the
// moment of sale, not a live reference to Producto.Precio.
type DetalleVenta struct {
	ID              uint            `gorm:"primaryKey"`
	VentaID         uint            `gorm:"not null;index"`
	ProductoID      uint            `gorm:"not null;index"`
	CantidadVendida int             `gorm:"not null"`
	PrecioUnitario  decimal.Decimal `gorm:"type:decimal(6,2);not null"`

	Venta    Venta    `gorm:"foreignKey:VentaID;constraint:OnDelete:CASCADE"`
	Producto Producto `gorm:"foreignKey:ProductoID;constraint:OnDelete:CASCADE"`
}

func (DetalleVenta) TableName() string { return "detalle_ventas" }
