package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CrearVentaRequest struct {
	ClienteID  uint            `json:"cliente_id"  validate:"required"`
	VendedorID uint            `json:"vendedor_id" validate:"required"`
	FechaVenta time.Time       `json:"fecha_venta" validate:"required"`
	TotalVenta decimal.Decimal `json:"total_venta" validate:"required"`
}

type ActualizarVentaRequest struct {
	ClienteID  *uint            `json:"cliente_id"`
	VendedorID *uint            `json:"vendedor_id"`
	FechaVenta *time.Time       `json:"fecha_venta"`
	TotalVenta *decimal.Decimal `json:"total_venta"`
}

type VentaFilter struct {
	Q     string `form:"q"`
	Page  int    `form:"page,default=1"   validate:"min=1"`
	Limit int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// VentaResponse carries both the stored total and the one recomputed from the
// detalle lines. The two are allowed to diverge; the calculated column exists
// so the listing can show the drift.
type VentaResponse struct {
	ID                  uint            `json:"id"`
	ClienteID           uint            `json:"cliente_id"`
	VendedorID          uint            `json:"vendedor_id"`
	FechaVenta          time.Time       `json:"fecha_venta"`
	TotalVenta          decimal.Decimal `json:"total_venta"`
	TotalVentaCalculado decimal.Decimal `json:"total_venta_calculado"`
}

type VentaListResponse struct {
	Data  []VentaResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

// ─── Detalle de venta ────────────────────────────────────────────────────────

type CrearDetalleVentaRequest struct {
	VentaID         uint            `json:"venta_id"         validate:"required"`
	ProductoID      uint            `json:"producto_id"      validate:"required"`
	CantidadVendida int             `json:"cantidad_vendida" validate:"required"`
	PrecioUnitario  decimal.Decimal `json:"precio_unitario"  validate:"required"`
}

type ActualizarDetalleVentaRequest struct {
	VentaID         *uint            `json:"venta_id"`
	ProductoID      *uint            `json:"producto_id"`
	CantidadVendida *int             `json:"cantidad_vendida"`
	PrecioUnitario  *decimal.Decimal `json:"precio_unitario"`
}

type DetalleVentaFilter struct {
	Q       string `form:"q"`
	VentaID uint   `form:"venta_id"`
	Page    int    `form:"page,default=1"   validate:"min=1"`
	Limit   int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type DetalleVentaResponse struct {
	ID              uint            `json:"id"`
	VentaID         uint            `json:"venta_id"`
	ProductoID      uint            `json:"producto_id"`
	CantidadVendida int             `json:"cantidad_vendida"`
	PrecioUnitario  decimal.Decimal `json:"precio_unitario"`
}

type DetalleVentaListResponse struct {
	Data  []DetalleVentaResponse `json:"data"`
	Total int64                  `json:"total"`
	Page  int                    `json:"page"`
	Limit int                    `json:"limit"`
}
