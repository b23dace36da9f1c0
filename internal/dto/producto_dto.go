package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	CategoriaID      uint            `json:"categoria_id"      validate:"required"`
	Nombre           string          `json:"nombre"            validate:"required,max=200"`
	Descripcion      string          `json:"descripcion"`
	Precio           decimal.Decimal `json:"precio"            validate:"required"`
	Stock            int             `json:"stock"`
	ProveedorID      *uint           `json:"proveedor_id"`
	FechaVencimiento *string         `json:"fecha_vencimiento" validate:"omitempty,datetime=2006-01-02"`
	PubDate          time.Time       `json:"pub_date"          validate:"required"`
}

type ActualizarProductoRequest struct {
	CategoriaID      *uint            `json:"categoria_id"`
	Nombre           *string          `json:"nombre"            validate:"omitempty,max=200"`
	Descripcion      *string          `json:"descripcion"`
	Precio           *decimal.Decimal `json:"precio"`
	Stock            *int             `json:"stock"`
	ProveedorID      *uint            `json:"proveedor_id"`
	FechaVencimiento *string          `json:"fecha_vencimiento" validate:"omitempty,datetime=2006-01-02"`
	PubDate          *time.Time       `json:"pub_date"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

// ProductoFilter binds the listing query string. The filter param names are
// the stable contract of the productos listing; values outside a filter's
// option set act as "no selection".
type ProductoFilter struct {
	Q               string `form:"q"`
	ProveedorID     string `form:"proveedor_id"`
	Vencimiento     string `form:"vencimiento"`
	AnioVencimiento string `form:"año_vencimiento"`
	MesVencimiento  int    `form:"mes_vencimiento"`
	AnioPublicacion string `form:"año_publicacion"`
	MesPublicacion  int    `form:"mes_publicacion"`
	StockCero       string `form:"stock_0"`
	PrecioRango     string `form:"precio_rango"`
	Page            int    `form:"page,default=1"   validate:"min=1"`
	Limit           int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Bulk stock actions ──────────────────────────────────────────────────────

const (
	AccionReponerStock = "reponer" // stock = 100
	AccionAgotarStock  = "agotar"  // stock = 0
)

type StockMasivoRequest struct {
	IDs    []uint `json:"ids"    validate:"required,min=1"`
	Accion string `json:"accion" validate:"required,oneof=reponer agotar"`
}

type StockMasivoResponse struct {
	Actualizados int64 `json:"actualizados"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID               uint            `json:"id"`
	CategoriaID      uint            `json:"categoria_id"`
	Nombre           string          `json:"nombre"`
	Descripcion      string          `json:"descripcion"`
	Precio           decimal.Decimal `json:"precio"`
	Stock            int             `json:"stock"`
	ProveedorID      *uint           `json:"proveedor_id"`
	FechaVencimiento *string         `json:"fecha_vencimiento"`
	PubDate          time.Time       `json:"pub_date"`
}

type ProductoListResponse struct {
	Data  []ProductoResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
