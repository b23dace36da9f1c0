package model

import "time"

// Categoria agrupa productos. Borrar una categoría arrastra sus productos
// (FK ON DELETE CASCADE declarada del lado de Producto).
type Categoria struct {
	ID      uint      `gorm:"primaryKey"`
	Nombre  string    `gorm:"size:200;not null"`
	PubDate time.Time `gorm:"column:pub_date;not null"`
}

// TableName overrides GORM's default singular → plural logic for Spanish names.
func (Categoria) TableName() string { return "categorias" }
