package model

// Proveedor represents a supplier with commercial contact data.
// Deleting one does NOT delete its products: the FK is ON DELETE SET NULL,
// so the products survive with proveedor_id = NULL.
type Proveedor struct {
	ID               uint   `gorm:"primaryKey"`
	Nombre           string `gorm:"size:200;not null"`
	ContactoNombre   string `gorm:"size:200;not null"`
	ContactoTelefono string `gorm:"size:15;not null"`
	ContactoEmail    string `gorm:"size:254;not null"`
	Direccion        string `gorm:"size:200;not null"`

	Productos []Producto `gorm:"foreignKey:ProveedorID"`
}

func (Proveedor) TableName() string { return "proveedores" }
