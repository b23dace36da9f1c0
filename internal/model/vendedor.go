package model

// Vendedor is a seller. Deleting a Vendedor cascades to their Ventas.
type Vendedor struct {
	ID       uint   `gorm:"primaryKey"`
	Nombre   string `gorm:"size:200;not null"`
	Apellido string `gorm:"size:200;not null"`
	Telefono string `gorm:"size:15;not null"`
	Email    string `gorm:"size:254;not null"`
}

func (Vendedor) TableName() string { return "vendedores" }
