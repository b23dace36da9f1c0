package model

import "time"

// Cliente is a customer. DNI is globally unique (fixed 8 chars).
// Deleting a Cliente cascades to their Ventas.
type Cliente struct {
	ID              uint      `gorm:"primaryKey"`
	Nombre          string    `gorm:"size:200;not null"`
	Apellido        string    `gorm:"size:200;not null"`
	DNI             string    `gorm:"column:dni;size:8;uniqueIndex;not null"`
	Direccion       string    `gorm:"size:200;not null"`
	Telefono        string    `gorm:"size:9;not null"`
	Email           string    `gorm:"size:254;not null"`
	FechaNacimiento time.Time `gorm:"type:date;not null"`
	PubDate         time.Time `gorm:"column:pub_date;not null"`
}

func (Cliente) TableName() string { return "clientes" }
