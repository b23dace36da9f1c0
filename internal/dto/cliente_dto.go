package dto

import "time"

type CrearClienteRequest struct {
	Nombre          string    `json:"nombre"           validate:"required,max=200"`
	Apellido        string    `json:"apellido"         validate:"required,max=200"`
	DNI             string    `json:"dni"              validate:"required,len=8"`
	Direccion       string    `json:"direccion"        validate:"required,max=200"`
	Telefono        string    `json:"telefono"         validate:"required,max=9"`
	Email           string    `json:"email"            validate:"required,email"`
	FechaNacimiento string    `json:"fecha_nacimiento" validate:"required,datetime=2006-01-02"`
	PubDate         time.Time `json:"pub_date"         validate:"required"`
}

type ActualizarClienteRequest struct {
	Nombre          *string    `json:"nombre"           validate:"omitempty,max=200"`
	Apellido        *string    `json:"apellido"         validate:"omitempty,max=200"`
	DNI             *string    `json:"dni"              validate:"omitempty,len=8"`
	Direccion       *string    `json:"direccion"        validate:"omitempty,max=200"`
	Telefono        *string    `json:"telefono"         validate:"omitempty,max=9"`
	Email           *string    `json:"email"            validate:"omitempty,email"`
	FechaNacimiento *string    `json:"fecha_nacimiento" validate:"omitempty,datetime=2006-01-02"`
	PubDate         *time.Time `json:"pub_date"`
}

// ClienteFilter binds the clientes listing query string.
type ClienteFilter struct {
	Q               string `form:"q"`
	Apellido        string `form:"apellido"`
	InicialApellido string `form:"inicial_apellido"`
	AnioNacimiento  int    `form:"anio_nacimiento"`
	MesNacimiento   int    `form:"mes_nacimiento"`
	Page            int    `form:"page,default=1"   validate:"min=1"`
	Limit           int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type ClienteResponse struct {
	ID              uint      `json:"id"`
	Nombre          string    `json:"nombre"`
	Apellido        string    `json:"apellido"`
	DNI             string    `json:"dni"`
	Direccion       string    `json:"direccion"`
	Telefono        string    `json:"telefono"`
	Email           string    `json:"email"`
	FechaNacimiento string    `json:"fecha_nacimiento"`
	PubDate         time.Time `json:"pub_date"`
}

type ClienteListResponse struct {
	Data  []ClienteResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
