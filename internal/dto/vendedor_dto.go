package dto

type CrearVendedorRequest struct {
	Nombre   string `json:"nombre"   validate:"required,max=200"`
	Apellido string `json:"apellido" validate:"required,max=200"`
	Telefono string `json:"telefono" validate:"required,max=15"`
	Email    string `json:"email"    validate:"required,email"`
}

type ActualizarVendedorRequest struct {
	Nombre   *string `json:"nombre"   validate:"omitempty,max=200"`
	Apellido *string `json:"apellido" validate:"omitempty,max=200"`
	Telefono *string `json:"telefono" validate:"omitempty,max=15"`
	Email    *string `json:"email"    validate:"omitempty,email"`
}

type VendedorFilter struct {
	Q               string `form:"q"`
	InicialApellido string `form:"inicial_apellido"`
	Page            int    `form:"page,default=1"   validate:"min=1"`
	Limit           int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type VendedorResponse struct {
	ID       uint   `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Telefono string `json:"telefono"`
	Email    string `json:"email"`
}

type VendedorListResponse struct {
	Data  []VendedorResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
