package dto

type CrearProveedorRequest struct {
	Nombre           string `json:"nombre"            validate:"required,max=200"`
	ContactoNombre   string `json:"contacto_nombre"   validate:"required,max=200"`
	ContactoTelefono string `json:"contacto_telefono" validate:"required,max=15"`
	ContactoEmail    string `json:"contacto_email"    validate:"required,email"`
	Direccion        string `json:"direccion"         validate:"required,max=200"`
}

type ActualizarProveedorRequest struct {
	Nombre           *string `json:"nombre"            validate:"omitempty,max=200"`
	ContactoNombre   *string `json:"contacto_nombre"   validate:"omitempty,max=200"`
	ContactoTelefono *string `json:"contacto_telefono" validate:"omitempty,max=15"`
	ContactoEmail    *string `json:"contacto_email"    validate:"omitempty,email"`
	Direccion        *string `json:"direccion"         validate:"omitempty,max=200"`
}

type ProveedorFilter struct {
	Q         string `form:"q"`
	Direccion string `form:"direccion"`
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type ProveedorResponse struct {
	ID               uint   `json:"id"`
	Nombre           string `json:"nombre"`
	ContactoNombre   string `json:"contacto_nombre"`
	ContactoTelefono string `json:"contacto_telefono"`
	ContactoEmail    string `json:"contacto_email"`
	Direccion        string `json:"direccion"`
}

type ProveedorListResponse struct {
	Data  []ProveedorResponse `json:"data"`
	Total int64               `json:"total"`
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
}
