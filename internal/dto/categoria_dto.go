package dto

import "time"

type CrearCategoriaRequest struct {
	Nombre  string    `json:"nombre"   validate:"required,max=200"`
	PubDate time.Time `json:"pub_date" validate:"required"`
}

type ActualizarCategoriaRequest struct {
	Nombre  *string    `json:"nombre"   validate:"omitempty,max=200"`
	PubDate *time.Time `json:"pub_date"`
}

type CategoriaFilter struct {
	Q     string `form:"q"`
	Page  int    `form:"page,default=1"   validate:"min=1"`
	Limit int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type CategoriaResponse struct {
	ID      uint      `json:"id"`
	Nombre  string    `json:"nombre"`
	PubDate time.Time `json:"pub_date"`
}

type CategoriaListResponse struct {
	Data  []CategoriaResponse `json:"data"`
	Total int64               `json:"total"`
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
}
