package handler

import (
	"net/http"

	"github.com/RosaLopezC/D05/internal/exchange"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the listing registry so clients can render the back
// office without hard-coding columns, filters and actions.
type AdminHandler struct {
	registro []exchange.Esquema
}

func NewAdminHandler(registro []exchange.Esquema) *AdminHandler {
	return &AdminHandler{registro: registro}
}

func (h *AdminHandler) Registro(c *gin.Context) {
	c.JSON(http.StatusOK, h.registro)
}
