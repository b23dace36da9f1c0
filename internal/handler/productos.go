package handler

import (
	"net/http"

	"github.com/RosaLopezC/D05/internal/apierror"
	"github.com/RosaLopezC/D05/internal/dto"
	"github.com/RosaLopezC/D05/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductosHandler struct {
	svc         service.ProductoService
	rutaUploads string
}

func NewProductosHandler(svc service.ProductoService, rutaUploads string) *ProductosHandler {
	return &ProductosHandler{svc: svc, rutaUploads: rutaUploads}
}

func (h *ProductosHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProductosHandler) Listar(c *gin.Context) {
	var f dto.ProductoFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar productos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductosHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Producto no encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductosHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// StockMasivo applies the "reponer" or "agotar" action to the selected ids in
// a single statement.
func (h *ProductosHandler) StockMasivo(c *gin.Context) {
	var req dto.StockMasivoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.StockMasivo(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductosHandler) Exportar(c *gin.Context) {
	var f dto.ProductoFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	req, ok := bindExportRequest(c)
	if !ok {
		return
	}
	datos, err := h.svc.Exportar(c.Request.Context(), f, req.IDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al exportar productos"))
		return
	}
	responderXLSX(c, datos)
}

func (h *ProductosHandler) Importar(c *gin.Context) {
	importarDesdeArchivo(c, h.rutaUploads, "productos", h.svc)
}
