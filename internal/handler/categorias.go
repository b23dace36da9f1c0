package handler

import (
	"net/http"

	"github.com/RosaLopezC/D05/internal/apierror"
	"github.com/RosaLopezC/D05/internal/dto"
	"github.com/RosaLopezC/D05/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoriasHandler struct {
	svc         service.CategoriaService
	productoSvc service.ProductoService
}

func NewCategoriasHandler(svc service.CategoriaService, productoSvc service.ProductoService) *CategoriasHandler {
	return &CategoriasHandler{svc: svc, productoSvc: productoSvc}
}

func (h *CategoriasHandler) Crear(c *gin.Context) {
	var req dto.CrearCategoriaRequest
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

func (h *CategoriasHandler) Listar(c *gin.Context) {
	var f dto.CategoriaFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar categorias"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CategoriasHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Categoria no encontrada"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarProductos answers "all products of category X".
func (h *CategoriasHandler) ListarProductos(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.svc.ObtenerPorID(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Categoria no encontrada"))
		return
	}
	productos, err := h.productoSvc.ListarPorCategoria(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar productos de la categoria"))
		return
	}
	c.JSON(http.StatusOK, productos)
}

func (h *CategoriasHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarCategoriaRequest
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

func (h *CategoriasHandler) Eliminar(c *gin.Context) {
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

func (h *CategoriasHandler) Exportar(c *gin.Context) {
	var f dto.CategoriaFilter
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
		c.JSON(http.StatusInternalServerError, apierror.New("Error al exportar categorias"))
		return
	}
	responderXLSX(c, datos)
}
