package handler

import (
	"net/http"

	"github.com/RosaLopezC/D05/internal/apierror"
	"github.com/RosaLopezC/D05/internal/dto"
	"github.com/RosaLopezC/D05/internal/service"

	"github.com/gin-gonic/gin"
)

type DetalleVentasHandler struct {
	svc         service.DetalleVentaService
	rutaUploads string
}

func NewDetalleVentasHandler(svc service.DetalleVentaService, rutaUploads string) *DetalleVentasHandler {
	return &DetalleVentasHandler{svc: svc, rutaUploads: rutaUploads}
}

func (h *DetalleVentasHandler) Crear(c *gin.Context) {
	var req dto.CrearDetalleVentaRequest
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

func (h *DetalleVentasHandler) Listar(c *gin.Context) {
	var f dto.DetalleVentaFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar detalles de venta"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DetalleVentasHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Detalle de venta no encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DetalleVentasHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarDetalleVentaRequest
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

func (h *DetalleVentasHandler) Eliminar(c *gin.Context) {
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

func (h *DetalleVentasHandler) Exportar(c *gin.Context) {
	var f dto.DetalleVentaFilter
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
		c.JSON(http.StatusInternalServerError, apierror.New("Error al exportar detalles de venta"))
		return
	}
	responderXLSX(c, datos)
}

func (h *DetalleVentasHandler) Importar(c *gin.Context) {
	importarDesdeArchivo(c, h.rutaUploads, "detalle_ventas", h.svc)
}
