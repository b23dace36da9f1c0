package handler

import (
	"net/http"

	"github.com/RosaLopezC/D05/internal/apierror"
	"github.com/RosaLopezC/D05/internal/dto"
	"github.com/RosaLopezC/D05/internal/service"

	"github.com/gin-gonic/gin"
)

type ClientesHandler struct {
	svc         service.ClienteService
	rutaUploads string
}

func NewClientesHandler(svc service.ClienteService, rutaUploads string) *ClientesHandler {
	return &ClientesHandler{svc: svc, rutaUploads: rutaUploads}
}

func (h *ClientesHandler) Crear(c *gin.Context) {
	var req dto.CrearClienteRequest
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

func (h *ClientesHandler) Listar(c *gin.Context) {
	var f dto.ClienteFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar clientes"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClientesHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Cliente no encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClientesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarClienteRequest
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

func (h *ClientesHandler) Eliminar(c *gin.Context) {
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

func (h *ClientesHandler) Exportar(c *gin.Context) {
	var f dto.ClienteFilter
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
		c.JSON(http.StatusInternalServerError, apierror.New("Error al exportar clientes"))
		return
	}
	responderXLSX(c, datos)
}

func (h *ClientesHandler) Importar(c *gin.Context) {
	importarDesdeArchivo(c, h.rutaUploads, "clientes", h.svc)
}
