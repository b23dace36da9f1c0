package handler

import (
	"net/http"

	"github.com/RosaLopezC/D05/internal/apierror"
	"github.com/RosaLopezC/D05/internal/dto"
	"github.com/RosaLopezC/D05/internal/service"

	"github.com/gin-gonic/gin"
)

type ProveedoresHandler struct {
	svc         service.ProveedorService
	productoSvc service.ProductoService
	rutaUploads string
}

func NewProveedoresHandler(svc service.ProveedorService, productoSvc service.ProductoService, rutaUploads string) *ProveedoresHandler {
	return &ProveedoresHandler{svc: svc, productoSvc: productoSvc, rutaUploads: rutaUploads}
}

func (h *ProveedoresHandler) Crear(c *gin.Context) {
	var req dto.CrearProveedorRequest
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

func (h *ProveedoresHandler) Listar(c *gin.Context) {
	var f dto.ProveedorFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar proveedores"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProveedoresHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Proveedor no encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarProductos answers "all products supplied by X".
func (h *ProveedoresHandler) ListarProductos(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.svc.ObtenerPorID(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Proveedor no encontrado"))
		return
	}
	productos, err := h.productoSvc.ListarPorProveedor(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar productos del proveedor"))
		return
	}
	c.JSON(http.StatusOK, productos)
}

func (h *ProveedoresHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarProveedorRequest
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

func (h *ProveedoresHandler) Eliminar(c *gin.Context) {
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

func (h *ProveedoresHandler) Exportar(c *gin.Context) {
	var f dto.ProveedorFilter
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
		c.JSON(http.StatusInternalServerError, apierror.New("Error al exportar proveedores"))
		return
	}
	responderXLSX(c, datos)
}

func (h *ProveedoresHandler) Importar(c *gin.Context) {
	importarDesdeArchivo(c, h.rutaUploads, "proveedores", h.svc)
}
