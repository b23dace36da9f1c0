package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"strconv"

	"github.com/RosaLopezC/D05/internal/apierror"
	"github.com/RosaLopezC/D05/internal/dto"
	"github.com/RosaLopezC/D05/internal/exchange"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// parseID reads the :id path parameter as an integer record id.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return 0, false
	}
	return uint(id), true
}

// bindExportRequest reads the optional {ids} body of an export action.
// A missing or empty body selects the whole filtered listing.
func bindExportRequest(c *gin.Context) (dto.ExportRequest, bool) {
	var req dto.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return req, false
	}
	return req, true
}

// responderXLSX writes the workbook bytes as the data.xlsx attachment.
func responderXLSX(c *gin.Context, datos []byte) {
	c.Header("Content-Disposition", "attachment; filename="+exchange.ArchivoExportacion)
	c.Data(http.StatusOK, exchange.ContentTypeXLSX, datos)
}

// importador is the slice of a service an import endpoint needs.
type importador interface {
	Importar(ctx context.Context, filas []exchange.Fila) (int, error)
}

// importarDesdeArchivo runs the import flow shared by every importable
// listing: save the upload to durable storage, parse it, upsert row by row,
// then redirect back to the listing. A request without a file is a no-op
// that re-presents the upload prompt.
func importarDesdeArchivo(c *gin.Context, rutaUploads, entidad string, svc importador) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"entidad": entidad,
			"detail":  "Seleccione un archivo .xlsx para importar",
		})
		return
	}

	if err := os.MkdirAll(rutaUploads, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo preparar el almacenamiento de archivos"))
		return
	}
	// The saved copy is not cleaned up after processing.
	ruta := filepath.Join(rutaUploads, uuid.NewString()+"_"+filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, ruta); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo guardar el archivo"))
		return
	}

	filas, err := exchange.LeerLibro(ruta)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("El archivo no es un libro .xlsx valido"))
		return
	}

	importados, err := svc.Importar(c.Request.Context(), filas)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al importar datos"))
		return
	}

	c.Header("Location", "/v1/"+entidad)
	c.JSON(http.StatusSeeOther, gin.H{
		"detail":     "Datos importados exitosamente.",
		"importados": importados,
	})
}
