package router

import (
	"testing"
	"time"

	"github.com/RosaLopezC/D05/internal/config"
	"github.com/RosaLopezC/D05/internal/exchange"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// The registry's entity names are the contract clients use to build listing
// URLs, so every published entity must resolve against the route table.
func TestRutasCoincidenConRegistro(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := New(&config.Config{Env: "development"}, nil)

	rutas := make(map[string]bool)
	for _, ruta := range r.Routes() {
		rutas[ruta.Method+" "+ruta.Path] = true
	}

	for _, e := range exchange.NuevoRegistro(time.Now()) {
		assert.True(t, rutas["GET /v1/"+e.Entidad], "listado de %s", e.Entidad)
		assert.True(t, rutas["GET /v1/"+e.Entidad+"/:id"], "detalle de %s", e.Entidad)
		assert.True(t, rutas["POST /v1/"+e.Entidad+"/export"], "export de %s", e.Entidad)
		if e.Importable {
			assert.True(t, rutas["POST /v1/"+e.Entidad+"/import"], "import de %s", e.Entidad)
		} else {
			assert.False(t, rutas["POST /v1/"+e.Entidad+"/import"], "%s es solo exportable", e.Entidad)
		}
	}
}
