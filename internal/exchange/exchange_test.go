package exchange

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/RosaLopezC/D05/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFila_Parsing(t *testing.T) {
	fila := Fila{
		"id":     "5.0",
		"stock":  " 12 ",
		"precio": "4.50",
		"nombre": "  Arroz  ",
		"pub":    "2023-01-15 10:30:00",
		"fecha":  "1990-04-12",
	}

	id, err := fila.Uint("id")
	require.NoError(t, err)
	assert.Equal(t, uint(5), id)

	stock, err := fila.Int("stock")
	require.NoError(t, err)
	assert.Equal(t, 12, stock)

	precio, err := fila.Decimal("precio")
	require.NoError(t, err)
	assert.True(t, precio.Equal(decimal.RequireFromString("4.50")))

	assert.Equal(t, "Arroz", fila.Texto("nombre"))

	pub, err := fila.FechaHora("pub")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 1, 15, 10, 30, 0, 0, time.UTC), pub)

	nacimiento, err := fila.Fecha("fecha")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC), nacimiento)
}

func TestFila_ParsingInvalido(t *testing.T) {
	fila := Fila{"id": "abc", "precio": "", "fecha": "ayer"}

	_, err := fila.Uint("id")
	assert.Error(t, err)

	_, err = fila.Uint("id_inexistente")
	assert.Error(t, err)

	_, err = fila.Decimal("precio")
	assert.Error(t, err)

	_, err = fila.FechaHora("fecha")
	assert.Error(t, err)
}

func TestCelda(t *testing.T) {
	ts := time.Date(2024, 5, 2, 15, 30, 0, 0, time.FixedZone("-05", -5*3600))
	assert.Equal(t, "2024-05-02 15:30:00", Celda(ts))

	fecha := time.Date(2026, 11, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-11-30", Celda(&fecha))
	assert.Equal(t, "", Celda((*time.Time)(nil)))

	assert.Equal(t, 4.5, Celda(decimal.RequireFromString("4.50")))

	proveedorID := uint(3)
	assert.Equal(t, uint(3), Celda(&proveedorID))
	assert.Equal(t, "", Celda((*uint)(nil)))

	assert.Equal(t, "texto", Celda("texto"))
	assert.Equal(t, 7, Celda(7))
}

func TestMergeProducto_Nuevo(t *testing.T) {
	fila := Fila{
		"nombre":       "Arroz Costeño 1kg",
		"precio":       "4.50",
		"categoria_id": "1",
		"stock":        "120",
		"pub_date":     "2023-01-15 00:00:00",
	}
	p, err := MergeProducto(9, nil, fila)
	require.NoError(t, err)

	assert.Equal(t, uint(9), p.ID)
	assert.Equal(t, "Arroz Costeño 1kg", p.Nombre)
	assert.Equal(t, uint(1), p.CategoriaID)
	assert.Equal(t, 120, p.Stock)
	// Columns outside the import schema stay zero on a new record.
	assert.Empty(t, p.Descripcion)
	assert.Nil(t, p.ProveedorID)
	assert.Nil(t, p.FechaVencimiento)
}

func TestMergeProducto_ExistenteConservaCamposNoImportados(t *testing.T) {
	proveedorID := uint(2)
	vencimiento := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	existente := &model.Producto{
		ID:               9,
		CategoriaID:      1,
		Nombre:           "Nombre viejo",
		Descripcion:      "Aceite vegetal",
		Precio:           decimal.RequireFromString("9.80"),
		Stock:            0,
		ProveedorID:      &proveedorID,
		FechaVencimiento: &vencimiento,
	}
	fila := Fila{
		"nombre":       "Aceite Primor 1L",
		"precio":       "10.20",
		"categoria_id": "1",
		"stock":        "30",
		"pub_date":     "2023-01-16 00:00:00",
	}
	p, err := MergeProducto(9, existente, fila)
	require.NoError(t, err)

	assert.Equal(t, "Aceite Primor 1L", p.Nombre)
	assert.True(t, p.Precio.Equal(decimal.RequireFromString("10.20")))
	assert.Equal(t, 30, p.Stock)
	// descripcion, proveedor_id and fecha_vencimiento keep their stored values.
	assert.Equal(t, "Aceite vegetal", p.Descripcion)
	require.NotNil(t, p.ProveedorID)
	assert.Equal(t, uint(2), *p.ProveedorID)
	require.NotNil(t, p.FechaVencimiento)
	assert.Equal(t, vencimiento, *p.FechaVencimiento)
}

func TestMergeProducto_FilaInvalida(t *testing.T) {
	fila := Fila{
		"nombre":       "Arroz",
		"precio":       "gratis",
		"categoria_id": "1",
		"stock":        "10",
		"pub_date":     "2023-01-15 00:00:00",
	}
	_, err := MergeProducto(1, nil, fila)
	assert.Error(t, err)
}

func TestMergeVenta_NoValidaReferencias(t *testing.T) {
	// FK columns are taken verbatim; a dangling cliente_id is not an error
	// here — it fails later at the store.
	fila := Fila{
		"cliente_id":  "9999",
		"vendedor_id": "1",
		"fecha_venta": "2024-05-02 15:30:00",
		"total_venta": "21.50",
	}
	v, err := MergeVenta(4, nil, fila)
	require.NoError(t, err)
	assert.Equal(t, uint(9999), v.ClienteID)
	assert.True(t, v.TotalVenta.Equal(decimal.RequireFromString("21.50")))
}

func TestMergeCliente(t *testing.T) {
	fila := Fila{
		"nombre":           "Ana",
		"apellido":         "Morales",
		"dni":              "45678912",
		"direccion":        "Calle Lima 101",
		"telefono":         "977889900",
		"email":            "ana@mail.com",
		"fecha_nacimiento": "1990-04-12",
		"pub_date":         "2023-01-20 00:00:00",
	}
	c, err := MergeCliente(1, nil, fila)
	require.NoError(t, err)
	assert.Equal(t, "45678912", c.DNI)
	assert.Equal(t, time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC), c.FechaNacimiento)
}

func TestLibro_RoundTrip(t *testing.T) {
	columnas := []string{"id", "nombre", "precio"}
	filas := [][]any{
		{uint(1), "Arroz", decimal.RequireFromString("4.50")},
		{uint(2), "Aceite", decimal.RequireFromString("9.80")},
	}

	libro, err := EscribirLibro(columnas, filas)
	require.NoError(t, err)

	ruta := filepath.Join(t.TempDir(), "data.xlsx")
	require.NoError(t, libro.SaveAs(ruta))
	require.NoError(t, libro.Close())

	leidas, err := LeerLibro(ruta)
	require.NoError(t, err)
	require.Len(t, leidas, 2)

	id, err := leidas[0].Uint("id")
	require.NoError(t, err)
	assert.Equal(t, uint(1), id)
	assert.Equal(t, "Arroz", leidas[0].Texto("nombre"))

	precio, err := leidas[1].Decimal("precio")
	require.NoError(t, err)
	assert.True(t, precio.Equal(decimal.RequireFromString("9.80")))
}

func TestLeerLibro_Inexistente(t *testing.T) {
	_, err := LeerLibro(filepath.Join(t.TempDir(), "no-existe.xlsx"))
	assert.Error(t, err)
}

func TestNuevoRegistro(t *testing.T) {
	hoy := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	esquemas := NuevoRegistro(hoy)
	require.Len(t, esquemas, 7)

	porEntidad := make(map[string]Esquema, len(esquemas))
	for _, e := range esquemas {
		porEntidad[e.Entidad] = e
	}

	// categorias is the only listing without import.
	assert.False(t, porEntidad["categorias"].Importable)
	for _, entidad := range []string{"proveedores", "productos", "vendedores", "clientes", "ventas", "detalle_ventas"} {
		assert.True(t, porEntidad[entidad].Importable, entidad)
	}

	productos := porEntidad["productos"]
	assert.Equal(t, []string{"reponer", "agotar"}, productos.Acciones)

	var precios []string
	for _, f := range productos.Filtros {
		if f.Parametro == "precio_rango" {
			precios = f.Opciones
		}
	}
	assert.Equal(t, []string{"0-5", "6-10", "11-15", "16-20", "21+"}, precios)
}
