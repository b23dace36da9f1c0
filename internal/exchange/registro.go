package exchange

import (
	"strconv"
	"time"

	"github.com/RosaLopezC/D05/internal/filter"
)

// Filtro describes one listing filter: its stable query parameter and the
// enumeration of selectable options.
type Filtro struct {
	Parametro string   `json:"parametro"`
	Opciones  []string `json:"opciones"`
}

// Esquema binds an entity listing to everything the presentation layer needs:
// export columns, search fields, filters, bulk actions and whether the
// listing offers a spreadsheet import.
type Esquema struct {
	Entidad        string   `json:"entidad"`
	Columnas       []string `json:"columnas"`
	CamposBusqueda []string `json:"campos_busqueda"`
	Filtros        []Filtro `json:"filtros"`
	Acciones       []string `json:"acciones"`
	Importable     bool     `json:"importable"`
}

// NuevoRegistro builds the listing bindings as an explicit startup-time
// table — there is no module-level side effect; the router constructs this
// once and hands it to the handlers. Option enumerations that depend on the
// current year take hoy.
func NuevoRegistro(hoy time.Time) []Esquema {
	letras := opciones(filter.InicialesApellido())
	meses := make([]string, 0, 12)
	for m := 1; m <= 12; m++ {
		meses = append(meses, strconv.Itoa(m))
	}
	aniosNacimiento := make([]string, 0, filter.AnioNacimientoMax-filter.AnioNacimientoMin+1)
	for _, a := range filter.AniosNacimiento() {
		aniosNacimiento = append(aniosNacimiento, strconv.Itoa(int(a)))
	}

	return []Esquema{
		{
			Entidad:        "categorias",
			Columnas:       ColumnasCategoria,
			CamposBusqueda: []string{"nombre"},
		},
		{
			Entidad:        "proveedores",
			Columnas:       ColumnasProveedor,
			CamposBusqueda: []string{"nombre", "contacto_nombre", "direccion"},
			Filtros:        []Filtro{{Parametro: "direccion"}},
			Importable:     true,
		},
		{
			Entidad:        "productos",
			Columnas:       ColumnasProducto,
			CamposBusqueda: []string{"nombre", "descripcion", "stock"},
			Filtros: []Filtro{
				{Parametro: "proveedor_id"},
				{Parametro: "vencimiento", Opciones: opciones(filter.Vencimientos())},
				{Parametro: "año_vencimiento", Opciones: opciones(filter.AniosVencimiento(hoy))},
				{Parametro: "mes_vencimiento", Opciones: meses},
				{Parametro: "año_publicacion", Opciones: opciones(filter.AniosPublicacion(hoy))},
				{Parametro: "mes_publicacion", Opciones: meses},
				{Parametro: "stock_0", Opciones: []string{string(filter.ConStockCero)}},
				{Parametro: "precio_rango", Opciones: opciones(filter.PreciosRango())},
			},
			Acciones:   []string{"reponer", "agotar"},
			Importable: true,
		},
		{
			Entidad:        "vendedores",
			Columnas:       ColumnasVendedor,
			CamposBusqueda: []string{"nombre", "apellido", "telefono", "email"},
			Filtros:        []Filtro{{Parametro: "inicial_apellido", Opciones: letras}},
			Importable:     true,
		},
		{
			Entidad:        "clientes",
			Columnas:       ColumnasCliente,
			CamposBusqueda: []string{"nombre", "apellido", "dni", "direccion"},
			Filtros: []Filtro{
				{Parametro: "apellido"},
				{Parametro: "inicial_apellido", Opciones: letras},
				{Parametro: "anio_nacimiento", Opciones: aniosNacimiento},
				{Parametro: "mes_nacimiento", Opciones: meses},
			},
			Importable: true,
		},
		{
			Entidad:        "ventas",
			Columnas:       ColumnasVenta,
			CamposBusqueda: []string{"cliente", "vendedor"},
			Importable:     true,
		},
		{
			Entidad:        "detalle_ventas",
			Columnas:       ColumnasDetalleVenta,
			CamposBusqueda: []string{"cliente", "producto"},
			Importable:     true,
		},
	}
}

func opciones[T ~string](valores []T) []string {
	out := make([]string, 0, len(valores))
	for _, v := range valores {
		out = append(out, string(v))
	}
	return out
}
