package exchange

import "github.com/RosaLopezC/D05/internal/model"

// Export projections: one column per persisted field, in declaration order.
// The column lists double as the workbook header rows.

var (
	ColumnasCategoria    = []string{"id", "nombre", "pub_date"}
	ColumnasProveedor    = []string{"id", "nombre", "contacto_nombre", "contacto_telefono", "contacto_email", "direccion"}
	ColumnasProducto     = []string{"id", "categoria_id", "nombre", "descripcion", "precio", "stock", "proveedor_id", "fecha_vencimiento", "pub_date"}
	ColumnasVendedor     = []string{"id", "nombre", "apellido", "telefono", "email"}
	ColumnasCliente      = []string{"id", "nombre", "apellido", "dni", "direccion", "telefono", "email", "fecha_nacimiento", "pub_date"}
	ColumnasVenta        = []string{"id", "cliente_id", "vendedor_id", "fecha_venta", "total_venta"}
	ColumnasDetalleVenta = []string{"id", "venta_id", "producto_id", "cantidad_vendida", "precio_unitario"}
)

func FilaCategoria(c model.Categoria) []any {
	return []any{c.ID, c.Nombre, c.PubDate}
}

func FilaProveedor(p model.Proveedor) []any {
	return []any{p.ID, p.Nombre, p.ContactoNombre, p.ContactoTelefono, p.ContactoEmail, p.Direccion}
}

func FilaProducto(p model.Producto) []any {
	return []any{p.ID, p.CategoriaID, p.Nombre, p.Descripcion, p.Precio, p.Stock, p.ProveedorID, p.FechaVencimiento, p.PubDate}
}

func FilaVendedor(v model.Vendedor) []any {
	return []any{v.ID, v.Nombre, v.Apellido, v.Telefono, v.Email}
}

func FilaCliente(c model.Cliente) []any {
	return []any{c.ID, c.Nombre, c.Apellido, c.DNI, c.Direccion, c.Telefono, c.Email, SoloFecha(c.FechaNacimiento), c.PubDate}
}

func FilaVenta(v model.Venta) []any {
	return []any{v.ID, v.ClienteID, v.VendedorID, v.FechaVenta, v.TotalVenta}
}

func FilaDetalleVenta(d model.DetalleVenta) []any {
	return []any{d.ID, d.VentaID, d.ProductoID, d.CantidadVendida, d.PrecioUnitario}
}
