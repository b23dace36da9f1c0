package exchange

import (
	"github.com/RosaLopezC/D05/internal/model"
)

// Import merge functions: (existing-record-or-nil, row) → record to persist.
// They are pure — no store, no transport — so the upsert contract is testable
// on its own.
//
// Each function overwrites exactly the columns its import schema lists and
// leaves every other field of an existing record untouched. Foreign-key
// columns are taken verbatim; whether the referenced record exists is NOT
// checked here — a dangling reference surfaces later as a store integrity
// failure. That lenient behavior is part of the contract.

func MergeProveedor(id uint, existente *model.Proveedor, fila Fila) (*model.Proveedor, error) {
	p := &model.Proveedor{ID: id}
	if existente != nil {
		*p = *existente
		p.ID = id
	}
	p.Nombre = fila.Texto("nombre")
	p.ContactoNombre = fila.Texto("contacto_nombre")
	p.ContactoTelefono = fila.Texto("contacto_telefono")
	p.ContactoEmail = fila.Texto("contacto_email")
	p.Direccion = fila.Texto("direccion")
	return p, nil
}

// MergeProducto overwrites nombre, precio, categoria_id, stock and pub_date.
// Descripcion, proveedor_id and fecha_vencimiento are NOT part of the product
// import schema: on an existing record they keep their stored values, on a
// new record they stay empty.
func MergeProducto(id uint, existente *model.Producto, fila Fila) (*model.Producto, error) {
	p := &model.Producto{ID: id}
	if existente != nil {
		*p = *existente
		p.ID = id
	}
	p.Nombre = fila.Texto("nombre")

	precio, err := fila.Decimal("precio")
	if err != nil {
		return nil, err
	}
	p.Precio = precio

	categoriaID, err := fila.Uint("categoria_id")
	if err != nil {
		return nil, err
	}
	p.CategoriaID = categoriaID

	stock, err := fila.Int("stock")
	if err != nil {
		return nil, err
	}
	p.Stock = stock

	pub, err := fila.FechaHora("pub_date")
	if err != nil {
		return nil, err
	}
	p.PubDate = pub
	return p, nil
}

func MergeVendedor(id uint, existente *model.Vendedor, fila Fila) (*model.Vendedor, error) {
	v := &model.Vendedor{ID: id}
	if existente != nil {
		*v = *existente
		v.ID = id
	}
	v.Nombre = fila.Texto("nombre")
	v.Apellido = fila.Texto("apellido")
	v.Telefono = fila.Texto("telefono")
	v.Email = fila.Texto("email")
	return v, nil
}

func MergeCliente(id uint, existente *model.Cliente, fila Fila) (*model.Cliente, error) {
	c := &model.Cliente{ID: id}
	if existente != nil {
		*c = *existente
		c.ID = id
	}
	c.Nombre = fila.Texto("nombre")
	c.Apellido = fila.Texto("apellido")
	c.DNI = fila.Texto("dni")
	c.Telefono = fila.Texto("telefono")
	c.Direccion = fila.Texto("direccion")
	c.Email = fila.Texto("email")

	nacimiento, err := fila.Fecha("fecha_nacimiento")
	if err != nil {
		return nil, err
	}
	c.FechaNacimiento = nacimiento

	pub, err := fila.FechaHora("pub_date")
	if err != nil {
		return nil, err
	}
	c.PubDate = pub
	return c, nil
}

func MergeVenta(id uint, existente *model.Venta, fila Fila) (*model.Venta, error) {
	v := &model.Venta{ID: id}
	if existente != nil {
		*v = *existente
		v.ID = id
	}
	clienteID, err := fila.Uint("cliente_id")
	if err != nil {
		return nil, err
	}
	v.ClienteID = clienteID

	vendedorID, err := fila.Uint("vendedor_id")
	if err != nil {
		return nil, err
	}
	v.VendedorID = vendedorID

	fecha, err := fila.FechaHora("fecha_venta")
	if err != nil {
		return nil, err
	}
	v.FechaVenta = fecha

	total, err := fila.Decimal("total_venta")
	if err != nil {
		return nil, err
	}
	v.TotalVenta = total
	return v, nil
}

func MergeDetalleVenta(id uint, existente *model.DetalleVenta, fila Fila) (*model.DetalleVenta, error) {
	d := &model.DetalleVenta{ID: id}
	if existente != nil {
		*d = *existente
		d.ID = id
	}
	ventaID, err := fila.Uint("venta_id")
	if err != nil {
		return nil, err
	}
	d.VentaID = ventaID

	productoID, err := fila.Uint("producto_id")
	if err != nil {
		return nil, err
	}
	d.ProductoID = productoID

	cantidad, err := fila.Int("cantidad_vendida")
	if err != nil {
		return nil, err
	}
	d.CantidadVendida = cantidad

	precio, err := fila.Decimal("precio_unitario")
	if err != nil {
		return nil, err
	}
	d.PrecioUnitario = precio
	return d, nil
}
