package model

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tagGorm(t *testing.T, modelo any, campo string) string {
	t.Helper()
	f, ok := reflect.TypeOf(modelo).FieldByName(campo)
	require.True(t, ok, "campo %s no existe", campo)
	return f.Tag.Get("gorm")
}

// The delete rules live entirely in the constraint tags AutoMigrate applies,
// so the tags themselves are the contract under test.
func TestAccionesDeBorradoFK(t *testing.T) {
	// Borrar una categoria arrastra sus productos; borrar un proveedor los
	// deja vivos con la referencia en NULL.
	assert.Contains(t, tagGorm(t, Producto{}, "Categoria"), "constraint:OnDelete:CASCADE")
	assert.Contains(t, tagGorm(t, Producto{}, "Proveedor"), "constraint:OnDelete:SET NULL")

	// Borrar cliente o vendedor arrastra sus ventas.
	assert.Contains(t, tagGorm(t, Venta{}, "Cliente"), "constraint:OnDelete:CASCADE")
	assert.Contains(t, tagGorm(t, Venta{}, "Vendedor"), "constraint:OnDelete:CASCADE")

	// Borrar una venta o un producto arrastra los detalles.
	assert.Contains(t, tagGorm(t, DetalleVenta{}, "Venta"), "constraint:OnDelete:CASCADE")
	assert.Contains(t, tagGorm(t, DetalleVenta{}, "Producto"), "constraint:OnDelete:CASCADE")
}

func TestDNIUnico(t *testing.T) {
	assert.Contains(t, tagGorm(t, Cliente{}, "DNI"), "uniqueIndex")
}

func TestNombresDeTabla(t *testing.T) {
	assert.Equal(t, "categorias", Categoria{}.TableName())
	assert.Equal(t, "proveedores", Proveedor{}.TableName())
	assert.Equal(t, "productos", Producto{}.TableName())
	assert.Equal(t, "vendedores", Vendedor{}.TableName())
	assert.Equal(t, "clientes", Cliente{}.TableName())
	assert.Equal(t, "ventas", Venta{}.TableName())
	assert.Equal(t, "detalle_ventas", DetalleVenta{}.TableName())
}
