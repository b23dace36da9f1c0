package filter

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func precio(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestPrecioRango_Limites(t *testing.T) {
	casos := []struct {
		rango   PrecioRango
		min     int
		max     int
		abierto bool
	}{
		{Precio0a5, 0, 5, false},
		{Precio6a10, 6, 10, false},
		{Precio11a15, 11, 15, false},
		{Precio16a20, 16, 20, false},
		{PrecioMasDe20, 20, 0, true},
	}
	for _, c := range casos {
		min, max, abierto := c.rango.Limites()
		assert.Equal(t, c.min, min, "rango %s", c.rango)
		assert.Equal(t, c.max, max, "rango %s", c.rango)
		assert.Equal(t, c.abierto, abierto, "rango %s", c.rango)
	}
}

func TestPrecioRango_Contiene_Bordes(t *testing.T) {
	// Bucket ends are inclusive.
	assert.True(t, Precio0a5.Contiene(precio("0")))
	assert.True(t, Precio0a5.Contiene(precio("5.00")))
	assert.True(t, Precio6a10.Contiene(precio("6.00")))
	assert.True(t, Precio16a20.Contiene(precio("20.00")))

	// 5.50 falls in the gap between 0-5 and 6-10: no bucket claims it.
	for _, r := range PreciosRango() {
		assert.False(t, r.Contiene(precio("5.50")), "rango %s no debe contener 5.50", r)
	}
}

func TestPrecioRango_Contiene_BucketAbierto(t *testing.T) {
	// "21+" is strictly greater than 20, so 20.00 stays in "16-20"
	// and 20.01 moves to the open bucket.
	assert.False(t, PrecioMasDe20.Contiene(precio("20.00")))
	assert.True(t, PrecioMasDe20.Contiene(precio("20.01")))
	assert.True(t, PrecioMasDe20.Contiene(precio("999.99")))

	assert.True(t, Precio16a20.Contiene(precio("20.00")))
	assert.False(t, Precio16a20.Contiene(precio("20.01")))
}

func TestPrecioRango_OpcionDesconocida(t *testing.T) {
	var r PrecioRango = "5-6"
	assert.False(t, r.Valida())
	assert.False(t, r.Contiene(precio("5.50")))
}

func TestInicialApellido_Coincide(t *testing.T) {
	m := InicialApellido("M")
	assert.True(t, m.Coincide("Mendoza"))
	assert.True(t, m.Coincide("mendoza"))
	assert.True(t, m.Coincide("MÁRQUEZ"))
	assert.False(t, m.Coincide("Paredes"))
	assert.False(t, m.Coincide(""))
}

func TestInicialApellido_Opciones(t *testing.T) {
	letras := InicialesApellido()
	require.Len(t, letras, 26)
	assert.Equal(t, InicialApellido("A"), letras[0])
	assert.Equal(t, InicialApellido("Z"), letras[25])
	for _, l := range letras {
		assert.True(t, l.Valida())
	}
	assert.False(t, InicialApellido("m").Valida())
	assert.False(t, InicialApellido("MM").Valida())
}

func TestVentanaPronto_MesRegular(t *testing.T) {
	hoy := time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)
	desde, hasta := VentanaPronto(hoy)

	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), desde)
	assert.Equal(t, time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC), hasta)

	// 2024-02-10 cae dentro de la ventana, 2024-02-16 ya no.
	dentro := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)
	fuera := time.Date(2024, time.February, 16, 0, 0, 0, 0, time.UTC)
	assert.True(t, !dentro.Before(desde) && !dentro.After(hasta))
	assert.True(t, fuera.After(hasta))
}

func TestVentanaPronto_Diciembre(t *testing.T) {
	// December keeps the same year: the window runs backwards to January
	// and matches nothing for the rest of the month.
	hoy := time.Date(2024, time.December, 10, 0, 0, 0, 0, time.UTC)
	desde, hasta := VentanaPronto(hoy)

	assert.Equal(t, time.Date(2024, time.December, 10, 0, 0, 0, 0, time.UTC), desde)
	assert.Equal(t, time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), hasta)
	assert.True(t, hasta.Before(desde))
}

func TestAniosVencimiento_Opciones(t *testing.T) {
	hoy := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	opciones := AniosVencimiento(hoy)

	require.Len(t, opciones, 8) // antes_2018 + 2018..2024
	assert.Equal(t, AnioVencimiento(AntesDe2018), opciones[0])
	assert.Equal(t, AnioVencimiento("2018"), opciones[1])
	assert.Equal(t, AnioVencimiento("2024"), opciones[7])

	assert.True(t, AnioVencimiento(AntesDe2018).Valida(hoy))
	assert.True(t, AnioVencimiento("2020").Valida(hoy))
	assert.False(t, AnioVencimiento("2025").Valida(hoy))
	assert.False(t, AnioVencimiento("2017").Valida(hoy))
	assert.False(t, AnioVencimiento("abc").Valida(hoy))
}

func TestAniosPublicacion_Opciones(t *testing.T) {
	hoy := time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)
	opciones := AniosPublicacion(hoy)

	require.Len(t, opciones, 7) // antes_2018 + 2018..2023
	assert.Equal(t, AnioPublicacion(AntesDe2018), opciones[0])
	assert.True(t, AnioPublicacion("2023").Valida(hoy))
	assert.False(t, AnioPublicacion("2024").Valida(hoy))
}

func TestAnioNacimiento_Rango(t *testing.T) {
	anios := AniosNacimiento()
	require.Len(t, anios, 36)
	assert.Equal(t, AnioNacimiento(1970), anios[0])
	assert.Equal(t, AnioNacimiento(2005), anios[35])

	assert.True(t, AnioNacimiento(1970).Valida())
	assert.True(t, AnioNacimiento(2005).Valida())
	assert.False(t, AnioNacimiento(1969).Valida())
	assert.False(t, AnioNacimiento(2006).Valida())
}

func TestMeses_Valida(t *testing.T) {
	assert.True(t, MesNacimiento(1).Valida())
	assert.True(t, MesNacimiento(12).Valida())
	assert.False(t, MesNacimiento(0).Valida())
	assert.False(t, MesNacimiento(13).Valida())

	assert.True(t, MesVencimiento(7).Valida())
	assert.False(t, MesVencimiento(-3).Valida())

	assert.True(t, MesPublicacion(12).Valida())
	assert.False(t, MesPublicacion(13).Valida())
}

func TestStockCero_Valida(t *testing.T) {
	assert.True(t, ConStockCero.Valida())
	assert.False(t, StockCero("no").Valida())
	assert.False(t, StockCero("").Valida())
}

func TestVencimientos_Opciones(t *testing.T) {
	assert.Equal(t, []Vencimiento{Vencidos, ProntoAVencer}, Vencimientos())
	assert.True(t, Vencidos.Valida())
	assert.True(t, ProntoAVencer.Valida())
	assert.False(t, Vencimiento("caducados").Valida())
}
