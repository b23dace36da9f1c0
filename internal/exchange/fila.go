package exchange

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Cell parsing helpers. Spreadsheet tools are loose about cell types — an id
// column may come back as "5" or "5.0" depending on how the file was last
// saved — so numeric parsing goes through float first.

func (f Fila) Texto(campo string) string {
	return strings.TrimSpace(f[campo])
}

func (f Fila) Uint(campo string) (uint, error) {
	s := f.Texto(campo)
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("campo %s: %q no es un entero valido", campo, s)
	}
	return uint(n), nil
}

func (f Fila) Int(campo string) (int, error) {
	s := f.Texto(campo)
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("campo %s: %q no es un entero valido", campo, s)
	}
	return int(n), nil
}

func (f Fila) Decimal(campo string) (decimal.Decimal, error) {
	s := f.Texto(campo)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("campo %s: %q no es un decimal valido", campo, s)
	}
	return d, nil
}

// layouts accepted for timestamp cells, in the order they are tried.
var layoutsFechaHora = []string{
	formatoFechaHora,
	time.RFC3339,
	formatoFecha,
	"1/2/06 15:04",
	"01-02-06 15:04",
}

func (f Fila) FechaHora(campo string) (time.Time, error) {
	s := f.Texto(campo)
	for _, layout := range layoutsFechaHora {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("campo %s: %q no es una fecha valida", campo, s)
}

func (f Fila) Fecha(campo string) (time.Time, error) {
	return f.FechaHora(campo)
}
