// Package exchange implements the spreadsheet import/export contract of the
// listings: export serializes a filtered collection to an .xlsx workbook with
// one column per persisted field, import reads a workbook back and upserts
// rows by their id column.
package exchange

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	// ArchivoExportacion is the attachment name of every export download.
	ArchivoExportacion = "data.xlsx"
	// ContentTypeXLSX is the media type of the export response.
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	hoja = "Sheet1"

	formatoFechaHora = "2006-01-02 15:04:05"
	formatoFecha     = "2006-01-02"
)

// SinZona renders a timestamp timezone-naive: same wall-clock value, offset
// annotation dropped. Spreadsheet cells cannot carry zone offsets.
func SinZona(t time.Time) string {
	return t.Format(formatoFechaHora)
}

// SoloFecha renders a date-only value.
func SoloFecha(t time.Time) string {
	return t.Format(formatoFecha)
}

// Celda converts a field value into its spreadsheet representation.
// Timestamps become naive strings, decimals become number cells, nil
// pointers become empty cells.
func Celda(v any) any {
	switch x := v.(type) {
	case time.Time:
		return SinZona(x)
	case *time.Time:
		if x == nil {
			return ""
		}
		return SoloFecha(*x)
	case decimal.Decimal:
		return x.InexactFloat64()
	case *uint:
		if x == nil {
			return ""
		}
		return *x
	default:
		return v
	}
}

// EscribirLibro builds a workbook with a header row followed by one row per
// record, preserving the collection's order.
func EscribirLibro(columnas []string, filas [][]any) (*excelize.File, error) {
	f := excelize.NewFile()

	encabezado := make([]any, len(columnas))
	for i, c := range columnas {
		encabezado[i] = c
	}
	if err := f.SetSheetRow(hoja, "A1", &encabezado); err != nil {
		return nil, err
	}

	for i, fila := range filas {
		celdas := make([]any, len(fila))
		for j, v := range fila {
			celdas[j] = Celda(v)
		}
		celda, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(hoja, celda, &celdas); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Fila is one imported spreadsheet row: header name → raw cell text.
type Fila map[string]string

// LeerLibro opens the uploaded workbook and returns its rows keyed by the
// header row. Short rows are padded with empty cells; rows beyond the header
// width are truncated.
func LeerLibro(ruta string) ([]Fila, error) {
	f, err := excelize.OpenFile(ruta)
	if err != nil {
		return nil, fmt.Errorf("abrir libro: %w", err)
	}
	defer f.Close()

	hojas := f.GetSheetList()
	if len(hojas) == 0 {
		return nil, fmt.Errorf("el libro no tiene hojas")
	}
	crudas, err := f.GetRows(hojas[0])
	if err != nil {
		return nil, fmt.Errorf("leer filas: %w", err)
	}
	if len(crudas) == 0 {
		return nil, fmt.Errorf("el libro no tiene fila de encabezado")
	}

	encabezado := crudas[0]
	filas := make([]Fila, 0, len(crudas)-1)
	for _, cruda := range crudas[1:] {
		fila := make(Fila, len(encabezado))
		for i, nombre := range encabezado {
			if i < len(cruda) {
				fila[nombre] = cruda[i]
			} else {
				fila[nombre] = ""
			}
		}
		filas = append(filas, fila)
	}
	return filas, nil
}
