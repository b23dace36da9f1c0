package filter

import (
	"strconv"
	"time"

	"gorm.io/gorm"
)

// Vencimiento classifies products by expiration date relative to today.
type Vencimiento string

const (
	// Vencidos: fecha_vencimiento strictly before today.
	Vencidos Vencimiento = "vencidos"
	// ProntoAVencer: fecha_vencimiento inside the window of VentanaPronto.
	ProntoAVencer Vencimiento = "pronto"
)

func Vencimientos() []Vencimiento {
	return []Vencimiento{Vencidos, ProntoAVencer}
}

func (v Vencimiento) Valida() bool {
	return v == Vencidos || v == ProntoAVencer
}

// VentanaPronto returns the inclusive [desde, hasta] window for "pronto a
// vencer": from today to today with its month advanced by one. A December
// date wraps to January of the SAME year, leaving the window empty for the
// rest of that month. The wrap is legacy behavior that downstream reports
// depend on, so it is kept verbatim instead of rolling the year over.
func VentanaPronto(hoy time.Time) (desde, hasta time.Time) {
	desde = time.Date(hoy.Year(), hoy.Month(), hoy.Day(), 0, 0, 0, 0, hoy.Location())
	mes := hoy.Month() + 1
	if hoy.Month() == time.December {
		mes = time.January
	}
	hasta = time.Date(hoy.Year(), mes, hoy.Day(), 0, 0, 0, 0, hoy.Location())
	return desde, hasta
}

func (v Vencimiento) Scope(hoy time.Time) Scope {
	switch v {
	case Vencidos:
		dia := time.Date(hoy.Year(), hoy.Month(), hoy.Day(), 0, 0, 0, 0, hoy.Location())
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("fecha_vencimiento < ?", dia)
		}
	case ProntoAVencer:
		desde, hasta := VentanaPronto(hoy)
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("fecha_vencimiento BETWEEN ? AND ?", desde, hasta)
		}
	}
	return Identity
}

// AnioVencimiento matches the year of fecha_vencimiento. Besides the per-year
// options (2018 through the current year) there is a catch-all for anything
// older, compared against the 2018-01-01 date literal.
type AnioVencimiento string

const AntesDe2018 = "antes_2018"

func AniosVencimiento(hoy time.Time) []AnioVencimiento {
	opciones := []AnioVencimiento{AntesDe2018}
	for a := 2018; a <= hoy.Year(); a++ {
		opciones = append(opciones, AnioVencimiento(strconv.Itoa(a)))
	}
	return opciones
}

func (a AnioVencimiento) anio(hoy time.Time) (int, bool) {
	n, err := strconv.Atoi(string(a))
	if err != nil || n < 2018 || n > hoy.Year() {
		return 0, false
	}
	return n, true
}

func (a AnioVencimiento) Valida(hoy time.Time) bool {
	if a == AntesDe2018 {
		return true
	}
	_, ok := a.anio(hoy)
	return ok
}

func (a AnioVencimiento) Scope(hoy time.Time) Scope {
	if a == AntesDe2018 {
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("fecha_vencimiento < ?", "2018-01-01")
		}
	}
	if n, ok := a.anio(hoy); ok {
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("EXTRACT(YEAR FROM fecha_vencimiento) = ?", n)
		}
	}
	return Identity
}

// MesVencimiento matches the month component of fecha_vencimiento exactly.
type MesVencimiento int

func MesesVencimiento() []MesVencimiento {
	meses := make([]MesVencimiento, 0, 12)
	for m := 1; m <= 12; m++ {
		meses = append(meses, MesVencimiento(m))
	}
	return meses
}

func (m MesVencimiento) Valida() bool { return m >= 1 && m <= 12 }

func (m MesVencimiento) Scope() Scope {
	if !m.Valida() {
		return Identity
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("EXTRACT(MONTH FROM fecha_vencimiento) = ?", int(m))
	}
}
