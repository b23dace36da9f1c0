package filter

import (
	"strconv"
	"time"

	"gorm.io/gorm"
)

// AnioPublicacion matches the year of pub_date. Same option shape as
// AnioVencimiento, but the catch-all compares the extracted year (< 2018)
// instead of a date literal.
type AnioPublicacion string

func AniosPublicacion(hoy time.Time) []AnioPublicacion {
	opciones := []AnioPublicacion{AntesDe2018}
	for a := 2018; a <= hoy.Year(); a++ {
		opciones = append(opciones, AnioPublicacion(strconv.Itoa(a)))
	}
	return opciones
}

func (a AnioPublicacion) anio(hoy time.Time) (int, bool) {
	n, err := strconv.Atoi(string(a))
	if err != nil || n < 2018 || n > hoy.Year() {
		return 0, false
	}
	return n, true
}

func (a AnioPublicacion) Valida(hoy time.Time) bool {
	if a == AntesDe2018 {
		return true
	}
	_, ok := a.anio(hoy)
	return ok
}

func (a AnioPublicacion) Scope(hoy time.Time) Scope {
	if a == AntesDe2018 {
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("EXTRACT(YEAR FROM pub_date) < ?", 2018)
		}
	}
	if n, ok := a.anio(hoy); ok {
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("EXTRACT(YEAR FROM pub_date) = ?", n)
		}
	}
	return Identity
}

// MesPublicacion matches the month component of pub_date exactly.
type MesPublicacion int

func MesesPublicacion() []MesPublicacion {
	meses := make([]MesPublicacion, 0, 12)
	for m := 1; m <= 12; m++ {
		meses = append(meses, MesPublicacion(m))
	}
	return meses
}

func (m MesPublicacion) Valida() bool { return m >= 1 && m <= 12 }

func (m MesPublicacion) Scope() Scope {
	if !m.Valida() {
		return Identity
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("EXTRACT(MONTH FROM pub_date) = ?", int(m))
	}
}
