package filter

import "gorm.io/gorm"

// Birth-date filters for the clientes listing. The year range is fixed:
// the admin only offers 1970 through 2005.

const (
	AnioNacimientoMin = 1970
	AnioNacimientoMax = 2005
)

// AnioNacimiento matches the year component of fecha_nacimiento exactly.
type AnioNacimiento int

func AniosNacimiento() []AnioNacimiento {
	anios := make([]AnioNacimiento, 0, AnioNacimientoMax-AnioNacimientoMin+1)
	for a := AnioNacimientoMin; a <= AnioNacimientoMax; a++ {
		anios = append(anios, AnioNacimiento(a))
	}
	return anios
}

func (a AnioNacimiento) Valida() bool {
	return a >= AnioNacimientoMin && a <= AnioNacimientoMax
}

func (a AnioNacimiento) Scope() Scope {
	if !a.Valida() {
		return Identity
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("EXTRACT(YEAR FROM fecha_nacimiento) = ?", int(a))
	}
}

// MesNacimiento matches the month component of fecha_nacimiento exactly.
type MesNacimiento int

func MesesNacimiento() []MesNacimiento {
	meses := make([]MesNacimiento, 0, 12)
	for m := 1; m <= 12; m++ {
		meses = append(meses, MesNacimiento(m))
	}
	return meses
}

func (m MesNacimiento) Valida() bool { return m >= 1 && m <= 12 }

func (m MesNacimiento) Scope() Scope {
	if !m.Valida() {
		return Identity
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("EXTRACT(MONTH FROM fecha_nacimiento) = ?", int(m))
	}
}
