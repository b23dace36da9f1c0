package filter

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PrecioRango buckets products by price. The four closed buckets are
// inclusive on both ends and "21+" is an open bucket (precio > 20).
// Values strictly between 5 and 6 (say 5.50) fall in no bucket: the
// bucketing is symmetric over whole pesos and that gap is intentional.
type PrecioRango string

const (
	Precio0a5     PrecioRango = "0-5"
	Precio6a10    PrecioRango = "6-10"
	Precio11a15   PrecioRango = "11-15"
	Precio16a20   PrecioRango = "16-20"
	PrecioMasDe20 PrecioRango = "21+"
)

// PreciosRango enumerates every bucket, in listing order.
func PreciosRango() []PrecioRango {
	return []PrecioRango{Precio0a5, Precio6a10, Precio11a15, Precio16a20, PrecioMasDe20}
}

func (p PrecioRango) Valida() bool {
	switch p {
	case Precio0a5, Precio6a10, Precio11a15, Precio16a20, PrecioMasDe20:
		return true
	}
	return false
}

// Limites returns the inclusive bounds of a closed bucket. For the open
// bucket "21+" abierto is true and max is meaningless (the predicate is
// precio > 20).
func (p PrecioRango) Limites() (min, max int, abierto bool) {
	switch p {
	case Precio0a5:
		return 0, 5, false
	case Precio6a10:
		return 6, 10, false
	case Precio11a15:
		return 11, 15, false
	case Precio16a20:
		return 16, 20, false
	case PrecioMasDe20:
		return 20, 0, true
	}
	return 0, 0, false
}

// Contiene reports whether a price falls in this bucket.
func (p PrecioRango) Contiene(precio decimal.Decimal) bool {
	if !p.Valida() {
		return false
	}
	min, max, abierto := p.Limites()
	if abierto {
		return precio.GreaterThan(decimal.NewFromInt(int64(min)))
	}
	return precio.GreaterThanOrEqual(decimal.NewFromInt(int64(min))) &&
		precio.LessThanOrEqual(decimal.NewFromInt(int64(max)))
}

func (p PrecioRango) Scope() Scope {
	if !p.Valida() {
		return Identity
	}
	min, max, abierto := p.Limites()
	return func(db *gorm.DB) *gorm.DB {
		if abierto {
			return db.Where("precio > ?", min)
		}
		return db.Where("precio >= ? AND precio <= ?", min, max)
	}
}
