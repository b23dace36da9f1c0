package filter

import (
	"strings"

	"gorm.io/gorm"
)

// InicialApellido filters people (clientes, vendedores) whose surname starts
// with a given letter, case-insensitively.
type InicialApellido string

// InicialesApellido enumerates the 26 uppercase letters.
func InicialesApellido() []InicialApellido {
	letras := make([]InicialApellido, 0, 26)
	for c := 'A'; c <= 'Z'; c++ {
		letras = append(letras, InicialApellido(c))
	}
	return letras
}

func (i InicialApellido) Valida() bool {
	return len(i) == 1 && i[0] >= 'A' && i[0] <= 'Z'
}

// Coincide reports whether apellido starts with this letter (either case).
func (i InicialApellido) Coincide(apellido string) bool {
	if !i.Valida() {
		return false
	}
	return strings.HasPrefix(strings.ToUpper(apellido), string(i))
}

func (i InicialApellido) Scope() Scope {
	if !i.Valida() {
		return Identity
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("apellido ILIKE ?", string(i)+"%")
	}
}
