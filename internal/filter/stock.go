package filter

import "gorm.io/gorm"

// StockCero has a single option: "yes" keeps only products with stock
// exactly 0.
type StockCero string

const ConStockCero StockCero = "yes"

func (s StockCero) Valida() bool { return s == ConStockCero }

func (s StockCero) Scope() Scope {
	if !s.Valida() {
		return Identity
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("stock = 0")
	}
}
