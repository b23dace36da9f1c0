package infra

import (
	"fmt"

	"github.com/RosaLopezC/D05/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate for the seven entity tables. The FK actions declared in the
// model constraint tags (ON DELETE CASCADE / SET NULL) are created here, so
// the cascade and null-on-delete rules live in the database, not in Go code.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		// Map driver errors onto gorm sentinels (ErrDuplicatedKey etc.) so
		// services can react to unique-index violations.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Categoria{},
		&model.Proveedor{},
		&model.Producto{},
		&model.Vendedor{},
		&model.Cliente{},
		&model.Venta{},
		&model.DetalleVenta{},
	); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}

	return db, nil
}
