package repository

import (
	"context"

	"github.com/RosaLopezC/D05/internal/dto"
	"github.com/RosaLopezC/D05/internal/model"

	"gorm.io/gorm"
)

type ProveedorRepository interface {
	Create(ctx context.Context, p *model.Proveedor) error
	FindByID(ctx context.Context, id uint) (*model.Proveedor, error)
	List(ctx context.Context, f dto.ProveedorFilter) ([]model.Proveedor, int64, error)
	ListarParaExportar(ctx context.Context, f dto.ProveedorFilter, ids []uint) ([]model.Proveedor, error)
	Update(ctx context.Context, p *model.Proveedor) error
	// Delete removes the supplier; referencing products survive with
	// proveedor_id = NULL (FK SET NULL).
	Delete(ctx context.Context, id uint) error
	DB() *gorm.DB
}

type proveedorRepo struct{ db *gorm.DB }

func NewProveedorRepository(db *gorm.DB) ProveedorRepository { return &proveedorRepo{db: db} }

func (r *proveedorRepo) Create(ctx context.Context, p *model.Proveedor) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *proveedorRepo) FindByID(ctx context.Context, id uint) (*model.Proveedor, error) {
	var p model.Proveedor
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *proveedorRepo) query(ctx context.Context, f dto.ProveedorFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Proveedor{})
	if f.Q != "" {
		like := "%" + f.Q + "%"
		q = q.Where("nombre ILIKE ? OR contacto_nombre ILIKE ? OR direccion ILIKE ?", like, like, like)
	}
	if f.Direccion != "" {
		q = q.Where("direccion = ?", f.Direccion)
	}
	return q
}

func (r *proveedorRepo) List(ctx context.Context, f dto.ProveedorFilter) ([]model.Proveedor, int64, error) {
	var proveedores []model.Proveedor
	var total int64

	q := r.query(ctx, f)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (f.Page - 1) * f.Limit
	err := q.Order("id ASC").Limit(f.Limit).Offset(offset).Find(&proveedores).Error
	return proveedores, total, err
}

func (r *proveedorRepo) ListarParaExportar(ctx context.Context, f dto.ProveedorFilter, ids []uint) ([]model.Proveedor, error) {
	var proveedores []model.Proveedor
	if len(ids) > 0 {
		err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&proveedores).Error
		return proveedores, err
	}
	err := r.query(ctx, f).Order("id ASC").Find(&proveedores).Error
	return proveedores, err
}

func (r *proveedorRepo) Update(ctx context.Context, p *model.Proveedor) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *proveedorRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Proveedor{}, id).Error
}

func (r *proveedorRepo) DB() *gorm.DB { return r.db }
