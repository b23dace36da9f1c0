package repository

import (
	"context"

	"github.com/RosaLopezC/D05/internal/dto"
	"github.com/RosaLopezC/D05/internal/filter"
	"github.com/RosaLopezC/D05/internal/model"

	"gorm.io/gorm"
)

type VendedorRepository interface {
	Create(ctx context.Context, v *model.Vendedor) error
	FindByID(ctx context.Context, id uint) (*model.Vendedor, error)
	List(ctx context.Context, f dto.VendedorFilter) ([]model.Vendedor, int64, error)
	ListarParaExportar(ctx context.Context, f dto.VendedorFilter, ids []uint) ([]model.Vendedor, error)
	Update(ctx context.Context, v *model.Vendedor) error
	// Delete removes the seller and, through the FK, all their sales.
	Delete(ctx context.Context, id uint) error
	DB() *gorm.DB
}

type vendedorRepo struct{ db *gorm.DB }

func NewVendedorRepository(db *gorm.DB) VendedorRepository { return &vendedorRepo{db: db} }

func (r *vendedorRepo) Create(ctx context.Context, v *model.Vendedor) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vendedorRepo) FindByID(ctx context.Context, id uint) (*model.Vendedor, error) {
	var v model.Vendedor
	err := r.db.WithContext(ctx).First(&v, id).Error
	return &v, err
}

func (r *vendedorRepo) query(ctx context.Context, f dto.VendedorFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Vendedor{})
	if f.Q != "" {
		like := "%" + f.Q + "%"
		q = q.Where("nombre ILIKE ? OR apellido ILIKE ? OR telefono ILIKE ? OR email ILIKE ?", like, like, like, like)
	}
	return q.Scopes(filter.InicialApellido(f.InicialApellido).Scope())
}

func (r *vendedorRepo) List(ctx context.Context, f dto.VendedorFilter) ([]model.Vendedor, int64, error) {
	var vendedores []model.Vendedor
	var total int64

	q := r.query(ctx, f)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (f.Page - 1) * f.Limit
	err := q.Order("id ASC").Limit(f.Limit).Offset(offset).Find(&vendedores).Error
	return vendedores, total, err
}

func (r *vendedorRepo) ListarParaExportar(ctx context.Context, f dto.VendedorFilter, ids []uint) ([]model.Vendedor, error) {
	var vendedores []model.Vendedor
	if len(ids) > 0 {
		err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&vendedores).Error
		return vendedores, err
	}
	err := r.query(ctx, f).Order("id ASC").Find(&vendedores).Error
	return vendedores, err
}

func (r *vendedorRepo) Update(ctx context.Context, v *model.Vendedor) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *vendedorRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Vendedor{}, id).Error
}

func (r *vendedorRepo) DB() *gorm.DB { return r.db }
