package repository

import (
	"context"

	"github.com/RosaLopezC/D05/internal/dto"
	"github.com/RosaLopezC/D05/internal/filter"
	"github.com/RosaLopezC/D05/internal/model"

	"gorm.io/gorm"
)

type ClienteRepository interface {
	Create(ctx context.Context, c *model.Cliente) error
	FindByID(ctx context.Context, id uint) (*model.Cliente, error)
	List(ctx context.Context, f dto.ClienteFilter) ([]model.Cliente, int64, error)
	ListarParaExportar(ctx context.Context, f dto.ClienteFilter, ids []uint) ([]model.Cliente, error)
	Update(ctx context.Context, c *model.Cliente) error
	// Delete removes the customer and, through the FK, all their sales.
	Delete(ctx context.Context, id uint) error
	DB() *gorm.DB
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) FindByID(ctx context.Context, id uint) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *clienteRepo) query(ctx context.Context, f dto.ClienteFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Cliente{})
	if f.Q != "" {
		like := "%" + f.Q + "%"
		q = q.Where("nombre ILIKE ? OR apellido ILIKE ? OR dni ILIKE ? OR direccion ILIKE ?", like, like, like, like)
	}
	if f.Apellido != "" {
		q = q.Where("apellido = ?", f.Apellido)
	}
	return q.Scopes(
		filter.InicialApellido(f.InicialApellido).Scope(),
		filter.AnioNacimiento(f.AnioNacimiento).Scope(),
		filter.MesNacimiento(f.MesNacimiento).Scope(),
	)
}

func (r *clienteRepo) List(ctx context.Context, f dto.ClienteFilter) ([]model.Cliente, int64, error) {
	var clientes []model.Cliente
	var total int64

	q := r.query(ctx, f)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (f.Page - 1) * f.Limit
	err := q.Order("id ASC").Limit(f.Limit).Offset(offset).Find(&clientes).Error
	return clientes, total, err
}

func (r *clienteRepo) ListarParaExportar(ctx context.Context, f dto.ClienteFilter, ids []uint) ([]model.Cliente, error) {
	var clientes []model.Cliente
	if len(ids) > 0 {
		err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&clientes).Error
		return clientes, err
	}
	err := r.query(ctx, f).Order("id ASC").Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clienteRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Cliente{}, id).Error
}

func (r *clienteRepo) DB() *gorm.DB { return r.db }
