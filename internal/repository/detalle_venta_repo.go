package repository

import (
	"context"

	"github.com/RosaLopezC/D05/internal/dto"
	"github.com/RosaLopezC/D05/internal/model"

	"gorm.io/gorm"
)

type DetalleVentaRepository interface {
	Create(ctx context.Context, d *model.DetalleVenta) error
	FindByID(ctx context.Context, id uint) (*model.DetalleVenta, error)
	List(ctx context.Context, f dto.DetalleVentaFilter) ([]model.DetalleVenta, int64, error)
	ListarParaExportar(ctx context.Context, f dto.DetalleVentaFilter, ids []uint) ([]model.DetalleVenta, error)
	Update(ctx context.Context, d *model.DetalleVenta) error
	Delete(ctx context.Context, id uint) error
	DB() *gorm.DB
}

type detalleVentaRepo struct{ db *gorm.DB }

func NewDetalleVentaRepository(db *gorm.DB) DetalleVentaRepository {
	return &detalleVentaRepo{db: db}
}

func (r *detalleVentaRepo) Create(ctx context.Context, d *model.DetalleVenta) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *detalleVentaRepo) FindByID(ctx context.Context, id uint) (*model.DetalleVenta, error) {
	var d model.DetalleVenta
	err := r.db.WithContext(ctx).First(&d, id).Error
	return &d, err
}

func (r *detalleVentaRepo) query(ctx context.Context, f dto.DetalleVentaFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.DetalleVenta{})
	if f.Q != "" {
		like := "%" + f.Q + "%"
		q = q.Joins("JOIN ventas ON ventas.id = detalle_ventas.venta_id").
			Joins("JOIN clientes ON clientes.id = ventas.cliente_id").
			Joins("JOIN productos ON productos.id = detalle_ventas.producto_id").
			Where("clientes.nombre ILIKE ? OR productos.nombre ILIKE ?", like, like)
	}
	if f.VentaID != 0 {
		q = q.Where("detalle_ventas.venta_id = ?", f.VentaID)
	}
	return q
}

func (r *detalleVentaRepo) List(ctx context.Context, f dto.DetalleVentaFilter) ([]model.DetalleVenta, int64, error) {
	var detalles []model.DetalleVenta
	var total int64

	q := r.query(ctx, f)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (f.Page - 1) * f.Limit
	err := q.Order("detalle_ventas.id ASC").Limit(f.Limit).Offset(offset).Find(&detalles).Error
	return detalles, total, err
}

func (r *detalleVentaRepo) ListarParaExportar(ctx context.Context, f dto.DetalleVentaFilter, ids []uint) ([]model.DetalleVenta, error) {
	var detalles []model.DetalleVenta
	if len(ids) > 0 {
		err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&detalles).Error
		return detalles, err
	}
	err := r.query(ctx, f).Order("detalle_ventas.id ASC").Find(&detalles).Error
	return detalles, err
}

func (r *detalleVentaRepo) Update(ctx context.Context, d *model.DetalleVenta) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *detalleVentaRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.DetalleVenta{}, id).Error
}

func (r *detalleVentaRepo) DB() *gorm.DB { return r.db }
