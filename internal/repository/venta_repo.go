package repository

import (
	"context"

	"github.com/RosaLopezC/D05/internal/dto"
	"github.com/RosaLopezC/D05/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VentaRepository interface {
	Create(ctx context.Context, v *model.Venta) error
	FindByID(ctx context.Context, id uint) (*model.Venta, error)
	List(ctx context.Context, f dto.VentaFilter) ([]model.Venta, int64, error)
	ListarParaExportar(ctx context.Context, f dto.VentaFilter, ids []uint) ([]model.Venta, error)
	Update(ctx context.Context, v *model.Venta) error
	// Delete removes the sale and its detalle lines (FK CASCADE).
	Delete(ctx context.Context, id uint) error
	ListarDetalles(ctx context.Context, ventaID uint) ([]model.DetalleVenta, error)
	// TotalesCalculados sums precio_unitario over the detalle lines of each
	// given sale, mirroring the listing annotation of the original back
	// office. Note it deliberately ignores cantidad_vendida; the stored
	// total_venta stays authoritative and untouched.
	TotalesCalculados(ctx context.Context, ventaIDs []uint) (map[uint]decimal.Decimal, error)
	DB() *gorm.DB
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) Create(ctx context.Context, v *model.Venta) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id uint) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).First(&v, id).Error
	return &v, err
}

func (r *ventaRepo) query(ctx context.Context, f dto.VentaFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Venta{})
	if f.Q != "" {
		like := "%" + f.Q + "%"
		q = q.Joins("JOIN clientes ON clientes.id = ventas.cliente_id").
			Joins("JOIN vendedores ON vendedores.id = ventas.vendedor_id").
			Where("clientes.nombre ILIKE ? OR clientes.apellido ILIKE ? OR vendedores.nombre ILIKE ? OR vendedores.apellido ILIKE ?",
				like, like, like, like)
	}
	return q
}

func (r *ventaRepo) List(ctx context.Context, f dto.VentaFilter) ([]model.Venta, int64, error) {
	var ventas []model.Venta
	var total int64

	q := r.query(ctx, f)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (f.Page - 1) * f.Limit
	err := q.Order("ventas.id ASC").Limit(f.Limit).Offset(offset).Find(&ventas).Error
	return ventas, total, err
}

func (r *ventaRepo) ListarParaExportar(ctx context.Context, f dto.VentaFilter, ids []uint) ([]model.Venta, error) {
	var ventas []model.Venta
	if len(ids) > 0 {
		err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&ventas).Error
		return ventas, err
	}
	err := r.query(ctx, f).Order("ventas.id ASC").Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) Update(ctx context.Context, v *model.Venta) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *ventaRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Venta{}, id).Error
}

func (r *ventaRepo) ListarDetalles(ctx context.Context, ventaID uint) ([]model.DetalleVenta, error) {
	var detalles []model.DetalleVenta
	err := r.db.WithContext(ctx).Where("venta_id = ?", ventaID).Order("id ASC").Find(&detalles).Error
	return detalles, err
}

func (r *ventaRepo) TotalesCalculados(ctx context.Context, ventaIDs []uint) (map[uint]decimal.Decimal, error) {
	totales := make(map[uint]decimal.Decimal, len(ventaIDs))
	if len(ventaIDs) == 0 {
		return totales, nil
	}

	var filas []struct {
		VentaID uint
		Total   decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&model.DetalleVenta{}).
		Select("venta_id, COALESCE(SUM(precio_unitario), 0) AS total").
		Where("venta_id IN ?", ventaIDs).
		Group("venta_id").
		Scan(&filas).Error
	if err != nil {
		return nil, err
	}
	for _, fila := range filas {
		totales[fila.VentaID] = fila.Total
	}
	return totales, nil
}

func (r *ventaRepo) DB() *gorm.DB { return r.db }
