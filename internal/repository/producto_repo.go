package repository

import (
	"context"
	"time"

	"github.com/RosaLopezC/D05/internal/dto"
	"github.com/RosaLopezC/D05/internal/filter"
	"github.com/RosaLopezC/D05/internal/model"

	"gorm.io/gorm"
)

type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id uint) (*model.Producto, error)
	List(ctx context.Context, f dto.ProductoFilter) ([]model.Producto, int64, error)
	ListarParaExportar(ctx context.Context, f dto.ProductoFilter, ids []uint) ([]model.Producto, error)
	FindByCategoriaID(ctx context.Context, categoriaID uint) ([]model.Producto, error)
	FindByProveedorID(ctx context.Context, proveedorID uint) ([]model.Producto, error)
	Update(ctx context.Context, p *model.Producto) error
	Delete(ctx context.Context, id uint) error

	// ActualizarStockMasivo sets stock to a fixed value for every selected id,
	// uniformly and without per-record validation. Returns the affected count.
	ActualizarStockMasivo(ctx context.Context, ids []uint, valor int) (int64, error)

	DB() *gorm.DB
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uint) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

// query builds the filtered listing query. Every listing filter is a scope
// from the filter package; an unset or unknown option is the identity scope,
// so the chain below is a plain AND of whatever the request selected.
func (r *productoRepo) query(ctx context.Context, f dto.ProductoFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Producto{})

	if f.Q != "" {
		like := "%" + f.Q + "%"
		q = q.Where("nombre ILIKE ? OR descripcion ILIKE ? OR CAST(stock AS TEXT) LIKE ?", like, like, like)
	}
	if f.ProveedorID != "" {
		q = q.Where("proveedor_id = ?", f.ProveedorID)
	}

	hoy := time.Now()
	return q.Scopes(
		filter.Vencimiento(f.Vencimiento).Scope(hoy),
		filter.AnioVencimiento(f.AnioVencimiento).Scope(hoy),
		filter.MesVencimiento(f.MesVencimiento).Scope(),
		filter.AnioPublicacion(f.AnioPublicacion).Scope(hoy),
		filter.MesPublicacion(f.MesPublicacion).Scope(),
		filter.StockCero(f.StockCero).Scope(),
		filter.PrecioRango(f.PrecioRango).Scope(),
	)
}

func (r *productoRepo) List(ctx context.Context, f dto.ProductoFilter) ([]model.Producto, int64, error) {
	var productos []model.Producto
	var total int64

	q := r.query(ctx, f)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (f.Page - 1) * f.Limit
	err := q.Order("id ASC").Limit(f.Limit).Offset(offset).Find(&productos).Error
	return productos, total, err
}

func (r *productoRepo) ListarParaExportar(ctx context.Context, f dto.ProductoFilter, ids []uint) ([]model.Producto, error) {
	var productos []model.Producto
	if len(ids) > 0 {
		err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&productos).Error
		return productos, err
	}
	err := r.query(ctx, f).Order("id ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) FindByCategoriaID(ctx context.Context, categoriaID uint) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).Where("categoria_id = ?", categoriaID).Find(&productos).Error
	return productos, err
}

func (r *productoRepo) FindByProveedorID(ctx context.Context, proveedorID uint) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).Where("proveedor_id = ?", proveedorID).Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Producto{}, id).Error
}

func (r *productoRepo) ActualizarStockMasivo(ctx context.Context, ids []uint, valor int) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("id IN ?", ids).
		Update("stock", valor)
	return res.RowsAffected, res.Error
}

func (r *productoRepo) DB() *gorm.DB { return r.db }
