package repository

import (
	"context"

	"github.com/RosaLopezC/D05/internal/dto"
	"github.com/RosaLopezC/D05/internal/model"

	"gorm.io/gorm"
)

// CategoriaRepository defines the data access contract for categories.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type CategoriaRepository interface {
	Create(ctx context.Context, c *model.Categoria) error
	FindByID(ctx context.Context, id uint) (*model.Categoria, error)
	List(ctx context.Context, f dto.CategoriaFilter) ([]model.Categoria, int64, error)
	ListarParaExportar(ctx context.Context, f dto.CategoriaFilter, ids []uint) ([]model.Categoria, error)
	Update(ctx context.Context, c *model.Categoria) error
	// Delete removes the category; its products go with it (FK CASCADE).
	Delete(ctx context.Context, id uint) error
	DB() *gorm.DB
}

type categoriaRepo struct{ db *gorm.DB }

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository { return &categoriaRepo{db: db} }

func (r *categoriaRepo) Create(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoriaRepo) FindByID(ctx context.Context, id uint) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *categoriaRepo) query(ctx context.Context, f dto.CategoriaFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Categoria{})
	if f.Q != "" {
		q = q.Where("nombre ILIKE ?", "%"+f.Q+"%")
	}
	return q
}

func (r *categoriaRepo) List(ctx context.Context, f dto.CategoriaFilter) ([]model.Categoria, int64, error) {
	var categorias []model.Categoria
	var total int64

	q := r.query(ctx, f)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (f.Page - 1) * f.Limit
	err := q.Order("id ASC").Limit(f.Limit).Offset(offset).Find(&categorias).Error
	return categorias, total, err
}

func (r *categoriaRepo) ListarParaExportar(ctx context.Context, f dto.CategoriaFilter, ids []uint) ([]model.Categoria, error) {
	var categorias []model.Categoria
	if len(ids) > 0 {
		err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&categorias).Error
		return categorias, err
	}
	err := r.query(ctx, f).Order("id ASC").Find(&categorias).Error
	return categorias, err
}

func (r *categoriaRepo) Update(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *categoriaRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Categoria{}, id).Error
}

func (r *categoriaRepo) DB() *gorm.DB { return r.db }
