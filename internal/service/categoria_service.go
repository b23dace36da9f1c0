package service

import (
	"context"
	"fmt"

	"github.com/RosaLopezC/D05/internal/dto"
	"github.com/RosaLopezC/D05/internal/exchange"
	"github.com/RosaLopezC/D05/internal/model"
	"github.com/RosaLopezC/D05/internal/repository"
)

type CategoriaService interface {
	Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.CategoriaResponse, error)
	Listar(ctx context.Context, f dto.CategoriaFilter) (*dto.CategoriaListResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error)
	// Eliminar deletes the category and, by cascade, every product in it.
	Eliminar(ctx context.Context, id uint) error
	Exportar(ctx context.Context, f dto.CategoriaFilter, ids []uint) ([]byte, error)
}

type categoriaService struct {
	repo repository.CategoriaRepository
}

func NewCategoriaService(repo repository.CategoriaRepository) CategoriaService {
	return &categoriaService{repo: repo}
}

func (s *categoriaService) Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error) {
	c := &model.Categoria{Nombre: req.Nombre, PubDate: req.PubDate}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("crear categoria: %w", err)
	}
	return categoriaToResponse(c), nil
}

func (s *categoriaService) ObtenerPorID(ctx context.Context, id uint) (*dto.CategoriaResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("categoria %d no encontrada", id)
	}
	return categoriaToResponse(c), nil
}

func (s *categoriaService) Listar(ctx context.Context, f dto.CategoriaFilter) (*dto.CategoriaListResponse, error) {
	categorias, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	resp := &dto.CategoriaListResponse{
		Data:  make([]dto.CategoriaResponse, 0, len(categorias)),
		Total: total,
		Page:  f.Page,
		Limit: f.Limit,
	}
	for _, c := range categorias {
		resp.Data = append(resp.Data, *categoriaToResponse(&c))
	}
	return resp, nil
}

func (s *categoriaService) Actualizar(ctx context.Context, id uint, req dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("categoria %d no encontrada", id)
	}
	if req.Nombre != nil {
		c.Nombre = *req.Nombre
	}
	if req.PubDate != nil {
		c.PubDate = *req.PubDate
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("actualizar categoria: %w", err)
	}
	return categoriaToResponse(c), nil
}

func (s *categoriaService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("categoria %d no encontrada", id)
	}
	return s.repo.Delete(ctx, id)
}

func (s *categoriaService) Exportar(ctx context.Context, f dto.CategoriaFilter, ids []uint) ([]byte, error) {
	categorias, err := s.repo.ListarParaExportar(ctx, f, ids)
	if err != nil {
		return nil, err
	}
	filas := make([][]any, 0, len(categorias))
	for _, c := range categorias {
		filas = append(filas, exchange.FilaCategoria(c))
	}
	return escribirLibro(exchange.ColumnasCategoria, filas)
}

func categoriaToResponse(c *model.Categoria) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{ID: c.ID, Nombre: c.Nombre, PubDate: c.PubDate}
}
