package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/RosaLopezC/D05/internal/dto"
	"github.com/RosaLopezC/D05/internal/exchange"
	"github.com/RosaLopezC/D05/internal/model"
	"github.com/RosaLopezC/D05/internal/repository"

	"gorm.io/gorm"
)

type VendedorService interface {
	Crear(ctx context.Context, req dto.CrearVendedorRequest) (*dto.VendedorResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.VendedorResponse, error)
	Listar(ctx context.Context, f dto.VendedorFilter) (*dto.VendedorListResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarVendedorRequest) (*dto.VendedorResponse, error)
	// Eliminar deletes the seller and, by cascade, every sale they made.
	Eliminar(ctx context.Context, id uint) error
	Exportar(ctx context.Context, f dto.VendedorFilter, ids []uint) ([]byte, error)
	Importar(ctx context.Context, filas []exchange.Fila) (int, error)
}

type vendedorService struct {
	repo repository.VendedorRepository
}

func NewVendedorService(repo repository.VendedorRepository) VendedorService {
	return &vendedorService{repo: repo}
}

func (s *vendedorService) Crear(ctx context.Context, req dto.CrearVendedorRequest) (*dto.VendedorResponse, error) {
	v := &model.Vendedor{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Telefono: req.Telefono,
		Email:    req.Email,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, fmt.Errorf("crear vendedor: %w", err)
	}
	return vendedorToResponse(v), nil
}

func (s *vendedorService) ObtenerPorID(ctx context.Context, id uint) (*dto.VendedorResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("vendedor %d no encontrado", id)
	}
	return vendedorToResponse(v), nil
}

func (s *vendedorService) Listar(ctx context.Context, f dto.VendedorFilter) (*dto.VendedorListResponse, error) {
	vendedores, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	resp := &dto.VendedorListResponse{
		Data:  make([]dto.VendedorResponse, 0, len(vendedores)),
		Total: total,
		Page:  f.Page,
		Limit: f.Limit,
	}
	for _, v := range vendedores {
		resp.Data = append(resp.Data, *vendedorToResponse(&v))
	}
	return resp, nil
}

func (s *vendedorService) Actualizar(ctx context.Context, id uint, req dto.ActualizarVendedorRequest) (*dto.VendedorResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("vendedor %d no encontrado", id)
	}
	if req.Nombre != nil {
		v.Nombre = *req.Nombre
	}
	if req.Apellido != nil {
		v.Apellido = *req.Apellido
	}
	if req.Telefono != nil {
		v.Telefono = *req.Telefono
	}
	if req.Email != nil {
		v.Email = *req.Email
	}
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, fmt.Errorf("actualizar vendedor: %w", err)
	}
	return vendedorToResponse(v), nil
}

func (s *vendedorService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("vendedor %d no encontrado", id)
	}
	return s.repo.Delete(ctx, id)
}

func (s *vendedorService) Exportar(ctx context.Context, f dto.VendedorFilter, ids []uint) ([]byte, error) {
	vendedores, err := s.repo.ListarParaExportar(ctx, f, ids)
	if err != nil {
		return nil, err
	}
	filas := make([][]any, 0, len(vendedores))
	for _, v := range vendedores {
		filas = append(filas, exchange.FilaVendedor(v))
	}
	return escribirLibro(exchange.ColumnasVendedor, filas)
}

func (s *vendedorService) Importar(ctx context.Context, filas []exchange.Fila) (int, error) {
	importados := 0
	for i, fila := range filas {
		id, err := fila.Uint("id")
		if err != nil {
			logFilaInvalida("vendedores", i, err)
			continue
		}
		existente, err := s.repo.FindByID(ctx, id)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return importados, err
			}
			existente = nil
		}
		v, err := exchange.MergeVendedor(id, existente, fila)
		if err != nil {
			logFilaInvalida("vendedores", i, err)
			continue
		}
		if existente == nil {
			err = s.repo.Create(ctx, v)
		} else {
			err = s.repo.Update(ctx, v)
		}
		if err != nil {
			logFilaInvalida("vendedores", i, err)
			continue
		}
		importados++
	}
	return importados, nil
}

func vendedorToResponse(v *model.Vendedor) *dto.VendedorResponse {
	return &dto.VendedorResponse{
		ID:       v.ID,
		Nombre:   v.Nombre,
		Apellido: v.Apellido,
		Telefono: v.Telefono,
		Email:    v.Email,
	}
}
