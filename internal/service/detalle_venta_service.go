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

type DetalleVentaService interface {
	Crear(ctx context.Context, req dto.CrearDetalleVentaRequest) (*dto.DetalleVentaResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.DetalleVentaResponse, error)
	Listar(ctx context.Context, f dto.DetalleVentaFilter) (*dto.DetalleVentaListResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarDetalleVentaRequest) (*dto.DetalleVentaResponse, error)
	Eliminar(ctx context.Context, id uint) error
	Exportar(ctx context.Context, f dto.DetalleVentaFilter, ids []uint) ([]byte, error)
	Importar(ctx context.Context, filas []exchange.Fila) (int, error)
}

type detalleVentaService struct {
	repo         repository.DetalleVentaRepository
	ventaRepo    repository.VentaRepository
	productoRepo repository.ProductoRepository
}

func NewDetalleVentaService(repo repository.DetalleVentaRepository, ventaRepo repository.VentaRepository, productoRepo repository.ProductoRepository) DetalleVentaService {
	return &detalleVentaService{repo: repo, ventaRepo: ventaRepo, productoRepo: productoRepo}
}

func (s *detalleVentaService) Crear(ctx context.Context, req dto.CrearDetalleVentaRequest) (*dto.DetalleVentaResponse, error) {
	if _, err := s.ventaRepo.FindByID(ctx, req.VentaID); err != nil {
		return nil, fmt.Errorf("la venta %d no existe", req.VentaID)
	}
	if _, err := s.productoRepo.FindByID(ctx, req.ProductoID); err != nil {
		return nil, fmt.Errorf("el producto %d no existe", req.ProductoID)
	}
	d := &model.DetalleVenta{
		VentaID:         req.VentaID,
		ProductoID:      req.ProductoID,
		CantidadVendida: req.CantidadVendida,
		PrecioUnitario:  req.PrecioUnitario,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("crear detalle de venta: %w", err)
	}
	return detalleVentaToResponse(d), nil
}

func (s *detalleVentaService) ObtenerPorID(ctx context.Context, id uint) (*dto.DetalleVentaResponse, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("detalle %d no encontrado", id)
	}
	return detalleVentaToResponse(d), nil
}

func (s *detalleVentaService) Listar(ctx context.Context, f dto.DetalleVentaFilter) (*dto.DetalleVentaListResponse, error) {
	detalles, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	resp := &dto.DetalleVentaListResponse{
		Data:  make([]dto.DetalleVentaResponse, 0, len(detalles)),
		Total: total,
		Page:  f.Page,
		Limit: f.Limit,
	}
	for _, d := range detalles {
		resp.Data = append(resp.Data, *detalleVentaToResponse(&d))
	}
	return resp, nil
}

func (s *detalleVentaService) Actualizar(ctx context.Context, id uint, req dto.ActualizarDetalleVentaRequest) (*dto.DetalleVentaResponse, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("detalle %d no encontrado", id)
	}
	if req.VentaID != nil {
		if _, err := s.ventaRepo.FindByID(ctx, *req.VentaID); err != nil {
			return nil, fmt.Errorf("la venta %d no existe", *req.VentaID)
		}
		d.VentaID = *req.VentaID
	}
	if req.ProductoID != nil {
		if _, err := s.productoRepo.FindByID(ctx, *req.ProductoID); err != nil {
			return nil, fmt.Errorf("el producto %d no existe", *req.ProductoID)
		}
		d.ProductoID = *req.ProductoID
	}
	if req.CantidadVendida != nil {
		d.CantidadVendida = *req.CantidadVendida
	}
	if req.PrecioUnitario != nil {
		d.PrecioUnitario = *req.PrecioUnitario
	}
	if err := s.repo.Update(ctx, d); err != nil {
		return nil, fmt.Errorf("actualizar detalle de venta: %w", err)
	}
	return detalleVentaToResponse(d), nil
}

func (s *detalleVentaService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("detalle %d no encontrado", id)
	}
	return s.repo.Delete(ctx, id)
}

func (s *detalleVentaService) Exportar(ctx context.Context, f dto.DetalleVentaFilter, ids []uint) ([]byte, error) {
	detalles, err := s.repo.ListarParaExportar(ctx, f, ids)
	if err != nil {
		return nil, err
	}
	filas := make([][]any, 0, len(detalles))
	for _, d := range detalles {
		filas = append(filas, exchange.FilaDetalleVenta(d))
	}
	return escribirLibro(exchange.ColumnasDetalleVenta, filas)
}

func (s *detalleVentaService) Importar(ctx context.Context, filas []exchange.Fila) (int, error) {
	importados := 0
	for i, fila := range filas {
		id, err := fila.Uint("id")
		if err != nil {
			logFilaInvalida("detalle_ventas", i, err)
			continue
		}
		existente, err := s.repo.FindByID(ctx, id)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return importados, err
			}
			existente = nil
		}
		d, err := exchange.MergeDetalleVenta(id, existente, fila)
		if err != nil {
			logFilaInvalida("detalle_ventas", i, err)
			continue
		}
		if existente == nil {
			err = s.repo.Create(ctx, d)
		} else {
			err = s.repo.Update(ctx, d)
		}
		if err != nil {
			logFilaInvalida("detalle_ventas", i, err)
			continue
		}
		importados++
	}
	return importados, nil
}

func detalleVentaToResponse(d *model.DetalleVenta) *dto.DetalleVentaResponse {
	return &dto.DetalleVentaResponse{
		ID:              d.ID,
		VentaID:         d.VentaID,
		ProductoID:      d.ProductoID,
		CantidadVendida: d.CantidadVendida,
		PrecioUnitario:  d.PrecioUnitario,
	}
}
