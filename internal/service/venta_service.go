package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/RosaLopezC/D05/internal/dto"
	"github.com/RosaLopezC/D05/internal/exchange"
	"github.com/RosaLopezC/D05/internal/model"
	"github.com/RosaLopezC/D05/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VentaService interface {
	Crear(ctx context.Context, req dto.CrearVentaRequest) (*dto.VentaResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.VentaResponse, error)
	Listar(ctx context.Context, f dto.VentaFilter) (*dto.VentaListResponse, error)
	ListarDetalles(ctx context.Context, ventaID uint) ([]dto.DetalleVentaResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarVentaRequest) (*dto.VentaResponse, error)
	// Eliminar deletes the sale and its detalle lines.
	Eliminar(ctx context.Context, id uint) error
	Exportar(ctx context.Context, f dto.VentaFilter, ids []uint) ([]byte, error)
	Importar(ctx context.Context, filas []exchange.Fila) (int, error)
}

type ventaService struct {
	repo         repository.VentaRepository
	clienteRepo  repository.ClienteRepository
	vendedorRepo repository.VendedorRepository
}

func NewVentaService(repo repository.VentaRepository, clienteRepo repository.ClienteRepository, vendedorRepo repository.VendedorRepository) VentaService {
	return &ventaService{repo: repo, clienteRepo: clienteRepo, vendedorRepo: vendedorRepo}
}

func (s *ventaService) Crear(ctx context.Context, req dto.CrearVentaRequest) (*dto.VentaResponse, error) {
	if _, err := s.clienteRepo.FindByID(ctx, req.ClienteID); err != nil {
		return nil, fmt.Errorf("el cliente %d no existe", req.ClienteID)
	}
	if _, err := s.vendedorRepo.FindByID(ctx, req.VendedorID); err != nil {
		return nil, fmt.Errorf("el vendedor %d no existe", req.VendedorID)
	}
	v := &model.Venta{
		ClienteID:  req.ClienteID,
		VendedorID: req.VendedorID,
		FechaVenta: req.FechaVenta,
		TotalVenta: req.TotalVenta,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, fmt.Errorf("crear venta: %w", err)
	}
	return s.ventaToResponse(ctx, v)
}

func (s *ventaService) ObtenerPorID(ctx context.Context, id uint) (*dto.VentaResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("venta %d no encontrada", id)
	}
	return s.ventaToResponse(ctx, v)
}

func (s *ventaService) Listar(ctx context.Context, f dto.VentaFilter) (*dto.VentaListResponse, error) {
	ventas, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(ventas))
	for _, v := range ventas {
		ids = append(ids, v.ID)
	}
	calculados, err := s.repo.TotalesCalculados(ctx, ids)
	if err != nil {
		return nil, err
	}

	resp := &dto.VentaListResponse{
		Data:  make([]dto.VentaResponse, 0, len(ventas)),
		Total: total,
		Page:  f.Page,
		Limit: f.Limit,
	}
	for _, v := range ventas {
		resp.Data = append(resp.Data, dto.VentaResponse{
			ID:                  v.ID,
			ClienteID:           v.ClienteID,
			VendedorID:          v.VendedorID,
			FechaVenta:          v.FechaVenta,
			TotalVenta:          v.TotalVenta,
			TotalVentaCalculado: calculados[v.ID],
		})
	}
	return resp, nil
}

func (s *ventaService) ListarDetalles(ctx context.Context, ventaID uint) ([]dto.DetalleVentaResponse, error) {
	if _, err := s.repo.FindByID(ctx, ventaID); err != nil {
		return nil, fmt.Errorf("venta %d no encontrada", ventaID)
	}
	detalles, err := s.repo.ListarDetalles(ctx, ventaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DetalleVentaResponse, 0, len(detalles))
	for _, d := range detalles {
		out = append(out, *detalleVentaToResponse(&d))
	}
	return out, nil
}

func (s *ventaService) Actualizar(ctx context.Context, id uint, req dto.ActualizarVentaRequest) (*dto.VentaResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("venta %d no encontrada", id)
	}
	if req.ClienteID != nil {
		if _, err := s.clienteRepo.FindByID(ctx, *req.ClienteID); err != nil {
			return nil, fmt.Errorf("el cliente %d no existe", *req.ClienteID)
		}
		v.ClienteID = *req.ClienteID
	}
	if req.VendedorID != nil {
		if _, err := s.vendedorRepo.FindByID(ctx, *req.VendedorID); err != nil {
			return nil, fmt.Errorf("el vendedor %d no existe", *req.VendedorID)
		}
		v.VendedorID = *req.VendedorID
	}
	if req.FechaVenta != nil {
		v.FechaVenta = *req.FechaVenta
	}
	if req.TotalVenta != nil {
		v.TotalVenta = *req.TotalVenta
	}
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, fmt.Errorf("actualizar venta: %w", err)
	}
	return s.ventaToResponse(ctx, v)
}

func (s *ventaService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("venta %d no encontrada", id)
	}
	return s.repo.Delete(ctx, id)
}

func (s *ventaService) Exportar(ctx context.Context, f dto.VentaFilter, ids []uint) ([]byte, error) {
	ventas, err := s.repo.ListarParaExportar(ctx, f, ids)
	if err != nil {
		return nil, err
	}
	filas := make([][]any, 0, len(ventas))
	for _, v := range ventas {
		filas = append(filas, exchange.FilaVenta(v))
	}
	return escribirLibro(exchange.ColumnasVenta, filas)
}

func (s *ventaService) Importar(ctx context.Context, filas []exchange.Fila) (int, error) {
	importados := 0
	for i, fila := range filas {
		id, err := fila.Uint("id")
		if err != nil {
			logFilaInvalida("ventas", i, err)
			continue
		}
		existente, err := s.repo.FindByID(ctx, id)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return importados, err
			}
			existente = nil
		}
		v, err := exchange.MergeVenta(id, existente, fila)
		if err != nil {
			logFilaInvalida("ventas", i, err)
			continue
		}
		if existente == nil {
			err = s.repo.Create(ctx, v)
		} else {
			err = s.repo.Update(ctx, v)
		}
		if err != nil {
			logFilaInvalida("ventas", i, err)
			continue
		}
		importados++
	}
	return importados, nil
}

func (s *ventaService) ventaToResponse(ctx context.Context, v *model.Venta) (*dto.VentaResponse, error) {
	calculados, err := s.repo.TotalesCalculados(ctx, []uint{v.ID})
	if err != nil {
		return nil, err
	}
	calculado, ok := calculados[v.ID]
	if !ok {
		calculado = decimal.Zero
	}
	return &dto.VentaResponse{
		ID:                  v.ID,
		ClienteID:           v.ClienteID,
		VendedorID:          v.VendedorID,
		FechaVenta:          v.FechaVenta,
		TotalVenta:          v.TotalVenta,
		TotalVentaCalculado: calculado,
	}, nil
}
