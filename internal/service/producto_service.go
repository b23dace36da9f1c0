package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RosaLopezC/D05/internal/dto"
	"github.com/RosaLopezC/D05/internal/exchange"
	"github.com/RosaLopezC/D05/internal/model"
	"github.com/RosaLopezC/D05/internal/repository"

	"gorm.io/gorm"
)

// stockReposicion is the fixed value of the "reponer stock" bulk action.
const stockReposicion = 100

type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, f dto.ProductoFilter) (*dto.ProductoListResponse, error)
	ListarPorCategoria(ctx context.Context, categoriaID uint) ([]dto.ProductoResponse, error)
	ListarPorProveedor(ctx context.Context, proveedorID uint) ([]dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Eliminar(ctx context.Context, id uint) error

	// StockMasivo applies one of the two bulk stock actions to the selected
	// ids, uniformly and without per-record validation.
	StockMasivo(ctx context.Context, req dto.StockMasivoRequest) (*dto.StockMasivoResponse, error)

	Exportar(ctx context.Context, f dto.ProductoFilter, ids []uint) ([]byte, error)
	Importar(ctx context.Context, filas []exchange.Fila) (int, error)
}

type productoService struct {
	repo          repository.ProductoRepository
	categoriaRepo repository.CategoriaRepository
	proveedorRepo repository.ProveedorRepository
}

func NewProductoService(repo repository.ProductoRepository, categoriaRepo repository.CategoriaRepository, proveedorRepo repository.ProveedorRepository) ProductoService {
	return &productoService{repo: repo, categoriaRepo: categoriaRepo, proveedorRepo: proveedorRepo}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if _, err := s.categoriaRepo.FindByID(ctx, req.CategoriaID); err != nil {
		return nil, fmt.Errorf("la categoria %d no existe", req.CategoriaID)
	}
	if req.ProveedorID != nil {
		if _, err := s.proveedorRepo.FindByID(ctx, *req.ProveedorID); err != nil {
			return nil, fmt.Errorf("el proveedor %d no existe", *req.ProveedorID)
		}
	}

	vencimiento, err := parseFechaOpcional(req.FechaVencimiento)
	if err != nil {
		return nil, err
	}

	p := &model.Producto{
		CategoriaID:      req.CategoriaID,
		Nombre:           req.Nombre,
		Descripcion:      req.Descripcion,
		Precio:           req.Precio,
		Stock:            req.Stock,
		ProveedorID:      req.ProveedorID,
		FechaVencimiento: vencimiento,
		PubDate:          req.PubDate,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("crear producto: %w", err)
	}
	return productoToResponse(p), nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, id uint) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("producto %d no encontrado", id)
	}
	return productoToResponse(p), nil
}

func (s *productoService) Listar(ctx context.Context, f dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	productos, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	resp := &dto.ProductoListResponse{
		Data:  make([]dto.ProductoResponse, 0, len(productos)),
		Total: total,
		Page:  f.Page,
		Limit: f.Limit,
	}
	for _, p := range productos {
		resp.Data = append(resp.Data, *productoToResponse(&p))
	}
	return resp, nil
}

func (s *productoService) ListarPorCategoria(ctx context.Context, categoriaID uint) ([]dto.ProductoResponse, error) {
	productos, err := s.repo.FindByCategoriaID(ctx, categoriaID)
	if err != nil {
		return nil, err
	}
	return productosToResponses(productos), nil
}

func (s *productoService) ListarPorProveedor(ctx context.Context, proveedorID uint) ([]dto.ProductoResponse, error) {
	productos, err := s.repo.FindByProveedorID(ctx, proveedorID)
	if err != nil {
		return nil, err
	}
	return productosToResponses(productos), nil
}

func (s *productoService) Actualizar(ctx context.Context, id uint, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("producto %d no encontrado", id)
	}
	if req.CategoriaID != nil {
		if _, err := s.categoriaRepo.FindByID(ctx, *req.CategoriaID); err != nil {
			return nil, fmt.Errorf("la categoria %d no existe", *req.CategoriaID)
		}
		p.CategoriaID = *req.CategoriaID
	}
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		p.Descripcion = *req.Descripcion
	}
	if req.Precio != nil {
		p.Precio = *req.Precio
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.ProveedorID != nil {
		if _, err := s.proveedorRepo.FindByID(ctx, *req.ProveedorID); err != nil {
			return nil, fmt.Errorf("el proveedor %d no existe", *req.ProveedorID)
		}
		p.ProveedorID = req.ProveedorID
	}
	if req.FechaVencimiento != nil {
		vencimiento, err := parseFechaOpcional(req.FechaVencimiento)
		if err != nil {
			return nil, err
		}
		p.FechaVencimiento = vencimiento
	}
	if req.PubDate != nil {
		p.PubDate = *req.PubDate
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("actualizar producto: %w", err)
	}
	return productoToResponse(p), nil
}

func (s *productoService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("producto %d no encontrado", id)
	}
	return s.repo.Delete(ctx, id)
}

func (s *productoService) StockMasivo(ctx context.Context, req dto.StockMasivoRequest) (*dto.StockMasivoResponse, error) {
	var valor int
	switch req.Accion {
	case dto.AccionReponerStock:
		valor = stockReposicion
	case dto.AccionAgotarStock:
		valor = 0
	default:
		return nil, fmt.Errorf("accion de stock desconocida: %s", req.Accion)
	}
	actualizados, err := s.repo.ActualizarStockMasivo(ctx, req.IDs, valor)
	if err != nil {
		return nil, fmt.Errorf("actualizar stock masivo: %w", err)
	}
	return &dto.StockMasivoResponse{Actualizados: actualizados}, nil
}

func (s *productoService) Exportar(ctx context.Context, f dto.ProductoFilter, ids []uint) ([]byte, error) {
	productos, err := s.repo.ListarParaExportar(ctx, f, ids)
	if err != nil {
		return nil, err
	}
	filas := make([][]any, 0, len(productos))
	for _, p := range productos {
		filas = append(filas, exchange.FilaProducto(p))
	}
	return escribirLibro(exchange.ColumnasProducto, filas)
}

func (s *productoService) Importar(ctx context.Context, filas []exchange.Fila) (int, error) {
	importados := 0
	for i, fila := range filas {
		id, err := fila.Uint("id")
		if err != nil {
			logFilaInvalida("productos", i, err)
			continue
		}
		existente, err := s.repo.FindByID(ctx, id)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return importados, err
			}
			existente = nil
		}
		p, err := exchange.MergeProducto(id, existente, fila)
		if err != nil {
			logFilaInvalida("productos", i, err)
			continue
		}
		if existente == nil {
			err = s.repo.Create(ctx, p)
		} else {
			err = s.repo.Update(ctx, p)
		}
		if err != nil {
			logFilaInvalida("productos", i, err)
			continue
		}
		importados++
	}
	return importados, nil
}

func productosToResponses(productos []model.Producto) []dto.ProductoResponse {
	out := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, *productoToResponse(&p))
	}
	return out
}

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	var vencimiento *string
	if p.FechaVencimiento != nil {
		s := p.FechaVencimiento.Format("2006-01-02")
		vencimiento = &s
	}
	return &dto.ProductoResponse{
		ID:               p.ID,
		CategoriaID:      p.CategoriaID,
		Nombre:           p.Nombre,
		Descripcion:      p.Descripcion,
		Precio:           p.Precio,
		Stock:            p.Stock,
		ProveedorID:      p.ProveedorID,
		FechaVencimiento: vencimiento,
		PubDate:          p.PubDate,
	}
}

// parseFechaOpcional parses a "2006-01-02" request field; nil or empty means
// no date.
func parseFechaOpcional(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, fmt.Errorf("fecha invalida: %q", *s)
	}
	return &t, nil
}
