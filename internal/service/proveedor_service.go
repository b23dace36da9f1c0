package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/RosaLopezC/D05/internal/dto"
	"github.com/RosaLopezC/D05/internal/exchange"
	"github.com/RosaLopezC/D05/internal/model"
	"github.com/RosaLopezC/D05/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ProveedorService interface {
	Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.ProveedorResponse, error)
	Listar(ctx context.Context, f dto.ProveedorFilter) (*dto.ProveedorListResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarProveedorRequest) (*dto.ProveedorResponse, error)
	// Eliminar deletes the supplier; its products survive with the supplier
	// reference nulled.
	Eliminar(ctx context.Context, id uint) error
	Exportar(ctx context.Context, f dto.ProveedorFilter, ids []uint) ([]byte, error)
	Importar(ctx context.Context, filas []exchange.Fila) (int, error)
}

type proveedorService struct {
	repo repository.ProveedorRepository
}

func NewProveedorService(repo repository.ProveedorRepository) ProveedorService {
	return &proveedorService{repo: repo}
}

func (s *proveedorService) Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	p := &model.Proveedor{
		Nombre:           req.Nombre,
		ContactoNombre:   req.ContactoNombre,
		ContactoTelefono: req.ContactoTelefono,
		ContactoEmail:    req.ContactoEmail,
		Direccion:        req.Direccion,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("crear proveedor: %w", err)
	}
	return proveedorToResponse(p), nil
}

func (s *proveedorService) ObtenerPorID(ctx context.Context, id uint) (*dto.ProveedorResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("proveedor %d no encontrado", id)
	}
	return proveedorToResponse(p), nil
}

func (s *proveedorService) Listar(ctx context.Context, f dto.ProveedorFilter) (*dto.ProveedorListResponse, error) {
	proveedores, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	resp := &dto.ProveedorListResponse{
		Data:  make([]dto.ProveedorResponse, 0, len(proveedores)),
		Total: total,
		Page:  f.Page,
		Limit: f.Limit,
	}
	for _, p := range proveedores {
		resp.Data = append(resp.Data, *proveedorToResponse(&p))
	}
	return resp, nil
}

func (s *proveedorService) Actualizar(ctx context.Context, id uint, req dto.ActualizarProveedorRequest) (*dto.ProveedorResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("proveedor %d no encontrado", id)
	}
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.ContactoNombre != nil {
		p.ContactoNombre = *req.ContactoNombre
	}
	if req.ContactoTelefono != nil {
		p.ContactoTelefono = *req.ContactoTelefono
	}
	if req.ContactoEmail != nil {
		p.ContactoEmail = *req.ContactoEmail
	}
	if req.Direccion != nil {
		p.Direccion = *req.Direccion
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("actualizar proveedor: %w", err)
	}
	return proveedorToResponse(p), nil
}

func (s *proveedorService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("proveedor %d no encontrado", id)
	}
	return s.repo.Delete(ctx, id)
}

func (s *proveedorService) Exportar(ctx context.Context, f dto.ProveedorFilter, ids []uint) ([]byte, error) {
	proveedores, err := s.repo.ListarParaExportar(ctx, f, ids)
	if err != nil {
		return nil, err
	}
	filas := make([][]any, 0, len(proveedores))
	for _, p := range proveedores {
		filas = append(filas, exchange.FilaProveedor(p))
	}
	return escribirLibro(exchange.ColumnasProveedor, filas)
}

func (s *proveedorService) Importar(ctx context.Context, filas []exchange.Fila) (int, error) {
	importados := 0
	for i, fila := range filas {
		id, err := fila.Uint("id")
		if err != nil {
			logFilaInvalida("proveedores", i, err)
			continue
		}
		existente, err := s.repo.FindByID(ctx, id)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return importados, err
			}
			existente = nil
		}
		p, err := exchange.MergeProveedor(id, existente, fila)
		if err != nil {
			logFilaInvalida("proveedores", i, err)
			continue
		}
		if existente == nil {
			err = s.repo.Create(ctx, p)
		} else {
			err = s.repo.Update(ctx, p)
		}
		if err != nil {
			logFilaInvalida("proveedores", i, err)
			continue
		}
		importados++
	}
	return importados, nil
}

func proveedorToResponse(p *model.Proveedor) *dto.ProveedorResponse {
	return &dto.ProveedorResponse{
		ID:               p.ID,
		Nombre:           p.Nombre,
		ContactoNombre:   p.ContactoNombre,
		ContactoTelefono: p.ContactoTelefono,
		ContactoEmail:    p.ContactoEmail,
		Direccion:        p.Direccion,
	}
}

// escribirLibro serializes export rows and returns the workbook bytes.
func escribirLibro(columnas []string, filas [][]any) ([]byte, error) {
	libro, err := exchange.EscribirLibro(columnas, filas)
	if err != nil {
		return nil, err
	}
	buf, err := libro.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// logFilaInvalida records a row-level import failure. Rows are independent:
// one bad row never rolls back the ones already written.
func logFilaInvalida(entidad string, indice int, err error) {
	log.Warn().
		Str("entidad", entidad).
		Int("fila", indice+2). // +2: header row plus 1-based sheet numbering
		Err(err).
		Msg("fila de importacion descartada")
}
