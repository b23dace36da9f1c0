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

type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.ClienteResponse, error)
	Listar(ctx context.Context, f dto.ClienteFilter) (*dto.ClienteListResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error)
	// Eliminar deletes the customer and, by cascade, every sale they made.
	Eliminar(ctx context.Context, id uint) error
	Exportar(ctx context.Context, f dto.ClienteFilter, ids []uint) ([]byte, error)
	Importar(ctx context.Context, filas []exchange.Fila) (int, error)
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	nacimiento, err := time.Parse("2006-01-02", req.FechaNacimiento)
	if err != nil {
		return nil, fmt.Errorf("fecha de nacimiento invalida: %q", req.FechaNacimiento)
	}
	c := &model.Cliente{
		Nombre:          req.Nombre,
		Apellido:        req.Apellido,
		DNI:             req.DNI,
		Direccion:       req.Direccion,
		Telefono:        req.Telefono,
		Email:           req.Email,
		FechaNacimiento: nacimiento,
		PubDate:         req.PubDate,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("ya existe un cliente con el DNI %s", req.DNI)
		}
		return nil, fmt.Errorf("crear cliente: %w", err)
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) ObtenerPorID(ctx context.Context, id uint) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cliente %d no encontrado", id)
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) Listar(ctx context.Context, f dto.ClienteFilter) (*dto.ClienteListResponse, error) {
	clientes, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	resp := &dto.ClienteListResponse{
		Data:  make([]dto.ClienteResponse, 0, len(clientes)),
		Total: total,
		Page:  f.Page,
		Limit: f.Limit,
	}
	for _, c := range clientes {
		resp.Data = append(resp.Data, *clienteToResponse(&c))
	}
	return resp, nil
}

func (s *clienteService) Actualizar(ctx context.Context, id uint, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cliente %d no encontrado", id)
	}
	if req.Nombre != nil {
		c.Nombre = *req.Nombre
	}
	if req.Apellido != nil {
		c.Apellido = *req.Apellido
	}
	if req.DNI != nil {
		c.DNI = *req.DNI
	}
	if req.Direccion != nil {
		c.Direccion = *req.Direccion
	}
	if req.Telefono != nil {
		c.Telefono = *req.Telefono
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.FechaNacimiento != nil {
		nacimiento, err := time.Parse("2006-01-02", *req.FechaNacimiento)
		if err != nil {
			return nil, fmt.Errorf("fecha de nacimiento invalida: %q", *req.FechaNacimiento)
		}
		c.FechaNacimiento = nacimiento
	}
	if req.PubDate != nil {
		c.PubDate = *req.PubDate
	}
	if err := s.repo.Update(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("ya existe un cliente con el DNI %s", c.DNI)
		}
		return nil, fmt.Errorf("actualizar cliente: %w", err)
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("cliente %d no encontrado", id)
	}
	return s.repo.Delete(ctx, id)
}

func (s *clienteService) Exportar(ctx context.Context, f dto.ClienteFilter, ids []uint) ([]byte, error) {
	clientes, err := s.repo.ListarParaExportar(ctx, f, ids)
	if err != nil {
		return nil, err
	}
	filas := make([][]any, 0, len(clientes))
	for _, c := range clientes {
		filas = append(filas, exchange.FilaCliente(c))
	}
	return escribirLibro(exchange.ColumnasCliente, filas)
}

func (s *clienteService) Importar(ctx context.Context, filas []exchange.Fila) (int, error) {
	importados := 0
	for i, fila := range filas {
		id, err := fila.Uint("id")
		if err != nil {
			logFilaInvalida("clientes", i, err)
			continue
		}
		existente, err := s.repo.FindByID(ctx, id)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return importados, err
			}
			existente = nil
		}
		c, err := exchange.MergeCliente(id, existente, fila)
		if err != nil {
			logFilaInvalida("clientes", i, err)
			continue
		}
		if existente == nil {
			err = s.repo.Create(ctx, c)
		} else {
			err = s.repo.Update(ctx, c)
		}
		if err != nil {
			logFilaInvalida("clientes", i, err)
			continue
		}
		importados++
	}
	return importados, nil
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:              c.ID,
		Nombre:          c.Nombre,
		Apellido:        c.Apellido,
		DNI:             c.DNI,
		Direccion:       c.Direccion,
		Telefono:        c.Telefono,
		Email:           c.Email,
		FechaNacimiento: c.FechaNacimiento.Format("2006-01-02"),
		PubDate:         c.PubDate,
	}
}
