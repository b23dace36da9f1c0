package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/RosaLopezC/D05/internal/dto"
	"github.com/RosaLopezC/D05/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type ventaRepoStub struct {
	ventas   map[uint]model.Venta
	detalles []model.DetalleVenta
	nextID   uint
}

func newVentaRepoStub() *ventaRepoStub {
	return &ventaRepoStub{ventas: make(map[uint]model.Venta), nextID: 1}
}

func (r *ventaRepoStub) Create(_ context.Context, v *model.Venta) error {
	if v.ID == 0 {
		v.ID = r.nextID
	}
	if v.ID >= r.nextID {
		r.nextID = v.ID + 1
	}
	r.ventas[v.ID] = *v
	return nil
}

func (r *ventaRepoStub) FindByID(_ context.Context, id uint) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &v, nil
}

func (r *ventaRepoStub) List(_ context.Context, _ dto.VentaFilter) ([]model.Venta, int64, error) {
	out := make([]model.Venta, 0, len(r.ventas))
	for _, v := range r.ventas {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (r *ventaRepoStub) ListarParaExportar(_ context.Context, _ dto.VentaFilter, _ []uint) ([]model.Venta, error) {
	out, _, _ := r.List(context.Background(), dto.VentaFilter{})
	return out, nil
}

func (r *ventaRepoStub) Update(_ context.Context, v *model.Venta) error {
	r.ventas[v.ID] = *v
	return nil
}

func (r *ventaRepoStub) Delete(_ context.Context, id uint) error {
	delete(r.ventas, id)
	return nil
}

func (r *ventaRepoStub) ListarDetalles(_ context.Context, ventaID uint) ([]model.DetalleVenta, error) {
	var out []model.DetalleVenta
	for _, d := range r.detalles {
		if d.VentaID == ventaID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *ventaRepoStub) TotalesCalculados(_ context.Context, ventaIDs []uint) (map[uint]decimal.Decimal, error) {
	out := make(map[uint]decimal.Decimal, len(ventaIDs))
	for _, id := range ventaIDs {
		total := decimal.Zero
		for _, d := range r.detalles {
			if d.VentaID == id {
				total = total.Add(d.PrecioUnitario)
			}
		}
		out[id] = total
	}
	return out, nil
}

func (r *ventaRepoStub) DB() *gorm.DB { return nil }

type vendedorRepoStub struct{ ids map[uint]bool }

func (r *vendedorRepoStub) Create(_ context.Context, _ *model.Vendedor) error { return nil }
func (r *vendedorRepoStub) FindByID(_ context.Context, id uint) (*model.Vendedor, error) {
	if !r.ids[id] {
		return nil, gorm.ErrRecordNotFound
	}
	return &model.Vendedor{ID: id}, nil
}
func (r *vendedorRepoStub) List(_ context.Context, _ dto.VendedorFilter) ([]model.Vendedor, int64, error) {
	return nil, 0, nil
}
func (r *vendedorRepoStub) ListarParaExportar(_ context.Context, _ dto.VendedorFilter, _ []uint) ([]model.Vendedor, error) {
	return nil, nil
}
func (r *vendedorRepoStub) Update(_ context.Context, _ *model.Vendedor) error { return nil }
func (r *vendedorRepoStub) Delete(_ context.Context, _ uint) error            { return nil }
func (r *vendedorRepoStub) DB() *gorm.DB                                      { return nil }

func newVentaService(repo *ventaRepoStub) VentaService {
	clientes := newClienteRepoStub()
	_ = clientes.Create(context.Background(), &model.Cliente{ID: 1, DNI: "45678912"})
	return NewVentaService(repo, clientes, &vendedorRepoStub{ids: map[uint]bool{1: true}})
}

func TestVentaService_Crear_ReferenciasInexistentes(t *testing.T) {
	svc := newVentaService(newVentaRepoStub())

	_, err := svc.Crear(context.Background(), dto.CrearVentaRequest{
		ClienteID:  99,
		VendedorID: 1,
		FechaVenta: time.Now(),
		TotalVenta: decimal.RequireFromString("10.00"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "el cliente 99 no existe")

	_, err = svc.Crear(context.Background(), dto.CrearVentaRequest{
		ClienteID:  1,
		VendedorID: 99,
		FechaVenta: time.Now(),
		TotalVenta: decimal.RequireFromString("10.00"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "el vendedor 99 no existe")
}

func TestVentaService_TotalCalculadoSumaPreciosUnitarios(t *testing.T) {
	repo := newVentaRepoStub()
	svc := newVentaService(repo)

	resp, err := svc.Crear(context.Background(), dto.CrearVentaRequest{
		ClienteID:  1,
		VendedorID: 1,
		FechaVenta: time.Date(2024, 5, 2, 15, 30, 0, 0, time.UTC),
		TotalVenta: decimal.RequireFromString("16.20"),
	})
	require.NoError(t, err)

	repo.detalles = []model.DetalleVenta{
		{ID: 1, VentaID: resp.ID, ProductoID: 1, CantidadVendida: 2, PrecioUnitario: decimal.RequireFromString("4.50")},
		{ID: 2, VentaID: resp.ID, ProductoID: 3, CantidadVendida: 1, PrecioUnitario: decimal.RequireFromString("7.20")},
	}

	lista, err := svc.Listar(context.Background(), dto.VentaFilter{Page: 1, Limit: 50})
	require.NoError(t, err)
	require.Len(t, lista.Data, 1)

	// The calculated total sums unit prices only — quantities are ignored —
	// so it diverges from the stored total (2×4.50 + 1×7.20 = 16.20).
	assert.True(t, lista.Data[0].TotalVenta.Equal(decimal.RequireFromString("16.20")))
	assert.True(t, lista.Data[0].TotalVentaCalculado.Equal(decimal.RequireFromString("11.70")))
}

func TestVentaService_ListarDetalles(t *testing.T) {
	repo := newVentaRepoStub()
	svc := newVentaService(repo)

	resp, err := svc.Crear(context.Background(), dto.CrearVentaRequest{
		ClienteID:  1,
		VendedorID: 1,
		FechaVenta: time.Now(),
		TotalVenta: decimal.RequireFromString("9.00"),
	})
	require.NoError(t, err)

	repo.detalles = []model.DetalleVenta{
		{ID: 1, VentaID: resp.ID, ProductoID: 1, CantidadVendida: 2, PrecioUnitario: decimal.RequireFromString("4.50")},
		{ID: 2, VentaID: 99, ProductoID: 1, CantidadVendida: 1, PrecioUnitario: decimal.RequireFromString("4.50")},
	}

	detalles, err := svc.ListarDetalles(context.Background(), resp.ID)
	require.NoError(t, err)
	require.Len(t, detalles, 1)
	assert.Equal(t, 2, detalles[0].CantidadVendida)

	_, err = svc.ListarDetalles(context.Background(), 42)
	assert.Error(t, err)
}
