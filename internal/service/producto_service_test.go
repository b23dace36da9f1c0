package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/RosaLopezC/D05/internal/dto"
	"github.com/RosaLopezC/D05/internal/exchange"
	"github.com/RosaLopezC/D05/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ─── In-memory stubs ─────────────────────────────────────────────────────────

type productoRepoStub struct {
	productos map[uint]model.Producto
	nextID    uint
}

func newProductoRepoStub() *productoRepoStub {
	return &productoRepoStub{productos: make(map[uint]model.Producto), nextID: 1}
}

func (r *productoRepoStub) Create(_ context.Context, p *model.Producto) error {
	if p.ID == 0 {
		p.ID = r.nextID
	}
	if p.ID >= r.nextID {
		r.nextID = p.ID + 1
	}
	r.productos[p.ID] = *p
	return nil
}

func (r *productoRepoStub) FindByID(_ context.Context, id uint) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *productoRepoStub) todos() []model.Producto {
	out := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *productoRepoStub) List(_ context.Context, _ dto.ProductoFilter) ([]model.Producto, int64, error) {
	todos := r.todos()
	return todos, int64(len(todos)), nil
}

func (r *productoRepoStub) ListarParaExportar(_ context.Context, _ dto.ProductoFilter, ids []uint) ([]model.Producto, error) {
	if len(ids) == 0 {
		return r.todos(), nil
	}
	out := make([]model.Producto, 0, len(ids))
	for _, p := range r.todos() {
		for _, id := range ids {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (r *productoRepoStub) FindByCategoriaID(_ context.Context, categoriaID uint) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.todos() {
		if p.CategoriaID == categoriaID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *productoRepoStub) FindByProveedorID(_ context.Context, proveedorID uint) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.todos() {
		if p.ProveedorID != nil && *p.ProveedorID == proveedorID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *productoRepoStub) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = *p
	return nil
}

func (r *productoRepoStub) Delete(_ context.Context, id uint) error {
	delete(r.productos, id)
	return nil
}

func (r *productoRepoStub) ActualizarStockMasivo(_ context.Context, ids []uint, valor int) (int64, error) {
	var n int64
	for _, id := range ids {
		p, ok := r.productos[id]
		if !ok {
			continue
		}
		p.Stock = valor
		r.productos[id] = p
		n++
	}
	return n, nil
}

func (r *productoRepoStub) DB() *gorm.DB { return nil }

type categoriaRepoStub struct{ ids map[uint]bool }

func (r *categoriaRepoStub) Create(_ context.Context, c *model.Categoria) error { return nil }
func (r *categoriaRepoStub) FindByID(_ context.Context, id uint) (*model.Categoria, error) {
	if !r.ids[id] {
		return nil, gorm.ErrRecordNotFound
	}
	return &model.Categoria{ID: id}, nil
}
func (r *categoriaRepoStub) List(_ context.Context, _ dto.CategoriaFilter) ([]model.Categoria, int64, error) {
	return nil, 0, nil
}
func (r *categoriaRepoStub) ListarParaExportar(_ context.Context, _ dto.CategoriaFilter, _ []uint) ([]model.Categoria, error) {
	return nil, nil
}
func (r *categoriaRepoStub) Update(_ context.Context, _ *model.Categoria) error { return nil }
func (r *categoriaRepoStub) Delete(_ context.Context, _ uint) error             { return nil }
func (r *categoriaRepoStub) DB() *gorm.DB                                       { return nil }

type proveedorRepoStub struct{ ids map[uint]bool }

func (r *proveedorRepoStub) Create(_ context.Context, _ *model.Proveedor) error { return nil }
func (r *proveedorRepoStub) FindByID(_ context.Context, id uint) (*model.Proveedor, error) {
	if !r.ids[id] {
		return nil, gorm.ErrRecordNotFound
	}
	return &model.Proveedor{ID: id}, nil
}
func (r *proveedorRepoStub) List(_ context.Context, _ dto.ProveedorFilter) ([]model.Proveedor, int64, error) {
	return nil, 0, nil
}
func (r *proveedorRepoStub) ListarParaExportar(_ context.Context, _ dto.ProveedorFilter, _ []uint) ([]model.Proveedor, error) {
	return nil, nil
}
func (r *proveedorRepoStub) Update(_ context.Context, _ *model.Proveedor) error { return nil }
func (r *proveedorRepoStub) Delete(_ context.Context, _ uint) error             { return nil }
func (r *proveedorRepoStub) DB() *gorm.DB                                       { return nil }

func newProductoService(repo *productoRepoStub) ProductoService {
	return NewProductoService(
		repo,
		&categoriaRepoStub{ids: map[uint]bool{1: true, 2: true}},
		&proveedorRepoStub{ids: map[uint]bool{1: true}},
	)
}

// ─── Tests ──────────────────────────────────────────────────────────────────

func TestProductoService_Crear(t *testing.T) {
	repo := newProductoRepoStub()
	svc := newProductoService(repo)

	resp, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		CategoriaID: 1,
		Nombre:      "Arroz Costeño 1kg",
		Precio:      decimal.RequireFromString("4.50"),
		Stock:       120,
		PubDate:     time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, 120, resp.Stock)
	assert.Nil(t, resp.ProveedorID)
}

func TestProductoService_Crear_CategoriaInexistente(t *testing.T) {
	svc := newProductoService(newProductoRepoStub())

	_, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		CategoriaID: 99,
		Nombre:      "Arroz",
		Precio:      decimal.RequireFromString("4.50"),
		PubDate:     time.Now(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "la categoria 99 no existe")
}

func TestProductoService_Crear_ProveedorInexistente(t *testing.T) {
	svc := newProductoService(newProductoRepoStub())
	proveedorID := uint(42)

	_, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		CategoriaID: 1,
		Nombre:      "Arroz",
		Precio:      decimal.RequireFromString("4.50"),
		ProveedorID: &proveedorID,
		PubDate:     time.Now(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "el proveedor 42 no existe")
}

func TestProductoService_StockMasivo(t *testing.T) {
	repo := newProductoRepoStub()
	svc := newProductoService(repo)

	for i := 1; i <= 3; i++ {
		_, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
			CategoriaID: 1,
			Nombre:      "Producto",
			Precio:      decimal.RequireFromString("1.00"),
			Stock:       7,
			PubDate:     time.Now(),
		})
		require.NoError(t, err)
	}

	// reponer sets every selected product to the fixed restock value;
	// missing ids are skipped, not an error.
	resp, err := svc.StockMasivo(context.Background(), dto.StockMasivoRequest{
		IDs:    []uint{1, 3, 99},
		Accion: dto.AccionReponerStock,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Actualizados)
	assert.Equal(t, 100, repo.productos[1].Stock)
	assert.Equal(t, 7, repo.productos[2].Stock)
	assert.Equal(t, 100, repo.productos[3].Stock)

	// agotar zeroes them out.
	resp, err = svc.StockMasivo(context.Background(), dto.StockMasivoRequest{
		IDs:    []uint{1, 2},
		Accion: dto.AccionAgotarStock,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Actualizados)
	assert.Equal(t, 0, repo.productos[1].Stock)
	assert.Equal(t, 0, repo.productos[2].Stock)
}

func TestProductoService_StockMasivo_Idempotente(t *testing.T) {
	repo := newProductoRepoStub()
	svc := newProductoService(repo)
	_, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		CategoriaID: 1,
		Nombre:      "Producto",
		Precio:      decimal.RequireFromString("1.00"),
		PubDate:     time.Now(),
	})
	require.NoError(t, err)

	req := dto.StockMasivoRequest{IDs: []uint{1}, Accion: dto.AccionReponerStock}
	for i := 0; i < 3; i++ {
		_, err := svc.StockMasivo(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 100, repo.productos[1].Stock)
	}
}

func TestProductoService_StockMasivo_AccionDesconocida(t *testing.T) {
	svc := newProductoService(newProductoRepoStub())
	_, err := svc.StockMasivo(context.Background(), dto.StockMasivoRequest{
		IDs:    []uint{1},
		Accion: "duplicar",
	})
	assert.Error(t, err)
}

func TestProductoService_Actualizar_Parcial(t *testing.T) {
	repo := newProductoRepoStub()
	svc := newProductoService(repo)

	_, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
		CategoriaID: 1,
		Nombre:      "Arroz",
		Descripcion: "Arroz extra",
		Precio:      decimal.RequireFromString("4.50"),
		Stock:       120,
		PubDate:     time.Now(),
	})
	require.NoError(t, err)

	nuevoPrecio := decimal.RequireFromString("5.20")
	resp, err := svc.Actualizar(context.Background(), 1, dto.ActualizarProductoRequest{
		Precio: &nuevoPrecio,
	})
	require.NoError(t, err)
	assert.True(t, resp.Precio.Equal(nuevoPrecio))
	// Untouched fields survive.
	assert.Equal(t, "Arroz", resp.Nombre)
	assert.Equal(t, "Arroz extra", resp.Descripcion)
	assert.Equal(t, 120, resp.Stock)
}

func TestProductoService_Importar_CreaYActualiza(t *testing.T) {
	repo := newProductoRepoStub()
	svc := newProductoService(repo)

	// Seed one row so the import has something to update.
	proveedorID := uint(1)
	require.NoError(t, repo.Create(context.Background(), &model.Producto{
		ID:          5,
		CategoriaID: 1,
		Nombre:      "Viejo",
		Descripcion: "descripcion conservada",
		Precio:      decimal.RequireFromString("1.00"),
		ProveedorID: &proveedorID,
	}))

	filas := []exchange.Fila{
		{"id": "5", "nombre": "Actualizado", "precio": "2.00", "categoria_id": "1", "stock": "10", "pub_date": "2023-01-15 00:00:00"},
		{"id": "8", "nombre": "Nuevo", "precio": "3.00", "categoria_id": "2", "stock": "0", "pub_date": "2023-02-01 00:00:00"},
	}
	importados, err := svc.Importar(context.Background(), filas)
	require.NoError(t, err)
	assert.Equal(t, 2, importados)

	actualizado := repo.productos[5]
	assert.Equal(t, "Actualizado", actualizado.Nombre)
	// Columns outside the import schema keep their stored values.
	assert.Equal(t, "descripcion conservada", actualizado.Descripcion)
	require.NotNil(t, actualizado.ProveedorID)
	assert.Equal(t, uint(1), *actualizado.ProveedorID)

	nuevo := repo.productos[8]
	assert.Equal(t, "Nuevo", nuevo.Nombre)
	assert.Equal(t, uint(2), nuevo.CategoriaID)
}

func TestProductoService_Importar_FilaInvalidaSeOmite(t *testing.T) {
	repo := newProductoRepoStub()
	svc := newProductoService(repo)

	filas := []exchange.Fila{
		{"id": "no-numerico", "nombre": "X", "precio": "1.00", "categoria_id": "1", "stock": "0", "pub_date": "2023-01-01 00:00:00"},
		{"id": "2", "nombre": "Y", "precio": "precio-roto", "categoria_id": "1", "stock": "0", "pub_date": "2023-01-01 00:00:00"},
		{"id": "3", "nombre": "Z", "precio": "1.50", "categoria_id": "1", "stock": "4", "pub_date": "2023-01-01 00:00:00"},
	}
	importados, err := svc.Importar(context.Background(), filas)
	require.NoError(t, err)
	// The two broken rows are logged and skipped; the valid one lands.
	assert.Equal(t, 1, importados)
	assert.Len(t, repo.productos, 1)
	assert.Equal(t, "Z", repo.productos[3].Nombre)
}

func TestProductoService_Exportar_SeleccionPorIDs(t *testing.T) {
	repo := newProductoRepoStub()
	svc := newProductoService(repo)

	for _, nombre := range []string{"A", "B", "C"} {
		_, err := svc.Crear(context.Background(), dto.CrearProductoRequest{
			CategoriaID: 1,
			Nombre:      nombre,
			Precio:      decimal.RequireFromString("1.00"),
			PubDate:     time.Now(),
		})
		require.NoError(t, err)
	}

	datos, err := svc.Exportar(context.Background(), dto.ProductoFilter{}, []uint{1, 3})
	require.NoError(t, err)
	assert.NotEmpty(t, datos)
}
