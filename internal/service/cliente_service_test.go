package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/RosaLopezC/D05/internal/dto"
	"github.com/RosaLopezC/D05/internal/exchange"
	"github.com/RosaLopezC/D05/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// clienteRepoStub enforces DNI uniqueness the way Postgres does: the write
// fails with gorm.ErrDuplicatedKey, which the service translates.
type clienteRepoStub struct {
	clientes map[uint]model.Cliente
	nextID   uint
}

func newClienteRepoStub() *clienteRepoStub {
	return &clienteRepoStub{clientes: make(map[uint]model.Cliente), nextID: 1}
}

func (r *clienteRepoStub) dniOcupado(dni string, salvoID uint) bool {
	for _, c := range r.clientes {
		if c.DNI == dni && c.ID != salvoID {
			return true
		}
	}
	return false
}

func (r *clienteRepoStub) Create(_ context.Context, c *model.Cliente) error {
	if r.dniOcupado(c.DNI, c.ID) {
		return gorm.ErrDuplicatedKey
	}
	if c.ID == 0 {
		c.ID = r.nextID
	}
	if c.ID >= r.nextID {
		r.nextID = c.ID + 1
	}
	r.clientes[c.ID] = *c
	return nil
}

func (r *clienteRepoStub) FindByID(_ context.Context, id uint) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r *clienteRepoStub) List(_ context.Context, _ dto.ClienteFilter) ([]model.Cliente, int64, error) {
	out := make([]model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (r *clienteRepoStub) ListarParaExportar(_ context.Context, _ dto.ClienteFilter, _ []uint) ([]model.Cliente, error) {
	out, _, _ := r.List(context.Background(), dto.ClienteFilter{})
	return out, nil
}

func (r *clienteRepoStub) Update(_ context.Context, c *model.Cliente) error {
	if r.dniOcupado(c.DNI, c.ID) {
		return gorm.ErrDuplicatedKey
	}
	r.clientes[c.ID] = *c
	return nil
}

func (r *clienteRepoStub) Delete(_ context.Context, id uint) error {
	delete(r.clientes, id)
	return nil
}

func (r *clienteRepoStub) DB() *gorm.DB { return nil }

func crearClienteReq(dni string) dto.CrearClienteRequest {
	return dto.CrearClienteRequest{
		Nombre:          "Ana",
		Apellido:        "Morales",
		DNI:             dni,
		Direccion:       "Calle Lima 101",
		Telefono:        "977889900",
		Email:           "ana@mail.com",
		FechaNacimiento: "1990-04-12",
		PubDate:         time.Date(2023, 1, 20, 0, 0, 0, 0, time.UTC),
	}
}

func TestClienteService_Crear(t *testing.T) {
	svc := NewClienteService(newClienteRepoStub())

	resp, err := svc.Crear(context.Background(), crearClienteReq("45678912"))
	require.NoError(t, err)
	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, "45678912", resp.DNI)
	assert.Equal(t, "1990-04-12", resp.FechaNacimiento)
}

func TestClienteService_Crear_DNIDuplicado(t *testing.T) {
	svc := NewClienteService(newClienteRepoStub())

	_, err := svc.Crear(context.Background(), crearClienteReq("45678912"))
	require.NoError(t, err)

	req := crearClienteReq("45678912")
	req.Nombre = "Otra"
	_, err = svc.Crear(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ya existe un cliente con el DNI 45678912")
}

func TestClienteService_Actualizar_DNIDuplicado(t *testing.T) {
	svc := NewClienteService(newClienteRepoStub())

	_, err := svc.Crear(context.Background(), crearClienteReq("45678912"))
	require.NoError(t, err)
	_, err = svc.Crear(context.Background(), crearClienteReq("78912345"))
	require.NoError(t, err)

	dni := "45678912"
	_, err = svc.Actualizar(context.Background(), 2, dto.ActualizarClienteRequest{DNI: &dni})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ya existe un cliente con el DNI 45678912")
}

func TestClienteService_Importar(t *testing.T) {
	repo := newClienteRepoStub()
	svc := NewClienteService(repo)

	filas := []exchange.Fila{
		{
			"id": "1", "nombre": "Ana", "apellido": "Morales", "dni": "45678912",
			"direccion": "Calle Lima 101", "telefono": "977889900", "email": "ana@mail.com",
			"fecha_nacimiento": "1990-04-12", "pub_date": "2023-01-20 00:00:00",
		},
		{
			"id": "2", "nombre": "Luis", "apellido": "Castro", "dni": "sin-fecha",
			"direccion": "x", "telefono": "x", "email": "x",
			"fecha_nacimiento": "no-es-fecha", "pub_date": "2023-02-14 00:00:00",
		},
	}
	importados, err := svc.Importar(context.Background(), filas)
	require.NoError(t, err)
	assert.Equal(t, 1, importados)
	assert.Len(t, repo.clientes, 1)
	assert.Equal(t, "Morales", repo.clientes[1].Apellido)
}
