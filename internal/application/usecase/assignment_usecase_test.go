package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/licorera-pos/internal/application/dto"
	"github.com/tu-usuario/licorera-pos/internal/application/sync"
	"github.com/tu-usuario/licorera-pos/internal/domain"
	"github.com/tu-usuario/licorera-pos/internal/domain/entity"
	"github.com/tu-usuario/licorera-pos/internal/localstore"
)

func TestAssignment_PorCajas_DescuentaCajasPorUnidades(t *testing.T) {
	shim, store := newLocalShim(t,
		[]entity.Product{{ID: "p1", Name: "Tiger", Quantity: 100, QuantityPerCrate: 24}},
		[]entity.User{{ID: "v1", Name: "Carlos", Role: entity.RoleVendedor}},
	)
	uc := NewAssignmentUseCase(shim, store)

	assignment, _, err := uc.Create(context.Background(), dto.CreateAssignmentRequest{
		ProductID:        "p1",
		AttendantID:      "v1",
		QuantityAssigned: 2,
		AssignmentType:   entity.AssignmentCrates,
	})
	require.NoError(t, err)
	assert.Equal(t, "Carlos", assignment.AttendantName)
	assert.Equal(t, 24, assignment.QuantityPerCrate,
		"sin valor explícito se usa el del producto")

	products, err := localstore.ReadList[entity.Product](store, localstore.BucketProducts)
	require.NoError(t, err)
	assert.Equal(t, 52, products[0].Quantity, "2 cajas × 24 unidades descontadas")
}

func TestAssignment_PorBotellas_DescuentaDirecto(t *testing.T) {
	shim, store := newLocalShim(t,
		[]entity.Product{{ID: "p1", Name: "Tiger", Quantity: 100, QuantityPerCrate: 24}},
		nil,
	)
	uc := NewAssignmentUseCase(shim, store)

	_, _, err := uc.Create(context.Background(), dto.CreateAssignmentRequest{
		ProductID:        "p1",
		AttendantID:      "v1",
		QuantityAssigned: 10,
		AssignmentType:   entity.AssignmentBottles,
	})
	require.NoError(t, err)

	products, err := localstore.ReadList[entity.Product](store, localstore.BucketProducts)
	require.NoError(t, err)
	assert.Equal(t, 90, products[0].Quantity)
}

func TestAssignment_ExcedeStock_Rechazada(t *testing.T) {
	shim, store := newLocalShim(t,
		[]entity.Product{{ID: "p1", Name: "Tiger", Quantity: 30, QuantityPerCrate: 24}},
		nil,
	)
	uc := NewAssignmentUseCase(shim, store)

	// 2 cajas × 24 = 48 unidades > 30 en stock.
	_, _, err := uc.Create(context.Background(), dto.CreateAssignmentRequest{
		ProductID:        "p1",
		AttendantID:      "v1",
		QuantityAssigned: 2,
		AssignmentType:   entity.AssignmentCrates,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAssignment_TipoInvalido(t *testing.T) {
	shim, store := newLocalShim(t, nil, nil)
	uc := NewAssignmentUseCase(shim, store)

	_, _, err := uc.Create(context.Background(), dto.CreateAssignmentRequest{
		ProductID:        "p1",
		AttendantID:      "v1",
		QuantityAssigned: 1,
		AssignmentType:   "pallets",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAssignment_List_FiltraPorVendedor(t *testing.T) {
	shim, store := newLocalShim(t, nil, nil)
	require.NoError(t, localstore.WriteList(store, localstore.BucketAssignments, []entity.Assignment{
		{ID: "a1", AttendantID: "v1"},
		{ID: "a2", AttendantID: "v2"},
		{ID: "a3", AttendantID: "v1"},
	}))
	uc := NewAssignmentUseCase(shim, store)

	all, _, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	own, _, err := uc.List(context.Background(), "v1")
	require.NoError(t, err)
	require.Len(t, own, 2)
	assert.Equal(t, "a1", own[0].ID)
	assert.Equal(t, "a3", own[1].ID)
}

func TestAssignment_Create_FallaElDescuento_LaAsignacionQueda(t *testing.T) {
	// Mismo par no atómico que en ventas: la asignación persiste aunque el
	// descuento de stock falle.
	base := localstore.NewMemory()
	require.NoError(t, localstore.WriteList(base, localstore.BucketProducts,
		[]entity.Product{{ID: "p1", Name: "Tiger", Quantity: 100, QuantityPerCrate: 24}}))
	store := &failingStore{Store: base, failBucket: localstore.BucketProducts}
	shim := sync.NewService(sync.Repos{}, store, zerolog.Nop(), time.Second)
	uc := NewAssignmentUseCase(shim, store)

	_, _, err := uc.Create(context.Background(), dto.CreateAssignmentRequest{
		ProductID:        "p1",
		AttendantID:      "v1",
		QuantityAssigned: 10,
		AssignmentType:   entity.AssignmentBottles,
	})
	require.ErrorIs(t, err, errEscrituraLocal)

	assignments, err := localstore.ReadList[entity.Assignment](base, localstore.BucketAssignments)
	require.NoError(t, err)
	require.Len(t, assignments, 1, "la asignación ya quedó persistida")

	products, err := localstore.ReadList[entity.Product](base, localstore.BucketProducts)
	require.NoError(t, err)
	assert.Equal(t, 100, products[0].Quantity, "el stock no llegó a descontarse")
}

func TestAssignment_Remove(t *testing.T) {
	shim, store := newLocalShim(t, nil, nil)
	require.NoError(t, localstore.WriteList(store, localstore.BucketAssignments, []entity.Assignment{
		{ID: "a1"}, {ID: "a2"},
	}))
	uc := NewAssignmentUseCase(shim, store)

	_, err := uc.Remove(context.Background(), "a1")
	require.NoError(t, err)

	remaining, err := localstore.ReadList[entity.Assignment](store, localstore.BucketAssignments)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "a2", remaining[0].ID)
}
