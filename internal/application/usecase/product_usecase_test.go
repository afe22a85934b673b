package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/licorera-pos/internal/application/dto"
	"github.com/tu-usuario/licorera-pos/internal/domain"
	"github.com/tu-usuario/licorera-pos/internal/domain/entity"
	"github.com/tu-usuario/licorera-pos/internal/localstore"
)

func TestProduct_Create_Valida(t *testing.T) {
	shim, _ := newLocalShim(t, nil, nil)
	uc := NewProductUseCase(shim)

	out, _, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:             "Aguila",
		Category:         "Cerveza",
		Quantity:         48,
		ReorderLevel:     12,
		UnitPrice:        decimal.NewFromInt(900),
		QuantityPerCrate: 24,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Aguila", out.Name)
}

func TestProduct_Create_RechazaNegativos(t *testing.T) {
	shim, _ := newLocalShim(t, nil, nil)
	uc := NewProductUseCase(shim)

	cases := []dto.CreateProductRequest{
		{Name: "", Quantity: 1, UnitPrice: decimal.NewFromInt(100)},
		{Name: "X", Quantity: -1, UnitPrice: decimal.NewFromInt(100)},
		{Name: "X", Quantity: 1, ReorderLevel: -5, UnitPrice: decimal.NewFromInt(100)},
		{Name: "X", Quantity: 1, UnitPrice: decimal.NewFromInt(-100)},
	}
	for i, in := range cases {
		_, _, err := uc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "caso %d debe rechazarse", i)
	}
}

func TestProduct_Update_Parcial(t *testing.T) {
	shim, _ := newLocalShim(t,
		[]entity.Product{{ID: "p1", Name: "Tiger", Category: "Cerveza", Quantity: 100, UnitPrice: decimal.NewFromInt(1000)}},
		nil,
	)
	uc := NewProductUseCase(shim)

	newPrice := decimal.NewFromInt(1100)
	out, _, err := uc.Update(context.Background(), "p1", dto.UpdateProductRequest{UnitPrice: &newPrice})
	require.NoError(t, err)
	assert.True(t, out.UnitPrice.Equal(newPrice))
	assert.Equal(t, "Tiger", out.Name, "los campos no enviados no cambian")
	assert.Equal(t, 100, out.Quantity)
}

func TestProduct_Update_Inexistente(t *testing.T) {
	shim, _ := newLocalShim(t, nil, nil)
	uc := NewProductUseCase(shim)

	_, _, err := uc.Update(context.Background(), "nope", dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProduct_Restock_SubeStockYDejaMovimiento(t *testing.T) {
	shim, store := newLocalShim(t,
		[]entity.Product{{ID: "p1", Name: "Guinness", Quantity: 10}},
		nil,
	)
	uc := NewProductUseCase(shim)

	out, _, err := uc.Restock(context.Background(), "p1", "user-1", dto.RestockRequest{
		Quantity: 24,
		Reason:   "reposición semanal",
	})
	require.NoError(t, err)
	assert.Equal(t, 34, out.Quantity)
	assert.False(t, out.LastRestocked.IsZero())

	logs, err := localstore.ReadList[entity.InventoryLog](store, localstore.BucketInventory)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "p1", logs[0].ProductID)
	assert.Equal(t, 24, logs[0].QuantityIn)
	assert.Equal(t, "reposición semanal", logs[0].Reason)
	assert.Equal(t, "user-1", logs[0].UserID)
}

func TestProduct_Restock_CantidadNoPositiva(t *testing.T) {
	shim, _ := newLocalShim(t,
		[]entity.Product{{ID: "p1", Name: "Guinness", Quantity: 10}},
		nil,
	)
	uc := NewProductUseCase(shim)

	_, _, err := uc.Restock(context.Background(), "p1", "user-1", dto.RestockRequest{Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProduct_Delete(t *testing.T) {
	shim, store := newLocalShim(t,
		[]entity.Product{{ID: "p1", Name: "Guinness"}, {ID: "p2", Name: "Pepsi"}},
		nil,
	)
	uc := NewProductUseCase(shim)

	_, err := uc.Delete(context.Background(), "p1")
	require.NoError(t, err)

	remaining, err := localstore.ReadList[entity.Product](store, localstore.BucketProducts)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "p2", remaining[0].ID)
}
