package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/licorera-pos/internal/application/dto"
	"github.com/tu-usuario/licorera-pos/internal/application/sync"
	"github.com/tu-usuario/licorera-pos/internal/domain"
	"github.com/tu-usuario/licorera-pos/internal/domain/entity"
	"github.com/tu-usuario/licorera-pos/internal/localstore"
)

// SaleUseCase punto de venta: registra ventas y descuenta stock.
type SaleUseCase struct {
	shim  *sync.Service
	store localstore.Store
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(shim *sync.Service, store localstore.Store) *SaleUseCase {
	return &SaleUseCase{shim: shim, store: store}
}

// List lista las ventas.
func (uc *SaleUseCase) List(ctx context.Context) ([]entity.Sale, sync.Durability, error) {
	return uc.shim.FetchSales(ctx)
}

// Create registra una venta del vendedor attendantID y descuenta el stock
// del producto. La cantidad vendida no puede exceder el stock disponible.
func (uc *SaleUseCase) Create(ctx context.Context, attendantID string, in dto.CreateSaleRequest) (*entity.Sale, sync.Durability, error) {
	if in.Quantity <= 0 {
		return nil, sync.LocalFallback, domain.ErrInvalidInput
	}

	products, _, err := uc.shim.FetchProducts(ctx)
	if err != nil {
		return nil, sync.LocalFallback, err
	}
	var product *entity.Product
	for i := range products {
		if products[i].ID == in.ProductID {
			product = &products[i]
			break
		}
	}
	if product == nil {
		return nil, sync.LocalFallback, domain.ErrNotFound
	}
	if in.Quantity > product.Quantity {
		return nil, sync.LocalFallback, domain.ErrInvalidInput
	}

	unitPrice := in.UnitPrice
	if unitPrice.IsZero() {
		unitPrice = product.UnitPrice
	}

	attendantName := attendantID
	if users, err := localstore.ReadList[entity.User](uc.store, localstore.BucketUsers); err == nil {
		for _, u := range users {
			if u.ID == attendantID {
				attendantName = u.Name
				break
			}
		}
	}

	sale := entity.Sale{
		ID:            uuid.New().String(),
		ProductID:     product.ID,
		ProductName:   product.Name,
		Quantity:      in.Quantity,
		UnitPrice:     unitPrice,
		TotalPrice:    unitPrice.Mul(decimal.NewFromInt(int64(in.Quantity))),
		AttendantID:   attendantID,
		AttendantName: attendantName,
		Timestamp:     time.Now(),
	}
	durability, err := uc.shim.CreateSale(ctx, sale)
	if err != nil {
		return nil, durability, err
	}

	// Venta y descuento de stock no son atómicos: si el descuento falla,
	// la venta ya quedó persistida y el error se propaga.
	product.Quantity -= in.Quantity
	if _, err := uc.shim.UpdateProduct(ctx, *product); err != nil {
		return nil, durability, err
	}
	return &sale, durability, nil
}
