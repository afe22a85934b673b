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
)

// ProductUseCase CRUD de catálogo + restock sobre el shim local/remoto.
type ProductUseCase struct {
	shim *sync.Service
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(shim *sync.Service) *ProductUseCase {
	return &ProductUseCase{shim: shim}
}

// List lista el catálogo.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, sync.Durability, error) {
	products, durability, err := uc.shim.FetchProducts(ctx)
	if err != nil {
		return nil, durability, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return items, durability, nil
}

// Create crea un producto. Cantidades y precio no pueden ser negativos.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, sync.Durability, error) {
	if in.Name == "" || in.Quantity < 0 || in.ReorderLevel < 0 || in.UnitPrice.LessThan(decimal.Zero) {
		return nil, sync.LocalFallback, domain.ErrInvalidInput
	}
	product := entity.Product{
		ID:               uuid.New().String(),
		Name:             in.Name,
		Category:         in.Category,
		Quantity:         in.Quantity,
		ReorderLevel:     in.ReorderLevel,
		UnitPrice:        in.UnitPrice,
		QuantityPerCrate: in.QuantityPerCrate,
		LastRestocked:    time.Now(),
	}
	durability, err := uc.shim.CreateProduct(ctx, product)
	if err != nil {
		return nil, durability, err
	}
	return toProductResponse(product), durability, nil
}

// Update actualiza parcialmente un producto.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, sync.Durability, error) {
	product, err := uc.find(ctx, id)
	if err != nil {
		return nil, sync.LocalFallback, err
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, sync.LocalFallback, domain.ErrInvalidInput
		}
		product.Quantity = *in.Quantity
	}
	if in.ReorderLevel != nil {
		if *in.ReorderLevel < 0 {
			return nil, sync.LocalFallback, domain.ErrInvalidInput
		}
		product.ReorderLevel = *in.ReorderLevel
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.LessThan(decimal.Zero) {
			return nil, sync.LocalFallback, domain.ErrInvalidInput
		}
		product.UnitPrice = *in.UnitPrice
	}
	if in.QuantityPerCrate != nil {
		product.QuantityPerCrate = *in.QuantityPerCrate
	}
	durability, err := uc.shim.UpdateProduct(ctx, *product)
	if err != nil {
		return nil, durability, err
	}
	return toProductResponse(*product), durability, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) (sync.Durability, error) {
	return uc.shim.DeleteProduct(ctx, id)
}

// Restock registra una entrada de stock: sube la cantidad, actualiza
// LastRestocked y deja el movimiento en el log de inventario.
func (uc *ProductUseCase) Restock(ctx context.Context, id, userID string, in dto.RestockRequest) (*dto.ProductResponse, sync.Durability, error) {
	if in.Quantity <= 0 {
		return nil, sync.LocalFallback, domain.ErrInvalidInput
	}
	product, err := uc.find(ctx, id)
	if err != nil {
		return nil, sync.LocalFallback, err
	}
	product.Quantity += in.Quantity
	product.LastRestocked = time.Now()
	durability, err := uc.shim.UpdateProduct(ctx, *product)
	if err != nil {
		return nil, durability, err
	}
	if err := uc.shim.AppendInventoryLog(entity.InventoryLog{
		ID:          uuid.New().String(),
		ProductID:   product.ID,
		ProductName: product.Name,
		QuantityIn:  in.Quantity,
		Reason:      in.Reason,
		UserID:      userID,
		Timestamp:   time.Now(),
	}); err != nil {
		return nil, durability, err
	}
	return toProductResponse(*product), durability, nil
}

func (uc *ProductUseCase) find(ctx context.Context, id string) (*entity.Product, error) {
	products, _, err := uc.shim.FetchProducts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func toProductResponse(p entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Category:         p.Category,
		Quantity:         p.Quantity,
		ReorderLevel:     p.ReorderLevel,
		UnitPrice:        p.UnitPrice,
		QuantityPerCrate: p.QuantityPerCrate,
		LastRestocked:    p.LastRestocked,
	}
}
