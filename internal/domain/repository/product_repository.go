package repository

import (
	"context"

	"github.com/tu-usuario/licorera-pos/internal/domain/entity"
)

// ProductRepository puerto del almacén remoto de productos.
type ProductRepository interface {
	FetchAll(ctx context.Context) ([]entity.Product, error)
	Create(ctx context.Context, p *entity.Product) error
	Update(ctx context.Context, p *entity.Product) error
	Delete(ctx context.Context, id string) error
}
