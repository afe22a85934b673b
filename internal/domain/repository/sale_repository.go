package repository

import (
	"context"

	"github.com/tu-usuario/licorera-pos/internal/domain/entity"
)

// SaleRepository puerto del almacén remoto de ventas. Las ventas son
// append-only: no hay update ni delete.
type SaleRepository interface {
	FetchAll(ctx context.Context) ([]entity.Sale, error)
	Create(ctx context.Context, s *entity.Sale) error
}
