package sync

import (
	"context"

	"github.com/tu-usuario/licorera-pos/internal/domain/entity"
	"github.com/tu-usuario/licorera-pos/internal/localstore"
)

// FetchSales lista las ventas, remoto primero.
func (s *Service) FetchSales(ctx context.Context) ([]entity.Sale, Durability, error) {
	var remote func(context.Context) ([]entity.Sale, error)
	if s.repos.Sales != nil {
		remote = s.repos.Sales.FetchAll
	}
	return fetch(ctx, s, "sales", remote, func() ([]entity.Sale, error) {
		return localstore.ReadList[entity.Sale](s.store, localstore.BucketSales)
	})
}

// CreateSale registra una venta (append-only).
func (s *Service) CreateSale(ctx context.Context, sale entity.Sale) (Durability, error) {
	var remote func(context.Context) error
	if s.repos.Sales != nil {
		remote = func(rctx context.Context) error { return s.repos.Sales.Create(rctx, &sale) }
	}
	return s.write(ctx, "sales", "create", remote, func() error {
		sales, err := localstore.ReadList[entity.Sale](s.store, localstore.BucketSales)
		if err != nil {
			return err
		}
		sales = append(sales, sale)
		return localstore.WriteList(s.store, localstore.BucketSales, sales)
	})
}
