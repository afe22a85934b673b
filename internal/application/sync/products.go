package sync

import (
	"context"

	"github.com/tu-usuario/licorera-pos/internal/domain/entity"
	"github.com/tu-usuario/licorera-pos/internal/localstore"
)

// FetchProducts lista el catálogo, remoto primero.
func (s *Service) FetchProducts(ctx context.Context) ([]entity.Product, Durability, error) {
	var remote func(context.Context) ([]entity.Product, error)
	if s.repos.Products != nil {
		remote = s.repos.Products.FetchAll
	}
	return fetch(ctx, s, "products", remote, func() ([]entity.Product, error) {
		return localstore.ReadList[entity.Product](s.store, localstore.BucketProducts)
	})
}

// CreateProduct inserta un producto.
func (s *Service) CreateProduct(ctx context.Context, p entity.Product) (Durability, error) {
	var remote func(context.Context) error
	if s.repos.Products != nil {
		remote = func(rctx context.Context) error { return s.repos.Products.Create(rctx, &p) }
	}
	return s.write(ctx, "products", "create", remote, func() error {
		products, err := localstore.ReadList[entity.Product](s.store, localstore.BucketProducts)
		if err != nil {
			return err
		}
		products = append(products, p)
		return localstore.WriteList(s.store, localstore.BucketProducts, products)
	})
}

// UpdateProduct reemplaza un producto ya resuelto por el caller.
func (s *Service) UpdateProduct(ctx context.Context, p entity.Product) (Durability, error) {
	var remote func(context.Context) error
	if s.repos.Products != nil {
		remote = func(rctx context.Context) error { return s.repos.Products.Update(rctx, &p) }
	}
	return s.write(ctx, "products", "update", remote, func() error {
		products, err := localstore.ReadList[entity.Product](s.store, localstore.BucketProducts)
		if err != nil {
			return err
		}
		for i := range products {
			if products[i].ID == p.ID {
				products[i] = p
				break
			}
		}
		return localstore.WriteList(s.store, localstore.BucketProducts, products)
	})
}

// DeleteProduct elimina un producto por ID.
func (s *Service) DeleteProduct(ctx context.Context, id string) (Durability, error) {
	var remote func(context.Context) error
	if s.repos.Products != nil {
		remote = func(rctx context.Context) error { return s.repos.Products.Delete(rctx, id) }
	}
	return s.write(ctx, "products", "delete", remote, func() error {
		products, err := localstore.ReadList[entity.Product](s.store, localstore.BucketProducts)
		if err != nil {
			return err
		}
		filtered := products[:0]
		for _, p := range products {
			if p.ID != id {
				filtered = append(filtered, p)
			}
		}
		return localstore.WriteList(s.store, localstore.BucketProducts, filtered)
	})
}
