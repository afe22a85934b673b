package localstore

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/licorera-pos/internal/domain/entity"
)

// SeedConfig cuentas demo del primer arranque.
type SeedConfig struct {
	AdminEmail        string
	AdminPassword     string
	BodegueroEmail    string
	BodegueroPassword string
	VendedorEmail     string
	VendedorPassword  string
}

// DefaultSeedConfig valores demo por defecto.
func DefaultSeedConfig() SeedConfig {
	return SeedConfig{
		AdminEmail:        "admin@licorera.local",
		AdminPassword:     "admin123",
		BodegueroEmail:    "bodega@licorera.local",
		BodegueroPassword: "store123",
		VendedorEmail:     "ventas@licorera.local",
		VendedorPassword:  "attend123",
	}
}

// Seed inicializa los buckets en el primer arranque. Es idempotente: cada
// bucket se escribe solo si no existe, así un reinicio nunca pisa datos.
// hash es el hasher de credenciales inyectado (bcrypt en producción).
func Seed(s Store, cfg SeedConfig, hash func(string) (string, error)) error {
	if exists, err := bucketExists(s, BucketUsers); err != nil {
		return err
	} else if !exists {
		now := time.Now()
		adminHash, err := hash(cfg.AdminPassword)
		if err != nil {
			return fmt.Errorf("hash admin: %w", err)
		}
		bodegueroHash, err := hash(cfg.BodegueroPassword)
		if err != nil {
			return fmt.Errorf("hash bodeguero: %w", err)
		}
		vendedorHash, err := hash(cfg.VendedorPassword)
		if err != nil {
			return fmt.Errorf("hash vendedor: %w", err)
		}
		users := []entity.User{
			{ID: "1", Name: "Administrador", Email: cfg.AdminEmail, Role: entity.RoleAdmin, PasswordHash: adminHash, Status: entity.StatusActive, CreatedAt: now},
			{ID: "2", Name: "Bodeguero", Email: cfg.BodegueroEmail, Role: entity.RoleBodeguero, PasswordHash: bodegueroHash, Status: entity.StatusActive, CreatedAt: now},
			{ID: "3", Name: "Vendedor", Email: cfg.VendedorEmail, Role: entity.RoleVendedor, PasswordHash: vendedorHash, Status: entity.StatusActive, CreatedAt: now},
		}
		if err := WriteList(s, BucketUsers, users); err != nil {
			return err
		}
	}

	if exists, err := bucketExists(s, BucketProducts); err != nil {
		return err
	} else if !exists {
		now := time.Now()
		products := []entity.Product{
			{ID: "1", Name: "Heineken", Category: "Cerveza", Quantity: 300, ReorderLevel: 24, UnitPrice: decimal.NewFromInt(1200), QuantityPerCrate: 12, LastRestocked: now},
			{ID: "2", Name: "Tiger", Category: "Cerveza", Quantity: 240, ReorderLevel: 24, UnitPrice: decimal.NewFromInt(1000), QuantityPerCrate: 24, LastRestocked: now},
			{ID: "3", Name: "Guinness", Category: "Cerveza", Quantity: 80, ReorderLevel: 30, UnitPrice: decimal.NewFromInt(1000), QuantityPerCrate: 12, LastRestocked: now},
			{ID: "4", Name: "Pepsi", Category: "Gaseosa", Quantity: 200, ReorderLevel: 60, UnitPrice: decimal.NewFromInt(500), QuantityPerCrate: 24, LastRestocked: now},
		}
		if err := WriteList(s, BucketProducts, products); err != nil {
			return err
		}
	}

	// Colecciones vacías para que las lecturas no distingan "nunca escrito"
	// de "sin elementos".
	for _, bucket := range []string{BucketSales, BucketInventory, BucketAssignments} {
		exists, err := bucketExists(s, bucket)
		if err != nil {
			return err
		}
		if !exists {
			if err := WriteList[struct{}](s, bucket, nil); err != nil {
				return err
			}
		}
	}
	return nil
}

func bucketExists(s Store, bucket string) (bool, error) {
	_, ok, err := s.Get(bucket)
	if err != nil {
		return false, fmt.Errorf("verificar bucket %s: %w", bucket, err)
	}
	return ok, nil
}
