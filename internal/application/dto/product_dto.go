package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto.
type CreateProductRequest struct {
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	Quantity         int             `json:"quantity"`
	ReorderLevel     int             `json:"reorder_level"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	QuantityPerCrate int             `json:"quantity_per_crate"`
}

// UpdateProductRequest actualización parcial de producto.
type UpdateProductRequest struct {
	Name             *string          `json:"name"`
	Category         *string          `json:"category"`
	Quantity         *int             `json:"quantity"`
	ReorderLevel     *int             `json:"reorder_level"`
	UnitPrice        *decimal.Decimal `json:"unit_price"`
	QuantityPerCrate *int             `json:"quantity_per_crate"`
}

// RestockRequest entrada de stock para un producto.
type RestockRequest struct {
	Quantity int    `json:"quantity"`
	Reason   string `json:"reason"`
}

// ProductResponse producto expuesto por la API.
type ProductResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	Quantity         int             `json:"quantity"`
	ReorderLevel     int             `json:"reorder_level"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	QuantityPerCrate int             `json:"quantity_per_crate"`
	LastRestocked    time.Time       `json:"last_restocked"`
}
