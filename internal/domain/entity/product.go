package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo del local. Quantity nunca es negativa.
type Product struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	Quantity         int             `json:"quantity"`
	ReorderLevel     int             `json:"reorderLevel"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	QuantityPerCrate int             `json:"quantityPerCrate"`
	LastRestocked    time.Time       `json:"lastRestocked"`
}
