package dto

import "github.com/shopspring/decimal"

// CreateSaleRequest venta desde el punto de venta. El total se calcula en
// el servidor.
type CreateSaleRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}
