package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale venta registrada desde el punto de venta. Las ventas no se editan
// después de creadas.
type Sale struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"productId"`
	ProductName   string          `json:"productName"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	AttendantID   string          `json:"attendantId"`
	AttendantName string          `json:"attendantName"`
	Timestamp     time.Time       `json:"timestamp"`
}
