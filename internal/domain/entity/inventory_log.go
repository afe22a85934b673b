package entity

import "time"

// InventoryLog registro append-only de entradas y salidas de stock
// (restock, ajustes). No se actualiza después de creado.
type InventoryLog struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	QuantityIn  int       `json:"quantityIn"`
	QuantityOut int       `json:"quantityOut"`
	Reason      string    `json:"reason"`
	UserID      string    `json:"userId"`
	Timestamp   time.Time `json:"timestamp"`
}
