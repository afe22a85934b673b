package entity

import "time"

// Tipos de asignación de producto a vendedor.
const (
	AssignmentCrates  = "crates"
	AssignmentBottles = "bottles"
)

// Assignment asignación de stock del bodeguero a un vendedor.
type Assignment struct {
	ID               string    `json:"id"`
	ProductID        string    `json:"productId"`
	ProductName      string    `json:"productName"`
	AttendantID      string    `json:"attendantId"`
	AttendantName    string    `json:"attendantName"`
	QuantityAssigned int       `json:"quantityAssigned"`
	AssignmentType   string    `json:"assignmentType"` // crates, bottles
	QuantityPerCrate int       `json:"quantityPerCrate,omitempty"`
	AssignedAt       time.Time `json:"assignedAt"`
}
