package dto

// CreateAssignmentRequest asignación de stock a un vendedor.
type CreateAssignmentRequest struct {
	ProductID        string `json:"product_id"`
	AttendantID      string `json:"attendant_id"`
	QuantityAssigned int    `json:"quantity_assigned"`
	AssignmentType   string `json:"assignment_type"` // crates | bottles
	QuantityPerCrate int    `json:"quantity_per_crate"`
}
