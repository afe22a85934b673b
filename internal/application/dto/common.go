package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WriteResponse resultado de una escritura que pasó por el shim
// local/remoto. Durability indica el nivel alcanzado: "remote" si el
// espejo remoto confirmó, "local" si la escritura quedó solo en el store
// local (fallback, no es un fallo).
type WriteResponse struct {
	Durability string `json:"durability"` // remote | local
	ID         string `json:"id,omitempty"`
}
