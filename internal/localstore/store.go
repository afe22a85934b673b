package localstore

import (
	"encoding/json"
	"fmt"
)

// Claves de los buckets persistidos. Cada colección se lee y escribe
// completa (read-modify-write), igual que hace el front con localStorage.
const (
	BucketUsers           = "licorera_users"
	BucketProducts        = "licorera_products"
	BucketSales           = "licorera_sales"
	BucketInventory       = "licorera_inventory"
	BucketAssignments     = "licorera_assignments"
	BucketCurrentUser     = "licorera_current_user"
	BucketSession         = "licorera_session"
	BucketLoginAttempts   = "licorera_login_attempts"
	BucketActivityLog     = "licorera_activity_log"
	BucketPasswordHistory = "licorera_password_history"
)

// Store capacidad mínima de persistencia local por clave. Implementaciones:
// SQLite embebido en producción, Memory en tests.
type Store interface {
	// Get devuelve el valor del bucket y si existe.
	Get(bucket string) ([]byte, bool, error)
	Set(bucket string, value []byte) error
	Remove(bucket string) error
}

// ReadList decodifica la colección JSON de un bucket. Un bucket ausente es
// una colección vacía.
func ReadList[T any](s Store, bucket string) ([]T, error) {
	raw, ok, err := s.Get(bucket)
	if err != nil {
		return nil, fmt.Errorf("leer bucket %s: %w", bucket, err)
	}
	if !ok || len(raw) == 0 {
		return nil, nil
	}
	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decodificar bucket %s: %w", bucket, err)
	}
	return list, nil
}

// WriteList serializa y persiste la colección completa de un bucket.
func WriteList[T any](s Store, bucket string, list []T) error {
	if list == nil {
		list = []T{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("codificar bucket %s: %w", bucket, err)
	}
	if err := s.Set(bucket, raw); err != nil {
		return fmt.Errorf("escribir bucket %s: %w", bucket, err)
	}
	return nil
}

// ReadOne decodifica un valor único (sesión, usuario actual). Ausente → nil.
func ReadOne[T any](s Store, bucket string) (*T, error) {
	raw, ok, err := s.Get(bucket)
	if err != nil {
		return nil, fmt.Errorf("leer bucket %s: %w", bucket, err)
	}
	if !ok || len(raw) == 0 {
		return nil, nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decodificar bucket %s: %w", bucket, err)
	}
	return &v, nil
}

// WriteOne serializa y persiste un valor único.
func WriteOne[T any](s Store, bucket string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("codificar bucket %s: %w", bucket, err)
	}
	if err := s.Set(bucket, raw); err != nil {
		return fmt.Errorf("escribir bucket %s: %w", bucket, err)
	}
	return nil
}
