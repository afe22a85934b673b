package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/licorera-pos/internal/application/dto"
	"github.com/tu-usuario/licorera-pos/internal/application/sync"
	"github.com/tu-usuario/licorera-pos/internal/domain"
	"github.com/tu-usuario/licorera-pos/internal/domain/entity"
	"github.com/tu-usuario/licorera-pos/internal/localstore"
)

// AssignmentUseCase asignación de stock de bodega a vendedores.
type AssignmentUseCase struct {
	shim  *sync.Service
	store localstore.Store
}

// NewAssignmentUseCase construye el caso de uso.
func NewAssignmentUseCase(shim *sync.Service, store localstore.Store) *AssignmentUseCase {
	return &AssignmentUseCase{shim: shim, store: store}
}

// List lista las asignaciones; con attendantID filtra por vendedor.
func (uc *AssignmentUseCase) List(ctx context.Context, attendantID string) ([]entity.Assignment, sync.Durability, error) {
	assignments, durability, err := uc.shim.FetchAssignments(ctx)
	if err != nil {
		return nil, durability, err
	}
	if attendantID == "" {
		return assignments, durability, nil
	}
	var filtered []entity.Assignment
	for _, a := range assignments {
		if a.AttendantID == attendantID {
			filtered = append(filtered, a)
		}
	}
	return filtered, durability, nil
}

// Create asigna stock de un producto a un vendedor y lo descuenta de
// bodega. En asignación por cajas la cantidad descontada es
// cajas × unidades por caja.
func (uc *AssignmentUseCase) Create(ctx context.Context, in dto.CreateAssignmentRequest) (*entity.Assignment, sync.Durability, error) {
	if in.QuantityAssigned <= 0 {
		return nil, sync.LocalFallback, domain.ErrInvalidInput
	}
	if in.AssignmentType != entity.AssignmentCrates && in.AssignmentType != entity.AssignmentBottles {
		return nil, sync.LocalFallback, domain.ErrInvalidInput
	}

	products, _, err := uc.shim.FetchProducts(ctx)
	if err != nil {
		return nil, sync.LocalFallback, err
	}
	var product *entity.Product
	for i := range products {
		if products[i].ID == in.ProductID {
			product = &products[i]
			break
		}
	}
	if product == nil {
		return nil, sync.LocalFallback, domain.ErrNotFound
	}

	perCrate := in.QuantityPerCrate
	if perCrate <= 0 {
		perCrate = product.QuantityPerCrate
	}
	units := in.QuantityAssigned
	if in.AssignmentType == entity.AssignmentCrates {
		units = in.QuantityAssigned * perCrate
	}
	if units > product.Quantity {
		return nil, sync.LocalFallback, domain.ErrInvalidInput
	}

	attendantName := in.AttendantID
	if users, err := localstore.ReadList[entity.User](uc.store, localstore.BucketUsers); err == nil {
		for _, u := range users {
			if u.ID == in.AttendantID {
				attendantName = u.Name
				break
			}
		}
	}

	assignment := entity.Assignment{
		ID:               uuid.New().String(),
		ProductID:        product.ID,
		ProductName:      product.Name,
		AttendantID:      in.AttendantID,
		AttendantName:    attendantName,
		QuantityAssigned: in.QuantityAssigned,
		AssignmentType:   in.AssignmentType,
		QuantityPerCrate: perCrate,
		AssignedAt:       time.Now(),
	}
	durability, err := uc.shim.CreateAssignment(ctx, assignment)
	if err != nil {
		return nil, durability, err
	}

	// Asignación y descuento de stock no son atómicos: si el descuento
	// falla, la asignación ya quedó persistida y el error se propaga.
	product.Quantity -= units
	if _, err := uc.shim.UpdateProduct(ctx, *product); err != nil {
		return nil, durability, err
	}
	return &assignment, durability, nil
}

// Remove elimina una asignación.
func (uc *AssignmentUseCase) Remove(ctx context.Context, id string) (sync.Durability, error) {
	return uc.shim.RemoveAssignment(ctx, id)
}

// Attendants lista los vendedores disponibles para asignación.
func (uc *AssignmentUseCase) Attendants(ctx context.Context) ([]entity.User, sync.Durability, error) {
	return uc.shim.FetchAttendants(ctx)
}
