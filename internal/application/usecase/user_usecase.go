package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/licorera-pos/internal/application/auth"
	"github.com/tu-usuario/licorera-pos/internal/application/dto"
	"github.com/tu-usuario/licorera-pos/internal/domain"
	"github.com/tu-usuario/licorera-pos/internal/domain/entity"
	"github.com/tu-usuario/licorera-pos/internal/localstore"
)

// UserUseCase administración de usuarios (solo admin). Opera sobre el store
// local, que es el autoritativo para identidades.
type UserUseCase struct {
	store    localstore.Store
	activity *auth.ActivityLog
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(store localstore.Store, activity *auth.ActivityLog) *UserUseCase {
	return &UserUseCase{store: store, activity: activity}
}

// List lista todos los usuarios sin hashes.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := localstore.ReadList[entity.User](uc.store, localstore.BucketUsers)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, dto.UserResponse{
			ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role,
			Status: u.Status, CreatedAt: u.CreatedAt,
		})
	}
	return items, nil
}

// Create da de alta un usuario con email único y contraseña hasheada.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Name == "" || in.Role == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if !validRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	users, err := localstore.ReadList[entity.User](uc.store, localstore.BucketUsers)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == in.Email {
			return nil, domain.ErrEmailAlreadyExists
		}
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		Name:         in.Name,
		Role:         in.Role,
		PasswordHash: hash,
		Status:       entity.StatusActive,
		CreatedAt:    time.Now(),
	}
	users = append(users, user)
	if err := localstore.WriteList(uc.store, localstore.BucketUsers, users); err != nil {
		return nil, err
	}
	if err := uc.activity.Append(user.ID, entity.ActionUserCreate, "User "+user.Email+" created"); err != nil {
		return nil, err
	}
	resp := dto.UserResponse{ID: user.ID, Email: user.Email, Name: user.Name, Role: user.Role, Status: user.Status, CreatedAt: user.CreatedAt}
	return &resp, nil
}

// Update actualiza parcialmente un usuario. El rol solo cambia por esta vía
// explícita; una contraseña nueva llega en claro y se hashea acá.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	users, err := localstore.ReadList[entity.User](uc.store, localstore.BucketUsers)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range users {
		if users[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, domain.ErrUserNotFound
	}
	u := &users[idx]
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Role != nil {
		if !validRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		u.Role = *in.Role
	}
	if in.Status != nil {
		if !validStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		u.Status = *in.Status
	}
	if in.Password != nil {
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}
	if err := localstore.WriteList(uc.store, localstore.BucketUsers, users); err != nil {
		return nil, err
	}
	if err := uc.activity.Append(id, entity.ActionUserUpdate, "User "+u.Email+" updated"); err != nil {
		return nil, err
	}
	resp := dto.UserResponse{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role, Status: u.Status, CreatedAt: u.CreatedAt}
	return &resp, nil
}

// SetStatus cambia el estado de ciclo de vida de la cuenta.
func (uc *UserUseCase) SetStatus(id, status string) error {
	if !validStatus(status) {
		return domain.ErrInvalidInput
	}
	users, err := localstore.ReadList[entity.User](uc.store, localstore.BucketUsers)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == id {
			users[i].Status = status
			if err := localstore.WriteList(uc.store, localstore.BucketUsers, users); err != nil {
				return err
			}
			return uc.activity.Append(id, entity.ActionUserStatusChange, "User "+users[i].Email+" status set to "+status)
		}
	}
	return domain.ErrUserNotFound
}

// Delete elimina un usuario.
func (uc *UserUseCase) Delete(id string) error {
	users, err := localstore.ReadList[entity.User](uc.store, localstore.BucketUsers)
	if err != nil {
		return err
	}
	filtered := users[:0]
	found := false
	for _, u := range users {
		if u.ID == id {
			found = true
			continue
		}
		filtered = append(filtered, u)
	}
	if !found {
		return domain.ErrUserNotFound
	}
	if err := localstore.WriteList(uc.store, localstore.BucketUsers, filtered); err != nil {
		return err
	}
	return uc.activity.Append(id, entity.ActionUserDelete, "User "+id+" deleted")
}

func validRole(role string) bool {
	return role == entity.RoleAdmin || role == entity.RoleBodeguero || role == entity.RoleVendedor
}

func validStatus(status string) bool {
	return status == entity.StatusActive || status == entity.StatusSuspended || status == entity.StatusFrozen
}
