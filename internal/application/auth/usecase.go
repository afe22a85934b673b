package auth

import (
	"time"

	"github.com/tu-usuario/licorera-pos/internal/application/dto"
	"github.com/tu-usuario/licorera-pos/internal/domain"
	"github.com/tu-usuario/licorera-pos/internal/domain/entity"
	"github.com/tu-usuario/licorera-pos/internal/localstore"
	"github.com/tu-usuario/licorera-pos/pkg/token"
)

// Largo mínimo aceptado en el reseteo administrativo.
const minPasswordLength = 6

// JWTConfig configuración del token de transporte que envuelve el token de
// sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase orquesta throttle + credenciales + sesiones + log de
// actividad para responder login, cambio de contraseña y reseteo
// administrativo.
type AuthUseCase struct {
	store    localstore.Store
	throttle *Throttle
	sessions *SessionManager
	activity *ActivityLog
	jwtCfg   JWTConfig
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(store localstore.Store, throttle *Throttle, sessions *SessionManager, activity *ActivityLog, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{
		store:    store,
		throttle: throttle,
		sessions: sessions,
		activity: activity,
		jwtCfg:   jwtCfg,
		now:      time.Now,
	}
}

// Login valida email/password y abre una sesión nueva.
//
// Orden del flujo (el mismo del sistema original):
//  1. compuerta del throttle (no cuenta como intento),
//  2. búsqueda de identidad; ausente → intento fallido + credenciales
//     inválidas (mensaje genérico, no revela si el email existe),
//  3. cuenta suspendida → rechazo con mensaje propio,
//  4. cuenta sin credencial (bootstrap) → el password recibido se fija
//     como inicial y el login continúa como exitoso,
//  5. verificación bcrypt; fallo → intento fallido + credenciales
//     inválidas,
//  6. éxito → intento exitoso + sesión nueva + usuario sin hash.
func (uc *AuthUseCase) Login(in dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error) {
	if err := uc.throttle.Check(in.Email); err != nil {
		return nil, err
	}

	user, err := uc.findUserByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		if err := uc.throttle.RecordAttempt(in.Email, false); err != nil {
			return nil, err
		}
		return nil, domain.ErrInvalidCredentials
	}

	if user.Status == entity.StatusSuspended {
		return nil, domain.ErrAccountSuspended
	}

	if user.PasswordHash == "" {
		// Estado bootstrap: la primera contraseña presentada queda fijada.
		hash, err := HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
		if err := uc.saveUser(*user); err != nil {
			return nil, err
		}
		return uc.loginSucceeded(*user, ipAddress, userAgent)
	}

	if !VerifyPassword(in.Password, user.PasswordHash) {
		if err := uc.throttle.RecordAttempt(in.Email, false); err != nil {
			return nil, err
		}
		return nil, domain.ErrInvalidCredentials
	}

	return uc.loginSucceeded(*user, ipAddress, userAgent)
}

func (uc *AuthUseCase) loginSucceeded(user entity.User, ipAddress, userAgent string) (*dto.LoginResponse, error) {
	if err := uc.throttle.RecordAttempt(user.Email, true); err != nil {
		return nil, err
	}
	session, err := uc.sessions.Create(user.ID, ipAddress, userAgent)
	if err != nil {
		return nil, err
	}
	if err := localstore.WriteOne(uc.store, localstore.BucketCurrentUser, user.Sanitized()); err != nil {
		return nil, err
	}
	transport, err := token.Generate(uc.jwtCfg.Secret, user.ID, user.Role, session.Token, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: transport,
		User:  *toUserResponse(user),
	}, nil
}

// Logout cierra la sesión activa.
func (uc *AuthUseCase) Logout() error {
	return uc.sessions.Clear()
}

// ChangePassword cambia la contraseña del propio usuario. Rechaza la
// reutilización de cualquiera de las últimas 5 y, en éxito, invalida la
// sesión activa para forzar re-autenticación (control deliberado).
func (uc *AuthUseCase) ChangePassword(userID, currentPassword, newPassword string) error {
	user, err := uc.findUserByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if !VerifyPassword(currentPassword, user.PasswordHash) {
		return domain.ErrInvalidCredentials
	}

	history, err := uc.historyFor(userID)
	if err != nil {
		return err
	}
	if IsReused(newPassword, history) {
		return domain.ErrPasswordReused
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := uc.saveUser(*user); err != nil {
		return err
	}
	if err := uc.appendHistory(userID, hash); err != nil {
		return err
	}
	if err := uc.activity.Append(userID, entity.ActionPasswordChange, "Password changed successfully"); err != nil {
		return err
	}
	return uc.sessions.Clear()
}

// AdminResetPassword resetea la contraseña de un no-admin por parte de un
// admin. Un admin no puede resetear a otro admin.
func (uc *AuthUseCase) AdminResetPassword(actingUserID, targetID, newPassword string) error {
	acting, err := uc.findUserByID(actingUserID)
	if err != nil {
		return err
	}
	if acting == nil || acting.Role != entity.RoleAdmin {
		return domain.ErrForbidden
	}

	target, err := uc.findUserByID(targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.ErrUserNotFound
	}
	if target.Role == entity.RoleAdmin {
		return domain.ErrCannotResetAdmin
	}
	if len(newPassword) < minPasswordLength {
		return domain.ErrWeakPassword
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	target.PasswordHash = hash
	if err := uc.saveUser(*target); err != nil {
		return err
	}
	if err := uc.appendHistory(targetID, hash); err != nil {
		return err
	}
	detail := "Admin " + acting.Email + " reset password for " + target.Email
	if err := uc.activity.Append(actingUserID, entity.ActionAdminResetPassword, detail); err != nil {
		return err
	}

	// Si el target tiene la sesión activa, se invalida.
	session, err := localstore.ReadOne[entity.Session](uc.store, localstore.BucketSession)
	if err != nil {
		return err
	}
	if session != nil && session.UserID == targetID {
		return uc.sessions.Invalidate()
	}
	return nil
}

// Sessions expone el manager de sesiones (lo usa el middleware HTTP).
func (uc *AuthUseCase) Sessions() *SessionManager { return uc.sessions }

// Activity expone el log de actividad.
func (uc *AuthUseCase) Activity() *ActivityLog { return uc.activity }

func (uc *AuthUseCase) findUserByEmail(email string) (*entity.User, error) {
	users, err := localstore.ReadList[entity.User](uc.store, localstore.BucketUsers)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (uc *AuthUseCase) findUserByID(id string) (*entity.User, error) {
	users, err := localstore.ReadList[entity.User](uc.store, localstore.BucketUsers)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (uc *AuthUseCase) saveUser(user entity.User) error {
	users, err := localstore.ReadList[entity.User](uc.store, localstore.BucketUsers)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = user
			return localstore.WriteList(uc.store, localstore.BucketUsers, users)
		}
	}
	return domain.ErrUserNotFound
}

func (uc *AuthUseCase) historyFor(userID string) ([]entity.PasswordHistoryEntry, error) {
	history, err := localstore.ReadList[entity.PasswordHistoryEntry](uc.store, localstore.BucketPasswordHistory)
	if err != nil {
		return nil, err
	}
	var own []entity.PasswordHistoryEntry
	for _, h := range history {
		if h.UserID == userID {
			own = append(own, h)
		}
	}
	return own, nil
}

func (uc *AuthUseCase) appendHistory(userID, hash string) error {
	history, err := localstore.ReadList[entity.PasswordHistoryEntry](uc.store, localstore.BucketPasswordHistory)
	if err != nil {
		return err
	}
	history = append(history, entity.PasswordHistoryEntry{
		UserID:       userID,
		PasswordHash: hash,
		ChangedAt:    uc.now(),
	})
	return localstore.WriteList(uc.store, localstore.BucketPasswordHistory, history)
}

func toUserResponse(u entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}
