package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/farmastock/internal/application/dto"
	"github.com/tu-usuario/farmastock/internal/domain"
	"github.com/tu-usuario/farmastock/internal/domain/entity"
	"github.com/tu-usuario/farmastock/internal/domain/repository"
	"github.com/tu-usuario/farmastock/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLen longitud mínima del password en el registro.
const MinPasswordLen = 8

// SignupTxRunner ejecuta el registro (farmacia + usuario admin) dentro de una
// transacción de BD, pasando repositorios atados a esa tx. Si el segundo
// insert falla, el primero se revierte.
type SignupTxRunner interface {
	RunSignup(ctx context.Context, fn func(
		pharmacyRepo repository.PharmacyRepository,
		userRepo repository.UserRepository,
	) error) error
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	txRunner SignupTxRunner
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, txRunner SignupTxRunner, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, txRunner: txRunner, log: log}
}

// Signup crea la farmacia y su usuario administrador en una sola transacción.
// Hashea el password con bcrypt. Devuelve ErrUsernameTaken (con rollback de la
// farmacia) si el username ya existe.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.SessionContext, error) {
	name := strings.TrimSpace(in.PharmacyName)
	username := strings.TrimSpace(in.Username)
	if name == "" || username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Password) < MinPasswordLen {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	pharmacy := &entity.Pharmacy{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		PharmacyID:   pharmacy.ID,
		Username:     username,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txRunner.RunSignup(ctx, func(
		pharmacyRepo repository.PharmacyRepository,
		userRepo repository.UserRepository,
	) error {
		if err := pharmacyRepo.Create(ctx, pharmacy); err != nil {
			return err
		}
		return userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("pharmacy_id", pharmacy.ID).Str("username", username).Msg("farmacia registrada")
	return &dto.SessionContext{
		UserID:     user.ID,
		PharmacyID: user.PharmacyID,
		Username:   user.Username,
		Role:       user.Role,
	}, nil
}

// Login verifica username/password y devuelve el contexto de sesión.
// "usuario inexistente" y "password incorrecto" se registran distinto en el
// log del servidor pero devuelven el mismo ErrInvalidCredentials, para no
// permitir enumeración de usernames.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.SessionContext, error) {
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.log.Warn().Str("username", in.Username).Msg("login: usuario inexistente")
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		uc.log.Warn().Str("username", in.Username).Msg("login: password incorrecto")
		return nil, domain.ErrInvalidCredentials
	}
	return &dto.SessionContext{
		UserID:     user.ID,
		PharmacyID: user.PharmacyID,
		Username:   user.Username,
		Role:       user.Role,
	}, nil
}
