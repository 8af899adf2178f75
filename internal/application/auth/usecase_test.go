package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/farmastock/internal/application/auth"
	"github.com/tu-usuario/farmastock/internal/application/dto"
	"github.com/tu-usuario/farmastock/internal/domain"
	"github.com/tu-usuario/farmastock/internal/domain/entity"
	"github.com/tu-usuario/farmastock/internal/domain/repository"
	"github.com/tu-usuario/farmastock/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakePharmacyRepo struct {
	created []*entity.Pharmacy
}

func (r *fakePharmacyRepo) Create(_ context.Context, p *entity.Pharmacy) error {
	r.created = append(r.created, p)
	return nil
}

func (r *fakePharmacyRepo) GetByID(_ context.Context, id string) (*entity.Pharmacy, error) {
	for _, p := range r.created {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

type fakeUserRepo struct {
	byUsername map[string]*entity.User
	created    []*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := r.byUsername[u.Username]; ok {
		return domain.ErrUsernameTaken
	}
	r.byUsername[u.Username] = u
	r.created = append(r.created, u)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.byUsername[username], nil
}

// fakeSignupTxRunner emula la transacción de registro: si fn falla, descarta
// lo insertado (rollback).
type fakeSignupTxRunner struct {
	pharmacyRepo *fakePharmacyRepo
	userRepo     *fakeUserRepo
}

func (tr *fakeSignupTxRunner) RunSignup(ctx context.Context, fn func(
	pharmacyRepo repository.PharmacyRepository,
	userRepo repository.UserRepository,
) error) error {
	pharmaciesBefore := len(tr.pharmacyRepo.created)
	usersBefore := len(tr.userRepo.created)
	if err := fn(tr.pharmacyRepo, tr.userRepo); err != nil {
		tr.pharmacyRepo.created = tr.pharmacyRepo.created[:pharmaciesBefore]
		for _, u := range tr.userRepo.created[usersBefore:] {
			delete(tr.userRepo.byUsername, u.Username)
		}
		tr.userRepo.created = tr.userRepo.created[:usersBefore]
		return err
	}
	return nil
}

func newAuthUseCase() (*auth.AuthUseCase, *fakePharmacyRepo, *fakeUserRepo) {
	pharmacyRepo := &fakePharmacyRepo{}
	userRepo := newFakeUserRepo()
	tx := &fakeSignupTxRunner{pharmacyRepo: pharmacyRepo, userRepo: userRepo}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return auth.NewAuthUseCase(userRepo, tx, log), pharmacyRepo, userRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Signup
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: registro correcto → crea farmacia + usuario admin y devuelve el
// contexto de sesión con ambos ids.
func TestSignup_CreaFarmaciaYUsuarioAdmin(t *testing.T) {
	uc, pharmacyRepo, userRepo := newAuthUseCase()

	sc, err := uc.Signup(context.Background(), dto.SignupRequest{
		PharmacyName: "Farmacia Central",
		Username:     "carlos",
		Password:     "super-secreta",
	})
	require.NoError(t, err)
	require.NotNil(t, sc)

	require.Len(t, pharmacyRepo.created, 1)
	require.Len(t, userRepo.created, 1)

	user := userRepo.created[0]
	assert.Equal(t, pharmacyRepo.created[0].ID, user.PharmacyID,
		"el usuario debe quedar ligado a la farmacia recién creada")
	assert.Equal(t, entity.RoleAdmin, user.Role, "el primer usuario debe ser admin")
	assert.Equal(t, user.ID, sc.UserID)
	assert.Equal(t, user.PharmacyID, sc.PharmacyID)
	assert.Equal(t, "carlos", sc.Username)
}

// Caso 2: el password se guarda hasheado con bcrypt, nunca en claro.
func TestSignup_PasswordHasheado(t *testing.T) {
	uc, _, userRepo := newAuthUseCase()

	_, err := uc.Signup(context.Background(), dto.SignupRequest{
		PharmacyName: "Farmacia Norte",
		Username:     "maria",
		Password:     "clave-de-maria",
	})
	require.NoError(t, err)

	user := userRepo.byUsername["maria"]
	require.NotNil(t, user)
	assert.NotEqual(t, "clave-de-maria", user.PasswordHash,
		"el password nunca debe guardarse en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash), []byte("clave-de-maria")),
		"el hash debe verificar contra el password original")
}

// Caso 3: username ya tomado → ErrUsernameTaken y la farmacia insertada en la
// misma transacción se revierte.
func TestSignup_UsernameTomado_RevierteFarmacia(t *testing.T) {
	uc, pharmacyRepo, _ := newAuthUseCase()

	_, err := uc.Signup(context.Background(), dto.SignupRequest{
		PharmacyName: "Farmacia A",
		Username:     "duplicado",
		Password:     "password-uno",
	})
	require.NoError(t, err)

	_, err = uc.Signup(context.Background(), dto.SignupRequest{
		PharmacyName: "Farmacia B",
		Username:     "duplicado",
		Password:     "password-dos",
	})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	assert.Len(t, pharmacyRepo.created, 1,
		"la farmacia del registro fallido no debe quedar persistida")
}

// Caso 4: entrada inválida (campos vacíos o password corto) → ErrInvalidInput.
func TestSignup_EntradaInvalida(t *testing.T) {
	uc, _, _ := newAuthUseCase()

	cases := []struct {
		name string
		in   dto.SignupRequest
	}{
		{"nombre de farmacia vacío", dto.SignupRequest{Username: "ana", Password: "password-ok"}},
		{"username vacío", dto.SignupRequest{PharmacyName: "Farmacia", Password: "password-ok"}},
		{"password vacío", dto.SignupRequest{PharmacyName: "Farmacia", Username: "ana"}},
		{"password corto", dto.SignupRequest{PharmacyName: "Farmacia", Username: "ana", Password: "corto"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Signup(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

// Caso 5: credenciales correctas → contexto de sesión de la farmacia del usuario.
func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc, _, _ := newAuthUseCase()

	reg, err := uc.Signup(context.Background(), dto.SignupRequest{
		PharmacyName: "Farmacia Sur",
		Username:     "pedro",
		Password:     "clave-de-pedro",
	})
	require.NoError(t, err)

	sc, err := uc.Login(context.Background(), dto.LoginRequest{
		Username: "pedro",
		Password: "clave-de-pedro",
	})
	require.NoError(t, err)
	require.NotNil(t, sc)
	assert.Equal(t, reg.PharmacyID, sc.PharmacyID)
	assert.Equal(t, reg.UserID, sc.UserID)
}

// Caso 6: usuario inexistente y password incorrecto devuelven exactamente el
// mismo error, para no permitir enumeración de usernames.
func TestLogin_ErrorIndistinguible(t *testing.T) {
	uc, _, _ := newAuthUseCase()

	_, err := uc.Signup(context.Background(), dto.SignupRequest{
		PharmacyName: "Farmacia Este",
		Username:     "laura",
		Password:     "clave-de-laura",
	})
	require.NoError(t, err)

	_, errNoUser := uc.Login(context.Background(), dto.LoginRequest{
		Username: "no-existe",
		Password: "lo-que-sea",
	})
	_, errBadPass := uc.Login(context.Background(), dto.LoginRequest{
		Username: "laura",
		Password: "clave-equivocada",
	})

	assert.ErrorIs(t, errNoUser, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errBadPass, domain.ErrInvalidCredentials)
	assert.Equal(t, errNoUser, errBadPass,
		"ambos fallos deben ser indistinguibles para el cliente")
}
