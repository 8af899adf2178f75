package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/tu-usuario/farmastock/internal/application/auth"
	"github.com/tu-usuario/farmastock/internal/application/dto"
	"github.com/tu-usuario/farmastock/internal/domain"
	"github.com/tu-usuario/farmastock/pkg/logger"
)

// AuthHandler maneja registro, login y logout.
type AuthHandler struct {
	uc    *auth.AuthUseCase
	store *session.Store
	log   *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, store *session.Store, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, store: store, log: log}
}

// ShowLogin GET /login — formulario de inicio de sesión.
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	if SessionFromStore(c, h.store) != nil {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}
	return c.Render("login", fiber.Map{
		"Title": "Iniciar sesión",
		"Flash": PopFlash(c, h.store),
	})
}

// Login POST /login — credenciales inválidas (usuario inexistente o password
// incorrecto) producen exactamente la misma respuesta.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil || in.Username == "" || in.Password == "" {
		SetFlash(c, h.store, "error", "Usuario y contraseña son requeridos")
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	sc, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			h.log.Error().Err(err).Msg("login")
		}
		SetFlash(c, h.store, "error", "Credenciales inválidas")
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	if err := SaveSessionContext(c, h.store, *sc); err != nil {
		h.log.Error().Err(err).Msg("guardar sesión")
		SetFlash(c, h.store, "error", "No se pudo iniciar la sesión")
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

// ShowSignup GET /signup — formulario de registro de farmacia.
func (h *AuthHandler) ShowSignup(c *fiber.Ctx) error {
	if SessionFromStore(c, h.store) != nil {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}
	return c.Render("signup", fiber.Map{
		"Title": "Registrar farmacia",
		"Flash": PopFlash(c, h.store),
	})
}

// Signup POST /signup — crea farmacia + usuario admin en una transacción y
// deja la sesión iniciada.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := c.BodyParser(&in); err != nil {
		SetFlash(c, h.store, "error", "Formulario inválido")
		return c.Redirect("/signup", fiber.StatusSeeOther)
	}
	sc, err := h.uc.Signup(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUsernameTaken):
			SetFlash(c, h.store, "error", "El nombre de usuario ya está en uso")
		case errors.Is(err, domain.ErrInvalidInput):
			SetFlash(c, h.store, "error", "Todos los campos son requeridos y la contraseña debe tener al menos 8 caracteres")
		default:
			h.log.Error().Err(err).Msg("signup")
			SetFlash(c, h.store, "error", "No se pudo completar el registro")
		}
		return c.Redirect("/signup", fiber.StatusSeeOther)
	}
	if err := SaveSessionContext(c, h.store, *sc); err != nil {
		h.log.Error().Err(err).Msg("guardar sesión")
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

// Logout GET /logout — destruye la sesión en el servidor.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := DestroySession(c, h.store); err != nil {
		h.log.Error().Err(err).Msg("destruir sesión")
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}
