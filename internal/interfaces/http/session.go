package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/tu-usuario/farmastock/internal/application/dto"
	"github.com/tu-usuario/farmastock/pkg/config"
)

// Claves del payload de sesión y de c.Locals.
const (
	sessKeyUserID     = "user_id"
	sessKeyPharmacyID = "pharmacy_id"
	sessKeyUsername   = "username"
	sessKeyRole       = "role"
	sessKeyFlashKind  = "flash_kind"
	sessKeyFlashMsg   = "flash_msg"

	localSession = "session_ctx"
)

// NewSessionStore construye el almacén de sesiones: estado en el servidor,
// el cliente solo recibe la cookie con el id opaco.
func NewSessionStore(cfg config.SessionConfig) *session.Store {
	return session.New(session.Config{
		KeyLookup:      "cookie:" + cfg.CookieName,
		Expiration:     time.Duration(cfg.ExpiryHours) * time.Hour,
		CookieHTTPOnly: true,
		CookieSecure:   cfg.CookieSecure,
		CookieSameSite: "Lax",
	})
}

// SaveSessionContext persiste el contexto de sesión tras un login o registro correcto.
func SaveSessionContext(c *fiber.Ctx, store *session.Store, sc dto.SessionContext) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	sess.Set(sessKeyUserID, sc.UserID)
	sess.Set(sessKeyPharmacyID, sc.PharmacyID)
	sess.Set(sessKeyUsername, sc.Username)
	sess.Set(sessKeyRole, sc.Role)
	return sess.Save()
}

// DestroySession elimina la sesión del almacén (logout).
func DestroySession(c *fiber.Ctx, store *session.Store) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

// RequireSession middleware para el área autenticada: sin sesión válida
// redirige a /login; con sesión expone el SessionContext en c.Locals.
// El pharmacy_id de todo acceso a datos sale de aquí, nunca del cliente.
func RequireSession(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sc := SessionFromStore(c, store)
		if sc == nil {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		c.Locals(localSession, *sc)
		return c.Next()
	}
}

// SessionFromStore lee el contexto de sesión directamente del almacén.
// Devuelve nil si no hay sesión autenticada (útil en rutas públicas).
func SessionFromStore(c *fiber.Ctx, store *session.Store) *dto.SessionContext {
	sess, err := store.Get(c)
	if err != nil {
		return nil
	}
	userID, _ := sess.Get(sessKeyUserID).(string)
	pharmacyID, _ := sess.Get(sessKeyPharmacyID).(string)
	if userID == "" || pharmacyID == "" {
		return nil
	}
	username, _ := sess.Get(sessKeyUsername).(string)
	role, _ := sess.Get(sessKeyRole).(string)
	return &dto.SessionContext{
		UserID:     userID,
		PharmacyID: pharmacyID,
		Username:   username,
		Role:       role,
	}
}

// CurrentSession devuelve el contexto de sesión cargado por RequireSession.
func CurrentSession(c *fiber.Ctx) dto.SessionContext {
	if sc, ok := c.Locals(localSession).(dto.SessionContext); ok {
		return sc
	}
	return dto.SessionContext{}
}

// Flash aviso de un solo uso para la siguiente vista (resultado de un POST
// que redirige).
type Flash struct {
	Kind    string // "success" | "error"
	Message string
}

// SetFlash guarda un aviso en la sesión; se consume en el siguiente render.
func SetFlash(c *fiber.Ctx, store *session.Store, kind, message string) {
	sess, err := store.Get(c)
	if err != nil {
		return
	}
	sess.Set(sessKeyFlashKind, kind)
	sess.Set(sessKeyFlashMsg, message)
	_ = sess.Save()
}

// PopFlash lee y borra el aviso pendiente, si lo hay.
func PopFlash(c *fiber.Ctx, store *session.Store) *Flash {
	sess, err := store.Get(c)
	if err != nil {
		return nil
	}
	kind, _ := sess.Get(sessKeyFlashKind).(string)
	msg, _ := sess.Get(sessKeyFlashMsg).(string)
	if msg == "" {
		return nil
	}
	sess.Delete(sessKeyFlashKind)
	sess.Delete(sessKeyFlashMsg)
	_ = sess.Save()
	return &Flash{Kind: kind, Message: msg}
}
