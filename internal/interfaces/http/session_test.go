package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/farmastock/internal/application/dto"
	apphttp "github.com/tu-usuario/farmastock/internal/interfaces/http"
	"github.com/tu-usuario/farmastock/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testCookieName = "farmastock_session"
	testUserID     = "00000000-0000-0000-0000-000000000001"
	testPharmacyID = "00000000-0000-0000-0000-000000000002"
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - /fake-login que guarda el contexto de sesión (sin pasar por bcrypt)
//   - /logout que destruye la sesión
//   - /protected detrás de RequireSession, que devuelve el contexto cargado
func buildTestApp() *fiber.App {
	store := apphttp.NewSessionStore(config.SessionConfig{
		CookieName:  testCookieName,
		ExpiryHours: 1,
	})
	app := fiber.New()

	app.Post("/fake-login", func(c *fiber.Ctx) error {
		err := apphttp.SaveSessionContext(c, store, dto.SessionContext{
			UserID:     testUserID,
			PharmacyID: testPharmacyID,
			Username:   "carlos",
			Role:       "admin",
		})
		if err != nil {
			return err
		}
		return c.SendStatus(http.StatusOK)
	})

	app.Post("/logout", func(c *fiber.Ctx) error {
		if err := apphttp.DestroySession(c, store); err != nil {
			return err
		}
		return c.SendStatus(http.StatusOK)
	})

	app.Get("/protected", apphttp.RequireSession(store), func(c *fiber.Ctx) error {
		sc := apphttp.CurrentSession(c)
		return c.JSON(fiber.Map{
			"user_id":     sc.UserID,
			"pharmacy_id": sc.PharmacyID,
			"username":    sc.Username,
			"role":        sc.Role,
		})
	})

	return app
}

// sessionCookie extrae la cookie de sesión de una respuesta.
func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, ck := range resp.Cookies() {
		if ck.Name == testCookieName {
			return ck
		}
	}
	t.Fatalf("la respuesta no trae la cookie %q", testCookieName)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireSession
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: sin sesión → redirige a /login, nunca sirve la página protegida.
func TestRequireSession_SinSesion_RedirigeALogin(t *testing.T) {
	app := buildTestApp()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

// Caso 2: tras el login, la cookie da acceso y el contexto de sesión trae el
// pharmacy_id del usuario, no uno enviado por el cliente.
func TestRequireSession_ConCookie_CargaContexto(t *testing.T) {
	app := buildTestApp()

	loginResp, err := app.Test(httptest.NewRequest(http.MethodPost, "/fake-login", nil), -1)
	require.NoError(t, err)
	defer loginResp.Body.Close()
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	cookie := sessionCookie(t, loginResp)
	assert.True(t, cookie.HttpOnly, "la cookie de sesión debe ser HttpOnly")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testPharmacyID, body["pharmacy_id"])
	assert.Equal(t, "carlos", body["username"])
	assert.Equal(t, "admin", body["role"])
}

// Caso 3: una cookie con un id de sesión inventado no da acceso: el estado
// vive en el servidor, la cookie es solo un identificador opaco.
func TestRequireSession_CookieInventada_RedirigeALogin(t *testing.T) {
	app := buildTestApp()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "id-inventado"})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

// Caso 4: tras el logout la misma cookie deja de dar acceso.
func TestRequireSession_TrasLogout_RedirigeALogin(t *testing.T) {
	app := buildTestApp()

	loginResp, err := app.Test(httptest.NewRequest(http.MethodPost, "/fake-login", nil), -1)
	require.NoError(t, err)
	defer loginResp.Body.Close()
	cookie := sessionCookie(t, loginResp)

	logoutReq := httptest.NewRequest(http.MethodPost, "/logout", nil)
	logoutReq.AddCookie(cookie)
	logoutResp, err := app.Test(logoutReq, -1)
	require.NoError(t, err)
	defer logoutResp.Body.Close()
	require.Equal(t, http.StatusOK, logoutResp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode,
		"una sesión destruida no debe dar acceso aunque el cliente conserve la cookie")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Flash
// ──────────────────────────────────────────────────────────────────────────────

// Caso 5: el flash se consume una sola vez.
func TestFlash_SeConsumeUnaVez(t *testing.T) {
	store := apphttp.NewSessionStore(config.SessionConfig{
		CookieName:  testCookieName,
		ExpiryHours: 1,
	})
	app := fiber.New()

	app.Post("/set", func(c *fiber.Ctx) error {
		apphttp.SetFlash(c, store, "success", "Lote registrado")
		return c.SendStatus(http.StatusOK)
	})
	app.Get("/pop", func(c *fiber.Ctx) error {
		f := apphttp.PopFlash(c, store)
		if f == nil {
			return c.SendString("sin flash")
		}
		return c.SendString(f.Kind + ":" + f.Message)
	})

	setResp, err := app.Test(httptest.NewRequest(http.MethodPost, "/set", nil), -1)
	require.NoError(t, err)
	defer setResp.Body.Close()
	cookie := sessionCookie(t, setResp)

	first := httptest.NewRequest(http.MethodGet, "/pop", nil)
	first.AddCookie(cookie)
	firstResp, err := app.Test(first, -1)
	require.NoError(t, err)
	defer firstResp.Body.Close()
	firstBody := make([]byte, 64)
	n, _ := firstResp.Body.Read(firstBody)
	assert.Equal(t, "success:Lote registrado", string(firstBody[:n]))

	second := httptest.NewRequest(http.MethodGet, "/pop", nil)
	second.AddCookie(cookie)
	secondResp, err := app.Test(second, -1)
	require.NoError(t, err)
	defer secondResp.Body.Close()
	secondBody := make([]byte, 64)
	n, _ = secondResp.Body.Read(secondBody)
	assert.Equal(t, "sin flash", string(secondBody[:n]),
		"el flash debe borrarse al leerse")
}
