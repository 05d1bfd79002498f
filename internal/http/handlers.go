package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finance-front/internal/service"
)

const (
	sessionCookieName = "fin_session"
	themeCookieName   = "theme"

	sessionContextKey = "session"
	themeContextKey   = "theme"
)

// CookieOptions controla cómo se emiten las cookies de sesión y tema.
type CookieOptions struct {
	Secure bool
	MaxAge int
}

// CurrentSession obtiene la sesión resuelta desde el contexto del request.
func CurrentSession(c *gin.Context) service.Session {
	val, ok := c.Get(sessionContextKey)
	if !ok {
		return service.Session{}
	}
	session, ok := val.(service.Session)
	if !ok {
		return service.Session{}
	}
	return session
}

// currentTheme devuelve "dark" o "light"; light es el default.
func currentTheme(c *gin.Context) string {
	val, ok := c.Get(themeContextKey)
	if !ok {
		return "light"
	}
	theme, ok := val.(string)
	if !ok {
		return "light"
	}
	return theme
}

// render ejecuta una plantilla inyectando los datos comunes de layout:
// usuario de la sesión, tema y sección activa del nav.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	session := CurrentSession(c)
	data["User"] = session.User
	data["Theme"] = currentTheme(c)
	if _, ok := data["Active"]; !ok {
		data["Active"] = ""
	}
	c.HTML(status, name, data)
}

// redirectToLogin corta el request cuando la API devolvió 401 a mitad de
// una operación: se limpia la sesión y se vuelve a la pantalla de login.
func redirectToLogin(c *gin.Context, sessions *service.SessionService, opts CookieOptions) {
	session := CurrentSession(c)
	_ = sessions.Logout(c.Request.Context(), session.SID)
	clearSessionCookie(c, opts)
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}

func setSessionCookie(c *gin.Context, opts CookieOptions, sid string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, sid, opts.MaxAge, "/", "", opts.Secure, true)
}

func clearSessionCookie(c *gin.Context, opts CookieOptions) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, "", -1, "/", "", opts.Secure, true)
}
