package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finance-front/internal/service"
)

// SessionMiddleware resuelve la sesión una vez por request y la deja en el
// contexto. La resolución ya degrada a anónima ante cualquier fallo, así
// que aquí nunca se corta el request.
func SessionMiddleware(sessions *service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(sessionCookieName)
		if err != nil {
			sid = ""
		}
		session := sessions.Resolve(c.Request.Context(), sid)
		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// RequireUser es el guard de rutas protegidas: las sesiones anónimas se
// redirigen a /login y el handler envuelto nunca llega a ejecutarse.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := CurrentSession(c)
		if !session.Authenticated() {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// ThemeMiddleware lee la cookie de tema y normaliza valores desconocidos.
func ThemeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		theme, err := c.Cookie(themeCookieName)
		if err != nil || (theme != "dark" && theme != "light") {
			theme = "light"
		}
		c.Set(themeContextKey, theme)
		c.Next()
	}
}
