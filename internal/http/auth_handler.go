package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"finance-front/internal/api"
	"finance-front/internal/service"
)

// AuthHandler mantiene dependencias para las pantallas de login y registro.
type AuthHandler struct {
	logger   *zap.Logger
	sessions *service.SessionService
	cookies  CookieOptions
}

// NewAuthHandler crea una instancia de AuthHandler con dependencias necesarias.
func NewAuthHandler(logger *zap.Logger, sessions *service.SessionService, cookies CookieOptions) *AuthHandler {
	return &AuthHandler{
		logger:   logger,
		sessions: sessions,
		cookies:  cookies,
	}
}

// LoginForm maneja GET /login.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	if CurrentSession(c).Authenticated() {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	data := gin.H{"Email": ""}
	if c.Query("registered") == "1" {
		data["Notice"] = "Account created. Please sign in."
	}
	render(c, http.StatusOK, "login.html", data)
}

// Login maneja POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var form struct {
		Email    string `form:"email" binding:"required,email"`
		Password string `form:"password" binding:"required"`
	}
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{
			"Error": "Email and password are required",
			"Email": c.PostForm("email"),
		})
		return
	}

	session, err := h.sessions.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		msg := "Could not sign in. Please try again later."
		status := http.StatusBadGateway
		var apiErr *api.APIError
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			msg = "Invalid email or password"
			status = http.StatusUnauthorized
		case errors.As(err, &apiErr):
			msg = apiErr.UserMessage()
			status = http.StatusBadGateway
		default:
			h.logger.Error("login failed", zap.Error(err))
		}
		render(c, status, "login.html", gin.H{"Error": msg, "Email": form.Email})
		return
	}

	setSessionCookie(c, h.cookies, session.SID)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// RegisterForm maneja GET /register.
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	if CurrentSession(c).Authenticated() {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	render(c, http.StatusOK, "register.html", registerFormData("", nil, gin.H{
		"FirstName": "", "LastName": "", "Email": "",
	}))
}

// Register maneja POST /register. El alta no autentica: redirige a /login.
func (h *AuthHandler) Register(c *gin.Context) {
	var form struct {
		FirstName string `form:"firstName" binding:"required"`
		LastName  string `form:"lastName" binding:"required"`
		Email     string `form:"email" binding:"required,email"`
		Password  string `form:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "register.html", registerFormData("", fieldErrors(err), gin.H{
			"FirstName": c.PostForm("firstName"),
			"LastName":  c.PostForm("lastName"),
			"Email":     c.PostForm("email"),
		}))
		return
	}

	_, err := h.sessions.Register(c.Request.Context(), api.RegisterRequest{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  form.Password,
	})
	if err != nil {
		msg := "Could not create the account. Please try again later."
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			msg = apiErr.UserMessage()
		} else {
			h.logger.Error("register failed", zap.Error(err))
		}
		render(c, http.StatusBadRequest, "register.html", registerFormData(msg, nil, gin.H{
			"FirstName": form.FirstName,
			"LastName":  form.LastName,
			"Email":     form.Email,
		}))
		return
	}

	c.Redirect(http.StatusSeeOther, "/login?registered=1")
}

// registerFormData arma los datos del formulario de alta con todas las
// claves presentes, así la plantilla no depende de claves opcionales.
func registerFormData(errMsg string, errs map[string]string, form gin.H) gin.H {
	if errs == nil {
		errs = map[string]string{}
	}
	return gin.H{"Error": errMsg, "Errors": errs, "Form": form}
}

// Logout maneja POST /logout. Es idempotente.
func (h *AuthHandler) Logout(c *gin.Context) {
	sid, err := c.Cookie(sessionCookieName)
	if err == nil && sid != "" {
		if err := h.sessions.Logout(c.Request.Context(), sid); err != nil {
			h.logger.Warn("logout failed", zap.Error(err))
		}
	}
	clearSessionCookie(c, h.cookies)
	c.Redirect(http.StatusSeeOther, "/login")
}

// ToggleTheme maneja POST /theme y vuelve a la página de origen.
func (h *AuthHandler) ToggleTheme(c *gin.Context) {
	next := "dark"
	if currentTheme(c) == "dark" {
		next = "light"
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(themeCookieName, next, 365*24*3600, "/", "", h.cookies.Secure, false)

	back := c.GetHeader("Referer")
	if back == "" {
		back = "/dashboard"
	}
	c.Redirect(http.StatusSeeOther, back)
}
