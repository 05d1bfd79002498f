package http

import (
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"finance-front/internal/service"
	"finance-front/web"
)

// NewRouter configura el router de Gin con middlewares, plantillas y rutas.
func NewRouter(
	logger *zap.Logger,
	sessions *service.SessionService,
	templates *template.Template,
	authH *AuthHandler,
	dashboardH *DashboardHandler,
	accountH *AccountHandler,
	transactionH *TransactionHandler,
) *gin.Engine {
	r := gin.New()
	r.SetHTMLTemplate(templates)

	if static, err := fs.Sub(web.StaticFS, "static"); err == nil {
		r.StaticFS("/static", http.FS(static))
	}

	// Middlewares basicos: logging, recovery, tema y resolución de sesión.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), ThemeMiddleware(), SessionMiddleware(sessions))

	// Rutas públicas.
	r.GET("/", dashboardH.Home)
	r.GET("/login", authH.LoginForm)
	r.POST("/login", authH.Login)
	r.GET("/register", authH.RegisterForm)
	r.POST("/register", authH.Register)
	r.POST("/logout", authH.Logout)
	r.POST("/theme", authH.ToggleTheme)

	// Rutas protegidas: sin sesión autenticada se redirige a /login.
	protected := r.Group("/", RequireUser())
	protected.GET("/dashboard", dashboardH.Show)

	accounts := protected.Group("/accounts")
	accounts.GET("", accountH.List)
	accounts.GET("/new", accountH.NewForm)
	accounts.POST("", accountH.Create)
	accounts.GET("/:id/edit", accountH.EditForm)
	accounts.POST("/:id", accountH.Update)
	accounts.POST("/:id/delete", accountH.Delete)
	accounts.POST("/:id/activate", accountH.Activate)
	accounts.POST("/:id/deactivate", accountH.Deactivate)

	transactions := protected.Group("/transactions")
	transactions.GET("", transactionH.List)
	transactions.GET("/new", transactionH.NewForm)
	transactions.POST("", transactionH.Create)
	transactions.GET("/:id/edit", transactionH.EditForm)
	transactions.POST("/:id", transactionH.Update)
	transactions.POST("/:id/delete", transactionH.Delete)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
