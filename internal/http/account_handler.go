package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"finance-front/internal/api"
	"finance-front/internal/domain"
	"finance-front/internal/service"
)

// supportedCurrencies alimenta el selector de moneda del formulario.
var supportedCurrencies = []string{"USD", "EUR", "GBP", "JPY", "ARS", "MXN"}

// AccountHandler mantiene dependencias para las pantallas de cuentas.
type AccountHandler struct {
	logger   *zap.Logger
	sessions *service.SessionService
	accounts api.AccountsAPI
	cookies  CookieOptions
}

// NewAccountHandler crea una instancia de AccountHandler con dependencias necesarias.
func NewAccountHandler(logger *zap.Logger, sessions *service.SessionService, accounts api.AccountsAPI, cookies CookieOptions) *AccountHandler {
	return &AccountHandler{
		logger:   logger,
		sessions: sessions,
		accounts: accounts,
		cookies:  cookies,
	}
}

type accountForm struct {
	Name        string `form:"name"`
	Type        string `form:"type"`
	Currency    string `form:"currency"`
	Balance     string `form:"balance"`
	Description string `form:"description"`
}

func (f accountForm) data() gin.H {
	return gin.H{
		"Name":        f.Name,
		"Type":        f.Type,
		"Currency":    f.Currency,
		"Balance":     f.Balance,
		"Description": f.Description,
	}
}

// validate aplica las reglas del formulario y devuelve el request listo para
// la API, o el primer mensaje de error encontrado.
func (f accountForm) validate() (api.AccountRequest, string) {
	if f.Name == "" || f.Type == "" || f.Currency == "" || f.Balance == "" {
		return api.AccountRequest{}, "All required fields must be filled"
	}
	if !domain.AccountType(f.Type).Valid() {
		return api.AccountRequest{}, "Invalid account type"
	}
	balance, err := parseBalance(f.Balance)
	if err != nil {
		return api.AccountRequest{}, err.Error()
	}
	return api.AccountRequest{
		Name:        f.Name,
		Type:        domain.AccountType(f.Type),
		Currency:    f.Currency,
		Balance:     balance,
		Description: f.Description,
	}, ""
}

// List maneja GET /accounts.
func (h *AccountHandler) List(c *gin.Context) {
	h.renderList(c, http.StatusOK, "")
}

// renderList busca la lista completa y la pinta, opcionalmente con un error
// de una mutación previa.
func (h *AccountHandler) renderList(c *gin.Context, status int, errMsg string) {
	token := CurrentSession(c).Token
	accounts, err := h.accounts.List(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			redirectToLogin(c, h.sessions, h.cookies)
			return
		}
		h.logger.Error("list accounts failed", zap.Error(err))
		if errMsg == "" {
			errMsg = userMessage(err, "Could not load accounts. Please try again later.")
		}
		render(c, http.StatusBadGateway, "accounts.html", gin.H{
			"Active":   "accounts",
			"Error":    errMsg,
			"Accounts": []domain.Account{},
		})
		return
	}
	render(c, status, "accounts.html", gin.H{
		"Active":   "accounts",
		"Error":    errMsg,
		"Accounts": accounts,
	})
}

// NewForm maneja GET /accounts/new.
func (h *AccountHandler) NewForm(c *gin.Context) {
	form := accountForm{
		Type:     string(domain.AccountChecking),
		Currency: "USD",
		Balance:  "0",
	}
	h.renderForm(c, http.StatusOK, gin.H{
		"IsEdit": false,
		"Form":   form.data(),
	})
}

// EditForm maneja GET /accounts/:id/edit.
func (h *AccountHandler) EditForm(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.notFound(c, "Account not found")
		return
	}
	token := CurrentSession(c).Token
	account, err := h.accounts.Get(c.Request.Context(), token, id)
	if err != nil {
		switch {
		case errors.Is(err, api.ErrUnauthorized):
			redirectToLogin(c, h.sessions, h.cookies)
		case errors.Is(err, api.ErrNotFound):
			h.notFound(c, "Account not found")
		default:
			h.logger.Error("get account failed", zap.Int64("account_id", id), zap.Error(err))
			h.renderList(c, http.StatusBadGateway, userMessage(err, "Could not load the account."))
		}
		return
	}
	form := accountForm{
		Name:        account.Name,
		Type:        string(account.Type),
		Currency:    account.Currency,
		Balance:     account.Balance.String(),
		Description: account.Description,
	}
	h.renderForm(c, http.StatusOK, gin.H{
		"IsEdit":    true,
		"AccountID": account.ID,
		"Form":      form.data(),
	})
}

// Create maneja POST /accounts.
func (h *AccountHandler) Create(c *gin.Context) {
	var form accountForm
	_ = c.ShouldBind(&form)

	req, msg := form.validate()
	if msg != "" {
		h.renderForm(c, http.StatusBadRequest, gin.H{
			"IsEdit": false,
			"Error":  msg,
			"Form":   form.data(),
		})
		return
	}

	token := CurrentSession(c).Token
	if _, err := h.accounts.Create(c.Request.Context(), token, req); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			redirectToLogin(c, h.sessions, h.cookies)
			return
		}
		h.logger.Error("create account failed", zap.Error(err))
		h.renderForm(c, http.StatusBadGateway, gin.H{
			"IsEdit": false,
			"Error":  userMessage(err, "Could not save the account."),
			"Form":   form.data(),
		})
		return
	}
	c.Redirect(http.StatusSeeOther, "/accounts")
}

// Update maneja POST /accounts/:id.
func (h *AccountHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.notFound(c, "Account not found")
		return
	}
	var form accountForm
	_ = c.ShouldBind(&form)

	req, msg := form.validate()
	if msg != "" {
		h.renderForm(c, http.StatusBadRequest, gin.H{
			"IsEdit":    true,
			"AccountID": id,
			"Error":     msg,
			"Form":      form.data(),
		})
		return
	}

	token := CurrentSession(c).Token
	if _, err := h.accounts.Update(c.Request.Context(), token, id, req); err != nil {
		switch {
		case errors.Is(err, api.ErrUnauthorized):
			redirectToLogin(c, h.sessions, h.cookies)
		case errors.Is(err, api.ErrNotFound):
			h.notFound(c, "Account not found")
		default:
			h.logger.Error("update account failed", zap.Int64("account_id", id), zap.Error(err))
			h.renderForm(c, http.StatusBadGateway, gin.H{
				"IsEdit":    true,
				"AccountID": id,
				"Error":     userMessage(err, "Could not save the account."),
				"Form":      form.data(),
			})
		}
		return
	}
	c.Redirect(http.StatusSeeOther, "/accounts")
}

// Delete maneja POST /accounts/:id/delete.
func (h *AccountHandler) Delete(c *gin.Context) {
	h.mutate(c, "delete account", func(token string, id int64) error {
		return h.accounts.Delete(c.Request.Context(), token, id)
	})
}

// Activate maneja POST /accounts/:id/activate.
func (h *AccountHandler) Activate(c *gin.Context) {
	h.mutate(c, "activate account", func(token string, id int64) error {
		return h.accounts.Activate(c.Request.Context(), token, id)
	})
}

// Deactivate maneja POST /accounts/:id/deactivate.
func (h *AccountHandler) Deactivate(c *gin.Context) {
	h.mutate(c, "deactivate account", func(token string, id int64) error {
		return h.accounts.Deactivate(c.Request.Context(), token, id)
	})
}

// mutate ejecuta una operación sobre una cuenta puntual y vuelve a la lista.
// En caso de fallo la lista se repinta con el mensaje del error.
func (h *AccountHandler) mutate(c *gin.Context, op string, fn func(token string, id int64) error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.notFound(c, "Account not found")
		return
	}
	token := CurrentSession(c).Token
	if err := fn(token, id); err != nil {
		switch {
		case errors.Is(err, api.ErrUnauthorized):
			redirectToLogin(c, h.sessions, h.cookies)
		case errors.Is(err, api.ErrNotFound):
			h.renderList(c, http.StatusNotFound, "Account not found")
		default:
			h.logger.Error(op+" failed", zap.Int64("account_id", id), zap.Error(err))
			h.renderList(c, http.StatusBadGateway, userMessage(err, "Could not update the account."))
		}
		return
	}
	c.Redirect(http.StatusSeeOther, "/accounts")
}

func (h *AccountHandler) renderForm(c *gin.Context, status int, data gin.H) {
	data["Active"] = "accounts"
	data["Types"] = domain.AccountTypes()
	data["Currencies"] = supportedCurrencies
	render(c, status, "account_form.html", data)
}

func (h *AccountHandler) notFound(c *gin.Context, msg string) {
	render(c, http.StatusNotFound, "error.html", gin.H{"Message": msg})
}

// userMessage traduce errores de la API a un texto mostrable, con fallback
// para fallas de red o respuestas inesperadas.
func userMessage(err error, fallback string) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage()
	}
	return fallback
}
