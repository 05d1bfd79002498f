package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"finance-front/internal/api"
	"finance-front/internal/domain"
	"finance-front/internal/service"
)

// TransactionHandler mantiene dependencias para las pantallas de movimientos.
type TransactionHandler struct {
	logger       *zap.Logger
	sessions     *service.SessionService
	accounts     api.AccountsAPI
	transactions api.TransactionsAPI
	cookies      CookieOptions
}

// NewTransactionHandler crea una instancia de TransactionHandler con dependencias necesarias.
func NewTransactionHandler(logger *zap.Logger, sessions *service.SessionService, accounts api.AccountsAPI, transactions api.TransactionsAPI, cookies CookieOptions) *TransactionHandler {
	return &TransactionHandler{
		logger:       logger,
		sessions:     sessions,
		accounts:     accounts,
		transactions: transactions,
		cookies:      cookies,
	}
}

type transactionForm struct {
	Amount      string `form:"amount"`
	Type        string `form:"type"`
	Date        string `form:"date"`
	Description string `form:"description"`
	Category    string `form:"category"`
	AccountID   string `form:"accountId"`
}

func (f transactionForm) data() gin.H {
	return gin.H{
		"Amount":      f.Amount,
		"Type":        f.Type,
		"Date":        f.Date,
		"Description": f.Description,
		"Category":    f.Category,
		"AccountID":   f.AccountID,
	}
}

// validate aplica las reglas campo a campo y devuelve el request listo para
// la API junto con los errores por campo. La validación del importe corre
// completa antes de tocar la red.
func (f transactionForm) validate() (api.TransactionRequest, map[string]string) {
	errs := make(map[string]string)
	var req api.TransactionRequest

	amount, err := parsePositiveAmount(f.Amount)
	if err != nil {
		errs["Amount"] = err.Error()
	} else {
		req.Amount = amount
	}

	if !domain.TransactionType(f.Type).Valid() {
		errs["Type"] = "Invalid transaction type"
	} else {
		req.Type = domain.TransactionType(f.Type)
	}

	date, err := parseDate(f.Date)
	if err != nil {
		errs["Date"] = err.Error()
	} else {
		req.Date = date
	}

	if f.Description == "" {
		errs["Description"] = "This field is required"
	} else {
		req.Description = f.Description
	}
	req.Category = f.Category

	accountID, err := strconv.ParseInt(f.AccountID, 10, 64)
	if err != nil || accountID <= 0 {
		errs["AccountID"] = "An account must be selected"
	} else {
		req.AccountID = accountID
	}

	if len(errs) > 0 {
		return api.TransactionRequest{}, errs
	}
	return req, nil
}

// List maneja GET /transactions. El query param account filtra por cuenta
// puntual; "all" o ausente lista todo.
func (h *TransactionHandler) List(c *gin.Context) {
	h.renderList(c, http.StatusOK, "")
}

func (h *TransactionHandler) renderList(c *gin.Context, status int, errMsg string) {
	token := CurrentSession(c).Token
	ctx := c.Request.Context()

	accounts, err := h.accounts.List(ctx, token)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			redirectToLogin(c, h.sessions, h.cookies)
			return
		}
		h.logger.Error("list accounts failed", zap.Error(err))
		accounts = nil
	}

	filter := c.Query("account")
	var transactions []domain.Transaction
	if filter == "" || filter == "all" {
		filter = "all"
		transactions, err = h.transactions.List(ctx, token)
	} else {
		var accountID int64
		accountID, err = strconv.ParseInt(filter, 10, 64)
		if err != nil {
			filter = "all"
			transactions, err = h.transactions.List(ctx, token)
		} else {
			transactions, err = h.transactions.ListByAccount(ctx, token, accountID)
		}
	}
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			redirectToLogin(c, h.sessions, h.cookies)
			return
		}
		h.logger.Error("list transactions failed", zap.Error(err))
		if errMsg == "" {
			errMsg = userMessage(err, "Could not load transactions. Please try again later.")
		}
		status = http.StatusBadGateway
		transactions = nil
	}

	render(c, status, "transactions.html", gin.H{
		"Active":       "transactions",
		"Error":        errMsg,
		"Filter":       filter,
		"Accounts":     accounts,
		"Transactions": transactions,
	})
}

// NewForm maneja GET /transactions/new.
func (h *TransactionHandler) NewForm(c *gin.Context) {
	accounts, ok := h.activeAccounts(c)
	if !ok {
		return
	}
	form := transactionForm{
		Type: string(domain.TransactionExpense),
		Date: time.Now().Format("2006-01-02"),
	}
	h.renderForm(c, http.StatusOK, accounts, gin.H{
		"IsEdit": false,
		"Form":   form.data(),
	})
}

// EditForm maneja GET /transactions/:id/edit.
func (h *TransactionHandler) EditForm(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.notFound(c)
		return
	}
	token := CurrentSession(c).Token
	tx, err := h.transactions.Get(c.Request.Context(), token, id)
	if err != nil {
		switch {
		case errors.Is(err, api.ErrUnauthorized):
			redirectToLogin(c, h.sessions, h.cookies)
		case errors.Is(err, api.ErrNotFound):
			h.notFound(c)
		default:
			h.logger.Error("get transaction failed", zap.Int64("transaction_id", id), zap.Error(err))
			h.renderList(c, http.StatusBadGateway, userMessage(err, "Could not load the transaction."))
		}
		return
	}
	accounts, ok := h.activeAccounts(c)
	if !ok {
		return
	}
	form := transactionForm{
		Amount:      tx.Amount.String(),
		Type:        string(tx.Type),
		Date:        tx.Date,
		Description: tx.Description,
		Category:    tx.Category,
		AccountID:   strconv.FormatInt(tx.AccountID, 10),
	}
	h.renderForm(c, http.StatusOK, accounts, gin.H{
		"IsEdit":        true,
		"TransactionID": tx.ID,
		"Form":          form.data(),
	})
}

// Create maneja POST /transactions.
func (h *TransactionHandler) Create(c *gin.Context) {
	var form transactionForm
	_ = c.ShouldBind(&form)

	req, errs := form.validate()
	if errs != nil {
		accounts, ok := h.activeAccounts(c)
		if !ok {
			return
		}
		h.renderForm(c, http.StatusBadRequest, accounts, gin.H{
			"IsEdit": false,
			"Errors": errs,
			"Form":   form.data(),
		})
		return
	}

	token := CurrentSession(c).Token
	if _, err := h.transactions.Create(c.Request.Context(), token, req); err != nil {
		h.saveFailed(c, form, 0, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/transactions")
}

// Update maneja POST /transactions/:id.
func (h *TransactionHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.notFound(c)
		return
	}
	var form transactionForm
	_ = c.ShouldBind(&form)

	req, errs := form.validate()
	if errs != nil {
		accounts, ok := h.activeAccounts(c)
		if !ok {
			return
		}
		h.renderForm(c, http.StatusBadRequest, accounts, gin.H{
			"IsEdit":        true,
			"TransactionID": id,
			"Errors":        errs,
			"Form":          form.data(),
		})
		return
	}

	token := CurrentSession(c).Token
	if _, err := h.transactions.Update(c.Request.Context(), token, id, req); err != nil {
		h.saveFailed(c, form, id, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/transactions")
}

// Delete maneja POST /transactions/:id/delete.
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.notFound(c)
		return
	}
	token := CurrentSession(c).Token
	if err := h.transactions.Delete(c.Request.Context(), token, id); err != nil {
		switch {
		case errors.Is(err, api.ErrUnauthorized):
			redirectToLogin(c, h.sessions, h.cookies)
		case errors.Is(err, api.ErrNotFound):
			h.renderList(c, http.StatusNotFound, "Transaction not found")
		default:
			h.logger.Error("delete transaction failed", zap.Int64("transaction_id", id), zap.Error(err))
			h.renderList(c, http.StatusBadGateway, userMessage(err, "Could not delete the transaction."))
		}
		return
	}
	c.Redirect(http.StatusSeeOther, "/transactions")
}

// saveFailed repinta el formulario tras un fallo de la API al crear o editar.
func (h *TransactionHandler) saveFailed(c *gin.Context, form transactionForm, id int64, err error) {
	switch {
	case errors.Is(err, api.ErrUnauthorized):
		redirectToLogin(c, h.sessions, h.cookies)
		return
	case errors.Is(err, api.ErrNotFound):
		h.notFound(c)
		return
	}
	h.logger.Error("save transaction failed", zap.Error(err))
	accounts, ok := h.activeAccounts(c)
	if !ok {
		return
	}
	data := gin.H{
		"IsEdit": id != 0,
		"Error":  userMessage(err, "Could not save the transaction."),
		"Form":   form.data(),
	}
	if id != 0 {
		data["TransactionID"] = id
	}
	h.renderForm(c, http.StatusBadGateway, accounts, data)
}

// activeAccounts trae las cuentas activas para el selector del formulario.
// Devuelve ok=false cuando ya respondió el request por un fallo.
func (h *TransactionHandler) activeAccounts(c *gin.Context) ([]domain.Account, bool) {
	token := CurrentSession(c).Token
	accounts, err := h.accounts.ListActive(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			redirectToLogin(c, h.sessions, h.cookies)
			return nil, false
		}
		h.logger.Error("list active accounts failed", zap.Error(err))
		h.renderList(c, http.StatusBadGateway, userMessage(err, "Could not load accounts for the form."))
		return nil, false
	}
	return accounts, true
}

func (h *TransactionHandler) renderForm(c *gin.Context, status int, accounts []domain.Account, data gin.H) {
	data["Active"] = "transactions"
	data["Types"] = domain.TransactionTypes()
	data["Accounts"] = accounts
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = map[string]string{}
	}
	render(c, status, "transaction_form.html", data)
}

func (h *TransactionHandler) notFound(c *gin.Context) {
	render(c, http.StatusNotFound, "error.html", gin.H{"Message": "Transaction not found"})
}
