package http

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"finance-front/internal/api"
	"finance-front/internal/domain"
	"finance-front/internal/service"
)

const recentTransactionsLimit = 5

// DashboardHandler mantiene dependencias para la pantalla principal.
type DashboardHandler struct {
	logger       *zap.Logger
	sessions     *service.SessionService
	accounts     api.AccountsAPI
	transactions api.TransactionsAPI
	cookies      CookieOptions
}

// NewDashboardHandler crea una instancia de DashboardHandler con dependencias necesarias.
func NewDashboardHandler(logger *zap.Logger, sessions *service.SessionService, accounts api.AccountsAPI, transactions api.TransactionsAPI, cookies CookieOptions) *DashboardHandler {
	return &DashboardHandler{
		logger:       logger,
		sessions:     sessions,
		accounts:     accounts,
		transactions: transactions,
		cookies:      cookies,
	}
}

// Home maneja GET / redirigiendo a la pantalla principal.
func (h *DashboardHandler) Home(c *gin.Context) {
	c.Redirect(http.StatusFound, "/dashboard")
}

// Show maneja GET /dashboard. Cuentas y movimientos se piden en paralelo.
func (h *DashboardHandler) Show(c *gin.Context) {
	token := CurrentSession(c).Token

	var accounts []domain.Account
	var transactions []domain.Transaction
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		accounts, err = h.accounts.List(ctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		transactions, err = h.transactions.List(ctx, token)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			redirectToLogin(c, h.sessions, h.cookies)
			return
		}
		h.logger.Error("load dashboard failed", zap.Error(err))
		render(c, http.StatusBadGateway, "dashboard.html", gin.H{
			"Active":         "dashboard",
			"Error":          userMessage(err, "Could not load your dashboard. Please try again later."),
			"Accounts":       []domain.Account{},
			"ActiveAccounts": 0,
			"TotalBalance":   decimal.Zero,
			"Recent":         []domain.Transaction{},
		})
		return
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date > transactions[j].Date
	})
	recent := transactions
	if len(recent) > recentTransactionsLimit {
		recent = recent[:recentTransactionsLimit]
	}

	// El total solo suma cuentas activas, agrupar por moneda queda del
	// lado de la vista mostrando la moneda de cada cuenta.
	total := decimal.Zero
	active := 0
	for _, account := range accounts {
		if account.Active {
			total = total.Add(account.Balance)
			active++
		}
	}

	render(c, http.StatusOK, "dashboard.html", gin.H{
		"Active":         "dashboard",
		"Accounts":       accounts,
		"ActiveAccounts": active,
		"TotalBalance":   total,
		"Recent":         recent,
	})
}
