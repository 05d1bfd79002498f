package api

import (
	"context"

	"github.com/shopspring/decimal"

	"finance-front/internal/domain"
)

// Requests con los mismos campos camelCase que espera la API.
type (
	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	RegisterRequest struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}

	AccountRequest struct {
		Name        string             `json:"name"`
		Type        domain.AccountType `json:"type"`
		Currency    string             `json:"currency"`
		Balance     decimal.Decimal    `json:"balance"`
		Description string             `json:"description,omitempty"`
	}

	TransactionRequest struct {
		Amount      decimal.Decimal        `json:"amount"`
		Type        domain.TransactionType `json:"type"`
		Date        string                 `json:"date"`
		Description string                 `json:"description,omitempty"`
		Category    string                 `json:"category,omitempty"`
		AccountID   int64                  `json:"accountId"`
	}
)

// Interfaces de los resource services, para poder testear contra Mock.
type (
	AuthAPI interface {
		Login(ctx context.Context, req LoginRequest) (string, error)
		Register(ctx context.Context, req RegisterRequest) (domain.User, error)
		CurrentUser(ctx context.Context, token string) (domain.User, error)
	}

	AccountsAPI interface {
		List(ctx context.Context, token string) ([]domain.Account, error)
		ListActive(ctx context.Context, token string) ([]domain.Account, error)
		Get(ctx context.Context, token string, id int64) (domain.Account, error)
		Create(ctx context.Context, token string, req AccountRequest) (domain.Account, error)
		Update(ctx context.Context, token string, id int64, req AccountRequest) (domain.Account, error)
		Delete(ctx context.Context, token string, id int64) error
		Activate(ctx context.Context, token string, id int64) error
		Deactivate(ctx context.Context, token string, id int64) error
	}

	TransactionsAPI interface {
		List(ctx context.Context, token string) ([]domain.Transaction, error)
		ListByAccount(ctx context.Context, token string, accountID int64) ([]domain.Transaction, error)
		Get(ctx context.Context, token string, id int64) (domain.Transaction, error)
		Create(ctx context.Context, token string, req TransactionRequest) (domain.Transaction, error)
		Update(ctx context.Context, token string, id int64, req TransactionRequest) (domain.Transaction, error)
		Delete(ctx context.Context, token string, id int64) error
	}
)
