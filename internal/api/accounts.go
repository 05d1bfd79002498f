package api

import (
	"context"
	"fmt"
	"net/http"

	"finance-front/internal/domain"
)

// AccountService mapea 1:1 las operaciones REST de cuentas.
type AccountService struct {
	client *Client
}

func (s *AccountService) List(ctx context.Context, token string) ([]domain.Account, error) {
	var accounts []domain.Account
	if err := s.client.do(ctx, http.MethodGet, "/accounts", token, nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// ListActive devuelve solo cuentas activas; la usa el selector de cuenta
// del formulario de movimientos.
func (s *AccountService) ListActive(ctx context.Context, token string) ([]domain.Account, error) {
	var accounts []domain.Account
	if err := s.client.do(ctx, http.MethodGet, "/accounts/active", token, nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *AccountService) Get(ctx context.Context, token string, id int64) (domain.Account, error) {
	var account domain.Account
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/accounts/%d", id), token, nil, &account); err != nil {
		return domain.Account{}, err
	}
	return account, nil
}

func (s *AccountService) Create(ctx context.Context, token string, req AccountRequest) (domain.Account, error) {
	var account domain.Account
	if err := s.client.do(ctx, http.MethodPost, "/accounts", token, req, &account); err != nil {
		return domain.Account{}, err
	}
	return account, nil
}

func (s *AccountService) Update(ctx context.Context, token string, id int64, req AccountRequest) (domain.Account, error) {
	var account domain.Account
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/accounts/%d", id), token, req, &account); err != nil {
		return domain.Account{}, err
	}
	return account, nil
}

func (s *AccountService) Delete(ctx context.Context, token string, id int64) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/accounts/%d", id), token, nil, nil)
}

// Activate y Deactivate son transiciones de estado dedicadas, distintas
// del update completo.
func (s *AccountService) Activate(ctx context.Context, token string, id int64) error {
	return s.client.do(ctx, http.MethodPost, fmt.Sprintf("/accounts/%d/activate", id), token, nil, nil)
}

func (s *AccountService) Deactivate(ctx context.Context, token string, id int64) error {
	return s.client.do(ctx, http.MethodPost, fmt.Sprintf("/accounts/%d/deactivate", id), token, nil, nil)
}
