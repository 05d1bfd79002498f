package api

import (
	"context"
	"fmt"
	"net/http"

	"finance-front/internal/domain"
)

// TransactionService mapea 1:1 las operaciones REST de movimientos.
type TransactionService struct {
	client *Client
}

func (s *TransactionService) List(ctx context.Context, token string) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	if err := s.client.do(ctx, http.MethodGet, "/transactions", token, nil, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (s *TransactionService) ListByAccount(ctx context.Context, token string, accountID int64) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/transactions/account/%d", accountID), token, nil, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (s *TransactionService) Get(ctx context.Context, token string, id int64) (domain.Transaction, error) {
	var tx domain.Transaction
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/transactions/%d", id), token, nil, &tx); err != nil {
		return domain.Transaction{}, err
	}
	return tx, nil
}

func (s *TransactionService) Create(ctx context.Context, token string, req TransactionRequest) (domain.Transaction, error) {
	var tx domain.Transaction
	if err := s.client.do(ctx, http.MethodPost, "/transactions", token, req, &tx); err != nil {
		return domain.Transaction{}, err
	}
	return tx, nil
}

func (s *TransactionService) Update(ctx context.Context, token string, id int64, req TransactionRequest) (domain.Transaction, error) {
	var tx domain.Transaction
	if err := s.client.do(ctx, http.MethodPut, fmt.Sprintf("/transactions/%d", id), token, req, &tx); err != nil {
		return domain.Transaction{}, err
	}
	return tx, nil
}

func (s *TransactionService) Delete(ctx context.Context, token string, id int64) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/transactions/%d", id), token, nil, nil)
}
