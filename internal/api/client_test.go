package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, zap.NewNop())
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]any{})
	})

	if _, err := c.Accounts.List(context.Background(), "T"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if gotAuth != "Bearer T" {
		t.Fatalf("expected Authorization Bearer T, got %q", gotAuth)
	}
}

func TestClientLoginOmitsAuthorization(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "T"})
	})

	token, err := c.Auth.Login(context.Background(), LoginRequest{Email: "a@b.com", Password: "pw"})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if token != "T" {
		t.Fatalf("expected token T, got %q", token)
	}
	if gotAuth != "" {
		t.Fatalf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestClientDecodesAccounts(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/accounts" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"id":1,"name":"Main","type":"CHECKING","currency":"USD","balance":10.50,"active":true}]`))
	})

	accounts, err := c.Accounts.List(context.Background(), "T")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(accounts) != 1 {
		t.Fatalf("expected 1 account, got %d", len(accounts))
	}
	if accounts[0].Name != "Main" || !accounts[0].Balance.Equal(decimal.RequireFromString("10.50")) {
		t.Fatalf("unexpected account decoded: %+v", accounts[0])
	}
}

func TestClientMapsUnauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":401,"error":"Authentication Failed","message":"Invalid or expired token","path":"/users/me"}`))
	})

	_, err := c.Auth.CurrentUser(context.Background(), "bad")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Message != "Invalid or expired token" {
		t.Fatalf("expected server message, got %q", apiErr.Message)
	}
}

func TestClientMapsNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":404,"error":"Resource Not Found","message":"Account not found with id 7","path":"/accounts/7"}`))
	})

	_, err := c.Accounts.Get(context.Background(), "T", 7)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAPIErrorUserMessage(t *testing.T) {
	withMsg := &APIError{StatusCode: http.StatusBadRequest, Message: "Account name is required"}
	if got := withMsg.UserMessage(); got != "Account name is required" {
		t.Fatalf("expected server message, got %q", got)
	}
	server := &APIError{StatusCode: http.StatusInternalServerError, Message: "NullPointerException"}
	if got := server.UserMessage(); got != "The service is unavailable. Please try again later." {
		t.Fatalf("expected generic message for 5xx, got %q", got)
	}
	empty := &APIError{StatusCode: http.StatusBadGateway}
	if got := empty.UserMessage(); got != "The service is unavailable. Please try again later." {
		t.Fatalf("expected generic message, got %q", got)
	}
}

func TestClientTransactionsByAccount(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transactions/account/3" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"id":9,"amount":25,"type":"EXPENSE","date":"2025-06-01","accountId":3}]`))
	})

	txs, err := c.Transactions.ListByAccount(context.Background(), "T", 3)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(txs) != 1 || txs[0].AccountID != 3 {
		t.Fatalf("unexpected transactions: %+v", txs)
	}
}
