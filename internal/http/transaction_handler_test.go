package http

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"finance-front/internal/domain"
)

func seedTransactionFixture(t *testing.T, f *routerFixture) (domain.Account, domain.Account) {
	t.Helper()
	a1 := f.mock.SeedAccount(domain.Account{Name: "Checking", Type: domain.AccountChecking, Currency: "USD", Active: true})
	a2 := f.mock.SeedAccount(domain.Account{Name: "Savings", Type: domain.AccountSavings, Currency: "USD", Active: true})
	f.mock.SeedTransaction(domain.Transaction{
		Amount:      decimal.RequireFromString("12.30"),
		Type:        domain.TransactionExpense,
		Date:        "2026-08-20",
		Description: "Groceries",
		AccountID:   a1.ID,
	})
	f.mock.SeedTransaction(domain.Transaction{
		Amount:      decimal.RequireFromString("1500.00"),
		Type:        domain.TransactionIncome,
		Date:        "2026-08-01",
		Description: "Salary",
		AccountID:   a2.ID,
	})
	return a1, a2
}

func TestTransactionListShowsAll(t *testing.T) {
	f := newRouterFixture(t)
	sid := f.signIn(t)
	seedTransactionFixture(t, f)

	rec := f.get("/transactions", sid)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Groceries") || !strings.Contains(body, "Salary") {
		t.Fatalf("expected both transactions in body")
	}
}

func TestTransactionListFiltersByAccount(t *testing.T) {
	f := newRouterFixture(t)
	sid := f.signIn(t)
	a1, _ := seedTransactionFixture(t, f)

	rec := f.get("/transactions?account=1", sid)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Groceries") {
		t.Fatalf("expected transaction of account %d in body", a1.ID)
	}
	if strings.Contains(body, "Salary") {
		t.Fatalf("filtered list must not include other accounts")
	}
}

func TestTransactionCreateRedirectsToList(t *testing.T) {
	f := newRouterFixture(t)
	sid := f.signIn(t)
	account := f.mock.SeedAccount(domain.Account{Name: "Checking", Type: domain.AccountChecking, Currency: "USD", Active: true})

	rec := f.postForm("/transactions", sid, url.Values{
		"amount":      {"45.90"},
		"type":        {"EXPENSE"},
		"date":        {"2026-08-27"},
		"description": {"Dinner"},
		"category":    {"Food"},
		"accountId":   {"1"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", rec.Code)
	}
	txs, err := f.mock.Txs().ListByAccount(context.Background(), "T", account.ID)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(txs) != 1 || txs[0].Description != "Dinner" {
		t.Fatalf("expected one recorded transaction, got %+v", txs)
	}
}

func TestTransactionCreateRejectsNonPositiveAmountBeforeNetwork(t *testing.T) {
	f := newRouterFixture(t)
	sid := f.signIn(t)
	f.mock.SeedAccount(domain.Account{Name: "Checking", Type: domain.AccountChecking, Currency: "USD", Active: true})

	for _, amount := range []string{"0", "-10", "abc"} {
		rec := f.postForm("/transactions", sid, url.Values{
			"amount":      {amount},
			"type":        {"EXPENSE"},
			"date":        {"2026-08-27"},
			"description": {"Dinner"},
			"accountId":   {"1"},
		})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("amount %q: expected status 400, got %d", amount, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Amount must be") {
			t.Fatalf("amount %q: expected amount error in body", amount)
		}
	}
	txs, _ := f.mock.Txs().List(context.Background(), "T")
	if len(txs) != 0 {
		t.Fatalf("invalid form must not reach the API, got %d transactions", len(txs))
	}
}

func TestTransactionCreateRequiresAccountSelection(t *testing.T) {
	f := newRouterFixture(t)
	sid := f.signIn(t)
	f.mock.SeedAccount(domain.Account{Name: "Checking", Type: domain.AccountChecking, Currency: "USD", Active: true})

	rec := f.postForm("/transactions", sid, url.Values{
		"amount":      {"10"},
		"type":        {"EXPENSE"},
		"date":        {"2026-08-27"},
		"description": {"Dinner"},
		"accountId":   {""},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "An account must be selected") {
		t.Fatalf("expected account field error in body")
	}
}

func TestTransactionDeleteRemovesOnlyTarget(t *testing.T) {
	f := newRouterFixture(t)
	sid := f.signIn(t)
	seedTransactionFixture(t, f)

	rec := f.postForm("/transactions/3/delete", sid, nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", rec.Code)
	}

	rec = f.get("/transactions", sid)
	body := rec.Body.String()
	if strings.Contains(body, "Groceries") {
		t.Fatalf("expected deleted transaction gone from list")
	}
	if !strings.Contains(body, "Salary") {
		t.Fatalf("expected remaining transaction still listed")
	}
}

func TestTransactionFormSelectorOnlyListsActiveAccounts(t *testing.T) {
	f := newRouterFixture(t)
	sid := f.signIn(t)
	f.mock.SeedAccount(domain.Account{Name: "Active checking", Type: domain.AccountChecking, Currency: "USD", Active: true})
	f.mock.SeedAccount(domain.Account{Name: "Closed savings", Type: domain.AccountSavings, Currency: "USD"})

	rec := f.get("/transactions/new", sid)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Active checking") {
		t.Fatalf("expected active account in selector")
	}
	if strings.Contains(body, "Closed savings") {
		t.Fatalf("inactive account must not appear in selector")
	}
}
