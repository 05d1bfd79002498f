package http

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"finance-front/internal/domain"
)

func TestDashboardShowsTotalsAndRecent(t *testing.T) {
	f := newRouterFixture(t)
	sid := f.signIn(t)
	a := f.mock.SeedAccount(domain.Account{
		Name: "Checking", Type: domain.AccountChecking, Currency: "USD",
		Balance: decimal.RequireFromString("100.50"), Active: true,
	})
	f.mock.SeedAccount(domain.Account{
		Name: "Closed", Type: domain.AccountSavings, Currency: "USD",
		Balance: decimal.RequireFromString("999"),
	})
	for i := 1; i <= 7; i++ {
		f.mock.SeedTransaction(domain.Transaction{
			Amount:      decimal.NewFromInt(int64(i)),
			Type:        domain.TransactionExpense,
			Date:        fmt.Sprintf("2026-08-%02d", i),
			Description: fmt.Sprintf("Purchase %d", i),
			AccountID:   a.ID,
		})
	}

	rec := f.get("/dashboard", sid)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Hello, Ana") {
		t.Fatalf("expected greeting in body")
	}
	// Solo las cuentas activas suman al total.
	if !strings.Contains(body, "100.5") {
		t.Fatalf("expected active balance total in body")
	}
	// Recientes: las 5 de fecha más nueva, la más vieja queda fuera.
	if !strings.Contains(body, "Purchase 7") || !strings.Contains(body, "Purchase 3") {
		t.Fatalf("expected newest transactions in recent list")
	}
	if strings.Contains(body, "Purchase 1") || strings.Contains(body, "Purchase 2") {
		t.Fatalf("expected oldest transactions excluded from recent list")
	}
}

func TestRootRedirectsToDashboard(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.get("/", "")
	if rec.Code != http.StatusFound {
		t.Fatalf("expected status 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %q", loc)
	}
}
