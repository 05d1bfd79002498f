package domain

import "testing"

func TestAccountTypeValid(t *testing.T) {
	for _, typ := range AccountTypes() {
		if !typ.Valid() {
			t.Fatalf("expected %s to be valid", typ)
		}
	}
	if AccountType("SSAVINGS").Valid() {
		t.Fatalf("expected unknown type to be invalid")
	}
	if AccountType("").Valid() {
		t.Fatalf("expected empty type to be invalid")
	}
}

func TestAccountTypeLabel(t *testing.T) {
	if got := AccountCreditCard.Label(); got != "CREDIT CARD" {
		t.Fatalf("expected CREDIT CARD, got %s", got)
	}
	if got := AccountChecking.Label(); got != "CHECKING" {
		t.Fatalf("expected CHECKING, got %s", got)
	}
}

func TestTransactionTypeValid(t *testing.T) {
	for _, typ := range TransactionTypes() {
		if !typ.Valid() {
			t.Fatalf("expected %s to be valid", typ)
		}
	}
	if TransactionType("REFUND").Valid() {
		t.Fatalf("expected unknown type to be invalid")
	}
}

func TestUserFullName(t *testing.T) {
	u := User{FirstName: "Ana", LastName: "Gomez"}
	if got := u.FullName(); got != "Ana Gomez" {
		t.Fatalf("expected Ana Gomez, got %s", got)
	}
	u = User{FirstName: "Ana"}
	if got := u.FullName(); got != "Ana" {
		t.Fatalf("expected Ana, got %s", got)
	}
	u = User{LastName: "Gomez"}
	if got := u.FullName(); got != "Gomez" {
		t.Fatalf("expected Gomez, got %s", got)
	}
}
