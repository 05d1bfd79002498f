package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AccountType enumera los tipos de cuenta que acepta la API.
type AccountType string

const (
	AccountChecking   AccountType = "CHECKING"
	AccountSavings    AccountType = "SAVINGS"
	AccountCreditCard AccountType = "CREDIT_CARD"
	AccountInvestment AccountType = "INVESTMENT"
	AccountLoan       AccountType = "LOAN"
	AccountOther      AccountType = "OTHER"
)

// AccountTypes lista los valores validos en orden de presentacion.
func AccountTypes() []AccountType {
	return []AccountType{
		AccountChecking,
		AccountSavings,
		AccountCreditCard,
		AccountInvestment,
		AccountLoan,
		AccountOther,
	}
}

func (t AccountType) Valid() bool {
	switch t {
	case AccountChecking, AccountSavings, AccountCreditCard, AccountInvestment, AccountLoan, AccountOther:
		return true
	}
	return false
}

// Label devuelve el valor en formato legible para selects y tablas.
func (t AccountType) Label() string {
	return strings.ReplaceAll(string(t), "_", " ")
}

// Account es una cuenta tal como la devuelve la API. El cliente nunca la
// muta localmente; toda modificacion pasa por update/activate/deactivate.
type Account struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Type        AccountType     `json:"type"`
	Currency    string          `json:"currency"`
	Balance     decimal.Decimal `json:"balance"`
	Description string          `json:"description,omitempty"`
	Active      bool            `json:"active"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}
