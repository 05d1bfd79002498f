package domain

import "github.com/shopspring/decimal"

// TransactionType enumera los tipos de movimiento que acepta la API.
type TransactionType string

const (
	TransactionIncome   TransactionType = "INCOME"
	TransactionExpense  TransactionType = "EXPENSE"
	TransactionTransfer TransactionType = "TRANSFER"
)

// TransactionTypes lista los valores validos en orden de presentacion.
func TransactionTypes() []TransactionType {
	return []TransactionType{TransactionIncome, TransactionExpense, TransactionTransfer}
}

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionIncome, TransactionExpense, TransactionTransfer:
		return true
	}
	return false
}

// Transaction es un movimiento asociado a una cuenta. Date viaja como
// yyyy-mm-dd, igual que en la API.
type Transaction struct {
	ID          int64           `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	Date        string          `json:"date"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
	AccountID   int64           `json:"accountId"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}
