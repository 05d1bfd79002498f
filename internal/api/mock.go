package api

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"

	"finance-front/internal/domain"
)

// Mock es una API de finanzas en memoria para tests y desarrollo local.
// Aplica las mismas reglas observables que el servidor real: tokens
// desconocidos devuelven 401, recursos inexistentes 404 y los movimientos
// exigen una cuenta existente.
type Mock struct {
	mu sync.Mutex

	// Err, si está seteado, hace fallar cualquier llamada.
	Err error
	// NextToken fija el token que emitirá el próximo Login.
	NextToken string
	// CurrentUserCalls cuenta las llamadas a /users/me.
	CurrentUserCalls int

	users        map[string]mockUser
	tokens       map[string]string
	accounts     map[int64]domain.Account
	transactions map[int64]domain.Transaction
	nextUserID   int64
	nextID       int64
	nextToken    int
}

type mockUser struct {
	user     domain.User
	password string
}

func NewMock() *Mock {
	return &Mock{
		users:        make(map[string]mockUser),
		tokens:       make(map[string]string),
		accounts:     make(map[int64]domain.Account),
		transactions: make(map[int64]domain.Transaction),
	}
}

// SeedUser registra un usuario con contraseña sin pasar por Register.
func (m *Mock) SeedUser(user domain.User, password string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user.ID == 0 {
		m.nextUserID++
		user.ID = m.nextUserID
	}
	m.users[user.Email] = mockUser{user: user, password: password}
}

// SeedToken asocia un token válido a un usuario ya registrado.
func (m *Mock) SeedToken(token, email string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[token] = email
}

// SeedAccount inserta una cuenta directamente.
func (m *Mock) SeedAccount(account domain.Account) domain.Account {
	m.mu.Lock()
	defer m.mu.Unlock()
	if account.ID == 0 {
		m.nextID++
		account.ID = m.nextID
	}
	m.accounts[account.ID] = account
	return account
}

// SeedTransaction inserta un movimiento directamente.
func (m *Mock) SeedTransaction(tx domain.Transaction) domain.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	if tx.ID == 0 {
		m.nextID++
		tx.ID = m.nextID
	}
	m.transactions[tx.ID] = tx
	return tx
}

func (m *Mock) Login(_ context.Context, req LoginRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	rec, ok := m.users[req.Email]
	if !ok || rec.password != req.Password {
		return "", &APIError{StatusCode: http.StatusUnauthorized, Message: "Invalid email or password"}
	}
	token := m.NextToken
	if token == "" {
		m.nextToken++
		token = fmt.Sprintf("mock-token-%d", m.nextToken)
	}
	m.tokens[token] = req.Email
	return token, nil
}

func (m *Mock) Register(_ context.Context, req RegisterRequest) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return domain.User{}, m.Err
	}
	if _, exists := m.users[req.Email]; exists {
		return domain.User{}, &APIError{StatusCode: http.StatusConflict, Message: "Email already registered"}
	}
	m.nextUserID++
	user := domain.User{
		ID:        m.nextUserID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Enabled:   true,
	}
	m.users[req.Email] = mockUser{user: user, password: req.Password}
	return user, nil
}

func (m *Mock) CurrentUser(_ context.Context, token string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CurrentUserCalls++
	if m.Err != nil {
		return domain.User{}, m.Err
	}
	email, ok := m.tokens[token]
	if !ok {
		return domain.User{}, &APIError{StatusCode: http.StatusUnauthorized, Message: "Invalid or expired token"}
	}
	rec, ok := m.users[email]
	if !ok {
		return domain.User{}, &APIError{StatusCode: http.StatusUnauthorized, Message: "Invalid or expired token"}
	}
	return rec.user, nil
}

func (m *Mock) checkToken(token string) error {
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.tokens[token]; !ok {
		return &APIError{StatusCode: http.StatusUnauthorized, Message: "Invalid or expired token"}
	}
	return nil
}

func (m *Mock) List(_ context.Context, token string) ([]domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkToken(token); err != nil {
		return nil, err
	}
	return m.sortedAccounts(func(domain.Account) bool { return true }), nil
}

func (m *Mock) ListActive(_ context.Context, token string) ([]domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkToken(token); err != nil {
		return nil, err
	}
	return m.sortedAccounts(func(a domain.Account) bool { return a.Active }), nil
}

func (m *Mock) sortedAccounts(keep func(domain.Account) bool) []domain.Account {
	accounts := make([]domain.Account, 0, len(m.accounts))
	for _, a := range m.accounts {
		if keep(a) {
			accounts = append(accounts, a)
		}
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts
}

func (m *Mock) Get(_ context.Context, token string, id int64) (domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkToken(token); err != nil {
		return domain.Account{}, err
	}
	account, ok := m.accounts[id]
	if !ok {
		return domain.Account{}, &APIError{StatusCode: http.StatusNotFound, Message: "Account not found"}
	}
	return account, nil
}

func (m *Mock) Create(_ context.Context, token string, req AccountRequest) (domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkToken(token); err != nil {
		return domain.Account{}, err
	}
	m.nextID++
	account := domain.Account{
		ID:          m.nextID,
		Name:        req.Name,
		Type:        req.Type,
		Currency:    req.Currency,
		Balance:     req.Balance,
		Description: req.Description,
		Active:      true,
	}
	m.accounts[account.ID] = account
	return account, nil
}

func (m *Mock) Update(_ context.Context, token string, id int64, req AccountRequest) (domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkToken(token); err != nil {
		return domain.Account{}, err
	}
	account, ok := m.accounts[id]
	if !ok {
		return domain.Account{}, &APIError{StatusCode: http.StatusNotFound, Message: "Account not found"}
	}
	account.Name = req.Name
	account.Type = req.Type
	account.Currency = req.Currency
	account.Balance = req.Balance
	account.Description = req.Description
	m.accounts[id] = account
	return account, nil
}

func (m *Mock) Delete(_ context.Context, token string, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkToken(token); err != nil {
		return err
	}
	if _, ok := m.accounts[id]; !ok {
		return &APIError{StatusCode: http.StatusNotFound, Message: "Account not found"}
	}
	delete(m.accounts, id)
	return nil
}

func (m *Mock) setActive(token string, id int64, active bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkToken(token); err != nil {
		return err
	}
	account, ok := m.accounts[id]
	if !ok {
		return &APIError{StatusCode: http.StatusNotFound, Message: "Account not found"}
	}
	account.Active = active
	m.accounts[id] = account
	return nil
}

func (m *Mock) Activate(_ context.Context, token string, id int64) error {
	return m.setActive(token, id, true)
}

func (m *Mock) Deactivate(_ context.Context, token string, id int64) error {
	return m.setActive(token, id, false)
}

// TransactionsMock expone las operaciones de movimientos del mock. Existe
// porque List/Get/Create/Update/Delete ya están tomados por cuentas en Mock.
type TransactionsMock struct {
	m *Mock
}

// Txs devuelve la vista de movimientos del mock.
func (m *Mock) Txs() *TransactionsMock {
	return &TransactionsMock{m: m}
}

func (t *TransactionsMock) List(_ context.Context, token string) ([]domain.Transaction, error) {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if err := t.m.checkToken(token); err != nil {
		return nil, err
	}
	return t.m.sortedTransactions(func(domain.Transaction) bool { return true }), nil
}

func (t *TransactionsMock) ListByAccount(_ context.Context, token string, accountID int64) ([]domain.Transaction, error) {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if err := t.m.checkToken(token); err != nil {
		return nil, err
	}
	return t.m.sortedTransactions(func(tx domain.Transaction) bool { return tx.AccountID == accountID }), nil
}

func (m *Mock) sortedTransactions(keep func(domain.Transaction) bool) []domain.Transaction {
	txs := make([]domain.Transaction, 0, len(m.transactions))
	for _, tx := range m.transactions {
		if keep(tx) {
			txs = append(txs, tx)
		}
	}
	sort.Slice(txs, func(i, j int) bool { return txs[i].ID < txs[j].ID })
	return txs
}

func (t *TransactionsMock) Get(_ context.Context, token string, id int64) (domain.Transaction, error) {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if err := t.m.checkToken(token); err != nil {
		return domain.Transaction{}, err
	}
	tx, ok := t.m.transactions[id]
	if !ok {
		return domain.Transaction{}, &APIError{StatusCode: http.StatusNotFound, Message: "Transaction not found"}
	}
	return tx, nil
}

func (t *TransactionsMock) Create(_ context.Context, token string, req TransactionRequest) (domain.Transaction, error) {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if err := t.m.checkToken(token); err != nil {
		return domain.Transaction{}, err
	}
	if _, ok := t.m.accounts[req.AccountID]; !ok {
		return domain.Transaction{}, &APIError{StatusCode: http.StatusNotFound, Message: "Account not found"}
	}
	t.m.nextID++
	tx := domain.Transaction{
		ID:          t.m.nextID,
		Amount:      req.Amount,
		Type:        req.Type,
		Date:        req.Date,
		Description: req.Description,
		Category:    req.Category,
		AccountID:   req.AccountID,
	}
	t.m.transactions[tx.ID] = tx
	return tx, nil
}

func (t *TransactionsMock) Update(_ context.Context, token string, id int64, req TransactionRequest) (domain.Transaction, error) {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if err := t.m.checkToken(token); err != nil {
		return domain.Transaction{}, err
	}
	tx, ok := t.m.transactions[id]
	if !ok {
		return domain.Transaction{}, &APIError{StatusCode: http.StatusNotFound, Message: "Transaction not found"}
	}
	if _, ok := t.m.accounts[req.AccountID]; !ok {
		return domain.Transaction{}, &APIError{StatusCode: http.StatusNotFound, Message: "Account not found"}
	}
	tx.Amount = req.Amount
	tx.Type = req.Type
	tx.Date = req.Date
	tx.Description = req.Description
	tx.Category = req.Category
	tx.AccountID = req.AccountID
	t.m.transactions[id] = tx
	return tx, nil
}

func (t *TransactionsMock) Delete(_ context.Context, token string, id int64) error {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if err := t.m.checkToken(token); err != nil {
		return err
	}
	if _, ok := t.m.transactions[id]; !ok {
		return &APIError{StatusCode: http.StatusNotFound, Message: "Transaction not found"}
	}
	delete(t.m.transactions, id)
	return nil
}
