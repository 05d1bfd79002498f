package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Errores centinela para las dos clases de fallo que el cliente distingue.
// Cualquier otro estado HTTP llega como *APIError sin centinela.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// APIError representa una respuesta de error de la API de finanzas.
// El body tiene la forma {status, error, message, path}.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error: status=%d message=%s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error: status=%d", e.StatusCode)
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}

// UserMessage devuelve un texto mostrable en pantalla: el mensaje del
// servidor si existe, o uno genérico según la clase de error.
func (e *APIError) UserMessage() string {
	if e.Message != "" && e.StatusCode < 500 {
		return e.Message
	}
	return "The service is unavailable. Please try again later."
}

// Client habla con la API REST de finanzas. No guarda estado de sesión:
// el bearer token se pasa en cada llamada.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *zap.Logger

	Auth         *AuthService
	Accounts     *AccountService
	Transactions *TransactionService
}

// NewClient construye un cliente apuntando a baseURL.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		logger:  logger,
	}
	c.Auth = &AuthService{client: c}
	c.Accounts = &AccountService{client: c}
	c.Transactions = &TransactionService{client: c}
	return c
}

// do ejecuta una llamada JSON. token vacío omite el header Authorization.
// out puede ser nil cuando no interesa el body de la respuesta.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(respBody, &errBody); err == nil {
			apiErr.Message = errBody.Message
		}
		c.logger.Warn("api error response",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message),
		)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
