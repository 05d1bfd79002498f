package api

import (
	"context"
	"errors"
	"net/http"

	"finance-front/internal/domain"
)

// AuthService mapea las operaciones de autenticación de la API.
type AuthService struct {
	client *Client
}

// Login ejecuta POST /auth/login y devuelve el token opaco de sesión.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	if err := s.client.do(ctx, http.MethodPost, "/auth/login", "", req, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", errors.New("login response without token")
	}
	return resp.Token, nil
}

// Register ejecuta POST /auth/register. No autentica al cliente.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (domain.User, error) {
	var user domain.User
	if err := s.client.do(ctx, http.MethodPost, "/auth/register", "", req, &user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// CurrentUser ejecuta GET /users/me con el token dado.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (domain.User, error) {
	var user domain.User
	if err := s.client.do(ctx, http.MethodGet, "/users/me", token, nil, &user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}
