package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"finance-front/internal/api"
	"finance-front/internal/domain"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotReady    = errors.New("session service not configured")
)

// Session es la vista resuelta de una sesión de navegador: o bien hay un
// usuario autenticado con su token, o es anónima. Sin token no hay sesión
// autenticada posible.
type Session struct {
	SID   string
	Token string
	User  *domain.User
}

func (s Session) Authenticated() bool {
	return s.User != nil
}

// SessionService es el único dueño del estado de sesión: login, registro,
// logout y resolución del usuario actual. Los handlers lo reciben inyectado;
// nadie más toca el token store.
type SessionService struct {
	logger *zap.Logger
	auth   api.AuthAPI
	tokens TokenStore
	ttl    time.Duration
}

func NewSessionService(logger *zap.Logger, auth api.AuthAPI, tokens TokenStore, ttl time.Duration) *SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionService{
		logger: logger,
		auth:   auth,
		tokens: tokens,
		ttl:    ttl,
	}
}

// Resolve determina quién está autenticado para la sesión sid. Sin token
// persistido no se llama a /users/me. Si la API rechaza el token, se limpia
// y la sesión queda anónima; cualquier fallo degrada a anónima, nunca a un
// error visible.
func (s *SessionService) Resolve(ctx context.Context, sid string) Session {
	anonymous := Session{SID: sid}
	if strings.TrimSpace(sid) == "" || s.tokens == nil || s.auth == nil {
		return anonymous
	}

	token, err := s.tokens.Get(sid)
	if err != nil {
		s.logger.Warn("token store read failed", zap.Error(err))
		return anonymous
	}
	if token == "" {
		return anonymous
	}

	user, err := s.auth.CurrentUser(ctx, token)
	if err != nil {
		if !errors.Is(err, api.ErrUnauthorized) {
			s.logger.Warn("current user fetch failed", zap.Error(err))
		}
		if clearErr := s.tokens.Clear(sid); clearErr != nil {
			s.logger.Warn("token clear failed", zap.Error(clearErr))
		}
		return anonymous
	}

	return Session{SID: sid, Token: token, User: &user}
}

// Login autentica contra la API y persiste el token bajo una sesión nueva.
// Si cualquier paso falla no se retiene ningún token parcial.
func (s *SessionService) Login(ctx context.Context, email, password string) (Session, error) {
	if s.auth == nil || s.tokens == nil {
		return Session{}, ErrSessionNotReady
	}

	token, err := s.auth.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}

	user, err := s.auth.CurrentUser(ctx, token)
	if err != nil {
		return Session{}, err
	}

	sid := uuid.NewString()
	if err := s.tokens.Store(sid, token, s.ttl); err != nil {
		return Session{}, err
	}

	s.logger.Info("session established", zap.Int64("user_id", user.ID))
	return Session{SID: sid, Token: token, User: &user}, nil
}

// Register crea el usuario en la API. No autentica al cliente: el flujo
// sigue en la pantalla de login.
func (s *SessionService) Register(ctx context.Context, req api.RegisterRequest) (domain.User, error) {
	if s.auth == nil {
		return domain.User{}, ErrSessionNotReady
	}
	return s.auth.Register(ctx, req)
}

// Logout limpia el token de la sesión. Es idempotente: cerrar una sesión
// ya anónima no hace nada.
func (s *SessionService) Logout(_ context.Context, sid string) error {
	if s.tokens == nil || strings.TrimSpace(sid) == "" {
		return nil
	}
	return s.tokens.Clear(sid)
}
