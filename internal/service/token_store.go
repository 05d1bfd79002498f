package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore guarda el bearer token de la API por sesión de navegador.
// El token es opaco: aquí nunca se inspecciona ni se valida su contenido.
type TokenStore interface {
	Store(sid, token string, ttl time.Duration) error
	Get(sid string) (string, error)
	Clear(sid string) error
	IsPresent(sid string) (bool, error)
}

type memoryTokenStore struct {
	mu    sync.Mutex
	items map[string]memoryToken
}

type memoryToken struct {
	token     string
	expiresAt time.Time
}

func NewMemoryTokenStore() TokenStore {
	return &memoryTokenStore{
		items: make(map[string]memoryToken),
	}
}

func (s *memoryTokenStore) Store(sid, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(sid) == "" || strings.TrimSpace(token) == "" {
		return nil
	}
	s.items[sid] = memoryToken{token: token, expiresAt: time.Now().UTC().Add(ttl)}
	return nil
}

func (s *memoryTokenStore) Get(sid string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[sid]
	if !ok {
		return "", nil
	}
	if time.Now().UTC().After(item.expiresAt) {
		delete(s.items, sid)
		return "", nil
	}
	return item.token, nil
}

func (s *memoryTokenStore) Clear(sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, sid)
	return nil
}

func (s *memoryTokenStore) IsPresent(sid string) (bool, error) {
	token, err := s.Get(sid)
	if err != nil {
		return false, err
	}
	return token != "", nil
}

type redisTokenStore struct {
	client *redis.Client
	prefix string
}

// NewRedisTokenStore persiste tokens en redis para que las sesiones
// sobrevivan reinicios del frontend.
func NewRedisTokenStore(client *redis.Client) TokenStore {
	if client == nil {
		return nil
	}
	return &redisTokenStore{
		client: client,
		prefix: "session:token:",
	}
}

func (s *redisTokenStore) Store(sid, token string, ttl time.Duration) error {
	if strings.TrimSpace(sid) == "" || strings.TrimSpace(token) == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	return s.client.Set(ctx, s.prefix+sid, token, ttl).Err()
}

func (s *redisTokenStore) Get(sid string) (string, error) {
	if strings.TrimSpace(sid) == "" {
		return "", nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	token, err := s.client.Get(ctx, s.prefix+sid).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *redisTokenStore) Clear(sid string) error {
	if strings.TrimSpace(sid) == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	return s.client.Del(ctx, s.prefix+sid).Err()
}

func (s *redisTokenStore) IsPresent(sid string) (bool, error) {
	if strings.TrimSpace(sid) == "" {
		return false, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	n, err := s.client.Exists(ctx, s.prefix+sid).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
