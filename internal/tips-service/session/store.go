package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CookieName é o cookie HttpOnly que carrega o token de sessão.
const CookieName = "session_token"

// User é o que fica guardado na sessão; nada além do necessário.
type User struct {
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// Store guarda sessões no Redis com TTL; o token é um uuid opaco.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func key(token string) string { return "session:" + token }

// Create abre uma sessão nova e devolve o token.
func (s *Store) Create(ctx context.Context, u User) (string, error) {
	token := uuid.NewString()
	b, _ := json.Marshal(u)
	if err := s.rdb.Set(ctx, key(token), b, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Get resolve um token; (nil, false, nil) quando expirado ou desconhecido.
func (s *Store) Get(ctx context.Context, token string) (*User, bool, error) {
	b, err := s.rdb.Get(ctx, key(token)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var u User
	if err := json.Unmarshal(b, &u); err != nil {
		return nil, false, err
	}
	return &u, true, nil
}

// Delete encerra a sessão; token inexistente não é erro.
func (s *Store) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, key(token)).Err()
}
