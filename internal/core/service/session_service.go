package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/reviewhub/review-system/internal/core/domain"
	"github.com/reviewhub/review-system/internal/core/ports"
)

const defaultSessionTTL = 24 * time.Hour

// SessionService issues and resolves session tokens. The token is an
// HS256 JWT whose subject is the user id — the durable key is the
// identifier itself, the signature only protects it in transit. Resolve
// always re-reads the user, so the store stays the source of truth.
type SessionService struct {
	users  ports.UserRepository
	secret string
	ttl    time.Duration
}

func NewSessionService(users ports.UserRepository, secret string, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionService{users: users, secret: secret, ttl: ttl}
}

// Issue serializes the user into a signed session token.
func (s *SessionService) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": user.ID,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}

// Resolve maps a session token back to a live user. A token referencing a
// user deleted since the session was issued yields ErrSessionInvalid and
// the caller must force re-authentication.
func (s *SessionService) Resolve(ctx context.Context, token string) (*domain.User, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrSessionInvalid
	}

	id, _ := claims["sub"].(string)
	if id == "" {
		return nil, domain.ErrSessionInvalid
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrSessionInvalid
		}
		return nil, err
	}

	return user, nil
}
