package session

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/berberbook/booking-api/internal/models"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrRevokedToken = errors.New("revoked token")
)

// Claims is the identity carried by a session token.
type Claims struct {
	UserID    uint
	Role      models.Role
	TokenID   string
	ExpiresAt time.Time
}

type Manager struct {
	secret []byte
	ttl    time.Duration
	store  RevocationStore
}

func NewManager(secret string, ttl time.Duration, store RevocationStore) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		store:  store,
	}
}

func (m *Manager) Issue(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":  float64(user.ID),
		"role": string(user.Role),
		"jti":  uuid.New().String(),
		"exp":  now.Add(m.ttl).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *Manager) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok1 := mapClaims["sub"].(float64)
	role, ok2 := mapClaims["role"].(string)
	jti, ok3 := mapClaims["jti"].(string)
	exp, ok4 := mapClaims["exp"].(float64)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return nil, ErrInvalidToken
	}

	revoked, err := m.store.IsRevoked(ctx, jti)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrRevokedToken
	}

	return &Claims{
		UserID:    uint(sub),
		Role:      models.Role(role),
		TokenID:   jti,
		ExpiresAt: time.Unix(int64(exp), 0),
	}, nil
}

// Revoke invalidates the token until its natural expiry.
func (m *Manager) Revoke(ctx context.Context, claims *Claims) error {
	return m.store.Revoke(ctx, claims.TokenID, time.Until(claims.ExpiresAt))
}
