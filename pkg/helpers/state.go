package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// StateManager issues and verifies the OAuth state parameter as a short-lived
// signed token. The login flow itself stays stateless: nothing is stored
// server-side while the client is off at the provider.
type StateManager struct {
	secret []byte
	ttl    time.Duration
}

func NewStateManager(secret string, ttl time.Duration) *StateManager {
	return &StateManager{secret: []byte(secret), ttl: ttl}
}

// Issue returns a fresh state token carrying only a nonce and an expiry.
func (m *StateManager) Issue() (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify rejects missing, tampered, and expired state tokens.
func (m *StateManager) Verify(state string) error {
	if state == "" {
		return errors.New("missing state")
	}
	token, err := jwt.ParseWithClaims(state, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return errors.New("invalid state")
	}
	return nil
}
