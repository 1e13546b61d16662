package identity

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"walletbook/internal/config"
	"walletbook/internal/models"
)

// sessionClaims are the claims carried by a walletbook session token.
// The token is opaque to the presentation layer; the identity context only
// checks signature and expiry when restoring a session.
type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// generateSessionToken signs a session token for the user.
func generateSessionToken(user models.User, cfg *config.Config) (string, error) {
	now := time.Now()
	claims := &sessionClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "walletbook",
			Subject:   user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.SessionSecret))
}

// validateSessionToken parses and verifies a persisted session token.
func validateSessionToken(tokenString string, cfg *config.Config) (*sessionClaims, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.SessionSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	return claims, nil
}
