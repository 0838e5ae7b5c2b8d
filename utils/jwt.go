package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the session payload. Sessions are stateless: nothing is
// stored server-side and only expiry invalidates them.
type Claims struct {
	UserID     uint   `json:"userId"`
	Role       string `json:"role"`
	IsVerified bool   `json:"isVerified"`
	jwt.RegisteredClaims
}

// GenerateToken signs a session token for the user.
func GenerateToken(userID uint, role string, verified bool, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:     userID,
		Role:       role,
		IsVerified: verified,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
