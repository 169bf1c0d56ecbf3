package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"sisinfo_gateway/internal/session"
)

// GenerateJWT émet le jeton de la passerelle pour une session authentifiée.
// sid relie le jeton au snapshot persisté et au panier de la session.
func GenerateJWT(sessionID string, snap session.Snapshot) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super_secret"
	}

	claims := jwt.MapClaims{
		"user_id": snap.UserID,
		"email":   snap.Email,
		"role":    snap.Role,
		"sid":     sessionID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
