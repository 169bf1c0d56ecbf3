package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"sisinfo_gateway/internal/session"
)

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super_secret"
	}
	return []byte(secret)
}

// AuthRequired identifie la session (Bearer token, sinon cookie) puis
// recharge le snapshot : un jeton encore valide dont la session a été
// détruite (logout) est refusé. user_id, email, role et sid sont posés dans
// le contexte Gin.
func AuthRequired(gate *session.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionIDFromRequest(c)
		if !ok {
			c.Abort()
			return
		}

		snap, err := gate.Current(c.Request.Context(), sid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture session"})
			c.Abort()
			return
		}
		if snap == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expirée"})
			c.Abort()
			return
		}

		c.Set("sid", sid)
		c.Set("user_id", snap.UserID)
		c.Set("email", snap.Email)
		c.Set("role", snap.Role)

		c.Next()
	}
}

// sessionIDFromRequest extrait le sid du Bearer token ou, à défaut, du
// cookie de session. Écrit la réponse 401 elle-même en cas de refus.
func sessionIDFromRequest(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		if sid := sessionIDFromCookie(c.Request); sid != "" {
			return sid, true
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token manquant"})
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Format Authorization invalide"})
		return "", false
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("méthode de signature inattendue: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token invalide"})
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token invalide"})
		return "", false
	}

	sid, _ := claims["sid"].(string)
	if sid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "sid manquant"})
		return "", false
	}
	return sid, true
}
