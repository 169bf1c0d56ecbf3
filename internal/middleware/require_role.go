package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sisinfo_gateway/internal/session"
)

// RequireRole est le visage HTTP de session.Resolve : même décision, rendue
// en 403 avec la cible de redirection que la console applique côté client.
func RequireRole(required string) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := &session.Snapshot{Role: c.GetString("role")}
		decision := session.Resolve(snap, required)
		if !decision.Allowed {
			c.JSON(http.StatusForbidden, gin.H{
				"error":    "Accès réservé au rôle " + required,
				"redirect": decision.Redirect,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin vérifie que l'utilisateur a le rôle "administrador".
func RequireAdmin(c *gin.Context) {
	RequireRole(session.RoleAdmin)(c)
}
