package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sisinfo_gateway/internal/cart"
	"sisinfo_gateway/internal/middleware"
	"sisinfo_gateway/internal/session"
	"sisinfo_gateway/internal/utils"
)

type AuthHandler struct {
	gate  *session.Gate
	carts *cart.Store
}

func NewAuthHandler(gate *session.Gate, carts *cart.Store) *AuthHandler {
	return &AuthHandler{gate: gate, carts: carts}
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"correo"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	sessionID := uuid.NewString()
	snap, err := h.gate.Login(c.Request.Context(), sessionID, input.Email, input.Password)
	if err != nil {
		h.writeAuthError(c, err)
		return
	}

	token, err := utils.GenerateJWT(sessionID, *snap)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération du jeton"})
		return
	}

	middleware.SaveSessionCookie(c, sessionID)

	log.Printf("✅ Connexion de %s (rôle %s)", snap.Email, snap.Role)
	c.JSON(http.StatusOK, gin.H{
		"token":  token,
		"id":     snap.UserID,
		"nombre": snap.Name,
		"correo": snap.Email,
		"rol":    gin.H{"nombre": snap.Role},
	})
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var form session.RegisterForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	sessionID := uuid.NewString()
	snap, err := h.gate.Register(c.Request.Context(), sessionID, form)
	if err != nil {
		h.writeAuthError(c, err)
		return
	}

	token, err := utils.GenerateJWT(sessionID, *snap)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération du jeton"})
		return
	}

	middleware.SaveSessionCookie(c, sessionID)

	log.Printf("✅ Compte créé pour %s", snap.Email)
	c.JSON(http.StatusCreated, gin.H{
		"token":  token,
		"id":     snap.UserID,
		"nombre": snap.Name,
		"correo": snap.Email,
		"rol":    gin.H{"nombre": snap.Role},
	})
}

// POST /api/auth/logout — détruit la session et le panier associé, sans
// condition.
func (h *AuthHandler) Logout(c *gin.Context) {
	sid := c.GetString("sid")
	h.gate.Logout(c.Request.Context(), sid)
	middleware.ClearSessionCookie(c)
	if h.carts != nil {
		if err := h.carts.Clear(context.WithoutCancel(c.Request.Context()), sid); err != nil {
			log.Printf("⚠️ Panier de la session %s non vidé: %v", sid, err)
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session terminée"})
}

// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	snap, err := h.gate.Current(c.Request.Context(), c.GetString("sid"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture session"})
		return
	}
	if snap == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expirée"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":     snap.UserID,
		"nombre": snap.Name,
		"correo": snap.Email,
		"rol":    gin.H{"nombre": snap.Role},
	})
}

// GET /api/auth/acceso?rol=administrador — rend la décision de la porte pour
// la navigation côté console.
func (h *AuthHandler) ResolveAccess(c *gin.Context) {
	snap, err := h.gate.Current(c.Request.Context(), c.GetString("sid"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture session"})
		return
	}
	c.JSON(http.StatusOK, session.Resolve(snap, c.Query("rol")))
}

func (h *AuthHandler) writeAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, session.ErrCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		WriteAPIError(c, err)
	}
}
