package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sisinfo_gateway/internal/handlers"
	"sisinfo_gateway/internal/models"
)

// GET /api/admin/roles
func (h *Handler) ListRoles(c *gin.Context) {
	roles, err := h.api.ListRoles(c.Request.Context())
	if err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, roles)
}

// GET /api/admin/roles/:id
func (h *Handler) GetRole(c *gin.Context) {
	role, err := h.api.GetRole(c.Request.Context(), c.Param("id"))
	if err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, role)
}

// POST /api/admin/roles
func (h *Handler) CreateRole(c *gin.Context) {
	var input models.Role
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	role, err := h.api.CreateRole(c.Request.Context(), input)
	if err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, role)
}

// PUT /api/admin/roles/:id
func (h *Handler) UpdateRole(c *gin.Context) {
	var input models.Role
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	role, err := h.api.UpdateRole(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, role)
}

// DELETE /api/admin/roles/:id
func (h *Handler) DeleteRole(c *gin.Context) {
	if err := h.api.DeleteRole(c.Request.Context(), c.Param("id")); err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rôle supprimé"})
}
