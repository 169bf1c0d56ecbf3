package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sisinfo_gateway/internal/handlers"
	"sisinfo_gateway/internal/models"
)

// GET /api/admin/detalles
func (h *Handler) ListDetails(c *gin.Context) {
	details, err := h.api.ListDetails(c.Request.Context())
	if err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// GET /api/admin/detalles/:id
func (h *Handler) GetDetail(c *gin.Context) {
	detail, err := h.api.GetDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// POST /api/admin/detalles
func (h *Handler) CreateDetail(c *gin.Context) {
	var input models.CreateDetailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	detail, err := h.api.CreateDetail(c.Request.Context(), input)
	if err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, detail)
}

// PUT /api/admin/detalles/:id
func (h *Handler) UpdateDetail(c *gin.Context) {
	var input models.CreateDetailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	detail, err := h.api.UpdateDetail(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// DELETE /api/admin/detalles/:id
func (h *Handler) DeleteDetail(c *gin.Context) {
	if err := h.api.DeleteDetail(c.Request.Context(), c.Param("id")); err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Détail supprimé"})
}
