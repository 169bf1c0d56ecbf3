package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sisinfo_gateway/internal/handlers"
	"sisinfo_gateway/internal/models"
)

// GET /api/admin/categorias
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.api.ListCategories(c.Request.Context())
	if err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GET /api/admin/categorias/:id
func (h *Handler) GetCategory(c *gin.Context) {
	category, err := h.api.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// POST /api/admin/categorias
func (h *Handler) CreateCategory(c *gin.Context) {
	var input models.Category
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	category, err := h.api.CreateCategory(c.Request.Context(), input)
	if err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// PUT /api/admin/categorias/:id
func (h *Handler) UpdateCategory(c *gin.Context) {
	var input models.Category
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	category, err := h.api.UpdateCategory(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// DELETE /api/admin/categorias/:id
func (h *Handler) DeleteCategory(c *gin.Context) {
	if err := h.api.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Catégorie supprimée"})
}
