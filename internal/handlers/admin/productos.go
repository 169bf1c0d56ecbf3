package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sisinfo_gateway/internal/handlers"
	"sisinfo_gateway/internal/models"
)

// GET /api/admin/productos
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.api.ListProducts(c.Request.Context())
	if err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GET /api/admin/productos/:id
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.api.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// POST /api/admin/productos
func (h *Handler) CreateProduct(c *gin.Context) {
	var input models.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	product, err := h.api.CreateProduct(c.Request.Context(), input)
	if err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// PUT /api/admin/productos/:id
func (h *Handler) UpdateProduct(c *gin.Context) {
	var input models.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	product, err := h.api.UpdateProduct(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// DELETE /api/admin/productos/:id
func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.api.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé"})
}
