package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sisinfo_gateway/internal/handlers"
	"sisinfo_gateway/internal/models"
)

// GET /api/admin/pedidos
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.api.ListOrders(c.Request.Context())
	if err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GET /api/admin/pedidos/:id
func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.api.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// POST /api/admin/pedidos — création manuelle depuis la console, distincte
// du flux d'achat client (/api/checkout).
func (h *Handler) CreateOrder(c *gin.Context) {
	var input models.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	order, err := h.api.CreateOrder(c.Request.Context(), input)
	if err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// PUT /api/admin/pedidos/:id
func (h *Handler) UpdateOrder(c *gin.Context) {
	var input models.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	order, err := h.api.UpdateOrder(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// DELETE /api/admin/pedidos/:id
func (h *Handler) DeleteOrder(c *gin.Context) {
	if err := h.api.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Commande supprimée"})
}
