package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sisinfo_gateway/internal/handlers"
	"sisinfo_gateway/internal/models"
)

// GET /api/admin/metodos-pago — liste brute amont, sans filtre d'estado ni
// liste de secours : la console d'administration doit voir la vérité.
func (h *Handler) ListPaymentMethods(c *gin.Context) {
	methods, err := h.api.ListPaymentMethods(c.Request.Context())
	if err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, methods)
}

// GET /api/admin/metodos-pago/:id
func (h *Handler) GetPaymentMethod(c *gin.Context) {
	method, err := h.api.GetPaymentMethod(c.Request.Context(), c.Param("id"))
	if err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, method)
}

// POST /api/admin/metodos-pago
func (h *Handler) CreatePaymentMethod(c *gin.Context) {
	var input models.PaymentMethod
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	method, err := h.api.CreatePaymentMethod(c.Request.Context(), input)
	if err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, method)
}

// PUT /api/admin/metodos-pago/:id
func (h *Handler) UpdatePaymentMethod(c *gin.Context) {
	var input models.PaymentMethod
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	method, err := h.api.UpdatePaymentMethod(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, method)
}

// DELETE /api/admin/metodos-pago/:id
func (h *Handler) DeletePaymentMethod(c *gin.Context) {
	if err := h.api.DeletePaymentMethod(c.Request.Context(), c.Param("id")); err != nil {
		handlers.WriteAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Moyen de paiement supprimé"})
}
